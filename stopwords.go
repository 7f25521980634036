package cipin

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseStopWords reads a newline-delimited stoplist, one word per line.
// Blank lines and surrounding whitespace are ignored. The result is never
// nil, so a successfully read but empty file still counts as a supplied
// stoplist.
func ParseStopWords(r io.Reader) ([]string, error) {
	stopWords := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		stopWords = append(stopWords, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read stopword list")
	}
	return stopWords, nil
}

func LoadStopWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open stopword file %s", path)
	}
	defer f.Close()
	return ParseStopWords(f)
}
