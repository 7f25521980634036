package cipin

import (
	"io"
	"net/http"
	"net/url"
	"time"
)

// A desktop browser User-Agent; some sites reject obvious non-browser
// clients outright.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/87.0.4280.88 Safari/537.36"

const DefaultFetchTimeout = 15 * time.Second

// ValidateURL checks general well-formedness (http/https scheme plus a
// host) without touching the network.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return NewInvalidInputError("malformed url: " + raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return NewInvalidInputError("url must use http or https: " + raw)
	}
	if u.Host == "" {
		return NewInvalidInputError("url has no host: " + raw)
	}
	return nil
}

type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// Fetch GETs the page and returns the body as text. The bytes are treated
// as UTF-8 no matter what charset the server declares; mixed-encoding
// Chinese sites mis-declare often enough that the declared value is not
// trusted. Deliberate behavior, not an oversight.
func (f *Fetcher) Fetch(rawurl string) (string, error) {
	if err := ValidateURL(rawurl); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodGet, rawurl, nil)
	if err != nil {
		return "", NewInvalidInputError("malformed url: " + rawurl)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &NetworkError{URL: rawurl, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &NetworkError{URL: rawurl, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{URL: rawurl, Err: err}
	}
	return string(body), nil
}
