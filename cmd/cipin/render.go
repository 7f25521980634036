package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"

	"github.com/yxzhao7/cipin"
)

const maxBarWidth = 40

var (
	headerStyle      = lipgloss.NewStyle().Bold(true)
	barStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	placeholderStyle = lipgloss.NewStyle().Faint(true)
)

func render(chart string, result *cipin.Result) (string, error) {
	switch chart {
	case "table":
		return renderTable(result), nil
	case "bar":
		return renderBar(result), nil
	case "json":
		return renderJSON(result)
	default:
		return "", errors.Errorf("unknown chart type %q (want table, bar or json)", chart)
	}
}

// Rendering an empty result is not an error; the pipeline already reported
// success, there just was nothing left after filtering.
func emptyNotice() string {
	return placeholderStyle.Render("没有符合条件的词语（检查停用词表或页面内容）")
}

func renderTable(result *cipin.Result) string {
	if len(result.Top) == 0 {
		return emptyNotice()
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle.Copy().Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("#", "词语", "拼音", "频次")
	for i, rec := range result.Top {
		t.Row(strconv.Itoa(i+1), rec.Word, rec.Pinyin, strconv.Itoa(rec.Count))
	}
	return t.String()
}

func renderBar(result *cipin.Result) string {
	if len(result.Top) == 0 {
		return emptyNotice()
	}
	max := result.Top[0].Count
	var b strings.Builder
	for _, rec := range result.Top {
		width := rec.Count * maxBarWidth / max
		if width < 1 {
			width = 1
		}
		bar := barStyle.Render(strings.Repeat("█", width))
		fmt.Fprintf(&b, "%s\t%s %d\n", rec.Word, bar, rec.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderJSON(result *cipin.Result) (string, error) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode result")
	}
	return string(out), nil
}
