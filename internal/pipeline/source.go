package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhillyerd/enmime"
	"github.com/xuri/excelize/v2"

	"willcall/internal/util"
)

// LoadSource reads a vendor export fully into memory as comma-delimited text.
// Workbooks, HTML report tables and report emails are flattened to one line
// per row so the vendor classifiers see the same shape as a CSV export.
func LoadSource(path string) (string, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		return xlsxToText(blob)
	case strings.HasSuffix(lower, ".html"), strings.HasSuffix(lower, ".htm"):
		return htmlToText(string(blob))
	case strings.HasSuffix(lower, ".eml"):
		return emailToText(blob)
	default:
		return util.StripBOM(string(blob)), nil
	}
}

func xlsxToText(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	defer f.Close()

	lines := []string{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		for _, row := range rows {
			lines = append(lines, util.JoinCells(row))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func htmlToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	lines := []string{}
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := []string{}
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) > 0 {
			lines = append(lines, util.JoinCells(cells))
		}
	})
	return strings.Join(lines, "\n"), nil
}

// emailToText pulls the export out of a vendor report email: the first CSV
// attachment, then the first workbook, then the plain text body.
func emailToText(raw []byte) (string, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}

	for _, att := range env.Attachments {
		if strings.HasSuffix(strings.ToLower(att.FileName), ".csv") {
			return util.StripBOM(string(att.Content)), nil
		}
	}
	for _, att := range env.Attachments {
		if strings.HasSuffix(strings.ToLower(att.FileName), ".xlsx") {
			return xlsxToText(att.Content)
		}
	}
	return env.Text, nil
}
