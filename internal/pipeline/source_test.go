package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func mkXLSX(rows [][]any) []byte {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	_, _ = f.WriteTo(buf)
	return buf.Bytes()
}

func TestLoadSourcePlainStripsBOM(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "bpt.csv", "\ufeff101,Smith,John\n")
	text, err := LoadSource(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text, "101,") {
		t.Fatalf("text=%q", text)
	}
}

func TestLoadSourceXLSX(t *testing.T) {
	blob := mkXLSX([][]any{
		{"", "Last", "First", "Qty", "", "", "", "Code"},
		{"", "Smith", "John", 2, "", "", "", "T9"},
		{"", "Doe, Jr", "Jim", 1, "", "", "", "T10"},
	})
	path := filepath.Join(t.TempDir(), "goldstar.xlsx")
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := LoadSource(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines=%q", lines)
	}
	if lines[1] != ",Smith,John,2,,,,T9" {
		t.Fatalf("line=%q", lines[1])
	}
	if lines[2] != `,"Doe, Jr",Jim,1,,,,T10` {
		t.Fatalf("line=%q", lines[2])
	}
	if !isGoldStarRow(lines[1]) || isGoldStarRow(lines[0]) {
		t.Fatal("classifier disagrees with flattened workbook rows")
	}
}

func TestLoadSourceHTMLTable(t *testing.T) {
	html := `<html><body><table>
<tr><th>Ticket</th><th>Last</th><th>First</th></tr>
<tr><td>101</td><td> Smith </td><td>John</td></tr>
<tr><td>102</td><td>Lee</td><td>Ann</td></tr>
</table></body></html>`
	path := writeFixture(t, t.TempDir(), "bpt.html", html)

	text, err := LoadSource(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Ticket,Last,First\n101,Smith,John\n102,Lee,Ann"
	if text != want {
		t.Fatalf("text=%q want %q", text, want)
	}
}

func TestLoadSourceEmailAttachment(t *testing.T) {
	raw := strings.Join([]string{
		"From: reports@vendor.example",
		"To: boxoffice@theatre.example",
		"Subject: Will call report",
		"MIME-Version: 1.0",
		`Content-Type: multipart/mixed; boundary="BOUNDARY"`,
		"",
		"--BOUNDARY",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Report attached.",
		"--BOUNDARY",
		`Content-Type: text/csv; name="report.csv"`,
		`Content-Disposition: attachment; filename="report.csv"`,
		"",
		",Smith,John,2,,,,T9",
		"--BOUNDARY--",
		"",
	}, "\r\n")
	path := writeFixture(t, t.TempDir(), "report.eml", raw)

	text, err := LoadSource(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, ",Smith,John,2,,,,T9") {
		t.Fatalf("text=%q", text)
	}
}

func TestLoadSourceEmailWithoutAttachment(t *testing.T) {
	raw := strings.Join([]string{
		"From: reports@vendor.example",
		"Subject: Extra seats",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Board,Chair,2,,R1",
		"",
	}, "\r\n")
	path := writeFixture(t, t.TempDir(), "extra.eml", raw)

	text, err := LoadSource(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "Board,Chair,2,,R1") {
		t.Fatalf("text=%q", text)
	}
}

func TestLoadSourceMissingFile(t *testing.T) {
	if _, err := LoadSource(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error")
	}
}
