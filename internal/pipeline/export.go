package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"willcall/internal"
)

var exportHeaders = []string{"Last", "First", "Qty", "Source", "Tickets"}

// FormatRecord renders one will-call line. Embedded quotes are not escaped.
func FormatRecord(rec internal.AttendeeRecord) string {
	return fmt.Sprintf(`"%s","%s",%d,"%s","%s"`, rec.LastName, rec.FirstName, rec.Qty, rec.Source, RenderTicketRange(rec.TicketIDs))
}

func RenderCSV(records []internal.AttendeeRecord) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, ","))
	b.WriteString("\n")
	for _, rec := range records {
		b.WriteString(FormatRecord(rec))
		b.WriteString("\n")
	}
	return b.String()
}

func WriteCSV(text, outputPath string) error {
	if err := ensureDir(outputPath); err != nil {
		return err
	}
	return os.WriteFile(outputPath, []byte(text), 0o644)
}

func ExportRecordsToXLSX(records []internal.AttendeeRecord, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, rec.LastName)
		set(2, rec.FirstName)
		set(3, rec.Qty)
		set(4, rec.Source)
		set(5, RenderTicketRange(rec.TicketIDs))
	}

	if err := ensureDir(outputPath); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func ensureDir(outputPath string) error {
	return os.MkdirAll(filepath.Dir(outputPath), 0o755)
}
