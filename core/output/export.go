package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"powercost/internal/errors"
)

// Export writes the report to path as XLSX or PDF, chosen by the
// file extension.
func Export(path string, report *Report) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		data, err = BuildXLSX(report)
	case ".pdf":
		data, err = BuildPDF(report)
	default:
		return errors.Newf(errors.TypeConfig,
			"unsupported export extension %q (expected .xlsx or .pdf)", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Internal("writing export file", err)
	}
	return nil
}

// exportRows are the label/value pairs shared by both export formats
func exportRows(report *Report) [][2]string {
	r := report.Result
	return [][2]string{
		{"Winter Peak Usage (kWh)", fmt.Sprintf("%.2f", r.WinterPeakKWh)},
		{"Winter Peak Share (%)", fmt.Sprintf("%.1f", r.WinterPeakPct)},
		{"Winter Off-Peak Usage (kWh)", fmt.Sprintf("%.2f", r.WinterOffPeakKWh)},
		{"Winter Off-Peak Share (%)", fmt.Sprintf("%.1f", r.WinterOffPeakPct)},
		{"Summer Usage (kWh)", fmt.Sprintf("%.2f", r.SummerKWh)},
		{"Summer Share (%)", fmt.Sprintf("%.1f", r.SummerPct)},
		{"Total Usage (kWh)", fmt.Sprintf("%.2f", r.TotalKWh)},
		{"Winter Peak Cost", r.WinterPeakCost.StringFixed(2)},
		{"Winter Off-Peak Cost", r.WinterOffPeakCost.StringFixed(2)},
		{"Summer Cost", r.SummerCost.StringFixed(2)},
		{"Total Time-of-Use Cost", r.TotalTimeOfUseCost.StringFixed(2)},
		{"Total Fixed Rate Cost", r.TotalFixedRateCost.StringFixed(2)},
		{"Savings (fixed minus TOU)", r.Savings.StringFixed(2)},
	}
}

// BuildXLSX renders the report as an XLSX workbook with a summary
// sheet and an account sheet.
func BuildXLSX(report *Report) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	f.SetSheetName("Sheet1", summarySheet)

	_ = f.SetCellValue(summarySheet, "A1", "Power Usage Analysis")
	_ = f.SetCellValue(summarySheet, "B1", "Currency: "+report.Rates.Currency)
	for i, row := range exportRows(report) {
		n := i + 3
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", n), row[0])
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", n), row[1])
	}

	if len(report.Metadata) > 0 {
		accountSheet := "account"
		if _, err := f.NewSheet(accountSheet); err != nil {
			return nil, errors.Internal("building XLSX export", err)
		}
		n := 1
		for _, key := range []string{"Name", "Address", "Account Number"} {
			if value, ok := report.Metadata[key]; ok {
				_ = f.SetCellValue(accountSheet, fmt.Sprintf("A%d", n), key)
				_ = f.SetCellValue(accountSheet, fmt.Sprintf("B%d", n), value)
				n++
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Internal("building XLSX export", err)
	}
	return buf.Bytes(), nil
}

// BuildPDF renders the report as a one-page PDF
func BuildPDF(report *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Power Usage Analysis")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	for _, key := range []string{"Name", "Address", "Account Number"} {
		if value, ok := report.Metadata[key]; ok {
			pdf.Cell(0, 6, fmt.Sprintf("%s: %s", key, value))
			pdf.Ln(5)
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 6, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, "Value", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range exportRows(report) {
		pdf.CellFormat(90, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, row[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Internal("building PDF export", err)
	}
	return buf.Bytes(), nil
}
