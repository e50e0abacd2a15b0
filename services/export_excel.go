package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateOfferExcel creates an Excel workbook from the given offer data and
// returns the file contents as a byte slice.
func GenerateOfferExcel(data *OfferExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars).
	sheetName := data.OfferCode
	if sheetName == "" {
		sheetName = "Offer"
	}
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through E).
	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1] // "E"

	// Set column widths.
	widths := []float64{6, 52, 10, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	// Title style: bold, 16pt.
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	// Subtitle style (offer code, date, customer).
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Line item style: normal with borders.
	lineStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	// Summary label style: bold, right-aligned.
	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	// Summary value style: bold.
	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-5) ───────────────────────────────────────────────

	// Row 1: Title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 2: Offer code (if present).
	if data.OfferCode != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge code: %w", err)
		}
		f.SetCellValue(sheetName, "A2", "Offer: "+data.OfferCode)
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	// Row 3: Date.
	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+data.Date)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// Row 4: Customer.
	if data.Customer.Name != "" {
		if err := f.MergeCell(sheetName, "A4", lastCol+"4"); err != nil {
			return nil, fmt.Errorf("merge customer: %w", err)
		}
		f.SetCellValue(sheetName, "A4", "Customer: "+sanitizeExcelCell(data.Customer.Name))
		f.SetCellStyle(sheetName, "A4", lastCol+"4", subtitleStyle)
	}

	// Row 5: Attention line.
	if data.AttentionTo != "" {
		if err := f.MergeCell(sheetName, "A5", lastCol+"5"); err != nil {
			return nil, fmt.Errorf("merge attention: %w", err)
		}
		f.SetCellValue(sheetName, "A5", "Attn: "+sanitizeExcelCell(data.AttentionTo))
		f.SetCellStyle(sheetName, "A5", lastCol+"5", subtitleStyle)
	}

	// ── Row 7: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Description", "Qty", "Unit Price", "Subtotal"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s7", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A7", lastCol+"7", headerStyle)

	// ── Data Rows (starting row 8) ──────────────────────────────────────

	row := 8
	for i, l := range data.Lines {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, i+1)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(l.Description))
		f.SetCellValue(sheetName, "C"+rowStr, l.Qty)
		f.SetCellValue(sheetName, "D"+rowStr, FormatMoney(l.UnitPrice))
		f.SetCellValue(sheetName, "E"+rowStr, FormatMoney(l.Subtotal()))

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, lineStyle)

		row++
	}

	// ── Summary Row ─────────────────────────────────────────────────────

	// Skip a blank row.
	row++

	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "D"+summaryRow, "Grand Total:")
	f.SetCellStyle(sheetName, "D"+summaryRow, "D"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "E"+summaryRow, FormatMoney(data.GrandTotal))
	f.SetCellStyle(sheetName, "E"+summaryRow, "E"+summaryRow, summaryValueStyle)
	row += 2

	// ── Terms ───────────────────────────────────────────────────────────

	termsRows := []struct{ label, value string }{
		{"Offer Includes", data.Terms.Includes},
		{"Offer Excludes", data.Terms.Excludes},
		{"Payment Terms", data.Terms.PaymentTerms},
		{"Execution Time", data.Terms.ExecutionTime},
		{"Warranty", data.Terms.Warranty},
		{"Notes", data.Terms.AdditionalNotes},
	}
	for _, tr := range termsRows {
		if tr.value == "" {
			continue
		}
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, tr.label+":")
		if err := f.MergeCell(sheetName, "B"+rowStr, lastCol+rowStr); err != nil {
			return nil, fmt.Errorf("merge terms row: %w", err)
		}
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(tr.value))
		row++
	}

	if data.Terms.ValidityDays > 0 {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, "Validity:")
		f.SetCellValue(sheetName, "B"+rowStr, fmt.Sprintf("%d days", data.Terms.ValidityDays))
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
