package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateOfferExcel_Basic(t *testing.T) {
	data := sampleOfferExport()

	result, err := GenerateOfferExcel(data)
	if err != nil {
		t.Fatalf("GenerateOfferExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOfferExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	// Sheet is named after the offer code
	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "CH-2025-0001" {
		t.Errorf("expected sheet name 'CH-2025-0001', got %v", sheets)
	}

	// Check title cell
	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Central Heating Offer" {
		t.Errorf("expected title 'Central Heating Offer', got %q", title)
	}

	// First line item lands in row 8
	desc, _ := f.GetCellValue(sheets[0], "B8")
	if desc != "Boiler 24kW (24 kW)" {
		t.Errorf("expected first line description, got %q", desc)
	}
	subtotal, _ := f.GetCellValue(sheets[0], "E9")
	if subtotal != "40,000.00" {
		t.Errorf("expected second line subtotal '40,000.00', got %q", subtotal)
	}
}

func TestGenerateOfferExcel_EmptyLines(t *testing.T) {
	data := &OfferExportData{
		Title: "Hot Water Offer",
		Date:  "15 Jan 2025",
	}

	result, err := GenerateOfferExcel(data)
	if err != nil {
		t.Fatalf("GenerateOfferExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOfferExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	// Missing offer code falls back to a generic sheet name
	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Offer" {
		t.Errorf("expected sheet name 'Offer', got %v", sheets)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"plain", "Boiler 24kW", "Boiler 24kW"},
		{"empty", "", ""},
		{"formula", "=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"plus", "+1000", "'+1000"},
		{"minus", "-discount", "'-discount"},
		{"at", "@cmd", "'@cmd"},
		{"pipe", "|pipe", "'|pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Fatalf("expected 4 borders, got %d", len(borders))
	}
	for _, b := range borders {
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1", b.Type, b.Style)
		}
	}
}
