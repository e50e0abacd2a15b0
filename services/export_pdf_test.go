package services

import (
	"testing"
)

func TestGenerateOfferPDF_Basic(t *testing.T) {
	data := sampleOfferExport()

	result, err := GenerateOfferPDF(data)
	if err != nil {
		t.Fatalf("GenerateOfferPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOfferPDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateOfferPDF_EmptyLines(t *testing.T) {
	data := &OfferExportData{
		Title: "Air Conditioning Offer",
		Date:  "15 Jan 2025",
	}

	result, err := GenerateOfferPDF(data)
	if err != nil {
		t.Fatalf("GenerateOfferPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOfferPDF() returned empty bytes")
	}
}

func TestGenerateOfferPDF_NoTerms(t *testing.T) {
	data := sampleOfferExport()
	data.Terms = OfferTerms{}

	result, err := GenerateOfferPDF(data)
	if err != nil {
		t.Fatalf("GenerateOfferPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOfferPDF() returned empty bytes")
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{1, "1"},
		{40, "40"},
		{2.5, "2.50"},
		{0.25, "0.25"},
	}

	for _, tt := range tests {
		if got := formatQty(tt.input); got != tt.expect {
			t.Errorf("formatQty(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestJoinNonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		parts  []string
		expect string
	}{
		{"all", []string{"a", "b", "c"}, "a | b | c"},
		{"gaps", []string{"a", "", "c"}, "a | c"},
		{"empty", []string{"", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinNonEmpty(tt.parts, " | "); got != tt.expect {
				t.Errorf("joinNonEmpty(%v) = %q, want %q", tt.parts, got, tt.expect)
			}
		})
	}
}
