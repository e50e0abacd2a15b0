package services

import "bytes"

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// sampleOfferExport returns a small, fully populated offer for export tests.
func sampleOfferExport() *OfferExportData {
	return &OfferExportData{
		Title:       "Central Heating Offer",
		ProjectName: "Villa Heating",
		OfferCode:   "CH-2025-0001",
		Date:        "15 Jan 2025",
		AttentionTo: "Site Engineer",
		Customer: OfferParty{
			Name:    "Horizon Development LLC",
			Phone:   "+995 32 212 4455",
			Email:   "projects@horizondev.example",
			Address: "14 Kazbegi Avenue, Tbilisi",
		},
		Lines: []QuoteLine{
			{Description: "Boiler 24kW (24 kW)", Qty: 1, UnitPrice: 285000},
			{Description: "Alu 2500 - Living Room", Qty: 2, UnitPrice: 20000},
			{Description: "PPR Pipe 25mm", Qty: 40, UnitPrice: 500},
		},
		GrandTotal: 345000,
		Terms: OfferTerms{
			Includes:     "Supply and installation.",
			Excludes:     "Civil works.",
			PaymentTerms: "50% advance, 50% on completion.",
			Warranty:     "2 years.",
			ValidityDays: 30,
		},
	}
}
