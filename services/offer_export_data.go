package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// OfferParty holds the customer block of an offer document.
type OfferParty struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// OfferTerms holds the commercial text blocks printed at the end of an
// offer document.
type OfferTerms struct {
	Includes        string
	Excludes        string
	PaymentTerms    string
	ExecutionTime   string
	Warranty        string
	AdditionalNotes string
	ValidityDays    int
}

// OfferExportData is the flattened, display-ready form of one offer used by
// both the Excel and the PDF generators.
type OfferExportData struct {
	Title       string // document heading, e.g. "Central Heating Offer"
	ProjectName string
	OfferCode   string
	Date        string
	AttentionTo string

	Customer OfferParty
	Lines    []QuoteLine

	GrandTotal float64
	Terms      OfferTerms
}

func loadOfferParty(app *pocketbase.PocketBase, customerID string) (OfferParty, error) {
	if customerID == "" {
		return OfferParty{}, nil
	}
	record, err := app.FindRecordById("customers", customerID)
	if err != nil {
		return OfferParty{}, fmt.Errorf("load customer %s: %w", customerID, err)
	}
	return OfferParty{
		Name:    record.GetString("name"),
		Phone:   record.GetString("phone"),
		Email:   record.GetString("email"),
		Address: record.GetString("address"),
	}, nil
}

func loadOfferTerms(app *pocketbase.PocketBase, collection, projectID string) (OfferTerms, string, error) {
	record, err := app.FindRecordById(collection, projectID)
	if err != nil {
		return OfferTerms{}, "", fmt.Errorf("load project %s: %w", projectID, err)
	}
	terms := OfferTerms{
		Includes:        record.GetString("offer_includes"),
		Excludes:        record.GetString("offer_excludes"),
		PaymentTerms:    record.GetString("payment_terms"),
		ExecutionTime:   record.GetString("execution_time"),
		Warranty:        record.GetString("warranty"),
		AdditionalNotes: record.GetString("additional_notes"),
		ValidityDays:    record.GetInt("validity_days"),
	}
	return terms, record.GetDateTime("created").Time().Format("02 Jan 2006"), nil
}

// BuildHeatingOfferExport computes a heating project in memory and flattens
// it into export data. The store is not modified.
func BuildHeatingOfferExport(app *pocketbase.PocketBase, e *HeatingEngine, projectID string) (*OfferExportData, error) {
	p, _, _, err := LoadHeatingProject(app, e, projectID)
	if err != nil {
		return nil, err
	}
	e.RecomputeAll(p)

	customer, err := loadOfferParty(app, p.CustomerID)
	if err != nil {
		return nil, err
	}
	terms, date, err := loadOfferTerms(app, "heating_projects", projectID)
	if err != nil {
		return nil, err
	}

	return &OfferExportData{
		Title:       "Central Heating Offer",
		ProjectName: p.Name,
		OfferCode:   p.OfferCode,
		Date:        date,
		AttentionTo: p.AttentionTo,
		Customer:    customer,
		Lines:       BuildHeatingQuoteLines(p),
		GrandTotal:  p.GrandTotal,
		Terms:       terms,
	}, nil
}

// BuildCoolingOfferExport computes a cooling project in memory and flattens
// it into export data.
func BuildCoolingOfferExport(app *pocketbase.PocketBase, e *CoolingEngine, projectID string) (*OfferExportData, error) {
	p, _, _, err := LoadCoolingProject(app, e, projectID)
	if err != nil {
		return nil, err
	}
	e.RecomputeAll(p)

	customer, err := loadOfferParty(app, p.CustomerID)
	if err != nil {
		return nil, err
	}
	terms, date, err := loadOfferTerms(app, "cooling_projects", projectID)
	if err != nil {
		return nil, err
	}

	return &OfferExportData{
		Title:       "Air Conditioning Offer",
		ProjectName: p.Name,
		OfferCode:   p.OfferCode,
		Date:        date,
		AttentionTo: p.AttentionTo,
		Customer:    customer,
		Lines:       BuildCoolingQuoteLines(p),
		GrandTotal:  p.GrandTotal,
		Terms:       terms,
	}, nil
}

// BuildHotWaterOfferExport computes a hot water project in memory and
// flattens it into export data.
func BuildHotWaterOfferExport(app *pocketbase.PocketBase, e *HotWaterEngine, projectID string) (*OfferExportData, error) {
	p, _, _, err := LoadHotWaterProject(app, e, projectID)
	if err != nil {
		return nil, err
	}
	e.RecomputeAll(p)

	customer, err := loadOfferParty(app, p.CustomerID)
	if err != nil {
		return nil, err
	}
	terms, date, err := loadOfferTerms(app, "hotwater_projects", projectID)
	if err != nil {
		return nil, err
	}

	return &OfferExportData{
		Title:       "Hot Water Offer",
		ProjectName: p.Name,
		OfferCode:   p.OfferCode,
		Date:        date,
		AttentionTo: p.AttentionTo,
		Customer:    customer,
		Lines:       BuildHotWaterQuoteLines(p),
		GrandTotal:  p.GrandTotal,
		Terms:       terms,
	}, nil
}
