package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Offer code prefixes, one per project domain.
const (
	HeatingOfferPrefix  = "CH" // central heating
	CoolingOfferPrefix  = "AC" // air conditioning
	HotWaterOfferPrefix = "HW"
)

// formatOfferCode constructs the offer code string from components.
func formatOfferCode(prefix string, year, sequence int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, sequence)
}

// GenerateOfferCode creates the next offer code for a project collection.
// Format: {prefix}-{year}-{sequence} with a 4-digit sequence counted per
// domain per calendar year.
func GenerateOfferCode(app *pocketbase.PocketBase, collection, prefix string, now time.Time) (string, error) {
	codePrefix := fmt.Sprintf("%s-%d-", prefix, now.Year())

	existing, err := app.FindRecordsByFilter(
		collection,
		"offer_code ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": codePrefix + "%"},
	)
	if err != nil {
		// No collection or no records yet, start at 1.
		existing = nil
	}

	return formatOfferCode(prefix, now.Year(), len(existing)+1), nil
}

// EnsureOfferCode assigns an offer code to a project record that has none.
// A code already present is never changed, so the code is stable from the
// first persistence onward. The record is not saved here.
func EnsureOfferCode(app *pocketbase.PocketBase, record *core.Record, prefix string, now time.Time) error {
	if record.GetString("offer_code") != "" {
		return nil
	}
	code, err := GenerateOfferCode(app, record.Collection().Name, prefix, now)
	if err != nil {
		return fmt.Errorf("generate offer code: %w", err)
	}
	record.Set("offer_code", code)
	return nil
}
