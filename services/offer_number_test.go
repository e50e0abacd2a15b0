package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/masterline2023/hvac-calculation/testhelpers"
)

func TestFormatOfferCode(t *testing.T) {
	tests := []struct {
		prefix   string
		year     int
		sequence int
		expect   string
	}{
		{HeatingOfferPrefix, 2025, 1, "CH-2025-0001"},
		{CoolingOfferPrefix, 2025, 42, "AC-2025-0042"},
		{HotWaterOfferPrefix, 2026, 999, "HW-2026-0999"},
		{HeatingOfferPrefix, 2026, 10000, "CH-2026-10000"},
	}

	for _, tt := range tests {
		if got := formatOfferCode(tt.prefix, tt.year, tt.sequence); got != tt.expect {
			t.Errorf("formatOfferCode(%q, %d, %d) = %q, want %q",
				tt.prefix, tt.year, tt.sequence, got, tt.expect)
		}
	}
}

func TestGenerateOfferCodeSequence(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Seq Customer")
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	code, err := GenerateOfferCode(app, "heating_projects", HeatingOfferPrefix, now)
	if err != nil {
		t.Fatalf("GenerateOfferCode: %v", err)
	}
	if code != "CH-2025-0001" {
		t.Fatalf("first code = %q, want CH-2025-0001", code)
	}

	// Persist three coded projects; the next code must be the fourth.
	for i := 1; i <= 3; i++ {
		record := testhelpers.CreateTestHeatingProject(t, app, fmt.Sprintf("Project %d", i), customer.Id)
		record.Set("offer_code", formatOfferCode(HeatingOfferPrefix, 2025, i))
		if err := app.Save(record); err != nil {
			t.Fatalf("save project %d: %v", i, err)
		}
	}

	code, err = GenerateOfferCode(app, "heating_projects", HeatingOfferPrefix, now)
	if err != nil {
		t.Fatalf("GenerateOfferCode: %v", err)
	}
	if code != "CH-2025-0004" {
		t.Errorf("next code = %q, want CH-2025-0004", code)
	}
}

func TestEnsureOfferCodeIsStable(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Stable Customer")
	record := testhelpers.CreateTestHeatingProject(t, app, "Villa", customer.Id)
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	if err := EnsureOfferCode(app, record, HeatingOfferPrefix, now); err != nil {
		t.Fatalf("EnsureOfferCode: %v", err)
	}
	first := record.GetString("offer_code")
	if first != "CH-2025-0001" {
		t.Fatalf("assigned code = %q, want CH-2025-0001", first)
	}
	if err := app.Save(record); err != nil {
		t.Fatalf("save project: %v", err)
	}

	// Calling again must never reassign, even after other projects are coded.
	other := testhelpers.CreateTestHeatingProject(t, app, "Other", customer.Id)
	if err := EnsureOfferCode(app, other, HeatingOfferPrefix, now); err != nil {
		t.Fatalf("EnsureOfferCode(other): %v", err)
	}
	if got := other.GetString("offer_code"); got != "CH-2025-0002" {
		t.Errorf("second project code = %q, want CH-2025-0002", got)
	}

	if err := EnsureOfferCode(app, record, HeatingOfferPrefix, now); err != nil {
		t.Fatalf("EnsureOfferCode (repeat): %v", err)
	}
	if got := record.GetString("offer_code"); got != first {
		t.Errorf("repeat changed code from %q to %q", first, got)
	}
}

func TestOfferCodePrefixesAreIndependent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Multi Customer")
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	heating := testhelpers.CreateTestHeatingProject(t, app, "Heating", customer.Id)
	heating.Set("offer_code", "CH-2025-0001")
	if err := app.Save(heating); err != nil {
		t.Fatalf("save heating: %v", err)
	}

	// A cooling project in the same year starts its own sequence.
	code, err := GenerateOfferCode(app, "cooling_projects", CoolingOfferPrefix, now)
	if err != nil {
		t.Fatalf("GenerateOfferCode: %v", err)
	}
	if code != "AC-2025-0001" {
		t.Errorf("cooling code = %q, want AC-2025-0001", code)
	}
}
