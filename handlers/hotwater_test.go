package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/masterline2023/hvac-calculation/testhelpers"
)

func TestHandleHotWaterSpaceCreateRecomputes(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "HW Customer")
	project := testhelpers.CreateTestHotWaterProject(t, app, "HW Villa", customer.Id)
	testhelpers.CreateTestWaterHeater(t, app, "WH 50", 50, 9000)
	testhelpers.CreateTestWaterHeater(t, app, "WH 120", 120, 17000)

	req := jsonRequest(t, http.MethodPost,
		fmt.Sprintf("/api/hotwater/projects/%s/spaces", project.Id),
		map[string]any{
			"name":         "Master Bath",
			"space_type":   "bathroom",
			"shower_count": 1,
			"sink_count":   1,
		})
	req.SetPathValue("id", project.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleHotWaterSpaceCreate(app)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	// One shower (50 LPD) and one sink (20 LPD).
	space := decodeJSON(t, rec)
	if space["demand_liters_per_day"] != float64(70) {
		t.Errorf("demand_liters_per_day = %v, want 70", space["demand_liters_per_day"])
	}
	if space["suggested_heater"] == "" {
		t.Error("expected a suggested water heater")
	}
}

func TestHandleHotWaterPoolSpace(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Pool Customer")
	project := testhelpers.CreateTestHotWaterProject(t, app, "Pool Villa", customer.Id)
	testhelpers.CreateTestPoolHeater(t, app, "PH 12", 12, 198000)

	req := jsonRequest(t, http.MethodPost,
		fmt.Sprintf("/api/hotwater/projects/%s/spaces", project.Id),
		map[string]any{
			"name":        "Outdoor Pool",
			"space_type":  "pool",
			"pool_length": 8,
			"pool_width":  4,
			"pool_depth":  1.5,
		})
	req.SetPathValue("id", project.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleHotWaterSpaceCreate(app)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	space := decodeJSON(t, rec)
	if space["pool_volume"] != float64(48) {
		t.Errorf("pool_volume = %v, want 48", space["pool_volume"])
	}
	if space["pool_heating_load_kw"] != float64(9.6) {
		t.Errorf("pool_heating_load_kw = %v, want 9.6", space["pool_heating_load_kw"])
	}
	if space["suggested_pool_heater"] == "" {
		t.Error("expected a suggested pool heater")
	}
}

func TestHandleHotWaterApplyTerms(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "HW Terms Customer")
	project := testhelpers.CreateTestHotWaterProject(t, app, "HW Terms", customer.Id)
	template := testhelpers.CreateTestTermsTemplate(t, app, "HW Terms Template")

	req := jsonRequest(t, http.MethodPost,
		fmt.Sprintf("/api/hotwater/projects/%s/apply-terms", project.Id),
		map[string]any{"template": template.Id})
	req.SetPathValue("id", project.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleHotWaterApplyTerms(app)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	body := decodeJSON(t, rec)
	if got, _ := body["payment_terms"].(string); got == "" {
		t.Error("payment_terms not copied from template")
	}
}

func TestHandleHotWaterQuotationAssignsOfferCode(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "HW Quote Customer")
	project := testhelpers.CreateTestHotWaterProject(t, app, "HW Quote", customer.Id)
	testhelpers.CreateTestWaterHeater(t, app, "WH 120", 120, 17000)
	testhelpers.CreateTestHotWaterSpace(t, app, project.Id, "Bath", "bathroom")

	req := jsonRequest(t, http.MethodPost,
		fmt.Sprintf("/api/hotwater/projects/%s/quotation", project.Id), nil)
	req.SetPathValue("id", project.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleHotWaterQuotation(app)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	// A draft without an offer code gets one when the quotation is made.
	reloaded, err := app.FindRecordById("hotwater_projects", project.Id)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if !strings.HasPrefix(reloaded.GetString("offer_code"), "HW-") {
		t.Errorf("offer_code = %q, want HW- prefix", reloaded.GetString("offer_code"))
	}
	if got := reloaded.GetString("state"); got != "quoted" {
		t.Errorf("state = %q, want quoted", got)
	}
}
