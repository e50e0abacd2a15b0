package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/masterline2023/hvac-calculation/testhelpers"
)

func TestHandleCatalogListActiveOnly(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestRadiator(t, app, "Alu 1000", "aluminum", 680, 1000, 10000)
	old := testhelpers.CreateTestRadiator(t, app, "Alu 1800", "aluminum", 680, 1800, 15000)

	// Retire one item.
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/catalogs/radiators/%s/deactivate", old.Id), nil)
	req.SetPathValue("catalog", "radiators")
	req.SetPathValue("id", old.Id)
	rec := httptest.NewRecorder()
	if err := HandleCatalogDeactivate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("deactivate error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("deactivate status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/catalogs/radiators", nil)
	req.SetPathValue("catalog", "radiators")
	rec = httptest.NewRecorder()
	if err := HandleCatalogList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("list error: %v", err)
	}
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("active list has %d items, want 1", len(items))
	}
	if items[0]["name"] != "Alu 1000" {
		t.Errorf("remaining item = %v", items[0]["name"])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/catalogs/radiators?all=1", nil)
	req.SetPathValue("catalog", "radiators")
	rec = httptest.NewRecorder()
	if err := HandleCatalogList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("list all error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("full list has %d items, want 2", len(items))
	}
}

func TestHandleCatalogListUnknown(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalogs/heating_projects", nil)
	req.SetPathValue("catalog", "heating_projects")
	rec := httptest.NewRecorder()
	if err := HandleCatalogList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// A deactivated radiator must no longer be suggested, but projects that
// already reference it keep resolving it.
func TestDeactivatedItemSkippedBySizing(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Retire Customer")
	project := testhelpers.CreateTestHeatingProject(t, app, "Retire Villa", customer.Id)
	small := testhelpers.CreateTestRadiator(t, app, "Alu 2500", "aluminum", 680, 2500, 20000)
	testhelpers.CreateTestRadiator(t, app, "Alu 3000", "aluminum", 680, 3000, 26000)
	testhelpers.CreateTestBoiler(t, app, "Boiler 24", 24, 285000)
	space := testhelpers.CreateTestHeatingSpace(t, app, project.Id, "Living Room", 20)

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/catalogs/radiators/%s/deactivate", small.Id), nil)
	req.SetPathValue("catalog", "radiators")
	req.SetPathValue("id", small.Id)
	rec := httptest.NewRecorder()
	if err := HandleCatalogDeactivate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("deactivate error: %v", err)
	}

	req = httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/heating/projects/%s/recompute", project.Id), nil)
	req.SetPathValue("id", project.Id)
	rec = httptest.NewRecorder()
	if err := HandleHeatingProjectRecompute(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("recompute error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("recompute status = %d, body: %s", rec.Code, rec.Body.String())
	}

	reloaded, err := app.FindRecordById("heating_spaces", space.Id)
	if err != nil {
		t.Fatalf("reload space: %v", err)
	}
	if got := reloaded.GetString("suggested_radiator"); got == small.Id {
		t.Error("deactivated radiator still suggested")
	}
}
