// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/masterline2023/hvac-calculation/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCustomer creates a customer record with the given name and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("phone", "+995 32 200 0000")
	record.Set("email", "office@example.test")
	record.Set("address", "1 Test Street, Tbilisi")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestHeatingProject creates a heating project record in draft state.
func CreateTestHeatingProject(t *testing.T, app *pocketbase.PocketBase, name, customerID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("heating_projects")
	if err != nil {
		t.Fatalf("failed to find heating_projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("customer", customerID)
	record.Set("state", "draft")
	record.Set("boiler_qty", 1)
	record.Set("validity_days", 30)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test heating project: %v", err)
	}

	return record
}

// CreateTestCoolingProject creates a cooling project record in draft state.
func CreateTestCoolingProject(t *testing.T, app *pocketbase.PocketBase, name, customerID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("cooling_projects")
	if err != nil {
		t.Fatalf("failed to find cooling_projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("customer", customerID)
	record.Set("state", "draft")
	record.Set("chiller_qty", 1)
	record.Set("validity_days", 30)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test cooling project: %v", err)
	}

	return record
}

// CreateTestHotWaterProject creates a hot water project record in draft state.
func CreateTestHotWaterProject(t *testing.T, app *pocketbase.PocketBase, name, customerID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("hotwater_projects")
	if err != nil {
		t.Fatalf("failed to find hotwater_projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("customer", customerID)
	record.Set("state", "draft")
	record.Set("validity_days", 30)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test hot water project: %v", err)
	}

	return record
}

// CreateTestHeatingSpace creates a heating space linked to a project.
func CreateTestHeatingSpace(t *testing.T, app *pocketbase.PocketBase, projectID, roomName string, area float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("heating_spaces")
	if err != nil {
		t.Fatalf("failed to find heating_spaces collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("room_name", roomName)
	record.Set("floor", "ground")
	record.Set("area", area)
	record.Set("watt_per_sqm", 100)
	record.Set("room_qty", 1)
	record.Set("system_type", "radiator")
	record.Set("preferred_height", 680)
	record.Set("radiator_qty", 1)
	record.Set("thermostat_price", 5000)
	record.Set("ufh_price_per_sqm", 1500)
	record.Set("sort_order", 10)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test heating space: %v", err)
	}

	return record
}

// CreateTestCoolingSpace creates a cooling space linked to a project.
func CreateTestCoolingSpace(t *testing.T, app *pocketbase.PocketBase, projectID, roomName string, area float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("cooling_spaces")
	if err != nil {
		t.Fatalf("failed to find cooling_spaces collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("room_name", roomName)
	record.Set("floor", "ground")
	record.Set("area", area)
	record.Set("height", 3)
	record.Set("watt_per_sqm", 150)
	record.Set("room_qty", 1)
	record.Set("system_type", "fcu")
	record.Set("fcu_qty", 1)
	record.Set("thermostat_price", 3000)
	record.Set("sort_order", 10)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test cooling space: %v", err)
	}

	return record
}

// CreateTestHotWaterSpace creates a hot water space linked to a project.
func CreateTestHotWaterSpace(t *testing.T, app *pocketbase.PocketBase, projectID, name, spaceType string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("hotwater_spaces")
	if err != nil {
		t.Fatalf("failed to find hotwater_spaces collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("name", name)
	record.Set("space_type", spaceType)
	record.Set("qty", 1)
	record.Set("heater_qty", 1)
	record.Set("sort_order", 10)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test hot water space: %v", err)
	}

	return record
}

// CreateTestRadiator creates a radiator catalog record.
func CreateTestRadiator(t *testing.T, app *pocketbase.PocketBase, name, radType string, height, wattOutput, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("radiators")
	if err != nil {
		t.Fatalf("failed to find radiators collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", radType)
	record.Set("height", height)
	record.Set("watt_output", wattOutput)
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test radiator: %v", err)
	}

	return record
}

// CreateTestBoiler creates a boiler catalog record.
func CreateTestBoiler(t *testing.T, app *pocketbase.PocketBase, name string, kwOutput, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("boilers")
	if err != nil {
		t.Fatalf("failed to find boilers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "wall")
	record.Set("fuel_type", "gas")
	record.Set("kw_output", kwOutput)
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test boiler: %v", err)
	}

	return record
}

// CreateTestChiller creates a chiller catalog record.
func CreateTestChiller(t *testing.T, app *pocketbase.PocketBase, name string, capacityKw, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("chillers")
	if err != nil {
		t.Fatalf("failed to find chillers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "air_cooled")
	record.Set("cooling_capacity_kw", capacityKw)
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test chiller: %v", err)
	}

	return record
}

// CreateTestFCU creates a fan coil unit catalog record.
func CreateTestFCU(t *testing.T, app *pocketbase.PocketBase, name string, capacityKw, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("fcus")
	if err != nil {
		t.Fatalf("failed to find fcus collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "ceiling_concealed")
	record.Set("cooling_capacity_kw", capacityKw)
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test FCU: %v", err)
	}

	return record
}

// CreateTestPipingMaterial creates a piping material catalog record.
func CreateTestPipingMaterial(t *testing.T, app *pocketbase.PocketBase, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("piping_materials")
	if err != nil {
		t.Fatalf("failed to find piping_materials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "ppr")
	record.Set("unit", "Meter")
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test piping material: %v", err)
	}

	return record
}

// CreateTestDuctMaterial creates a duct material catalog record.
func CreateTestDuctMaterial(t *testing.T, app *pocketbase.PocketBase, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("duct_materials")
	if err != nil {
		t.Fatalf("failed to find duct_materials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "gi")
	record.Set("unit", "sqm")
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test duct material: %v", err)
	}

	return record
}

// CreateTestDiffuser creates a diffuser catalog record.
func CreateTestDiffuser(t *testing.T, app *pocketbase.PocketBase, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("diffusers")
	if err != nil {
		t.Fatalf("failed to find diffusers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "supply_square")
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test diffuser: %v", err)
	}

	return record
}

// CreateTestAHU creates an air handling unit catalog record.
func CreateTestAHU(t *testing.T, app *pocketbase.PocketBase, name string, airflowCFM, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("ahus")
	if err != nil {
		t.Fatalf("failed to find ahus collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "standard")
	record.Set("airflow_cfm", airflowCFM)
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test AHU: %v", err)
	}

	return record
}

// CreateTestWaterHeater creates a water heater catalog record.
func CreateTestWaterHeater(t *testing.T, app *pocketbase.PocketBase, name string, capacityLiters, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("water_heaters")
	if err != nil {
		t.Fatalf("failed to find water_heaters collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "electric_storage")
	record.Set("capacity_liters", capacityLiters)
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test water heater: %v", err)
	}

	return record
}

// CreateTestPoolHeater creates a pool heater catalog record.
func CreateTestPoolHeater(t *testing.T, app *pocketbase.PocketBase, name string, capacityKw, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("pool_heaters")
	if err != nil {
		t.Fatalf("failed to find pool_heaters collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("type", "heat_pump")
	record.Set("heating_capacity_kw", capacityKw)
	record.Set("price", price)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test pool heater: %v", err)
	}

	return record
}

// CreateTestTermsTemplate creates a terms template that applies to all domains.
func CreateTestTermsTemplate(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("terms_templates")
	if err != nil {
		t.Fatalf("failed to find terms_templates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("apply_heating", true)
	record.Set("apply_cooling", true)
	record.Set("apply_hotwater", true)
	record.Set("offer_includes", "Supply and installation.")
	record.Set("offer_excludes", "Civil works.")
	record.Set("payment_terms", "50% advance, 50% on completion.")
	record.Set("execution_time", "4 weeks.")
	record.Set("warranty", "2 years.")
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test terms template: %v", err)
	}

	return record
}

// CreateTestPipingLine creates a piping line linked to a heating project.
func CreateTestPipingLine(t *testing.T, app *pocketbase.PocketBase, projectID, name string, qty, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("piping_lines")
	if err != nil {
		t.Fatalf("failed to find piping_lines collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("name", name)
	record.Set("unit", "Meter")
	record.Set("quantity", qty)
	record.Set("unit_price", unitPrice)
	record.Set("sort_order", 10)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test piping line: %v", err)
	}

	return record
}
