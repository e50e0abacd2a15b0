package services

import (
	"testing"

	"github.com/masterline2023/hvac-calculation/testhelpers"
)

func TestRecomputeHeatingProjectPersistsDerived(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestRadiator(t, app, "Alu 1000", "aluminum", 680, 1000, 10000)
	testhelpers.CreateTestRadiator(t, app, "Alu 1800", "aluminum", 680, 1800, 15000)
	big := testhelpers.CreateTestRadiator(t, app, "Alu 2500", "aluminum", 680, 2500, 20000)
	boiler := testhelpers.CreateTestBoiler(t, app, "Boiler 24", 24, 285000)
	testhelpers.CreateTestBoiler(t, app, "Boiler 35", 35, 325000)

	customer := testhelpers.CreateTestCustomer(t, app, "Heating Customer")
	project := testhelpers.CreateTestHeatingProject(t, app, "Villa Heating", customer.Id)
	space := testhelpers.CreateTestHeatingSpace(t, app, project.Id, "Living Room", 20)
	testhelpers.CreateTestPipingLine(t, app, project.Id, "PPR Pipe 25mm", 40, 500)

	engine, err := NewHeatingEngineFromApp(app)
	if err != nil {
		t.Fatalf("NewHeatingEngineFromApp: %v", err)
	}

	p, err := RecomputeHeatingProject(app, engine, project.Id)
	if err != nil {
		t.Fatalf("RecomputeHeatingProject: %v", err)
	}
	if p.GrandTotal != 285000+20000+20000 {
		t.Errorf("grand total = %v, want 325000", p.GrandTotal)
	}

	// The derived values must be readable from the store afterwards.
	spaceRec, err := app.FindRecordById("heating_spaces", space.Id)
	if err != nil {
		t.Fatalf("reload space: %v", err)
	}
	if got := spaceRec.GetFloat("heat_load"); got != 2000 {
		t.Errorf("stored heat_load = %v, want 2000", got)
	}
	if got := spaceRec.GetString("suggested_radiator"); got != big.Id {
		t.Errorf("stored suggested_radiator = %q, want %q", got, big.Id)
	}
	if got := spaceRec.GetInt("radiator_qty"); got != 1 {
		t.Errorf("stored radiator_qty = %d, want 1", got)
	}
	if got := spaceRec.GetFloat("space_subtotal"); got != 20000 {
		t.Errorf("stored space_subtotal = %v, want 20000", got)
	}

	projectRec, err := app.FindRecordById("heating_projects", project.Id)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if got := projectRec.GetString("suggested_boiler"); got != boiler.Id {
		t.Errorf("stored suggested_boiler = %q, want %q", got, boiler.Id)
	}
	if got := projectRec.GetFloat("total_heat_load_kw"); got != 2 {
		t.Errorf("stored total_heat_load_kw = %v, want 2", got)
	}
	if got := projectRec.GetFloat("piping_total"); got != 20000 {
		t.Errorf("stored piping_total = %v, want 20000", got)
	}
	if got := projectRec.GetFloat("grand_total"); got != 325000 {
		t.Errorf("stored grand_total = %v, want 325000", got)
	}
}

func TestRecomputeHeatingProjectFieldScoped(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestRadiator(t, app, "Alu 1000", "aluminum", 680, 1000, 10000)
	testhelpers.CreateTestRadiator(t, app, "Alu 2500", "aluminum", 680, 2500, 20000)
	testhelpers.CreateTestBoiler(t, app, "Boiler 24", 24, 285000)

	customer := testhelpers.CreateTestCustomer(t, app, "Scoped Customer")
	project := testhelpers.CreateTestHeatingProject(t, app, "Scoped", customer.Id)
	space := testhelpers.CreateTestHeatingSpace(t, app, project.Id, "Hall", 20)

	engine, err := NewHeatingEngineFromApp(app)
	if err != nil {
		t.Fatalf("NewHeatingEngineFromApp: %v", err)
	}
	if _, err := RecomputeHeatingProject(app, engine, project.Id); err != nil {
		t.Fatalf("initial recompute: %v", err)
	}

	// Lower the stored quantity by hand, then touch an unrelated field.
	// The scoped recompute must leave the manual quantity alone.
	spaceRec, err := app.FindRecordById("heating_spaces", space.Id)
	if err != nil {
		t.Fatalf("reload space: %v", err)
	}
	spaceRec.Set("radiator_qty", 1)
	spaceRec.Set("thermostat_price", 6000)
	if err := app.Save(spaceRec); err != nil {
		t.Fatalf("save space: %v", err)
	}

	if _, err := RecomputeHeatingProject(app, engine, project.Id, "thermostat_price"); err != nil {
		t.Fatalf("scoped recompute: %v", err)
	}

	spaceRec, err = app.FindRecordById("heating_spaces", space.Id)
	if err != nil {
		t.Fatalf("reload space: %v", err)
	}
	if got := spaceRec.GetInt("radiator_qty"); got != 1 {
		t.Errorf("scoped recompute changed radiator_qty to %d", got)
	}
}

// A scoped recompute must rewrite only the closure of the changed inputs;
// every other stored derived value keeps its previous state.
func TestRecomputeHeatingProjectScopedKeepsDerived(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestRadiator(t, app, "Alu 1000", "aluminum", 680, 1000, 10000)
	testhelpers.CreateTestRadiator(t, app, "Alu 2500", "aluminum", 680, 2500, 20000)
	testhelpers.CreateTestBoiler(t, app, "Boiler 24", 24, 285000)

	customer := testhelpers.CreateTestCustomer(t, app, "Closure Customer")
	project := testhelpers.CreateTestHeatingProject(t, app, "Closure Villa", customer.Id)
	space := testhelpers.CreateTestHeatingSpace(t, app, project.Id, "Living Room", 20)
	testhelpers.CreateTestPipingLine(t, app, project.Id, "PPR Pipe 25mm", 40, 500)

	engine, err := NewHeatingEngineFromApp(app)
	if err != nil {
		t.Fatalf("NewHeatingEngineFromApp: %v", err)
	}
	if _, err := RecomputeHeatingProject(app, engine, project.Id); err != nil {
		t.Fatalf("initial recompute: %v", err)
	}

	if _, err := RecomputeHeatingProject(app, engine, project.Id, "thermostat_price"); err != nil {
		t.Fatalf("scoped recompute: %v", err)
	}

	spaceRec, err := app.FindRecordById("heating_spaces", space.Id)
	if err != nil {
		t.Fatalf("reload space: %v", err)
	}
	if got := spaceRec.GetFloat("heat_load"); got != 2000 {
		t.Errorf("stored heat_load = %v, want 2000", got)
	}
	if got := spaceRec.GetFloat("radiator_subtotal"); got != 20000 {
		t.Errorf("stored radiator_subtotal = %v, want 20000", got)
	}
	if got := spaceRec.GetFloat("space_subtotal"); got != 20000 {
		t.Errorf("stored space_subtotal = %v, want 20000", got)
	}

	projectRec, err := app.FindRecordById("heating_projects", project.Id)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if got := projectRec.GetFloat("piping_total"); got != 20000 {
		t.Errorf("stored piping_total = %v, want 20000", got)
	}
	if got := projectRec.GetFloat("radiators_total"); got != 20000 {
		t.Errorf("stored radiators_total = %v, want 20000", got)
	}
	if got := projectRec.GetFloat("grand_total"); got != 325000 {
		t.Errorf("stored grand_total = %v, want 325000", got)
	}
}

// Cooling and hot water load the same way; one scoped pass over each must
// keep their stored totals.
func TestRecomputeCoolingProjectScopedKeepsDerived(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestFCU(t, app, "FCU 5.0", 5, 70000)
	testhelpers.CreateTestChiller(t, app, "Chiller 25", 25, 1450000)

	customer := testhelpers.CreateTestCustomer(t, app, "AC Closure Customer")
	project := testhelpers.CreateTestCoolingProject(t, app, "AC Closure", customer.Id)
	space := testhelpers.CreateTestCoolingSpace(t, app, project.Id, "Open Office", 30)

	engine, err := NewCoolingEngineFromApp(app)
	if err != nil {
		t.Fatalf("NewCoolingEngineFromApp: %v", err)
	}
	if _, err := RecomputeCoolingProject(app, engine, project.Id); err != nil {
		t.Fatalf("initial recompute: %v", err)
	}

	if _, err := RecomputeCoolingProject(app, engine, project.Id, "thermostat_price"); err != nil {
		t.Fatalf("scoped recompute: %v", err)
	}

	spaceRec, err := app.FindRecordById("cooling_spaces", space.Id)
	if err != nil {
		t.Fatalf("reload space: %v", err)
	}
	if got := spaceRec.GetFloat("cooling_load_watt"); got != 4500 {
		t.Errorf("stored cooling_load_watt = %v, want 4500", got)
	}
	if got := spaceRec.GetFloat("volume"); got != 90 {
		t.Errorf("stored volume = %v, want 90", got)
	}

	projectRec, err := app.FindRecordById("cooling_projects", project.Id)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if got := projectRec.GetFloat("grand_total"); got != 1450000+70000+3000 {
		t.Errorf("stored grand_total = %v, want 1523000", got)
	}
}

func TestRecomputeHotWaterProjectScopedKeepsDerived(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestWaterHeater(t, app, "Heater 50L", 50, 9000)

	customer := testhelpers.CreateTestCustomer(t, app, "HW Closure Customer")
	project := testhelpers.CreateTestHotWaterProject(t, app, "HW Closure", customer.Id)
	bath := testhelpers.CreateTestHotWaterSpace(t, app, project.Id, "Bath", "bathroom")
	bath.Set("shower_count", 1)
	bath.Set("sink_count", 1)
	if err := app.Save(bath); err != nil {
		t.Fatalf("save bath: %v", err)
	}

	engine, err := NewHotWaterEngineFromApp(app)
	if err != nil {
		t.Fatalf("NewHotWaterEngineFromApp: %v", err)
	}
	if _, err := RecomputeHotWaterProject(app, engine, project.Id); err != nil {
		t.Fatalf("initial recompute: %v", err)
	}

	if _, err := RecomputeHotWaterProject(app, engine, project.Id, "equipment_discount"); err != nil {
		t.Fatalf("scoped recompute: %v", err)
	}

	bathRec, err := app.FindRecordById("hotwater_spaces", bath.Id)
	if err != nil {
		t.Fatalf("reload bath: %v", err)
	}
	if got := bathRec.GetFloat("demand_liters_per_day"); got != 70 {
		t.Errorf("stored demand = %v, want 70", got)
	}

	projectRec, err := app.FindRecordById("hotwater_projects", project.Id)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if got := projectRec.GetFloat("grand_total"); got != 9000 {
		t.Errorf("stored grand_total = %v, want 9000", got)
	}
}

func TestRecomputeCoolingProjectPersistsDerived(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestFCU(t, app, "FCU 2.0", 2, 52000)
	testhelpers.CreateTestFCU(t, app, "FCU 3.5", 3.5, 61000)
	fcu5 := testhelpers.CreateTestFCU(t, app, "FCU 5.0", 5, 70000)
	chiller := testhelpers.CreateTestChiller(t, app, "Chiller 25", 25, 1450000)

	customer := testhelpers.CreateTestCustomer(t, app, "Cooling Customer")
	project := testhelpers.CreateTestCoolingProject(t, app, "Office Cooling", customer.Id)
	space := testhelpers.CreateTestCoolingSpace(t, app, project.Id, "Open Office", 30)

	engine, err := NewCoolingEngineFromApp(app)
	if err != nil {
		t.Fatalf("NewCoolingEngineFromApp: %v", err)
	}

	p, err := RecomputeCoolingProject(app, engine, project.Id)
	if err != nil {
		t.Fatalf("RecomputeCoolingProject: %v", err)
	}
	if p.TotalCoolingLoadWatt != 4500 {
		t.Errorf("total load = %v W, want 4500", p.TotalCoolingLoadWatt)
	}

	spaceRec, err := app.FindRecordById("cooling_spaces", space.Id)
	if err != nil {
		t.Fatalf("reload space: %v", err)
	}
	if got := spaceRec.GetFloat("cooling_load_watt"); got != 4500 {
		t.Errorf("stored cooling_load_watt = %v, want 4500", got)
	}
	if got := spaceRec.GetFloat("volume"); got != 90 {
		t.Errorf("stored volume = %v, want 90", got)
	}
	if got := spaceRec.GetString("suggested_fcu"); got != fcu5.Id {
		t.Errorf("stored suggested_fcu = %q, want %q", got, fcu5.Id)
	}

	projectRec, err := app.FindRecordById("cooling_projects", project.Id)
	if err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if got := projectRec.GetString("suggested_chiller"); got != chiller.Id {
		t.Errorf("stored suggested_chiller = %q, want %q", got, chiller.Id)
	}
	if got := projectRec.GetFloat("grand_total"); got != 1450000+70000+3000 {
		t.Errorf("stored grand_total = %v, want 1523000", got)
	}
}

func TestRecomputeHotWaterProjectPersistsDerived(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	wh50 := testhelpers.CreateTestWaterHeater(t, app, "Heater 50L", 50, 9000)
	testhelpers.CreateTestWaterHeater(t, app, "Heater 80L", 80, 12500)
	ph12 := testhelpers.CreateTestPoolHeater(t, app, "Pool Heater 12kW", 12, 198000)

	customer := testhelpers.CreateTestCustomer(t, app, "HW Customer")
	project := testhelpers.CreateTestHotWaterProject(t, app, "Villa Hot Water", customer.Id)

	bath := testhelpers.CreateTestHotWaterSpace(t, app, project.Id, "Master Bath", "bathroom")
	bath.Set("shower_count", 1)
	bath.Set("sink_count", 1)
	if err := app.Save(bath); err != nil {
		t.Fatalf("save bath: %v", err)
	}

	pool := testhelpers.CreateTestHotWaterSpace(t, app, project.Id, "Garden Pool", "pool")
	pool.Set("pool_length", 8)
	pool.Set("pool_width", 4)
	pool.Set("pool_depth", 1.5)
	if err := app.Save(pool); err != nil {
		t.Fatalf("save pool: %v", err)
	}

	engine, err := NewHotWaterEngineFromApp(app)
	if err != nil {
		t.Fatalf("NewHotWaterEngineFromApp: %v", err)
	}

	p, err := RecomputeHotWaterProject(app, engine, project.Id)
	if err != nil {
		t.Fatalf("RecomputeHotWaterProject: %v", err)
	}
	if p.GrandTotal != 9000+198000 {
		t.Errorf("grand total = %v, want 207000", p.GrandTotal)
	}

	bathRec, err := app.FindRecordById("hotwater_spaces", bath.Id)
	if err != nil {
		t.Fatalf("reload bath: %v", err)
	}
	if got := bathRec.GetFloat("demand_liters_per_day"); got != 70 {
		t.Errorf("stored demand = %v, want 70", got)
	}
	if got := bathRec.GetString("suggested_heater"); got != wh50.Id {
		t.Errorf("stored suggested_heater = %q, want %q", got, wh50.Id)
	}

	poolRec, err := app.FindRecordById("hotwater_spaces", pool.Id)
	if err != nil {
		t.Fatalf("reload pool: %v", err)
	}
	if got := poolRec.GetFloat("pool_volume"); got != 48 {
		t.Errorf("stored pool_volume = %v, want 48", got)
	}
	if got := poolRec.GetFloat("pool_heating_load_kw"); got != 9.6 {
		t.Errorf("stored pool_heating_load_kw = %v, want 9.6", got)
	}
	if got := poolRec.GetString("suggested_pool_heater"); got != ph12.Id {
		t.Errorf("stored suggested_pool_heater = %q, want %q", got, ph12.Id)
	}
	if got := poolRec.GetString("suggested_heater"); got != "" {
		t.Errorf("pool must not carry a water heater suggestion, got %q", got)
	}
}
