package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type boilerDef struct {
	name       string
	boilerType string
	fuelType   string
	brand      string
	model      string
	kwOutput   float64
	efficiency float64
	price      float64
}

type radiatorDef struct {
	name       string
	radType    string
	brand      string
	height     float64
	width      float64
	wattOutput float64
	sections   float64
	price      float64
}

type chillerDef struct {
	name        string
	chillerType string
	brand       string
	capacityKw  float64
	powerInput  float64
	cop         float64
	price       float64
}

type fcuDef struct {
	name       string
	fcuType    string
	brand      string
	capacityKw float64
	airflowCfm float64
	price      float64
}

type ahuDef struct {
	name       string
	ahuType    string
	brand      string
	airflowCfm float64
	capacityKw float64
	price      float64
}

type waterHeaterDef struct {
	name           string
	heaterType     string
	brand          string
	capacityLiters float64
	flowRateLpm    float64
	powerKw        float64
	price          float64
}

type poolHeaterDef struct {
	name       string
	heaterType string
	brand      string
	capacityKw float64
	cop        float64
	price      float64
}

type pipingMaterialDef struct {
	name     string
	pipeType string
	diameter float64
	unit     string
	price    float64
}

type ductMaterialDef struct {
	name      string
	ductType  string
	thickness float64
	insulated bool
	unit      string
	price     float64
}

type diffuserDef struct {
	name         string
	diffuserType string
	size         string
	airflowCfm   float64
	material     string
	price        float64
}

type poolEquipmentDef struct {
	name      string
	equipType string
	brand     string
	flowRate  float64
	powerKw   float64
	price     float64
}

// Seed populates the equipment catalogs, a default terms template and a demo
// customer. It is safe to call on every startup because it returns early if
// any radiator records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if catalogs already populated ──────────────
	radiatorsCol, err := app.FindCollectionByNameOrId("radiators")
	if err != nil {
		return fmt.Errorf("seed: could not find radiators collection: %w", err)
	}
	existing, err := app.FindAllRecords(radiatorsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query radiators: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: catalogs are empty – inserting seed data …")

	// ── lookup helper collections ────────────────────────────────────
	boilersCol, err := app.FindCollectionByNameOrId("boilers")
	if err != nil {
		return fmt.Errorf("seed: could not find boilers collection: %w", err)
	}
	chillersCol, err := app.FindCollectionByNameOrId("chillers")
	if err != nil {
		return fmt.Errorf("seed: could not find chillers collection: %w", err)
	}
	fcusCol, err := app.FindCollectionByNameOrId("fcus")
	if err != nil {
		return fmt.Errorf("seed: could not find fcus collection: %w", err)
	}
	ahusCol, err := app.FindCollectionByNameOrId("ahus")
	if err != nil {
		return fmt.Errorf("seed: could not find ahus collection: %w", err)
	}
	waterHeatersCol, err := app.FindCollectionByNameOrId("water_heaters")
	if err != nil {
		return fmt.Errorf("seed: could not find water_heaters collection: %w", err)
	}
	poolHeatersCol, err := app.FindCollectionByNameOrId("pool_heaters")
	if err != nil {
		return fmt.Errorf("seed: could not find pool_heaters collection: %w", err)
	}
	pipingMaterialsCol, err := app.FindCollectionByNameOrId("piping_materials")
	if err != nil {
		return fmt.Errorf("seed: could not find piping_materials collection: %w", err)
	}
	ductMaterialsCol, err := app.FindCollectionByNameOrId("duct_materials")
	if err != nil {
		return fmt.Errorf("seed: could not find duct_materials collection: %w", err)
	}
	diffusersCol, err := app.FindCollectionByNameOrId("diffusers")
	if err != nil {
		return fmt.Errorf("seed: could not find diffusers collection: %w", err)
	}
	poolEquipmentCol, err := app.FindCollectionByNameOrId("pool_equipment")
	if err != nil {
		return fmt.Errorf("seed: could not find pool_equipment collection: %w", err)
	}
	termsCol, err := app.FindCollectionByNameOrId("terms_templates")
	if err != nil {
		return fmt.Errorf("seed: could not find terms_templates collection: %w", err)
	}
	customersCol, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return fmt.Errorf("seed: could not find customers collection: %w", err)
	}

	// ── helper: create boiler ────────────────────────────────────────
	createBoiler := func(d boilerDef) error {
		r := core.NewRecord(boilersCol)
		r.Set("name", d.name)
		r.Set("type", d.boilerType)
		r.Set("fuel_type", d.fuelType)
		r.Set("brand", d.brand)
		r.Set("model", d.model)
		r.Set("kw_output", d.kwOutput)
		r.Set("efficiency", d.efficiency)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create radiator ──────────────────────────────────────
	createRadiator := func(d radiatorDef) error {
		r := core.NewRecord(radiatorsCol)
		r.Set("name", d.name)
		r.Set("type", d.radType)
		r.Set("brand", d.brand)
		r.Set("height", d.height)
		r.Set("width", d.width)
		r.Set("watt_output", d.wattOutput)
		r.Set("sections", d.sections)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create chiller ───────────────────────────────────────
	createChiller := func(d chillerDef) error {
		r := core.NewRecord(chillersCol)
		r.Set("name", d.name)
		r.Set("type", d.chillerType)
		r.Set("brand", d.brand)
		r.Set("cooling_capacity_kw", d.capacityKw)
		r.Set("power_input_kw", d.powerInput)
		r.Set("cop", d.cop)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create FCU ───────────────────────────────────────────
	createFCU := func(d fcuDef) error {
		r := core.NewRecord(fcusCol)
		r.Set("name", d.name)
		r.Set("type", d.fcuType)
		r.Set("brand", d.brand)
		r.Set("cooling_capacity_kw", d.capacityKw)
		r.Set("airflow_cfm", d.airflowCfm)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create AHU ───────────────────────────────────────────
	createAHU := func(d ahuDef) error {
		r := core.NewRecord(ahusCol)
		r.Set("name", d.name)
		r.Set("type", d.ahuType)
		r.Set("brand", d.brand)
		r.Set("airflow_cfm", d.airflowCfm)
		r.Set("cooling_capacity_kw", d.capacityKw)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create water heater ──────────────────────────────────
	createWaterHeater := func(d waterHeaterDef) error {
		r := core.NewRecord(waterHeatersCol)
		r.Set("name", d.name)
		r.Set("type", d.heaterType)
		r.Set("brand", d.brand)
		r.Set("capacity_liters", d.capacityLiters)
		r.Set("flow_rate_lpm", d.flowRateLpm)
		r.Set("power_kw", d.powerKw)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create pool heater ───────────────────────────────────
	createPoolHeater := func(d poolHeaterDef) error {
		r := core.NewRecord(poolHeatersCol)
		r.Set("name", d.name)
		r.Set("type", d.heaterType)
		r.Set("brand", d.brand)
		r.Set("heating_capacity_kw", d.capacityKw)
		r.Set("cop", d.cop)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create piping material ───────────────────────────────
	createPipingMaterial := func(d pipingMaterialDef) error {
		r := core.NewRecord(pipingMaterialsCol)
		r.Set("name", d.name)
		r.Set("type", d.pipeType)
		r.Set("diameter", d.diameter)
		r.Set("unit", d.unit)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create duct material ─────────────────────────────────
	createDuctMaterial := func(d ductMaterialDef) error {
		r := core.NewRecord(ductMaterialsCol)
		r.Set("name", d.name)
		r.Set("type", d.ductType)
		r.Set("thickness", d.thickness)
		r.Set("insulated", d.insulated)
		r.Set("unit", d.unit)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create diffuser ──────────────────────────────────────
	createDiffuser := func(d diffuserDef) error {
		r := core.NewRecord(diffusersCol)
		r.Set("name", d.name)
		r.Set("type", d.diffuserType)
		r.Set("size", d.size)
		r.Set("airflow_cfm", d.airflowCfm)
		r.Set("material", d.material)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── helper: create pool equipment ────────────────────────────────
	createPoolEquipment := func(d poolEquipmentDef) error {
		r := core.NewRecord(poolEquipmentCol)
		r.Set("name", d.name)
		r.Set("type", d.equipType)
		r.Set("brand", d.brand)
		r.Set("flow_rate_cmh", d.flowRate)
		r.Set("power_kw", d.powerKw)
		r.Set("price", d.price)
		r.Set("active", true)
		return app.Save(r)
	}

	// ── boilers ──────────────────────────────────────────────────────
	boilers := []boilerDef{
		{"Vaillant ecoTEC plus 24", "wall", "gas", "Vaillant", "VUW 24CS/1-5", 24, 94, 285000},
		{"Vaillant ecoTEC plus 30", "wall", "gas", "Vaillant", "VUW 30CS/1-5", 30, 94, 325000},
		{"Baxi Luna Duo-tec 40", "wall", "gas", "Baxi", "Duo-tec 40 GA", 40, 93, 365000},
		{"Viessmann Vitodens 100-W 35", "wall", "gas", "Viessmann", "B1KF-35", 35, 94, 410000},
		{"Viessmann Vitocrossal 60", "floor", "gas", "Viessmann", "CU3A-60", 60, 96, 780000},
		{"Ferroli Atlas 78", "floor", "oil", "Ferroli", "Atlas D 78", 78, 90, 690000},
	}
	for _, d := range boilers {
		if err := createBoiler(d); err != nil {
			return fmt.Errorf("seed: boiler %q: %w", d.name, err)
		}
	}

	// ── radiators ────────────────────────────────────────────────────
	radiators := []radiatorDef{
		{"Global VOX 580/8", "aluminum", "Global", 580, 640, 1096, 8, 28000},
		{"Global VOX 580/10", "aluminum", "Global", 580, 800, 1370, 10, 34000},
		{"Global VOX 680/8", "aluminum", "Global", 680, 640, 1288, 8, 31000},
		{"Global VOX 680/10", "aluminum", "Global", 680, 800, 1610, 10, 38000},
		{"Global VOX 680/12", "aluminum", "Global", 680, 960, 1932, 12, 45000},
		{"Global VOX 880/10", "aluminum", "Global", 880, 800, 1990, 10, 47000},
		{"Global VOX 880/12", "aluminum", "Global", 880, 960, 2388, 12, 55000},
		{"Korado Koralux 900", "towel", "Korado", 900, 500, 480, 0, 22000},
		{"Korado Koralux 1220", "towel", "Korado", 1220, 600, 730, 0, 29000},
		{"Korado Koralux 1500", "towel", "Korado", 1500, 600, 940, 0, 36000},
	}
	for _, d := range radiators {
		if err := createRadiator(d); err != nil {
			return fmt.Errorf("seed: radiator %q: %w", d.name, err)
		}
	}

	// ── chillers ─────────────────────────────────────────────────────
	chillers := []chillerDef{
		{"Midea MGC-F25W", "air_cooled", "Midea", 25, 8.9, 2.8, 1450000},
		{"Midea MGC-F45W", "air_cooled", "Midea", 45, 15.5, 2.9, 2250000},
		{"Carrier 30RB-080", "air_cooled", "Carrier", 80, 27.6, 2.9, 3900000},
		{"Carrier 30XW-140", "water_cooled", "Carrier", 140, 29.2, 4.8, 6800000},
	}
	for _, d := range chillers {
		if err := createChiller(d); err != nil {
			return fmt.Errorf("seed: chiller %q: %w", d.name, err)
		}
	}

	// ── fan coil units ───────────────────────────────────────────────
	fcus := []fcuDef{
		{"GREE FP-34 Concealed", "ceiling_concealed", "GREE", 2.0, 200, 52000},
		{"GREE FP-51 Concealed", "ceiling_concealed", "GREE", 3.1, 300, 61000},
		{"GREE FP-68 Concealed", "ceiling_concealed", "GREE", 4.1, 400, 70000},
		{"GREE FP-102 Concealed", "ceiling_concealed", "GREE", 6.2, 600, 88000},
		{"GREE FP-136 Concealed", "ceiling_concealed", "GREE", 8.2, 800, 104000},
		{"Midea MKA-V400 Cassette", "cassette", "Midea", 3.6, 380, 94000},
		{"Midea MKA-V600 Cassette", "cassette", "Midea", 5.6, 560, 118000},
	}
	for _, d := range fcus {
		if err := createFCU(d); err != nil {
			return fmt.Errorf("seed: fcu %q: %w", d.name, err)
		}
	}

	// ── air handling units ───────────────────────────────────────────
	ahus := []ahuDef{
		{"Trane CLCP 3000", "standard", "Trane", 3000, 18, 1650000},
		{"Trane CLCP 6000", "standard", "Trane", 6000, 35, 2700000},
		{"Systemair Topvex TR09", "heat_recovery", "Systemair", 2500, 14, 1950000},
	}
	for _, d := range ahus {
		if err := createAHU(d); err != nil {
			return fmt.Errorf("seed: ahu %q: %w", d.name, err)
		}
	}

	// ── water heaters ────────────────────────────────────────────────
	waterHeaters := []waterHeaterDef{
		{"Ariston PRO1 R 50", "electric_storage", "Ariston", 50, 0, 1.8, 34000},
		{"Ariston PRO1 R 80", "electric_storage", "Ariston", 80, 0, 1.8, 42000},
		{"Ariston PRO1 R 100", "electric_storage", "Ariston", 100, 0, 1.8, 49000},
		{"Bosch Tronic 7000 24", "electric_instant", "Bosch", 0, 13.6, 24, 56000},
		{"Rinnai N26 Gas", "gas_instant", "Rinnai", 0, 26, 47, 98000},
		{"Ariston Nuos Primo 240", "heat_pump", "Ariston", 240, 0, 2.5, 285000},
	}
	for _, d := range waterHeaters {
		if err := createWaterHeater(d); err != nil {
			return fmt.Errorf("seed: water heater %q: %w", d.name, err)
		}
	}

	// ── pool heaters ─────────────────────────────────────────────────
	poolHeaters := []poolHeaterDef{
		{"Hayward EnergyLine Pro 7", "heat_pump", "Hayward", 7.8, 5.2, 420000},
		{"Hayward EnergyLine Pro 11", "heat_pump", "Hayward", 11.5, 5.3, 540000},
		{"Hayward EnergyLine Pro 17", "heat_pump", "Hayward", 17.3, 5.5, 690000},
		{"Zodiac Z300 M5", "heat_pump", "Zodiac", 12.6, 5.0, 580000},
		{"Pentair MasterTemp 250", "gas", "Pentair", 54, 0, 760000},
	}
	for _, d := range poolHeaters {
		if err := createPoolHeater(d); err != nil {
			return fmt.Errorf("seed: pool heater %q: %w", d.name, err)
		}
	}

	// ── piping materials ─────────────────────────────────────────────
	pipingMaterials := []pipingMaterialDef{
		{"PPR Pipe PN20 20mm", "ppr", 20, "Meter", 450},
		{"PPR Pipe PN20 25mm", "ppr", 25, "Meter", 620},
		{"PPR Pipe PN20 32mm", "ppr", 32, "Meter", 890},
		{"PEX-AL-PEX 16mm", "multilayer", 16, "Meter", 380},
		{"PEX-AL-PEX 20mm", "multilayer", 20, "Meter", 520},
		{"Copper Pipe 22mm", "copper", 22, "Meter", 1750},
		{"Radiator Valve Set", "ppr", 0, "Set", 4800},
		{"Manifold 6-circuit", "multilayer", 0, "No.", 38000},
	}
	for _, d := range pipingMaterials {
		if err := createPipingMaterial(d); err != nil {
			return fmt.Errorf("seed: piping material %q: %w", d.name, err)
		}
	}

	// ── duct materials ───────────────────────────────────────────────
	ductMaterials := []ductMaterialDef{
		{"GI Sheet Duct 0.6mm", "gi", 0.6, false, "kg", 320},
		{"GI Sheet Duct 0.8mm", "gi", 0.8, false, "kg", 340},
		{"Pre-insulated Panel Duct", "aluminum", 20, true, "sqm", 3900},
		{"Flexible Duct 10in Insulated", "flexible", 0, true, "Meter", 1450},
		{"Duct Insulation 25mm", "fiberglass", 25, false, "sqm", 680},
	}
	for _, d := range ductMaterials {
		if err := createDuctMaterial(d); err != nil {
			return fmt.Errorf("seed: duct material %q: %w", d.name, err)
		}
	}

	// ── diffusers ────────────────────────────────────────────────────
	diffusers := []diffuserDef{
		{"Square Ceiling Diffuser 24x24", "supply_square", "600x600", 400, "aluminum", 5200},
		{"Square Ceiling Diffuser 12x12", "supply_square", "300x300", 150, "aluminum", 2800},
		{"Linear Slot Diffuser 4-slot", "supply_linear", "1000x125", 300, "aluminum", 8900},
		{"Return Air Grille 24x24", "return_egg_crate", "600x600", 500, "aluminum", 3400},
		{"Exhaust Grille 10x10", "exhaust", "250x250", 100, "plastic", 1100},
	}
	for _, d := range diffusers {
		if err := createDiffuser(d); err != nil {
			return fmt.Errorf("seed: diffuser %q: %w", d.name, err)
		}
	}

	// ── pool equipment ───────────────────────────────────────────────
	poolEquipment := []poolEquipmentDef{
		{"Hayward Super Pump 1.5HP", "pump", "Hayward", 18, 1.1, 96000},
		{"Hayward Sand Filter S244T", "filter", "Hayward", 14, 0, 84000},
		{"Solar Cover 8x4m", "cover", "", 0, 0, 52000},
		{"Pool Automation Controller", "controller", "Zodiac", 0, 0, 125000},
	}
	for _, d := range poolEquipment {
		if err := createPoolEquipment(d); err != nil {
			return fmt.Errorf("seed: pool equipment %q: %w", d.name, err)
		}
	}

	// ── default terms template ───────────────────────────────────────
	terms := core.NewRecord(termsCol)
	terms.Set("name", "Standard Offer Terms")
	terms.Set("apply_heating", true)
	terms.Set("apply_cooling", true)
	terms.Set("apply_hotwater", true)
	terms.Set("offer_includes", "Supply and installation of all listed equipment.\nCommissioning and handover with operation walkthrough.")
	terms.Set("offer_excludes", "Civil works, wall chasing and surface reinstatement.\nElectrical supply up to the equipment isolator.")
	terms.Set("payment_terms", "50% advance with order confirmation, 40% on delivery, 10% on commissioning.")
	terms.Set("execution_time", "4-6 weeks from order confirmation and site readiness.")
	terms.Set("warranty", "2 years on installation works, manufacturer warranty on equipment.")
	terms.Set("additional_notes", "Prices are valid for the stated validity period and subject to site survey.")
	terms.Set("active", true)
	if err := app.Save(terms); err != nil {
		return fmt.Errorf("seed: terms template: %w", err)
	}

	// ── demo customer ────────────────────────────────────────────────
	customer := core.NewRecord(customersCol)
	customer.Set("name", "Horizon Development LLC")
	customer.Set("phone", "+995 32 212 4455")
	customer.Set("email", "projects@horizondev.example")
	customer.Set("address", "14 Kazbegi Avenue, Tbilisi")
	if err := app.Save(customer); err != nil {
		return fmt.Errorf("seed: customer: %w", err)
	}

	log.Println("seed: all seed data inserted successfully (11 catalogs, 1 terms template, 1 customer)")
	return nil
}
