package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// This file is the bridge between stored records and the in-memory engines:
// load a project with its children into the engine structs, recompute, then
// write every derived field back. Catalog snapshots are taken at engine
// construction, so one engine serves any number of recomputes.

// NewHeatingEngineFromApp snapshots the radiator and boiler catalogs.
func NewHeatingEngineFromApp(app *pocketbase.PocketBase) (*HeatingEngine, error) {
	radiators, err := LoadCatalog(app, "radiators", "watt_output")
	if err != nil {
		return nil, err
	}
	boilers, err := LoadCatalog(app, "boilers", "kw_output")
	if err != nil {
		return nil, err
	}
	return NewHeatingEngine(radiators, boilers), nil
}

// NewCoolingEngineFromApp snapshots the FCU and chiller catalogs.
func NewCoolingEngineFromApp(app *pocketbase.PocketBase) (*CoolingEngine, error) {
	fcus, err := LoadCatalog(app, "fcus", "cooling_capacity_kw")
	if err != nil {
		return nil, err
	}
	chillers, err := LoadCatalog(app, "chillers", "cooling_capacity_kw")
	if err != nil {
		return nil, err
	}
	return NewCoolingEngine(fcus, chillers), nil
}

// NewHotWaterEngineFromApp snapshots the water heater and pool heater
// catalogs.
func NewHotWaterEngineFromApp(app *pocketbase.PocketBase) (*HotWaterEngine, error) {
	waterHeaters, err := LoadCatalog(app, "water_heaters", "capacity_liters")
	if err != nil {
		return nil, err
	}
	poolHeaters, err := LoadCatalog(app, "pool_heaters", "heating_capacity_kw")
	if err != nil {
		return nil, err
	}
	return NewHotWaterEngine(waterHeaters, poolHeaters), nil
}

func findChildren(app *pocketbase.PocketBase, collection, projectID string) ([]*core.Record, error) {
	records, err := app.FindRecordsByFilter(
		collection,
		"project = {:project}",
		"sort_order",
		0,
		0,
		map[string]any{"project": projectID},
	)
	if err != nil {
		return nil, fmt.Errorf("load %s for project %s: %w", collection, projectID, err)
	}
	return records, nil
}

func lineFromRecord(r *core.Record) LineItem {
	return LineItem{
		ID:          r.Id,
		Description: r.GetString("name"),
		Unit:        r.GetString("unit"),
		Qty:         r.GetFloat("quantity"),
		UnitPrice:   r.GetFloat("unit_price"),
		Subtotal:    r.GetFloat("subtotal"),
	}
}

func saveLineSubtotals(app *pocketbase.PocketBase, records []*core.Record, lines []LineItem) error {
	for i, r := range records {
		if r.GetFloat("subtotal") == lines[i].Subtotal {
			continue
		}
		r.Set("subtotal", lines[i].Subtotal)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("save line %s: %w", r.Id, err)
		}
	}
	return nil
}

// ── Heating ──────────────────────────────────────────────────────────────

// LoadHeatingProject reads a heating project record together with its
// spaces and piping lines into engine structs. References are resolved
// against the engine's catalog snapshot.
func LoadHeatingProject(app *pocketbase.PocketBase, e *HeatingEngine, projectID string) (*HeatingProject, []*core.Record, []*core.Record, error) {
	record, err := app.FindRecordById("heating_projects", projectID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load heating project %s: %w", projectID, err)
	}

	spaceRecords, err := findChildren(app, "heating_spaces", projectID)
	if err != nil {
		return nil, nil, nil, err
	}
	lineRecords, err := findChildren(app, "piping_lines", projectID)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &HeatingProject{
		ID:          record.Id,
		Name:        record.GetString("name"),
		CustomerID:  record.GetString("customer"),
		AttentionTo: record.GetString("attention_to"),
		OfferCode:   record.GetString("offer_code"),
		State:       record.GetString("state"),

		BoilerQty:         record.GetInt("boiler_qty"),
		EquipmentDiscount: record.GetFloat("equipment_discount"),
		PipingDiscount:    record.GetFloat("piping_discount"),
	}
	p.Boiler.Suggested = e.Boilers.FindByID(record.GetString("suggested_boiler"))
	p.Boiler.Selected = e.Boilers.FindByID(record.GetString("selected_boiler"))

	// Stored derived values seed the engine state, so a scoped Recompute
	// rewrites only the closure of the changed inputs.
	p.TotalHeatLoad = record.GetFloat("total_heat_load")
	p.TotalHeatLoadKw = record.GetFloat("total_heat_load_kw")
	p.TotalHeatingArea = record.GetFloat("total_heating_area")
	p.BoilerUndersized = record.GetBool("boiler_undersized")
	p.BoilerPrice = record.GetFloat("boiler_price")
	p.RadiatorsTotal = record.GetFloat("radiators_total")
	p.UFHTotal = record.GetFloat("ufh_total")
	p.ThermostatCount = record.GetInt("thermostat_count")
	p.ThermostatTotal = record.GetFloat("thermostat_total")
	p.EquipmentSubtotal = record.GetFloat("equipment_subtotal")
	p.EquipmentTotal = record.GetFloat("equipment_total")
	p.PipingTotal = record.GetFloat("piping_total")
	p.PipingTotalAfterDiscount = record.GetFloat("piping_total_after_discount")
	p.GrandTotal = record.GetFloat("grand_total")

	for _, sr := range spaceRecords {
		sp := HeatingSpace{
			ID:                sr.Id,
			RoomName:          sr.GetString("room_name"),
			Floor:             sr.GetString("floor"),
			IsBathroom:        sr.GetBool("is_bathroom"),
			Area:              sr.GetFloat("area"),
			WattPerSqm:        sr.GetFloat("watt_per_sqm"),
			LoadFactorPercent: sr.GetFloat("load_factor_percent"),
			RoomQty:           sr.GetInt("room_qty"),
			SystemType:        sr.GetString("system_type"),
			PreferredHeight:   sr.GetInt("preferred_height"),
			RadiatorQty:       sr.GetInt("radiator_qty"),
			UFHPricePerSqm:    sr.GetFloat("ufh_price_per_sqm"),
			ThermostatPrice:   sr.GetFloat("thermostat_price"),
			Notes:             sr.GetString("notes"),
		}
		sp.Radiator.Suggested = e.Radiators.FindByID(sr.GetString("suggested_radiator"))
		sp.Radiator.Selected = e.Radiators.FindByID(sr.GetString("selected_radiator"))
		sp.HeatLoad = sr.GetFloat("heat_load")
		sp.SuggestedRadiatorQty = sr.GetInt("suggested_radiator_qty")
		sp.RadiatorUndersized = sr.GetBool("radiator_undersized")
		sp.RadiatorSubtotal = sr.GetFloat("radiator_subtotal")
		sp.UFHSubtotal = sr.GetFloat("ufh_subtotal")
		sp.ThermostatQty = sr.GetInt("thermostat_qty")
		sp.ThermostatSubtotal = sr.GetFloat("thermostat_subtotal")
		sp.SpaceSubtotal = sr.GetFloat("space_subtotal")
		p.Spaces = append(p.Spaces, sp)
	}

	for _, lr := range lineRecords {
		p.PipingLines = append(p.PipingLines, lineFromRecord(lr))
	}

	return p, spaceRecords, lineRecords, nil
}

// RecomputeHeatingProject loads, recomputes and persists a heating project.
// With no changed fields every derived value is rebuilt; with changed fields
// only their downstream closure is, which keeps manually lowered quantities
// intact.
func RecomputeHeatingProject(app *pocketbase.PocketBase, e *HeatingEngine, projectID string, changed ...string) (*HeatingProject, error) {
	p, spaceRecords, lineRecords, err := LoadHeatingProject(app, e, projectID)
	if err != nil {
		return nil, err
	}

	if len(changed) == 0 {
		e.RecomputeAll(p)
	} else {
		e.Recompute(p, changed...)
	}

	for i, sr := range spaceRecords {
		sp := &p.Spaces[i]
		sr.Set("heat_load", sp.HeatLoad)
		sr.Set("suggested_radiator", sp.Radiator.Suggested.id())
		sr.Set("suggested_radiator_qty", sp.SuggestedRadiatorQty)
		sr.Set("radiator_qty", sp.RadiatorQty)
		sr.Set("radiator_undersized", sp.RadiatorUndersized)
		sr.Set("radiator_subtotal", sp.RadiatorSubtotal)
		sr.Set("ufh_subtotal", sp.UFHSubtotal)
		sr.Set("thermostat_qty", sp.ThermostatQty)
		sr.Set("thermostat_subtotal", sp.ThermostatSubtotal)
		sr.Set("space_subtotal", sp.SpaceSubtotal)
		if err := app.Save(sr); err != nil {
			return nil, fmt.Errorf("save heating space %s: %w", sr.Id, err)
		}
	}

	if err := saveLineSubtotals(app, lineRecords, p.PipingLines); err != nil {
		return nil, err
	}

	record, err := app.FindRecordById("heating_projects", projectID)
	if err != nil {
		return nil, fmt.Errorf("reload heating project %s: %w", projectID, err)
	}
	record.Set("suggested_boiler", p.Boiler.Suggested.id())
	record.Set("boiler_undersized", p.BoilerUndersized)
	record.Set("boiler_price", p.BoilerPrice)
	record.Set("total_heat_load", p.TotalHeatLoad)
	record.Set("total_heat_load_kw", p.TotalHeatLoadKw)
	record.Set("total_heating_area", p.TotalHeatingArea)
	record.Set("radiators_total", p.RadiatorsTotal)
	record.Set("ufh_total", p.UFHTotal)
	record.Set("thermostat_count", p.ThermostatCount)
	record.Set("thermostat_total", p.ThermostatTotal)
	record.Set("equipment_subtotal", p.EquipmentSubtotal)
	record.Set("equipment_total", p.EquipmentTotal)
	record.Set("piping_total", p.PipingTotal)
	record.Set("piping_total_after_discount", p.PipingTotalAfterDiscount)
	record.Set("grand_total", p.GrandTotal)
	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("save heating project %s: %w", projectID, err)
	}

	return p, nil
}

// ── Cooling ──────────────────────────────────────────────────────────────

// LoadCoolingProject reads a cooling project record together with its
// spaces and duct lines into engine structs.
func LoadCoolingProject(app *pocketbase.PocketBase, e *CoolingEngine, projectID string) (*CoolingProject, []*core.Record, []*core.Record, error) {
	record, err := app.FindRecordById("cooling_projects", projectID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load cooling project %s: %w", projectID, err)
	}

	spaceRecords, err := findChildren(app, "cooling_spaces", projectID)
	if err != nil {
		return nil, nil, nil, err
	}
	lineRecords, err := findChildren(app, "duct_lines", projectID)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &CoolingProject{
		ID:          record.Id,
		Name:        record.GetString("name"),
		CustomerID:  record.GetString("customer"),
		AttentionTo: record.GetString("attention_to"),
		OfferCode:   record.GetString("offer_code"),
		State:       record.GetString("state"),

		ChillerQty:        record.GetInt("chiller_qty"),
		EquipmentDiscount: record.GetFloat("equipment_discount"),
		DuctworkDiscount:  record.GetFloat("ductwork_discount"),
	}
	p.Chiller.Suggested = e.Chillers.FindByID(record.GetString("suggested_chiller"))
	p.Chiller.Selected = e.Chillers.FindByID(record.GetString("selected_chiller"))

	// Stored derived values seed the engine state for scoped recomputes.
	p.TotalCoolingLoadWatt = record.GetFloat("total_cooling_load_watt")
	p.TotalCoolingLoadKw = record.GetFloat("total_cooling_load_kw")
	p.TotalCoolingLoadBTU = record.GetFloat("total_cooling_load_btu")
	p.TotalCoolingLoadTon = record.GetFloat("total_cooling_load_ton")
	p.TotalCoolingArea = record.GetFloat("total_cooling_area")
	p.ChillerUndersized = record.GetBool("chiller_undersized")
	p.ChillerPrice = record.GetFloat("chiller_price")
	p.AHUTotal = record.GetFloat("ahu_total")
	p.FCUTotal = record.GetFloat("fcu_total")
	p.ThermostatCount = record.GetInt("thermostat_count")
	p.ThermostatTotal = record.GetFloat("thermostat_total")
	p.EquipmentSubtotal = record.GetFloat("equipment_subtotal")
	p.EquipmentTotal = record.GetFloat("equipment_total")
	p.DuctworkTotal = record.GetFloat("ductwork_total")
	p.DuctworkTotalAfterDiscount = record.GetFloat("ductwork_total_after_discount")
	p.GrandTotal = record.GetFloat("grand_total")

	ahuCatalog, err := LoadCatalog(app, "ahus", "airflow_cfm")
	if err != nil {
		return nil, nil, nil, err
	}
	for _, id := range record.GetStringSlice("ahus") {
		if it := ahuCatalog.FindByID(id); it != nil {
			p.AHUs = append(p.AHUs, *it)
		}
	}

	for _, sr := range spaceRecords {
		sp := CoolingSpace{
			ID:                sr.Id,
			RoomName:          sr.GetString("room_name"),
			Floor:             sr.GetString("floor"),
			Area:              sr.GetFloat("area"),
			Height:            sr.GetFloat("height"),
			WattPerSqm:        sr.GetFloat("watt_per_sqm"),
			LoadFactorPercent: sr.GetFloat("load_factor_percent"),
			RoomQty:           sr.GetInt("room_qty"),
			SystemType:        sr.GetString("system_type"),
			FCUQty:            sr.GetInt("fcu_qty"),
			ThermostatPrice:   sr.GetFloat("thermostat_price"),
			Notes:             sr.GetString("notes"),
		}
		sp.FCU.Suggested = e.FCUs.FindByID(sr.GetString("suggested_fcu"))
		sp.FCU.Selected = e.FCUs.FindByID(sr.GetString("selected_fcu"))
		sp.Volume = sr.GetFloat("volume")
		sp.BTUPerSqm = sr.GetFloat("btu_per_sqm")
		sp.CoolingLoadWatt = sr.GetFloat("cooling_load_watt")
		sp.CoolingLoadBTU = sr.GetFloat("cooling_load_btu")
		sp.CoolingLoadTon = sr.GetFloat("cooling_load_ton")
		sp.SuggestedFCUQty = sr.GetInt("suggested_fcu_qty")
		sp.FCUUndersized = sr.GetBool("fcu_undersized")
		sp.FCUSubtotal = sr.GetFloat("fcu_subtotal")
		sp.ThermostatQty = sr.GetInt("thermostat_qty")
		sp.ThermostatSubtotal = sr.GetFloat("thermostat_subtotal")
		sp.SpaceSubtotal = sr.GetFloat("space_subtotal")
		p.Spaces = append(p.Spaces, sp)
	}

	for _, lr := range lineRecords {
		p.DuctLines = append(p.DuctLines, lineFromRecord(lr))
	}

	return p, spaceRecords, lineRecords, nil
}

// RecomputeCoolingProject loads, recomputes and persists a cooling project.
func RecomputeCoolingProject(app *pocketbase.PocketBase, e *CoolingEngine, projectID string, changed ...string) (*CoolingProject, error) {
	p, spaceRecords, lineRecords, err := LoadCoolingProject(app, e, projectID)
	if err != nil {
		return nil, err
	}

	if len(changed) == 0 {
		e.RecomputeAll(p)
	} else {
		e.Recompute(p, changed...)
	}

	for i, sr := range spaceRecords {
		sp := &p.Spaces[i]
		sr.Set("volume", sp.Volume)
		sr.Set("btu_per_sqm", sp.BTUPerSqm)
		sr.Set("cooling_load_watt", sp.CoolingLoadWatt)
		sr.Set("cooling_load_btu", sp.CoolingLoadBTU)
		sr.Set("cooling_load_ton", sp.CoolingLoadTon)
		sr.Set("suggested_fcu", sp.FCU.Suggested.id())
		sr.Set("suggested_fcu_qty", sp.SuggestedFCUQty)
		sr.Set("fcu_qty", sp.FCUQty)
		sr.Set("fcu_undersized", sp.FCUUndersized)
		sr.Set("fcu_subtotal", sp.FCUSubtotal)
		sr.Set("thermostat_qty", sp.ThermostatQty)
		sr.Set("thermostat_subtotal", sp.ThermostatSubtotal)
		sr.Set("space_subtotal", sp.SpaceSubtotal)
		if err := app.Save(sr); err != nil {
			return nil, fmt.Errorf("save cooling space %s: %w", sr.Id, err)
		}
	}

	if err := saveLineSubtotals(app, lineRecords, p.DuctLines); err != nil {
		return nil, err
	}

	record, err := app.FindRecordById("cooling_projects", projectID)
	if err != nil {
		return nil, fmt.Errorf("reload cooling project %s: %w", projectID, err)
	}
	record.Set("suggested_chiller", p.Chiller.Suggested.id())
	record.Set("chiller_undersized", p.ChillerUndersized)
	record.Set("chiller_price", p.ChillerPrice)
	record.Set("total_cooling_load_watt", p.TotalCoolingLoadWatt)
	record.Set("total_cooling_load_kw", p.TotalCoolingLoadKw)
	record.Set("total_cooling_load_btu", p.TotalCoolingLoadBTU)
	record.Set("total_cooling_load_ton", p.TotalCoolingLoadTon)
	record.Set("total_cooling_area", p.TotalCoolingArea)
	record.Set("ahu_total", p.AHUTotal)
	record.Set("fcu_total", p.FCUTotal)
	record.Set("thermostat_count", p.ThermostatCount)
	record.Set("thermostat_total", p.ThermostatTotal)
	record.Set("equipment_subtotal", p.EquipmentSubtotal)
	record.Set("equipment_total", p.EquipmentTotal)
	record.Set("ductwork_total", p.DuctworkTotal)
	record.Set("ductwork_total_after_discount", p.DuctworkTotalAfterDiscount)
	record.Set("grand_total", p.GrandTotal)
	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("save cooling project %s: %w", projectID, err)
	}

	return p, nil
}

// ── Hot water ────────────────────────────────────────────────────────────

// LoadHotWaterProject reads a hot water project record together with its
// usage points and equipment lines into engine structs.
func LoadHotWaterProject(app *pocketbase.PocketBase, e *HotWaterEngine, projectID string) (*HotWaterProject, []*core.Record, []*core.Record, error) {
	record, err := app.FindRecordById("hotwater_projects", projectID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load hotwater project %s: %w", projectID, err)
	}

	spaceRecords, err := findChildren(app, "hotwater_spaces", projectID)
	if err != nil {
		return nil, nil, nil, err
	}
	lineRecords, err := findChildren(app, "equipment_lines", projectID)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &HotWaterProject{
		ID:          record.Id,
		Name:        record.GetString("name"),
		CustomerID:  record.GetString("customer"),
		AttentionTo: record.GetString("attention_to"),
		OfferCode:   record.GetString("offer_code"),
		State:       record.GetString("state"),

		EquipmentDiscount: record.GetFloat("equipment_discount"),
	}

	// Stored derived values seed the engine state for scoped recomputes.
	p.TotalDemandLiters = record.GetFloat("total_demand_liters")
	p.TotalPeakFlow = record.GetFloat("total_peak_flow")
	p.TotalPoolVolume = record.GetFloat("total_pool_volume")
	p.TotalPoolHeatingKw = record.GetFloat("total_pool_heating_kw")
	p.HeaterTotal = record.GetFloat("heater_total")
	p.PoolHeaterTotal = record.GetFloat("pool_heater_total")
	p.EquipmentLineTotal = record.GetFloat("equipment_line_total")
	p.EquipmentSubtotal = record.GetFloat("equipment_subtotal")
	p.EquipmentTotal = record.GetFloat("equipment_total")
	p.GrandTotal = record.GetFloat("grand_total")

	for _, sr := range spaceRecords {
		sp := HotWaterSpace{
			ID:           sr.Id,
			Name:         sr.GetString("name"),
			SpaceType:    sr.GetString("space_type"),
			Qty:          sr.GetInt("qty"),
			ShowerCount:  sr.GetInt("shower_count"),
			BathtubCount: sr.GetInt("bathtub_count"),
			SinkCount:    sr.GetInt("sink_count"),
			PoolLength:   sr.GetFloat("pool_length"),
			PoolWidth:    sr.GetFloat("pool_width"),
			PoolDepth:    sr.GetFloat("pool_depth"),
			HeaterQty:    sr.GetInt("heater_qty"),
			Notes:        sr.GetString("notes"),
		}
		sp.Heater.Suggested = e.WaterHeaters.FindByID(sr.GetString("suggested_heater"))
		sp.Heater.Selected = e.WaterHeaters.FindByID(sr.GetString("selected_heater"))
		sp.PoolHeater.Suggested = e.PoolHeaters.FindByID(sr.GetString("suggested_pool_heater"))
		sp.PoolHeater.Selected = e.PoolHeaters.FindByID(sr.GetString("selected_pool_heater"))
		sp.DemandLitersPerDay = sr.GetFloat("demand_liters_per_day")
		sp.PeakFlowLPM = sr.GetFloat("peak_flow_lpm")
		sp.PoolArea = sr.GetFloat("pool_area")
		sp.PoolVolume = sr.GetFloat("pool_volume")
		sp.PoolHeatingLoadKw = sr.GetFloat("pool_heating_load_kw")
		sp.HeaterUndersized = sr.GetBool("heater_undersized")
		sp.PoolHeaterUndersized = sr.GetBool("pool_heater_undersized")
		sp.HeaterSubtotal = sr.GetFloat("heater_subtotal")
		sp.PoolHeaterSubtotal = sr.GetFloat("pool_heater_subtotal")
		sp.SpaceSubtotal = sr.GetFloat("space_subtotal")
		p.Spaces = append(p.Spaces, sp)
	}

	for _, lr := range lineRecords {
		p.EquipmentLines = append(p.EquipmentLines, lineFromRecord(lr))
	}

	return p, spaceRecords, lineRecords, nil
}

// RecomputeHotWaterProject loads, recomputes and persists a hot water
// project.
func RecomputeHotWaterProject(app *pocketbase.PocketBase, e *HotWaterEngine, projectID string, changed ...string) (*HotWaterProject, error) {
	p, spaceRecords, lineRecords, err := LoadHotWaterProject(app, e, projectID)
	if err != nil {
		return nil, err
	}

	if len(changed) == 0 {
		e.RecomputeAll(p)
	} else {
		e.Recompute(p, changed...)
	}

	for i, sr := range spaceRecords {
		sp := &p.Spaces[i]
		sr.Set("demand_liters_per_day", sp.DemandLitersPerDay)
		sr.Set("peak_flow_lpm", sp.PeakFlowLPM)
		sr.Set("pool_area", sp.PoolArea)
		sr.Set("pool_volume", sp.PoolVolume)
		sr.Set("pool_heating_load_kw", sp.PoolHeatingLoadKw)
		sr.Set("suggested_heater", sp.Heater.Suggested.id())
		sr.Set("heater_undersized", sp.HeaterUndersized)
		sr.Set("suggested_pool_heater", sp.PoolHeater.Suggested.id())
		sr.Set("pool_heater_undersized", sp.PoolHeaterUndersized)
		sr.Set("heater_subtotal", sp.HeaterSubtotal)
		sr.Set("pool_heater_subtotal", sp.PoolHeaterSubtotal)
		sr.Set("space_subtotal", sp.SpaceSubtotal)
		if err := app.Save(sr); err != nil {
			return nil, fmt.Errorf("save hotwater space %s: %w", sr.Id, err)
		}
	}

	if err := saveLineSubtotals(app, lineRecords, p.EquipmentLines); err != nil {
		return nil, err
	}

	record, err := app.FindRecordById("hotwater_projects", projectID)
	if err != nil {
		return nil, fmt.Errorf("reload hotwater project %s: %w", projectID, err)
	}
	record.Set("total_demand_liters", p.TotalDemandLiters)
	record.Set("total_peak_flow", p.TotalPeakFlow)
	record.Set("total_pool_volume", p.TotalPoolVolume)
	record.Set("total_pool_heating_kw", p.TotalPoolHeatingKw)
	record.Set("heater_total", p.HeaterTotal)
	record.Set("pool_heater_total", p.PoolHeaterTotal)
	record.Set("equipment_line_total", p.EquipmentLineTotal)
	record.Set("equipment_subtotal", p.EquipmentSubtotal)
	record.Set("equipment_total", p.EquipmentTotal)
	record.Set("grand_total", p.GrandTotal)
	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("save hotwater project %s: %w", projectID, err)
	}

	return p, nil
}

// id returns the item's record ID, tolerating a nil receiver so suggestion
// columns can be cleared in one expression.
func (it *CatalogItem) id() string {
	if it == nil {
		return ""
	}
	return it.ID
}
