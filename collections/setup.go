package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures every collection: customers, the
// equipment catalogs, the three project domains with their spaces and line
// items, terms templates and quotations.
func Setup(app *pocketbase.PocketBase) {
	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	termsTemplates := ensureCollection(app, "terms_templates", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.BoolField{Name: "apply_heating"})
		c.Fields.Add(&core.BoolField{Name: "apply_cooling"})
		c.Fields.Add(&core.BoolField{Name: "apply_hotwater"})
		c.Fields.Add(&core.TextField{Name: "offer_includes"})
		c.Fields.Add(&core.TextField{Name: "offer_excludes"})
		c.Fields.Add(&core.TextField{Name: "payment_terms"})
		c.Fields.Add(&core.TextField{Name: "execution_time"})
		c.Fields.Add(&core.TextField{Name: "warranty"})
		c.Fields.Add(&core.TextField{Name: "additional_notes"})
		c.Fields.Add(&core.BoolField{Name: "active"})
	})

	// ── Equipment catalogs ───────────────────────────────────────────

	boilers := ensureCollection(app, "boilers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Values: []string{"wall", "floor", "combi", "system"}, MaxSelect: 1})
		c.Fields.Add(&core.SelectField{Name: "fuel_type", Values: []string{"gas", "lpg", "oil", "electric"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "brand"})
		c.Fields.Add(&core.TextField{Name: "model"})
		c.Fields.Add(&core.NumberField{Name: "kw_output", Required: true})
		c.Fields.Add(&core.NumberField{Name: "efficiency"})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	radiators := ensureCollection(app, "radiators", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Required: true, Values: []string{"aluminum", "steel", "cast_iron", "towel"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "brand"})
		c.Fields.Add(&core.TextField{Name: "model"})
		c.Fields.Add(&core.NumberField{Name: "height"})
		c.Fields.Add(&core.NumberField{Name: "width"})
		c.Fields.Add(&core.NumberField{Name: "watt_output", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sections"})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	chillers := ensureCollection(app, "chillers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Values: []string{"air_cooled", "water_cooled", "absorption"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "brand"})
		c.Fields.Add(&core.TextField{Name: "model"})
		c.Fields.Add(&core.NumberField{Name: "cooling_capacity_kw", Required: true})
		c.Fields.Add(&core.NumberField{Name: "power_input_kw"})
		c.Fields.Add(&core.NumberField{Name: "cop"})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	fcus := ensureCollection(app, "fcus", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Values: []string{"ceiling_concealed", "ceiling_exposed", "wall_mounted", "floor_standing", "cassette"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "brand"})
		c.Fields.Add(&core.TextField{Name: "model"})
		c.Fields.Add(&core.NumberField{Name: "cooling_capacity_kw", Required: true})
		c.Fields.Add(&core.NumberField{Name: "airflow_cfm"})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	ahus := ensureCollection(app, "ahus", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Values: []string{"standard", "rooftop", "doas", "heat_recovery"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "brand"})
		c.Fields.Add(&core.TextField{Name: "model"})
		c.Fields.Add(&core.NumberField{Name: "airflow_cfm", Required: true})
		c.Fields.Add(&core.NumberField{Name: "cooling_capacity_kw"})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	waterHeaters := ensureCollection(app, "water_heaters", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Required: true, Values: []string{"gas_instant", "gas_storage", "electric_instant", "electric_storage", "solar", "heat_pump"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "brand"})
		c.Fields.Add(&core.TextField{Name: "model"})
		c.Fields.Add(&core.NumberField{Name: "capacity_liters"})
		c.Fields.Add(&core.NumberField{Name: "flow_rate_lpm"})
		c.Fields.Add(&core.NumberField{Name: "power_kw"})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	poolHeaters := ensureCollection(app, "pool_heaters", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Required: true, Values: []string{"gas", "electric", "heat_pump", "solar"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "brand"})
		c.Fields.Add(&core.TextField{Name: "model"})
		c.Fields.Add(&core.NumberField{Name: "heating_capacity_kw", Required: true})
		c.Fields.Add(&core.NumberField{Name: "cop"})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	pipingMaterials := ensureCollection(app, "piping_materials", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Values: []string{"ppr", "pex", "copper", "steel", "multilayer"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "diameter"})
		c.Fields.Add(&core.SelectField{Name: "unit", Values: []string{"Meter", "No.", "Set"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	ductMaterials := ensureCollection(app, "duct_materials", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Values: []string{"gi", "aluminum", "flexible", "fabric", "fiberglass"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "thickness"})
		c.Fields.Add(&core.BoolField{Name: "insulated"})
		c.Fields.Add(&core.SelectField{Name: "unit", Values: []string{"kg", "sqm", "Meter"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	diffusers := ensureCollection(app, "diffusers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Values: []string{
			"supply_square", "supply_round", "supply_linear", "supply_jet",
			"return_square", "return_round", "return_egg_crate", "exhaust",
		}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "size"})
		c.Fields.Add(&core.NumberField{Name: "airflow_cfm"})
		c.Fields.Add(&core.SelectField{Name: "material", Values: []string{"aluminum", "steel", "plastic"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	poolEquipment := ensureCollection(app, "pool_equipment", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "type", Values: []string{"pump", "filter", "cover", "controller", "solar_panel", "accessory"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "brand"})
		c.Fields.Add(&core.TextField{Name: "model"})
		c.Fields.Add(&core.NumberField{Name: "flow_rate_cmh"})
		c.Fields.Add(&core.NumberField{Name: "power_kw"})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	// ── Quotations ───────────────────────────────────────────────────

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{Name: "customer", Required: true, CollectionId: customers.Id, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "origin", Required: true}) // offer code of the source project
		c.Fields.Add(&core.NumberField{Name: "total"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotation_lines", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{Name: "quotation", Required: true, CollectionId: quotations.Id, CascadeDelete: true, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "quantity"})
		c.Fields.Add(&core.NumberField{Name: "unit_price"})
		c.Fields.Add(&core.NumberField{Name: "subtotal"})
	})

	// ── Heating ──────────────────────────────────────────────────────

	heatingProjects := ensureCollection(app, "heating_projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{Name: "customer", CollectionId: customers.Id, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "attention_to"})
		c.Fields.Add(&core.TextField{Name: "offer_code"})
		c.Fields.Add(&core.SelectField{Name: "state", Values: []string{"draft", "confirmed", "quoted", "done", "cancelled"}, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "suggested_boiler", CollectionId: boilers.Id, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "selected_boiler", CollectionId: boilers.Id, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "boiler_qty"})
		c.Fields.Add(&core.BoolField{Name: "boiler_undersized"})
		c.Fields.Add(&core.NumberField{Name: "equipment_discount"})
		c.Fields.Add(&core.NumberField{Name: "piping_discount"})
		c.Fields.Add(&core.NumberField{Name: "total_heat_load"})
		c.Fields.Add(&core.NumberField{Name: "total_heat_load_kw"})
		c.Fields.Add(&core.NumberField{Name: "total_heating_area"})
		c.Fields.Add(&core.NumberField{Name: "boiler_price"})
		c.Fields.Add(&core.NumberField{Name: "radiators_total"})
		c.Fields.Add(&core.NumberField{Name: "ufh_total"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_count"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_total"})
		c.Fields.Add(&core.NumberField{Name: "equipment_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "equipment_total"})
		c.Fields.Add(&core.NumberField{Name: "piping_total"})
		c.Fields.Add(&core.NumberField{Name: "piping_total_after_discount"})
		c.Fields.Add(&core.NumberField{Name: "grand_total"})
		c.Fields.Add(&core.RelationField{Name: "terms_template", CollectionId: termsTemplates.Id, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "offer_includes"})
		c.Fields.Add(&core.TextField{Name: "offer_excludes"})
		c.Fields.Add(&core.TextField{Name: "payment_terms"})
		c.Fields.Add(&core.TextField{Name: "execution_time"})
		c.Fields.Add(&core.TextField{Name: "warranty"})
		c.Fields.Add(&core.NumberField{Name: "validity_days"})
		c.Fields.Add(&core.TextField{Name: "additional_notes"})
		c.Fields.Add(&core.RelationField{Name: "quotation", CollectionId: quotations.Id, MaxSelect: 1})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "heating_spaces", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{Name: "project", Required: true, CollectionId: heatingProjects.Id, CascadeDelete: true, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		c.Fields.Add(&core.SelectField{Name: "floor", Values: []string{"basement", "ground", "first", "second", "third", "fourth", "roof", "annex"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "room_name"})
		c.Fields.Add(&core.BoolField{Name: "is_bathroom"})
		c.Fields.Add(&core.NumberField{Name: "area"})
		c.Fields.Add(&core.NumberField{Name: "watt_per_sqm"})
		c.Fields.Add(&core.NumberField{Name: "load_factor_percent"})
		c.Fields.Add(&core.NumberField{Name: "room_qty"})
		c.Fields.Add(&core.SelectField{Name: "system_type", Values: []string{"radiator", "ufh"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "preferred_height"})
		c.Fields.Add(&core.RelationField{Name: "suggested_radiator", CollectionId: radiators.Id, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "selected_radiator", CollectionId: radiators.Id, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "radiator_qty"})
		c.Fields.Add(&core.NumberField{Name: "suggested_radiator_qty"})
		c.Fields.Add(&core.BoolField{Name: "radiator_undersized"})
		c.Fields.Add(&core.NumberField{Name: "ufh_price_per_sqm"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_price"})
		c.Fields.Add(&core.NumberField{Name: "heat_load"})
		c.Fields.Add(&core.NumberField{Name: "radiator_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "ufh_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_qty"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "space_subtotal"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	ensureCollection(app, "piping_lines", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{Name: "project", Required: true, CollectionId: heatingProjects.Id, CascadeDelete: true, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{Name: "material", CollectionId: pipingMaterials.Id, MaxSelect: 1})
		c.Fields.Add(&core.SelectField{Name: "unit", Values: []string{"Meter", "No.", "Set", "Lot"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "quantity"})
		c.Fields.Add(&core.NumberField{Name: "unit_price"})
		c.Fields.Add(&core.NumberField{Name: "subtotal"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	// ── Cooling ──────────────────────────────────────────────────────

	coolingProjects := ensureCollection(app, "cooling_projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{Name: "customer", CollectionId: customers.Id, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "attention_to"})
		c.Fields.Add(&core.TextField{Name: "offer_code"})
		c.Fields.Add(&core.SelectField{Name: "state", Values: []string{"draft", "confirmed", "quoted", "done", "cancelled"}, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "suggested_chiller", CollectionId: chillers.Id, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "selected_chiller", CollectionId: chillers.Id, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "chiller_qty"})
		c.Fields.Add(&core.BoolField{Name: "chiller_undersized"})
		c.Fields.Add(&core.RelationField{Name: "ahus", CollectionId: ahus.Id, MaxSelect: 99})
		c.Fields.Add(&core.NumberField{Name: "equipment_discount"})
		c.Fields.Add(&core.NumberField{Name: "ductwork_discount"})
		c.Fields.Add(&core.NumberField{Name: "total_cooling_load_watt"})
		c.Fields.Add(&core.NumberField{Name: "total_cooling_load_kw"})
		c.Fields.Add(&core.NumberField{Name: "total_cooling_load_btu"})
		c.Fields.Add(&core.NumberField{Name: "total_cooling_load_ton"})
		c.Fields.Add(&core.NumberField{Name: "total_cooling_area"})
		c.Fields.Add(&core.NumberField{Name: "chiller_price"})
		c.Fields.Add(&core.NumberField{Name: "ahu_total"})
		c.Fields.Add(&core.NumberField{Name: "fcu_total"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_count"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_total"})
		c.Fields.Add(&core.NumberField{Name: "equipment_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "equipment_total"})
		c.Fields.Add(&core.NumberField{Name: "ductwork_total"})
		c.Fields.Add(&core.NumberField{Name: "ductwork_total_after_discount"})
		c.Fields.Add(&core.NumberField{Name: "grand_total"})
		c.Fields.Add(&core.RelationField{Name: "terms_template", CollectionId: termsTemplates.Id, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "offer_includes"})
		c.Fields.Add(&core.TextField{Name: "offer_excludes"})
		c.Fields.Add(&core.TextField{Name: "payment_terms"})
		c.Fields.Add(&core.TextField{Name: "execution_time"})
		c.Fields.Add(&core.TextField{Name: "warranty"})
		c.Fields.Add(&core.NumberField{Name: "validity_days"})
		c.Fields.Add(&core.TextField{Name: "additional_notes"})
		c.Fields.Add(&core.RelationField{Name: "quotation", CollectionId: quotations.Id, MaxSelect: 1})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "cooling_spaces", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{Name: "project", Required: true, CollectionId: coolingProjects.Id, CascadeDelete: true, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		c.Fields.Add(&core.SelectField{Name: "floor", Values: []string{"basement", "ground", "first", "second", "third", "fourth", "roof", "annex"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "room_name"})
		c.Fields.Add(&core.NumberField{Name: "area"})
		c.Fields.Add(&core.NumberField{Name: "height"})
		c.Fields.Add(&core.NumberField{Name: "watt_per_sqm"})
		c.Fields.Add(&core.NumberField{Name: "load_factor_percent"})
		c.Fields.Add(&core.NumberField{Name: "room_qty"})
		c.Fields.Add(&core.SelectField{Name: "system_type", Values: []string{"fcu", "ahu", "split", "ducted_split", "cassette", "vrf"}, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "suggested_fcu", CollectionId: fcus.Id, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "selected_fcu", CollectionId: fcus.Id, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "fcu_qty"})
		c.Fields.Add(&core.NumberField{Name: "suggested_fcu_qty"})
		c.Fields.Add(&core.BoolField{Name: "fcu_undersized"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_price"})
		c.Fields.Add(&core.NumberField{Name: "volume"})
		c.Fields.Add(&core.NumberField{Name: "btu_per_sqm"})
		c.Fields.Add(&core.NumberField{Name: "cooling_load_watt"})
		c.Fields.Add(&core.NumberField{Name: "cooling_load_btu"})
		c.Fields.Add(&core.NumberField{Name: "cooling_load_ton"})
		c.Fields.Add(&core.NumberField{Name: "fcu_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_qty"})
		c.Fields.Add(&core.NumberField{Name: "thermostat_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "space_subtotal"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	ensureCollection(app, "duct_lines", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{Name: "project", Required: true, CollectionId: coolingProjects.Id, CascadeDelete: true, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{Name: "line_type", Values: []string{"duct", "diffuser", "accessory", "insulation"}, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "material", CollectionId: ductMaterials.Id, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "diffuser", CollectionId: diffusers.Id, MaxSelect: 1})
		c.Fields.Add(&core.SelectField{Name: "unit", Values: []string{"kg", "sqm", "Meter", "No.", "Set"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "quantity"})
		c.Fields.Add(&core.NumberField{Name: "unit_price"})
		c.Fields.Add(&core.NumberField{Name: "subtotal"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	// ── Hot water ────────────────────────────────────────────────────

	hotwaterProjects := ensureCollection(app, "hotwater_projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{Name: "customer", CollectionId: customers.Id, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "attention_to"})
		c.Fields.Add(&core.TextField{Name: "offer_code"})
		c.Fields.Add(&core.SelectField{Name: "state", Values: []string{"draft", "confirmed", "quoted", "done", "cancelled"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "equipment_discount"})
		c.Fields.Add(&core.NumberField{Name: "total_demand_liters"})
		c.Fields.Add(&core.NumberField{Name: "total_peak_flow"})
		c.Fields.Add(&core.NumberField{Name: "total_pool_volume"})
		c.Fields.Add(&core.NumberField{Name: "total_pool_heating_kw"})
		c.Fields.Add(&core.NumberField{Name: "heater_total"})
		c.Fields.Add(&core.NumberField{Name: "pool_heater_total"})
		c.Fields.Add(&core.NumberField{Name: "equipment_line_total"})
		c.Fields.Add(&core.NumberField{Name: "equipment_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "equipment_total"})
		c.Fields.Add(&core.NumberField{Name: "grand_total"})
		c.Fields.Add(&core.RelationField{Name: "terms_template", CollectionId: termsTemplates.Id, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "offer_includes"})
		c.Fields.Add(&core.TextField{Name: "offer_excludes"})
		c.Fields.Add(&core.TextField{Name: "payment_terms"})
		c.Fields.Add(&core.TextField{Name: "execution_time"})
		c.Fields.Add(&core.TextField{Name: "warranty"})
		c.Fields.Add(&core.NumberField{Name: "validity_days"})
		c.Fields.Add(&core.TextField{Name: "additional_notes"})
		c.Fields.Add(&core.RelationField{Name: "quotation", CollectionId: quotations.Id, MaxSelect: 1})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "hotwater_spaces", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{Name: "project", Required: true, CollectionId: hotwaterProjects.Id, CascadeDelete: true, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		c.Fields.Add(&core.TextField{Name: "name"})
		c.Fields.Add(&core.SelectField{Name: "space_type", Values: []string{"bathroom", "kitchen", "laundry", "pool", "jacuzzi", "other"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "qty"})
		c.Fields.Add(&core.NumberField{Name: "shower_count"})
		c.Fields.Add(&core.NumberField{Name: "bathtub_count"})
		c.Fields.Add(&core.NumberField{Name: "sink_count"})
		c.Fields.Add(&core.NumberField{Name: "pool_length"})
		c.Fields.Add(&core.NumberField{Name: "pool_width"})
		c.Fields.Add(&core.NumberField{Name: "pool_depth"})
		c.Fields.Add(&core.RelationField{Name: "suggested_heater", CollectionId: waterHeaters.Id, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "selected_heater", CollectionId: waterHeaters.Id, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "heater_qty"})
		c.Fields.Add(&core.BoolField{Name: "heater_undersized"})
		c.Fields.Add(&core.RelationField{Name: "suggested_pool_heater", CollectionId: poolHeaters.Id, MaxSelect: 1})
		c.Fields.Add(&core.RelationField{Name: "selected_pool_heater", CollectionId: poolHeaters.Id, MaxSelect: 1})
		c.Fields.Add(&core.BoolField{Name: "pool_heater_undersized"})
		c.Fields.Add(&core.NumberField{Name: "demand_liters_per_day"})
		c.Fields.Add(&core.NumberField{Name: "peak_flow_lpm"})
		c.Fields.Add(&core.NumberField{Name: "pool_area"})
		c.Fields.Add(&core.NumberField{Name: "pool_volume"})
		c.Fields.Add(&core.NumberField{Name: "pool_heating_load_kw"})
		c.Fields.Add(&core.NumberField{Name: "heater_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "pool_heater_subtotal"})
		c.Fields.Add(&core.NumberField{Name: "space_subtotal"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})

	ensureCollection(app, "equipment_lines", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{Name: "project", Required: true, CollectionId: hotwaterProjects.Id, CascadeDelete: true, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{Name: "equipment", CollectionId: poolEquipment.Id, MaxSelect: 1})
		c.Fields.Add(&core.SelectField{Name: "unit", Values: []string{"No.", "Set", "Meter"}, MaxSelect: 1})
		c.Fields.Add(&core.NumberField{Name: "quantity"})
		c.Fields.Add(&core.NumberField{Name: "unit_price"})
		c.Fields.Add(&core.NumberField{Name: "subtotal"})
		c.Fields.Add(&core.TextField{Name: "notes"})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
