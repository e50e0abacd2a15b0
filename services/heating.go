package services

// Heating system types.
const (
	SystemRadiator = "radiator"
	SystemUFH      = "ufh"
)

// Radiator categories.
const (
	RadiatorAluminum = "aluminum"
	RadiatorTowel    = "towel"
)

// Defaults applied when a field is zero, matching the seeded form values.
const (
	defaultHeatingWattPerSqm = 100
	ufhWattPerSqm            = 80
	defaultUFHPricePerSqm    = 1500
	defaultThermostatPrice   = 5000
	defaultRadiatorHeight    = 680
)

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// HeatingSpace is one room of a central heating project. Raw inputs drive
// the heat load; the radiator reference and quantities are derived from it
// unless overridden.
type HeatingSpace struct {
	ID       string
	RoomName string
	Floor    string

	IsBathroom bool
	Area       float64 // m²

	WattPerSqm        float64
	LoadFactorPercent float64
	RoomQty           int

	SystemType      string // radiator or ufh
	PreferredHeight int    // 580, 680 or 880 mm

	Radiator    Reference
	RadiatorQty int // user-visible, raised to the suggestion but never lowered

	UFHPricePerSqm  float64
	ThermostatPrice float64

	Notes string

	// Derived.
	HeatLoad             float64
	SuggestedRadiatorQty int
	RadiatorUndersized   bool
	RadiatorSubtotal     float64
	UFHSubtotal          float64
	ThermostatQty        int
	ThermostatSubtotal   float64
	SpaceSubtotal        float64
}

// NewHeatingSpace returns a space with the standard form defaults.
func NewHeatingSpace() HeatingSpace {
	return HeatingSpace{
		Floor:             "ground",
		WattPerSqm:        defaultHeatingWattPerSqm,
		LoadFactorPercent: 100,
		RoomQty:           1,
		SystemType:        SystemRadiator,
		PreferredHeight:   defaultRadiatorHeight,
		RadiatorQty:       1,
		UFHPricePerSqm:    defaultUFHPricePerSqm,
		ThermostatPrice:   defaultThermostatPrice,
	}
}

// HeatingProject is a central heating offer: spaces drive radiator and UFH
// pricing, the summed load drives the boiler, piping lines price the
// distribution network.
type HeatingProject struct {
	ID          string
	Name        string
	CustomerID  string
	AttentionTo string
	OfferCode   string
	State       string

	Spaces      []HeatingSpace
	PipingLines []LineItem

	Boiler    Reference
	BoilerQty int

	EquipmentDiscount float64 // percent
	PipingDiscount    float64 // percent

	// Derived.
	TotalHeatLoad    float64 // W
	TotalHeatLoadKw  float64
	TotalHeatingArea float64

	BoilerUndersized bool
	BoilerPrice      float64

	RadiatorsTotal  float64
	UFHTotal        float64
	ThermostatCount int
	ThermostatTotal float64

	EquipmentSubtotal        float64
	EquipmentTotal           float64
	PipingTotal              float64
	PipingTotalAfterDiscount float64
	GrandTotal               float64
}

// HeatingEngine owns the radiator and boiler catalogs and the dependency
// graph that keeps a HeatingProject's derived fields consistent.
type HeatingEngine struct {
	Radiators *Catalog
	Boilers   *Catalog

	graph *Graph[HeatingProject]
}

// NewHeatingEngine wires the heating dependency graph over the given
// catalogs.
func NewHeatingEngine(radiators, boilers *Catalog) *HeatingEngine {
	e := &HeatingEngine{Radiators: radiators, Boilers: boilers}
	e.graph = e.buildGraph()
	return e
}

// RecomputeAll re-derives every computed field of the project. Use it after
// loading from the store or after structural changes (spaces or lines added
// or removed).
func (e *HeatingEngine) RecomputeAll(p *HeatingProject) {
	e.graph.RecomputeAll(p)
}

// Recompute re-derives the fields downstream of the named changed inputs.
func (e *HeatingEngine) Recompute(p *HeatingProject, changed ...string) {
	e.graph.Recompute(p, changed...)
}

func (e *HeatingEngine) buildGraph() *Graph[HeatingProject] {
	g := NewGraph[HeatingProject]()

	g.Input(
		"area", "watt_per_sqm", "load_factor_percent", "room_qty",
		"system_type", "is_bathroom", "preferred_height",
		"selected_radiator", "radiator_qty",
		"ufh_price_per_sqm", "thermostat_price",
		"selected_boiler", "boiler_qty",
		"piping_lines", "equipment_discount", "piping_discount",
	)

	g.Derive("heat_load", func(p *HeatingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			def := float64(defaultHeatingWattPerSqm)
			if sp.SystemType == SystemUFH {
				def = ufhWattPerSqm
			}
			factor := orDefault(sp.LoadFactorPercent, 100) / 100
			sp.HeatLoad = sp.Area * orDefault(sp.WattPerSqm, def) *
				factor * float64(orDefaultInt(sp.RoomQty, 1))
		}
	}, "area", "watt_per_sqm", "load_factor_percent", "room_qty", "system_type")

	g.Derive("suggested_radiator", func(p *HeatingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sel := e.suggestRadiator(sp)
			sp.Radiator.Suggested = sel.Item
			sp.RadiatorUndersized = sel.Undersized
		}
	}, "heat_load", "system_type", "is_bathroom", "preferred_height")

	g.Derive("suggested_radiator_qty", func(p *HeatingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.SystemType == SystemRadiator && sp.Radiator.FinalCapacity() > 0 {
				sp.SuggestedRadiatorQty = SuggestQty(sp.HeatLoad, sp.Radiator.FinalCapacity())
			} else {
				sp.SuggestedRadiatorQty = 1
			}
			sp.RadiatorQty = RaiseQty(sp.RadiatorQty, sp.SuggestedRadiatorQty)
		}
	}, "heat_load", "suggested_radiator", "selected_radiator", "system_type")

	g.Derive("radiator_subtotal", func(p *HeatingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.SystemType == SystemRadiator && sp.Radiator.Final() != nil {
				sp.RadiatorSubtotal = sp.Radiator.FinalPrice() * float64(orDefaultInt(sp.RadiatorQty, 1))
			} else {
				sp.RadiatorSubtotal = 0
			}
		}
	}, "suggested_radiator", "selected_radiator", "radiator_qty", "suggested_radiator_qty", "system_type")

	g.Derive("ufh_subtotal", func(p *HeatingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.SystemType == SystemUFH {
				sp.UFHSubtotal = sp.Area * orDefault(sp.UFHPricePerSqm, defaultUFHPricePerSqm)
			} else {
				sp.UFHSubtotal = 0
			}
		}
	}, "area", "ufh_price_per_sqm", "system_type")

	g.Derive("thermostat_qty", func(p *HeatingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.SystemType == SystemUFH {
				sp.ThermostatQty = orDefaultInt(sp.RoomQty, 1)
			} else {
				sp.ThermostatQty = 0
			}
		}
	}, "system_type", "room_qty")

	g.Derive("thermostat_subtotal", func(p *HeatingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.SystemType == SystemUFH && sp.ThermostatQty > 0 {
				sp.ThermostatSubtotal = orDefault(sp.ThermostatPrice, defaultThermostatPrice) * float64(sp.ThermostatQty)
			} else {
				sp.ThermostatSubtotal = 0
			}
		}
	}, "thermostat_qty", "thermostat_price", "system_type")

	g.Derive("space_subtotal", func(p *HeatingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			switch sp.SystemType {
			case SystemRadiator:
				sp.SpaceSubtotal = sp.RadiatorSubtotal
			case SystemUFH:
				sp.SpaceSubtotal = sp.UFHSubtotal + sp.ThermostatSubtotal
			default:
				sp.SpaceSubtotal = 0
			}
		}
	}, "radiator_subtotal", "ufh_subtotal", "thermostat_subtotal", "system_type")

	g.Derive("heating_totals", func(p *HeatingProject) {
		p.TotalHeatLoad = 0
		p.TotalHeatingArea = 0
		for i := range p.Spaces {
			p.TotalHeatLoad += p.Spaces[i].HeatLoad
			p.TotalHeatingArea += p.Spaces[i].Area
		}
		p.TotalHeatLoadKw = WattsToKw(p.TotalHeatLoad)
	}, "heat_load", "area")

	g.Derive("suggested_boiler", func(p *HeatingProject) {
		sel := MatchCapacity(e.Boilers, p.TotalHeatLoadKw)
		p.Boiler.Suggested = sel.Item
		p.BoilerUndersized = sel.Undersized
	}, "heating_totals")

	g.Derive("equipment_totals", func(p *HeatingProject) {
		p.BoilerPrice = p.Boiler.FinalPrice() * float64(orDefaultInt(p.BoilerQty, 1))
		p.RadiatorsTotal = 0
		p.UFHTotal = 0
		p.ThermostatCount = 0
		p.ThermostatTotal = 0
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			p.RadiatorsTotal += sp.RadiatorSubtotal
			p.UFHTotal += sp.UFHSubtotal
			p.ThermostatCount += sp.ThermostatQty
			p.ThermostatTotal += sp.ThermostatSubtotal
		}
		p.EquipmentSubtotal = p.BoilerPrice + p.RadiatorsTotal + p.UFHTotal + p.ThermostatTotal
		p.EquipmentTotal = ApplyDiscount(p.EquipmentSubtotal, p.EquipmentDiscount)
	}, "suggested_boiler", "selected_boiler", "boiler_qty",
		"radiator_subtotal", "ufh_subtotal", "thermostat_subtotal", "thermostat_qty",
		"equipment_discount")

	g.Derive("piping_total", func(p *HeatingProject) {
		p.PipingTotal = SumLineSubtotals(p.PipingLines)
		p.PipingTotalAfterDiscount = ApplyDiscount(p.PipingTotal, p.PipingDiscount)
	}, "piping_lines", "piping_discount")

	g.Derive("grand_total", func(p *HeatingProject) {
		p.GrandTotal = p.EquipmentTotal + p.PipingTotalAfterDiscount
	}, "equipment_totals", "piping_total")

	g.MustFinalize()
	return g
}

// suggestRadiator picks the radiator for a space. Bathrooms always match
// the towel category; other rooms match aluminum radiators at the preferred
// height class, widening to any aluminum height when that class is empty.
func (e *HeatingEngine) suggestRadiator(sp *HeatingSpace) Selection {
	if sp.SystemType != SystemRadiator || sp.HeatLoad <= 0 {
		return Selection{}
	}
	if sp.IsBathroom {
		return matchOnce(e.Radiators, sp.HeatLoad, []Filter{TypeIs(RadiatorTowel)})
	}
	height := orDefaultInt(sp.PreferredHeight, defaultRadiatorHeight)
	return MatchCapacity(e.Radiators, sp.HeatLoad, TypeIs(RadiatorAluminum), HeightIs(height))
}
