package services

// Cooling system types. Only FCU rooms receive an automatic unit match;
// the others are sized informationally and priced through ductwork and
// project-level equipment.
const (
	SystemFCU         = "fcu"
	SystemAHU         = "ahu"
	SystemSplit       = "split"
	SystemDuctedSplit = "ducted_split"
	SystemCassette    = "cassette"
	SystemVRF         = "vrf"
)

const (
	defaultCoolingWattPerSqm      = 150
	defaultCoolingThermostatPrice = 3000
	defaultRoomHeight             = 3.0
)

// CoolingSpace is one room of a central air-conditioning project.
type CoolingSpace struct {
	ID       string
	RoomName string
	Floor    string

	Area   float64 // m²
	Height float64 // m

	WattPerSqm        float64
	LoadFactorPercent float64
	RoomQty           int

	SystemType string

	FCU    Reference
	FCUQty int

	ThermostatPrice float64

	Notes string

	// Derived.
	Volume          float64 // m³
	BTUPerSqm       float64
	CoolingLoadWatt float64
	CoolingLoadBTU  float64
	CoolingLoadTon  float64

	SuggestedFCUQty    int
	FCUUndersized      bool
	FCUSubtotal        float64
	ThermostatQty      int
	ThermostatSubtotal float64
	SpaceSubtotal      float64
}

// NewCoolingSpace returns a space with the standard form defaults.
func NewCoolingSpace() CoolingSpace {
	return CoolingSpace{
		Floor:             "ground",
		Height:            defaultRoomHeight,
		WattPerSqm:        defaultCoolingWattPerSqm,
		LoadFactorPercent: 100,
		RoomQty:           1,
		SystemType:        SystemFCU,
		FCUQty:            1,
		ThermostatPrice:   defaultCoolingThermostatPrice,
	}
}

// CoolingProject is a central air-conditioning offer: rooms drive FCU and
// thermostat pricing, the summed load drives the chiller, AHUs are picked
// by hand, duct lines price the air distribution network.
type CoolingProject struct {
	ID          string
	Name        string
	CustomerID  string
	AttentionTo string
	OfferCode   string
	State       string

	Spaces    []CoolingSpace
	DuctLines []LineItem

	Chiller    Reference
	ChillerQty int

	// AHUs are a hand-picked list, priced at list price each.
	AHUs []CatalogItem

	EquipmentDiscount float64 // percent
	DuctworkDiscount  float64 // percent

	// Derived.
	TotalCoolingLoadWatt float64
	TotalCoolingLoadKw   float64
	TotalCoolingLoadBTU  float64
	TotalCoolingLoadTon  float64
	TotalCoolingArea     float64

	ChillerUndersized bool
	ChillerPrice      float64
	AHUTotal          float64

	FCUTotal        float64
	ThermostatCount int
	ThermostatTotal float64

	EquipmentSubtotal          float64
	EquipmentTotal             float64
	DuctworkTotal              float64
	DuctworkTotalAfterDiscount float64
	GrandTotal                 float64
}

// CoolingEngine owns the FCU and chiller catalogs and the dependency graph
// over a CoolingProject.
type CoolingEngine struct {
	FCUs     *Catalog
	Chillers *Catalog

	graph *Graph[CoolingProject]
}

// NewCoolingEngine wires the cooling dependency graph over the given
// catalogs.
func NewCoolingEngine(fcus, chillers *Catalog) *CoolingEngine {
	e := &CoolingEngine{FCUs: fcus, Chillers: chillers}
	e.graph = e.buildGraph()
	return e
}

// RecomputeAll re-derives every computed field of the project.
func (e *CoolingEngine) RecomputeAll(p *CoolingProject) {
	e.graph.RecomputeAll(p)
}

// Recompute re-derives the fields downstream of the named changed inputs.
func (e *CoolingEngine) Recompute(p *CoolingProject, changed ...string) {
	e.graph.Recompute(p, changed...)
}

func (e *CoolingEngine) buildGraph() *Graph[CoolingProject] {
	g := NewGraph[CoolingProject]()

	g.Input(
		"area", "height", "watt_per_sqm", "load_factor_percent", "room_qty",
		"system_type", "selected_fcu", "fcu_qty", "thermostat_price",
		"selected_chiller", "chiller_qty", "ahus",
		"duct_lines", "equipment_discount", "ductwork_discount",
	)

	g.Derive("volume", func(p *CoolingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sp.Volume = sp.Area * orDefault(sp.Height, defaultRoomHeight)
		}
	}, "area", "height")

	g.Derive("btu_per_sqm", func(p *CoolingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sp.BTUPerSqm = WattsToBTU(sp.WattPerSqm)
		}
	}, "watt_per_sqm")

	g.Derive("cooling_load", func(p *CoolingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			factor := orDefault(sp.LoadFactorPercent, 100) / 100
			sp.CoolingLoadWatt = sp.Area * orDefault(sp.WattPerSqm, defaultCoolingWattPerSqm) *
				factor * float64(orDefaultInt(sp.RoomQty, 1))
			sp.CoolingLoadBTU = WattsToBTU(sp.CoolingLoadWatt)
			sp.CoolingLoadTon = WattsToTons(sp.CoolingLoadWatt)
		}
	}, "area", "watt_per_sqm", "load_factor_percent", "room_qty")

	g.Derive("suggested_fcu", func(p *CoolingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.SystemType == SystemFCU && sp.CoolingLoadWatt > 0 {
				sel := MatchCapacity(e.FCUs, WattsToKw(sp.CoolingLoadWatt))
				sp.FCU.Suggested = sel.Item
				sp.FCUUndersized = sel.Undersized
			} else {
				sp.FCU.Suggested = nil
				sp.FCUUndersized = false
			}
		}
	}, "cooling_load", "system_type")

	g.Derive("suggested_fcu_qty", func(p *CoolingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.SystemType == SystemFCU && sp.FCU.FinalCapacity() > 0 {
				sp.SuggestedFCUQty = SuggestQty(sp.CoolingLoadWatt, sp.FCU.FinalCapacity()*wattsPerKw)
			} else {
				sp.SuggestedFCUQty = 1
			}
			sp.FCUQty = RaiseQty(sp.FCUQty, sp.SuggestedFCUQty)
		}
	}, "cooling_load", "suggested_fcu", "selected_fcu", "system_type")

	g.Derive("fcu_subtotal", func(p *CoolingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.SystemType == SystemFCU && sp.FCU.Final() != nil {
				sp.FCUSubtotal = sp.FCU.FinalPrice() * float64(orDefaultInt(sp.FCUQty, 1))
			} else {
				sp.FCUSubtotal = 0
			}
		}
	}, "suggested_fcu", "selected_fcu", "fcu_qty", "suggested_fcu_qty", "system_type")

	g.Derive("thermostat_qty", func(p *CoolingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.SystemType == SystemFCU {
				sp.ThermostatQty = orDefaultInt(sp.RoomQty, 1)
			} else {
				sp.ThermostatQty = 0
			}
		}
	}, "system_type", "room_qty")

	g.Derive("thermostat_subtotal", func(p *CoolingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sp.ThermostatSubtotal = orDefault(sp.ThermostatPrice, defaultCoolingThermostatPrice) *
				float64(sp.ThermostatQty)
		}
	}, "thermostat_qty", "thermostat_price")

	g.Derive("space_subtotal", func(p *CoolingProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sp.SpaceSubtotal = sp.FCUSubtotal + sp.ThermostatSubtotal
		}
	}, "fcu_subtotal", "thermostat_subtotal")

	g.Derive("cooling_totals", func(p *CoolingProject) {
		p.TotalCoolingLoadWatt = 0
		p.TotalCoolingLoadBTU = 0
		p.TotalCoolingLoadTon = 0
		p.TotalCoolingArea = 0
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			p.TotalCoolingLoadWatt += sp.CoolingLoadWatt
			p.TotalCoolingLoadBTU += sp.CoolingLoadBTU
			p.TotalCoolingLoadTon += sp.CoolingLoadTon
			p.TotalCoolingArea += sp.Area
		}
		p.TotalCoolingLoadKw = WattsToKw(p.TotalCoolingLoadWatt)
	}, "cooling_load", "area")

	g.Derive("suggested_chiller", func(p *CoolingProject) {
		sel := MatchCapacity(e.Chillers, p.TotalCoolingLoadKw)
		p.Chiller.Suggested = sel.Item
		p.ChillerUndersized = sel.Undersized
	}, "cooling_totals")

	g.Derive("equipment_totals", func(p *CoolingProject) {
		p.ChillerPrice = p.Chiller.FinalPrice() * float64(orDefaultInt(p.ChillerQty, 1))
		p.AHUTotal = 0
		for i := range p.AHUs {
			p.AHUTotal += p.AHUs[i].Price
		}
		p.FCUTotal = 0
		p.ThermostatCount = 0
		p.ThermostatTotal = 0
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			p.FCUTotal += sp.FCUSubtotal
			p.ThermostatCount += sp.ThermostatQty
			p.ThermostatTotal += sp.ThermostatSubtotal
		}
		p.EquipmentSubtotal = p.ChillerPrice + p.AHUTotal + p.FCUTotal + p.ThermostatTotal
		p.EquipmentTotal = ApplyDiscount(p.EquipmentSubtotal, p.EquipmentDiscount)
	}, "suggested_chiller", "selected_chiller", "chiller_qty", "ahus",
		"fcu_subtotal", "thermostat_subtotal", "thermostat_qty",
		"equipment_discount")

	g.Derive("ductwork_total", func(p *CoolingProject) {
		p.DuctworkTotal = SumLineSubtotals(p.DuctLines)
		p.DuctworkTotalAfterDiscount = ApplyDiscount(p.DuctworkTotal, p.DuctworkDiscount)
	}, "duct_lines", "ductwork_discount")

	g.Derive("grand_total", func(p *CoolingProject) {
		p.GrandTotal = p.EquipmentTotal + p.DuctworkTotalAfterDiscount
	}, "equipment_totals", "ductwork_total")

	g.MustFinalize()
	return g
}
