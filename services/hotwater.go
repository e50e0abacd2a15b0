package services

// Hot water usage point types.
const (
	SpaceBathroom = "bathroom"
	SpaceKitchen  = "kitchen"
	SpaceLaundry  = "laundry"
	SpacePool     = "pool"
	SpaceJacuzzi  = "jacuzzi"
	SpaceOther    = "other"
)

// Per-fixture hot water demand (liters/day) and peak flow (liters/min).
const (
	showerDemandLPD  = 50
	bathtubDemandLPD = 100
	sinkDemandLPD    = 20

	showerFlowLPM  = 10
	bathtubFlowLPM = 15
	sinkFlowLPM    = 5
)

const (
	defaultPoolDepth = 1.5
	// Initial heat-up sizing: 1 kW of heater per 5 m³ of pool water.
	poolCubicMetersPerKw = 5
	// Storage sizing: a tank holding half the daily demand suffices with
	// recovery over the day.
	heaterStorageFactor = 0.5
)

// HotWaterSpace is one usage point of a hot water project: a fixture room
// sized by daily demand, or a pool/jacuzzi sized by heat-up load. A point
// is matched against exactly one of the two heater catalogs, never both.
type HotWaterSpace struct {
	ID        string
	Name      string
	SpaceType string
	Qty       int

	ShowerCount  int
	BathtubCount int
	SinkCount    int

	PoolLength float64 // m
	PoolWidth  float64 // m
	PoolDepth  float64 // m

	Heater    Reference
	HeaterQty int

	PoolHeater Reference

	Notes string

	// Derived.
	DemandLitersPerDay float64
	PeakFlowLPM        float64
	PoolArea           float64
	PoolVolume         float64
	PoolHeatingLoadKw  float64

	HeaterUndersized     bool
	PoolHeaterUndersized bool
	HeaterSubtotal       float64
	PoolHeaterSubtotal   float64
	SpaceSubtotal        float64
}

// NewHotWaterSpace returns a usage point with the standard form defaults.
func NewHotWaterSpace() HotWaterSpace {
	return HotWaterSpace{
		SpaceType: SpaceBathroom,
		Qty:       1,
		PoolDepth: defaultPoolDepth,
		HeaterQty: 1,
	}
}

// fixtureSpace reports whether the usage point draws demand from fixtures.
func (sp *HotWaterSpace) fixtureSpace() bool {
	switch sp.SpaceType {
	case SpaceBathroom, SpaceKitchen, SpaceLaundry:
		return true
	}
	return false
}

func (sp *HotWaterSpace) poolSpace() bool {
	return sp.SpaceType == SpacePool || sp.SpaceType == SpaceJacuzzi
}

// HotWaterProject is a hot water and pool heating offer. It carries a
// single equipment section: heaters per usage point plus free-form
// additional equipment lines.
type HotWaterProject struct {
	ID          string
	Name        string
	CustomerID  string
	AttentionTo string
	OfferCode   string
	State       string

	Spaces         []HotWaterSpace
	EquipmentLines []LineItem

	EquipmentDiscount float64 // percent

	// Derived.
	TotalDemandLiters  float64
	TotalPeakFlow      float64
	TotalPoolVolume    float64
	TotalPoolHeatingKw float64

	HeaterTotal        float64
	PoolHeaterTotal    float64
	EquipmentLineTotal float64
	EquipmentSubtotal  float64
	EquipmentTotal     float64
	GrandTotal         float64
}

// HotWaterEngine owns the water heater and pool heater catalogs and the
// dependency graph over a HotWaterProject.
type HotWaterEngine struct {
	WaterHeaters *Catalog
	PoolHeaters  *Catalog

	graph *Graph[HotWaterProject]
}

// NewHotWaterEngine wires the hot water dependency graph over the given
// catalogs.
func NewHotWaterEngine(waterHeaters, poolHeaters *Catalog) *HotWaterEngine {
	e := &HotWaterEngine{WaterHeaters: waterHeaters, PoolHeaters: poolHeaters}
	e.graph = e.buildGraph()
	return e
}

// RecomputeAll re-derives every computed field of the project.
func (e *HotWaterEngine) RecomputeAll(p *HotWaterProject) {
	e.graph.RecomputeAll(p)
}

// Recompute re-derives the fields downstream of the named changed inputs.
func (e *HotWaterEngine) Recompute(p *HotWaterProject, changed ...string) {
	e.graph.Recompute(p, changed...)
}

func (e *HotWaterEngine) buildGraph() *Graph[HotWaterProject] {
	g := NewGraph[HotWaterProject]()

	g.Input(
		"space_type", "qty", "shower_count", "bathtub_count", "sink_count",
		"pool_length", "pool_width", "pool_depth",
		"selected_heater", "heater_qty", "selected_pool_heater",
		"equipment_lines", "equipment_discount",
	)

	g.Derive("demand", func(p *HotWaterProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.fixtureSpace() {
				demand := float64(sp.ShowerCount)*showerDemandLPD +
					float64(sp.BathtubCount)*bathtubDemandLPD +
					float64(sp.SinkCount)*sinkDemandLPD
				sp.DemandLitersPerDay = demand * float64(orDefaultInt(sp.Qty, 1))
			} else {
				sp.DemandLitersPerDay = 0
			}
		}
	}, "space_type", "shower_count", "bathtub_count", "sink_count", "qty")

	g.Derive("peak_flow", func(p *HotWaterProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sp.PeakFlowLPM = float64(sp.ShowerCount)*showerFlowLPM +
				float64(sp.BathtubCount)*bathtubFlowLPM +
				float64(sp.SinkCount)*sinkFlowLPM
		}
	}, "shower_count", "bathtub_count", "sink_count")

	g.Derive("pool_dimensions", func(p *HotWaterProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sp.PoolArea = sp.PoolLength * sp.PoolWidth
			sp.PoolVolume = sp.PoolArea * orDefault(sp.PoolDepth, defaultPoolDepth)
		}
	}, "pool_length", "pool_width", "pool_depth")

	g.Derive("pool_heating_load", func(p *HotWaterProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.poolSpace() {
				sp.PoolHeatingLoadKw = sp.PoolVolume / poolCubicMetersPerKw
			} else {
				sp.PoolHeatingLoadKw = 0
			}
		}
	}, "pool_dimensions", "space_type")

	g.Derive("suggested_heater", func(p *HotWaterProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if !sp.poolSpace() && sp.DemandLitersPerDay > 0 {
				sel := MatchCapacity(e.WaterHeaters, sp.DemandLitersPerDay*heaterStorageFactor)
				sp.Heater.Suggested = sel.Item
				sp.HeaterUndersized = sel.Undersized
			} else {
				sp.Heater.Suggested = nil
				sp.HeaterUndersized = false
			}
		}
	}, "demand", "space_type")

	g.Derive("suggested_pool_heater", func(p *HotWaterProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			if sp.poolSpace() && sp.PoolHeatingLoadKw > 0 {
				sel := MatchCapacity(e.PoolHeaters, sp.PoolHeatingLoadKw)
				sp.PoolHeater.Suggested = sel.Item
				sp.PoolHeaterUndersized = sel.Undersized
			} else {
				sp.PoolHeater.Suggested = nil
				sp.PoolHeaterUndersized = false
			}
		}
	}, "pool_heating_load", "space_type")

	g.Derive("heater_subtotal", func(p *HotWaterProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sp.HeaterSubtotal = sp.Heater.FinalPrice() * float64(orDefaultInt(sp.HeaterQty, 1))
		}
	}, "suggested_heater", "selected_heater", "heater_qty")

	g.Derive("pool_heater_subtotal", func(p *HotWaterProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sp.PoolHeaterSubtotal = sp.PoolHeater.FinalPrice()
		}
	}, "suggested_pool_heater", "selected_pool_heater")

	g.Derive("space_subtotal", func(p *HotWaterProject) {
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			sp.SpaceSubtotal = sp.HeaterSubtotal + sp.PoolHeaterSubtotal
		}
	}, "heater_subtotal", "pool_heater_subtotal")

	g.Derive("hotwater_totals", func(p *HotWaterProject) {
		p.TotalDemandLiters = 0
		p.TotalPeakFlow = 0
		p.TotalPoolVolume = 0
		p.TotalPoolHeatingKw = 0
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			p.TotalDemandLiters += sp.DemandLitersPerDay
			p.TotalPeakFlow += sp.PeakFlowLPM
			if sp.poolSpace() {
				p.TotalPoolVolume += sp.PoolVolume
			}
			p.TotalPoolHeatingKw += sp.PoolHeatingLoadKw
		}
	}, "demand", "peak_flow", "pool_dimensions", "pool_heating_load", "space_type")

	g.Derive("equipment_line_total", func(p *HotWaterProject) {
		p.EquipmentLineTotal = SumLineSubtotals(p.EquipmentLines)
	}, "equipment_lines")

	g.Derive("equipment_totals", func(p *HotWaterProject) {
		p.HeaterTotal = 0
		p.PoolHeaterTotal = 0
		for i := range p.Spaces {
			sp := &p.Spaces[i]
			p.HeaterTotal += sp.HeaterSubtotal
			p.PoolHeaterTotal += sp.PoolHeaterSubtotal
		}
		p.EquipmentSubtotal = p.HeaterTotal + p.PoolHeaterTotal + p.EquipmentLineTotal
		p.EquipmentTotal = ApplyDiscount(p.EquipmentSubtotal, p.EquipmentDiscount)
	}, "heater_subtotal", "pool_heater_subtotal", "equipment_line_total", "equipment_discount")

	g.Derive("grand_total", func(p *HotWaterProject) {
		p.GrandTotal = p.EquipmentTotal
	}, "equipment_totals")

	g.MustFinalize()
	return g
}
