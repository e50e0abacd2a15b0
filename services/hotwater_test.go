package services

import "testing"

func hotWaterTestEngine() *HotWaterEngine {
	waterHeaters := NewCatalog([]CatalogItem{
		{ID: "wh-50", Name: "Heater 50L", Capacity: 50, Price: 9000, Active: true},
		{ID: "wh-80", Name: "Heater 80L", Capacity: 80, Price: 12500, Active: true},
		{ID: "wh-120", Name: "Heater 120L", Capacity: 120, Price: 17000, Active: true},
	})
	poolHeaters := NewCatalog([]CatalogItem{
		{ID: "ph-8", Name: "Pool Heater 8kW", Capacity: 8, Price: 145000, Active: true},
		{ID: "ph-12", Name: "Pool Heater 12kW", Capacity: 12, Price: 198000, Active: true},
	})
	return NewHotWaterEngine(waterHeaters, poolHeaters)
}

func TestHotWaterFixtureDemand(t *testing.T) {
	e := hotWaterTestEngine()

	sp := NewHotWaterSpace()
	sp.ShowerCount = 1
	sp.BathtubCount = 1
	sp.SinkCount = 2
	p := HotWaterProject{Spaces: []HotWaterSpace{sp}}
	e.RecomputeAll(&p)

	got := &p.Spaces[0]
	if got.DemandLitersPerDay != 50+100+2*20 {
		t.Errorf("demand = %v L/day, want 190", got.DemandLitersPerDay)
	}
	if got.PeakFlowLPM != 10+15+2*5 {
		t.Errorf("peak flow = %v L/min, want 35", got.PeakFlowLPM)
	}

	// Room quantity multiplies demand, not peak flow.
	p.Spaces[0].Qty = 2
	e.Recompute(&p, "qty")
	if p.Spaces[0].DemandLitersPerDay != 380 {
		t.Errorf("demand = %v, want doubled 380", p.Spaces[0].DemandLitersPerDay)
	}
	if p.Spaces[0].PeakFlowLPM != 35 {
		t.Errorf("peak flow = %v, must not scale with room qty", p.Spaces[0].PeakFlowLPM)
	}
}

func TestHotWaterHeaterMatchHalfDemand(t *testing.T) {
	e := hotWaterTestEngine()

	sp := NewHotWaterSpace()
	sp.ShowerCount = 2
	sp.SinkCount = 2 // 140 L/day, storage target 70 L
	p := HotWaterProject{Spaces: []HotWaterSpace{sp}}
	e.RecomputeAll(&p)

	got := &p.Spaces[0]
	if got.Heater.Final() == nil || got.Heater.Final().ID != "wh-80" {
		t.Fatalf("heater = %+v, want smallest tank covering 70 L", got.Heater.Final())
	}
	if got.HeaterSubtotal != 12500 {
		t.Errorf("subtotal = %v, want 12500", got.HeaterSubtotal)
	}
	if got.PoolHeater.Final() != nil {
		t.Error("fixture space must never match a pool heater")
	}
}

func TestHotWaterPoolSizing(t *testing.T) {
	e := hotWaterTestEngine()

	sp := NewHotWaterSpace()
	sp.SpaceType = SpacePool
	sp.PoolLength = 8
	sp.PoolWidth = 4
	sp.PoolDepth = 1.5
	p := HotWaterProject{Spaces: []HotWaterSpace{sp}}
	e.RecomputeAll(&p)

	got := &p.Spaces[0]
	if got.PoolArea != 32 || got.PoolVolume != 48 {
		t.Errorf("pool = %v m² / %v m³, want 32/48", got.PoolArea, got.PoolVolume)
	}
	if got.PoolHeatingLoadKw != 9.6 {
		t.Errorf("heating load = %v kW, want 48/5 = 9.6", got.PoolHeatingLoadKw)
	}
	if got.PoolHeater.Final() == nil || got.PoolHeater.Final().ID != "ph-12" {
		t.Fatalf("pool heater = %+v, want smallest unit covering 9.6 kW", got.PoolHeater.Final())
	}
	if got.Heater.Final() != nil {
		t.Error("pool must never match a water heater")
	}
	if got.SpaceSubtotal != 198000 {
		t.Errorf("space subtotal = %v, want the pool heater price", got.SpaceSubtotal)
	}
}

func TestHotWaterJacuzziUsesPoolCatalog(t *testing.T) {
	e := hotWaterTestEngine()

	sp := NewHotWaterSpace()
	sp.SpaceType = SpaceJacuzzi
	sp.PoolLength = 2.5
	sp.PoolWidth = 2
	sp.PoolDepth = 1 // 5 m³ → 1 kW
	p := HotWaterProject{Spaces: []HotWaterSpace{sp}}
	e.RecomputeAll(&p)

	got := &p.Spaces[0]
	if got.PoolHeater.Final() == nil || got.PoolHeater.Final().ID != "ph-8" {
		t.Fatalf("jacuzzi heater = %+v, want smallest pool heater", got.PoolHeater.Final())
	}
}

func TestHotWaterProjectTotals(t *testing.T) {
	e := hotWaterTestEngine()

	bath := NewHotWaterSpace()
	bath.ShowerCount = 1
	bath.SinkCount = 1 // 70 L/day → wh-50 (35 L target), flow 15

	pool := NewHotWaterSpace()
	pool.SpaceType = SpacePool
	pool.PoolLength = 8
	pool.PoolWidth = 4
	pool.PoolDepth = 1.5 // 48 m³ → ph-12

	p := HotWaterProject{
		Spaces: []HotWaterSpace{bath, pool},
		EquipmentLines: []LineItem{
			{Description: "Circulation pump", Unit: "No.", Qty: 1, UnitPrice: 22000},
		},
		EquipmentDiscount: 5,
	}
	e.RecomputeAll(&p)

	if p.TotalDemandLiters != 70 || p.TotalPeakFlow != 15 {
		t.Errorf("demand/flow = %v/%v, want 70/15", p.TotalDemandLiters, p.TotalPeakFlow)
	}
	if p.TotalPoolVolume != 48 || p.TotalPoolHeatingKw != 9.6 {
		t.Errorf("pool totals = %v m³ / %v kW, want 48/9.6", p.TotalPoolVolume, p.TotalPoolHeatingKw)
	}

	if p.HeaterTotal != 9000 || p.PoolHeaterTotal != 198000 {
		t.Errorf("heater totals = %v/%v, want 9000/198000", p.HeaterTotal, p.PoolHeaterTotal)
	}
	if p.EquipmentLineTotal != 22000 {
		t.Errorf("equipment lines = %v, want 22000", p.EquipmentLineTotal)
	}
	wantSubtotal := 9000.0 + 198000 + 22000
	if p.EquipmentSubtotal != wantSubtotal {
		t.Errorf("equipment subtotal = %v, want %v", p.EquipmentSubtotal, wantSubtotal)
	}
	if p.GrandTotal != wantSubtotal*0.95 {
		t.Errorf("grand total = %v, want discounted equipment total", p.GrandTotal)
	}
}

func TestHotWaterHeaterOverrideAndQty(t *testing.T) {
	e := hotWaterTestEngine()

	sp := NewHotWaterSpace()
	sp.ShowerCount = 1
	sp.SinkCount = 1 // 70 L/day → wh-50
	p := HotWaterProject{Spaces: []HotWaterSpace{sp}}
	e.RecomputeAll(&p)

	p.Spaces[0].Heater.Override(e.WaterHeaters.FindByID("wh-120"))
	p.Spaces[0].HeaterQty = 2
	e.Recompute(&p, "selected_heater", "heater_qty")

	got := &p.Spaces[0]
	if got.Heater.Final().ID != "wh-120" {
		t.Fatal("override must win over the suggestion")
	}
	if got.HeaterSubtotal != 2*17000 {
		t.Errorf("subtotal = %v, want 34000", got.HeaterSubtotal)
	}
	if p.GrandTotal != 34000 {
		t.Errorf("grand total = %v, want 34000", p.GrandTotal)
	}
}

func TestHotWaterSpaceTypeSwitchClearsDemand(t *testing.T) {
	e := hotWaterTestEngine()

	sp := NewHotWaterSpace()
	sp.ShowerCount = 2
	p := HotWaterProject{Spaces: []HotWaterSpace{sp}}
	e.RecomputeAll(&p)

	if p.Spaces[0].Heater.Final() == nil {
		t.Fatal("setup: expected a heater match")
	}

	p.Spaces[0].SpaceType = SpacePool
	e.Recompute(&p, "space_type")

	got := &p.Spaces[0]
	if got.DemandLitersPerDay != 0 {
		t.Errorf("demand = %v, want 0 for a pool", got.DemandLitersPerDay)
	}
	if got.Heater.Final() != nil {
		t.Error("switching to pool must clear the water heater suggestion")
	}
	if got.PoolHeatingLoadKw != 0 || got.PoolHeater.Final() != nil {
		t.Error("pool with no dimensions must not match a pool heater")
	}
}
