package services

import "testing"

func radiatorCatalog(watts ...float64) *Catalog {
	var items []CatalogItem
	for i, w := range watts {
		items = append(items, CatalogItem{
			ID:       string(rune('a' + i)),
			Name:     "Radiator",
			Capacity: w,
			Price:    w / 10,
			Active:   true,
			Type:     "aluminum",
			Height:   680,
		})
	}
	return NewCatalog(items)
}

func TestMatchCapacitySmallestSufficient(t *testing.T) {
	c := radiatorCatalog(1000, 1800, 2500)

	sel := MatchCapacity(c, 2000)
	if sel.Item == nil || sel.Item.Capacity != 2500 {
		t.Fatalf("expected 2500W item, got %+v", sel.Item)
	}
	if sel.Qty != 1 {
		t.Errorf("Qty = %d, want 1", sel.Qty)
	}
	if sel.Undersized {
		t.Error("selection should not be undersized")
	}
}

func TestMatchCapacityFallbackToLargest(t *testing.T) {
	c := radiatorCatalog(800, 1200)

	sel := MatchCapacity(c, 2000)
	if sel.Item == nil || sel.Item.Capacity != 1200 {
		t.Fatalf("expected fallback to 1200W item, got %+v", sel.Item)
	}
	if sel.Qty != 2 {
		t.Errorf("Qty = %d, want ceil(2000/1200)=2", sel.Qty)
	}
	if !sel.Undersized {
		t.Error("fallback selection must be flagged undersized")
	}
	if sel.Item.Capacity > 2000 {
		t.Error("fallback capacity must be <= required load")
	}
}

func TestMatchCapacityZeroRequired(t *testing.T) {
	c := radiatorCatalog(1000, 2000)

	sel := MatchCapacity(c, 0)
	if sel.Item != nil {
		t.Errorf("zero load must select nothing, got %+v", sel.Item)
	}
}

func TestMatchCapacityEmptyCatalog(t *testing.T) {
	c := NewCatalog(nil)

	sel := MatchCapacity(c, 5000)
	if sel.Item != nil || sel.Qty != 0 {
		t.Errorf("empty catalog must yield empty selection, got %+v", sel)
	}
}

func TestMatchCapacityIgnoresInactive(t *testing.T) {
	c := NewCatalog([]CatalogItem{
		{ID: "small", Capacity: 1000, Active: true},
		{ID: "big", Capacity: 3000, Active: false},
	})

	sel := MatchCapacity(c, 2000)
	if sel.Item == nil || sel.Item.ID != "small" {
		t.Fatalf("inactive item must be invisible, got %+v", sel.Item)
	}
	if !sel.Undersized {
		t.Error("only remaining unit is below the load, expected undersized")
	}
}

func TestMatchCapacityFilterWidening(t *testing.T) {
	c := NewCatalog([]CatalogItem{
		{ID: "h680", Capacity: 1500, Active: true, Type: "aluminum", Height: 680},
	})

	// Height class 880 has no entries: the height filter is dropped and
	// the aluminum catalog answers instead.
	sel := MatchCapacity(c, 1000, TypeIs("aluminum"), HeightIs(880))
	if sel.Item == nil || sel.Item.ID != "h680" {
		t.Fatalf("expected widened match on h680, got %+v", sel.Item)
	}

	// Widening drops only the most specific filter, once.
	sel = MatchCapacity(c, 1000, TypeIs("towel"), HeightIs(880))
	if sel.Item != nil {
		t.Errorf("type filter must survive widening, got %+v", sel.Item)
	}
}

func TestMatchCapacityMonotonic(t *testing.T) {
	c := radiatorCatalog(500, 1000, 1500, 2000, 3000)

	prevCap := 0.0
	prevQty := 0
	for load := 100.0; load <= 6000; load += 100 {
		sel := MatchCapacity(c, load)
		if sel.Item == nil {
			t.Fatalf("load %v: no selection", load)
		}
		effective := sel.Item.Capacity * float64(sel.Qty)
		if sel.Item.Capacity < prevCap && sel.Qty <= prevQty {
			t.Fatalf("load %v: capacity %v qty %d regressed from %v/%d",
				load, sel.Item.Capacity, sel.Qty, prevCap, prevQty)
		}
		_ = effective
		prevCap = sel.Item.Capacity
		prevQty = sel.Qty
	}
}

func TestSuggestQty(t *testing.T) {
	tests := []struct {
		name     string
		required float64
		capacity float64
		expect   int
	}{
		{"exact fit", 2000, 2000, 1},
		{"one unit covers", 1500, 2000, 1},
		{"two units", 2000, 1200, 2},
		{"manual override short", 2000, 1000, 2},
		{"zero capacity", 2000, 0, 1},
		{"zero required", 0, 1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestQty(tt.required, tt.capacity); got != tt.expect {
				t.Errorf("SuggestQty(%v, %v) = %d, want %d",
					tt.required, tt.capacity, got, tt.expect)
			}
		})
	}
}

func TestRaiseQty(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		suggested int
		expect    int
	}{
		{"raises under-specified", 1, 2, 2},
		{"keeps raised quantity", 3, 2, 3},
		{"keeps equal quantity", 2, 2, 2},
		{"zero stored", 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RaiseQty(tt.stored, tt.suggested); got != tt.expect {
				t.Errorf("RaiseQty(%d, %d) = %d, want %d",
					tt.stored, tt.suggested, got, tt.expect)
			}
		})
	}
}
