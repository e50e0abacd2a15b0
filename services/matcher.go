package services

import "math"

// Selection is the outcome of matching a required capacity against a
// catalog. A nil Item means no equipment is needed or none exists at all.
// Undersized marks the best-effort fallback where even the largest
// available unit is below the required load; it is informational, not an
// error.
type Selection struct {
	Item       *CatalogItem
	Qty        int
	Undersized bool
}

// MatchCapacity selects equipment for a required capacity:
//
//  1. required == 0 → empty selection.
//  2. Smallest active item with capacity >= required (ties broken by
//     catalog order).
//  3. No item covers the load → the single largest active item matching
//     the filters, flagged Undersized.
//  4. The filtered fallback found nothing → drop the most specific
//     (last) filter and retry once from step 2.
//  5. Still nothing → empty selection.
//
// Qty is max(1, ceil(required/capacity)) whenever an item is selected.
func MatchCapacity(c *Catalog, required float64, filters ...Filter) Selection {
	if required <= 0 {
		return Selection{}
	}

	sel := matchOnce(c, required, filters)
	if sel.Item == nil && len(filters) > 0 {
		sel = matchOnce(c, required, filters[:len(filters)-1])
	}
	if sel.Item == nil {
		return Selection{}
	}

	sel.Qty = SuggestQty(required, sel.Item.Capacity)
	return sel
}

func matchOnce(c *Catalog, required float64, filters []Filter) Selection {
	if it := c.FindSmallestAtLeast(required, filters...); it != nil {
		return Selection{Item: it}
	}
	if it := c.FindLargest(filters...); it != nil {
		return Selection{Item: it, Undersized: it.Capacity < required}
	}
	return Selection{}
}

// SuggestQty returns how many units of the given capacity cover the
// required load, never less than one.
func SuggestQty(required, capacity float64) int {
	if capacity <= 0 || required <= 0 {
		return 1
	}
	return int(math.Max(1, math.Ceil(required/capacity)))
}

// RaiseQty applies the one-way quantity rule: a stored quantity below the
// suggestion is raised to it, a quantity at or above the suggestion is
// left untouched. The engine never lowers a user-raised quantity.
func RaiseQty(stored, suggested int) int {
	if suggested > stored {
		return suggested
	}
	return stored
}
