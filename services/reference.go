package services

// Reference is the three-tier equipment reference used by every matching
// entity: Suggested always tracks the latest computed selection, Selected
// is an optional user override, and Final projects whichever applies.
// Overriding never hides the suggestion; it only stops it from driving
// Final.
type Reference struct {
	Suggested *CatalogItem
	Selected  *CatalogItem
}

// Final returns the effective item: the override when present, otherwise
// the suggestion.
func (r Reference) Final() *CatalogItem {
	if r.Selected != nil {
		return r.Selected
	}
	return r.Suggested
}

// Overridden reports whether a manual selection is in force.
func (r Reference) Overridden() bool { return r.Selected != nil }

// Override pins the reference to a manual selection.
func (r *Reference) Override(item *CatalogItem) { r.Selected = item }

// Clear drops the manual selection, returning the reference to auto mode.
func (r *Reference) Clear() { r.Selected = nil }

// FinalID returns the effective item's ID, or "" when nothing is selected.
func (r Reference) FinalID() string {
	if it := r.Final(); it != nil {
		return it.ID
	}
	return ""
}

// FinalPrice returns the effective item's unit price, or zero.
func (r Reference) FinalPrice() float64 {
	if it := r.Final(); it != nil {
		return it.Price
	}
	return 0
}

// FinalCapacity returns the effective item's capacity, or zero.
func (r Reference) FinalCapacity() float64 {
	if it := r.Final(); it != nil {
		return it.Capacity
	}
	return 0
}
