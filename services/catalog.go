package services

import (
	"fmt"
	"sort"

	"github.com/pocketbase/pocketbase"
)

// CatalogItem is one purchasable equipment record. Capacity carries the
// class-specific sizing attribute (watt output for radiators, kW for
// boilers/chillers/FCUs/pool heaters, liters for water heaters). Items are
// immutable during a calculation pass.
type CatalogItem struct {
	ID       string
	Name     string
	Brand    string
	Model    string
	Capacity float64
	Price    float64
	Active   bool

	// Classification attributes, zero-valued when the class has none.
	Type     string // radiator_type, boiler_type, heater_type, ...
	Height   int    // radiator height class (mm)
	Material string
}

// Catalog is a read-only view over the items of one equipment class,
// ordered ascending by capacity. Matching only ever sees active items;
// deactivated items stay resolvable by ID for historical references.
type Catalog struct {
	items []CatalogItem
}

// NewCatalog builds a catalog view from items, sorting ascending by
// capacity (stable, so seeded order breaks ties).
func NewCatalog(items []CatalogItem) *Catalog {
	sorted := make([]CatalogItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})
	return &Catalog{items: sorted}
}

// Filter restricts matching to a subset of a catalog's items.
type Filter func(CatalogItem) bool

// TypeIs filters by the item's classification type.
func TypeIs(t string) Filter {
	return func(it CatalogItem) bool { return it.Type == t }
}

// HeightIs filters by the radiator height class.
func HeightIs(h int) Filter {
	return func(it CatalogItem) bool { return it.Height == h }
}

func matches(it CatalogItem, filters []Filter) bool {
	if !it.Active {
		return false
	}
	for _, f := range filters {
		if !f(it) {
			return false
		}
	}
	return true
}

// FindSmallestAtLeast returns the first active item (ascending capacity
// order) whose capacity covers the requirement, or nil.
func (c *Catalog) FindSmallestAtLeast(capacity float64, filters ...Filter) *CatalogItem {
	for i := range c.items {
		it := c.items[i]
		if it.Capacity >= capacity && matches(it, filters) {
			return &it
		}
	}
	return nil
}

// FindLargest returns the active item with the highest capacity matching
// the filters, or nil.
func (c *Catalog) FindLargest(filters ...Filter) *CatalogItem {
	for i := len(c.items) - 1; i >= 0; i-- {
		it := c.items[i]
		if matches(it, filters) {
			return &it
		}
	}
	return nil
}

// FindByID resolves an item regardless of its active flag, so historical
// selections survive catalog deactivation. Returns nil when absent.
func (c *Catalog) FindByID(id string) *CatalogItem {
	if id == "" {
		return nil
	}
	for i := range c.items {
		if c.items[i].ID == id {
			it := c.items[i]
			return &it
		}
	}
	return nil
}

// Len reports the number of items in the view, active or not.
func (c *Catalog) Len() int { return len(c.items) }

// LoadCatalog reads all records of one equipment-class collection into a
// Catalog. capacityField names the collection's sizing column.
func LoadCatalog(app *pocketbase.PocketBase, collection, capacityField string) (*Catalog, error) {
	records, err := app.FindAllRecords(collection)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", collection, err)
	}

	items := make([]CatalogItem, 0, len(records))
	for _, r := range records {
		items = append(items, CatalogItem{
			ID:       r.Id,
			Name:     r.GetString("name"),
			Brand:    r.GetString("brand"),
			Model:    r.GetString("model"),
			Capacity: r.GetFloat(capacityField),
			Price:    r.GetFloat("price"),
			Active:   r.GetBool("active"),
			Type:     r.GetString("type"),
			Height:   r.GetInt("height"),
			Material: r.GetString("material"),
		})
	}
	return NewCatalog(items), nil
}
