package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Catalog relations a line item can default from, per line collection. For
// duct lines the diffuser wins over the duct material when both are set.
var lineCatalogSources = map[string][]struct {
	field      string
	collection string
}{
	"piping_lines":    {{"material", "piping_materials"}},
	"duct_lines":      {{"diffuser", "diffusers"}, {"material", "duct_materials"}},
	"equipment_lines": {{"equipment", "pool_equipment"}},
}

// ApplyLineDefaults fills a line's name, unit and unit price from its
// selected catalog item. Values the user already entered are kept; only
// empty fields are defaulted, so re-pointing a priced line at another
// material does not silently reprice it.
func ApplyLineDefaults(app *pocketbase.PocketBase, record *core.Record) error {
	for _, src := range lineCatalogSources[record.Collection().Name] {
		id := record.GetString(src.field)
		if id == "" {
			continue
		}
		item, err := app.FindRecordById(src.collection, id)
		if err != nil {
			return fmt.Errorf("load %s %s: %w", src.field, id, err)
		}
		if record.GetString("name") == "" {
			record.Set("name", item.GetString("name"))
		}
		if record.GetString("unit") == "" && item.GetString("unit") != "" {
			record.Set("unit", item.GetString("unit"))
		}
		if record.GetFloat("unit_price") == 0 {
			record.Set("unit_price", item.GetFloat("price"))
		}
		return nil
	}
	return nil
}
