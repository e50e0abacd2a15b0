package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// The catalog collections exposed over the API. Anything else in the path
// is rejected so the generic handlers cannot touch project data.
var catalogCollections = map[string]bool{
	"boilers":          true,
	"radiators":        true,
	"chillers":         true,
	"fcus":             true,
	"ahus":             true,
	"water_heaters":    true,
	"pool_heaters":     true,
	"piping_materials": true,
	"duct_materials":   true,
	"diffusers":        true,
	"pool_equipment":   true,
}

// HandleCatalogList returns the items of one catalog. Active items only by
// default; ?all=1 includes deactivated ones.
func HandleCatalogList(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		catalog := e.Request.PathValue("catalog")
		if !catalogCollections[catalog] {
			return notFound(e, "unknown catalog")
		}

		var records []*core.Record
		var err error
		if e.Request.URL.Query().Get("all") != "" {
			records, err = app.FindAllRecords(catalog)
		} else {
			records, err = app.FindRecordsByFilter(catalog, "active = true", "name", 0, 0)
		}
		if err != nil {
			log.Printf("Error listing catalog %s: %v", catalog, err)
			return serverError(e, "could not list catalog")
		}
		return e.JSON(http.StatusOK, records)
	}
}

// HandleCatalogDeactivate retires a catalog item. Deactivated items keep
// their references from existing projects but are skipped by the sizing
// engines.
func HandleCatalogDeactivate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		catalog := e.Request.PathValue("catalog")
		if !catalogCollections[catalog] {
			return notFound(e, "unknown catalog")
		}

		record, err := app.FindRecordById(catalog, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "catalog item not found")
		}
		record.Set("active", false)
		if err := app.Save(record); err != nil {
			log.Printf("Error deactivating %s item %s: %v", catalog, record.Id, err)
			return serverError(e, "could not deactivate item")
		}
		return e.JSON(http.StatusOK, record)
	}
}
