package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/masterline2023/hvac-calculation/services"
)

var coolingProjectFields = []string{
	"name", "customer", "attention_to", "validity_days",
	"selected_chiller", "chiller_qty", "ahus",
	"equipment_discount", "ductwork_discount",
}

var coolingProjectGraphFields = map[string]bool{
	"selected_chiller":   true,
	"chiller_qty":        true,
	"ahus":               true,
	"equipment_discount": true,
	"ductwork_discount":  true,
}

var coolingSpaceFields = []string{
	"floor", "room_name", "area", "height", "watt_per_sqm",
	"load_factor_percent", "room_qty", "system_type",
	"selected_fcu", "fcu_qty", "thermostat_price", "sort_order", "notes",
}

var coolingSpaceGraphFields = map[string]bool{
	"area":                true,
	"height":              true,
	"watt_per_sqm":        true,
	"load_factor_percent": true,
	"room_qty":            true,
	"system_type":         true,
	"selected_fcu":        true,
	"fcu_qty":             true,
	"thermostat_price":    true,
}

var ductLineFields = []string{
	"name", "line_type", "material", "diffuser", "unit",
	"quantity", "unit_price", "sort_order", "notes",
}

func coolingPayload(app *pocketbase.PocketBase, projectID string) (map[string]any, error) {
	record, err := app.FindRecordById("cooling_projects", projectID)
	if err != nil {
		return nil, err
	}
	spaces, err := listChildren(app, "cooling_spaces", projectID)
	if err != nil {
		return nil, err
	}
	lines, err := listChildren(app, "duct_lines", projectID)
	if err != nil {
		return nil, err
	}
	return projectPayload(record, spaces, lines), nil
}

// HandleCoolingProjectList returns all cooling projects.
func HandleCoolingProjectList(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("cooling_projects")
		if err != nil {
			log.Printf("Error listing cooling projects: %v", err)
			return serverError(e, "could not list projects")
		}
		return e.JSON(http.StatusOK, records)
	}
}

// HandleCoolingProjectCreate creates a draft cooling project.
func HandleCoolingProjectCreate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		col, err := app.FindCollectionByNameOrId("cooling_projects")
		if err != nil {
			return serverError(e, "cooling_projects collection missing")
		}
		record := core.NewRecord(col)
		patchRecord(record, body, coolingProjectFields)
		record.Set("state", "draft")
		if record.GetInt("validity_days") == 0 {
			record.Set("validity_days", 30)
		}
		if err := app.Save(record); err != nil {
			log.Printf("Error creating cooling project: %v", err)
			return badRequest(e, "could not create project")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleCoolingProjectView returns one cooling project with its rooms and
// duct lines.
func HandleCoolingProjectView(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		payload, err := coolingPayload(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "project not found")
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleCoolingProjectPatch updates project fields, including the
// hand-picked AHU list, and recomputes the affected values.
func HandleCoolingProjectPatch(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		record, err := app.FindRecordById("cooling_projects", id)
		if err != nil {
			return notFound(e, "project not found")
		}
		changed := patchRecord(record, body, coolingProjectFields)
		if err := app.Save(record); err != nil {
			log.Printf("Error saving cooling project %s: %v", id, err)
			return badRequest(e, "could not save project")
		}

		if scoped := graphChanges(changed, coolingProjectGraphFields); len(scoped) > 0 {
			engine, err := services.NewCoolingEngineFromApp(app)
			if err != nil {
				return serverError(e, "could not load catalogs")
			}
			if _, err := services.RecomputeCoolingProject(app, engine, id, scoped...); err != nil {
				log.Printf("Error recomputing cooling project %s: %v", id, err)
				return serverError(e, "could not recompute project")
			}
		}

		payload, err := coolingPayload(app, id)
		if err != nil {
			return serverError(e, "could not reload project")
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleCoolingProjectDelete removes a project with its cascading children.
func HandleCoolingProjectDelete(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("cooling_projects", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "project not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("Error deleting cooling project %s: %v", record.Id, err)
			return serverError(e, "could not delete project")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// HandleCoolingProjectAction moves a project through its lifecycle.
func HandleCoolingProjectAction(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := applyTransition(
			app,
			"cooling_projects",
			services.CoolingOfferPrefix,
			e.Request.PathValue("id"),
			e.Request.PathValue("action"),
		)
		if err != nil {
			return badRequest(e, err.Error())
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleCoolingProjectRecompute rebuilds every derived value of a project.
func HandleCoolingProjectRecompute(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewCoolingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeCoolingProject(app, engine, id); err != nil {
			log.Printf("Error recomputing cooling project %s: %v", id, err)
			return notFound(e, "project not found")
		}
		payload, err := coolingPayload(app, id)
		if err != nil {
			return serverError(e, "could not reload project")
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleCoolingSpaceCreate adds a room to a project and recomputes.
func HandleCoolingSpaceCreate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("cooling_projects", projectID); err != nil {
			return notFound(e, "project not found")
		}

		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		col, err := app.FindCollectionByNameOrId("cooling_spaces")
		if err != nil {
			return serverError(e, "cooling_spaces collection missing")
		}
		record := core.NewRecord(col)
		record.Set("project", projectID)
		patchRecord(record, body, coolingSpaceFields)
		if err := app.Save(record); err != nil {
			log.Printf("Error creating cooling space: %v", err)
			return badRequest(e, "could not create space")
		}

		engine, err := services.NewCoolingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeCoolingProject(app, engine, projectID); err != nil {
			log.Printf("Error recomputing cooling project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}

		record, err = app.FindRecordById("cooling_spaces", record.Id)
		if err != nil {
			return serverError(e, "could not reload space")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleCoolingSpacePatch updates one room and recomputes the values
// downstream of the edited fields.
func HandleCoolingSpacePatch(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		// BTU/m² is an alternative way to enter the load density; it
		// is stored as its W/m² equivalent.
		if btu, ok := body["btu_per_sqm"].(float64); ok {
			if _, set := body["watt_per_sqm"]; !set {
				body["watt_per_sqm"] = services.BTUToWatts(btu)
			}
			delete(body, "btu_per_sqm")
		}

		record, err := app.FindRecordById("cooling_spaces", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "space not found")
		}
		changed := patchRecord(record, body, coolingSpaceFields)
		if err := app.Save(record); err != nil {
			log.Printf("Error saving cooling space %s: %v", record.Id, err)
			return badRequest(e, "could not save space")
		}

		projectID := record.GetString("project")
		if scoped := graphChanges(changed, coolingSpaceGraphFields); len(scoped) > 0 {
			engine, err := services.NewCoolingEngineFromApp(app)
			if err != nil {
				return serverError(e, "could not load catalogs")
			}
			if _, err := services.RecomputeCoolingProject(app, engine, projectID, scoped...); err != nil {
				log.Printf("Error recomputing cooling project %s: %v", projectID, err)
				return serverError(e, "could not recompute project")
			}
		}

		record, err = app.FindRecordById("cooling_spaces", record.Id)
		if err != nil {
			return serverError(e, "could not reload space")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleCoolingSpaceDelete removes a room and recomputes the project.
func HandleCoolingSpaceDelete(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("cooling_spaces", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "space not found")
		}
		projectID := record.GetString("project")
		if err := app.Delete(record); err != nil {
			log.Printf("Error deleting cooling space %s: %v", record.Id, err)
			return serverError(e, "could not delete space")
		}

		engine, err := services.NewCoolingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeCoolingProject(app, engine, projectID); err != nil {
			log.Printf("Error recomputing cooling project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// HandleCoolingLineCreate adds a ductwork line to a project.
func HandleCoolingLineCreate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("cooling_projects", projectID); err != nil {
			return notFound(e, "project not found")
		}

		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		col, err := app.FindCollectionByNameOrId("duct_lines")
		if err != nil {
			return serverError(e, "duct_lines collection missing")
		}
		record := core.NewRecord(col)
		record.Set("project", projectID)
		patchRecord(record, body, ductLineFields)
		if err := services.ApplyLineDefaults(app, record); err != nil {
			return badRequest(e, err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("Error creating duct line: %v", err)
			return badRequest(e, "could not create line")
		}

		engine, err := services.NewCoolingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeCoolingProject(app, engine, projectID, "duct_lines"); err != nil {
			log.Printf("Error recomputing cooling project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}

		record, err = app.FindRecordById("duct_lines", record.Id)
		if err != nil {
			return serverError(e, "could not reload line")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleCoolingLinePatch updates a ductwork line.
func HandleCoolingLinePatch(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		record, err := app.FindRecordById("duct_lines", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "line not found")
		}
		patchRecord(record, body, ductLineFields)
		if err := services.ApplyLineDefaults(app, record); err != nil {
			return badRequest(e, err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("Error saving duct line %s: %v", record.Id, err)
			return badRequest(e, "could not save line")
		}

		projectID := record.GetString("project")
		engine, err := services.NewCoolingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeCoolingProject(app, engine, projectID, "duct_lines"); err != nil {
			log.Printf("Error recomputing cooling project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}

		record, err = app.FindRecordById("duct_lines", record.Id)
		if err != nil {
			return serverError(e, "could not reload line")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleCoolingLineDelete removes a ductwork line and recomputes.
func HandleCoolingLineDelete(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("duct_lines", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "line not found")
		}
		projectID := record.GetString("project")
		if err := app.Delete(record); err != nil {
			log.Printf("Error deleting duct line %s: %v", record.Id, err)
			return serverError(e, "could not delete line")
		}

		engine, err := services.NewCoolingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeCoolingProject(app, engine, projectID, "duct_lines"); err != nil {
			log.Printf("Error recomputing cooling project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// HandleCoolingApplyTerms copies a terms template onto the project.
func HandleCoolingApplyTerms(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		body := struct {
			Template string `json:"template"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}
		if err := services.ApplyTermsTemplate(app, "cooling_projects", id, body.Template); err != nil {
			return badRequest(e, err.Error())
		}
		record, err := app.FindRecordById("cooling_projects", id)
		if err != nil {
			return serverError(e, "could not reload project")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleCoolingQuotation recomputes the project and generates a linked
// quotation from the result.
func HandleCoolingQuotation(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewCoolingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		quotation, err := services.CreateCoolingQuotation(app, engine, id)
		if errors.Is(err, services.ErrMissingCustomer) {
			return badRequest(e, "project has no customer")
		}
		if err != nil {
			log.Printf("Error creating cooling quotation for %s: %v", id, err)
			return notFound(e, "project not found")
		}
		return e.JSON(http.StatusOK, quotation)
	}
}

// HandleCoolingExportExcel generates the cooling offer as an Excel download.
func HandleCoolingExportExcel(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewCoolingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		data, err := services.BuildCoolingOfferExport(app, engine, id)
		if err != nil {
			return notFound(e, "project not found")
		}
		content, err := services.GenerateOfferExcel(data)
		if err != nil {
			log.Printf("Error generating cooling offer Excel for %s: %v", id, err)
			return serverError(e, "could not generate Excel file")
		}
		return writeDownload(e, contentTypeExcel, exportFilename(data.OfferCode, data.ProjectName, "xlsx"), content)
	}
}

// HandleCoolingExportPDF generates the cooling offer as a PDF download.
func HandleCoolingExportPDF(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewCoolingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		data, err := services.BuildCoolingOfferExport(app, engine, id)
		if err != nil {
			return notFound(e, "project not found")
		}
		content, err := services.GenerateOfferPDF(data)
		if err != nil {
			log.Printf("Error generating cooling offer PDF for %s: %v", id, err)
			return serverError(e, "could not generate PDF file")
		}
		return writeDownload(e, contentTypePDF, exportFilename(data.OfferCode, data.ProjectName, "pdf"), content)
	}
}
