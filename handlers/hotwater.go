package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/masterline2023/hvac-calculation/services"
)

var hotWaterProjectFields = []string{
	"name", "customer", "attention_to", "validity_days", "equipment_discount",
}

var hotWaterProjectGraphFields = map[string]bool{
	"equipment_discount": true,
}

var hotWaterSpaceFields = []string{
	"name", "space_type", "qty", "shower_count", "bathtub_count",
	"sink_count", "pool_length", "pool_width", "pool_depth",
	"selected_heater", "heater_qty", "selected_pool_heater",
	"sort_order", "notes",
}

var hotWaterSpaceGraphFields = map[string]bool{
	"space_type":           true,
	"qty":                  true,
	"shower_count":         true,
	"bathtub_count":        true,
	"sink_count":           true,
	"pool_length":          true,
	"pool_width":           true,
	"pool_depth":           true,
	"selected_heater":      true,
	"heater_qty":           true,
	"selected_pool_heater": true,
}

var equipmentLineFields = []string{
	"name", "equipment", "unit", "quantity", "unit_price", "sort_order", "notes",
}

func hotWaterPayload(app *pocketbase.PocketBase, projectID string) (map[string]any, error) {
	record, err := app.FindRecordById("hotwater_projects", projectID)
	if err != nil {
		return nil, err
	}
	spaces, err := listChildren(app, "hotwater_spaces", projectID)
	if err != nil {
		return nil, err
	}
	lines, err := listChildren(app, "equipment_lines", projectID)
	if err != nil {
		return nil, err
	}
	return projectPayload(record, spaces, lines), nil
}

// HandleHotWaterProjectList returns all hot water projects.
func HandleHotWaterProjectList(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("hotwater_projects")
		if err != nil {
			log.Printf("Error listing hotwater projects: %v", err)
			return serverError(e, "could not list projects")
		}
		return e.JSON(http.StatusOK, records)
	}
}

// HandleHotWaterProjectCreate creates a draft hot water project.
func HandleHotWaterProjectCreate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		col, err := app.FindCollectionByNameOrId("hotwater_projects")
		if err != nil {
			return serverError(e, "hotwater_projects collection missing")
		}
		record := core.NewRecord(col)
		patchRecord(record, body, hotWaterProjectFields)
		record.Set("state", "draft")
		if record.GetInt("validity_days") == 0 {
			record.Set("validity_days", 30)
		}
		if err := app.Save(record); err != nil {
			log.Printf("Error creating hotwater project: %v", err)
			return badRequest(e, "could not create project")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHotWaterProjectView returns one hot water project with its usage
// points and equipment lines.
func HandleHotWaterProjectView(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		payload, err := hotWaterPayload(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "project not found")
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleHotWaterProjectPatch updates project fields and recomputes the
// affected derived values.
func HandleHotWaterProjectPatch(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		record, err := app.FindRecordById("hotwater_projects", id)
		if err != nil {
			return notFound(e, "project not found")
		}
		changed := patchRecord(record, body, hotWaterProjectFields)
		if err := app.Save(record); err != nil {
			log.Printf("Error saving hotwater project %s: %v", id, err)
			return badRequest(e, "could not save project")
		}

		if scoped := graphChanges(changed, hotWaterProjectGraphFields); len(scoped) > 0 {
			engine, err := services.NewHotWaterEngineFromApp(app)
			if err != nil {
				return serverError(e, "could not load catalogs")
			}
			if _, err := services.RecomputeHotWaterProject(app, engine, id, scoped...); err != nil {
				log.Printf("Error recomputing hotwater project %s: %v", id, err)
				return serverError(e, "could not recompute project")
			}
		}

		payload, err := hotWaterPayload(app, id)
		if err != nil {
			return serverError(e, "could not reload project")
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleHotWaterProjectDelete removes a project with its cascading children.
func HandleHotWaterProjectDelete(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("hotwater_projects", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "project not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("Error deleting hotwater project %s: %v", record.Id, err)
			return serverError(e, "could not delete project")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// HandleHotWaterProjectAction moves a project through its lifecycle.
func HandleHotWaterProjectAction(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := applyTransition(
			app,
			"hotwater_projects",
			services.HotWaterOfferPrefix,
			e.Request.PathValue("id"),
			e.Request.PathValue("action"),
		)
		if err != nil {
			return badRequest(e, err.Error())
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHotWaterProjectRecompute rebuilds every derived value of a project.
func HandleHotWaterProjectRecompute(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewHotWaterEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHotWaterProject(app, engine, id); err != nil {
			log.Printf("Error recomputing hotwater project %s: %v", id, err)
			return notFound(e, "project not found")
		}
		payload, err := hotWaterPayload(app, id)
		if err != nil {
			return serverError(e, "could not reload project")
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleHotWaterSpaceCreate adds a usage point to a project and recomputes.
func HandleHotWaterSpaceCreate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("hotwater_projects", projectID); err != nil {
			return notFound(e, "project not found")
		}

		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		col, err := app.FindCollectionByNameOrId("hotwater_spaces")
		if err != nil {
			return serverError(e, "hotwater_spaces collection missing")
		}
		record := core.NewRecord(col)
		record.Set("project", projectID)
		patchRecord(record, body, hotWaterSpaceFields)
		if err := app.Save(record); err != nil {
			log.Printf("Error creating hotwater space: %v", err)
			return badRequest(e, "could not create space")
		}

		engine, err := services.NewHotWaterEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHotWaterProject(app, engine, projectID); err != nil {
			log.Printf("Error recomputing hotwater project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}

		record, err = app.FindRecordById("hotwater_spaces", record.Id)
		if err != nil {
			return serverError(e, "could not reload space")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHotWaterSpacePatch updates one usage point and recomputes the
// values downstream of the edited fields.
func HandleHotWaterSpacePatch(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		record, err := app.FindRecordById("hotwater_spaces", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "space not found")
		}
		changed := patchRecord(record, body, hotWaterSpaceFields)
		if err := app.Save(record); err != nil {
			log.Printf("Error saving hotwater space %s: %v", record.Id, err)
			return badRequest(e, "could not save space")
		}

		projectID := record.GetString("project")
		if scoped := graphChanges(changed, hotWaterSpaceGraphFields); len(scoped) > 0 {
			engine, err := services.NewHotWaterEngineFromApp(app)
			if err != nil {
				return serverError(e, "could not load catalogs")
			}
			if _, err := services.RecomputeHotWaterProject(app, engine, projectID, scoped...); err != nil {
				log.Printf("Error recomputing hotwater project %s: %v", projectID, err)
				return serverError(e, "could not recompute project")
			}
		}

		record, err = app.FindRecordById("hotwater_spaces", record.Id)
		if err != nil {
			return serverError(e, "could not reload space")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHotWaterSpaceDelete removes a usage point and recomputes.
func HandleHotWaterSpaceDelete(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("hotwater_spaces", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "space not found")
		}
		projectID := record.GetString("project")
		if err := app.Delete(record); err != nil {
			log.Printf("Error deleting hotwater space %s: %v", record.Id, err)
			return serverError(e, "could not delete space")
		}

		engine, err := services.NewHotWaterEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHotWaterProject(app, engine, projectID); err != nil {
			log.Printf("Error recomputing hotwater project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// HandleHotWaterLineCreate adds an additional equipment line to a project.
func HandleHotWaterLineCreate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("hotwater_projects", projectID); err != nil {
			return notFound(e, "project not found")
		}

		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		col, err := app.FindCollectionByNameOrId("equipment_lines")
		if err != nil {
			return serverError(e, "equipment_lines collection missing")
		}
		record := core.NewRecord(col)
		record.Set("project", projectID)
		patchRecord(record, body, equipmentLineFields)
		if err := services.ApplyLineDefaults(app, record); err != nil {
			return badRequest(e, err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("Error creating equipment line: %v", err)
			return badRequest(e, "could not create line")
		}

		engine, err := services.NewHotWaterEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHotWaterProject(app, engine, projectID, "equipment_lines"); err != nil {
			log.Printf("Error recomputing hotwater project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}

		record, err = app.FindRecordById("equipment_lines", record.Id)
		if err != nil {
			return serverError(e, "could not reload line")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHotWaterLinePatch updates an additional equipment line.
func HandleHotWaterLinePatch(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		record, err := app.FindRecordById("equipment_lines", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "line not found")
		}
		patchRecord(record, body, equipmentLineFields)
		if err := services.ApplyLineDefaults(app, record); err != nil {
			return badRequest(e, err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("Error saving equipment line %s: %v", record.Id, err)
			return badRequest(e, "could not save line")
		}

		projectID := record.GetString("project")
		engine, err := services.NewHotWaterEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHotWaterProject(app, engine, projectID, "equipment_lines"); err != nil {
			log.Printf("Error recomputing hotwater project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}

		record, err = app.FindRecordById("equipment_lines", record.Id)
		if err != nil {
			return serverError(e, "could not reload line")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHotWaterLineDelete removes an additional equipment line.
func HandleHotWaterLineDelete(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("equipment_lines", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "line not found")
		}
		projectID := record.GetString("project")
		if err := app.Delete(record); err != nil {
			log.Printf("Error deleting equipment line %s: %v", record.Id, err)
			return serverError(e, "could not delete line")
		}

		engine, err := services.NewHotWaterEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHotWaterProject(app, engine, projectID, "equipment_lines"); err != nil {
			log.Printf("Error recomputing hotwater project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// HandleHotWaterApplyTerms copies a terms template onto the project.
func HandleHotWaterApplyTerms(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		body := struct {
			Template string `json:"template"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}
		if err := services.ApplyTermsTemplate(app, "hotwater_projects", id, body.Template); err != nil {
			return badRequest(e, err.Error())
		}
		record, err := app.FindRecordById("hotwater_projects", id)
		if err != nil {
			return serverError(e, "could not reload project")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHotWaterQuotation recomputes the project and generates a linked
// quotation from the result.
func HandleHotWaterQuotation(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewHotWaterEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		quotation, err := services.CreateHotWaterQuotation(app, engine, id)
		if errors.Is(err, services.ErrMissingCustomer) {
			return badRequest(e, "project has no customer")
		}
		if err != nil {
			log.Printf("Error creating hotwater quotation for %s: %v", id, err)
			return notFound(e, "project not found")
		}
		return e.JSON(http.StatusOK, quotation)
	}
}

// HandleHotWaterExportExcel generates the hot water offer as an Excel
// download.
func HandleHotWaterExportExcel(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewHotWaterEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		data, err := services.BuildHotWaterOfferExport(app, engine, id)
		if err != nil {
			return notFound(e, "project not found")
		}
		content, err := services.GenerateOfferExcel(data)
		if err != nil {
			log.Printf("Error generating hotwater offer Excel for %s: %v", id, err)
			return serverError(e, "could not generate Excel file")
		}
		return writeDownload(e, contentTypeExcel, exportFilename(data.OfferCode, data.ProjectName, "xlsx"), content)
	}
}

// HandleHotWaterExportPDF generates the hot water offer as a PDF download.
func HandleHotWaterExportPDF(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewHotWaterEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		data, err := services.BuildHotWaterOfferExport(app, engine, id)
		if err != nil {
			return notFound(e, "project not found")
		}
		content, err := services.GenerateOfferPDF(data)
		if err != nil {
			log.Printf("Error generating hotwater offer PDF for %s: %v", id, err)
			return serverError(e, "could not generate PDF file")
		}
		return writeDownload(e, contentTypePDF, exportFilename(data.OfferCode, data.ProjectName, "pdf"), content)
	}
}
