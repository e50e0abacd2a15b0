package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/masterline2023/hvac-calculation/services"
)

// Patchable heating project fields. The graph subset triggers a scoped
// recompute so manually lowered quantities elsewhere survive the edit.
var heatingProjectFields = []string{
	"name", "customer", "attention_to", "validity_days",
	"selected_boiler", "boiler_qty", "equipment_discount", "piping_discount",
}

var heatingProjectGraphFields = map[string]bool{
	"selected_boiler":    true,
	"boiler_qty":         true,
	"equipment_discount": true,
	"piping_discount":    true,
}

var heatingSpaceFields = []string{
	"floor", "room_name", "is_bathroom", "area", "watt_per_sqm",
	"load_factor_percent", "room_qty", "system_type", "preferred_height",
	"selected_radiator", "radiator_qty", "ufh_price_per_sqm",
	"thermostat_price", "sort_order", "notes",
}

var heatingSpaceGraphFields = map[string]bool{
	"is_bathroom":         true,
	"area":                true,
	"watt_per_sqm":        true,
	"load_factor_percent": true,
	"room_qty":            true,
	"system_type":         true,
	"preferred_height":    true,
	"selected_radiator":   true,
	"radiator_qty":        true,
	"ufh_price_per_sqm":   true,
	"thermostat_price":    true,
}

var pipingLineFields = []string{
	"name", "material", "unit", "quantity", "unit_price", "sort_order", "notes",
}

func graphChanges(changed []string, graph map[string]bool) []string {
	var out []string
	for _, f := range changed {
		if graph[f] {
			out = append(out, f)
		}
	}
	return out
}

func heatingPayload(app *pocketbase.PocketBase, projectID string) (map[string]any, error) {
	record, err := app.FindRecordById("heating_projects", projectID)
	if err != nil {
		return nil, err
	}
	spaces, err := listChildren(app, "heating_spaces", projectID)
	if err != nil {
		return nil, err
	}
	lines, err := listChildren(app, "piping_lines", projectID)
	if err != nil {
		return nil, err
	}
	return projectPayload(record, spaces, lines), nil
}

// HandleHeatingProjectList returns all heating projects.
func HandleHeatingProjectList(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("heating_projects")
		if err != nil {
			log.Printf("Error listing heating projects: %v", err)
			return serverError(e, "could not list projects")
		}
		return e.JSON(http.StatusOK, records)
	}
}

// HandleHeatingProjectCreate creates a draft heating project.
func HandleHeatingProjectCreate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		col, err := app.FindCollectionByNameOrId("heating_projects")
		if err != nil {
			return serverError(e, "heating_projects collection missing")
		}
		record := core.NewRecord(col)
		patchRecord(record, body, heatingProjectFields)
		record.Set("state", "draft")
		if record.GetInt("validity_days") == 0 {
			record.Set("validity_days", 30)
		}
		if err := app.Save(record); err != nil {
			log.Printf("Error creating heating project: %v", err)
			return badRequest(e, "could not create project")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHeatingProjectView returns one heating project with its spaces and
// piping lines.
func HandleHeatingProjectView(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		payload, err := heatingPayload(app, e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "project not found")
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleHeatingProjectPatch updates project fields and recomputes the
// affected derived values.
func HandleHeatingProjectPatch(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		record, err := app.FindRecordById("heating_projects", id)
		if err != nil {
			return notFound(e, "project not found")
		}
		changed := patchRecord(record, body, heatingProjectFields)
		if err := app.Save(record); err != nil {
			log.Printf("Error saving heating project %s: %v", id, err)
			return badRequest(e, "could not save project")
		}

		if scoped := graphChanges(changed, heatingProjectGraphFields); len(scoped) > 0 {
			engine, err := services.NewHeatingEngineFromApp(app)
			if err != nil {
				return serverError(e, "could not load catalogs")
			}
			if _, err := services.RecomputeHeatingProject(app, engine, id, scoped...); err != nil {
				log.Printf("Error recomputing heating project %s: %v", id, err)
				return serverError(e, "could not recompute project")
			}
		}

		payload, err := heatingPayload(app, id)
		if err != nil {
			return serverError(e, "could not reload project")
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleHeatingProjectDelete removes a project together with its cascading
// children.
func HandleHeatingProjectDelete(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("heating_projects", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "project not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("Error deleting heating project %s: %v", record.Id, err)
			return serverError(e, "could not delete project")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// HandleHeatingProjectAction moves a project through its lifecycle. The
// action name comes from the path: confirm, cancel, draft or done.
func HandleHeatingProjectAction(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := applyTransition(
			app,
			"heating_projects",
			services.HeatingOfferPrefix,
			e.Request.PathValue("id"),
			e.Request.PathValue("action"),
		)
		if err != nil {
			return badRequest(e, err.Error())
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHeatingProjectRecompute rebuilds every derived value of a project
// from its current inputs.
func HandleHeatingProjectRecompute(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewHeatingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHeatingProject(app, engine, id); err != nil {
			log.Printf("Error recomputing heating project %s: %v", id, err)
			return notFound(e, "project not found")
		}
		payload, err := heatingPayload(app, id)
		if err != nil {
			return serverError(e, "could not reload project")
		}
		return e.JSON(http.StatusOK, payload)
	}
}

// HandleHeatingSpaceCreate adds a room to a project and recomputes.
func HandleHeatingSpaceCreate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("heating_projects", projectID); err != nil {
			return notFound(e, "project not found")
		}

		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		col, err := app.FindCollectionByNameOrId("heating_spaces")
		if err != nil {
			return serverError(e, "heating_spaces collection missing")
		}
		record := core.NewRecord(col)
		record.Set("project", projectID)
		patchRecord(record, body, heatingSpaceFields)
		if err := app.Save(record); err != nil {
			log.Printf("Error creating heating space: %v", err)
			return badRequest(e, "could not create space")
		}

		engine, err := services.NewHeatingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHeatingProject(app, engine, projectID); err != nil {
			log.Printf("Error recomputing heating project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}

		record, err = app.FindRecordById("heating_spaces", record.Id)
		if err != nil {
			return serverError(e, "could not reload space")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHeatingSpacePatch updates one room and recomputes the values
// downstream of the edited fields.
func HandleHeatingSpacePatch(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		record, err := app.FindRecordById("heating_spaces", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "space not found")
		}
		changed := patchRecord(record, body, heatingSpaceFields)
		if err := app.Save(record); err != nil {
			log.Printf("Error saving heating space %s: %v", record.Id, err)
			return badRequest(e, "could not save space")
		}

		projectID := record.GetString("project")
		if scoped := graphChanges(changed, heatingSpaceGraphFields); len(scoped) > 0 {
			engine, err := services.NewHeatingEngineFromApp(app)
			if err != nil {
				return serverError(e, "could not load catalogs")
			}
			if _, err := services.RecomputeHeatingProject(app, engine, projectID, scoped...); err != nil {
				log.Printf("Error recomputing heating project %s: %v", projectID, err)
				return serverError(e, "could not recompute project")
			}
		}

		record, err = app.FindRecordById("heating_spaces", record.Id)
		if err != nil {
			return serverError(e, "could not reload space")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHeatingSpaceDelete removes a room and recomputes the project.
func HandleHeatingSpaceDelete(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("heating_spaces", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "space not found")
		}
		projectID := record.GetString("project")
		if err := app.Delete(record); err != nil {
			log.Printf("Error deleting heating space %s: %v", record.Id, err)
			return serverError(e, "could not delete space")
		}

		engine, err := services.NewHeatingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHeatingProject(app, engine, projectID); err != nil {
			log.Printf("Error recomputing heating project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// HandleHeatingLineCreate adds a piping line to a project.
func HandleHeatingLineCreate(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("heating_projects", projectID); err != nil {
			return notFound(e, "project not found")
		}

		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		col, err := app.FindCollectionByNameOrId("piping_lines")
		if err != nil {
			return serverError(e, "piping_lines collection missing")
		}
		record := core.NewRecord(col)
		record.Set("project", projectID)
		patchRecord(record, body, pipingLineFields)
		if err := services.ApplyLineDefaults(app, record); err != nil {
			return badRequest(e, err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("Error creating piping line: %v", err)
			return badRequest(e, "could not create line")
		}

		engine, err := services.NewHeatingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHeatingProject(app, engine, projectID, "piping_lines"); err != nil {
			log.Printf("Error recomputing heating project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}

		record, err = app.FindRecordById("piping_lines", record.Id)
		if err != nil {
			return serverError(e, "could not reload line")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHeatingLinePatch updates a piping line.
func HandleHeatingLinePatch(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}

		record, err := app.FindRecordById("piping_lines", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "line not found")
		}
		patchRecord(record, body, pipingLineFields)
		if err := services.ApplyLineDefaults(app, record); err != nil {
			return badRequest(e, err.Error())
		}
		if err := app.Save(record); err != nil {
			log.Printf("Error saving piping line %s: %v", record.Id, err)
			return badRequest(e, "could not save line")
		}

		projectID := record.GetString("project")
		engine, err := services.NewHeatingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHeatingProject(app, engine, projectID, "piping_lines"); err != nil {
			log.Printf("Error recomputing heating project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}

		record, err = app.FindRecordById("piping_lines", record.Id)
		if err != nil {
			return serverError(e, "could not reload line")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHeatingLineDelete removes a piping line and recomputes.
func HandleHeatingLineDelete(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("piping_lines", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "line not found")
		}
		projectID := record.GetString("project")
		if err := app.Delete(record); err != nil {
			log.Printf("Error deleting piping line %s: %v", record.Id, err)
			return serverError(e, "could not delete line")
		}

		engine, err := services.NewHeatingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		if _, err := services.RecomputeHeatingProject(app, engine, projectID, "piping_lines"); err != nil {
			log.Printf("Error recomputing heating project %s: %v", projectID, err)
			return serverError(e, "could not recompute project")
		}
		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}

// HandleHeatingApplyTerms copies a terms template onto the project. With no
// template in the body the first active heating template is used.
func HandleHeatingApplyTerms(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		body := struct {
			Template string `json:"template"`
		}{}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "invalid request body")
		}
		if err := services.ApplyTermsTemplate(app, "heating_projects", id, body.Template); err != nil {
			return badRequest(e, err.Error())
		}
		record, err := app.FindRecordById("heating_projects", id)
		if err != nil {
			return serverError(e, "could not reload project")
		}
		return e.JSON(http.StatusOK, record)
	}
}

// HandleHeatingQuotation recomputes the project and generates a linked
// quotation from the result.
func HandleHeatingQuotation(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewHeatingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		quotation, err := services.CreateHeatingQuotation(app, engine, id)
		if errors.Is(err, services.ErrMissingCustomer) {
			return badRequest(e, "project has no customer")
		}
		if err != nil {
			log.Printf("Error creating heating quotation for %s: %v", id, err)
			return notFound(e, "project not found")
		}
		return e.JSON(http.StatusOK, quotation)
	}
}

// HandleHeatingExportExcel generates the heating offer as an Excel download.
func HandleHeatingExportExcel(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewHeatingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		data, err := services.BuildHeatingOfferExport(app, engine, id)
		if err != nil {
			return notFound(e, "project not found")
		}
		content, err := services.GenerateOfferExcel(data)
		if err != nil {
			log.Printf("Error generating heating offer Excel for %s: %v", id, err)
			return serverError(e, "could not generate Excel file")
		}
		return writeDownload(e, contentTypeExcel, exportFilename(data.OfferCode, data.ProjectName, "xlsx"), content)
	}
}

// HandleHeatingExportPDF generates the heating offer as a PDF download.
func HandleHeatingExportPDF(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		engine, err := services.NewHeatingEngineFromApp(app)
		if err != nil {
			return serverError(e, "could not load catalogs")
		}
		data, err := services.BuildHeatingOfferExport(app, engine, id)
		if err != nil {
			return notFound(e, "project not found")
		}
		content, err := services.GenerateOfferPDF(data)
		if err != nil {
			log.Printf("Error generating heating offer PDF for %s: %v", id, err)
			return serverError(e, "could not generate PDF file")
		}
		return writeDownload(e, contentTypePDF, exportFilename(data.OfferCode, data.ProjectName, "pdf"), content)
	}
}
