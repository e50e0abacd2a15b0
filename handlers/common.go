package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/masterline2023/hvac-calculation/services"
)

// Project lifecycle transitions. Confirming a draft assigns the offer code;
// a cancelled project can only go back to draft.
var stateTransitions = map[string]struct {
	from []string
	to   string
}{
	"confirm": {from: []string{"draft"}, to: "confirmed"},
	"cancel":  {from: []string{"draft", "confirmed", "quoted"}, to: "cancelled"},
	"draft":   {from: []string{"cancelled"}, to: "draft"},
	"done":    {from: []string{"quoted"}, to: "done"},
}

// applyTransition moves a project through its lifecycle. On confirm the
// offer code is assigned if the project has none yet.
func applyTransition(app *pocketbase.PocketBase, collection, offerPrefix, projectID, action string) (*core.Record, error) {
	transition, ok := stateTransitions[action]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", action)
	}

	record, err := app.FindRecordById(collection, projectID)
	if err != nil {
		return nil, fmt.Errorf("project not found: %w", err)
	}

	state := record.GetString("state")
	allowed := false
	for _, from := range transition.from {
		if state == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot %s a %s project", action, state)
	}

	if action == "confirm" {
		if err := services.EnsureOfferCode(app, record, offerPrefix, time.Now()); err != nil {
			return nil, err
		}
	}

	record.Set("state", transition.to)
	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return record, nil
}

// patchRecord copies the allowed keys of a request body onto a record and
// reports which keys were applied.
func patchRecord(record *core.Record, body map[string]any, allowed []string) []string {
	var changed []string
	for _, field := range allowed {
		if v, ok := body[field]; ok {
			record.Set(field, v)
			changed = append(changed, field)
		}
	}
	return changed
}

// listChildren returns a project's child records ordered by sort_order.
func listChildren(app *pocketbase.PocketBase, collection, projectID string) ([]*core.Record, error) {
	return app.FindRecordsByFilter(
		collection,
		"project = {:project}",
		"sort_order",
		0,
		0,
		map[string]any{"project": projectID},
	)
}

// projectPayload is the standard JSON shape for a project with its
// children.
func projectPayload(record *core.Record, spaces, lines []*core.Record) map[string]any {
	return map[string]any{
		"project": record,
		"spaces":  spaces,
		"lines":   lines,
	}
}

// writeDownload sends generated file bytes as an attachment.
func writeDownload(e *core.RequestEvent, contentType, filename string, content []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.Write(content)
	return nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// exportFilename builds the download name from the offer code, falling back
// to the project name for uncoded drafts.
func exportFilename(offerCode, projectName, ext string) string {
	base := offerCode
	if base == "" {
		base = projectName
	}
	if base == "" {
		base = "offer"
	}
	return fmt.Sprintf("Offer_%s.%s", sanitizeFilename(base), ext)
}

const (
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF   = "application/pdf"
)

func badRequest(e *core.RequestEvent, msg string) error {
	return e.JSON(http.StatusBadRequest, map[string]any{"error": msg})
}

func notFound(e *core.RequestEvent, msg string) error {
	return e.JSON(http.StatusNotFound, map[string]any{"error": msg})
}

func serverError(e *core.RequestEvent, msg string) error {
	return e.JSON(http.StatusInternalServerError, map[string]any{"error": msg})
}
