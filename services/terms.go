package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Terms template text blocks copied onto a project. Once copied the text is
// the project's own; later template edits never touch existing offers.
var termsTextFields = []string{
	"offer_includes",
	"offer_excludes",
	"payment_terms",
	"execution_time",
	"warranty",
	"additional_notes",
}

// Domain flags on terms_templates, keyed by project collection.
var termsDomainFlag = map[string]string{
	"heating_projects":  "apply_heating",
	"cooling_projects":  "apply_cooling",
	"hotwater_projects": "apply_hotwater",
}

// ApplyTermsTemplate copies a template's text blocks onto a project record
// and links the template. With an empty templateID the first active template
// flagged for the project's domain is used. The project is saved.
func ApplyTermsTemplate(app *pocketbase.PocketBase, collection, projectID, templateID string) error {
	record, err := app.FindRecordById(collection, projectID)
	if err != nil {
		return fmt.Errorf("load project %s: %w", projectID, err)
	}

	var template *core.Record
	if templateID != "" {
		template, err = app.FindRecordById("terms_templates", templateID)
		if err != nil {
			return fmt.Errorf("load terms template %s: %w", templateID, err)
		}
	} else {
		flag, ok := termsDomainFlag[collection]
		if !ok {
			return fmt.Errorf("no terms domain for collection %s", collection)
		}
		candidates, err := app.FindRecordsByFilter(
			"terms_templates",
			fmt.Sprintf("active = true && %s = true", flag),
			"created",
			1,
			0,
		)
		if err != nil || len(candidates) == 0 {
			return fmt.Errorf("no active terms template for %s", collection)
		}
		template = candidates[0]
	}

	for _, field := range termsTextFields {
		record.Set(field, template.GetString(field))
	}
	record.Set("terms_template", template.Id)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("save project %s: %w", projectID, err)
	}
	return nil
}
