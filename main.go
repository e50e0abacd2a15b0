package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/masterline2023/hvac-calculation/collections"
	"github.com/masterline2023/hvac-calculation/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Central heating projects ─────────────────────────────
		se.Router.GET("/api/heating/projects", handlers.HandleHeatingProjectList(app))
		se.Router.POST("/api/heating/projects", handlers.HandleHeatingProjectCreate(app))
		se.Router.GET("/api/heating/projects/{id}", handlers.HandleHeatingProjectView(app))
		se.Router.PATCH("/api/heating/projects/{id}", handlers.HandleHeatingProjectPatch(app))
		se.Router.DELETE("/api/heating/projects/{id}", handlers.HandleHeatingProjectDelete(app))
		se.Router.POST("/api/heating/projects/{id}/actions/{action}", handlers.HandleHeatingProjectAction(app))
		se.Router.POST("/api/heating/projects/{id}/recompute", handlers.HandleHeatingProjectRecompute(app))
		se.Router.POST("/api/heating/projects/{id}/apply-terms", handlers.HandleHeatingApplyTerms(app))
		se.Router.POST("/api/heating/projects/{id}/quotation", handlers.HandleHeatingQuotation(app))
		se.Router.GET("/api/heating/projects/{id}/export/excel", handlers.HandleHeatingExportExcel(app))
		se.Router.GET("/api/heating/projects/{id}/export/pdf", handlers.HandleHeatingExportPDF(app))

		se.Router.POST("/api/heating/projects/{id}/spaces", handlers.HandleHeatingSpaceCreate(app))
		se.Router.PATCH("/api/heating/spaces/{id}", handlers.HandleHeatingSpacePatch(app))
		se.Router.DELETE("/api/heating/spaces/{id}", handlers.HandleHeatingSpaceDelete(app))

		se.Router.POST("/api/heating/projects/{id}/piping-lines", handlers.HandleHeatingLineCreate(app))
		se.Router.PATCH("/api/heating/piping-lines/{id}", handlers.HandleHeatingLinePatch(app))
		se.Router.DELETE("/api/heating/piping-lines/{id}", handlers.HandleHeatingLineDelete(app))

		// ── Air conditioning projects ────────────────────────────
		se.Router.GET("/api/cooling/projects", handlers.HandleCoolingProjectList(app))
		se.Router.POST("/api/cooling/projects", handlers.HandleCoolingProjectCreate(app))
		se.Router.GET("/api/cooling/projects/{id}", handlers.HandleCoolingProjectView(app))
		se.Router.PATCH("/api/cooling/projects/{id}", handlers.HandleCoolingProjectPatch(app))
		se.Router.DELETE("/api/cooling/projects/{id}", handlers.HandleCoolingProjectDelete(app))
		se.Router.POST("/api/cooling/projects/{id}/actions/{action}", handlers.HandleCoolingProjectAction(app))
		se.Router.POST("/api/cooling/projects/{id}/recompute", handlers.HandleCoolingProjectRecompute(app))
		se.Router.POST("/api/cooling/projects/{id}/apply-terms", handlers.HandleCoolingApplyTerms(app))
		se.Router.POST("/api/cooling/projects/{id}/quotation", handlers.HandleCoolingQuotation(app))
		se.Router.GET("/api/cooling/projects/{id}/export/excel", handlers.HandleCoolingExportExcel(app))
		se.Router.GET("/api/cooling/projects/{id}/export/pdf", handlers.HandleCoolingExportPDF(app))

		se.Router.POST("/api/cooling/projects/{id}/spaces", handlers.HandleCoolingSpaceCreate(app))
		se.Router.PATCH("/api/cooling/spaces/{id}", handlers.HandleCoolingSpacePatch(app))
		se.Router.DELETE("/api/cooling/spaces/{id}", handlers.HandleCoolingSpaceDelete(app))

		se.Router.POST("/api/cooling/projects/{id}/duct-lines", handlers.HandleCoolingLineCreate(app))
		se.Router.PATCH("/api/cooling/duct-lines/{id}", handlers.HandleCoolingLinePatch(app))
		se.Router.DELETE("/api/cooling/duct-lines/{id}", handlers.HandleCoolingLineDelete(app))

		// ── Hot water projects ───────────────────────────────────
		se.Router.GET("/api/hotwater/projects", handlers.HandleHotWaterProjectList(app))
		se.Router.POST("/api/hotwater/projects", handlers.HandleHotWaterProjectCreate(app))
		se.Router.GET("/api/hotwater/projects/{id}", handlers.HandleHotWaterProjectView(app))
		se.Router.PATCH("/api/hotwater/projects/{id}", handlers.HandleHotWaterProjectPatch(app))
		se.Router.DELETE("/api/hotwater/projects/{id}", handlers.HandleHotWaterProjectDelete(app))
		se.Router.POST("/api/hotwater/projects/{id}/actions/{action}", handlers.HandleHotWaterProjectAction(app))
		se.Router.POST("/api/hotwater/projects/{id}/recompute", handlers.HandleHotWaterProjectRecompute(app))
		se.Router.POST("/api/hotwater/projects/{id}/apply-terms", handlers.HandleHotWaterApplyTerms(app))
		se.Router.POST("/api/hotwater/projects/{id}/quotation", handlers.HandleHotWaterQuotation(app))
		se.Router.GET("/api/hotwater/projects/{id}/export/excel", handlers.HandleHotWaterExportExcel(app))
		se.Router.GET("/api/hotwater/projects/{id}/export/pdf", handlers.HandleHotWaterExportPDF(app))

		se.Router.POST("/api/hotwater/projects/{id}/spaces", handlers.HandleHotWaterSpaceCreate(app))
		se.Router.PATCH("/api/hotwater/spaces/{id}", handlers.HandleHotWaterSpacePatch(app))
		se.Router.DELETE("/api/hotwater/spaces/{id}", handlers.HandleHotWaterSpaceDelete(app))

		se.Router.POST("/api/hotwater/projects/{id}/equipment-lines", handlers.HandleHotWaterLineCreate(app))
		se.Router.PATCH("/api/hotwater/equipment-lines/{id}", handlers.HandleHotWaterLinePatch(app))
		se.Router.DELETE("/api/hotwater/equipment-lines/{id}", handlers.HandleHotWaterLineDelete(app))

		// ── Catalogs ─────────────────────────────────────────────
		se.Router.GET("/api/catalogs/{catalog}", handlers.HandleCatalogList(app))
		se.Router.POST("/api/catalogs/{catalog}/{id}/deactivate", handlers.HandleCatalogDeactivate(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
