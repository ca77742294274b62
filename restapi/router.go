// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/resolver"
	"github.com/oslc/oslc-backend/restapi/modules/admin"
	"github.com/oslc/oslc-backend/restapi/modules/export"
	"github.com/oslc/oslc-backend/restapi/modules/lifecycle"
	"github.com/oslc/oslc-backend/restapi/modules/resolve"
	"github.com/oslc/oslc-backend/util"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
// CORS is handled globally in internal/api/fiber.go.
func SetupRoutes(app *fiber.App, db database.DBConnection, reg *resolver.Registry, schema graphql.Schema) {

	// Background snapshot of the catalogs so dashboards survive restarts
	go startSnapshotLoop(db, reg)

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - Mounted within the api group to inherit path prefixes
	api.Post("/graphql", GraphQLHandler(schema))

	// Resolution Routes
	res := resolver.New(reg)
	api.Post("/resolve", resolve.PostResolve(db, res))
	api.Post("/resolve/batch", resolve.PostResolveBatch(db, res))

	// Lifecycle Routes
	osGroup := api.Group("/os")
	osGroup.Get("/", lifecycle.GetOperatingSystems(reg))
	osGroup.Get("/:label/releases", lifecycle.GetReleases(reg))
	osGroup.Get("/:label/releases/latest", lifecycle.GetLatestRelease(reg))
	osGroup.Get("/:label/releases/:version/support", lifecycle.GetReleaseSupport(reg))
	osGroup.Get("/:label/resolutions", lifecycle.GetResolutions(db, reg))

	// Export Routes
	exportGroup := api.Group("/export")
	exportGroup.Get("/catalog.csv", export.GetCatalogCSV(reg))
	exportGroup.Get("/catalog.json", export.GetCatalogJSON(reg))
	exportGroup.Get("/resolutions", export.GetResolutions(db))
	exportGroup.Post("/snapshot", export.PostSnapshot(db, reg))

	// Admin Routes
	adminGroup := api.Group("/admin")
	adminGroup.Post("/reresolve", admin.PostReresolve(db, res))
	adminGroup.Get("/reresolve-status", admin.GetReresolveStatus())

	log.Println("API routes initialized successfully")
}

func startSnapshotLoop(db database.DBConnection, reg *resolver.Registry) {
	interval, err := time.ParseDuration(util.GetEnvDefault("SNAPSHOT_INTERVAL", "24h"))
	if err != nil || interval <= 0 {
		interval = 24 * time.Hour
	}

	runSnapshot(db, reg)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		runSnapshot(db, reg)
	}
}

func runSnapshot(db database.DBConnection, reg *resolver.Registry) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	saved := 0
	for _, os := range reg.All() {
		cat, err := os.Catalog()
		if err != nil {
			fmt.Printf("Background Task: failed to load catalog for %s: %v\n", os.Label, err)
			continue
		}
		for _, release := range cat.All() {
			snapshot := release.ToRecord(now)
			snapshot["objtype"] = "ReleaseSnapshot"
			snapshot["os"] = os.Label
			snapshot["snapshot_at"] = now
			if err := database.SaveReleaseSnapshot(ctx, db, snapshot); err != nil {
				fmt.Printf("Background Task: failed to snapshot %s: %v\n", release.ID(), err)
				continue
			}
			saved++
		}
	}
	if saved > 0 {
		log.Printf("Background Task: persisted %d release snapshots", saved)
	}
}
