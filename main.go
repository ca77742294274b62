// package main provides the entry point for the oslc-backend microservice,
// including OS registry setup, the resolution event worker, and the REST and
// GraphQL APIs for release and support lifecycle queries.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/oslc/oslc-backend/config"
	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/internal/api"
	"github.com/oslc/oslc-backend/internal/kafka"
	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
	"github.com/oslc/oslc-backend/util"
)

// buildRegistry assembles the OS registry from the built-in catalogs and, when
// RELEASE_FEED points at a YAML feed, overlays the feed's release records.
func buildRegistry(db database.DBConnection) (*resolver.Registry, error) {
	reg := config.DefaultRegistry()

	if feedPath := os.Getenv("RELEASE_FEED"); feedPath != "" {
		feed, err := config.LoadFeed(feedPath)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded release feed from %s (%d records)", feedPath, len(feed.Releases))

		for _, entry := range reg.All() {
			records := feed.ForOS(entry.Label)
			if len(records) == 0 {
				continue
			}
			cat, err := entry.Catalog()
			if err != nil {
				return nil, err
			}
			if err := config.Populate(records)(cat); err != nil {
				return nil, err
			}
			if err := util.SaveLastFeedImport(db, entry.Label, time.Now().UTC()); err != nil {
				log.Printf("Warning: failed to record feed import for %s: %v", entry.Label, err)
			}
		}
	}

	if err := reg.Validate(&model.FamilyWindows); err != nil {
		return nil, err
	}
	return reg, nil
}

func main() {
	// Initialize database connection
	db := database.InitializeDatabase()

	// Assemble and validate the OS registry
	reg, err := buildRegistry(db)
	if err != nil {
		log.Fatalf("Failed to build OS registry: %v", err)
	}

	// Start the Kafka worker for inventory events
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := kafka.RunEventProcessor(ctx, db, resolver.New(reg)); err != nil {
		log.Printf("Warning: Kafka event processor unavailable: %v", err)
	}

	// Create Fiber app with REST and GraphQL routes
	app := api.NewFiberApp(db, reg)

	// Get port from environment or default to 3000
	port := os.Getenv("MS_PORT")
	if port == "" {
		port = "3000"
	}

	// Start server
	log.Printf("Starting server on port %s", port)
	log.Printf("GraphQL endpoint available at /api/v1/graphql")
	log.Printf("Resolution endpoints available at /api/v1/resolve")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
