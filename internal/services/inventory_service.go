// Package services provides internal service implementations for the OSLC backend.
package services

import (
	"context"
	"log"

	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/events/modules/inventory"
	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
)

// InventoryServiceWrapper implements inventory.InventoryService
type InventoryServiceWrapper struct {
	DB       database.DBConnection
	Resolver *resolver.Resolver

	// Producer, when set, publishes an inventory.asset.resolved event after
	// each successful resolution.
	Producer *inventory.InventoryProducer
}

// ResolveAsset processes a scanned asset by delegating to the shared
// resolution core. This ensures that Kafka-driven ingestion performs the
// same version parsing, release disambiguation and support evaluation as
// the REST API.
func (w *InventoryServiceWrapper) ResolveAsset(ctx context.Context, asset *model.InventoryRecord) error {
	log.Printf("Worker: Processing asset resolution for %q", asset.OSText)

	svc := &ResolutionService{DB: w.DB, Resolver: w.Resolver}
	resolution, err := svc.ResolveAndStore(ctx, asset)
	if err != nil {
		return err
	}

	if w.Producer != nil {
		if pubErr := w.Producer.PublishAssetResolved(ctx, *asset, *resolution); pubErr != nil {
			log.Printf("Worker: Failed to publish resolved event for %q: %v", asset.Hostname, pubErr)
		}
	}
	return nil
}

// Ensure compile-time interface check
var _ inventory.InventoryService = (*InventoryServiceWrapper)(nil)
