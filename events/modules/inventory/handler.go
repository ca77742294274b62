// Package inventory handles Kafka event processing for asset scan events.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/oslc/oslc-backend/model"
)

// InventoryService defines the interface for asset resolution operations.
type InventoryService interface {
	ResolveAsset(ctx context.Context, asset *model.InventoryRecord) error
}

// HandleAssetScannedWithService processes asset scanned events from Kafka.
func HandleAssetScannedWithService(
	ctx context.Context,
	msg []byte,
	service InventoryService,
) error {
	var event AssetScannedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal AssetScannedEvent: %w", err)
	}

	if event.Asset.OSText == "" || event.Scan.ScanID == "" {
		return fmt.Errorf("invalid event: missing required fields")
	}

	log.Printf("Processing asset %q (scan=%s)", event.Asset.OSText, event.Scan.ScanID)

	asset := event.Asset
	if asset.Source == "" {
		asset.Source = event.Scan.Scanner
	}
	if asset.SeenAt.IsZero() {
		asset.SeenAt = event.Scan.ObservedAt
	}

	if err := service.ResolveAsset(ctx, &asset); err != nil {
		return fmt.Errorf("internal service error: %w", err)
	}

	log.Printf("Successfully processed asset %q", event.Asset.OSText)
	return nil
}
