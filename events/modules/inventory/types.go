// Package inventory defines types for Kafka event processing of asset scan events.
package inventory

import (
	"time"

	"github.com/oslc/oslc-backend/model"
)

// AssetScannedEvent represents an asset scan event published to Kafka.
type AssetScannedEvent struct {
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EventTime     time.Time `json:"event_time"`
	SchemaVersion string    `json:"schema_version"`

	Asset model.InventoryRecord `json:"asset"`

	Scan ScanReference `json:"scan"`
}

// AssetResolvedEvent is published after an asset has been resolved against
// the release catalogs.
type AssetResolvedEvent struct {
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EventTime     time.Time `json:"event_time"`
	SchemaVersion string    `json:"schema_version"`

	Asset      model.InventoryRecord  `json:"asset"`
	Resolution model.ResolutionRecord `json:"resolution"`
}

// ScanReference describes which scan run produced an asset record.
type ScanReference struct {
	// Identifier of the scan run that reported the asset
	ScanID string `json:"scan_id"`

	// Scanner identifier (e.g. "glpi", "lansweeper", "manual")
	Scanner string `json:"scanner"`

	// Optional site or subnet the scan covered
	Site string `json:"site,omitempty"`

	// Timestamp when the scanner observed the asset
	ObservedAt time.Time `json:"observed_at"`
}
