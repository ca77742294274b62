// Package services provides internal service implementations for the OSLC backend.
package services

import (
	"context"
	"log"
	"time"

	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
	"github.com/oslc/oslc-backend/util"
)

// ResolutionService resolves inventory records against the OS registry and
// persists the outcome.
type ResolutionService struct {
	DB       database.DBConnection
	Resolver *resolver.Resolver
}

// BatchItem is the per-asset outcome of a batch resolution. A failed item
// carries its diagnostic instead of aborting the batch.
type BatchItem struct {
	Asset      *model.InventoryRecord  `json:"asset"`
	Resolution *model.ResolutionRecord `json:"resolution,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// ResolveRecord resolves a single inventory record into a resolution record
// without persisting anything. Resolution faults (malformed version,
// ambiguity) surface as errors; unrecognized text yields an unmatched record.
func (s *ResolutionService) ResolveRecord(asset *model.InventoryRecord) (*model.ResolutionRecord, error) {
	os, release, edition, err := s.Resolver.Resolve(asset.OSText, asset.OSVersion)
	if err != nil {
		return nil, err
	}

	record := model.NewResolutionRecord(asset.OSText, asset.OSVersion)
	if os == nil {
		return record, nil
	}

	record.OSLabel = os.Label
	record.OSFamily = os.Family.Name

	if edition != nil {
		record.Edition = edition.Label
		record.Channel = edition.Channel
	}

	if release != nil {
		now := time.Now().UTC()
		supported := release.IsSupportedAt(now, edition)

		record.ReleaseID = release.ID()
		record.ReleaseLabel = release.Label
		record.Supported = &supported
		record.Release = release.ToRecord(now)

		if edition != nil {
			record.Details = release.SupportDetailsForAt(now, edition.Channel)
		}
	}

	return record, nil
}

// ResolveAndStore resolves an inventory record and persists both the asset
// and its resolution, linking the two.
func (s *ResolutionService) ResolveAndStore(ctx context.Context, asset *model.InventoryRecord) (*model.ResolutionRecord, error) {
	record, err := s.ResolveRecord(asset)
	if err != nil {
		return nil, err
	}

	if asset.Hostname != "" && asset.Key == "" {
		asset.Key = util.SanitizeKey(asset.Hostname)
	}
	assetKey, err := database.SaveAsset(ctx, s.DB, asset)
	if err != nil {
		return nil, err
	}

	if _, err := database.SaveResolution(ctx, s.DB, record, assetKey); err != nil {
		return nil, err
	}

	return record, nil
}

// ResolveBatch resolves many inventory records. A single asset's failure is
// recorded as a per-item diagnostic and never aborts the batch.
func (s *ResolutionService) ResolveBatch(ctx context.Context, assets []*model.InventoryRecord) []BatchItem {
	items := make([]BatchItem, 0, len(assets))

	for _, asset := range assets {
		record, err := s.ResolveAndStore(ctx, asset)
		item := BatchItem{Asset: asset}
		if err != nil {
			log.Printf("Worker: resolution failed for %q: %v", asset.OSText, err)
			item.Error = err.Error()
		} else {
			item.Resolution = record
		}
		items = append(items, item)
	}

	return items
}
