package inventory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oslc/oslc-backend/model"
)

type fakeService struct {
	assets []*model.InventoryRecord
	err    error
}

func (f *fakeService) ResolveAsset(_ context.Context, asset *model.InventoryRecord) error {
	f.assets = append(f.assets, asset)
	return f.err
}

func scannedEvent(t *testing.T, asset model.InventoryRecord, scan ScanReference) []byte {
	t.Helper()
	payload, err := json.Marshal(AssetScannedEvent{
		EventType:     "inventory.asset.scanned",
		EventID:       "7f9c3b1a-0000-0000-0000-000000000000",
		EventTime:     time.Now().UTC(),
		SchemaVersion: "v1",
		Asset:         asset,
		Scan:          scan,
	})
	require.NoError(t, err)
	return payload
}

func TestHandleAssetScanned(t *testing.T) {
	svc := &fakeService{}
	msg := scannedEvent(t,
		model.InventoryRecord{Hostname: "ws-042", OSText: "Windows 11 Pro", OSVersion: "10.0.26100"},
		ScanReference{ScanID: "scan-17", Scanner: "glpi", ObservedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
	)

	err := HandleAssetScannedWithService(context.Background(), msg, svc)
	require.NoError(t, err)

	require.Len(t, svc.assets, 1)
	asset := svc.assets[0]
	assert.Equal(t, "Windows 11 Pro", asset.OSText)
	assert.Equal(t, "glpi", asset.Source)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), asset.SeenAt)
}

func TestHandleAssetScannedKeepsExplicitSource(t *testing.T) {
	svc := &fakeService{}
	msg := scannedEvent(t,
		model.InventoryRecord{OSText: "RHEL 9", Source: "manual", SeenAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		ScanReference{ScanID: "scan-18", Scanner: "lansweeper"},
	)

	err := HandleAssetScannedWithService(context.Background(), msg, svc)
	require.NoError(t, err)

	require.Len(t, svc.assets, 1)
	assert.Equal(t, "manual", svc.assets[0].Source)
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), svc.assets[0].SeenAt)
}

func TestHandleAssetScannedRejectsInvalidPayloads(t *testing.T) {
	svc := &fakeService{}

	err := HandleAssetScannedWithService(context.Background(), []byte("{not json"), svc)
	assert.Error(t, err)

	missing := scannedEvent(t, model.InventoryRecord{}, ScanReference{ScanID: "scan-19"})
	err = HandleAssetScannedWithService(context.Background(), missing, svc)
	assert.Error(t, err)

	noScan := scannedEvent(t, model.InventoryRecord{OSText: "Windows 11"}, ScanReference{})
	err = HandleAssetScannedWithService(context.Background(), noScan, svc)
	assert.Error(t, err)

	assert.Empty(t, svc.assets)
}
