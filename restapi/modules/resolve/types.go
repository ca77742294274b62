// Package resolve defines the REST API types for asset resolution.
package resolve

import "github.com/oslc/oslc-backend/model"

// ResolveRequest is the body of a single-asset resolution call
type ResolveRequest struct {
	Hostname  string `json:"hostname,omitempty"`
	OSText    string `json:"os_text"`
	OSVersion string `json:"os_version,omitempty"`
	Source    string `json:"source,omitempty"`

	// Persist controls whether the asset and its resolution are stored
	Persist bool `json:"persist,omitempty"`
}

// BatchResolveRequest is the body of a batch resolution call
type BatchResolveRequest struct {
	Assets  []ResolveRequest `json:"assets"`
	Persist bool             `json:"persist,omitempty"`
}

// ToInventoryRecord converts the request into the internal asset shape
func (r ResolveRequest) ToInventoryRecord() *model.InventoryRecord {
	asset := model.NewInventoryRecord(r.OSText, r.OSVersion)
	asset.Hostname = r.Hostname
	asset.Source = r.Source
	return asset
}
