// Package model - ResolutionRecord defines the structs persisted for resolved assets.
package model

import "time"

// ResolutionRecord is the persisted outcome of resolving one asset
// description: which OS, release and edition were recognized, if any.
type ResolutionRecord struct {
	Key          string                 `json:"_key,omitempty"`
	ObjType      string                 `json:"objtype,omitempty"`
	AssetText    string                 `json:"asset_text"`
	VersionToken string                 `json:"version_token"`
	OSLabel      string                 `json:"os_label,omitempty"`
	OSFamily     string                 `json:"os_family,omitempty"`
	ReleaseID    string                 `json:"release_id,omitempty"`
	ReleaseLabel string                 `json:"release_label,omitempty"`
	Edition      string                 `json:"edition,omitempty"`
	Channel      string                 `json:"channel,omitempty"`
	Supported    *bool                  `json:"supported,omitempty"`
	Details      string                 `json:"details,omitempty"`
	Release      map[string]interface{} `json:"release,omitempty"`
	ResolvedAt   time.Time              `json:"resolved_at"`
}

// NewResolutionRecord creates a ResolutionRecord with default values.
func NewResolutionRecord(assetText, versionToken string) *ResolutionRecord {
	return &ResolutionRecord{
		ObjType:      "Resolution",
		AssetText:    assetText,
		VersionToken: versionToken,
		ResolvedAt:   time.Now().UTC(),
	}
}

// Matched reports whether the record carries at least a recognized OS.
func (r *ResolutionRecord) Matched() bool {
	return r.OSLabel != ""
}

// InventoryRecord is one asset row as received from inventory feeds, before
// resolution.
type InventoryRecord struct {
	Key       string    `json:"_key,omitempty"`
	ObjType   string    `json:"objtype,omitempty"`
	Hostname  string    `json:"hostname,omitempty"`
	OSText    string    `json:"os_text"`
	OSVersion string    `json:"os_version"`
	Source    string    `json:"source,omitempty"`
	SeenAt    time.Time `json:"seen_at"`
}

// NewInventoryRecord creates an InventoryRecord with default values.
func NewInventoryRecord(osText, osVersion string) *InventoryRecord {
	return &InventoryRecord{
		ObjType:   "Asset",
		OSText:    osText,
		OSVersion: osVersion,
		SeenAt:    time.Now().UTC(),
	}
}
