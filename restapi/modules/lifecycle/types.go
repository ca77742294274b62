// Package lifecycle defines the REST API types for support lifecycle queries.
package lifecycle

import (
	"time"

	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
)

// OSSummary is the catalog-level view of one registered operating system
type OSSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Editor   string   `json:"editor,omitempty"`
	Family   string   `json:"family"`
	Option   string   `json:"option"`
	Editions []string `json:"editions"`
	Releases int      `json:"releases"`
}

// ReleaseView is one catalog release rendered with its support state
type ReleaseView struct {
	ID      string                 `json:"id"`
	Label   string                 `json:"label,omitempty"`
	Version string                 `json:"version"`
	Latest  bool                   `json:"latest,omitempty"`
	Record  map[string]interface{} `json:"record"`
}

// NewOSSummary renders a registry entry, counting its cataloged releases.
func NewOSSummary(os *resolver.OS) (OSSummary, error) {
	cat, err := os.Catalog()
	if err != nil {
		return OSSummary{}, err
	}

	labels := []string{}
	for _, ed := range os.Editions().All() {
		labels = append(labels, ed.Label)
	}

	return OSSummary{
		ID:       os.ID,
		Name:     os.Name,
		Label:    os.Label,
		Editor:   os.Editor,
		Family:   os.Family.Name,
		Option:   os.Option,
		Editions: labels,
		Releases: cat.Len(),
	}, nil
}

// NewReleaseView renders one release at the given evaluation time.
func NewReleaseView(release *model.Release, now time.Time) ReleaseView {
	return ReleaseView{
		ID:      release.ID(),
		Label:   release.Label,
		Version: release.Version.Key(),
		Latest:  release.Latest,
		Record:  release.ToRecord(now),
	}
}
