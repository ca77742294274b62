// Package catalog holds the per-OS release catalogs and the filter chain
// used to disambiguate candidate releases.
package catalog

import (
	"sort"
	"time"

	"github.com/oslc/oslc-backend/model"
)

// Catalog indexes the releases of one piece of software by version key. A
// key may hold several releases (same numeric version, different labels).
// Catalogs are populated once at startup and read-only afterwards, so
// concurrent resolution needs no locking.
type Catalog struct {
	Software string
	entries  map[string][]*model.Release
	keys     []string
}

// New returns an empty catalog for the given software label.
func New(software string) *Catalog {
	return &Catalog{
		Software: software,
		entries:  make(map[string][]*model.Release),
	}
}

// Add appends a release to the candidate list of its version key. A release
// whose ID is already present under that key is ignored unless force is set.
// It returns false when the release was ignored.
func (c *Catalog) Add(release *model.Release, force bool) bool {
	key := release.Version.Key()
	candidates, exists := c.entries[key]

	if !force {
		for _, existing := range candidates {
			if existing.ID() == release.ID() {
				return false
			}
		}
	}

	if !exists {
		c.keys = append(c.keys, key)
	}
	c.entries[key] = append(candidates, release)
	return true
}

// Get returns the candidate list for a version key, nil when the key is
// unknown. A miss is an expected outcome, never an error.
func (c *Catalog) Get(key string) []*model.Release {
	return c.entries[key]
}

// GetVersion is Get keyed by a parsed version.
func (c *Catalog) GetVersion(v model.SoftwareVersion) []*model.Release {
	return c.Get(v.Key())
}

// Len returns the number of releases across all version keys.
func (c *Catalog) Len() int {
	n := 0
	for _, candidates := range c.entries {
		n += len(candidates)
	}
	return n
}

// Keys returns the version keys in insertion order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// All returns every release in the catalog, in insertion order per key.
func (c *Catalog) All() []*model.Release {
	out := make([]*model.Release, 0, c.Len())
	for _, key := range c.keys {
		out = append(out, c.entries[key]...)
	}
	return out
}

// Latest returns the release flagged latest by its vendor, nil when none is.
func (c *Catalog) Latest() *model.Release {
	for _, r := range c.All() {
		if r.Latest {
			return r
		}
	}
	return nil
}

// SupportedAt returns the releases with at least one ongoing support channel
// at the given instant.
func (c *Catalog) SupportedAt(now time.Time) []*model.Release {
	var out []*model.Release
	for _, r := range c.All() {
		if r.IsSupportedAt(now, nil) {
			out = append(out, r)
		}
	}
	return out
}

// RetiredAt returns the releases with no ongoing support channel at the
// given instant.
func (c *Catalog) RetiredAt(now time.Time) []*model.Release {
	var out []*model.Release
	for _, r := range c.All() {
		if !r.IsSupportedAt(now, nil) {
			out = append(out, r)
		}
	}
	return out
}

// FindByLabel returns the releases whose label equals the given label,
// sorted by version key for stable output.
func (c *Catalog) FindByLabel(label string) []*model.Release {
	var out []*model.Release
	for _, r := range c.All() {
		if r.Label == label {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version.Key() < out[j].Version.Key() })
	return out
}
