// Package model - Release is one published software version with its support ledger.
package model

import (
	"fmt"
	"sort"
	"time"
)

// Release is one published version of a piece of software, with its support
// ledger and the vulnerabilities known to affect it.
type Release struct {
	Software    string
	Version     SoftwareVersion
	Label       string
	ReleaseDate time.Time
	Latest      bool
	Link        string
	Support     *SupportLedger

	vulnerabilities map[string]struct{}
}

// NewRelease builds a release with an empty support ledger.
func NewRelease(software string, version SoftwareVersion, label string, releaseDate time.Time) *Release {
	return &Release{
		Software:        software,
		Version:         version,
		Label:           label,
		ReleaseDate:     releaseDate,
		Support:         NewSupportLedger(),
		vulnerabilities: make(map[string]struct{}),
	}
}

// ID identifies the release inside a catalog. The label is part of the
// identity so that two releases sharing a numeric version stay distinct.
func (r *Release) ID() string {
	if r.Label == "" {
		return fmt.Sprintf("%s@%s", r.Software, r.Version.Key())
	}
	return fmt.Sprintf("%s@%s:%s", r.Software, r.Version.Key(), r.Label)
}

// Name renders the human readable software plus label form.
func (r *Release) Name() string {
	if r.Label == "" {
		return fmt.Sprintf("%s %s", r.Software, r.Version.String())
	}
	return fmt.Sprintf("%s %s", r.Software, r.Label)
}

// IsSupportedAt reports whether any of the release's support channels is
// ongoing at the given instant, filtered by edition when one is supplied.
func (r *Release) IsSupportedAt(now time.Time, edition *Edition) bool {
	return r.Support.IsSupportedAt(now, edition)
}

// IsSupported is IsSupportedAt for the current UTC time.
func (r *Release) IsSupported(edition *Edition) bool {
	return r.Support.IsSupported(edition)
}

// SupportDetailsForAt renders the support state of the named channel at the
// given instant. Unknown channels yield an empty string.
func (r *Release) SupportDetailsForAt(now time.Time, channel string) string {
	w, ok := r.Support.Channel(channel)
	if !ok {
		return ""
	}
	return w.SupportDetailsAt(now)
}

// SupportDetailsFor is SupportDetailsForAt for the current UTC time.
func (r *Release) SupportDetailsFor(channel string) string {
	return r.SupportDetailsForAt(time.Now(), channel)
}

// AddVulnerability tags the release with a vulnerability identifier.
// Duplicate identifiers collapse.
func (r *Release) AddVulnerability(id string) {
	if r.vulnerabilities == nil {
		r.vulnerabilities = make(map[string]struct{})
	}
	r.vulnerabilities[id] = struct{}{}
}

// Vulnerabilities returns the sorted identifiers of the vulnerabilities
// tagged on the release.
func (r *Release) Vulnerabilities() []string {
	ids := make([]string, 0, len(r.vulnerabilities))
	for id := range r.vulnerabilities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HasVulnerability reports whether the given identifier is tagged on the
// release.
func (r *Release) HasVulnerability(id string) bool {
	_, ok := r.vulnerabilities[id]
	return ok
}

// ToRecord returns the serializable snapshot of the release used by export
// and the REST layer.
func (r *Release) ToRecord(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"software":        r.Software,
		"version":         r.Version.ToRecord(),
		"label":           r.Label,
		"releaseDate":     r.ReleaseDate.Format(DateFormat),
		"latest":          r.Latest,
		"link":            r.Link,
		"supportChannels": r.Support.ToRecord(now),
		"isSupported":     r.IsSupportedAt(now, nil),
		"vulnerabilities": r.Vulnerabilities(),
	}
}
