// Package config loads release and support lifecycle data, either from
// built-in defaults or from YAML feed files, into release catalogs.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/oslc/oslc-backend/catalog"
	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/util"
)

// ChannelRecord is one support channel entry of a release feed record.
type ChannelRecord struct {
	ActiveSupport           string `yaml:"activeSupport" json:"activeSupport"`
	SecuritySupport         string `yaml:"securitySupport" json:"securitySupport"`
	ExtendedSecuritySupport string `yaml:"extendedSecuritySupport,omitempty" json:"extendedSecuritySupport,omitempty"`
	LTS                     bool   `yaml:"lts" json:"lts"`
}

// ReleaseRecord is one release entry of a feed, as published by lifecycle
// data providers.
type ReleaseRecord struct {
	OS           string                   `yaml:"os" json:"os"`
	ReleaseLabel string                   `yaml:"releaseLabel" json:"releaseLabel"`
	Version      string                   `yaml:"version" json:"version"`
	ReleaseDate  string                   `yaml:"releaseDate" json:"releaseDate"`
	Latest       bool                     `yaml:"latest" json:"latest"`
	Link         string                   `yaml:"link,omitempty" json:"link,omitempty"`
	Channels     map[string]ChannelRecord `yaml:"channels" json:"channels"`
}

// Feed is the top-level YAML document of a release feed file.
type Feed struct {
	Releases []ReleaseRecord `yaml:"releases"`
}

// LoadFeed reads and parses a YAML release feed file.
func LoadFeed(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading release feed %s: %w", path, err)
	}
	return ParseFeed(data)
}

// ParseFeed parses a YAML release feed document.
func ParseFeed(data []byte) (*Feed, error) {
	var feed Feed
	if err := yaml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parsing release feed: %w", err)
	}
	return &feed, nil
}

// ForOS returns the feed records belonging to the given OS label.
func (f *Feed) ForOS(osLabel string) []ReleaseRecord {
	var out []ReleaseRecord
	for _, rec := range f.Releases {
		if rec.OS == osLabel {
			out = append(out, rec)
		}
	}
	return out
}

// ToRelease converts a feed record into a release with its support ledger.
// Channel registration is first write wins, matching the ledger contract.
func (r ReleaseRecord) ToRelease() (*model.Release, error) {
	// Feed providers sometimes publish branch-prefixed tokens like
	// "main-v10.0.26100".
	version, err := model.ParseVersion(util.CleanVersion(r.Version))
	if err != nil {
		return nil, fmt.Errorf("release %s %s: %w", r.OS, r.ReleaseLabel, err)
	}

	releaseDate, err := time.Parse(model.DateFormat, r.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("release %s %s: release date: %w", r.OS, r.ReleaseLabel, err)
	}

	release := model.NewRelease(r.OS, version, r.ReleaseLabel, releaseDate)
	release.Latest = r.Latest
	release.Link = r.Link

	for name, ch := range r.Channels {
		w, err := model.NewSupportWindow(name, ch.ActiveSupport, ch.SecuritySupport, ch.ExtendedSecuritySupport, ch.LTS)
		if err != nil {
			return nil, fmt.Errorf("release %s %s: %w", r.OS, r.ReleaseLabel, err)
		}
		release.Support.AddChannel(w)
	}

	return release, nil
}

// Populate converts the records for one OS into catalog entries. It is
// shaped to serve as an OS populate routine.
func Populate(records []ReleaseRecord) func(*catalog.Catalog) error {
	return func(c *catalog.Catalog) error {
		for _, rec := range records {
			release, err := rec.ToRelease()
			if err != nil {
				return err
			}
			c.Add(release, false)
		}
		return nil
	}
}
