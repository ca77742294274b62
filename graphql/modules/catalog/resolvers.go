// Package catalog implements the resolvers for release catalog queries.
package catalog

import (
	"fmt"
	"time"

	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
)

func renderRelease(os *resolver.OS, release *model.Release, now time.Time) map[string]interface{} {
	channels := []map[string]interface{}{}
	for _, name := range release.Support.ChannelNames() {
		window, _ := release.Support.Channel(name)
		channels = append(channels, map[string]interface{}{
			"channel":     name,
			"lts":         window.LTS,
			"end_of_life": window.EndOfLife().Format(model.DateFormat),
			"status":      window.StatusAt(now),
			"details":     window.SupportDetailsAt(now),
		})
	}

	return map[string]interface{}{
		"id":              release.ID(),
		"os":              os.Label,
		"label":           release.Label,
		"version":         release.Version.Key(),
		"release_date":    release.ReleaseDate.Format(model.DateFormat),
		"latest":          release.Latest,
		"link":            release.Link,
		"supported":       release.IsSupportedAt(now, nil),
		"channels":        channels,
		"vulnerabilities": release.Vulnerabilities(),
	}
}

// ResolveOperatingSystems lists every registered operating system
func ResolveOperatingSystems(reg *resolver.Registry) (interface{}, error) {
	rows := []map[string]interface{}{}
	for _, os := range reg.All() {
		cat, err := os.Catalog()
		if err != nil {
			return nil, err
		}

		editions := []string{}
		for _, ed := range os.Editions().All() {
			editions = append(editions, ed.Label)
		}

		rows = append(rows, map[string]interface{}{
			"id":       os.ID,
			"name":     os.Name,
			"label":    os.Label,
			"editor":   os.Editor,
			"family":   os.Family.Name,
			"option":   os.Option,
			"editions": editions,
			"releases": cat.Len(),
		})
	}
	return rows, nil
}

// ResolveReleases lists the releases of one OS, optionally narrowed by status
func ResolveReleases(reg *resolver.Registry, osLabel, status string) (interface{}, error) {
	os := reg.ByLabel(osLabel)
	if os == nil {
		return nil, fmt.Errorf("unknown operating system: %s", osLabel)
	}

	cat, err := os.Catalog()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var releases []*model.Release
	switch status {
	case "supported":
		releases = cat.SupportedAt(now)
	case "retired":
		releases = cat.RetiredAt(now)
	default:
		releases = cat.All()
	}

	rows := []map[string]interface{}{}
	for _, release := range releases {
		rows = append(rows, renderRelease(os, release, now))
	}
	return rows, nil
}

// ResolveLatestRelease returns the release flagged latest for one OS, nil when
// none carries the flag
func ResolveLatestRelease(reg *resolver.Registry, osLabel string) (interface{}, error) {
	os := reg.ByLabel(osLabel)
	if os == nil {
		return nil, fmt.Errorf("unknown operating system: %s", osLabel)
	}

	cat, err := os.Catalog()
	if err != nil {
		return nil, err
	}

	latest := cat.Latest()
	if latest == nil {
		return nil, nil
	}
	return renderRelease(os, latest, time.Now().UTC()), nil
}
