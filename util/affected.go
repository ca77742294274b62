// Package util - OSV affected-range evaluation for tagging OS releases with vulnerabilities.
package util

import (
	"log"
	"strings"

	"github.com/Masterminds/semver/v3"
	npm "github.com/aquasecurity/go-npm-version/pkg"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/google/osv-scanner/pkg/models"
)

// IsVersionAffected checks if a version is affected by OSV ranges
// Uses ecosystem-specific version parsers for accurate comparison
func IsVersionAffected(version string, affected models.Affected) bool {
	// Check specific versions list
	for _, v := range affected.Versions {
		if version == v {
			return true
		}
	}

	// Check version ranges
	for _, vrange := range affected.Ranges {
		if vrange.Type != models.RangeEcosystem && vrange.Type != models.RangeSemVer {
			continue
		}

		ecosystem := ""
		if affected.Package.Ecosystem != "" {
			ecosystem = string(affected.Package.Ecosystem)
		}

		if isVersionInRange(version, vrange, ecosystem) {
			return true
		}
	}

	return false
}

// IsVersionAffectedAny checks if a version is affected by any of the provided affected ranges
func IsVersionAffectedAny(version string, allAffected []models.Affected) bool {
	for _, affected := range allAffected {
		if IsVersionAffected(version, affected) {
			return true
		}
	}
	return false
}

// isVersionInRange checks if a version falls within an OSV range.
// A range without both a lower and an upper boundary is treated as not
// matching, to avoid false positives from incomplete data.
func isVersionInRange(version string, vrange models.Range, ecosystem string) bool {
	switch strings.ToLower(ecosystem) {
	case "npm":
		return isVersionInRangeNPM(version, vrange)
	case "pypi":
		return isVersionInRangePython(version, vrange)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return isVersionInRangeString(version, vrange)
	}

	var introduced, fixed, lastAffected *semver.Version

	for _, event := range vrange.Events {
		if event.Introduced != "" {
			// "0" means "from the beginning of time" in the OSV spec
			if event.Introduced == "0" {
				introduced = semver.MustParse("0.0.0")
			} else if parsed, err := semver.NewVersion(event.Introduced); err == nil {
				introduced = parsed
			} else {
				log.Printf("WARNING: Failed to parse introduced version '%s': %v", event.Introduced, err)
			}
		}
		if event.Fixed != "" {
			if parsed, err := semver.NewVersion(event.Fixed); err == nil {
				fixed = parsed
			} else {
				log.Printf("WARNING: Failed to parse fixed version '%s': %v", event.Fixed, err)
			}
		}
		if event.LastAffected != "" {
			if parsed, err := semver.NewVersion(event.LastAffected); err == nil {
				lastAffected = parsed
			} else {
				log.Printf("WARNING: Failed to parse last_affected version '%s': %v", event.LastAffected, err)
			}
		}
	}

	if introduced == nil || (fixed == nil && lastAffected == nil) {
		return false
	}

	if v.LessThan(introduced) {
		return false
	}
	if fixed != nil && !v.LessThan(fixed) {
		return false
	}
	if lastAffected != nil && v.GreaterThan(lastAffected) {
		return false
	}

	return true
}

func isVersionInRangeNPM(version string, vrange models.Range) bool {
	v, err := npm.NewVersion(version)
	if err != nil {
		return isVersionInRangeString(version, vrange)
	}

	var introduced, fixed, lastAffected npm.Version
	hasIntroduced, hasFixed, hasLastAffected := false, false, false

	for _, event := range vrange.Events {
		if event.Introduced != "" {
			token := event.Introduced
			if token == "0" {
				token = "0.0.0"
			}
			if intro, err := npm.NewVersion(token); err == nil {
				introduced = intro
				hasIntroduced = true
			}
		}
		if event.Fixed != "" {
			if fix, err := npm.NewVersion(event.Fixed); err == nil {
				fixed = fix
				hasFixed = true
			}
		}
		if event.LastAffected != "" {
			if last, err := npm.NewVersion(event.LastAffected); err == nil {
				lastAffected = last
				hasLastAffected = true
			}
		}
	}

	if !hasIntroduced || (!hasFixed && !hasLastAffected) {
		return false
	}

	if v.LessThan(introduced) {
		return false
	}
	if hasFixed && !v.LessThan(fixed) {
		return false
	}
	if hasLastAffected && v.GreaterThan(lastAffected) {
		return false
	}

	return true
}

func isVersionInRangePython(version string, vrange models.Range) bool {
	v, err := pep440.Parse(version)
	if err != nil {
		return isVersionInRangeString(version, vrange)
	}

	var introduced, fixed, lastAffected pep440.Version
	hasIntroduced, hasFixed, hasLastAffected := false, false, false

	for _, event := range vrange.Events {
		if event.Introduced != "" {
			token := event.Introduced
			if token == "0" {
				token = "0.0.0"
			}
			if intro, err := pep440.Parse(token); err == nil {
				introduced = intro
				hasIntroduced = true
			}
		}
		if event.Fixed != "" {
			if fix, err := pep440.Parse(event.Fixed); err == nil {
				fixed = fix
				hasFixed = true
			}
		}
		if event.LastAffected != "" {
			if last, err := pep440.Parse(event.LastAffected); err == nil {
				lastAffected = last
				hasLastAffected = true
			}
		}
	}

	if !hasIntroduced || (!hasFixed && !hasLastAffected) {
		return false
	}

	if v.LessThan(introduced) {
		return false
	}
	if hasFixed && !v.LessThan(fixed) {
		return false
	}
	if hasLastAffected && v.GreaterThan(lastAffected) {
		return false
	}

	return true
}

// isVersionInRangeString performs string-based comparison as fallback
func isVersionInRangeString(version string, vrange models.Range) bool {
	hasIntroduced, hasFixed, hasLastAffected := false, false, false

	for _, event := range vrange.Events {
		if event.Introduced != "" {
			hasIntroduced = true
		}
		if event.Fixed != "" {
			hasFixed = true
		}
		if event.LastAffected != "" {
			hasLastAffected = true
		}
	}

	if !hasIntroduced || (!hasFixed && !hasLastAffected) {
		return false
	}

	for _, event := range vrange.Events {
		if event.Introduced != "" && event.Introduced != "0" {
			if version < event.Introduced {
				return false
			}
		}
		if event.Fixed != "" && version >= event.Fixed {
			return false
		}
		if event.LastAffected != "" && version > event.LastAffected {
			return false
		}
	}
	return true
}
