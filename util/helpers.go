// Package util provides utility functions for working with Package URLs (PURLs),
// version comparisons for vulnerability checking, and extracting metadata from the environment.
//
//revive:disable-next-line:var-naming
package util

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/package-url/packageurl-go"
)

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// IsEmpty checks if a string is empty or contains only whitespace
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// IsNotEmpty checks if a string is not empty
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// FileExists checks if a file exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// Contains checks if a string slice contains a specific item
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// GetStringOrDefault returns the value if non-empty, the default otherwise
func GetStringOrDefault(value, defaultValue string) string {
	if IsEmpty(value) {
		return defaultValue
	}
	return value
}

// SanitizeKey ensures a document key is valid for ArangoDB.
// ArangoDB keys cannot contain spaces, slashes, or brackets
func SanitizeKey(key string) string {
	key = strings.TrimSpace(key)

	replacer := strings.NewReplacer(
		" ", "-",
		"/", "-",
		"[", "",
		"]", "",
		"(", "",
		")", "",
	)

	return replacer.Replace(key)
}

// ============================================================================
// PURL helpers
// ============================================================================

// ReleasePURL builds the canonical package URL for an OS release, e.g.
// "pkg:generic/windows@10.0.26100".
func ReleasePURL(osLabel, version string) string {
	purl := packageurl.NewPackageURL(packageurl.TypeGeneric, "", osLabel, version, nil, "")
	return strings.ToLower(purl.ToString())
}

// ParsePURL parses a PURL string and returns the parsed PackageURL
func ParsePURL(purlStr string) (*packageurl.PackageURL, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// CleanPURL strips qualifiers from a PURL, keeping type, namespace, name,
// version and subpath
func CleanPURL(purlStr string) (string, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return "", err
	}

	cleaned := packageurl.PackageURL{
		Type:      parsed.Type,
		Namespace: parsed.Namespace,
		Name:      parsed.Name,
		Version:   parsed.Version,
		Subpath:   parsed.Subpath,
	}

	return strings.ToLower(cleaned.ToString()), nil
}

// GetBasePURL removes the version component from a PURL to create a base
// package identifier.
// Example: pkg:generic/windows@10.0.26100 -> pkg:generic/windows
func GetBasePURL(purlStr string) (string, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return "", err
	}

	base := packageurl.PackageURL{
		Type:      parsed.Type,
		Namespace: parsed.Namespace,
		Name:      parsed.Name,
	}

	return strings.ToLower(base.ToString()), nil
}

// ============================================================================
// Version Parsing Functions
// ============================================================================

var versionPrefixPattern = regexp.MustCompile(`^.*?-v(\d+)`)
var semverPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z\-\.]+))?(?:\+([0-9A-Za-z\-\.]+))?$`)

// CleanVersion removes branch prefixes from version strings
// Examples:
//   - "main-v12.0.1376-g7ac6f3" -> "12.0.1376-g7ac6f3"
//   - "develop-v2.3.4" -> "2.3.4"
//   - "v1.2.3" -> "v1.2.3" (unchanged)
func CleanVersion(version string) string {
	if version == "" {
		return version
	}
	if versionPrefixPattern.MatchString(version) {
		matches := versionPrefixPattern.FindStringSubmatch(version)
		if len(matches) > 1 {
			cleaned := versionPrefixPattern.ReplaceAllString(version, matches[1])
			return cleaned
		}
	}
	return version
}

// ParsedSemver holds all components of a semantic version
type ParsedSemver struct {
	Major         *int
	Minor         *int
	Patch         *int
	Prerelease    string
	BuildMetadata string
}

// ParseSemver parses a semantic version string into all its components
// Returns nil if the version cannot be parsed
func ParseSemver(version string) *ParsedSemver {
	if version == "" {
		return nil
	}

	cleanVersion := strings.TrimPrefix(version, "go")

	if v, err := semver.NewVersion(cleanVersion); err == nil {
		major := int(v.Major())
		minor := int(v.Minor())
		patch := int(v.Patch())

		result := &ParsedSemver{Major: &major, Minor: &minor, Patch: &patch}
		if matches := semverPattern.FindStringSubmatch(cleanVersion); len(matches) > 5 {
			result.Prerelease = matches[4]
			result.BuildMetadata = matches[5]
		}
		return result
	}

	// Fallback: parse what we can for versions like "1.2" or "2"
	parts := strings.Split(cleanVersion, ".")
	result := &ParsedSemver{}

	if len(parts) >= 1 {
		if major, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			result.Major = &major
		}
	}
	if len(parts) >= 2 {
		if minor, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			result.Minor = &minor
		}
	}
	if len(parts) >= 3 {
		patchStr := strings.FieldsFunc(parts[2], func(r rune) bool {
			return r == '-' || r == '+'
		})[0]
		if patch, err := strconv.Atoi(strings.TrimSpace(patchStr)); err == nil {
			result.Patch = &patch
		}
	}

	return result
}

// FormatReleaseKey renders a stable document key for a release snapshot
func FormatReleaseKey(software, label string) string {
	return SanitizeKey(fmt.Sprintf("%s-%s", software, label))
}
