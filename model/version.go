// Package model defines the value types of the release resolution engine:
// software versions, releases, support windows, editions and OS families.
package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// ReleaseStage describes the development stage a software version was cut from.
type ReleaseStage int

// Release stage values, ordered by maturity.
const (
	StageAlpha ReleaseStage = iota
	StageBeta
	StageReleaseCandidate
	StageRelease
	StageServicePack
)

// Qualifier returns the short token used for the stage in version strings
// (e.g. "rc" in "2.0.0rc1"). A final release has no qualifier.
func (s ReleaseStage) Qualifier() string {
	switch s {
	case StageAlpha:
		return "a"
	case StageBeta:
		return "b"
	case StageReleaseCandidate:
		return "rc"
	case StageServicePack:
		return "sp"
	default:
		return ""
	}
}

// String returns the stage name used in serialized records.
func (s ReleaseStage) String() string {
	switch s {
	case StageAlpha:
		return "ALPHA"
	case StageBeta:
		return "BETA"
	case StageReleaseCandidate:
		return "RELEASE_CANDIDATE"
	case StageServicePack:
		return "SERVICE_PACK"
	default:
		return "RELEASE"
	}
}

func stageFromQualifier(qualifier string) ReleaseStage {
	switch qualifier {
	case "a":
		return StageAlpha
	case "b":
		return StageBeta
	case "rc":
		return StageReleaseCandidate
	case "sp":
		return StageServicePack
	default:
		return StageRelease
	}
}

// Version grammar: major[.minor][.build][stage letters][stage digits] with
// stage letters restricted to a|b|rc|sp.
var (
	versionReg       = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?(a\d*|b\d*|rc\d*|sp\d*)?`)
	versionSearchReg = regexp.MustCompile(`(\d+)(?:\.(\d+))?(?:\.(\d+))?(a\d*|b\d*|rc\d*|sp\d*)?`)
	stageReg         = regexp.MustCompile(`^(a|b|rc|sp)(\d*)`)
)

// SoftwareVersion is an immutable structured software version. Identity and
// hashing cover the (major, minor, build) triplet only; the release stage is
// deliberately excluded (two builds of the same numeric version compare equal
// regardless of stage).
type SoftwareVersion struct {
	Major        int
	Minor        int
	Build        int
	Stage        ReleaseStage
	StageVersion int
	Raw          string
}

// ParseVersion parses a raw version token into a SoftwareVersion.
// Missing minor/build components default to zero.
func ParseVersion(token string) (SoftwareVersion, error) {
	match := versionReg.FindStringSubmatch(token)
	if match == nil {
		return SoftwareVersion{}, &InvalidVersionError{Token: token}
	}
	return versionFromMatch(match, token), nil
}

// ParseVersionInt builds a major-only version from an integer token.
func ParseVersionInt(n int) SoftwareVersion {
	if n < 0 {
		n = 0
	}
	return SoftwareVersion{Major: n, Stage: StageRelease, StageVersion: 1, Raw: strconv.Itoa(n)}
}

// MustParseVersion is ParseVersion for static catalog data; it panics on a
// malformed token.
func MustParseVersion(token string) SoftwareVersion {
	v, err := ParseVersion(token)
	if err != nil {
		panic(err)
	}
	return v
}

// FindVersionInString extracts the first substring of text matching the
// version grammar. The second return value is false when no version is found.
func FindVersionInString(text string) (SoftwareVersion, bool) {
	match := versionSearchReg.FindStringSubmatch(text)
	if match == nil {
		return SoftwareVersion{}, false
	}
	return versionFromMatch(match, match[0]), true
}

func versionFromMatch(match []string, raw string) SoftwareVersion {
	v := SoftwareVersion{Stage: StageRelease, StageVersion: 1, Raw: raw}

	v.Major, _ = strconv.Atoi(match[1])
	if match[2] != "" {
		v.Minor, _ = strconv.Atoi(match[2])
	}
	if match[3] != "" {
		v.Build, _ = strconv.Atoi(match[3])
	}

	if match[4] != "" {
		if stage := stageReg.FindStringSubmatch(match[4]); stage != nil {
			v.Stage = stageFromQualifier(stage[1])
			if stage[2] != "" {
				v.StageVersion, _ = strconv.Atoi(stage[2])
			}
		}
	}

	return v
}

// Equal reports whether both versions share the same (major, minor, build)
// triplet. Stage is excluded from identity.
func (v SoftwareVersion) Equal(other SoftwareVersion) bool {
	return v.Major == other.Major && v.Minor == other.Minor && v.Build == other.Build
}

// Key returns the numeric triplet as a string usable as a catalog map key.
func (v SoftwareVersion) Key() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// GreaterThan applies the field-wise comparison rule: every field must be at
// least the other's, and build strictly greater. This is not a lexicographic
// total order; it is kept as the compliance engine's documented contract.
func (v SoftwareVersion) GreaterThan(other SoftwareVersion) bool {
	return v.Major >= other.Major && v.Minor >= other.Minor && v.Build > other.Build
}

// GreaterOrEqual reports whether every field is at least the other's.
func (v SoftwareVersion) GreaterOrEqual(other SoftwareVersion) bool {
	return v.Major >= other.Major && v.Minor >= other.Minor && v.Build >= other.Build
}

// LessThan applies the field-wise comparison rule with build strictly lower.
func (v SoftwareVersion) LessThan(other SoftwareVersion) bool {
	return v.Major <= other.Major && v.Minor <= other.Minor && v.Build < other.Build
}

// LessOrEqual reports whether every field is at most the other's.
func (v SoftwareVersion) LessOrEqual(other SoftwareVersion) bool {
	return v.Major <= other.Major && v.Minor <= other.Minor && v.Build <= other.Build
}

// String renders the numeric triplet, with the stage suffix when the version
// is not a plain first release.
func (v SoftwareVersion) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
	if v.Stage == StageRelease && v.StageVersion == 1 {
		return base
	}
	return fmt.Sprintf("%s%s%d", base, v.Stage.Qualifier(), v.StageVersion)
}

// ToRecord returns the serializable snapshot of the version used by export.
func (v SoftwareVersion) ToRecord() map[string]interface{} {
	return map[string]interface{}{
		"raw":   v.Raw,
		"major": v.Major,
		"minor": v.Minor,
		"build": v.Build,
		"stage": map[string]interface{}{
			"name":    v.Stage.String(),
			"version": v.StageVersion,
		},
	}
}
