package catalog

import (
	"regexp"
	"strings"
	"time"

	"github.com/oslc/oslc-backend/model"
)

// Filter narrows a candidate release list. Filters never mutate their input.
type Filter func(candidates []*model.Release) []*model.Release

// MaxVersion keeps the releases whose version equals the maximum version
// present in the input list. The maximum is swept with the field-wise
// greater-or-equal rule; candidates incomparable to the running maximum
// leave it unchanged.
func MaxVersion(candidates []*model.Release) []*model.Release {
	if len(candidates) == 0 {
		return nil
	}

	max := candidates[0].Version
	for _, r := range candidates[1:] {
		if r.Version.GreaterOrEqual(max) {
			max = r.Version
		}
	}

	var out []*model.Release
	for _, r := range candidates {
		if r.Version.Equal(max) {
			out = append(out, r)
		}
	}
	return out
}

// ByLabel keeps the releases whose label matches the given text, treating
// each label as a regular expression, with a plain substring check for
// labels that do not compile. When the result is empty and fallback is set,
// the original list is returned unchanged.
func ByLabel(text string, fallback bool) Filter {
	return func(candidates []*model.Release) []*model.Release {
		var out []*model.Release
		for _, r := range candidates {
			if labelMatches(r.Label, text) {
				out = append(out, r)
			}
		}
		if len(out) == 0 && fallback {
			return candidates
		}
		return out
	}
}

func labelMatches(label, text string) bool {
	if label == "" {
		return false
	}
	re, err := regexp.Compile(label)
	if err != nil {
		return strings.Contains(text, label)
	}
	return re.MatchString(text)
}

// ByStatus keeps the releases whose support state at the given instant
// equals the wanted state.
func ByStatus(now time.Time, supported bool) Filter {
	return func(candidates []*model.Release) []*model.Release {
		var out []*model.Release
		for _, r := range candidates {
			if r.IsSupportedAt(now, nil) == supported {
				out = append(out, r)
			}
		}
		return out
	}
}

// ByID keeps the release with the given ID.
func ByID(id string) Filter {
	return func(candidates []*model.Release) []*model.Release {
		var out []*model.Release
		for _, r := range candidates {
			if r.ID() == id {
				out = append(out, r)
			}
		}
		return out
	}
}

// Unique runs the filters left to right over the candidate list. A singleton
// input is returned at once without evaluating any filter. After each
// filter: an empty list stops the chain with no result, a single survivor is
// returned without running the remaining filters. When the filters are
// exhausted with more than one candidate left, Unique returns no resolved
// release and the residual list; the caller decides whether that residual
// ambiguity is an error.
func Unique(candidates []*model.Release, filters ...Filter) (*model.Release, []*model.Release) {
	if len(candidates) == 0 {
		return nil, nil
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	current := candidates
	for _, filter := range filters {
		current = filter(current)
		if len(current) == 0 {
			return nil, nil
		}
		if len(current) == 1 {
			return current[0], nil
		}
	}
	return nil, current
}
