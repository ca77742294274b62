package resolver

import (
	"github.com/oslc/oslc-backend/catalog"
	"github.com/oslc/oslc-backend/model"
)

// StandardEditionLabel is the edition the resolver falls back to when the
// asset text names no edition but the OS catalogs one under this label.
const StandardEditionLabel = "Standard"

// Resolver resolves free-text asset descriptions against a registry of
// operating systems. Resolution is read-only over the registry, so a single
// Resolver is safe for concurrent use once catalogs are populated.
type Resolver struct {
	registry *Registry
}

// New builds a resolver over the given registry.
func New(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Registry returns the registry the resolver resolves against.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve maps an asset's OS description text, and optionally a separate
// version token, to (OS, release, edition). Every element of the result is
// independently nullable: unrecognized text yields (nil, nil, nil) with no
// error, and a known OS with an uncataloged version yields a nil release.
//
// Errors are reserved for real faults: a malformed explicit version token, a
// recognized OS option with no registration, or residual ambiguity after the
// filter chain ran. With no filters supplied the chain defaults to
// [MaxVersion, ByLabel(osText, fallback)].
func (r *Resolver) Resolve(osText, osVersion string, filters ...catalog.Filter) (*OS, *model.Release, *model.Edition, error) {
	version, hasVersion, err := resolveVersion(osText, osVersion)
	if err != nil {
		return nil, nil, nil, err
	}

	family, option := model.MatchingOption(osText)
	if family == nil {
		return nil, nil, nil, nil
	}

	os := r.registry.ByOption(option.Name)
	if os == nil {
		return nil, nil, nil, &model.NotImplementedOSOptionError{Family: family.Name, Option: option.Name}
	}

	release, err := r.resolveRelease(os, osText, version, hasVersion, filters)
	if err != nil {
		return os, nil, nil, err
	}

	return os, release, resolveEdition(os, osText), nil
}

// resolveVersion prefers the explicit token and falls back to scanning the
// description text. A missing version is not an error; a malformed explicit
// token is.
func resolveVersion(osText, osVersion string) (model.SoftwareVersion, bool, error) {
	if osVersion != "" {
		v, err := model.ParseVersion(osVersion)
		if err != nil {
			return model.SoftwareVersion{}, false, err
		}
		return v, true, nil
	}
	if v, ok := model.FindVersionInString(osText); ok {
		return v, true, nil
	}
	return model.SoftwareVersion{}, false, nil
}

func (r *Resolver) resolveRelease(os *OS, osText string, version model.SoftwareVersion, hasVersion bool, filters []catalog.Filter) (*model.Release, error) {
	if !hasVersion {
		return nil, nil
	}

	cat, err := os.Catalog()
	if err != nil {
		return nil, err
	}

	candidates := cat.GetVersion(version)
	if len(candidates) == 0 {
		return nil, nil
	}

	if len(filters) == 0 {
		filters = []catalog.Filter{catalog.MaxVersion, catalog.ByLabel(osText, true)}
	}

	release, residual := catalog.Unique(candidates, filters...)
	if len(residual) > 1 {
		ids := make([]string, len(residual))
		for i, c := range residual {
			ids[i] = c.ID()
		}
		return nil, &model.AmbiguousReleaseError{
			Software:   os.Label,
			VersionKey: version.Key(),
			Candidates: ids,
		}
	}
	return release, nil
}

// resolveEdition returns the first edition matching the text, falling back
// to the Standard edition when the OS catalogs one.
func resolveEdition(os *OS, osText string) *model.Edition {
	matched := os.Editions().FindAll(osText)
	if len(matched) > 0 {
		return matched[0]
	}
	return os.Editions().FindByLabel(StandardEditionLabel)
}
