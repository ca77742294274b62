// Package resolver maps free-text asset descriptions to a registered
// operating system, a cataloged release and an edition.
package resolver

import (
	"fmt"

	"github.com/oslc/oslc-backend/catalog"
	"github.com/oslc/oslc-backend/model"
)

// PopulateFunc loads a release catalog from static configuration. It runs at
// most once per OS.
type PopulateFunc func(*catalog.Catalog) error

// OS is one concrete operating system registered under an OS family option.
// Its release catalog is populated lazily on first access; population is not
// internally synchronized, so either populate eagerly before concurrent use
// or serialize the first access.
type OS struct {
	ID          string
	Name        string
	Label       string
	Editor      string
	Description string
	Family      *model.OSFamily
	Option      string
	Tags        []string

	editions  *model.EditionSet
	catalog   *catalog.Catalog
	populate  PopulateFunc
	populated bool
}

// NewOS builds an OS with an empty catalog and the given populate routine.
func NewOS(id, name, label, editor string, family *model.OSFamily, option string, editions *model.EditionSet, populate PopulateFunc) *OS {
	return &OS{
		ID:       id,
		Name:     name,
		Label:    label,
		Editor:   editor,
		Family:   family,
		Option:   option,
		editions: editions,
		catalog:  catalog.New(label),
		populate: populate,
	}
}

// Editions returns the OS's edition table.
func (o *OS) Editions() *model.EditionSet {
	return o.editions
}

// Catalog returns the OS's release catalog, populating it on first access.
func (o *OS) Catalog() (*catalog.Catalog, error) {
	if err := o.Populate(); err != nil {
		return nil, err
	}
	return o.catalog, nil
}

// Populate loads the release catalog once. Further calls are no-ops.
func (o *OS) Populate() error {
	if o.populated || o.populate == nil {
		o.populated = true
		return nil
	}
	if err := o.populate(o.catalog); err != nil {
		return fmt.Errorf("populating %s catalog: %w", o.Label, err)
	}
	o.populated = true
	return nil
}

// Registry holds the OSes known to the resolver, keyed by family option
// name. Registration happens at startup; the registry is read-only
// afterwards.
type Registry struct {
	byOption map[string]*OS
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byOption: make(map[string]*OS)}
}

// Register adds an OS under its family option name, replacing any previous
// registration for that option.
func (r *Registry) Register(os *OS) {
	if _, exists := r.byOption[os.Option]; !exists {
		r.order = append(r.order, os.Option)
	}
	r.byOption[os.Option] = os
}

// ByOption returns the OS registered under the given family option name,
// nil when none is.
func (r *Registry) ByOption(option string) *OS {
	return r.byOption[option]
}

// ByLabel returns the OS with the given label, nil when none is.
func (r *Registry) ByLabel(label string) *OS {
	for _, option := range r.order {
		if os := r.byOption[option]; os.Label == label {
			return os
		}
	}
	return nil
}

// All returns the registered OSes in registration order.
func (r *Registry) All() []*OS {
	out := make([]*OS, 0, len(r.order))
	for _, option := range r.order {
		out = append(out, r.byOption[option])
	}
	return out
}

// Validate checks that every option of the given families has a registered
// OS, and eagerly populates each registered catalog. A missing registration
// is a configuration error better caught at startup than per asset.
func (r *Registry) Validate(families ...*model.OSFamily) error {
	for _, family := range families {
		for _, opt := range family.Options() {
			if r.ByOption(opt.Name) == nil {
				return &model.NotImplementedOSOptionError{Family: family.Name, Option: opt.Name}
			}
		}
	}
	for _, os := range r.All() {
		if err := os.Populate(); err != nil {
			return err
		}
	}
	return nil
}
