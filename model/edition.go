package model

import "regexp"

// Edition describes one commercialized variant of an operating system and
// the support channel its lifecycle follows.
type Edition struct {
	Label    string
	Category string
	Channel  string
	pattern  *regexp.Regexp
}

// NewEdition compiles the edition's match pattern. The pattern is searched
// anywhere in the description text, not anchored.
func NewEdition(label, category, channel, pattern string) Edition {
	return Edition{
		Label:    label,
		Category: category,
		Channel:  channel,
		pattern:  regexp.MustCompile(pattern),
	}
}

// Matches reports whether the edition's pattern occurs in the given text.
func (e *Edition) Matches(text string) bool {
	return e.pattern.MatchString(text)
}

// ToRecord returns the serializable snapshot of the edition.
func (e *Edition) ToRecord() map[string]interface{} {
	return map[string]interface{}{
		"label":    e.Label,
		"category": e.Category,
		"channel":  e.Channel,
	}
}

// EditionSet holds the editions known for one operating system, in
// declaration order.
type EditionSet struct {
	editions []Edition
}

// NewEditionSet builds a set preserving the given order.
func NewEditionSet(editions ...Edition) *EditionSet {
	return &EditionSet{editions: editions}
}

// All returns the editions in declaration order.
func (s *EditionSet) All() []*Edition {
	out := make([]*Edition, len(s.editions))
	for i := range s.editions {
		out[i] = &s.editions[i]
	}
	return out
}

// Len returns the number of editions in the set.
func (s *EditionSet) Len() int {
	return len(s.editions)
}

// Find returns the first edition whose pattern occurs in the text, nil when
// none matches.
func (s *EditionSet) Find(text string) *Edition {
	for i := range s.editions {
		if s.editions[i].Matches(text) {
			return &s.editions[i]
		}
	}
	return nil
}

// FindAll returns every edition whose pattern occurs in the text, in
// declaration order.
func (s *EditionSet) FindAll(text string) []*Edition {
	var matched []*Edition
	for i := range s.editions {
		if s.editions[i].Matches(text) {
			matched = append(matched, &s.editions[i])
		}
	}
	return matched
}

// FindByLabel returns the edition with the given label, nil when absent.
func (s *EditionSet) FindByLabel(label string) *Edition {
	for i := range s.editions {
		if s.editions[i].Label == label {
			return &s.editions[i]
		}
	}
	return nil
}

// FilterByCategory returns the editions belonging to the given category.
func (s *EditionSet) FilterByCategory(category string) []*Edition {
	var matched []*Edition
	for i := range s.editions {
		if s.editions[i].Category == category {
			matched = append(matched, &s.editions[i])
		}
	}
	return matched
}

// FilterByChannel returns the editions following the given support channel.
func (s *EditionSet) FilterByChannel(channel string) []*Edition {
	var matched []*Edition
	for i := range s.editions {
		if s.editions[i].Channel == channel {
			matched = append(matched, &s.editions[i])
		}
	}
	return matched
}
