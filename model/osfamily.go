package model

import "regexp"

// OSOption names one concrete operating system inside a family and the
// pattern that detects it in free text.
type OSOption struct {
	Name    string
	pattern *regexp.Regexp
}

// Matches reports whether the option's pattern occurs in the given text.
func (o *OSOption) Matches(text string) bool {
	return o.pattern.MatchString(text)
}

// MatchingSubstring returns the first substring of text the option's pattern
// matches, and whether a match was found.
func (o *OSOption) MatchingSubstring(text string) (string, bool) {
	m := o.pattern.FindString(text)
	return m, m != ""
}

func osOption(name, pattern string) OSOption {
	return OSOption{Name: name, pattern: regexp.MustCompile(pattern)}
}

// OSFamily is a broad operating system category carrying the concrete OS
// options it maps to. The set of families is closed.
type OSFamily struct {
	Name    string
	options []OSOption
}

// Options returns the family's concrete OS options in declaration order.
func (f *OSFamily) Options() []*OSOption {
	out := make([]*OSOption, len(f.options))
	for i := range f.options {
		out[i] = &f.options[i]
	}
	return out
}

// OptionNames returns the names of the family's options in declaration order.
func (f *OSFamily) OptionNames() []string {
	names := make([]string, len(f.options))
	for i, opt := range f.options {
		names[i] = opt.Name
	}
	return names
}

// Match returns the first option of this family whose pattern occurs in the
// text, nil when none matches.
func (f *OSFamily) Match(text string) *OSOption {
	for i := range f.options {
		if f.options[i].Matches(text) {
			return &f.options[i]
		}
	}
	return nil
}

// Matches reports whether any option of this family occurs in the text.
func (f *OSFamily) Matches(text string) bool {
	return f.Match(text) != nil
}

func (f *OSFamily) String() string {
	return f.Name
}

// The closed set of OS families. Declaration order is significant: detection
// walks the families, and each family's options, in this order and stops at
// the first match. Within WINDOWS the server pattern comes first so that
// "Windows Server" text is never claimed by the workstation option.
var (
	FamilyAndroid = OSFamily{
		Name: "ANDROID",
		options: []OSOption{
			osOption("ANDROIDOS", `[Aa]ndroid(?: [Oo][Ss])?`),
			osOption("GRAPHENEOS", `[Gg]raphene[Oo][Ss]`),
			osOption("LINEAGEOS", `[Ll]ineage[Oo][Ss]|/e/[Oo][Ss]`),
		},
	}

	FamilyBSD = OSFamily{
		Name: "BSD",
		options: []OSOption{
			osOption("OPENBSD", `OpenBSD`),
			osOption("FREEBSD", `FreeBSD`),
		},
	}

	FamilyLinux = OSFamily{
		Name: "LINUX",
		options: []OSOption{
			osOption("CENTOS", `[Cc]ent[Oo][Ss]`),
			osOption("DEBIAN", `[Dd]ebian(?: Linux)?`),
			osOption("FEDORA", `[Ff]edora(?: Linux)?`),
			osOption("MINT", `Linux Mint(?: Debian Edition|\s*LMDE)?`),
			osOption("NIXOS", `[Nn]ix[Oo][Ss]`),
			osOption("OPENSUSE", `(?:[Oo]pen)?[Ss][Uu][Ss][Ee](?: Linux)?`),
			osOption("ORACLELINUX", `[Oo]racle(?: Linux)?`),
			osOption("RHEL", `[Rr](?:ed )?[Hh](?:at )?[Ee](?:nterprise )?[Ll](?:inux)?`),
			osOption("ROCKYLINUX", `[Rr]ocky(?: Linux)?`),
			osOption("SUSELINUX", `[Ss][Uu][Ss][Ee](?: Linux)?`),
			osOption("UBUNTU", `[Uu]buntu(?: Linux)?`),
		},
	}

	FamilyMac = OSFamily{
		Name: "MAC",
		options: []OSOption{
			osOption("MACOS", `[Mm][Aa][Cc]\s*OS\s*X|OS\s*X|Mac\s*OS`),
			osOption("IOS", `(?:Apple )?[Ii][Oo][Ss]`),
		},
	}

	FamilyWindows = OSFamily{
		Name: "WINDOWS",
		options: []OSOption{
			osOption("WINDOWSSERVER", `[Ww]indows\s+[Ss]erver`),
			osOption("WINDOWS", `[Ww]indows`),
		},
	}
)

// Families returns the closed family set in declaration order.
func Families() []*OSFamily {
	return []*OSFamily{&FamilyAndroid, &FamilyBSD, &FamilyLinux, &FamilyMac, &FamilyWindows}
}

// FamilyByName returns the family with the given name, nil when unknown.
func FamilyByName(name string) *OSFamily {
	for _, f := range Families() {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// MatchingFamily returns the first family, in declaration order, with an
// option occurring in the text. Nil means the text names no known OS.
func MatchingFamily(text string) *OSFamily {
	for _, f := range Families() {
		if f.Matches(text) {
			return f
		}
	}
	return nil
}

// MatchingOption returns the first family and option, in declaration order,
// whose pattern occurs in the text.
func MatchingOption(text string) (*OSFamily, *OSOption) {
	for _, f := range Families() {
		if opt := f.Match(text); opt != nil {
			return f, opt
		}
	}
	return nil, nil
}
