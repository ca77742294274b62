package model

import (
	"fmt"
	"strings"
)

// InvalidVersionError reports a raw version token that does not match the
// version grammar. It is not recoverable inside the engine.
type InvalidVersionError struct {
	Token string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version token %q", e.Token)
}

// InvalidSupportDatesError reports a support channel registered without an
// active support date or a security support date.
type InvalidSupportDatesError struct {
	Channel string
}

func (e *InvalidSupportDatesError) Error() string {
	return fmt.Sprintf("support channel %q needs an active support or security support date", e.Channel)
}

// AmbiguousReleaseError reports that more than one release remained
// indistinguishable after the full filter chain ran. Resolution fails loudly
// rather than silently picking a release for a compliance report.
type AmbiguousReleaseError struct {
	Software   string
	VersionKey string
	Candidates []string
}

func (e *AmbiguousReleaseError) Error() string {
	return fmt.Sprintf("ambiguous release for %s %s: candidates [%s]",
		e.Software, e.VersionKey, strings.Join(e.Candidates, ", "))
}

// NotImplementedOSOptionError reports a recognized OS family with no
// registered concrete OS option. This is a configuration error and should be
// surfaced by startup validation, not discovered per asset.
type NotImplementedOSOptionError struct {
	Family string
	Option string
}

func (e *NotImplementedOSOptionError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("OS option %s (family %s) is not registered", e.Option, e.Family)
	}
	return fmt.Sprintf("OS family %s has no registered option", e.Family)
}
