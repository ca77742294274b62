package model

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// DateFormat is the wire format of every lifecycle date handled by the engine.
const DateFormat = "2006-01-02"

// SupportWindow holds one support channel's lifecycle dates and long term
// support flag. Immutable once created.
type SupportWindow struct {
	Channel                 string
	ActiveSupport           time.Time
	SecuritySupport         time.Time
	ExtendedSecuritySupport *time.Time
	LTS                     bool
}

// NewSupportWindow builds a SupportWindow from YYYY-MM-DD date strings.
// At least one of activeSupport/securitySupport must be supplied; the missing
// one defaults to the supplied one. An empty extended date means none.
func NewSupportWindow(channel, activeSupport, securitySupport, extendedSecuritySupport string, lts bool) (SupportWindow, error) {
	if activeSupport == "" && securitySupport == "" {
		return SupportWindow{}, &InvalidSupportDatesError{Channel: channel}
	}

	if activeSupport == "" {
		activeSupport = securitySupport
	}
	if securitySupport == "" {
		securitySupport = activeSupport
	}

	active, err := time.Parse(DateFormat, activeSupport)
	if err != nil {
		return SupportWindow{}, fmt.Errorf("channel %s: active support date: %w", channel, err)
	}
	security, err := time.Parse(DateFormat, securitySupport)
	if err != nil {
		return SupportWindow{}, fmt.Errorf("channel %s: security support date: %w", channel, err)
	}

	w := SupportWindow{
		Channel:         channel,
		ActiveSupport:   active,
		SecuritySupport: security,
		LTS:             lts,
	}

	if extendedSecuritySupport != "" {
		extended, err := time.Parse(DateFormat, extendedSecuritySupport)
		if err != nil {
			return SupportWindow{}, fmt.Errorf("channel %s: extended security support date: %w", channel, err)
		}
		w.ExtendedSecuritySupport = &extended
	}

	return w, nil
}

// EndOfLife returns the date security fixes stop for this channel: the
// extended security support date when present, the security support date
// otherwise.
func (w SupportWindow) EndOfLife() time.Time {
	if w.ExtendedSecuritySupport != nil {
		return *w.ExtendedSecuritySupport
	}
	return w.SecuritySupport
}

// daysLeft is the whole-day difference between end of life and now.
// Negative once support has ended.
func (w SupportWindow) daysLeft(now time.Time) int {
	diff := w.EndOfLife().Sub(now.UTC())
	return int(math.Floor(diff.Hours() / 24))
}

// IsOngoingAt reports whether the channel is still supported at the given
// instant. The boundary instant itself (zero days remaining) is not ongoing.
func (w SupportWindow) IsOngoingAt(now time.Time) bool {
	return w.daysLeft(now) > 0
}

// IsOngoing is IsOngoingAt for the current UTC time.
func (w SupportWindow) IsOngoing() bool {
	return w.IsOngoingAt(time.Now())
}

// StatusAt renders the support state at the given instant.
func (w SupportWindow) StatusAt(now time.Time) string {
	if w.IsOngoingAt(now) {
		return "Ongoing"
	}
	return "Retired"
}

// Status is StatusAt for the current UTC time.
func (w SupportWindow) Status() string {
	return w.StatusAt(time.Now())
}

// SupportDetailsAt renders how far this channel is from its end of life.
func (w SupportWindow) SupportDetailsAt(now time.Time) string {
	days := w.daysLeft(now)
	if days > 0 {
		return fmt.Sprintf("Ends in %d days", days)
	}
	return fmt.Sprintf("Ended %d days ago", -days)
}

// SupportDetails is SupportDetailsAt for the current UTC time.
func (w SupportWindow) SupportDetails() string {
	return w.SupportDetailsAt(time.Now())
}

// ToRecord returns the serializable snapshot of the window used by export.
func (w SupportWindow) ToRecord(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"activeSupport": w.ActiveSupport.Format(DateFormat),
		"endOfLife":     w.EndOfLife().Format(DateFormat),
		"status":        w.StatusAt(now),
		"lts":           w.LTS,
		"details":       w.SupportDetailsAt(now),
	}
}

// SupportLedger maps support channel names to their windows on a release.
// Channel registration is first write wins: a duplicate registration for a
// channel already present is silently ignored, never overwritten.
type SupportLedger struct {
	channels map[string]SupportWindow
}

// NewSupportLedger returns an empty ledger.
func NewSupportLedger() *SupportLedger {
	return &SupportLedger{channels: make(map[string]SupportWindow)}
}

// AddChannel registers a window under its channel name. It returns false
// when the channel was already present and the window was ignored.
func (l *SupportLedger) AddChannel(w SupportWindow) bool {
	if _, exists := l.channels[w.Channel]; exists {
		return false
	}
	l.channels[w.Channel] = w
	return true
}

// Channel returns the window registered for the given channel name.
func (l *SupportLedger) Channel(name string) (SupportWindow, bool) {
	w, ok := l.channels[name]
	return w, ok
}

// ChannelNames returns the registered channel names in sorted order.
func (l *SupportLedger) ChannelNames() []string {
	names := make([]string, 0, len(l.channels))
	for name := range l.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered channels.
func (l *SupportLedger) Len() int {
	return len(l.channels)
}

// OngoingAt returns the channels still supported at the given instant.
func (l *SupportLedger) OngoingAt(now time.Time) map[string]SupportWindow {
	ongoing := make(map[string]SupportWindow)
	for name, w := range l.channels {
		if w.IsOngoingAt(now) {
			ongoing[name] = w
		}
	}
	return ongoing
}

// RetiredAt returns the channels no longer supported at the given instant.
func (l *SupportLedger) RetiredAt(now time.Time) map[string]SupportWindow {
	retired := make(map[string]SupportWindow)
	for name, w := range l.channels {
		if !w.IsOngoingAt(now) {
			retired[name] = w
		}
	}
	return retired
}

// IsSupportedAt reports whether any channel is ongoing at the given instant
// and, when an edition is supplied, whether that channel carries the
// edition's support channel.
func (l *SupportLedger) IsSupportedAt(now time.Time, edition *Edition) bool {
	for name, w := range l.channels {
		if w.IsOngoingAt(now) && (edition == nil || name == edition.Channel) {
			return true
		}
	}
	return false
}

// IsSupported is IsSupportedAt for the current UTC time.
func (l *SupportLedger) IsSupported(edition *Edition) bool {
	return l.IsSupportedAt(time.Now(), edition)
}

// ToRecord returns the per-channel serializable snapshot used by export.
func (l *SupportLedger) ToRecord(now time.Time) map[string]interface{} {
	record := make(map[string]interface{}, len(l.channels))
	for name, w := range l.channels {
		record[name] = w.ToRecord(now)
	}
	return record
}
