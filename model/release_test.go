package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRelease(t *testing.T) *Release {
	t.Helper()
	r := NewRelease("windows", MustParseVersion("10.0.22631"), "11 23H2", time.Date(2023, 10, 31, 0, 0, 0, 0, time.UTC))
	r.Support.AddChannel(mustWindow(t, "E", "", "2026-11-10", "", false))
	r.Support.AddChannel(mustWindow(t, "W", "", "2025-11-11", "", false))
	return r
}

func TestReleaseIDAndName(t *testing.T) {
	r := testRelease(t)
	assert.Equal(t, "windows@10.0.22631:11 23H2", r.ID())
	assert.Equal(t, "windows 11 23H2", r.Name())

	unlabeled := NewRelease("rhel", MustParseVersion("9.4.0"), "", time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "rhel 9.4.0", unlabeled.Name())
}

func TestReleaseSupportByEdition(t *testing.T) {
	r := testRelease(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	enterprise := NewEdition("Enterprise", "workstation", "E", `Ent[er]{2}prise`)
	pro := NewEdition("Pro", "workstation", "W", `Pro`)

	assert.True(t, r.IsSupportedAt(now, nil))
	assert.True(t, r.IsSupportedAt(now, &enterprise))
	assert.False(t, r.IsSupportedAt(now, &pro))
}

func TestReleaseSupportDetailsFor(t *testing.T) {
	r := testRelease(t)
	now := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Ends in 9 days", r.SupportDetailsForAt(now, "E"))
	assert.Equal(t, "", r.SupportDetailsForAt(now, "LTSC"))
}

func TestReleaseVulnerabilities(t *testing.T) {
	r := testRelease(t)
	r.AddVulnerability("CVE-2024-21412")
	r.AddVulnerability("CVE-2024-21351")
	r.AddVulnerability("CVE-2024-21412")

	assert.Equal(t, []string{"CVE-2024-21351", "CVE-2024-21412"}, r.Vulnerabilities())
	assert.True(t, r.HasVulnerability("CVE-2024-21412"))
	assert.False(t, r.HasVulnerability("CVE-2020-0601"))
}

func TestReleaseToRecord(t *testing.T) {
	r := testRelease(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rec := r.ToRecord(now)
	assert.Equal(t, "windows", rec["software"])
	assert.Equal(t, "2023-10-31", rec["releaseDate"])

	channels := rec["supportChannels"].(map[string]interface{})
	require.Contains(t, channels, "E")
	eRec := channels["E"].(map[string]interface{})
	assert.Equal(t, "Ongoing", eRec["status"])
	assert.Equal(t, true, rec["isSupported"])
}
