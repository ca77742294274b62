package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oslc/oslc-backend/model"
)

func release(t *testing.T, software, version, label, securityEnd string) *model.Release {
	t.Helper()
	r := model.NewRelease(software, model.MustParseVersion(version), label, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	if securityEnd != "" {
		w, err := model.NewSupportWindow("GAC", "", securityEnd, "", false)
		require.NoError(t, err)
		r.Support.AddChannel(w)
	}
	return r
}

func TestAddDeduplicatesByID(t *testing.T) {
	c := New("windows")
	r := release(t, "windows", "10.0.22631", "11 23H2", "2030-01-01")

	assert.True(t, c.Add(r, false))
	assert.False(t, c.Add(r, false))
	assert.Len(t, c.Get("10.0.22631"), 1)

	// force bypasses the dedup check.
	assert.True(t, c.Add(r, true))
	assert.Len(t, c.Get("10.0.22631"), 2)
}

func TestAddKeepsDistinctLabelsUnderOneKey(t *testing.T) {
	c := New("windows")
	c.Add(release(t, "windows", "10.0.19045", "10 22H2", "2025-10-14"), false)
	c.Add(release(t, "windows", "10.0.19045", "10 22H2 LTSC", "2027-01-12"), false)

	assert.Len(t, c.Get("10.0.19045"), 2)
	assert.Equal(t, 2, c.Len())
}

func TestGetMissReturnsNil(t *testing.T) {
	c := New("windows")
	assert.Nil(t, c.Get("1.2.3"))
	assert.Nil(t, c.GetVersion(model.MustParseVersion("1.2.3")))
}

func TestSupportedAndRetired(t *testing.T) {
	c := New("rhel")
	c.Add(release(t, "rhel", "9.0.0", "9", "2032-05-31"), false)
	c.Add(release(t, "rhel", "7.0.0", "7", "2024-06-30"), false)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	supported := c.SupportedAt(now)
	retired := c.RetiredAt(now)

	require.Len(t, supported, 1)
	assert.Equal(t, "9", supported[0].Label)
	require.Len(t, retired, 1)
	assert.Equal(t, "7", retired[0].Label)
}

func TestLatest(t *testing.T) {
	c := New("rhel")
	older := release(t, "rhel", "8.0.0", "8", "2029-05-31")
	newest := release(t, "rhel", "9.0.0", "9", "2032-05-31")
	newest.Latest = true
	c.Add(older, false)
	c.Add(newest, false)

	latest := c.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "9", latest.Label)
}

func TestFindByLabel(t *testing.T) {
	c := New("windows")
	c.Add(release(t, "windows", "10.0.19045", "10 22H2", "2025-10-14"), false)
	c.Add(release(t, "windows", "10.0.22631", "11 23H2", "2026-11-10"), false)

	found := c.FindByLabel("11 23H2")
	require.Len(t, found, 1)
	assert.Equal(t, "10.0.22631", found[0].Version.Key())
	assert.Empty(t, c.FindByLabel("12"))
}
