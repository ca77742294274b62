package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oslc/oslc-backend/catalog"
)

const sampleFeed = `
releases:
  - os: windows
    releaseLabel: "11 24H2"
    version: "10.0.26100"
    releaseDate: "2024-10-01"
    latest: true
    link: https://learn.microsoft.com/windows/release-health/windows11-release-information
    channels:
      W:
        securitySupport: "2026-10-13"
      E:
        securitySupport: "2027-10-12"
  - os: red-hat-enterprise-linux
    releaseLabel: "9"
    version: "9.0.0"
    releaseDate: "2022-05-17"
    channels:
      Standard:
        activeSupport: "2027-05-31"
        securitySupport: "2032-05-31"
        extendedSecuritySupport: "2035-05-31"
        lts: true
`

func TestParseFeed(t *testing.T) {
	feed, err := ParseFeed([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, feed.Releases, 2)

	rec := feed.Releases[0]
	assert.Equal(t, "windows", rec.OS)
	assert.Equal(t, "11 24H2", rec.ReleaseLabel)
	assert.True(t, rec.Latest)
	assert.Len(t, rec.Channels, 2)

	assert.Len(t, feed.ForOS("windows"), 1)
	assert.Empty(t, feed.ForOS("debian"))
}

func TestLoadFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFeed), 0o644))

	feed, err := LoadFeed(path)
	require.NoError(t, err)
	assert.Len(t, feed.Releases, 2)

	_, err = LoadFeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseFeedRejectsMalformedYAML(t *testing.T) {
	_, err := ParseFeed([]byte("releases: {not a list"))
	assert.Error(t, err)
}

func TestRecordToRelease(t *testing.T) {
	feed, err := ParseFeed([]byte(sampleFeed))
	require.NoError(t, err)

	release, err := feed.Releases[1].ToRelease()
	require.NoError(t, err)

	assert.Equal(t, "red-hat-enterprise-linux@9.0.0:9", release.ID())
	assert.Equal(t, "2022-05-17", release.ReleaseDate.Format("2006-01-02"))

	w, ok := release.Support.Channel("Standard")
	require.True(t, ok)
	assert.True(t, w.LTS)
	assert.Equal(t, "2035-05-31", w.EndOfLife().Format("2006-01-02"))
}

func TestRecordToReleaseRejectsBadVersion(t *testing.T) {
	rec := ReleaseRecord{OS: "windows", ReleaseLabel: "x", Version: "nope", ReleaseDate: "2024-01-01"}
	_, err := rec.ToRelease()
	assert.Error(t, err)

	rec = ReleaseRecord{OS: "windows", ReleaseLabel: "x", Version: "1.0.0", ReleaseDate: "01-01-2024"}
	_, err = rec.ToRelease()
	assert.Error(t, err)
}

func TestPopulate(t *testing.T) {
	feed, err := ParseFeed([]byte(sampleFeed))
	require.NoError(t, err)

	c := catalog.New("windows")
	require.NoError(t, Populate(feed.ForOS("windows"))(c))
	assert.Equal(t, 1, c.Len())
	assert.Len(t, c.Get("10.0.26100"), 1)
}

func TestDefaultRegistryResolvesOutOfTheBox(t *testing.T) {
	registry := DefaultRegistry()

	windows := registry.ByOption("WINDOWS")
	require.NotNil(t, windows)
	cat, err := windows.Catalog()
	require.NoError(t, err)
	assert.Len(t, cat.Get("10.0.26200"), 1)

	latest := cat.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "11 25H2", latest.Label)

	server := registry.ByOption("WINDOWSSERVER")
	require.NotNil(t, server)
	serverCat, err := server.Catalog()
	require.NoError(t, err)
	require.Len(t, serverCat.Get("10.0.20348"), 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, serverCat.Get("10.0.20348")[0].IsSupportedAt(now, nil))

	rhel := registry.ByOption("RHEL")
	require.NotNil(t, rhel)
	rhelCat, err := rhel.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 3, rhelCat.Len())
}
