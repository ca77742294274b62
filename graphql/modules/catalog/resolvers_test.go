package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oslc/oslc-backend/config"
)

func TestResolveOperatingSystems(t *testing.T) {
	reg := config.DefaultRegistry()

	result, err := ResolveOperatingSystems(reg)
	require.NoError(t, err)

	rows := result.([]map[string]interface{})
	require.Len(t, rows, 3)

	assert.Equal(t, "windows", rows[0]["label"])
	assert.Equal(t, "WINDOWS", rows[0]["option"])
	assert.Equal(t, 7, rows[0]["releases"])
	assert.Contains(t, rows[0]["editions"], "Enterprise")

	assert.Equal(t, "windows-server", rows[1]["label"])
	assert.Equal(t, "red-hat-enterprise-linux", rows[2]["label"])
}

func TestResolveReleasesByStatus(t *testing.T) {
	reg := config.DefaultRegistry()

	all, err := ResolveReleases(reg, "windows-server", "")
	require.NoError(t, err)
	assert.Len(t, all.([]map[string]interface{}), 4)

	supported, err := ResolveReleases(reg, "windows-server", "supported")
	require.NoError(t, err)
	for _, row := range supported.([]map[string]interface{}) {
		assert.Equal(t, true, row["supported"], "release %v", row["id"])
	}

	retired, err := ResolveReleases(reg, "windows-server", "retired")
	require.NoError(t, err)
	for _, row := range retired.([]map[string]interface{}) {
		assert.Equal(t, false, row["supported"], "release %v", row["id"])
	}
}

func TestResolveReleasesUnknownOS(t *testing.T) {
	reg := config.DefaultRegistry()

	_, err := ResolveReleases(reg, "temple-os", "")
	assert.Error(t, err)
}

func TestResolveLatestRelease(t *testing.T) {
	reg := config.DefaultRegistry()

	result, err := ResolveLatestRelease(reg, "windows")
	require.NoError(t, err)

	row := result.(map[string]interface{})
	assert.Equal(t, "11 25H2", row["label"])
	assert.Equal(t, "10.0.26200", row["version"])
	assert.Equal(t, true, row["latest"])

	channels := row["channels"].([]map[string]interface{})
	require.Len(t, channels, 2)
	assert.Equal(t, "E", channels[0]["channel"])
}
