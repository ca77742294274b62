package util

import (
	"testing"

	"github.com/google/osv-scanner/pkg/models"
	"github.com/stretchr/testify/assert"
)

func semverRange(introduced, fixed string) models.Affected {
	return models.Affected{
		Ranges: []models.Range{
			{
				Type: models.RangeSemVer,
				Events: []models.Event{
					{Introduced: introduced},
					{Fixed: fixed},
				},
			},
		},
	}
}

func TestIsVersionAffectedExplicitVersions(t *testing.T) {
	affected := models.Affected{Versions: []string{"10.0.26100", "10.0.22631"}}
	assert.True(t, IsVersionAffected("10.0.26100", affected))
	assert.False(t, IsVersionAffected("10.0.19045", affected))
}

func TestIsVersionAffectedSemverRange(t *testing.T) {
	affected := semverRange("1.0.0", "1.4.2")

	assert.True(t, IsVersionAffected("1.2.0", affected))
	assert.False(t, IsVersionAffected("1.4.2", affected))
	assert.False(t, IsVersionAffected("0.9.0", affected))
}

func TestIsVersionAffectedIntroducedZero(t *testing.T) {
	affected := semverRange("0", "2.0.0")
	assert.True(t, IsVersionAffected("0.1.0", affected))
	assert.False(t, IsVersionAffected("2.0.0", affected))
}

func TestIncompleteRangeNeverMatches(t *testing.T) {
	noUpper := models.Affected{
		Ranges: []models.Range{
			{
				Type:   models.RangeSemVer,
				Events: []models.Event{{Introduced: "1.0.0"}},
			},
		},
	}
	assert.False(t, IsVersionAffected("1.5.0", noUpper))
}

func TestIsVersionAffectedEcosystemParsers(t *testing.T) {
	npmAffected := models.Affected{
		Package: models.Package{Ecosystem: "npm"},
		Ranges: []models.Range{
			{
				Type: models.RangeEcosystem,
				Events: []models.Event{
					{Introduced: "1.0.0"},
					{Fixed: "1.2.0"},
				},
			},
		},
	}
	assert.True(t, IsVersionAffected("1.1.0", npmAffected))
	assert.False(t, IsVersionAffected("1.2.0", npmAffected))

	pypiAffected := models.Affected{
		Package: models.Package{Ecosystem: "PyPI"},
		Ranges: []models.Range{
			{
				Type: models.RangeEcosystem,
				Events: []models.Event{
					{Introduced: "0"},
					{LastAffected: "2.1"},
				},
			},
		},
	}
	assert.True(t, IsVersionAffected("2.0", pypiAffected))
	assert.False(t, IsVersionAffected("2.2", pypiAffected))
}

func TestIsVersionAffectedAny(t *testing.T) {
	all := []models.Affected{
		semverRange("1.0.0", "1.1.0"),
		semverRange("2.0.0", "2.1.0"),
	}
	assert.True(t, IsVersionAffectedAny("2.0.5", all))
	assert.False(t, IsVersionAffectedAny("1.5.0", all))
}
