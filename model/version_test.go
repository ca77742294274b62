package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionFull(t *testing.T) {
	v, err := ParseVersion("10.0.26200")
	require.NoError(t, err)
	assert.Equal(t, 10, v.Major)
	assert.Equal(t, 0, v.Minor)
	assert.Equal(t, 26200, v.Build)
	assert.Equal(t, StageRelease, v.Stage)
	assert.Equal(t, 1, v.StageVersion)
	assert.Equal(t, "10.0.26200", v.Raw)
}

func TestParseVersionDefaultsMissingComponents(t *testing.T) {
	v, err := ParseVersion("9")
	require.NoError(t, err)
	assert.Equal(t, 9, v.Major)
	assert.Equal(t, 0, v.Minor)
	assert.Equal(t, 0, v.Build)

	v, err = ParseVersion("3.11")
	require.NoError(t, err)
	assert.Equal(t, 3, v.Major)
	assert.Equal(t, 11, v.Minor)
	assert.Equal(t, 0, v.Build)
}

func TestParseVersionStages(t *testing.T) {
	cases := []struct {
		token        string
		stage        ReleaseStage
		stageVersion int
	}{
		{"2.0.0rc1", StageReleaseCandidate, 1},
		{"2.0.0rc2", StageReleaseCandidate, 2},
		{"1.5.0a", StageAlpha, 1},
		{"1.5.0b3", StageBeta, 3},
		{"6.0.6003sp2", StageServicePack, 2},
		{"1.0.0", StageRelease, 1},
	}
	for _, c := range cases {
		v, err := ParseVersion(c.token)
		require.NoError(t, err, c.token)
		assert.Equal(t, c.stage, v.Stage, c.token)
		assert.Equal(t, c.stageVersion, v.StageVersion, c.token)
	}
}

func TestParseVersionInvalid(t *testing.T) {
	for _, token := range []string{"", "abc", "rc1", "v1.2.3"} {
		_, err := ParseVersion(token)
		require.Error(t, err, token)
		var invalid *InvalidVersionError
		assert.ErrorAs(t, err, &invalid, token)
	}
}

func TestParseVersionInt(t *testing.T) {
	v := ParseVersionInt(11)
	assert.Equal(t, 11, v.Major)
	assert.Equal(t, 0, v.Minor)
	assert.Equal(t, 0, v.Build)
	assert.Equal(t, "11", v.Raw)
}

func TestFindVersionInString(t *testing.T) {
	v, ok := FindVersionInString("Windows 11 Enterprise 10.0.26200")
	require.True(t, ok)
	assert.Equal(t, 11, v.Major)

	v, ok = FindVersionInString("release 2.0.0rc1 is out")
	require.True(t, ok)
	assert.Equal(t, StageReleaseCandidate, v.Stage)

	_, ok = FindVersionInString("no digits here")
	assert.False(t, ok)
}

func TestVersionIdentityIgnoresStage(t *testing.T) {
	final := MustParseVersion("2.0.0")
	rc := MustParseVersion("2.0.0rc1")
	assert.True(t, final.Equal(rc))
	assert.Equal(t, final.Key(), rc.Key())
}

func TestVersionFieldWiseComparison(t *testing.T) {
	v100 := MustParseVersion("1.0.0")
	v200 := MustParseVersion("2.0.0")
	v199 := MustParseVersion("1.9.9")
	v101 := MustParseVersion("1.0.1")

	// The comparison is field-wise, not lexicographic: a higher major with an
	// equal build does not count as strictly greater.
	assert.False(t, v200.GreaterThan(v100))
	assert.True(t, v200.GreaterOrEqual(v100))
	assert.True(t, v101.GreaterThan(v100))
	assert.False(t, v200.GreaterOrEqual(v199))
	assert.False(t, v199.GreaterOrEqual(v200))

	assert.True(t, v100.LessThan(v101))
	assert.False(t, v100.LessThan(v200))
	assert.True(t, v100.LessOrEqual(v200))
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.2.3", MustParseVersion("1.2.3").String())
	assert.Equal(t, "2.0.0rc2", MustParseVersion("2.0.0rc2").String())
	assert.Equal(t, "6.0.6003sp2", MustParseVersion("6.0.6003sp2").String())
}

func TestVersionToRecord(t *testing.T) {
	rec := MustParseVersion("2.0.0rc1").ToRecord()
	assert.Equal(t, "2.0.0rc1", rec["raw"])
	assert.Equal(t, 2, rec["major"])
	stage := rec["stage"].(map[string]interface{})
	assert.Equal(t, "RELEASE_CANDIDATE", stage["name"])
	assert.Equal(t, 1, stage["version"])
}
