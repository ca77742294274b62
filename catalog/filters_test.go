package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oslc/oslc-backend/model"
)

func TestMaxVersionKeepsHighestTriplet(t *testing.T) {
	candidates := []*model.Release{
		release(t, "app", "1.0.0", "one", ""),
		release(t, "app", "2.0.0", "two", ""),
		release(t, "app", "1.9.9", "almost", ""),
	}

	out := MaxVersion(candidates)
	require.Len(t, out, 1)
	assert.Equal(t, "two", out[0].Label)
}

func TestMaxVersionKeepsAllWithEqualTriplet(t *testing.T) {
	candidates := []*model.Release{
		release(t, "windows", "10.0.19045", "10 22H2", ""),
		release(t, "windows", "10.0.19045", "10 22H2 LTSC", ""),
		release(t, "windows", "10.0.19044", "10 21H2", ""),
	}

	out := MaxVersion(candidates)
	assert.Len(t, out, 2)
}

func TestMaxVersionEmptyInput(t *testing.T) {
	assert.Nil(t, MaxVersion(nil))
}

func TestByLabelMatchesLabelAsPattern(t *testing.T) {
	candidates := []*model.Release{
		release(t, "windows", "10.0.22631", "11 23H2", ""),
		release(t, "windows", "10.0.19045", "10 22H2", ""),
	}

	out := ByLabel("Windows 11 23H2 Enterprise", false)(candidates)
	require.Len(t, out, 1)
	assert.Equal(t, "11 23H2", out[0].Label)
}

func TestByLabelFallbackRestoresInput(t *testing.T) {
	candidates := []*model.Release{
		release(t, "windows", "10.0.22631", "11 23H2", ""),
		release(t, "windows", "10.0.19045", "10 22H2", ""),
	}

	assert.Empty(t, ByLabel("no release label here", false)(candidates))
	assert.Equal(t, candidates, ByLabel("no release label here", true)(candidates))
}

func TestByStatus(t *testing.T) {
	candidates := []*model.Release{
		release(t, "rhel", "9.0.0", "9", "2032-05-31"),
		release(t, "rhel", "7.0.0", "7", "2024-06-30"),
	}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	supported := ByStatus(now, true)(candidates)
	require.Len(t, supported, 1)
	assert.Equal(t, "9", supported[0].Label)

	retired := ByStatus(now, false)(candidates)
	require.Len(t, retired, 1)
	assert.Equal(t, "7", retired[0].Label)
}

func TestByID(t *testing.T) {
	a := release(t, "windows", "10.0.19045", "10 22H2", "")
	b := release(t, "windows", "10.0.19045", "10 22H2 LTSC", "")

	out := ByID(b.ID())([]*model.Release{a, b})
	require.Len(t, out, 1)
	assert.Equal(t, b, out[0])
}

func TestUniqueSingletonSkipsFilters(t *testing.T) {
	only := release(t, "app", "1.0.0", "one", "")
	evaluated := false
	counting := func(in []*model.Release) []*model.Release {
		evaluated = true
		return in
	}

	resolved, residual := Unique([]*model.Release{only}, counting)
	assert.Equal(t, only, resolved)
	assert.Nil(t, residual)
	assert.False(t, evaluated)
}

func TestUniqueStopsOnEmpty(t *testing.T) {
	candidates := []*model.Release{
		release(t, "app", "1.0.0", "one", ""),
		release(t, "app", "2.0.0", "two", ""),
	}
	empty := func([]*model.Release) []*model.Release { return nil }
	laterRan := false
	later := func(in []*model.Release) []*model.Release {
		laterRan = true
		return in
	}

	resolved, residual := Unique(candidates, empty, later)
	assert.Nil(t, resolved)
	assert.Nil(t, residual)
	assert.False(t, laterRan)
}

func TestUniqueStopsOnSingleSurvivor(t *testing.T) {
	candidates := []*model.Release{
		release(t, "app", "1.0.0", "one", ""),
		release(t, "app", "2.0.0", "two", ""),
	}
	laterRan := false
	later := func(in []*model.Release) []*model.Release {
		laterRan = true
		return in
	}

	resolved, residual := Unique(candidates, MaxVersion, later)
	require.NotNil(t, resolved)
	assert.Equal(t, "two", resolved.Label)
	assert.Nil(t, residual)
	assert.False(t, laterRan)
}

func TestUniqueReportsResidualAmbiguity(t *testing.T) {
	candidates := []*model.Release{
		release(t, "windows", "10.0.19045", "10 22H2", ""),
		release(t, "windows", "10.0.19045", "10 22H2", ""),
	}

	resolved, residual := Unique(candidates, MaxVersion)
	assert.Nil(t, resolved)
	assert.Len(t, residual, 2)
}
