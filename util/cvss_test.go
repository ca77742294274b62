package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCVSSScore(t *testing.T) {
	score := CalculateCVSSScore("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
	assert.InDelta(t, 9.8, score, 0.01)

	assert.Equal(t, 0.0, CalculateCVSSScore(""))
	assert.Equal(t, 0.0, CalculateCVSSScore("not a vector"))
}

func TestHighestCVSSScore(t *testing.T) {
	vectors := []string{
		"CVSS:3.1/AV:L/AC:L/PR:L/UI:N/S:U/C:L/I:N/A:N",
		"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
	}
	assert.InDelta(t, 9.8, HighestCVSSScore(vectors), 0.01)
	assert.Equal(t, 0.0, HighestCVSSScore(nil))
}

func TestGetSeverityRating(t *testing.T) {
	assert.Equal(t, "NONE", GetSeverityRating(0))
	assert.Equal(t, "LOW", GetSeverityRating(2.5))
	assert.Equal(t, "MEDIUM", GetSeverityRating(5.0))
	assert.Equal(t, "HIGH", GetSeverityRating(8.0))
	assert.Equal(t, "CRITICAL", GetSeverityRating(9.9))
}

func TestGetSeverityScore(t *testing.T) {
	assert.Equal(t, 7.0, GetSeverityScore("high"))
	assert.Equal(t, 9.0, GetSeverityScore(" CRITICAL "))
	assert.Equal(t, 0.0, GetSeverityScore("unknown"))
}
