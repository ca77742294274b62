package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workstationEditions() *EditionSet {
	return NewEditionSet(
		NewEdition("Enterprise", "workstation", "E", `Ent[er]{2}prise`),
		NewEdition("Education", "workstation", "E", `[EÉeé]ducation`),
		NewEdition("Home", "workstation", "W", `[Hh]ome`),
		NewEdition("Pro", "workstation", "W", `Pro(?:fession[n]?[ae]l)?`),
	)
}

func TestEditionMatchesAnywhereInText(t *testing.T) {
	set := workstationEditions()

	e := set.Find("Windows 11 Enterprise")
	require.NotNil(t, e)
	assert.Equal(t, "Enterprise", e.Label)

	// Pattern variants cover localized spellings.
	e = set.Find("Windows 10 Professionnel")
	require.NotNil(t, e)
	assert.Equal(t, "Pro", e.Label)

	assert.Nil(t, set.Find("Windows 11 Datacenter"))
}

func TestEditionFindAllPreservesDeclarationOrder(t *testing.T) {
	set := workstationEditions()

	matched := set.FindAll("Windows 11 Pro Education")
	require.Len(t, matched, 2)
	assert.Equal(t, "Education", matched[0].Label)
	assert.Equal(t, "Pro", matched[1].Label)
}

func TestEditionFindByLabel(t *testing.T) {
	set := workstationEditions()

	e := set.FindByLabel("Home")
	require.NotNil(t, e)
	assert.Equal(t, "W", e.Channel)
	assert.Nil(t, set.FindByLabel("Datacenter"))
}

func TestEditionFilters(t *testing.T) {
	set := workstationEditions()

	byChannel := set.FilterByChannel("E")
	require.Len(t, byChannel, 2)
	assert.Equal(t, "Enterprise", byChannel[0].Label)

	byCategory := set.FilterByCategory("workstation")
	assert.Len(t, byCategory, set.Len())
}
