package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingFamily(t *testing.T) {
	cases := []struct {
		text   string
		family string
	}{
		{"Windows 11 Enterprise", "WINDOWS"},
		{"windows server 2022 Datacenter", "WINDOWS"},
		{"Red Hat Enterprise Linux 9", "LINUX"},
		{"RHEL 8.6", "LINUX"},
		{"Ubuntu 22.04 LTS", "LINUX"},
		{"Mac OS X 10.15", "MAC"},
		{"Android OS 14", "ANDROID"},
		{"OpenBSD 7.4", "BSD"},
	}
	for _, c := range cases {
		f := MatchingFamily(c.text)
		require.NotNil(t, f, c.text)
		assert.Equal(t, c.family, f.Name, c.text)
	}
}

func TestMatchingFamilyUnknownText(t *testing.T) {
	assert.Nil(t, MatchingFamily("FooOS 1.0"))
	assert.Nil(t, MatchingFamily(""))
}

func TestMatchingOptionServerBeforeWorkstation(t *testing.T) {
	family, opt := MatchingOption("Windows Server 2022 Standard")
	require.NotNil(t, opt)
	assert.Equal(t, "WINDOWS", family.Name)
	assert.Equal(t, "WINDOWSSERVER", opt.Name)

	family, opt = MatchingOption("Windows 11 Pro")
	require.NotNil(t, opt)
	assert.Equal(t, "WINDOWS", family.Name)
	assert.Equal(t, "WINDOWS", opt.Name)
}

func TestOptionMatchingSubstring(t *testing.T) {
	_, opt := MatchingOption("host runs windows server 2019")
	require.NotNil(t, opt)
	sub, ok := opt.MatchingSubstring("host runs windows server 2019")
	require.True(t, ok)
	assert.Equal(t, "windows server", sub)
}

func TestFamilyByName(t *testing.T) {
	f := FamilyByName("LINUX")
	require.NotNil(t, f)
	assert.Contains(t, f.OptionNames(), "RHEL")
	assert.Nil(t, FamilyByName("AMIGA"))
}
