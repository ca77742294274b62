package config

import (
	"github.com/oslc/oslc-backend/model"
	"github.com/oslc/oslc-backend/resolver"
)

// Built-in lifecycle data for the operating systems supported out of the
// box. Feed files loaded at startup extend or override these via the
// registry, not by mutating the tables below.
var windowsReleases = []ReleaseRecord{
	{
		OS: "windows", ReleaseLabel: "10 21H2", Version: "10.0.19044", ReleaseDate: "2021-11-16",
		Link: "https://learn.microsoft.com/windows/release-health/status-windows-10-21h2",
		Channels: map[string]ChannelRecord{
			"W": {SecuritySupport: "2023-06-13"},
			"E": {SecuritySupport: "2024-06-11"},
		},
	},
	{
		OS: "windows", ReleaseLabel: "10 22H2", Version: "10.0.19045", ReleaseDate: "2022-10-18",
		Link: "https://learn.microsoft.com/windows/release-health/status-windows-10-22h2",
		Channels: map[string]ChannelRecord{
			"W": {SecuritySupport: "2025-10-14"},
			"E": {SecuritySupport: "2025-10-14", ExtendedSecuritySupport: "2028-10-10"},
		},
	},
	{
		OS: "windows", ReleaseLabel: "11 21H2", Version: "10.0.22000", ReleaseDate: "2021-10-04",
		Link: "https://learn.microsoft.com/windows/release-health/windows11-release-information",
		Channels: map[string]ChannelRecord{
			"W": {SecuritySupport: "2023-10-10"},
			"E": {SecuritySupport: "2024-10-08"},
		},
	},
	{
		OS: "windows", ReleaseLabel: "11 22H2", Version: "10.0.22621", ReleaseDate: "2022-09-20",
		Link: "https://learn.microsoft.com/windows/release-health/windows11-release-information",
		Channels: map[string]ChannelRecord{
			"W": {SecuritySupport: "2024-10-08"},
			"E": {SecuritySupport: "2025-10-14"},
		},
	},
	{
		OS: "windows", ReleaseLabel: "11 23H2", Version: "10.0.22631", ReleaseDate: "2023-10-31",
		Link: "https://learn.microsoft.com/windows/release-health/windows11-release-information",
		Channels: map[string]ChannelRecord{
			"W": {SecuritySupport: "2025-11-11"},
			"E": {SecuritySupport: "2026-11-10"},
		},
	},
	{
		OS: "windows", ReleaseLabel: "11 24H2", Version: "10.0.26100", ReleaseDate: "2024-10-01",
		Link: "https://learn.microsoft.com/windows/release-health/windows11-release-information",
		Channels: map[string]ChannelRecord{
			"W": {SecuritySupport: "2026-10-13"},
			"E": {SecuritySupport: "2027-10-12"},
		},
	},
	{
		OS: "windows", ReleaseLabel: "11 25H2", Version: "10.0.26200", ReleaseDate: "2025-09-30", Latest: true,
		Link: "https://learn.microsoft.com/windows/release-health/windows11-release-information",
		Channels: map[string]ChannelRecord{
			"W": {SecuritySupport: "2027-10-12"},
			"E": {SecuritySupport: "2028-10-10"},
		},
	},
}

var windowsServerReleases = []ReleaseRecord{
	{
		OS: "windows-server", ReleaseLabel: "2016", Version: "10.0.14393", ReleaseDate: "2016-10-15",
		Link: "https://learn.microsoft.com/windows-server/get-started/windows-server-release-info",
		Channels: map[string]ChannelRecord{
			"LTSC": {ActiveSupport: "2022-01-11", SecuritySupport: "2027-01-12", LTS: true},
		},
	},
	{
		OS: "windows-server", ReleaseLabel: "2019", Version: "10.0.17763", ReleaseDate: "2018-11-13",
		Link: "https://learn.microsoft.com/windows-server/get-started/windows-server-release-info",
		Channels: map[string]ChannelRecord{
			"LTSC": {ActiveSupport: "2024-01-09", SecuritySupport: "2029-01-09", LTS: true},
		},
	},
	{
		OS: "windows-server", ReleaseLabel: "2022", Version: "10.0.20348", ReleaseDate: "2021-08-18",
		Link: "https://learn.microsoft.com/windows-server/get-started/windows-server-release-info",
		Channels: map[string]ChannelRecord{
			"LTSC": {ActiveSupport: "2026-10-13", SecuritySupport: "2031-10-14", LTS: true},
		},
	},
	{
		OS: "windows-server", ReleaseLabel: "2025", Version: "10.0.26100", ReleaseDate: "2024-11-01", Latest: true,
		Link: "https://learn.microsoft.com/windows-server/get-started/windows-server-release-info",
		Channels: map[string]ChannelRecord{
			"LTSC": {ActiveSupport: "2029-10-09", SecuritySupport: "2034-10-10", LTS: true},
		},
	},
}

var rhelReleases = []ReleaseRecord{
	{
		OS: "red-hat-enterprise-linux", ReleaseLabel: "7", Version: "7.0.0", ReleaseDate: "2014-06-10",
		Link: "https://access.redhat.com/support/policy/updates/errata",
		Channels: map[string]ChannelRecord{
			"Standard": {ActiveSupport: "2019-08-06", SecuritySupport: "2024-06-30", ExtendedSecuritySupport: "2028-06-30"},
		},
	},
	{
		OS: "red-hat-enterprise-linux", ReleaseLabel: "8", Version: "8.0.0", ReleaseDate: "2019-05-07",
		Link: "https://access.redhat.com/support/policy/updates/errata",
		Channels: map[string]ChannelRecord{
			"Standard": {ActiveSupport: "2024-05-31", SecuritySupport: "2029-05-31", ExtendedSecuritySupport: "2032-05-31", LTS: true},
		},
	},
	{
		OS: "red-hat-enterprise-linux", ReleaseLabel: "9", Version: "9.0.0", ReleaseDate: "2022-05-17", Latest: true,
		Link: "https://access.redhat.com/support/policy/updates/errata",
		Channels: map[string]ChannelRecord{
			"Standard": {ActiveSupport: "2027-05-31", SecuritySupport: "2032-05-31", ExtendedSecuritySupport: "2035-05-31", LTS: true},
		},
	},
}

// WindowsEditions returns the workstation edition table. Channel E covers
// Enterprise grade servicing, channel W the consumer grade one.
func WindowsEditions() *model.EditionSet {
	return model.NewEditionSet(
		model.NewEdition("Enterprise", "workstation", "E", `Ent[er]{2}prise`),
		model.NewEdition("Education", "workstation", "E", `[EÉeé]ducation`),
		model.NewEdition("IoT Enterprise", "workstation", "E", `[Ii][Oo][Tt] Ent[er]{2}prise`),
		model.NewEdition("Home", "workstation", "W", `[Hh]ome`),
		model.NewEdition("Pro", "workstation", "W", `Pro(?:fession[n]?[ae]l)?`),
		model.NewEdition("Pro Education", "workstation", "W", `Pro(?:fession[n]?[ae]l)? [EÉeé]ducation`),
		model.NewEdition("IOT", "workstation", "IOT", `[Ii][Oo][Tt]`),
	)
}

// WindowsServerEditions returns the server edition table. Both editions
// follow the long term servicing channel.
func WindowsServerEditions() *model.EditionSet {
	return model.NewEditionSet(
		model.NewEdition("Standard", "server", "LTSC", `[Ss]tandard`),
		model.NewEdition("Datacenter", "server", "LTSC", `[Dd]atacenter`),
	)
}

// RHELEditions returns the Red Hat Enterprise Linux edition table.
func RHELEditions() *model.EditionSet {
	return model.NewEditionSet(
		model.NewEdition("Standard", "server", "Standard", `[Ss]tandard`),
	)
}

// DefaultRegistry builds the registry of operating systems supported out of
// the box, each backed by its built-in release table.
func DefaultRegistry() *resolver.Registry {
	registry := resolver.NewRegistry()

	registry.Register(resolver.NewOS(
		"ms-windows", "Windows", "windows", "Microsoft Corporation",
		&model.FamilyWindows, "WINDOWS", WindowsEditions(), Populate(windowsReleases)))

	registry.Register(resolver.NewOS(
		"ms-windows-server", "Windows Server", "windows-server", "Microsoft Corporation",
		&model.FamilyWindows, "WINDOWSSERVER", WindowsServerEditions(), Populate(windowsServerReleases)))

	registry.Register(resolver.NewOS(
		"rhel", "Red Hat Enterprise Linux", "red-hat-enterprise-linux", "Red Hat",
		&model.FamilyLinux, "RHEL", RHELEditions(), Populate(rhelReleases)))

	return registry
}
