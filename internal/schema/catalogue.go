// SPDX-License-Identifier: MPL-2.0

package schema

const (
	// DefaultUbuntuFile is the built-in location of the Ubuntu settings file.
	DefaultUbuntuFile = "/etc/ubuntu-wsl.conf"
	// DefaultWSLFile is the built-in location of the WSL settings file.
	DefaultWSLFile = "/etc/wsl.conf"
)

// builtinInstances returns a fresh copy of the catalogue on every call so each
// Registry owns its definitions.
func builtinInstances() []*Instance {
	return []*Instance{
		{
			Type:         InstanceUbuntu,
			FriendlyName: "Ubuntu",
			FileLocation: DefaultUbuntuFile,
			Sections: []*Section{
				section("Motd", "Message of the Day (MOTD)",
					setting("wslnewsenabled", "true", TypeBool, "Enable WSL News",
						"Whether to show the latest WSL news in the message of the day."),
				),
				section("Interop", "Interoperability",
					setting("guiintegration", "false", TypeBool, "GUI Integration",
						"Export DISPLAY so GUI applications can use a Windows X server."),
					setting("audiointegration", "false", TypeBool, "Audio Integration",
						"Export PULSE_SERVER so applications can use a Windows PulseAudio server."),
					setting("advancedipdetection", "false", TypeBool, "Advanced IP Detection",
						"Detect the Windows host IP through the routing table instead of /etc/resolv.conf."),
				),
				section("GUI", "GUI",
					setting("followwintheme", "false", TypeBool, "Follow Windows Theme",
						"Switch the GTK and Qt theme between light and dark with Windows."),
				),
			},
		},
		{
			Type:         InstanceWSL,
			FriendlyName: "WSL",
			FileLocation: DefaultWSLFile,
			Sections: []*Section{
				section("automount", "Auto Mount",
					setting("enabled", "true", TypeBool, "Enabled",
						"Automatically mount fixed Windows drives under the mount root."),
					setting("mountfstab", "true", TypeBool, "Mount /etc/fstab",
						"Process /etc/fstab when the distribution starts."),
					setting("root", "/mnt/", TypePath, "Mount Root",
						"Directory where fixed drives are automatically mounted."),
					setting("options", "", TypeMountOptionList, "Mount Options",
						"Comma-separated mount options applied to every automounted drive."),
				),
				section("network", "Network",
					setting("generatehosts", "true", TypeBool, "Generate Hosts",
						"Let WSL generate /etc/hosts."),
					setting("generateresolvconf", "true", TypeBool, "Generate resolv.conf",
						"Let WSL generate /etc/resolv.conf."),
				),
				section("interop", "Interoperability",
					setting("enabled", "true", TypeBool, "Enabled",
						"Allow launching Windows processes from the distribution."),
					setting("appendwindowspath", "true", TypeBool, "Append Windows Path",
						"Append the Windows PATH to $PATH."),
				),
			},
		},
	}
}

func section(name, friendly string, settings ...*Setting) *Section {
	for _, s := range settings {
		s.Section = name
	}
	return &Section{Name: name, FriendlyName: friendly, Settings: settings}
}

func setting(name, def string, typ SettingType, friendly, tooltip string) *Setting {
	return &Setting{
		Name:         name,
		Default:      def,
		Type:         typ,
		FriendlyName: friendly,
		Tooltip:      tooltip,
	}
}
