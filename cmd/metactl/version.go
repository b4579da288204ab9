package main

import (
	"cmp"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Overridden with -ldflags "-X main.version=..." for release builds.
var version = ""

const libraryPath = "github.com/joshuapare/metapatch"

type versionInfo struct {
	Version   string `json:"version"`
	Library   string `json:"library"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"revision,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion() error {
	info := buildVersion()
	if jsonOut {
		return printJSON(info)
	}
	printInfo("metactl %s (%s)\n", info.Version, info.GoVersion)
	printInfo("  metapatch: %s\n", info.Library)
	if info.Revision != "" {
		dirty := ""
		if info.Modified {
			dirty = " (modified)"
		}
		printInfo("  revision: %s%s\n", info.Revision, dirty)
	}
	return nil
}

// buildVersion fills versionInfo from the binary's embedded build info.
func buildVersion() versionInfo {
	info := versionInfo{Version: version, Library: "(devel)", GoVersion: runtime.Version()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		info.Version = cmp.Or(info.Version, "(devel)")
		return info
	}
	info.Version = cmp.Or(info.Version, bi.Main.Version, "(devel)")
	for _, dep := range bi.Deps {
		if dep.Path != libraryPath {
			continue
		}
		if dep.Replace != nil {
			info.Library = dep.Replace.Path
		} else {
			info.Library = dep.Version
		}
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}
