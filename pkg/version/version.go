// Package version reports which logargs binary is running.
//
// Release builds stamp the values with ldflags:
//
//	-X github.com/Aman-CERP/logargs/pkg/version.Version=v1.2.0
//	-X github.com/Aman-CERP/logargs/pkg/version.Commit=$(git rev-parse --short HEAD)
//	-X github.com/Aman-CERP/logargs/pkg/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
//
// Binaries built with plain `go build` or `go install` fall back to the module
// version and VCS stamps the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const (
	unsetVersion = "dev"
	unsetStamp   = "unknown"
)

// Stamped by ldflags; see the package doc.
var (
	Version = unsetVersion
	Commit  = unsetStamp
	Date    = unsetStamp
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// BuildInfo is structured version information for JSON output.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// String renders the one-line form printed by `logargs version`.
func (b BuildInfo) String() string {
	return fmt.Sprintf("logargs %s (commit: %s, built: %s, go: %s, %s/%s)",
		b.Version, b.Commit, b.Date, b.GoVersion, b.OS, b.Arch)
}

// GetInfo returns the build information of the running binary. Values not
// set through ldflags are filled from the embedded module build info.
func GetInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}

	if info.Version == unsetVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unsetStamp {
				info.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.Date == unsetStamp {
				info.Date = s.Value
			}
		case "vcs.modified":
			if s.Value == "true" && info.Commit != unsetStamp {
				info.Commit += "-dirty"
			}
		}
	}

	return info
}

// String returns GetInfo in its one-line form.
func String() string {
	return GetInfo().String()
}

// Short returns just the version.
func Short() string {
	return GetInfo().Version
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
