// Package build describes the running binary.
package build

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// RepoURL is the project home page.
const RepoURL = "https://github.com/bnema/readably"

const (
	devVersion     = "dev"
	unknownValue   = "unknown"
	shortCommitLen = 7
)

// Info identifies a build. Release builds set the fields through ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Resolve fills placeholder fields from the module build info embedded by the
// Go toolchain, so binaries built with "go install" still report a version.
func (i Info) Resolve() Info {
	return i.resolveFrom(debug.ReadBuildInfo())
}

func (i Info) resolveFrom(bi *debug.BuildInfo, ok bool) Info {
	if i.GoVersion == "" {
		i.GoVersion = runtime.Version()
	}
	if !ok || bi == nil {
		return i
	}

	if isPlaceholder(i.Version) && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if isPlaceholder(i.Commit) {
				i.Commit = s.Value[:min(len(s.Value), shortCommitLen)]
			}
		case "vcs.time":
			if isPlaceholder(i.BuildDate) {
				i.BuildDate = s.Value
			}
		}
	}
	return i
}

// Short is the one-line form printed by --version.
func (i Info) Short() string {
	return fmt.Sprintf("readably %s (%s)", i.Version, i.Commit)
}

func isPlaceholder(v string) bool {
	return v == "" || v == devVersion || v == unknownValue
}
