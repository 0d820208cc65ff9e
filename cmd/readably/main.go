package main

import (
	"github.com/bnema/readably/internal/cli/cmd"
	"github.com/bnema/readably/internal/domain/build"
)

// Set through -ldflags "-X main.version=..." by release builds.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{Version: version, Commit: commit, BuildDate: buildDate})
	cmd.Execute()
}
