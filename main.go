package main

import (
	"errors"
	"os"

	"github.com/agentx-labs/npmbridge/internal/cli"
	"github.com/agentx-labs/npmbridge/internal/runtime"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		var exitErr *runtime.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
