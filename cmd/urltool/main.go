// urltool is a command-line front end for the urlkit packages: it parses,
// resolves, and inspects URLs per the WHATWG URL Standard.
package main

import (
	"os"

	"github.com/jongio/urlkit/cliout"
)

// Set via ldflags at build time.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		cliout.Error("%s", err)
		os.Exit(1)
	}
}
