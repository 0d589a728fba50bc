// Command lox is the tree-walking interpreter's entrypoint: it wires
// os.Args and the process's real stdio to internal/maincmd.Cmd.
package main

import (
	"os"

	"github.com/mna/lox/internal/maincmd"
	"github.com/mna/mainer"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
