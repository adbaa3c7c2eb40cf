// Command elvcalc is an interactive calculator. It evaluates simple
// arithmetic and trigonometric expressions, one per line, and keeps a history
// of the results for the session.
package main

import (
	"os"

	"src.elv.sh/elvcalc/pkg/buildinfo"
	"src.elv.sh/elvcalc/pkg/prog"
	"src.elv.sh/elvcalc/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &shell.Program{})))
}
