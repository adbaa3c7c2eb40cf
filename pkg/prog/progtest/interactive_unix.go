//go:build unix

package progtest

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/creack/pty"
	"src.elv.sh/elvcalc/pkg/prog"
)

// RunInteractive runs a Program with its stdin and stdout connected to a
// pseudo terminal, so that the Program sees an interactive session. The given
// input is typed into the terminal. It returns the exit code of the Program
// and everything written to the terminal, which includes the echo of the
// input.
func RunInteractive(t *testing.T, p prog.Program, input string, args ...string) (int, string) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	readDone := make(chan struct{})
	go func() {
		// Reading from the master returns an error (EIO on Linux) once the
		// slave has been closed; everything before that is in buf.
		io.Copy(&buf, ptmx)
		close(readDone)
	}()
	if _, err := ptmx.WriteString(input); err != nil {
		t.Fatalf("write to pty: %v", err)
	}

	r2, w2, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r2.Close()
	exit := prog.Run([3]*os.File{tty, tty, w2}, append([]string{"elvcalc"}, args...), p)
	w2.Close()
	tty.Close()
	<-readDone
	return exit, buf.String()
}
