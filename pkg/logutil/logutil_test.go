package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.elv.sh/elvcalc/pkg/must"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("[test] ")
	var sb strings.Builder
	SetOutput(&sb)
	t.Cleanup(func() { SetOutput(io.Discard) })

	logger.Println("hello")
	if got := sb.String(); !strings.HasPrefix(got, "[test] ") ||
		!strings.HasSuffix(got, "hello\n") {
		t.Errorf("got log %q", got)
	}
}

func TestSetOutputFile(t *testing.T) {
	logger := GetLogger("[test] ")
	fname := filepath.Join(t.TempDir(), "log")
	must.OK(SetOutputFile(fname))
	logger.Println("to file")
	SetOutput(io.Discard)

	if got := must.ReadFileString(fname); !strings.Contains(got, "to file") {
		t.Errorf("log file has %q", got)
	}
}

func TestSetOutputFile_Error(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no-such-dir", "log"))
	if err == nil || !os.IsNotExist(err) {
		t.Errorf("got error %v, want not-exist error", err)
	}
}
