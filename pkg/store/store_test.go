package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"src.elv.sh/elvcalc/pkg/must"
	"src.elv.sh/elvcalc/pkg/store/storetest"
)

func TestMemStore(t *testing.T) {
	storetest.TestHistory(t, NewMemStore())
}

func TestTempStore(t *testing.T) {
	dir := t.TempDir()
	st := must.OK1(NewTempStore(dir))
	storetest.TestHistory(t, st)

	files := must.OK1(filepath.Glob(filepath.Join(dir, "*")))
	if len(files) != 1 {
		t.Fatalf("got files %v in scratch dir, want exactly one", files)
	}
	must.OK(st.Close())
	if _, err := os.Stat(files[0]); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("scratch file still exists after Close, stat error %v", err)
	}
}

func TestNewStore_KeepsFile(t *testing.T) {
	dbname := filepath.Join(t.TempDir(), "db")
	st := must.OK1(NewStore(dbname))
	must.OK1(st.AddEntry("1.0 + 1.0", 2))
	must.OK(st.Close())

	st = must.OK1(NewStore(dbname))
	defer st.Close()
	if n := must.OK1(st.Len()); n != 1 {
		t.Errorf("reopened store has %d entries, want 1", n)
	}
}

func TestNewTempStore_BadDir(t *testing.T) {
	_, err := NewTempStore(filepath.Join(t.TempDir(), "no-such-dir"))
	if err == nil {
		t.Errorf("NewTempStore in missing dir -> nil error")
	}
}

func TestOpen(t *testing.T) {
	for _, kind := range []string{"", Memory, Bolt} {
		st, err := Open(kind, t.TempDir())
		if err != nil {
			t.Errorf("Open(%q) -> error %v", kind, err)
			continue
		}
		must.OK(st.Close())
	}
	if _, err := Open("sqlite", ""); err == nil {
		t.Errorf("Open(%q) -> nil error", "sqlite")
	}
}

func TestUnmarshalEntry_Corrupt(t *testing.T) {
	if _, err := unmarshalEntry(marshalSeq(1), []byte{1, 2}); err != errCorruptEntry {
		t.Errorf("got error %v, want errCorruptEntry", err)
	}
}
