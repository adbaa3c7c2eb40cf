// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"src.elv.sh/elvcalc/pkg/store/storedefs"
)

// TestHistory tests the history functionality of a Store. The Store must be
// empty.
func TestHistory(t *testing.T, store storedefs.Store) {
	t.Helper()

	assertLen(t, store, 0)
	if entries, err := store.LastEntries(10); len(entries) != 0 || err != nil {
		t.Errorf("LastEntries(10) on empty store -> (%v, %v), want (empty, nil)",
			entries, err)
	}

	var want []storedefs.Entry
	for i := 1; i <= 12; i++ {
		label := fmt.Sprintf("%d.0 + 1.0", i)
		seq, err := store.AddEntry(label, float64(i+1))
		if seq != i || err != nil {
			t.Errorf("AddEntry(%q) -> (%v, %v), want (%v, nil)", label, seq, err, i)
		}
		want = append(want, storedefs.Entry{Label: label, Result: float64(i + 1), Seq: i})
	}
	assertLen(t, store, 12)

	entries, err := store.Entries()
	if err != nil {
		t.Errorf("Entries() -> error %v", err)
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("Entries() (-want +got):\n%s", diff)
	}

	for _, n := range []int{0, 1, 10, 12, 20} {
		entries, err := store.LastEntries(n)
		if err != nil {
			t.Errorf("LastEntries(%d) -> error %v", n, err)
		}
		wantN := want[len(want)-min(n, len(want)):]
		if diff := cmp.Diff(wantN, entries, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("LastEntries(%d) (-want +got):\n%s", n, diff)
		}
	}

	if err := store.Clear(); err != nil {
		t.Errorf("Clear() -> error %v", err)
	}
	assertLen(t, store, 0)
	// Clearing an empty store is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on empty store -> error %v", err)
	}

	seq, err := store.AddEntry("√16.0", 4)
	if seq != 1 || err != nil {
		t.Errorf("AddEntry after Clear -> (%v, %v), want (1, nil)", seq, err)
	}
	entries, err = store.LastEntries(10)
	if diff := cmp.Diff([]storedefs.Entry{{Label: "√16.0", Result: 4, Seq: 1}}, entries); diff != "" || err != nil {
		t.Errorf("LastEntries after Clear -> error %v, (-want +got):\n%s", err, diff)
	}
}

func assertLen(t *testing.T, store storedefs.Store, want int) {
	t.Helper()
	if n, err := store.Len(); n != want || err != nil {
		t.Errorf("Len() -> (%v, %v), want (%v, nil)", n, err, want)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
