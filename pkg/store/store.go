// Package store implements the history ledger of a calculator session.
//
// There are two implementations of storedefs.Store: one that keeps entries in
// memory, and one backed by a bolt database in a scratch file. Neither
// outlives the session; the scratch file is removed when the Store is closed.
package store

import (
	"fmt"

	"src.elv.sh/elvcalc/pkg/logutil"
	"src.elv.sh/elvcalc/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// Names of store backends.
const (
	Memory = "memory"
	Bolt   = "bolt"
)

// Kinds lists the names of all store backends.
var Kinds = []string{Memory, Bolt}

// Open opens a store of the given kind. The dir argument is only used by the
// bolt backend, and names the directory to create the scratch file in; if
// empty, the default directory for temporary files is used.
func Open(kind, dir string) (storedefs.Store, error) {
	switch kind {
	case Memory, "":
		return NewMemStore(), nil
	case Bolt:
		return NewTempStore(dir)
	default:
		return nil, fmt.Errorf("unknown store kind %q, must be one of %v", kind, Kinds)
	}
}
