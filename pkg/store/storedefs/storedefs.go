// Package storedefs contains definitions of the history store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

// Store is an interface satisfied by history ledgers. A Store keeps entries
// in insertion order and is owned by a single session.
type Store interface {
	// AddEntry appends an entry and returns its sequence number.
	AddEntry(label string, result float64) (int, error)
	// Entries returns all entries, oldest first.
	Entries() ([]Entry, error)
	// LastEntries returns at most n of the most recent entries, oldest first.
	LastEntries(n int) ([]Entry, error)
	// Len returns the number of entries.
	Len() (int, error)
	// Clear removes all entries. Sequence numbers start over from 1.
	Clear() error
	// Close releases the resources held by the Store.
	Close() error
}

// Entry is an entry in the history.
type Entry struct {
	Label  string
	Result float64
	Seq    int
}
