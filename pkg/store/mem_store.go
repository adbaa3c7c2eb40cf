package store

import "src.elv.sh/elvcalc/pkg/store/storedefs"

// NewMemStore returns a Store that keeps entries in memory.
func NewMemStore() storedefs.Store {
	return &memStore{}
}

type memStore struct{ entries []storedefs.Entry }

func (s *memStore) AddEntry(label string, result float64) (int, error) {
	seq := len(s.entries) + 1
	s.entries = append(s.entries, storedefs.Entry{Label: label, Result: result, Seq: seq})
	return seq, nil
}

func (s *memStore) Entries() ([]storedefs.Entry, error) {
	return append([]storedefs.Entry(nil), s.entries...), nil
}

func (s *memStore) LastEntries(n int) ([]storedefs.Entry, error) {
	if n < 0 {
		n = 0
	}
	if n > len(s.entries) {
		n = len(s.entries)
	}
	return append([]storedefs.Entry(nil), s.entries[len(s.entries)-n:]...), nil
}

func (s *memStore) Len() (int, error) { return len(s.entries), nil }

func (s *memStore) Clear() error {
	s.entries = s.entries[:0]
	return nil
}

func (s *memStore) Close() error { return nil }
