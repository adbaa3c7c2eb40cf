package store

import (
	"encoding/binary"
	"errors"
	"math"

	bolt "go.etcd.io/bbolt"
	. "src.elv.sh/elvcalc/pkg/store/storedefs"
)

const bucketHistory = "history"

var errCorruptEntry = errors.New("corrupt history entry")

func init() {
	initDB["initialize history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHistory))
		return err
	}
}

// AddEntry appends an entry to the history.
func (s *dbStore) AddEntry(label string, result float64) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), marshalEntry(label, result))
	})
	return int(seq), err
}

// Entries returns all entries in the history.
func (s *dbStore) Entries() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketHistory)).ForEach(func(k, v []byte) error {
			entry, err := unmarshalEntry(k, v)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
			return nil
		})
	})
	return entries, err
}

// LastEntries returns at most n of the most recent entries, walking the
// history backwards from its end.
func (s *dbStore) LastEntries(n int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketHistory)).Cursor()
		for k, v := c.Last(); k != nil && len(entries) < n; k, v = c.Prev() {
			entry, err := unmarshalEntry(k, v)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, err
}

// Len returns the number of entries in the history.
func (s *dbStore) Len() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketHistory)).Stats().KeyN
		return nil
	})
	return n, err
}

// Clear removes all entries. Recreating the bucket also resets its sequence.
func (s *dbStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(bucketHistory))
		if err != nil {
			return err
		}
		_, err = tx.CreateBucket([]byte(bucketHistory))
		return err
	})
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// An entry is stored as the IEEE 754 bits of the result in big endian,
// followed by the label.
func marshalEntry(label string, result float64) []byte {
	b := make([]byte, 8+len(label))
	binary.BigEndian.PutUint64(b, math.Float64bits(result))
	copy(b[8:], label)
	return b
}

func unmarshalEntry(k, v []byte) (Entry, error) {
	if len(k) != 8 || len(v) < 8 {
		return Entry{}, errCorruptEntry
	}
	return Entry{
		Label:  string(v[8:]),
		Result: math.Float64frombits(binary.BigEndian.Uint64(v)),
		Seq:    int(unmarshalSeq(k)),
	}, nil
}
