package store

import (
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.elv.sh/elvcalc/pkg/errutil"
	"src.elv.sh/elvcalc/pkg/store/storedefs"
)

var initDB = map[string](func(*bolt.Tx) error){}

type dbStore struct {
	db *bolt.DB
	// Removed on Close if not empty.
	scratch string
}

// NewStore creates a Store backed by a bolt database at the given path. The
// file is kept when the Store is closed.
func NewStore(dbname string) (storedefs.Store, error) {
	db, err := bolt.Open(dbname, 0600,
		&bolt.Options{Timeout: time.Second, NoSync: true})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (storedefs.Store, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db: db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// NewTempStore creates a Store backed by a bolt database in a new scratch
// file under dir, or the default directory for temporary files if dir is
// empty. The file is removed when the Store is closed.
func NewTempStore(dir string) (storedefs.Store, error) {
	f, err := os.CreateTemp(dir, "elvcalc-*.db")
	if err != nil {
		return nil, err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return nil, errutil.Multi(err, os.Remove(name))
	}
	st, err := NewStore(name)
	if err != nil {
		return nil, errutil.Multi(err, os.Remove(name))
	}
	st.(*dbStore).scratch = name
	logger.Println("scratch database at", name)
	return st, nil
}

func (s *dbStore) Close() error {
	err := s.db.Close()
	if s.scratch != "" {
		err = errutil.Multi(err, os.Remove(s.scratch))
	}
	return err
}
