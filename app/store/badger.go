package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	collectionKeyPrefix = "collection:"
	flagKeyPrefix       = "flag:"
)

// BadgerStore persists collections in a Badger database, one key per
// collection. A nil database is a valid construction and behaves as an
// unavailable backend.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore creates a store over db. Pass nil to get a store whose
// operations all report ErrUnavailable without panicking.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Load reads a collection into records. Absent keys and values that fail to
// decode leave records empty and return nil; only a missing backend errors.
func (s *BadgerStore) Load(collection string, records any) error {
	if s.db == nil {
		return ErrUnavailable
	}

	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(collectionKeyPrefix + collection))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read collection %s: %w", collection, err)
		}
		return item.Value(func(val []byte) error {
			decodeCollection(val, records)
			return nil
		})
	})
}

// SaveAll serializes records and replaces the collection value in a single
// transaction.
func (s *BadgerStore) SaveAll(collection string, records any) error {
	if s.db == nil {
		return ErrUnavailable
	}

	data, err := encodeCollection(records)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", collection, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(collectionKeyPrefix+collection), data)
	})
}

// LoadFlag reads a boolean flag; missing, corrupt, or unavailable state all
// read as false.
func (s *BadgerStore) LoadFlag(name string) bool {
	if s.db == nil {
		return false
	}

	var value bool
	_ = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(flagKeyPrefix + name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val) == "true"
			return nil
		})
	})
	return value
}

// SaveFlag persists a boolean flag.
func (s *BadgerStore) SaveFlag(name string, value bool) error {
	if s.db == nil {
		return ErrUnavailable
	}

	data := []byte("false")
	if value {
		data = []byte("true")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(flagKeyPrefix+name), data)
	})
}
