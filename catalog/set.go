package catalog

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// canonicSet records canonical pattern keys in an in-memory LSM store and
// reports whether an isomorphic pattern was already added.
// The zero value is ready to use; call Close when done.
type canonicSet struct {
	db *badger.DB
}

// setMemTableSize keeps the in-memory store small; catalogs hold at most a few hundred keys.
// badger caps a batch at 15% of the memtable, and the value threshold must stay
// below that cap, so it is lowered with the memtable. Keys carry nil values.
const (
	setMemTableSize   = 4 << 20
	setValueThreshold = 1 << 10
)

func (set *canonicSet) autoOpen() error {
	if set.db != nil {
		return nil
	}
	dbOpts := badger.DefaultOptions("").WithInMemory(true).WithMemTableSize(setMemTableSize).
		WithValueThreshold(setValueThreshold)
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	db, err := badger.Open(dbOpts)
	if err != nil {
		return fmt.Errorf("catalog: open canonical set: %w", err)
	}
	set.db = db

	return nil
}

// TryAdd adds p's canonical key. It returns true if no isomorphic pattern was
// present before the call.
func (set *canonicSet) TryAdd(p Pattern) (bool, error) {
	if err := set.autoOpen(); err != nil {
		return false, err
	}
	key := canonicalKey(p)
	added := false
	err := set.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, badger.ErrKeyNotFound):
			added = true
			return txn.Set(key, nil)
		default:
			return err
		}
	})
	if err != nil {
		return false, fmt.Errorf("catalog: canonical set: %w", err)
	}

	return added, nil
}

// Close releases the store; the set can be reused afterwards and starts empty.
func (set *canonicSet) Close() {
	if set.db != nil {
		_ = set.db.Close()
		set.db = nil
	}
}
