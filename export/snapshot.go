// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Persistent store of intermediate growth graphs.
//
// Keys are "snap/<run-id>/<iteration>" with the iteration zero-padded so a
// prefix scan returns snapshots in iteration order. Values are edge lists.

package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/katalvlaran/sirg/core"
)

const snapshotPrefix = "snap/"

// SnapshotStore keeps growth snapshots in a badger database.
// It is safe for concurrent use.
type SnapshotStore struct {
	db *badger.DB
}

// StoreOption configures OpenSnapshotStore.
type StoreOption func(*badger.Options)

// WithInMemory keeps the store in memory; the path is ignored.
func WithInMemory() StoreOption {
	return func(o *badger.Options) {
		*o = o.WithDir("").WithValueDir("").WithInMemory(true)
	}
}

// WithStoreLogger routes badger's own log output to l. Panics on nil.
func WithStoreLogger(l *slog.Logger) StoreOption {
	if l == nil {
		panic("export: WithStoreLogger(nil)")
	}
	return func(o *badger.Options) {
		*o = o.WithLogger(&badgerLogger{logger: l})
	}
}

// OpenSnapshotStore opens (creating if needed) a store rooted at dir.
func OpenSnapshotStore(dir string, opts ...StoreOption) (*SnapshotStore, error) {
	o := badger.DefaultOptions(dir).WithLogger(nil)
	o.MetricsEnabled = false
	for _, opt := range opts {
		opt(&o)
	}
	if !o.InMemory {
		if dir == "" {
			return nil, fmt.Errorf("OpenSnapshotStore: empty directory: %w", os.ErrInvalid)
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("OpenSnapshotStore: %w", err)
		}
	}
	db, err := badger.Open(o)
	if err != nil {
		return nil, fmt.Errorf("OpenSnapshotStore: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// Close releases the database.
func (s *SnapshotStore) Close() error { return s.db.Close() }

func snapshotKey(run uuid.UUID, iteration int) []byte {
	return []byte(fmt.Sprintf("%s%s/%010d", snapshotPrefix, run, iteration))
}

func runPrefix(run uuid.UUID) []byte {
	return []byte(snapshotPrefix + run.String() + "/")
}

// Put stores g as the snapshot of run at iteration, replacing any previous one.
func (s *SnapshotStore) Put(run uuid.UUID, iteration int, g *core.Graph) error {
	var buf bytes.Buffer
	if err := WriteEdgeList(&buf, g); err != nil {
		return fmt.Errorf("SnapshotStore.Put: %w", err)
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey(run, iteration), buf.Bytes())
	})
	if err != nil {
		return fmt.Errorf("SnapshotStore.Put: %w", err)
	}

	return nil
}

// Get loads the snapshot of run at iteration.
//
// Errors: ErrNotFound, ErrFormat for a corrupt value.
func (s *SnapshotStore) Get(run uuid.UUID, iteration int) (*core.Graph, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey(run, iteration))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("SnapshotStore.Get(%s, %d): %w", run, iteration, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("SnapshotStore.Get: %w", err)
	}

	return ReadEdgeList(bytes.NewReader(val))
}

// Iterations lists the saved iterations of run in ascending order.
func (s *SnapshotStore) Iterations(run uuid.UUID) ([]int, error) {
	prefix := runPrefix(run)
	var out []int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			suffix := strings.TrimPrefix(string(it.Item().Key()), string(prefix))
			n, err := strconv.Atoi(suffix)
			if err != nil {
				return fmt.Errorf("key %q: %w", it.Item().Key(), ErrFormat)
			}
			out = append(out, n)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("SnapshotStore.Iterations: %w", err)
	}

	return out, nil
}

// Latest returns the highest saved iteration of run and its graph.
func (s *SnapshotStore) Latest(run uuid.UUID) (int, *core.Graph, error) {
	its, err := s.Iterations(run)
	if err != nil {
		return 0, nil, err
	}
	if len(its) == 0 {
		return 0, nil, fmt.Errorf("SnapshotStore.Latest(%s): %w", run, ErrNotFound)
	}
	last := its[len(its)-1]
	g, err := s.Get(run, last)

	return last, g, err
}

// Sink returns a growth.Sink that stores snapshots under run.
func (s *SnapshotStore) Sink(run uuid.UUID) RunSink {
	return RunSink{store: s, run: run}
}

// RunSink stores snapshots of one run.
type RunSink struct {
	store *SnapshotStore
	run   uuid.UUID
}

// Save implements growth.Sink.
func (r RunSink) Save(ctx context.Context, iteration int, g *core.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.store.Put(r.run, iteration, g)
}

// badgerLogger adapts slog to badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
