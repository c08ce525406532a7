package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/fynda/backend/internal/domain"
)

// BadgerCache is a persistent TTL cache backed by BadgerDB. It serves
// the long-lived aggregate tier, where results should outlive process
// restarts. Entry expiry is handled natively by badger.
type BadgerCache struct {
	db *badger.DB
}

// badgerLoggerAdapter routes badger's internal logging through the
// standard logger with a tag, matching the rest of the service.
type badgerLoggerAdapter struct{}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (badgerLoggerAdapter) Errorf(msg string, args ...interface{}) {
	log.Printf("[BADGER] "+msg, args...)
}
func (badgerLoggerAdapter) Warningf(msg string, args ...interface{}) {
	log.Printf("[BADGER] "+msg, args...)
}
func (badgerLoggerAdapter) Infof(msg string, args ...interface{})  {}
func (badgerLoggerAdapter) Debugf(msg string, args ...interface{}) {}

// NewBadgerCache opens (or creates) a badger database at path. An
// empty path opens an in-memory instance, which is useful in tests.
func NewBadgerCache(path string) (*BadgerCache, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
		opts = badger.DefaultOptions(path)
	}
	opts.Logger = badgerLoggerAdapter{}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger cache: %w", err)
	}
	return &BadgerCache{db: db}, nil
}

// Get retrieves a value. Expired or missing keys return ErrCacheMiss.
func (c *BadgerCache) Get(ctx context.Context, key string) (interface{}, error) {
	var raw []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("reading cache key %s: %w", key, err)
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("decoding cache key %s: %w", key, err)
	}
	return value, nil
}

// Set stores a JSON-encoded value with a TTL enforced by badger.
func (c *BadgerCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding cache key %s: %w", key, err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), data).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

// Delete removes a key.
func (c *BadgerCache) Delete(ctx context.Context, key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close closes the underlying database.
func (c *BadgerCache) Close() error {
	return c.db.Close()
}
