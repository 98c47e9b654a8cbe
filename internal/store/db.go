// Package store is the sqlite-backed record and slice store: schema
// migration, the eligibility-gated query builder, and canonical slice
// resolution. Ingestion and slice seeding write these tables from outside;
// the engine itself only reads, refreshes cached counts and purges expired
// rows.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

type DB struct {
	Pool *sql.DB

	lock *flock.Flock
}

// Open opens the sqlite file and takes a sibling advisory lock so two engine
// processes can't share one database.
func Open(path string) (*DB, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "lock %s", lock.Path())
	}
	if !ok {
		return nil, errors.Newf("database %s is locked by another process", path)
	}

	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	// read-heavy workload; writes are rare (maintenance only)
	pool.SetMaxOpenConns(4)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return &DB{Pool: pool, lock: lock}, nil
}

// OpenMemory opens a throwaway in-memory database, used by tests.
func OpenMemory() (*DB, error) {
	pool, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(1)
	return &DB{Pool: pool}, nil
}

func (d *DB) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	err := d.Pool.Close()
	if d.lock != nil {
		_ = d.lock.Unlock()
	}
	return err
}
