package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"jobslice-engine/internal/canonical"
	"jobslice-engine/internal/domain"
)

// ErrSliceNotFound is terminal: no candidate slug matched a seeded slice.
// Surfaced as a 404 at the boundary, never retried.
var ErrSliceNotFound = errors.New("slice not found")

// ResolveSlice maps raw request segments to the slice they denote. It does
// not re-derive the filter from the path: the slice table accreted rows
// under several historical slug conventions, so resolution generates the
// bounded candidate set and does one IN lookup. The earliest candidate (in
// strategy order) that matched a row is authoritative.
func (d *DB) ResolveSlice(ctx context.Context, segments []string) (domain.CanonicalSlice, error) {
	cands := canonical.Candidates(segments)
	if len(cands) == 0 {
		return domain.CanonicalSlice{}, ErrSliceNotFound
	}

	ph := strings.TrimSuffix(strings.Repeat("?,", len(cands)), ",")
	args := make([]any, len(cands))
	for i, c := range cands {
		args[i] = c
	}

	rows, err := d.Pool.QueryContext(ctx,
		`SELECT slug, filters, job_count, updated_at FROM slices WHERE slug IN (`+ph+`)`, args...)
	if err != nil {
		return domain.CanonicalSlice{}, errors.Wrap(err, "slice lookup")
	}
	defer rows.Close()

	found := map[string]domain.CanonicalSlice{}
	for rows.Next() {
		s, err := scanSlice(rows)
		if err != nil {
			return domain.CanonicalSlice{}, err
		}
		found[s.Slug] = s
	}
	if err := rows.Err(); err != nil {
		return domain.CanonicalSlice{}, err
	}

	for _, c := range cands {
		if s, ok := found[c]; ok {
			return s, nil
		}
	}
	return domain.CanonicalSlice{}, ErrSliceNotFound
}

func scanSlice(rows *sql.Rows) (domain.CanonicalSlice, error) {
	var (
		s          domain.CanonicalSlice
		filtersRaw string
		updatedAt  string
	)
	if err := rows.Scan(&s.Slug, &filtersRaw, &s.JobCount, &updatedAt); err != nil {
		return s, err
	}
	if err := json.Unmarshal([]byte(filtersRaw), &s.Filter); err != nil {
		return s, errors.Wrapf(err, "slice %s: bad filter payload", s.Slug)
	}
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return s, nil
}

// UpsertSlice writes one slice row under its canonical slug. Seeding is an
// external process; this exists for tests and local seeding.
func UpsertSlice(ctx context.Context, db *sql.DB, slug string, f domain.StructuredFilter) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO slices(slug, filters, updated_at) VALUES(?,?,?)
ON CONFLICT(slug) DO UPDATE SET filters = excluded.filters, updated_at = excluded.updated_at;`,
		slug, string(b), time.Now().UTC().Format(time.RFC3339))
	return err
}

// RefreshSliceCounts recomputes every cached job count against the live
// predicate. Runs from the maintenance loop, not the request path.
func (d *DB) RefreshSliceCounts(ctx context.Context, maxAge time.Duration) (int, error) {
	rows, err := d.Pool.QueryContext(ctx, `SELECT slug, filters, job_count, updated_at FROM slices`)
	if err != nil {
		return 0, err
	}
	slices := []domain.CanonicalSlice{}
	for rows.Next() {
		s, err := scanSlice(rows)
		if err != nil {
			rows.Close()
			return 0, err
		}
		slices = append(slices, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	updated := 0
	now := time.Now().UTC().Format(time.RFC3339)
	for _, s := range slices {
		w, err := BuildWhere(s.Filter, time.Now(), maxAge)
		if err != nil {
			return updated, errors.Wrapf(err, "slice %s", s.Slug)
		}
		var count int64
		if err := d.Pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE `+w.SQL(), w.Args...).Scan(&count); err != nil {
			return updated, errors.Wrapf(err, "slice %s", s.Slug)
		}
		if count == s.JobCount {
			continue
		}
		if _, err := d.Pool.ExecContext(ctx,
			`UPDATE slices SET job_count = ?, updated_at = ? WHERE slug = ?`, count, now, s.Slug); err != nil {
			return updated, errors.Wrapf(err, "slice %s", s.Slug)
		}
		updated++
	}
	return updated, nil
}
