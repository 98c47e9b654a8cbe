package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"

	"jobslice-engine/internal/domain"
)

const jobColumns = `id, title, role_slug, salary_min, salary_max, currency, country, city,
remote, remote_mode, remote_region, company, skills, seniority, employment_type,
industry, experience_level, posted_at, created_at, expired, local_100k`

// Page is one page of results plus the independent total. Count and page
// run as separate statements with no transaction between them: under
// concurrent ingestion they can disagree by a few rows, which is accepted —
// don't retry on a mismatch.
type Page struct {
	Records  []domain.JobRecord `json:"records"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Query compiles the filter and fetches one page and the total count
// concurrently over the identical predicate.
func (d *DB) Query(ctx context.Context, f domain.StructuredFilter, page, pageSize int, maxAge time.Duration) (Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	w, err := BuildWhere(f, time.Now(), maxAge)
	if err != nil {
		return Page{}, err
	}

	out := Page{Page: page, PageSize: pageSize}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query := `SELECT COUNT(*) FROM jobs WHERE ` + w.SQL()
		return d.Pool.QueryRowContext(gctx, query, w.Args...).Scan(&out.Total)
	})
	g.Go(func() error {
		query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + w.SQL() +
			` ORDER BY ` + w.OrderBy + ` LIMIT ? OFFSET ?`
		args := append(append([]any{}, w.Args...), pageSize, (page-1)*pageSize)
		rows, err := d.Pool.QueryContext(gctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out.Records, err = scanJobs(rows)
		return err
	})
	if err := g.Wait(); err != nil {
		return Page{}, err
	}
	if out.Records == nil {
		out.Records = []domain.JobRecord{}
	}
	return out, nil
}

func scanJobs(rows *sql.Rows) ([]domain.JobRecord, error) {
	var out []domain.JobRecord
	for rows.Next() {
		var (
			j          domain.JobRecord
			salaryMin  sql.NullInt64
			salaryMax  sql.NullInt64
			skillsJSON string
			postedAt   sql.NullString
			createdAt  string
			remote     int
			expired    int
			local100k  int
		)
		if err := rows.Scan(
			&j.ID, &j.Title, &j.RoleSlug, &salaryMin, &salaryMax, &j.Currency,
			&j.Country, &j.City, &remote, &j.RemoteMode, &j.RemoteRegion,
			&j.Company, &skillsJSON, &j.Seniority, &j.Employment, &j.Industry,
			&j.Experience, &postedAt, &createdAt, &expired, &local100k,
		); err != nil {
			return nil, err
		}
		if salaryMin.Valid {
			v := salaryMin.Int64
			j.SalaryMin = &v
		}
		if salaryMax.Valid {
			v := salaryMax.Int64
			j.SalaryMax = &v
		}
		j.Remote = remote != 0
		j.Expired = expired != 0
		j.Local100K = local100k != 0
		_ = json.Unmarshal([]byte(skillsJSON), &j.Skills)
		if postedAt.Valid && postedAt.String != "" {
			if t, err := time.Parse(time.RFC3339, postedAt.String); err == nil {
				j.PostedAt = &t
			}
		}
		j.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, j)
	}
	return out, rows.Err()
}

// InsertJob writes one record. Ingestion normally owns writes; this exists
// for tests and local seeding.
func InsertJob(ctx context.Context, db *sql.DB, j domain.JobRecord) (int64, error) {
	skillsB, _ := json.Marshal(j.Skills)
	var postedAt any
	if j.PostedAt != nil {
		postedAt = j.PostedAt.UTC().Format(time.RFC3339)
	}
	createdAt := j.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := db.ExecContext(ctx, `
INSERT INTO jobs(title, role_slug, salary_min, salary_max, currency, country, city,
  remote, remote_mode, remote_region, company, skills, seniority, employment_type,
  industry, experience_level, posted_at, created_at, expired, local_100k)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		j.Title, j.RoleSlug, nullableInt(j.SalaryMin), nullableInt(j.SalaryMax),
		j.Currency, j.Country, j.City, boolInt(j.Remote), j.RemoteMode,
		j.RemoteRegion, j.Company, string(skillsB), j.Seniority, j.Employment,
		j.Industry, j.Experience, postedAt, createdAt.UTC().Format(time.RFC3339),
		boolInt(j.Expired), boolInt(j.Local100K))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// PurgeExpired deletes rows flagged expired, plus anything so old it can
// never pass the freshness gate again.
func (d *DB) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention).Format(time.RFC3339)
	res, err := d.Pool.ExecContext(ctx, `
DELETE FROM jobs
WHERE expired = 1
   OR (created_at < ? AND (posted_at IS NULL OR posted_at < ?));
`, cutoff, cutoff)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func nullableInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
