package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobslice-engine/internal/canonical"
	"jobslice-engine/internal/config"
	"jobslice-engine/internal/domain"
	"jobslice-engine/internal/httpapi"
	"jobslice-engine/internal/roles"
	"jobslice-engine/internal/salary"
	"jobslice-engine/internal/store"
)

func i64(v int64) *int64 { return &v }

func newServer(t *testing.T) (*store.DB, http.Handler) {
	t.Helper()
	db, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db.Pool))

	cfg, _ := config.NormalizeAndValidate(config.Config{})
	handler := httpapi.NewHandler(httpapi.Deps{
		DB:     db,
		Roles:  roles.Default(),
		Salary: salary.NewParser(nil),
		Cfg:    cfg,
		Log:    zap.NewNop(),
	})
	return db, handler
}

func TestSliceResolve_LegacyPathRedirectsToCanonical(t *testing.T) {
	db, h := newServer(t)

	f := domain.StructuredFilter{SalaryMin: i64(200_000), RoleSlugs: []string{"data-engineer"}, Country: "US"}
	require.NoError(t, store.UpsertSlice(context.Background(), db.Pool, canonical.Path(f), f))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/data-engineer/us/200k-plus", nil))

	assert.Equal(t, http.StatusPermanentRedirect, rec.Code)
	assert.Equal(t, "/jobs/200k-plus/data-engineer/us", rec.Header().Get("Location"))
}

func TestSliceResolve_CanonicalPathServes(t *testing.T) {
	db, h := newServer(t)

	f := domain.StructuredFilter{SalaryMin: i64(200_000), RoleSlugs: []string{"data-engineer"}, Country: "US"}
	require.NoError(t, store.UpsertSlice(context.Background(), db.Pool, canonical.Path(f), f))

	pt := time.Now().Add(-time.Hour)
	_, err := store.InsertJob(context.Background(), db.Pool, domain.JobRecord{
		Title: "Data Engineer", RoleSlug: "data-engineer", Country: "US",
		SalaryMin: i64(210_000), PostedAt: &pt, CreatedAt: time.Now().Add(-2 * time.Hour),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/200k-plus/data-engineer/us", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Slug string `json:"slug"`
		Jobs struct {
			Total int64 `json:"total"`
		} `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "jobs/200k-plus/data-engineer/us", body.Slug)
	assert.Equal(t, int64(1), body.Jobs.Total)
}

func TestSliceResolve_UnknownPathIs404(t *testing.T) {
	_, h := newServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/no-such-thing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobsQuery_InvalidSalaryIs400(t *testing.T) {
	_, h := newServer(t)

	for _, raw := range []string{"abc", "NaN", "100000.5"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?salary_min="+raw, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "salary_min=%s", raw)
	}
}

func TestJobsQuery_FreeTextPlusOverride(t *testing.T) {
	db, h := newServer(t)

	pt := time.Now().Add(-time.Hour)
	_, err := store.InsertJob(context.Background(), db.Pool, domain.JobRecord{
		Title: "Backend Engineer", RoleSlug: "backend-engineer", Country: "DE",
		SalaryMin: i64(120_000), Remote: true, RemoteMode: domain.ModeRemote,
		PostedAt: &pt, CreatedAt: time.Now().Add(-2 * time.Hour),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?q=remote+backend+engineer&country=de", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var page store.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "backend-engineer", page.Records[0].RoleSlug)
}

func TestRolesEndpoints(t *testing.T) {
	_, h := newServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/roles/match?q=senior+swe", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var matched struct {
		RoleSlugs []string `json:"roleSlugs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matched))
	assert.Contains(t, matched.RoleSlugs, "software-engineer")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/roles/fuzzy?q=data+enginer&threshold=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var fuzzy struct {
		Matches []roles.FuzzyHit `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fuzzy))
	require.NotEmpty(t, fuzzy.Matches)
	assert.Equal(t, "data-engineer", fuzzy.Matches[0].Slug)
}

func TestSalaryParseEndpoint(t *testing.T) {
	_, h := newServer(t)

	body := `{"fragments": ["$120,000 - $95,000"], "currencyHint": ""}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/salary/parse", strings.NewReader(body))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var parsed salary.Parsed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	require.NotNil(t, parsed.MinAnnual)
	assert.Equal(t, int64(95_000), *parsed.MinAnnual)
	assert.Equal(t, int64(120_000), *parsed.MaxAnnual)
	assert.Equal(t, "USD", parsed.Currency)
}

func TestMethodNotAllowed(t *testing.T) {
	_, h := newServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/jobs", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
