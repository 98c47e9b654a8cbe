package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"jobslice-engine/internal/cache"
	"jobslice-engine/internal/config"
	"jobslice-engine/internal/freetext"
	"jobslice-engine/internal/roles"
	"jobslice-engine/internal/salary"
	"jobslice-engine/internal/store"
)

type Deps struct {
	DB     *store.DB
	Roles  *roles.Table
	Salary *salary.Parser
	Counts *cache.Counts // nil disables count caching
	Cfg    config.Config
	Log    *zap.Logger
}

// NewHandler builds the full boundary: routes wrapped in the middleware
// chain.
func NewHandler(d Deps) http.Handler {
	mux := NewMux(d)
	return Chain(mux,
		RequestID,
		Recover(d.Log),
		AccessLog(d.Log),
		RateLimit(d.Cfg.HTTP.RateLimitPerSec, d.Cfg.HTTP.RateBurst),
	)
}

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	maxAge := d.Cfg.MaxAge()

	jh := JobsHandler{DB: d.DB, Parser: freetext.NewParser(d.Roles), MaxAge: maxAge}
	mux.HandleFunc("/api/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Query,
	}))
	mux.HandleFunc("/api/parse", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.ParseText,
	}))

	rh := RolesHandler{Table: d.Roles, DefaultThreshold: d.Cfg.Roles.FuzzyThreshold}
	mux.HandleFunc("/api/roles/match", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Match,
	}))
	mux.HandleFunc("/api/roles/fuzzy", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Fuzzy,
	}))

	sh := SalaryHandler{Parser: d.Salary}
	mux.HandleFunc("/api/salary/parse", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Parse,
	}))

	// Slice URLs: /jobs and every shape under it.
	slh := SlicesHandler{DB: d.DB, Counts: d.Counts, MaxAge: maxAge}
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: slh.Resolve,
	}))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]any{
			"ok":   true,
			"time": time.Now().Format(time.RFC3339),
		})
	})

	return mux
}
