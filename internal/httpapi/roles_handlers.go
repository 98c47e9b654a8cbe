package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"jobslice-engine/internal/roles"
	"jobslice-engine/internal/salary"
)

type RolesHandler struct {
	Table            *roles.Table
	DefaultThreshold int
}

// Match handles GET /api/roles/match — the unranked set of roles the text
// mentions.
func (h RolesHandler) Match(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_query", "q parameter is required")
		return
	}
	slugs := h.Table.Match(q)
	if slugs == nil {
		slugs = []string{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"roleSlugs": slugs})
}

// Fuzzy handles GET /api/roles/fuzzy — ranked, distance-thresholded matches
// for typo'd input.
func (h RolesHandler) Fuzzy(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_query", "q parameter is required")
		return
	}
	threshold := h.DefaultThreshold
	if v := r.URL.Query().Get("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			WriteError(w, r, http.StatusBadRequest, "invalid_threshold", "threshold must be a non-negative integer")
			return
		}
		threshold = n
	}
	hits := h.Table.FuzzyMatch(q, threshold)
	if hits == nil {
		hits = []roles.FuzzyHit{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"matches": hits})
}

type SalaryHandler struct {
	Parser *salary.Parser
}

type salaryParseRequest struct {
	Fragments    []string `json:"fragments"`
	CurrencyHint string   `json:"currencyHint"`
}

// Parse handles POST /api/salary/parse — normalization of raw scraped salary
// text, used by ingestion tooling.
func (h SalaryHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req salaryParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_body", "body must be JSON with a fragments array")
		return
	}
	WriteJSON(w, http.StatusOK, h.Parser.Parse(req.Fragments, req.CurrencyHint))
}
