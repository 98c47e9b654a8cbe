package httpapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"jobslice-engine/internal/domain"
	"jobslice-engine/internal/freetext"
	"jobslice-engine/internal/store"
)

type JobsHandler struct {
	DB     *store.DB
	Parser *freetext.Parser
	MaxAge time.Duration
}

// Query handles GET /api/jobs. A free-text q is parsed first; explicit
// structured params then override whatever the text implied.
func (h JobsHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f domain.StructuredFilter
	if text := strings.TrimSpace(q.Get("q")); text != "" {
		f = h.Parser.Parse(text)
	}
	if err := applyParams(&f, q); err != nil {
		writeFilterError(w, r, err)
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	res, err := h.DB.Query(r.Context(), f, page, pageSize, h.MaxAge)
	if err != nil {
		writeFilterError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// ParseText handles GET /api/parse — the partial filter a free-text query
// resolves to, for SEO tooling and debugging.
func (h JobsHandler) ParseText(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.URL.Query().Get("q"))
	if text == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_query", "q parameter is required")
		return
	}
	WriteJSON(w, http.StatusOK, h.Parser.Parse(text))
}

// applyParams copies structured query params onto the filter, validating
// numeric input before anything reaches the predicate builder.
func applyParams(f *domain.StructuredFilter, q url.Values) error {
	if v := q.Get("role"); v != "" {
		f.RoleSlugs = splitList(v)
	}
	if v := q.Get("skill"); v != "" {
		f.Skills = splitList(v)
	}
	if v := q.Get("salary_min"); v != "" {
		n, err := parseSalaryParam("salary_min", v)
		if err != nil {
			return err
		}
		f.SalaryMin = &n
	}
	if v := q.Get("salary_max"); v != "" {
		n, err := parseSalaryParam("salary_max", v)
		if err != nil {
			return err
		}
		f.SalaryMax = &n
	}
	if v := q.Get("country"); v != "" {
		f.Country = strings.ToUpper(v)
	}
	if v := q.Get("city"); v != "" {
		f.City = strings.ToLower(v)
	}
	if q.Get("remote") == "true" {
		f.RemoteOnly = true
	}
	if v := q.Get("mode"); v != "" {
		f.RemoteMode = v
	}
	if v := q.Get("region"); v != "" {
		f.RemoteRegion = v
	}
	if v := q.Get("seniority"); v != "" {
		f.Seniority = v
	}
	if v := q.Get("employment"); v != "" {
		f.EmploymentTypes = splitList(v)
	}
	if v := q.Get("company"); v != "" {
		f.Company = v
	}
	if q.Get("local_eligible") == "true" {
		f.LocalEligible = true
	}
	return f.Validate()
}

func parseSalaryParam(field, raw string) (int64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Reason: "not a number"}
	}
	return domain.SalaryAmount(field, v)
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeFilterError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		WriteError(w, r, http.StatusBadRequest, "invalid_filter", ve.Error())
		return
	}
	WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
}
