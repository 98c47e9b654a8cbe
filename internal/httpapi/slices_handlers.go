package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"jobslice-engine/internal/cache"
	"jobslice-engine/internal/canonical"
	"jobslice-engine/internal/domain"
	"jobslice-engine/internal/store"
)

type SlicesHandler struct {
	DB     *store.DB
	Counts *cache.Counts
	MaxAge time.Duration
}

type sliceResponse struct {
	Slug     string                  `json:"slug"`
	Filter   domain.StructuredFilter `json:"filter"`
	JobCount int64                   `json:"jobCount"`
	Jobs     store.Page              `json:"jobs"`
}

// Resolve handles GET /jobs/{segments...}. Any historically valid slug shape
// resolves to its slice; a request whose normalized path differs from the
// canonical path for the resolved filters gets a permanent redirect there,
// so only one URL per semantic query ever serves content.
func (h SlicesHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	slice, err := h.DB.ResolveSlice(r.Context(), segments)
	if err != nil {
		if errors.Is(err, store.ErrSliceNotFound) {
			WriteError(w, r, http.StatusNotFound, "slice_not_found", "no such listing slice")
			return
		}
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	canon := canonical.Path(slice.Filter)
	requested := canonicalizeRequest(segments)
	if requested != canon {
		http.Redirect(w, r, "/"+canon, http.StatusPermanentRedirect)
		return
	}

	count, ok := h.Counts.Get(r.Context(), slice.Slug)
	if !ok {
		count = slice.JobCount
		h.Counts.Set(r.Context(), slice.Slug, count)
	}

	page, err := h.DB.Query(r.Context(), slice.Filter, 1, 0, h.MaxAge)
	if err != nil {
		writeFilterError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, sliceResponse{
		Slug:     slice.Slug,
		Filter:   slice.Filter,
		JobCount: count,
		Jobs:     page,
	})
}

func canonicalizeRequest(segments []string) string {
	norm := canonical.NormalizeSegments(segments)
	return "jobs/" + strings.Join(norm, "/")
}
