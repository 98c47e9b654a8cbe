package store_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobslice-engine/internal/domain"
	"jobslice-engine/internal/store"
)

func i64(v int64) *int64 { return &v }

const window = 30 * 24 * time.Hour

func TestBuildWhere_AlwaysAnchorsFreshness(t *testing.T) {
	w, err := store.BuildWhere(domain.StructuredFilter{}, time.Now(), window)
	require.NoError(t, err)

	assert.True(t, w.Has("expired = 0"))
	assert.True(t, w.Has("posted_at IS NULL AND created_at >="))
}

func TestBuildWhere_BaselineFloorKeepsFlagFallback(t *testing.T) {
	w, err := store.BuildWhere(domain.StructuredFilter{SalaryMin: i64(100_000)}, time.Now(), window)
	require.NoError(t, err)

	assert.True(t, w.Has("salary_min >= ? OR local_100k = 1"))
}

func TestBuildWhere_HighFloorWithdrawsFlagFallback(t *testing.T) {
	// the flag concession is baseline-band-only; above it the check is strict
	w, err := store.BuildWhere(domain.StructuredFilter{SalaryMin: i64(250_000)}, time.Now(), window)
	require.NoError(t, err)

	assert.True(t, w.Has("salary_min >= ?"))
	assert.False(t, w.Has("local_100k"))
}

func TestBuildWhere_LocalEligibleWithoutFloor(t *testing.T) {
	w, err := store.BuildWhere(domain.StructuredFilter{LocalEligible: true}, time.Now(), window)
	require.NoError(t, err)

	assert.True(t, w.Has("local_100k = 1"))
	assert.False(t, w.Has("salary_min >="))
}

func TestBuildWhere_RoleSetIsOrOfContainment(t *testing.T) {
	f := domain.StructuredFilter{RoleSlugs: []string{"data-engineer", "data-scientist"}}
	w, err := store.BuildWhere(f, time.Now(), window)
	require.NoError(t, err)

	assert.True(t, w.Has("role_slug LIKE ? OR role_slug LIKE ?"))
	assert.Contains(t, w.Args, "%data-engineer%")
	assert.Contains(t, w.Args, "%data-scientist%")
}

func TestBuildWhere_OrderingFollowsBand(t *testing.T) {
	low, err := store.BuildWhere(domain.StructuredFilter{SalaryMin: i64(100_000)}, time.Now(), window)
	require.NoError(t, err)
	assert.Contains(t, low.OrderBy, "salary_max DESC")

	high, err := store.BuildWhere(domain.StructuredFilter{SalaryMin: i64(250_000)}, time.Now(), window)
	require.NoError(t, err)
	assert.Contains(t, high.OrderBy, "salary_min DESC")
}

func TestBuildWhere_RejectsInvalidFilter(t *testing.T) {
	_, err := store.BuildWhere(domain.StructuredFilter{RemoteMode: "sometimes"}, time.Now(), window)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "remoteMode", ve.Field)

	_, err = store.BuildWhere(domain.StructuredFilter{
		SalaryMin: i64(200_000), SalaryMax: i64(100_000),
	}, time.Now(), window)
	assert.Error(t, err)
}

func TestSalaryAmount_RejectsBadNumbers(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), 100000.5, -1} {
		_, err := domain.SalaryAmount("salaryMin", v)
		assert.Error(t, err, "value %v", v)
	}

	n, err := domain.SalaryAmount("salaryMin", 125000)
	require.NoError(t, err)
	assert.Equal(t, int64(125_000), n)
}
