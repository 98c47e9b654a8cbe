package freetext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobslice-engine/internal/domain"
	"jobslice-engine/internal/freetext"
	"jobslice-engine/internal/roles"
)

func newParser() *freetext.Parser {
	return freetext.NewParser(roles.Default())
}

func TestParse_SeniorMLEngineerScenario(t *testing.T) {
	f := newParser().Parse("Senior ML Engineer $180k remote EU")

	assert.Equal(t, []string{"machine-learning-engineer"}, f.RoleSlugs)
	require.NotNil(t, f.SalaryMin)
	assert.Equal(t, int64(180_000), *f.SalaryMin)
	assert.True(t, f.RemoteOnly)
	assert.Equal(t, domain.ModeRemote, f.RemoteMode)
	// "EU" is not a region keyword; remoteRegion must stay unset.
	assert.Empty(t, f.RemoteRegion)
	assert.Equal(t, "senior", f.Seniority)
}

func TestParse_SalaryBelowBaselineIsDiscarded(t *testing.T) {
	f := newParser().Parse("$92k")

	// discarded, not clamped up to the baseline band
	assert.Nil(t, f.SalaryMin)
}

func TestParse_TakesMaxSalaryToken(t *testing.T) {
	f := newParser().Parse("$120k or even $150k remote")

	require.NotNil(t, f.SalaryMin)
	assert.Equal(t, int64(150_000), *f.SalaryMin)
}

func TestParse_ArrangementPrecedenceOnsiteWins(t *testing.T) {
	// precedence is onsite > hybrid > remote, not first occurrence
	f := newParser().Parse("remote or hybrid or onsite")

	assert.Equal(t, domain.ModeOnsite, f.RemoteMode)
	assert.False(t, f.RemoteOnly)
}

func TestParse_HybridBeatsRemote(t *testing.T) {
	f := newParser().Parse("remote or hybrid welcome")

	assert.Equal(t, domain.ModeHybrid, f.RemoteMode)
	assert.False(t, f.RemoteOnly)
}

func TestParse_RegionLastAssignmentWins(t *testing.T) {
	// region keywords are tested independently; source order of the checks
	// decides which assignment survives. These pin that order down.
	assert.Equal(t, "emea", newParser().Parse("apac emea remote").RemoteRegion)
	assert.Equal(t, "global", newParser().Parse("emea but really anywhere").RemoteRegion)
	assert.Equal(t, "apac", newParser().Parse("apac remote").RemoteRegion)
	assert.Equal(t, "us-only", newParser().Parse("remote us only").RemoteRegion)
}

func TestParse_CountryFirstMatchWins(t *testing.T) {
	f := newParser().Parse("data engineer germany or france")

	assert.Equal(t, "DE", f.Country)
}

func TestParse_ContractKeyword(t *testing.T) {
	f := newParser().Parse("freelance golang work")

	assert.Equal(t, []string{"contract"}, f.EmploymentTypes)
}

func TestParse_UnsetFieldsStayUnset(t *testing.T) {
	f := newParser().Parse("backend engineer")

	assert.Nil(t, f.SalaryMin)
	assert.Empty(t, f.Country)
	assert.Empty(t, f.RemoteMode)
	assert.False(t, f.RemoteOnly)
	assert.Empty(t, f.EmploymentTypes)
	assert.Equal(t, []string{"backend-engineer"}, f.RoleSlugs)
}
