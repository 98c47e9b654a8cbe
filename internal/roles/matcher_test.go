package roles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobslice-engine/internal/roles"
)

func TestMatch_SynonymContainedInQuery(t *testing.T) {
	table := roles.Default()

	got := table.Match("senior swe")

	assert.Contains(t, got, "software-engineer")
}

func TestMatch_DehyphenatedSlugContainment(t *testing.T) {
	table := roles.Default()

	got := table.Match("looking for a data engineer role")

	assert.Contains(t, got, "data-engineer")
}

func TestMatch_QueryContainedInSynonym(t *testing.T) {
	table := roles.Default()

	// "machine learning" is itself a synonym; a shorter query contained in
	// it should still match.
	got := table.Match("machine learning")

	assert.Contains(t, got, "machine-learning-engineer")
}

func TestMatch_IsSetNotRanking(t *testing.T) {
	table := roles.Default()

	got := table.Match("frontend developer or backend developer")

	assert.Contains(t, got, "frontend-engineer")
	assert.Contains(t, got, "backend-engineer")

	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s], "duplicate slug %s", s)
		seen[s] = true
	}
}

func TestMatch_EmptyQuery(t *testing.T) {
	assert.Nil(t, roles.Default().Match("   "))
}

func TestFuzzyMatch_TypoWithinThreshold(t *testing.T) {
	table := roles.Default()

	got := table.FuzzyMatch("data enginer", 2)

	require.NotEmpty(t, got)
	assert.Equal(t, "data-engineer", got[0].Slug)
	assert.Equal(t, 1, got[0].Distance)
}

func TestFuzzyMatch_SortedAscendingByDistance(t *testing.T) {
	table := roles.Default()

	got := table.FuzzyMatch("data scientst", 4)

	require.NotEmpty(t, got)
	assert.Equal(t, "data-scientist", got[0].Slug)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Distance, got[i-1].Distance)
	}
}

func TestFuzzyMatch_ThresholdExcludes(t *testing.T) {
	table := roles.Default()

	got := table.FuzzyMatch("zzzzzzzzzzzzzzzz", 1)

	assert.Empty(t, got)
}

func TestFuzzyMatch_NegativeThreshold(t *testing.T) {
	assert.Nil(t, roles.Default().FuzzyMatch("swe", -1))
}

func TestLoad_OverlayMergesAndAdds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yml")
	overlay := `
engineering:
  - slug: software-engineer
    synonyms: ["code wrangler"]
data:
  - slug: analytics-engineer
    synonyms: ["dbt developer"]
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	table, err := roles.Load(path)
	require.NoError(t, err)

	assert.Contains(t, table.Match("code wrangler"), "software-engineer")
	assert.Contains(t, table.Match("dbt developer"), "analytics-engineer")
	assert.True(t, table.Known("analytics-engineer"))
}

func TestLoad_MissingSlugFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  - synonyms: [\"x\"]\n"), 0o644))

	_, err := roles.Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyPathUsesBuiltins(t *testing.T) {
	table, err := roles.Load("")
	require.NoError(t, err)
	assert.True(t, table.Known("software-engineer"))
}
