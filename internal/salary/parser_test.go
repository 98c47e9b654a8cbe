package salary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobslice-engine/internal/salary"
)

func TestParse_RangeWithCurrency(t *testing.T) {
	p := salary.NewParser(nil)

	got := p.Parse([]string{"$90k - $120k per year"}, "")

	require.NotNil(t, got.MinAnnual)
	require.NotNil(t, got.MaxAnnual)
	assert.Equal(t, int64(90_000), *got.MinAnnual)
	assert.Equal(t, int64(120_000), *got.MaxAnnual)
	assert.Equal(t, "USD", got.Currency)
}

func TestParse_ReversedRangeSortsAscending(t *testing.T) {
	p := salary.NewParser(nil)

	// token order in the text must not matter
	got := p.Parse([]string{"$120,000 - $95,000"}, "")

	require.NotNil(t, got.MinAnnual)
	require.NotNil(t, got.MaxAnnual)
	assert.Equal(t, int64(95_000), *got.MinAnnual)
	assert.Equal(t, int64(120_000), *got.MaxAnnual)
}

func TestParse_MonthlyAnnualizesTimesTwelve(t *testing.T) {
	p := salary.NewParser(nil)

	got := p.Parse([]string{"8,000 EUR per month"}, "")

	require.NotNil(t, got.MinAnnual)
	assert.Equal(t, int64(8_000*12), *got.MinAnnual)
	assert.Equal(t, int64(8_000*12), *got.MaxAnnual)
	assert.Equal(t, "EUR", got.Currency)
}

func TestParse_HourlyAnnualizesTimes2080(t *testing.T) {
	p := salary.NewParser(nil)

	got := p.Parse([]string{"45 per hour"}, "usd")

	require.NotNil(t, got.MinAnnual)
	assert.Equal(t, int64(45*2080), *got.MinAnnual)
	assert.Equal(t, "USD", got.Currency)
}

func TestParse_SingleTokenMinEqualsMax(t *testing.T) {
	p := salary.NewParser(nil)

	got := p.Parse([]string{"up to 150k annually"}, "")

	require.NotNil(t, got.MinAnnual)
	assert.Equal(t, int64(150_000), *got.MinAnnual)
	assert.Equal(t, int64(150_000), *got.MaxAnnual)
}

func TestParse_NoNumbersStillDetectsCurrency(t *testing.T) {
	p := salary.NewParser(nil)

	got := p.Parse([]string{"competitive salary in GBP"}, "")

	assert.Nil(t, got.MinAnnual)
	assert.Nil(t, got.MaxAnnual)
	assert.Equal(t, "GBP", got.Currency)
}

func TestParse_CurrencyHintWinsOverText(t *testing.T) {
	p := salary.NewParser(nil)

	got := p.Parse([]string{"100k eur"}, "CAD")

	assert.Equal(t, "CAD", got.Currency)
}

func TestParse_EmptyInput(t *testing.T) {
	p := salary.NewParser(nil)

	got := p.Parse(nil, "")

	assert.Nil(t, got.MinAnnual)
	assert.Nil(t, got.MaxAnnual)
	assert.Empty(t, got.Currency)
}
