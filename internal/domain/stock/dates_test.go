package stock_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_FormatoValido(t *testing.T) {
	d, err := stock.ParseDate("10-01-2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 10, d.Day())
}

func TestParseDate_Invalida(t *testing.T) {
	cases := []string{"", "2024-01-10", "10/01/2024", "32-01-2024", "1-1-2024", "10-13-2024", "abc"}
	for _, c := range cases {
		_, err := stock.ParseDate(c)
		assert.Truef(t, errors.Is(err, domain.ErrInvalidDate), "se esperaba ErrInvalidDate para %q", c)
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	start := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 400; i += 7 {
		want := start.AddDate(0, 0, i)
		got, err := stock.ParseDate(stock.FormatDate(want))
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "round trip de %s", want)
	}
}

func TestAgeInDays_HoyEsCero(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, time.March, 1, 23, 59, 0, 0, loc)
	age, err := stock.AgeInDays(stock.FormatDate(now), now)
	require.NoError(t, err)
	assert.Equal(t, 0, age)
}

func TestAgeInDays_CruzaMesYAnio(t *testing.T) {
	today := time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC)
	age, err := stock.AgeInDays("30-12-2023", today)
	require.NoError(t, err)
	assert.Equal(t, 3, age)

	age, err = stock.AgeInDays("28-02-2024", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, age, "2024 es bisiesto")
}

func TestAgeInDays_Monotona(t *testing.T) {
	today := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	prev := -1 << 31
	for i := -3; i < 60; i++ {
		date := stock.FormatDate(today.AddDate(0, 0, -i))
		age, err := stock.AgeInDays(date, today)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, age, prev)
		assert.Equal(t, i, age)
		prev = age
	}
}

func TestAgeInDays_FechaFuturaEsNegativa(t *testing.T) {
	today := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	age, err := stock.AgeInDays("12-01-2024", today)
	require.NoError(t, err)
	assert.Equal(t, -2, age)
	assert.Equal(t, stock.StatusFresh, stock.Classify(age))
}

func TestAgeInDays_FechaMalFormada(t *testing.T) {
	_, err := stock.AgeInDays("2024/01/10", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
