package cpi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankEndToEnd(t *testing.T) {
	catalog := []string{"A", "B", "C"}
	latest := Row{"A": 105.2, "B": 98.7, "C": 101.0}

	got := Rank(catalog, latest, Top, 2, nil)

	require.Len(t, got, 2)
	assert.Equal(t, RankedEntry{Label: "A", Category: "A", Value: 105.2}, got[0])
	assert.Equal(t, RankedEntry{Label: "C", Category: "C", Value: 101.0}, got[1])
}

func TestRankBottomAscending(t *testing.T) {
	catalog := []string{"A", "B", "C"}
	latest := Row{"A": 105.2, "B": 98.7, "C": 101.0}

	got := Rank(catalog, latest, Bottom, 10, nil)

	assert.Equal(t, []float64{98.7, 101.0, 105.2}, EntryValues(got))
}

func TestRankSkipsMissingCategories(t *testing.T) {
	catalog := []string{"A", "Missing", "B", "AlsoMissing", "C"}
	latest := Row{"A": 1, "B": 2, "C": 3}

	got := Rank(catalog, latest, Top, 10, nil)

	require.Len(t, got, 3)
	for _, e := range got {
		assert.NotContains(t, []string{"Missing", "AlsoMissing"}, e.Category)
	}
}

func TestRankZeroAndNegativeCount(t *testing.T) {
	latest := Row{"A": 1}
	assert.Empty(t, Rank([]string{"A"}, latest, Top, 0, nil))
	assert.Empty(t, Rank([]string{"A"}, latest, Top, -3, nil))
	assert.NotNil(t, Rank([]string{"A"}, latest, Top, 0, nil))
}

func TestRankEmptyInputs(t *testing.T) {
	assert.Empty(t, Rank(nil, Row{"A": 1}, Top, 10, nil))
	assert.Empty(t, Rank([]string{"A"}, nil, Bottom, 10, nil))
}

func TestRankStableTies(t *testing.T) {
	catalog := []string{"D", "A", "C", "B"}
	latest := Row{"A": 100, "B": 100, "C": 110, "D": 100}

	top := Rank(catalog, latest, Top, 4, nil)
	assert.Equal(t, []string{"C", "D", "A", "B"}, categories(top))

	bottom := Rank(catalog, latest, Bottom, 4, nil)
	assert.Equal(t, []string{"D", "A", "B", "C"}, categories(bottom))
}

func TestRankSortsOnValueNotLabel(t *testing.T) {
	catalog := []string{"Apples", "Berries"}
	latest := Row{"Apples": 90, "Berries": 120}
	translate := func(s string) string {
		return map[string]string{"Apples": "Zz", "Berries": "Aa"}[s]
	}

	got := Rank(catalog, latest, Top, 2, translate)

	require.Len(t, got, 2)
	assert.Equal(t, "Aa", got[0].Label)
	assert.Equal(t, "Berries", got[0].Category)
	assert.Equal(t, "Zz", got[1].Label)
}

func TestRankDoesNotMutateInputs(t *testing.T) {
	catalog := []string{"A", "B", "C"}
	latest := Row{"A": 3, "B": 1, "C": 2}

	_ = Rank(catalog, latest, Bottom, 2, nil)

	assert.Equal(t, []string{"A", "B", "C"}, catalog)
	assert.Equal(t, Row{"A": 3, "B": 1, "C": 2}, latest)
}

func TestRankTopBottomDisjoint(t *testing.T) {
	var catalog []string
	latest := Row{}
	for i := 0; i < 25; i++ {
		name := fmt.Sprintf("cat-%02d", i)
		catalog = append(catalog, name)
		// interleave so catalog order differs from value order
		latest[name] = 80 + float64((i*7)%25)
	}

	top := Rank(catalog, latest, Top, 10, nil)
	bottom := Rank(catalog, latest, Bottom, 10, nil)

	require.Len(t, top, 10)
	require.Len(t, bottom, 10)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Value, top[i].Value)
		assert.LessOrEqual(t, bottom[i-1].Value, bottom[i].Value)
	}
	assert.Equal(t, 104.0, top[0].Value)
	assert.Equal(t, 80.0, bottom[0].Value)

	seen := make(map[string]bool)
	for _, e := range top {
		seen[e.Category] = true
	}
	for _, e := range bottom {
		assert.False(t, seen[e.Category], "category %s in both rankings", e.Category)
	}
}

func TestRankIsDeterministic(t *testing.T) {
	catalog := []string{"A", "B", "C", "D"}
	latest := Row{"A": 1, "B": 1, "C": 2, "D": 1}
	first := Rank(catalog, latest, Top, 3, nil)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Rank(catalog, latest, Top, 3, nil))
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"", Top, false},
		{"top", Top, false},
		{" TOP ", Top, false},
		{"bottom", Bottom, false},
		{"Bottom", Bottom, false},
		{"middle", Top, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownDirection))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "top", Top.String())
	assert.Equal(t, "bottom", Bottom.String())
}

func TestSelectTrend(t *testing.T) {
	months := []string{"2024-01", "2024-02", "2024-03"}
	rows := map[string]Row{
		"2024-01": {"Eggs": 150.1},
		"2024-02": {"Milk": 120},
		"2024-03": {"Eggs": 152.4},
	}

	got := SelectTrend(months, rows, "Eggs")

	require.Len(t, got, 3)
	assert.Equal(t, "2024-01", got[0].Month)
	require.True(t, got[0].Present())
	assert.Equal(t, 150.1, *got[0].Value)
	assert.Equal(t, "2024-02", got[1].Month)
	assert.False(t, got[1].Present())
	assert.Equal(t, 152.4, *got[2].Value)
	assert.Equal(t, []float64{150.1, 152.4}, TrendValues(got))
}

func TestSelectTrendLengthMatchesSeries(t *testing.T) {
	months := []string{"2023-11", "2023-12", "2024-01", "2024-02"}
	rows := map[string]Row{"2024-01": {"Food": 160}}

	for _, category := range []string{"Food", "Unknown", ""} {
		assert.Len(t, SelectTrend(months, rows, category), len(months))
	}
	assert.Empty(t, SelectTrend(nil, rows, "Food"))
}

func TestSelectTrendValuesAreIndependent(t *testing.T) {
	rows := map[string]Row{"2024-01": {"Food": 160}}
	got := SelectTrend([]string{"2024-01"}, rows, "Food")
	*got[0].Value = 0
	assert.Equal(t, 160.0, rows["2024-01"]["Food"])
}

func TestValueDomain(t *testing.T) {
	lo, hi, ok := ValueDomain([]float64{101.5, 98.2, 130})
	require.True(t, ok)
	assert.InDelta(t, 88.2, lo, 1e-9)
	assert.InDelta(t, 140.0, hi, 1e-9)

	_, _, ok = ValueDomain(nil)
	assert.False(t, ok)
}

func TestChangeFromBase(t *testing.T) {
	assert.InDelta(t, 20.0, ChangeFromBase(120), 1e-9)
	assert.InDelta(t, -15.0, ChangeFromBase(85), 1e-9)
	assert.InDelta(t, 0.0, ChangeFromBase(100), 1e-9)
}

func categories(entries []RankedEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Category)
	}
	return out
}
