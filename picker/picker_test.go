package picker

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-picker-api/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func candidate(id string, rating *float64, reviews, priceLevel *int) models.Restaurant {
	return models.Restaurant{
		ID:         id,
		Name:       "Venue " + id,
		Address:    "1 Test St",
		Lat:        52.0,
		Lng:        21.0,
		Rating:     rating,
		NumReviews: reviews,
		PriceLevel: priceLevel,
		Source:     "test",
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		r    models.Restaurant
		want float64
	}{
		{
			name: "review factor below cap",
			r:    candidate("a", fptr(4.5), iptr(120), iptr(2)),
			want: 4.9,
		},
		{
			name: "review cap and price penalty",
			r:    candidate("b", fptr(4.5), iptr(500), iptr(4)),
			want: 5.0,
		},
		{
			name: "all fields absent",
			r:    candidate("c", nil, nil, nil),
			want: 0.0,
		},
		{
			name: "penalty without rating",
			r:    candidate("d", nil, iptr(600), iptr(4)),
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.r), 1e-9)
		})
	}
}

func TestPickEmptyInput(t *testing.T) {
	p := New()
	got := p.Pick([]models.Restaurant{}, 3, StrategyWeightedRandom)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = p.Pick(nil, 3, StrategyTop)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPickResultLength(t *testing.T) {
	candidates := []models.Restaurant{
		candidate("1", fptr(4.0), nil, nil),
		candidate("2", fptr(3.0), nil, nil),
		candidate("3", fptr(2.0), nil, nil),
		candidate("4", fptr(1.0), nil, nil),
		candidate("5", nil, nil, nil),
	}

	for _, strategy := range []string{StrategyTop, StrategyWeightedRandom} {
		p := NewWithRand(rand.New(rand.NewSource(7)))
		for _, limit := range []int{1, 3, 5, 10} {
			want := limit
			if want > len(candidates) {
				want = len(candidates)
			}
			got := p.Pick(candidates, limit, strategy)
			assert.Len(t, got, want, "strategy=%s limit=%d", strategy, limit)
		}

		// A non-positive limit is floored at one.
		assert.Len(t, p.Pick(candidates, 0, strategy), 1)
		assert.Len(t, p.Pick(candidates, -4, strategy), 1)
	}
}

func TestPickTopIsDeterministicAndSorted(t *testing.T) {
	candidates := []models.Restaurant{
		candidate("low", fptr(2.0), nil, nil),
		candidate("high", fptr(4.8), iptr(300), nil),
		candidate("mid", fptr(4.0), iptr(150), nil),
		candidate("pricey", fptr(4.8), iptr(300), iptr(4)),
	}

	p := New()
	first := p.Pick(candidates, 4, StrategyTop)
	second := p.Pick(candidates, 4, StrategyTop)
	assert.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		assert.GreaterOrEqual(t, Score(first[i-1]), Score(first[i]))
	}
	assert.Equal(t, "high", first[0].ID)
}

func TestPickTopKeepsTieOrder(t *testing.T) {
	// Identical scores must keep their original relative order.
	candidates := []models.Restaurant{
		candidate("tie-a", fptr(4.0), iptr(100), nil),
		candidate("tie-b", fptr(4.0), iptr(100), nil),
		candidate("tie-c", fptr(4.0), iptr(100), nil),
	}

	got := New().Pick(candidates, 3, StrategyTop)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"tie-a", "tie-b", "tie-c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestPickNoDuplicates(t *testing.T) {
	var candidates []models.Restaurant
	for i := 0; i < 8; i++ {
		candidates = append(candidates, candidate(fmt.Sprintf("r-%d", i), fptr(float64(i%5)), nil, nil))
	}

	p := NewWithRand(rand.New(rand.NewSource(11)))
	for trial := 0; trial < 200; trial++ {
		got := p.Pick(candidates, 8, StrategyWeightedRandom)
		seen := make(map[string]bool, len(got))
		for _, r := range got {
			assert.False(t, seen[r.ID], "duplicate id %s in one result", r.ID)
			seen[r.ID] = true
		}
	}
}

func TestWeightedRandomDistribution(t *testing.T) {
	// Scores 2.0 and 1.0 give sampling weights of roughly 2/3 and 1/3.
	candidates := []models.Restaurant{
		candidate("strong", fptr(2.0), nil, nil),
		candidate("weak", fptr(1.0), nil, nil),
	}

	const trials = 10000
	p := NewWithRand(rand.New(rand.NewSource(42)))

	strongFirst := 0
	for i := 0; i < trials; i++ {
		got := p.Pick(candidates, 1, StrategyWeightedRandom)
		require.Len(t, got, 1)
		if got[0].ID == "strong" {
			strongFirst++
		}
	}

	frac := float64(strongFirst) / trials
	assert.InDelta(t, 2.0/3.0, frac, 0.03)
}

func TestUnknownStrategyFallsThroughToWeightedRandom(t *testing.T) {
	// Current behavior: any unrecognized strategy name samples like
	// weighted_random rather than erroring.
	candidates := []models.Restaurant{
		candidate("1", fptr(4.0), nil, nil),
		candidate("2", fptr(3.0), nil, nil),
		candidate("3", fptr(2.0), nil, nil),
	}

	a := NewWithRand(rand.New(rand.NewSource(99)))
	b := NewWithRand(rand.New(rand.NewSource(99)))

	for i := 0; i < 20; i++ {
		got := a.Pick(candidates, 2, "definitely_not_a_strategy")
		want := b.Pick(candidates, 2, StrategyWeightedRandom)
		assert.Equal(t, want, got)
	}
}
