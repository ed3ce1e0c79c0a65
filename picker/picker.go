// Package picker selects a bounded subset of candidate restaurants, either
// deterministically by score or by weighted random sampling.
package picker

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"restaurant-picker-api/models"
)

const (
	StrategyTop            = "top"
	StrategyWeightedRandom = "weighted_random"

	// DefaultLimit is the pick size when a request leaves it unset.
	DefaultLimit = 3

	// reviewCap bounds the review-volume influence so one viral venue
	// cannot dominate forever.
	reviewCap = 300.0
	// minWeight keeps zero/negative scores sampleable.
	minWeight = 0.01
)

// Score blends the quality signal (rating), a capped confidence signal
// (review volume), and an affordability penalty into one comparable scalar.
// Absent fields contribute zero.
func Score(r models.Restaurant) float64 {
	var rating float64
	if r.Rating != nil {
		rating = *r.Rating
	}

	var reviews float64
	if r.NumReviews != nil {
		reviews = float64(*r.NumReviews)
	}
	if reviews > reviewCap {
		reviews = reviewCap
	}

	var penalty float64
	if r.PriceLevel != nil && *r.PriceLevel >= 4 {
		penalty = 0.5
	}

	return rating + reviews/reviewCap - penalty
}

// Picker owns the random source used for weighted sampling. The source is
// mutex-guarded so a single Picker can serve concurrent requests.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Picker {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand lets callers seed the sampling source deterministically.
func NewWithRand(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Pick returns min(limit, len(candidates)) restaurants. Strategy "top" is a
// stable sort by score descending; every other strategy name, including
// unrecognized ones, samples without replacement with probability
// proportional to score. An empty candidate list yields an empty result.
func (p *Picker) Pick(candidates []models.Restaurant, limit int, strategy string) []models.Restaurant {
	if len(candidates) == 0 {
		return []models.Restaurant{}
	}

	if limit < 1 {
		limit = 1
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}

	if strategy == StrategyTop {
		sorted := make([]models.Restaurant, len(candidates))
		copy(sorted, candidates)
		sort.SliceStable(sorted, func(i, j int) bool {
			return Score(sorted[i]) > Score(sorted[j])
		})
		return sorted[:limit]
	}

	return p.weightedSample(candidates, limit)
}

// weightedSample draws limit restaurants without replacement. Each round
// picks one item proportional to the weights of the remaining pool, then
// removes it; the next round renormalizes implicitly by summing what's left.
func (p *Picker) weightedSample(candidates []models.Restaurant, limit int) []models.Restaurant {
	available := make([]models.Restaurant, len(candidates))
	copy(available, candidates)

	weights := make([]float64, len(candidates))
	for i, r := range candidates {
		w := Score(r)
		if w < minWeight {
			w = minWeight
		}
		weights[i] = w
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	chosen := make([]models.Restaurant, 0, limit)
	for len(chosen) < limit && len(available) > 0 {
		var total float64
		for _, w := range weights {
			total += w
		}

		x := p.rng.Float64() * total
		idx := len(available) - 1
		for i, w := range weights {
			x -= w
			if x < 0 {
				idx = i
				break
			}
		}

		chosen = append(chosen, available[idx])
		available = append(available[:idx], available[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
	}
	return chosen
}
