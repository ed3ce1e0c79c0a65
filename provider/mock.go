package provider

import (
	"context"
	"strings"

	"restaurant-picker-api/models"
)

// MockProvider serves hardcoded sample data for development and tests.
// Location and radius are ignored.
type MockProvider struct{}

func NewMock() *MockProvider {
	return &MockProvider{}
}

func (*MockProvider) Name() string {
	return "mock"
}

func (*MockProvider) Search(_ context.Context, _ string, _ float64, cuisine string, maxResults int) ([]models.Restaurant, error) {
	data := sampleRestaurants()

	if cuisine != "" {
		want := strings.ToLower(cuisine)
		filtered := data[:0]
		for _, r := range data {
			if r.Cuisine != nil && strings.ToLower(*r.Cuisine) == want {
				filtered = append(filtered, r)
			}
		}
		data = filtered
	}

	if maxResults > 0 && len(data) > maxResults {
		data = data[:maxResults]
	}
	return data, nil
}

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:         "1",
			Name:       "Pasta Palace",
			Address:    "123 Main St",
			Lat:        52.2297,
			Lng:        21.0122,
			Rating:     fptr(4.5),
			PriceLevel: iptr(2),
			Cuisine:    sptr("italian"),
			Source:     "mock",
			NumReviews: iptr(120),
			URL:        sptr("https://example.com/pasta-palace"),
		},
		{
			ID:         "2",
			Name:       "Sushi Garden",
			Address:    "456 Sakura Ave",
			Lat:        52.23,
			Lng:        21.01,
			Rating:     fptr(4.7),
			PriceLevel: iptr(3),
			Cuisine:    sptr("japanese"),
			Source:     "mock",
			NumReviews: iptr(200),
			URL:        sptr("https://example.com/sushi-garden"),
		},
		{
			ID:         "3",
			Name:       "Budget Bites",
			Address:    "789 Cheap St",
			Lat:        52.231,
			Lng:        21.015,
			Rating:     fptr(4.0),
			PriceLevel: iptr(1),
			Cuisine:    sptr("fast food"),
			Source:     "mock",
			NumReviews: iptr(80),
			URL:        sptr("https://example.com/budget-bites"),
		},
	}
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }
