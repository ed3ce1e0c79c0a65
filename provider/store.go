package provider

import (
	"context"

	"restaurant-picker-api/models"
	"restaurant-picker-api/store"
)

// StoreProvider is the live variant: it answers discovery from the local
// database. Matching is by location text, so the radius is ignored here.
type StoreProvider struct {
	store *store.Store
}

func NewStore(s *store.Store) *StoreProvider {
	return &StoreProvider{store: s}
}

func (*StoreProvider) Name() string {
	return "database"
}

func (p *StoreProvider) Search(_ context.Context, location string, _ float64, cuisine string, maxResults int) ([]models.Restaurant, error) {
	return p.store.Search(store.SearchParams{
		Location: location,
		Cuisine:  cuisine,
		Limit:    maxResults,
	})
}
