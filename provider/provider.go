// Package provider abstracts where restaurant candidates come from, so the
// API can serve discovery from static data, the local store, or a future
// external source behind one capability.
package provider

import (
	"context"

	"restaurant-picker-api/models"
)

// Provider searches a restaurant source. Callers depend only on this
// interface, never on a concrete variant.
type Provider interface {
	Name() string
	Search(ctx context.Context, location string, radiusKm float64, cuisine string, maxResults int) ([]models.Restaurant, error)
}
