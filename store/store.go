// Package store is the search/filter layer over the restaurants table.
package store

import (
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"restaurant-picker-api/models"
)

const (
	// DefaultLimit is used when a caller does not specify a result cap.
	DefaultLimit = 20
	// MaxLimit is the hard ceiling on any result cap.
	MaxLimit = 50

	kmPerDegreeLat = 111.0
	// Floor for the cos(lat) denominator so near-polar searches widen the
	// box instead of dividing by ~0.
	minCosLat = 0.01
)

// ErrNotFound is returned when a restaurant id is absent from the store.
var ErrNotFound = errors.New("restaurant not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SearchParams filters a text-based search. Nil pointer fields mean
// "no filter"; Limit zero means DefaultLimit.
type SearchParams struct {
	Location      string
	Cuisine       string
	MinRating     *float64
	MaxPriceLevel *int
	Limit         int
}

// GeoSearchParams filters a proximity search around a center point.
type GeoSearchParams struct {
	Lat           float64
	Lng           float64
	RadiusKm      float64
	Cuisine       string
	MinRating     *float64
	MaxPriceLevel *int
	Limit         int
}

// ClampLimit maps a requested result cap into [1, MaxLimit], with zero
// falling back to DefaultLimit.
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultLimit
	case limit < 1:
		return 1
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// Search returns restaurants matching the location text and filters, ordered
// by rating then review count (absent values last), truncated to the cap.
// Location matches city, address, or name as a case-insensitive substring.
func (s *Store) Search(p SearchParams) ([]models.Restaurant, error) {
	q := s.db.Model(&models.Restaurant{})
	if p.Location != "" {
		pattern := "%" + strings.ToLower(p.Location) + "%"
		q = q.Where(
			"LOWER(city) LIKE ? OR LOWER(address) LIKE ? OR LOWER(name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	q = applyFilters(q, p.Cuisine, p.MinRating, p.MaxPriceLevel)

	var restaurants []models.Restaurant
	err := q.Order("rating DESC NULLS LAST, num_reviews DESC NULLS LAST").
		Limit(ClampLimit(p.Limit)).
		Find(&restaurants).Error
	return restaurants, err
}

// SearchNearPoint restricts candidates to a bounding box around the center
// before applying the usual filters. The box is an approximation: one degree
// of latitude is taken as 111 km and the longitude delta is widened by
// cos(lat), so candidates near the corners may lie outside the true radius.
func (s *Store) SearchNearPoint(p GeoSearchParams) ([]models.Restaurant, error) {
	latDelta := p.RadiusKm / kmPerDegreeLat

	cosLat := math.Abs(math.Cos(p.Lat * math.Pi / 180))
	if cosLat < minCosLat {
		cosLat = minCosLat
	}
	lngDelta := p.RadiusKm / (kmPerDegreeLat * cosLat)

	q := s.db.Model(&models.Restaurant{}).
		Where("lat BETWEEN ? AND ?", p.Lat-latDelta, p.Lat+latDelta).
		Where("lng BETWEEN ? AND ?", p.Lng-lngDelta, p.Lng+lngDelta)
	q = applyFilters(q, p.Cuisine, p.MinRating, p.MaxPriceLevel)

	var restaurants []models.Restaurant
	err := q.Order("rating DESC NULLS LAST, num_reviews DESC NULLS LAST").
		Limit(ClampLimit(p.Limit)).
		Find(&restaurants).Error
	return restaurants, err
}

func applyFilters(q *gorm.DB, cuisine string, minRating *float64, maxPriceLevel *int) *gorm.DB {
	if cuisine != "" {
		q = q.Where("LOWER(cuisine) = ?", strings.ToLower(cuisine))
	}
	if minRating != nil {
		q = q.Where("rating >= ?", *minRating)
	}
	if maxPriceLevel != nil {
		q = q.Where("price_level <= ?", *maxPriceLevel)
	}
	return q
}

// Get looks up one restaurant by id.
func (s *Store) Get(id string) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// Cuisines returns the distinct non-null cuisines, sorted ascending.
func (s *Store) Cuisines() ([]string, error) {
	out := []string{}
	err := s.db.Model(&models.Restaurant{}).
		Where("cuisine IS NOT NULL").
		Distinct().
		Order("cuisine ASC").
		Pluck("cuisine", &out).Error
	return out, err
}

// Cities returns the distinct non-null cities, sorted ascending.
func (s *Store) Cities() ([]string, error) {
	out := []string{}
	err := s.db.Model(&models.Restaurant{}).
		Where("city IS NOT NULL").
		Distinct().
		Order("city ASC").
		Pluck("city", &out).Error
	return out, err
}

// Create inserts a single restaurant.
func (s *Store) Create(r *models.Restaurant) error {
	return s.db.Create(r).Error
}

// BulkCreate inserts the whole batch in one transaction; any failure rolls
// back every row. Returns the number of rows inserted.
func (s *Store) BulkCreate(restaurants []models.Restaurant) (int, error) {
	if len(restaurants) == 0 {
		return 0, nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&restaurants).Error
	})
	if err != nil {
		return 0, err
	}
	return len(restaurants), nil
}

// Update applies the given column values to a restaurant inside a
// transaction. Missing ids surface as ErrNotFound.
func (s *Store) Update(id string, fields map[string]interface{}) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&r, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&r).Updates(fields).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Delete removes a restaurant by id. Missing ids surface as ErrNotFound.
func (s *Store) Delete(id string) error {
	res := s.db.Delete(&models.Restaurant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of restaurants in the store.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.Restaurant{}).Count(&n).Error
	return n, err
}
