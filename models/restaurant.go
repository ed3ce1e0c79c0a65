package models

import "time"

// Restaurant is a single venue listing. Optional attributes are pointers so
// an absent value stays distinguishable from zero when filtering and scoring.
type Restaurant struct {
	ID         string    `json:"id" gorm:"primaryKey;size:255"`
	Name       string    `json:"name" gorm:"not null;index;size:255"`
	Address    string    `json:"address" gorm:"not null;size:500"`
	Lat        float64   `json:"lat" gorm:"not null;index"`
	Lng        float64   `json:"lng" gorm:"not null;index"`
	Rating     *float64  `json:"rating,omitempty"`
	PriceLevel *int      `json:"price_level,omitempty"`
	Cuisine    *string   `json:"cuisine,omitempty" gorm:"index;size:100"`
	Source     string    `json:"source" gorm:"not null;default:manual;size:50"`
	URL        *string   `json:"url,omitempty" gorm:"size:500"`
	NumReviews *int      `json:"num_reviews,omitempty"`
	City       *string   `json:"city,omitempty" gorm:"index;size:100"`
	Country    *string   `json:"country,omitempty" gorm:"size:100"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
