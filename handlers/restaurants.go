package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-picker-api/models"
	"restaurant-picker-api/picker"
	"restaurant-picker-api/provider"
	"restaurant-picker-api/store"
)

// Handler bundles the collaborators every endpoint needs. They are injected
// at startup instead of living in package globals.
type Handler struct {
	Store    *store.Store
	Provider provider.Provider
	Picker   *picker.Picker
}

func New(s *store.Store, p provider.Provider, pk *picker.Picker) *Handler {
	return &Handler{Store: s, Provider: p, Picker: pk}
}

// SearchQuery is bound from /restaurants/search query parameters. Out-of-range
// rating and price bounds are rejected before any store work; max_results is
// clamped, not rejected.
type SearchQuery struct {
	Location      string   `form:"location" binding:"required"`
	Cuisine       string   `form:"cuisine"`
	MinRating     *float64 `form:"min_rating" binding:"omitempty,gte=0,lte=5"`
	MaxPriceLevel *int     `form:"max_price_level" binding:"omitempty,gte=1,lte=4"`
	MaxResults    int      `form:"max_results"`
}

// SearchRestaurants searches the local database by location text.
func (h *Handler) SearchRestaurants(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurants, err := h.Store.Search(store.SearchParams{
		Location:      q.Location,
		Cuisine:       q.Cuisine,
		MinRating:     q.MinRating,
		MaxPriceLevel: q.MaxPriceLevel,
		Limit:         q.MaxResults,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// NearbyQuery is bound from /restaurants/nearby query parameters. Lat and lng
// are pointers so required validation accepts legitimate zero coordinates.
type NearbyQuery struct {
	Lat           *float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	Lng           *float64 `form:"lng" binding:"required,gte=-180,lte=180"`
	RadiusKm      float64  `form:"radius_km" binding:"omitempty,gt=0"`
	Cuisine       string   `form:"cuisine"`
	MinRating     *float64 `form:"min_rating" binding:"omitempty,gte=0,lte=5"`
	MaxPriceLevel *int     `form:"max_price_level" binding:"omitempty,gte=1,lte=4"`
	MaxResults    int      `form:"max_results"`
}

// NearbyRestaurants searches the database around a center point using the
// bounding-box approximation.
func (h *Handler) NearbyRestaurants(c *gin.Context) {
	var q NearbyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.RadiusKm == 0 {
		q.RadiusKm = 5
	}

	restaurants, err := h.Store.SearchNearPoint(store.GeoSearchParams{
		Lat:           *q.Lat,
		Lng:           *q.Lng,
		RadiusKm:      q.RadiusKm,
		Cuisine:       q.Cuisine,
		MinRating:     q.MinRating,
		MaxPriceLevel: q.MaxPriceLevel,
		Limit:         q.MaxResults,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// DiscoverQuery is bound from /restaurants/discover query parameters.
type DiscoverQuery struct {
	Location   string  `form:"location" binding:"required"`
	RadiusKm   float64 `form:"radius_km" binding:"omitempty,gt=0"`
	Cuisine    string  `form:"cuisine"`
	MaxResults int     `form:"max_results"`
}

// DiscoverRestaurants returns candidates from the configured provider
// instead of the database.
func (h *Handler) DiscoverRestaurants(c *gin.Context) {
	var q DiscoverQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.RadiusKm == 0 {
		q.RadiusKm = 5
	}

	restaurants, err := h.Provider.Search(
		c.Request.Context(), q.Location, q.RadiusKm, q.Cuisine, store.ClampLimit(q.MaxResults),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "provider search failed"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant returns a single restaurant by id.
func (h *Handler) GetRestaurant(c *gin.Context) {
	r, err := h.Store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load restaurant"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// PickRequest is the body for /restaurants/pick. An empty candidate list is
// legal and yields an empty result, so Candidates carries no required rule.
type PickRequest struct {
	Candidates []models.Restaurant `json:"candidates"`
	Limit      int                 `json:"limit"`
	Strategy   string              `json:"strategy"`
}

// PickRestaurants selects a bounded subset of the submitted candidates.
func (h *Handler) PickRestaurants(c *gin.Context) {
	var req PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Limit == 0 {
		req.Limit = picker.DefaultLimit
	}
	if req.Strategy == "" {
		req.Strategy = picker.StrategyWeightedRandom
	}

	c.JSON(http.StatusOK, h.Picker.Pick(req.Candidates, req.Limit, req.Strategy))
}

// GetCuisines lists the distinct cuisines known to the store.
func (h *Handler) GetCuisines(c *gin.Context) {
	cuisines, err := h.Store.Cuisines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cuisines"})
		return
	}
	c.JSON(http.StatusOK, cuisines)
}

// GetCities lists the distinct cities known to the store.
func (h *Handler) GetCities(c *gin.Context) {
	cities, err := h.Store.Cities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cities"})
		return
	}
	c.JSON(http.StatusOK, cities)
}
