// Command seed populates the database with sample restaurant data. Run it
// again with -force to append another batch to a non-empty store.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"restaurant-picker-api/config"
	"restaurant-picker-api/models"
	"restaurant-picker-api/store"
)

type seedCity struct {
	name    string
	country string
	lat     float64
	lng     float64
}

var cities = []seedCity{
	{"New York", "USA", 40.7128, -74.0060},
	{"Warsaw", "Poland", 52.2297, 21.0122},
	{"Tokyo", "Japan", 35.6762, 139.6503},
	{"Paris", "France", 48.8566, 2.3522},
	{"London", "UK", 51.5074, -0.1278},
	{"Berlin", "Germany", 52.5200, 13.4050},
}

var cuisines = []string{
	"italian", "japanese", "chinese", "mexican", "indian", "thai",
	"french", "american", "mediterranean", "korean", "vietnamese",
	"greek", "spanish", "fast food", "pizza", "sushi", "bbq",
}

var namePrefixes = []string{
	"Golden", "Silver", "Royal", "Little", "Grand", "Happy",
	"Spicy", "Rustic", "Urban", "Old Town",
}

var nameSuffixes = []string{
	"Kitchen", "Bistro", "Garden", "House", "Table", "Corner",
	"Grill", "Spoon", "Plate", "Oven",
}

var streets = []string{
	"Main St", "Market St", "High St", "Station Rd", "Park Ave",
	"Church Ln", "Mill Rd", "Bridge St",
}

func main() {
	force := flag.Bool("force", false, "seed even if the database already has restaurants")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	st := store.New(db)

	existing, err := st.Count()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count restaurants")
	}
	if existing > 0 && !*force {
		log.Info().Int64("count", existing).Msg("database already seeded, use -force to add more")
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	restaurants := generateSample(cfg.SeedCount, rng)

	n, err := st.BulkCreate(restaurants)
	if err != nil {
		log.Fatal().Err(err).Msg("bulk insert failed")
	}

	total, err := st.Count()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count restaurants")
	}
	log.Info().Int("inserted", n).Int64("total", total).Msg("seeding complete")
}

func generateSample(count int, rng *rand.Rand) []models.Restaurant {
	restaurants := make([]models.Restaurant, 0, count)
	for i := 0; i < count; i++ {
		city := cities[rng.Intn(len(cities))]
		name := fmt.Sprintf("%s %s", namePrefixes[rng.Intn(len(namePrefixes))], nameSuffixes[rng.Intn(len(nameSuffixes))])
		address := fmt.Sprintf("%d %s, %s", 1+rng.Intn(999), streets[rng.Intn(len(streets))], city.name)

		r := models.Restaurant{
			ID:      uuid.NewString(),
			Name:    name,
			Address: address,
			// Jitter within roughly five kilometers of the city center.
			Lat:     city.lat + (rng.Float64()-0.5)*0.09,
			Lng:     city.lng + (rng.Float64()-0.5)*0.09,
			Source:  "seed",
			City:    sptr(city.name),
			Country: sptr(city.country),
			Cuisine: sptr(cuisines[rng.Intn(len(cuisines))]),
		}

		// Most venues have ratings and reviews; some are unrated, which
		// exercises the absent-value sorting and scoring paths.
		if rng.Float64() < 0.85 {
			r.Rating = fptr(float64(30+rng.Intn(21)) / 10.0)
			r.NumReviews = iptr(rng.Intn(1500))
		}
		if rng.Float64() < 0.9 {
			r.PriceLevel = iptr(1 + rng.Intn(4))
		}

		restaurants = append(restaurants, r)
	}
	return restaurants
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }
