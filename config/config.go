package config

import (
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"restaurant-picker-api/models"
)

// Config holds all runtime settings. Every field can be overridden through a
// PICKER_* environment variable (PICKER_PORT, PICKER_DB_PATH, ...).
type Config struct {
	Port      string `koanf:"port"`
	DBPath    string `koanf:"db_path"`
	GinMode   string `koanf:"gin_mode"`
	Provider  string `koanf:"provider"`
	SeedCount int    `koanf:"seed_count"`
}

// Load builds the configuration from struct defaults plus the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:      "8080",
		DBPath:    "restaurant_picker.db",
		GinMode:   "debug",
		Provider:  "mock",
		SeedCount: 100,
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(cfg, "koanf"), nil); err != nil {
		return cfg, err
	}
	if err := k.Load(env.Provider("PICKER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PICKER_"))
	}), nil); err != nil {
		return cfg, err
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// OpenDB opens the sqlite database and migrates the restaurants table.
func OpenDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Restaurant{}); err != nil {
		return nil, err
	}
	return db, nil
}
