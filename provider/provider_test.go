package provider

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"restaurant-picker-api/models"
	"restaurant-picker-api/store"
)

func TestMockProviderFiltersByCuisine(t *testing.T) {
	p := NewMock()
	assert.Equal(t, "mock", p.Name())

	got, err := p.Search(context.Background(), "warsaw", 5.0, "JAPANESE", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sushi Garden", got[0].Name)

	got, err = p.Search(context.Background(), "warsaw", 5.0, "nonexistent", 20)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMockProviderTruncatesToMaxResults(t *testing.T) {
	p := NewMock()
	got, err := p.Search(context.Background(), "warsaw", 5.0, "", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStoreProviderSearchesDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Restaurant{}))
	st := store.New(db)

	city := "Warsaw"
	require.NoError(t, st.Create(&models.Restaurant{
		ID: "w-1", Name: "Pierogi Place", Address: "1 Nowy Swiat",
		Lat: 52.23, Lng: 21.01, City: &city, Source: "test",
	}))

	p := NewStore(st)
	assert.Equal(t, "database", p.Name())

	got, err := p.Search(context.Background(), "warsaw", 5.0, "", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "w-1", got[0].ID)
}
