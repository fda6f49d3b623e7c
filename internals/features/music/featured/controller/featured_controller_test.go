package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	orderModel "exodus_backend/internals/features/music/ordering/model"
	"exodus_backend/internals/features/music/ordering/service"
	songModel "exodus_backend/internals/features/music/songs/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&songModel.SongModel{},
		&orderModel.FeaturedMusicModel{},
	))

	ctrl := NewFeaturedController(db)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", 1)
		return c.Next()
	})
	app.Patch("/new-music/admin-reorder", ctrl.Reorder)

	return app, db
}

func featureSong(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()
	song := songModel.SongModel{SongName: name, ArtistName: "someone"}
	require.NoError(t, db.Create(&song).Error)
	_, err := service.FeatureSong(db, 1, song.ID)
	require.NoError(t, err)
	return song.ID
}

func reorderRequest(t *testing.T, app *fiber.App, body fiber.Map) int {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPatch, "/new-music/admin-reorder", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestReorderFeaturedEndpoint(t *testing.T) {
	app, db := setupApp(t)
	s1 := featureSong(t, db, "One")
	s2 := featureSong(t, db, "Two")

	status := reorderRequest(t, app, fiber.Map{
		"positions": []fiber.Map{
			{"song_id": s2, "position": 1},
			{"song_id": s1, "position": 2},
		},
	})
	assert.Equal(t, fiber.StatusOK, status)

	entries, err := service.FeaturedSongs(db)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, s2, entries[0].Song.ID)
	assert.Equal(t, s1, entries[1].Song.ID)
}

func TestReorderFeaturedEndpointUnfeaturedSong(t *testing.T) {
	app, db := setupApp(t)
	s1 := featureSong(t, db, "One")

	// Exists as a song but is not on the featured list.
	stranger := songModel.SongModel{SongName: "Stranger", ArtistName: "someone"}
	require.NoError(t, db.Create(&stranger).Error)

	status := reorderRequest(t, app, fiber.Map{
		"positions": []fiber.Map{
			{"song_id": s1, "position": 2},
			{"song_id": stranger.ID, "position": 1},
		},
	})
	assert.Equal(t, fiber.StatusNotFound, status)

	// The valid row in the batch did not move.
	entries, err := service.FeaturedSongs(db)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Position)
}
