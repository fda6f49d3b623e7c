package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	artistModel "exodus_backend/internals/features/music/artists/model"
	orderModel "exodus_backend/internals/features/music/ordering/model"
	"exodus_backend/internals/features/music/ordering/service"
	songModel "exodus_backend/internals/features/music/songs/model"
	videoModel "exodus_backend/internals/features/music/videos/model"
)

// stubUploader satisfies media.Uploader without an image host; deleted
// records every URL the controller cleans up.
type stubUploader struct {
	deleted []string
}

func (s *stubUploader) UploadArtistBanner(ctx context.Context, file *multipart.FileHeader, artistName string) (string, error) {
	return "https://img.test/banner.webp", nil
}

func (s *stubUploader) UploadArtistImage(ctx context.Context, file *multipart.FileHeader, artistName string) (string, error) {
	return "https://img.test/profile.webp", nil
}

func (s *stubUploader) UploadSongCoverArt(ctx context.Context, file *multipart.FileHeader, songName, artistName string) (string, error) {
	return "https://img.test/cover.webp", nil
}

func (s *stubUploader) UploadPlaylistCoverArt(ctx context.Context, file *multipart.FileHeader, playlistName string) (string, error) {
	return "https://img.test/playlist.webp", nil
}

func (s *stubUploader) DeleteImage(ctx context.Context, imageURL string) error {
	s.deleted = append(s.deleted, imageURL)
	return nil
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *stubUploader) {
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
		&artistModel.ArtistModel{},
		&songModel.SongModel{},
		&videoModel.VideoModel{},
		&orderModel.ArtistSongOrderModel{},
		&orderModel.ArtistVideoOrderModel{},
		&orderModel.FeaturedMusicModel{},
	))

	up := &stubUploader{}
	ctrl := NewArtistController(db, up)

	app := fiber.New()
	// Stands in for the auth middleware.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", 1)
		return c.Next()
	})
	app.Get("/artists/:artist_id", ctrl.GetByID)
	app.Delete("/artists/admin-delete-artist/:artist_id", ctrl.Delete)
	app.Patch("/artists/:artist_id/admin-reorder-songs", ctrl.ReorderSongs)
	app.Patch("/artists/:artist_id/admin-reorder-videos", ctrl.ReorderVideos)

	return app, db, up
}

func seedArtistWithSongs(t *testing.T, db *gorm.DB, count int) (artistID int, songIDs []int) {
	t.Helper()
	artist := artistModel.ArtistModel{ArtistName: "Nova", Genres: datatypes.JSON([]byte(`["pop"]`))}
	require.NoError(t, db.Create(&artist).Error)

	for i := 0; i < count; i++ {
		song := songModel.SongModel{
			SongName:   fmt.Sprintf("Track %d", i+1),
			ArtistName: artist.ArtistName,
			ArtistID:   &artist.ID,
		}
		require.NoError(t, db.Create(&song).Error)
		_, err := service.AttachSong(db, artist.ID, song.ID)
		require.NoError(t, err)
		songIDs = append(songIDs, song.ID)
	}
	return artist.ID, songIDs
}

func patchJSON(t *testing.T, app *fiber.App, url string, body any) int {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPatch, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestReorderSongsEndpoint(t *testing.T) {
	app, db, _ := setupApp(t)
	artistID, songs := seedArtistWithSongs(t, db, 3)

	status := patchJSON(t, app, fmt.Sprintf("/artists/%d/admin-reorder-songs", artistID), fiber.Map{
		"items": []fiber.Map{
			{"id": songs[2], "position": 1},
			{"id": songs[0], "position": 2},
			{"id": songs[1], "position": 3},
		},
	})
	assert.Equal(t, fiber.StatusOK, status)

	ordered, err := service.OrderedSongs(db, artistID)
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, songs[2], ordered[0].ID)
	assert.Equal(t, songs[0], ordered[1].ID)
	assert.Equal(t, songs[1], ordered[2].ID)
}

func TestReorderSongsEndpointUnknownArtist(t *testing.T) {
	app, _, _ := setupApp(t)

	status := patchJSON(t, app, "/artists/999/admin-reorder-songs", fiber.Map{
		"items": []fiber.Map{{"id": 1, "position": 1}},
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestReorderSongsEndpointForeignSong(t *testing.T) {
	app, db, _ := setupApp(t)
	artistID, songs := seedArtistWithSongs(t, db, 1)
	otherID, otherSongs := seedArtistWithSongs(t, db, 1)

	status := patchJSON(t, app, fmt.Sprintf("/artists/%d/admin-reorder-songs", artistID), fiber.Map{
		"items": []fiber.Map{
			{"id": songs[0], "position": 2},
			{"id": otherSongs[0], "position": 1},
		},
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// Neither artist's ordering moved.
	ordered, err := service.OrderedSongs(db, artistID)
	require.NoError(t, err)
	require.NotNil(t, ordered[0].DisplayOrder)
	assert.Equal(t, 1, *ordered[0].DisplayOrder)

	ordered, err = service.OrderedSongs(db, otherID)
	require.NoError(t, err)
	require.NotNil(t, ordered[0].DisplayOrder)
	assert.Equal(t, 1, *ordered[0].DisplayOrder)
}

func TestReorderSongsEndpointRejectsEmptyBatch(t *testing.T) {
	app, db, _ := setupApp(t)
	artistID, _ := seedArtistWithSongs(t, db, 1)

	status := patchJSON(t, app, fmt.Sprintf("/artists/%d/admin-reorder-songs", artistID), fiber.Map{
		"items": []fiber.Map{},
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetArtistDetailOrdering(t *testing.T) {
	app, db, _ := setupApp(t)
	artistID, songs := seedArtistWithSongs(t, db, 2)

	// One extra owned song that was never placed.
	unplaced := songModel.SongModel{SongName: "Unplaced", ArtistName: "Nova", ArtistID: &artistID}
	require.NoError(t, db.Create(&unplaced).Error)

	require.NoError(t, service.ReorderSongs(db, 1, artistID, []service.PositionUpdate{
		{ChildID: songs[1], Position: 1},
		{ChildID: songs[0], Position: 2},
	}))

	req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/artists/%d", artistID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Songs []struct {
				ID           int  `json:"id"`
				DisplayOrder *int `json:"display_order"`
			} `json:"songs"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	require.Len(t, envelope.Data.Songs, 3)
	assert.Equal(t, songs[1], envelope.Data.Songs[0].ID)
	assert.Equal(t, songs[0], envelope.Data.Songs[1].ID)
	assert.Equal(t, unplaced.ID, envelope.Data.Songs[2].ID)
	assert.Nil(t, envelope.Data.Songs[2].DisplayOrder)
}

func TestGetArtistDetailNotFound(t *testing.T) {
	app, _, _ := setupApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/artists/12345", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Deleting an artist with two ordered songs and one ordered video must take
// down every order entry, the featured entry of its songs, the child rows,
// and the stored images.
func TestDeleteArtistCascades(t *testing.T) {
	app, db, up := setupApp(t)

	artist := artistModel.ArtistModel{
		ArtistName:     "Nova",
		BannerImageURL: "https://img.test/nova_banner.webp",
		ImageURL:       "https://img.test/nova_profile.webp",
		Genres:         datatypes.JSON([]byte(`["pop"]`)),
	}
	require.NoError(t, db.Create(&artist).Error)

	var songIDs []int
	for i := 0; i < 2; i++ {
		song := songModel.SongModel{
			SongName:    fmt.Sprintf("Track %d", i+1),
			ArtistName:  artist.ArtistName,
			ArtistID:    &artist.ID,
			CoverArtURL: fmt.Sprintf("https://img.test/track_%d_cover.webp", i+1),
		}
		require.NoError(t, db.Create(&song).Error)
		_, err := service.AttachSong(db, artist.ID, song.ID)
		require.NoError(t, err)
		songIDs = append(songIDs, song.ID)
	}

	video := videoModel.VideoModel{
		VideoName:  "Live Session",
		VideoLink:  "https://youtu.be/dQw4w9WgXcQ",
		ArtistName: artist.ArtistName,
		ArtistID:   &artist.ID,
	}
	require.NoError(t, db.Create(&video).Error)
	_, err := service.AttachVideo(db, artist.ID, video.ID)
	require.NoError(t, err)

	_, err = service.FeatureSong(db, 1, songIDs[0])
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodDelete,
		fmt.Sprintf("/artists/admin-delete-artist/%d", artist.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	count := func(model any) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	assert.Zero(t, count(&orderModel.ArtistSongOrderModel{}))
	assert.Zero(t, count(&orderModel.ArtistVideoOrderModel{}))
	assert.Zero(t, count(&orderModel.FeaturedMusicModel{}))
	assert.Zero(t, count(&songModel.SongModel{}))
	assert.Zero(t, count(&videoModel.VideoModel{}))
	assert.Zero(t, count(&artistModel.ArtistModel{}))

	// Banner, profile and both song covers were cleaned off the image host.
	assert.ElementsMatch(t, []string{
		"https://img.test/nova_banner.webp",
		"https://img.test/nova_profile.webp",
		"https://img.test/track_1_cover.webp",
		"https://img.test/track_2_cover.webp",
	}, up.deleted)
}
