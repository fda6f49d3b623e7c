package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	artistModel "exodus_backend/internals/features/music/artists/model"
	"exodus_backend/internals/features/music/ordering/model"
	songModel "exodus_backend/internals/features/music/songs/model"
	videoModel "exodus_backend/internals/features/music/videos/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// One connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&artistModel.ArtistModel{},
		&songModel.SongModel{},
		&videoModel.VideoModel{},
		&model.ArtistSongOrderModel{},
		&model.ArtistVideoOrderModel{},
		&model.FeaturedMusicModel{},
	))
	return db
}

func createArtist(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()
	artist := artistModel.ArtistModel{ArtistName: name, Genres: datatypes.JSON([]byte(`["pop"]`))}
	require.NoError(t, db.Create(&artist).Error)
	return artist.ID
}

func createSong(t *testing.T, db *gorm.DB, name string, artistID *int) int {
	t.Helper()
	song := songModel.SongModel{SongName: name, ArtistName: "someone", ArtistID: artistID}
	require.NoError(t, db.Create(&song).Error)
	return song.ID
}

func createVideo(t *testing.T, db *gorm.DB, name string, artistID *int) int {
	t.Helper()
	video := videoModel.VideoModel{VideoName: name, VideoLink: "https://youtu.be/x", ArtistName: "someone", ArtistID: artistID}
	require.NoError(t, db.Create(&video).Error)
	return video.ID
}

// attachOwnedSong creates a song owned by the artist and its order entry,
// the way the song-create transaction does.
func attachOwnedSong(t *testing.T, db *gorm.DB, artistID int, name string) (songID, pos int) {
	t.Helper()
	songID = createSong(t, db, name, &artistID)
	pos, err := AttachSong(db, artistID, songID)
	require.NoError(t, err)
	return songID, pos
}

func songPositions(t *testing.T, db *gorm.DB, artistID int) map[int]int {
	t.Helper()
	var entries []model.ArtistSongOrderModel
	require.NoError(t, db.Where("artist_id = ?", artistID).Find(&entries).Error)
	out := make(map[int]int, len(entries))
	for _, e := range entries {
		out[e.SongID] = e.DisplayOrder
	}
	return out
}

func TestNextPositionStartsAtOne(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")

	pos, err := NextSongPosition(db, artistID)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = NextVideoPosition(db, artistID)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = NextFeaturedPosition(db)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
}

func TestNextPositionIsMaxPlusOne(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	songID := createSong(t, db, "First", &artistID)

	require.NoError(t, db.Create(&model.ArtistSongOrderModel{
		ArtistID: artistID, SongID: songID, DisplayOrder: 7,
	}).Error)

	pos, err := NextSongPosition(db, artistID)
	require.NoError(t, err)
	assert.Equal(t, 8, pos)

	// Another artist's entries don't leak into the scope.
	otherID := createArtist(t, db, "Other")
	pos, err = NextSongPosition(db, otherID)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
}

func TestAttachSongAssignsSequentialPositions(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")

	_, p1 := attachOwnedSong(t, db, artistID, "One")
	_, p2 := attachOwnedSong(t, db, artistID, "Two")
	_, p3 := attachOwnedSong(t, db, artistID, "Three")

	assert.Equal(t, 1, p1)
	assert.Equal(t, 2, p2)
	assert.Equal(t, 3, p3)
}

func TestAttachSongTwiceIsConflict(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	songID, _ := attachOwnedSong(t, db, artistID, "One")

	_, err := AttachSong(db, artistID, songID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDetachSongRemovesEntry(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	songID, _ := attachOwnedSong(t, db, artistID, "One")

	require.NoError(t, DetachSong(db, artistID, songID))
	assert.Empty(t, songPositions(t, db, artistID))
}

func TestReorderSongsRewritesPositions(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	a, _ := attachOwnedSong(t, db, artistID, "A")
	b, _ := attachOwnedSong(t, db, artistID, "B")
	c, _ := attachOwnedSong(t, db, artistID, "C")

	err := ReorderSongs(db, 1, artistID, []PositionUpdate{
		{ChildID: c, Position: 1},
		{ChildID: a, Position: 2},
		{ChildID: b, Position: 3},
	})
	require.NoError(t, err)

	got := songPositions(t, db, artistID)
	assert.Equal(t, map[int]int{c: 1, a: 2, b: 3}, got)
}

func TestReorderSongsIsIdempotent(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	a, _ := attachOwnedSong(t, db, artistID, "A")
	b, _ := attachOwnedSong(t, db, artistID, "B")

	batch := []PositionUpdate{{ChildID: b, Position: 1}, {ChildID: a, Position: 2}}
	require.NoError(t, ReorderSongs(db, 1, artistID, batch))
	require.NoError(t, ReorderSongs(db, 1, artistID, batch))

	got := songPositions(t, db, artistID)
	assert.Equal(t, map[int]int{b: 1, a: 2}, got)
}

func TestReorderSongsUnknownArtist(t *testing.T) {
	db := setupDB(t)

	err := ReorderSongs(db, 1, 999, []PositionUpdate{{ChildID: 1, Position: 1}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorderSongsRejectsForeignSongWithoutWriting(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	otherID := createArtist(t, db, "Other")
	a, _ := attachOwnedSong(t, db, artistID, "A")
	foreign, _ := attachOwnedSong(t, db, otherID, "Foreign")

	before := songPositions(t, db, artistID)

	err := ReorderSongs(db, 1, artistID, []PositionUpdate{
		{ChildID: a, Position: 2},
		{ChildID: foreign, Position: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidReference)

	// Nothing moved, including the valid entry in the same batch.
	assert.Equal(t, before, songPositions(t, db, artistID))
}

func TestReorderSongsAcceptsDuplicatePositions(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	a, _ := attachOwnedSong(t, db, artistID, "A")
	b, _ := attachOwnedSong(t, db, artistID, "B")

	err := ReorderSongs(db, 1, artistID, []PositionUpdate{
		{ChildID: a, Position: 5},
		{ChildID: b, Position: 5},
	})
	require.NoError(t, err)

	// Ties resolve by id on the read path.
	songs, err := OrderedSongs(db, artistID)
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, a, songs[0].ID)
	assert.Equal(t, b, songs[1].ID)
}

func TestReorderVideosRewritesPositions(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")

	v1 := createVideo(t, db, "V1", &artistID)
	v2 := createVideo(t, db, "V2", &artistID)
	_, err := AttachVideo(db, artistID, v1)
	require.NoError(t, err)
	_, err = AttachVideo(db, artistID, v2)
	require.NoError(t, err)

	err = ReorderVideos(db, 1, artistID, []PositionUpdate{
		{ChildID: v2, Position: 1},
		{ChildID: v1, Position: 2},
	})
	require.NoError(t, err)

	videos, err := OrderedVideos(db, artistID)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, v2, videos[0].ID)
	assert.Equal(t, v1, videos[1].ID)
}

func TestReorderVideosRejectsForeignVideo(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	otherID := createArtist(t, db, "Other")
	foreign := createVideo(t, db, "Foreign", &otherID)

	err := ReorderVideos(db, 1, artistID, []PositionUpdate{{ChildID: foreign, Position: 1}})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestOrderedSongsSortsMissingEntriesLast(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")

	placed, _ := attachOwnedSong(t, db, artistID, "Placed")
	// Owned but never given an order entry.
	unplaced := createSong(t, db, "Unplaced", &artistID)

	songs, err := OrderedSongs(db, artistID)
	require.NoError(t, err)
	require.Len(t, songs, 2)

	assert.Equal(t, placed, songs[0].ID)
	require.NotNil(t, songs[0].DisplayOrder)
	assert.Equal(t, 1, *songs[0].DisplayOrder)

	assert.Equal(t, unplaced, songs[1].ID)
	assert.Nil(t, songs[1].DisplayOrder)
}

func TestOrderedSongsUnknownArtistIsEmpty(t *testing.T) {
	db := setupDB(t)

	songs, err := OrderedSongs(db, 42)
	require.NoError(t, err)
	assert.Empty(t, songs)
}

func TestFeatureSongAppends(t *testing.T) {
	db := setupDB(t)
	s1 := createSong(t, db, "One", nil)
	s2 := createSong(t, db, "Two", nil)

	pos, err := FeatureSong(db, 1, s1)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = FeatureSong(db, 1, s2)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
}

func TestFeatureSongTwiceIsConflict(t *testing.T) {
	db := setupDB(t)
	songID := createSong(t, db, "One", nil)

	_, err := FeatureSong(db, 1, songID)
	require.NoError(t, err)

	_, err = FeatureSong(db, 1, songID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestFeatureUnknownSong(t *testing.T) {
	db := setupDB(t)

	_, err := FeatureSong(db, 1, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnfeatureSong(t *testing.T) {
	db := setupDB(t)
	songID := createSong(t, db, "One", nil)

	_, err := FeatureSong(db, 1, songID)
	require.NoError(t, err)
	require.NoError(t, UnfeatureSong(db, 1, songID))

	// Removing again is a miss.
	assert.ErrorIs(t, UnfeatureSong(db, 1, songID), ErrNotFound)
}

func TestReorderFeatured(t *testing.T) {
	db := setupDB(t)
	s1 := createSong(t, db, "One", nil)
	s2 := createSong(t, db, "Two", nil)
	_, err := FeatureSong(db, 1, s1)
	require.NoError(t, err)
	_, err = FeatureSong(db, 1, s2)
	require.NoError(t, err)

	err = ReorderFeatured(db, 1, []PositionUpdate{
		{ChildID: s2, Position: 1},
		{ChildID: s1, Position: 2},
	})
	require.NoError(t, err)

	entries, err := FeaturedSongs(db)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, s2, entries[0].Song.ID)
	assert.Equal(t, s1, entries[1].Song.ID)
}

func TestReorderFeaturedRejectsUnfeaturedSong(t *testing.T) {
	db := setupDB(t)
	s1 := createSong(t, db, "One", nil)
	_, err := FeatureSong(db, 1, s1)
	require.NoError(t, err)

	stranger := createSong(t, db, "Stranger", nil)
	err = ReorderFeatured(db, 1, []PositionUpdate{
		{ChildID: s1, Position: 2},
		{ChildID: stranger, Position: 1},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// The valid row in the batch did not move.
	entries, err := FeaturedSongs(db)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Position)
}

func TestPurgeSongEntriesCascades(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	songID, _ := attachOwnedSong(t, db, artistID, "One")
	_, err := FeatureSong(db, 1, songID)
	require.NoError(t, err)

	require.NoError(t, PurgeSongEntries(db, songID))

	assert.Empty(t, songPositions(t, db, artistID))
	entries, err := FeaturedSongs(db)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPurgeArtistEntriesCascades(t *testing.T) {
	db := setupDB(t)
	artistID := createArtist(t, db, "Nova")
	attachOwnedSong(t, db, artistID, "One")
	videoID := createVideo(t, db, "V1", &artistID)
	_, err := AttachVideo(db, artistID, videoID)
	require.NoError(t, err)

	require.NoError(t, PurgeArtistEntries(db, artistID))

	var songCount, videoCount int64
	require.NoError(t, db.Model(&model.ArtistSongOrderModel{}).Where("artist_id = ?", artistID).Count(&songCount).Error)
	require.NoError(t, db.Model(&model.ArtistVideoOrderModel{}).Where("artist_id = ?", artistID).Count(&videoCount).Error)
	assert.Zero(t, songCount)
	assert.Zero(t, videoCount)
}
