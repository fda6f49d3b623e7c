package service

import (
	"gorm.io/gorm"

	songModel "exodus_backend/internals/features/music/songs/model"
	videoModel "exodus_backend/internals/features/music/videos/model"
)

// SongWithPosition is a song row annotated with its display rank for one
// artist. DisplayOrder is nil when the song belongs to the artist but has no
// order entry; such songs sort last.
type SongWithPosition struct {
	songModel.SongModel
	DisplayOrder *int `json:"display_order"`
}

type VideoWithPosition struct {
	videoModel.VideoModel
	DisplayOrder *int `json:"display_order"`
}

// OrderedSongs returns the artist's songs sorted by display rank. Ownership
// comes from the song's own artist_id; the order table is LEFT JOINed so an
// entry-less song still shows up (NULLS LAST, then id for stable ties).
// An empty or unknown artist yields an empty slice — existence is the
// caller's 404.
func OrderedSongs(db *gorm.DB, artistID int) ([]SongWithPosition, error) {
	rows := []SongWithPosition{}
	err := db.Table("songs").
		Select("songs.*, aso.display_order AS display_order").
		Joins("LEFT JOIN artist_song_orders aso ON aso.song_id = songs.id AND aso.artist_id = ?", artistID).
		Where("songs.artist_id = ?", artistID).
		Order("aso.display_order ASC NULLS LAST").
		Order("songs.id ASC").
		Scan(&rows).Error
	return rows, err
}

func OrderedVideos(db *gorm.DB, artistID int) ([]VideoWithPosition, error) {
	rows := []VideoWithPosition{}
	err := db.Table("videos").
		Select("videos.*, avo.display_order AS display_order").
		Joins("LEFT JOIN artist_video_orders avo ON avo.video_id = videos.id AND avo.artist_id = ?", artistID).
		Where("videos.artist_id = ?", artistID).
		Order("avo.display_order ASC NULLS LAST").
		Order("videos.id ASC").
		Scan(&rows).Error
	return rows, err
}

// FeaturedEntry is one row of the "New Music" page.
type FeaturedEntry struct {
	Song     songModel.SongModel `json:"song"`
	Position int                 `json:"position"`
}

// FeaturedSongs returns the curated list ordered by position. Featured
// entries always reference live songs (the song-delete cascade purges them),
// so an inner join is safe here.
func FeaturedSongs(db *gorm.DB) ([]FeaturedEntry, error) {
	type featuredRow struct {
		songModel.SongModel
		Position int
	}

	rows := []featuredRow{}
	err := db.Table("featured_music").
		Select("songs.*, featured_music.position AS position").
		Joins("JOIN songs ON songs.id = featured_music.song_id").
		Order("featured_music.position ASC").
		Order("songs.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]FeaturedEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, FeaturedEntry{Song: r.SongModel, Position: r.Position})
	}
	return out, nil
}
