package model

import "time"

// Junction tables recording display rank. Lower display_order renders first;
// values are positive and need not be contiguous. The composite unique
// indexes are the hard backstop against duplicate entries per parent —
// allocation under concurrency is advisory only.

type ArtistSongOrderModel struct {
	ID           int `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtistID     int `gorm:"not null;index;uniqueIndex:uq_artist_song,priority:1" json:"artist_id"`
	SongID       int `gorm:"not null;index;uniqueIndex:uq_artist_song,priority:2" json:"song_id"`
	DisplayOrder int `gorm:"not null" json:"display_order"`
}

func (ArtistSongOrderModel) TableName() string {
	return "artist_song_orders"
}

type ArtistVideoOrderModel struct {
	ID           int `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtistID     int `gorm:"not null;index;uniqueIndex:uq_artist_video,priority:1" json:"artist_id"`
	VideoID      int `gorm:"not null;index;uniqueIndex:uq_artist_video,priority:2" json:"video_id"`
	DisplayOrder int `gorm:"not null" json:"display_order"`
}

func (ArtistVideoOrderModel) TableName() string {
	return "artist_video_orders"
}

// Featured list ("New Music" page). The parent is an implicit singleton, so
// song_id alone is unique: a song can be featured at most once system-wide.
type FeaturedMusicModel struct {
	ID       int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SongID   int       `gorm:"not null;uniqueIndex" json:"song_id"`
	Position int       `gorm:"not null" json:"position"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"added_at"`
}

func (FeaturedMusicModel) TableName() string {
	return "featured_music"
}
