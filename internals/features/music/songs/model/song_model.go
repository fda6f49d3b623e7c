package model

import "time"

type SongModel struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	SongName string `gorm:"type:varchar(255);not null;index" json:"song_name"`

	// Display credit; may name features and artists not in the artists table.
	ArtistName string `gorm:"type:varchar(255);not null;index" json:"artist_name"`

	// Ownership fact for the ordering subsystem. Nil when the song is not
	// attached to any artist profile.
	ArtistID *int `gorm:"index" json:"artist_id"`

	CoverArtURL string    `gorm:"type:varchar(500);not null" json:"cover_art_url"`
	Linktree    string    `gorm:"type:varchar(500);not null" json:"linktree"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SongModel) TableName() string {
	return "songs"
}
