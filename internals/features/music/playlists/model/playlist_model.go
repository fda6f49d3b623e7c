package model

import "time"

// Playlist metadata only; the track list lives on the linked platform.
type PlaylistModel struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PlaylistName string    `gorm:"type:varchar(255);not null;index" json:"playlist_name"`
	CoverArtURL  string    `gorm:"type:varchar(500);not null" json:"cover_art_url"`
	Linktree     string    `gorm:"type:varchar(500);not null" json:"linktree"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}
