package model

import "time"

type VideoModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	VideoName string `gorm:"type:varchar(255);not null;index" json:"video_name"`
	VideoLink string `gorm:"type:varchar(500);not null" json:"video_link"`

	ArtistName string `gorm:"type:varchar(255);not null;index" json:"artist_name"`

	// Nil after the video is detached from its artist (edit with artist_id=-1).
	ArtistID *int `gorm:"index" json:"artist_id"`

	// Derived for YouTube links at create/edit time, nil for other platforms.
	ThumbnailURL *string `gorm:"type:varchar(500)" json:"thumbnail_url"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}
