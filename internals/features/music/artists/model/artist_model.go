package model

import (
	"time"

	"gorm.io/datatypes"
)

type ArtistModel struct {
	ID             int            `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtistName     string         `gorm:"type:varchar(255);not null;index" json:"artist_name"`
	BannerImageURL string         `gorm:"type:varchar(500);not null" json:"banner_image_url"`
	ImageURL       string         `gorm:"type:varchar(500);not null" json:"image_url"`
	Genres         datatypes.JSON `gorm:"not null" json:"genres"` // JSON array of strings

	SpotifyLink      *string `gorm:"type:varchar(500)" json:"spotify_link"`
	AppleMusicLink   *string `gorm:"type:varchar(500)" json:"apple_music_link"`
	YoutubeLink      *string `gorm:"type:varchar(500)" json:"youtube_link"`
	YoutubeMusicLink *string `gorm:"type:varchar(500)" json:"youtube_music_link"`
	InstagramLink    *string `gorm:"type:varchar(500)" json:"instagram_link"`
	XLink            *string `gorm:"type:varchar(500)" json:"x_link"`
	TiktokLink       *string `gorm:"type:varchar(500)" json:"tiktok_link"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ArtistModel) TableName() string {
	return "artists"
}
