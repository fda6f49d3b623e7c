package model

import "time"

// Artist onboarding request submitted from the public site. One request per
// email; status moves pending -> approved|rejected by an admin.
type ArtistRequestModel struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtistName string `gorm:"type:varchar(255);not null;index" json:"artist_name"`
	Email      string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`

	IGLink         *string `gorm:"type:varchar(500)" json:"ig_link"`
	YTLink         *string `gorm:"type:varchar(500)" json:"yt_link"`
	SpotifyLink    *string `gorm:"type:varchar(500)" json:"spotify_link"`
	AppleMusicLink *string `gorm:"type:varchar(500)" json:"apple_music_link"`

	MusicDistribution      bool `gorm:"not null;default:false" json:"music_distribution"`
	MusicPublishing        bool `gorm:"not null;default:false" json:"music_publishing"`
	ProdAndEngineering     bool `gorm:"not null;default:false" json:"prod_and_engineering"`
	MarketingAndPromotions bool `gorm:"not null;default:false" json:"marketing_and_promotions"`

	Status    string    `gorm:"type:varchar(50);not null;default:pending;index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ArtistRequestModel) TableName() string {
	return "artist_requests"
}
