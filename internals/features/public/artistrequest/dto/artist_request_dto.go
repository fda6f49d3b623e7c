package dto

import (
	"strings"
	"time"

	"exodus_backend/internals/features/public/artistrequest/model"
)

type SubmitRequest struct {
	ArtistName string `json:"artist_name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email,max=255"`

	IGLink         *string `json:"ig_link" validate:"omitempty,max=500"`
	YTLink         *string `json:"yt_link" validate:"omitempty,max=500"`
	SpotifyLink    *string `json:"spotify_link" validate:"omitempty,max=500"`
	AppleMusicLink *string `json:"apple_music_link" validate:"omitempty,max=500"`

	MusicDistribution      bool `json:"music_distribution"`
	MusicPublishing        bool `json:"music_publishing"`
	ProdAndEngineering     bool `json:"prod_and_engineering"`
	MarketingAndPromotions bool `json:"marketing_and_promotions"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

type ArtistRequestResponse struct {
	ID         int    `json:"id"`
	ArtistName string `json:"artist_name"`
	Email      string `json:"email"`

	IGLink         *string `json:"ig_link"`
	YTLink         *string `json:"yt_link"`
	SpotifyLink    *string `json:"spotify_link"`
	AppleMusicLink *string `json:"apple_music_link"`

	MusicDistribution      bool `json:"music_distribution"`
	MusicPublishing        bool `json:"music_publishing"`
	ProdAndEngineering     bool `json:"prod_and_engineering"`
	MarketingAndPromotions bool `json:"marketing_and_promotions"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelArtistRequest(m *model.ArtistRequestModel) ArtistRequestResponse {
	return ArtistRequestResponse{
		ID:                     m.ID,
		ArtistName:             m.ArtistName,
		Email:                  m.Email,
		IGLink:                 m.IGLink,
		YTLink:                 m.YTLink,
		SpotifyLink:            m.SpotifyLink,
		AppleMusicLink:         m.AppleMusicLink,
		MusicDistribution:      m.MusicDistribution,
		MusicPublishing:        m.MusicPublishing,
		ProdAndEngineering:     m.ProdAndEngineering,
		MarketingAndPromotions: m.MarketingAndPromotions,
		Status:                 m.Status,
		CreatedAt:              m.CreatedAt,
	}
}

// TrimPtr normalizes an optional link: surrounding space removed, empty
// strings collapse to nil.
func TrimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
