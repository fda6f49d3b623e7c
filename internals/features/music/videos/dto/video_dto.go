package dto

import (
	"time"

	"exodus_backend/internals/features/music/videos/model"
)

type AddVideoItem struct {
	VideoName  string `json:"video_name" validate:"required,max=255"`
	VideoLink  string `json:"video_link" validate:"required,url,max=500"`
	ArtistName string `json:"artist_name" validate:"required,max=255"`
	ArtistID   *int   `json:"artist_id" validate:"omitempty,gt=0"`
}

type AddVideosRequest struct {
	Videos []AddVideoItem `json:"videos" validate:"required,min=1,dive"`
}

type EditVideoRequest struct {
	VideoName  *string `json:"video_name" validate:"omitempty,max=255"`
	VideoLink  *string `json:"video_link" validate:"omitempty,url,max=500"`
	ArtistName *string `json:"artist_name" validate:"omitempty,max=255"`

	// -1 detaches the video from its artist; any positive id re-links it.
	ArtistID *int `json:"artist_id"`
}

type VideoResponse struct {
	ID           int       `json:"id"`
	VideoName    string    `json:"video_name"`
	VideoLink    string    `json:"video_link"`
	ArtistName   string    `json:"artist_name"`
	ArtistID     *int      `json:"artist_id"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromModelVideo(m *model.VideoModel) VideoResponse {
	return VideoResponse{
		ID:           m.ID,
		VideoName:    m.VideoName,
		VideoLink:    m.VideoLink,
		ArtistName:   m.ArtistName,
		ArtistID:     m.ArtistID,
		ThumbnailURL: m.ThumbnailURL,
		CreatedAt:    m.CreatedAt,
	}
}
