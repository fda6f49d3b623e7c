package dto

import (
	"time"

	"github.com/bytedance/sonic"

	"exodus_backend/internals/features/music/artists/model"
	"exodus_backend/internals/features/music/ordering/service"
	songDto "exodus_backend/internals/features/music/songs/dto"
	videoDto "exodus_backend/internals/features/music/videos/dto"
)

type ArtistResponse struct {
	ID             int      `json:"id"`
	ArtistName     string   `json:"artist_name"`
	BannerImageURL string   `json:"banner_image_url"`
	ImageURL       string   `json:"image_url"`
	Genres         []string `json:"genres"`

	SpotifyLink      *string `json:"spotify_link"`
	AppleMusicLink   *string `json:"apple_music_link"`
	YoutubeLink      *string `json:"youtube_link"`
	YoutubeMusicLink *string `json:"youtube_music_link"`
	InstagramLink    *string `json:"instagram_link"`
	XLink            *string `json:"x_link"`
	TiktokLink       *string `json:"tiktok_link"`

	CreatedAt time.Time `json:"created_at"`
}

func FromModelArtist(m *model.ArtistModel) ArtistResponse {
	genres := []string{}
	if len(m.Genres) > 0 {
		// Stored as a JSON array; a decode failure just yields no genres.
		_ = sonic.Unmarshal(m.Genres, &genres)
	}
	return ArtistResponse{
		ID:               m.ID,
		ArtistName:       m.ArtistName,
		BannerImageURL:   m.BannerImageURL,
		ImageURL:         m.ImageURL,
		Genres:           genres,
		SpotifyLink:      m.SpotifyLink,
		AppleMusicLink:   m.AppleMusicLink,
		YoutubeLink:      m.YoutubeLink,
		YoutubeMusicLink: m.YoutubeMusicLink,
		InstagramLink:    m.InstagramLink,
		XLink:            m.XLink,
		TiktokLink:       m.TiktokLink,
		CreatedAt:        m.CreatedAt,
	}
}

// OrderedSongResponse annotates a song with its rank on the artist page.
// DisplayOrder is null for songs that were never placed; they sort last.
type OrderedSongResponse struct {
	songDto.SongResponse
	DisplayOrder *int `json:"display_order"`
}

type OrderedVideoResponse struct {
	videoDto.VideoResponse
	DisplayOrder *int `json:"display_order"`
}

// ArtistDetailResponse is the full artist page payload: the profile plus its
// songs and videos in display order.
type ArtistDetailResponse struct {
	ArtistResponse
	Songs  []OrderedSongResponse  `json:"songs"`
	Videos []OrderedVideoResponse `json:"videos"`
}

type ReorderItem struct {
	ID       int `json:"id" validate:"required,gt=0"`
	Position int `json:"position" validate:"required,gt=0"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

func (r *ReorderRequest) Updates() []service.PositionUpdate {
	out := make([]service.PositionUpdate, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, service.PositionUpdate{ChildID: it.ID, Position: it.Position})
	}
	return out
}
