package dto

import (
	"time"

	"exodus_backend/internals/features/music/songs/model"
)

type SongResponse struct {
	ID          int       `json:"id"`
	SongName    string    `json:"song_name"`
	ArtistName  string    `json:"artist_name"`
	ArtistID    *int      `json:"artist_id"`
	CoverArtURL string    `json:"cover_art_url"`
	Linktree    string    `json:"linktree"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromModelSong(m *model.SongModel) SongResponse {
	return SongResponse{
		ID:          m.ID,
		SongName:    m.SongName,
		ArtistName:  m.ArtistName,
		ArtistID:    m.ArtistID,
		CoverArtURL: m.CoverArtURL,
		Linktree:    m.Linktree,
		CreatedAt:   m.CreatedAt,
	}
}
