package dto

import (
	"time"

	"exodus_backend/internals/features/music/playlists/model"
)

type PlaylistResponse struct {
	ID           int       `json:"id"`
	PlaylistName string    `json:"playlist_name"`
	CoverArtURL  string    `json:"cover_art_url"`
	Linktree     string    `json:"linktree"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromModelPlaylist(m *model.PlaylistModel) PlaylistResponse {
	return PlaylistResponse{
		ID:           m.ID,
		PlaylistName: m.PlaylistName,
		CoverArtURL:  m.CoverArtURL,
		Linktree:     m.Linktree,
		CreatedAt:    m.CreatedAt,
	}
}
