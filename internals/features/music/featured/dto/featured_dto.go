package dto

import (
	"exodus_backend/internals/features/music/ordering/service"
	songDto "exodus_backend/internals/features/music/songs/dto"
)

type FeaturedPositionItem struct {
	SongID   int `json:"song_id" validate:"required,gt=0"`
	Position int `json:"position" validate:"required,gt=0"`
}

type ReorderFeaturedRequest struct {
	Positions []FeaturedPositionItem `json:"positions" validate:"required,min=1,dive"`
}

func (r *ReorderFeaturedRequest) Updates() []service.PositionUpdate {
	out := make([]service.PositionUpdate, 0, len(r.Positions))
	for _, p := range r.Positions {
		out = append(out, service.PositionUpdate{ChildID: p.SongID, Position: p.Position})
	}
	return out
}

type FeaturedSongResponse struct {
	Song     songDto.SongResponse `json:"song"`
	Position int                  `json:"position"`
}
