package service

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	artistModel "exodus_backend/internals/features/music/artists/model"
	"exodus_backend/internals/features/music/ordering/model"
)

// PositionUpdate is one element of a reorder batch: set ChildID's rank to
// Position. Batches are validated as typed values at the boundary before
// they reach this package.
type PositionUpdate struct {
	ChildID  int
	Position int
}

// ReorderSongs atomically rewrites the display order of an artist's songs.
// All validation happens before the first write: the artist must exist and
// every song in the batch must currently belong to it (the song's own
// artist_id is the ownership fact, not the presence of an order entry).
// Any failure after that rolls the whole batch back — a partial reorder is
// never observable. Resubmitting the same batch is a no-op.
//
// Duplicate positions inside a batch are accepted; the read path tie-breaks
// them by song id. actorID identifies the admin performing the rewrite.
func ReorderSongs(db *gorm.DB, actorID, artistID int, items []PositionUpdate) error {
	if err := requireArtist(db, artistID); err != nil {
		return err
	}
	if err := requireOwnership(db, "songs", "song", artistID, items); err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if err := upsertPosition(tx,
				tx.Model(&model.ArtistSongOrderModel{}).Where("artist_id = ? AND song_id = ?", artistID, it.ChildID),
				&model.ArtistSongOrderModel{ArtistID: artistID, SongID: it.ChildID, DisplayOrder: it.Position},
				it.Position,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] user %d reordered %d songs for artist %d", actorID, len(items), artistID)
	return nil
}

// ReorderVideos is the video counterpart of ReorderSongs.
func ReorderVideos(db *gorm.DB, actorID, artistID int, items []PositionUpdate) error {
	if err := requireArtist(db, artistID); err != nil {
		return err
	}
	if err := requireOwnership(db, "videos", "video", artistID, items); err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if err := upsertPosition(tx,
				tx.Model(&model.ArtistVideoOrderModel{}).Where("artist_id = ? AND video_id = ?", artistID, it.ChildID),
				&model.ArtistVideoOrderModel{ArtistID: artistID, VideoID: it.ChildID, DisplayOrder: it.Position},
				it.Position,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] user %d reordered %d videos for artist %d", actorID, len(items), artistID)
	return nil
}

// ReorderFeatured rewrites positions on the featured list. Every song in the
// batch must already be featured; a miss fails the whole batch before any
// write.
func ReorderFeatured(db *gorm.DB, actorID int, items []PositionUpdate) error {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ChildID)
	}

	var featured []int
	if err := db.Model(&model.FeaturedMusicModel{}).Where("song_id IN ?", ids).
		Pluck("song_id", &featured).Error; err != nil {
		return err
	}
	present := make(map[int]struct{}, len(featured))
	for _, id := range featured {
		present[id] = struct{}{}
	}
	for _, it := range items {
		if _, ok := present[it.ChildID]; !ok {
			return fmt.Errorf("song with ID %d is not in featured music list: %w", it.ChildID, ErrNotFound)
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if err := tx.Model(&model.FeaturedMusicModel{}).
				Where("song_id = ?", it.ChildID).
				Update("position", it.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] user %d reordered %d featured songs", actorID, len(items))
	return nil
}

func upsertPosition(tx *gorm.DB, scoped *gorm.DB, entry interface{}, position int) error {
	res := scoped.Update("display_order", position)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Defensive fallback: auto-attach normally guarantees an entry
		// exists for every owned child.
		return tx.Create(entry).Error
	}
	return nil
}

func requireArtist(db *gorm.DB, artistID int) error {
	var artist artistModel.ArtistModel
	if err := db.Select("id").First(&artist, artistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("artist with ID %d not found: %w", artistID, ErrNotFound)
		}
		return err
	}
	return nil
}

// requireOwnership checks every child in the batch against its own
// artist_id foreign key and names the first offender.
func requireOwnership(db *gorm.DB, table, kind string, artistID int, items []PositionUpdate) error {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ChildID)
	}

	var owned []int
	if err := db.Table(table).Where("id IN ? AND artist_id = ?", ids, artistID).
		Pluck("id", &owned).Error; err != nil {
		return err
	}
	ownedSet := make(map[int]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}
	for _, it := range items {
		if _, ok := ownedSet[it.ChildID]; !ok {
			return fmt.Errorf("%s with ID %d does not belong to artist %d: %w", kind, it.ChildID, artistID, ErrInvalidReference)
		}
	}
	return nil
}
