package service

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"exodus_backend/internals/features/music/ordering/model"
	songModel "exodus_backend/internals/features/music/songs/model"
)

// FeatureSong appends a song to the featured list at the next free position.
// Fails with ErrNotFound if the song does not exist and ErrConflict if it is
// already featured (a song appears at most once system-wide).
func FeatureSong(db *gorm.DB, actorID, songID int) (int, error) {
	var position int

	err := db.Transaction(func(tx *gorm.DB) error {
		var song songModel.SongModel
		if err := tx.Select("id").First(&song, songID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("song with ID %d not found: %w", songID, ErrNotFound)
			}
			return err
		}

		var existing model.FeaturedMusicModel
		err := tx.Where("song_id = ?", songID).First(&existing).Error
		if err == nil {
			return fmt.Errorf("this song is already featured: %w", ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		pos, err := NextFeaturedPosition(tx)
		if err != nil {
			return err
		}

		entry := model.FeaturedMusicModel{SongID: songID, Position: pos}
		if err := tx.Create(&entry).Error; err != nil {
			// The unique index catches the race the pre-check cannot.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("this song is already featured: %w", ErrConflict)
			}
			return err
		}
		position = pos
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("[SUCCESS] user %d featured song %d at position %d", actorID, songID, position)
	return position, nil
}

// UnfeatureSong removes a song's featured entry by song id.
func UnfeatureSong(db *gorm.DB, actorID, songID int) error {
	res := db.Where("song_id = ?", songID).Delete(&model.FeaturedMusicModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("song is not in featured music list: %w", ErrNotFound)
	}
	log.Printf("[SUCCESS] user %d removed song %d from featured music", actorID, songID)
	return nil
}
