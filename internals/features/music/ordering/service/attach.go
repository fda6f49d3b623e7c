package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"exodus_backend/internals/features/music/ordering/model"
)

// Order entries are created exactly once, here, when a child is newly linked
// to an artist. Callers must invoke Attach* inside the same transaction that
// creates or re-links the child row, so a failed insert rolls the whole
// attach back.

func AttachSong(tx *gorm.DB, artistID, songID int) (int, error) {
	pos, err := NextSongPosition(tx, artistID)
	if err != nil {
		return 0, err
	}
	entry := model.ArtistSongOrderModel{ArtistID: artistID, SongID: songID, DisplayOrder: pos}
	if err := tx.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("song %d is already attached to artist %d: %w", songID, artistID, ErrConflict)
		}
		return 0, err
	}
	return pos, nil
}

func AttachVideo(tx *gorm.DB, artistID, videoID int) (int, error) {
	pos, err := NextVideoPosition(tx, artistID)
	if err != nil {
		return 0, err
	}
	entry := model.ArtistVideoOrderModel{ArtistID: artistID, VideoID: videoID, DisplayOrder: pos}
	if err := tx.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("video %d is already attached to artist %d: %w", videoID, artistID, ErrConflict)
		}
		return 0, err
	}
	return pos, nil
}

// Detach removes the single order entry for a (artist, child) pair. Runs in
// the same transaction that clears the child's artist_id, so no dangling
// entry survives an unlink.

func DetachSong(tx *gorm.DB, artistID, songID int) error {
	return tx.Where("artist_id = ? AND song_id = ?", artistID, songID).
		Delete(&model.ArtistSongOrderModel{}).Error
}

func DetachVideo(tx *gorm.DB, artistID, videoID int) error {
	return tx.Where("artist_id = ? AND video_id = ?", artistID, videoID).
		Delete(&model.ArtistVideoOrderModel{}).Error
}

// Purge helpers implement the cascade explicitly: the delete transaction for
// a child or parent removes every dependent order entry itself instead of
// leaning on engine-level ON DELETE CASCADE.

func PurgeSongEntries(tx *gorm.DB, songID int) error {
	if err := tx.Where("song_id = ?", songID).Delete(&model.ArtistSongOrderModel{}).Error; err != nil {
		return err
	}
	return tx.Where("song_id = ?", songID).Delete(&model.FeaturedMusicModel{}).Error
}

func PurgeVideoEntries(tx *gorm.DB, videoID int) error {
	return tx.Where("video_id = ?", videoID).Delete(&model.ArtistVideoOrderModel{}).Error
}

func PurgeArtistEntries(tx *gorm.DB, artistID int) error {
	if err := tx.Where("artist_id = ?", artistID).Delete(&model.ArtistSongOrderModel{}).Error; err != nil {
		return err
	}
	return tx.Where("artist_id = ?", artistID).Delete(&model.ArtistVideoOrderModel{}).Error
}
