package service

import (
	"database/sql"

	"gorm.io/gorm"

	"exodus_backend/internals/features/music/ordering/model"
)

// Position allocation: 1 for an empty scope, max+1 otherwise. The value is
// advisory under concurrent creation — the unique index on (parent, child)
// is the real backstop, duplicate positions never corrupt the relation.

func NextSongPosition(tx *gorm.DB, artistID int) (int, error) {
	return nextPosition(tx.Model(&model.ArtistSongOrderModel{}).Where("artist_id = ?", artistID).Select("MAX(display_order)"))
}

func NextVideoPosition(tx *gorm.DB, artistID int) (int, error) {
	return nextPosition(tx.Model(&model.ArtistVideoOrderModel{}).Where("artist_id = ?", artistID).Select("MAX(display_order)"))
}

func NextFeaturedPosition(tx *gorm.DB) (int, error) {
	return nextPosition(tx.Model(&model.FeaturedMusicModel{}).Select("MAX(position)"))
}

func nextPosition(q *gorm.DB) (int, error) {
	var max sql.NullInt64
	if err := q.Scan(&max).Error; err != nil {
		return 0, err
	}
	if !max.Valid {
		return 1, nil
	}
	return int(max.Int64) + 1, nil
}
