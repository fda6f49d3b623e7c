package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	artistModel "exodus_backend/internals/features/music/artists/model"
	"exodus_backend/internals/features/music/ordering/service"
	"exodus_backend/internals/features/music/songs/dto"
	"exodus_backend/internals/features/music/songs/model"
	helper "exodus_backend/internals/helpers"
	"exodus_backend/internals/helpers/media"
)

// detachSentinel in an artist_id form field means "unlink from the current
// artist" rather than "no change".
const detachSentinel = -1

type SongController struct {
	DB       *gorm.DB
	Uploader media.Uploader
}

func NewSongController(db *gorm.DB, up media.Uploader) *SongController {
	return &SongController{DB: db, Uploader: up}
}

// 🟢 LIST (public)
func (sc *SongController) List(c *fiber.Ctx) error {
	var songs []model.SongModel
	if err := sc.DB.Order("created_at DESC").Find(&songs).Error; err != nil {
		log.Printf("[ERROR] song list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch songs")
	}

	out := make([]dto.SongResponse, 0, len(songs))
	for i := range songs {
		out = append(out, dto.FromModelSong(&songs[i]))
	}
	return helper.Success(c, "Songs", out)
}

// 🟢 ADD (admin, multipart: song_name, artist_name, linktree, cover_art,
// optional artist_id). Linking to an artist creates the order entry in the
// same transaction, so the song lands at the end of the artist's list.
func (sc *SongController) Add(c *fiber.Ctx) error {
	songName := strings.TrimSpace(c.FormValue("song_name"))
	artistName := strings.TrimSpace(c.FormValue("artist_name"))
	linktree := strings.TrimSpace(c.FormValue("linktree"))
	if songName == "" {
		return helper.Error(c, fiber.StatusBadRequest, "song_name is required")
	}
	if artistName == "" {
		return helper.Error(c, fiber.StatusBadRequest, "artist_name is required")
	}
	if linktree == "" {
		return helper.Error(c, fiber.StatusBadRequest, "linktree is required")
	}

	artistID, err := parseOptionalArtistID(c.FormValue("artist_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid artist_id")
	}
	if artistID != nil {
		if ok, err := sc.artistExists(*artistID); err != nil {
			log.Printf("[ERROR] artist lookup: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify artist")
		} else if !ok {
			return helper.Error(c, fiber.StatusBadRequest, fmt.Sprintf("Artist %d does not exist", *artistID))
		}
	}

	file, err := c.FormFile("cover_art")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "cover_art image is required")
	}
	if err := media.ValidateImageFile(file); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	coverURL, err := sc.Uploader.UploadSongCoverArt(c.Context(), file, songName, artistName)
	if err != nil {
		log.Printf("[ERROR] song cover upload: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload cover art")
	}

	song := model.SongModel{
		SongName:    songName,
		ArtistName:  artistName,
		ArtistID:    artistID,
		CoverArtURL: coverURL,
		Linktree:    linktree,
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&song).Error; err != nil {
			return err
		}
		if artistID != nil {
			if _, err := service.AttachSong(tx, *artistID, song.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if delErr := sc.Uploader.DeleteImage(c.Context(), coverURL); delErr != nil {
			log.Printf("[WARN] orphan song cover cleanup: %v", delErr)
		}
		log.Printf("[ERROR] song create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create song")
	}

	log.Printf("[SUCCESS] song %d created", song.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Song created", dto.FromModelSong(&song))
}

// 🟢 EDIT (admin, multipart, all fields optional). artist_id moves are
// detach + attach inside one transaction; -1 detaches without re-linking.
func (sc *SongController) Edit(c *fiber.Ctx) error {
	songID, err := c.ParamsInt("song_id")
	if err != nil || songID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid song ID")
	}

	var song model.SongModel
	if err := sc.DB.First(&song, songID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Song not found")
		}
		log.Printf("[ERROR] song lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch song")
	}

	if v := strings.TrimSpace(c.FormValue("song_name")); v != "" {
		song.SongName = v
	}
	if v := strings.TrimSpace(c.FormValue("artist_name")); v != "" {
		song.ArtistName = v
	}
	if v := strings.TrimSpace(c.FormValue("linktree")); v != "" {
		song.Linktree = v
	}

	// Resolve the artist link change before touching anything.
	oldArtistID := song.ArtistID
	linkChanged := false
	if raw := strings.TrimSpace(c.FormValue("artist_id")); raw != "" {
		newID, err := strconv.Atoi(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid artist_id")
		}
		switch {
		case newID == detachSentinel:
			if song.ArtistID != nil {
				song.ArtistID = nil
				linkChanged = true
			}
		case newID <= 0:
			return helper.Error(c, fiber.StatusBadRequest, "Invalid artist_id")
		case song.ArtistID == nil || *song.ArtistID != newID:
			if ok, err := sc.artistExists(newID); err != nil {
				log.Printf("[ERROR] artist lookup: %v", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify artist")
			} else if !ok {
				return helper.Error(c, fiber.StatusBadRequest, fmt.Sprintf("Artist %d does not exist", newID))
			}
			song.ArtistID = &newID
			linkChanged = true
		}
	}

	oldCover := ""
	if file, err := c.FormFile("cover_art"); err == nil {
		if err := media.ValidateImageFile(file); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		coverURL, err := sc.Uploader.UploadSongCoverArt(c.Context(), file, song.SongName, song.ArtistName)
		if err != nil {
			log.Printf("[ERROR] song cover upload: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload cover art")
		}
		oldCover = song.CoverArtURL
		song.CoverArtURL = coverURL
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if linkChanged && oldArtistID != nil {
			if err := service.DetachSong(tx, *oldArtistID, song.ID); err != nil {
				return err
			}
		}
		if err := tx.Save(&song).Error; err != nil {
			return err
		}
		if linkChanged && song.ArtistID != nil {
			if _, err := service.AttachSong(tx, *song.ArtistID, song.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] song update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update song")
	}

	if oldCover != "" && oldCover != song.CoverArtURL {
		if err := sc.Uploader.DeleteImage(c.Context(), oldCover); err != nil {
			log.Printf("[WARN] old song cover cleanup: %v", err)
		}
	}

	log.Printf("[SUCCESS] song %d updated", song.ID)
	return helper.Success(c, "Song updated", dto.FromModelSong(&song))
}

// 🟢 DELETE (admin) — purges order and featured entries in the same
// transaction before the row goes.
func (sc *SongController) Delete(c *fiber.Ctx) error {
	songID, err := c.ParamsInt("song_id")
	if err != nil || songID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid song ID")
	}

	var song model.SongModel
	if err := sc.DB.First(&song, songID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Song not found")
		}
		log.Printf("[ERROR] song lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch song")
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.PurgeSongEntries(tx, song.ID); err != nil {
			return err
		}
		return tx.Delete(&song).Error
	})
	if err != nil {
		log.Printf("[ERROR] song delete: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete song")
	}

	if song.CoverArtURL != "" {
		if err := sc.Uploader.DeleteImage(c.Context(), song.CoverArtURL); err != nil {
			log.Printf("[WARN] song cover cleanup: %v", err)
		}
	}

	log.Printf("[SUCCESS] song %d deleted", song.ID)
	return helper.Success(c, "Song deleted", nil)
}

func (sc *SongController) artistExists(artistID int) (bool, error) {
	var count int64
	err := sc.DB.Model(&artistModel.ArtistModel{}).Where("id = ?", artistID).Count(&count).Error
	return count > 0, err
}

// parseOptionalArtistID reads an artist_id form value: empty means "no link",
// a positive integer links the song.
func parseOptionalArtistID(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid artist_id %q", raw)
	}
	return &id, nil
}
