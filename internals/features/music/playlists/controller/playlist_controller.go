package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/music/playlists/dto"
	"exodus_backend/internals/features/music/playlists/model"
	helper "exodus_backend/internals/helpers"
	"exodus_backend/internals/helpers/media"
)

type PlaylistController struct {
	DB       *gorm.DB
	Uploader media.Uploader
}

func NewPlaylistController(db *gorm.DB, up media.Uploader) *PlaylistController {
	return &PlaylistController{DB: db, Uploader: up}
}

// 🟢 LIST (public)
func (pc *PlaylistController) List(c *fiber.Ctx) error {
	var playlists []model.PlaylistModel
	if err := pc.DB.Order("created_at DESC").Find(&playlists).Error; err != nil {
		log.Printf("[ERROR] playlist list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch playlists")
	}

	out := make([]dto.PlaylistResponse, 0, len(playlists))
	for i := range playlists {
		out = append(out, dto.FromModelPlaylist(&playlists[i]))
	}
	return helper.Success(c, "Playlists", out)
}

// 🟢 ADD (admin, multipart: playlist_name, linktree, cover_art)
func (pc *PlaylistController) Add(c *fiber.Ctx) error {
	playlistName := strings.TrimSpace(c.FormValue("playlist_name"))
	linktree := strings.TrimSpace(c.FormValue("linktree"))
	if playlistName == "" {
		return helper.Error(c, fiber.StatusBadRequest, "playlist_name is required")
	}
	if linktree == "" {
		return helper.Error(c, fiber.StatusBadRequest, "linktree is required")
	}

	file, err := c.FormFile("cover_art")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "cover_art image is required")
	}
	if err := media.ValidateImageFile(file); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	coverURL, err := pc.Uploader.UploadPlaylistCoverArt(c.Context(), file, playlistName)
	if err != nil {
		log.Printf("[ERROR] playlist cover upload: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload cover art")
	}

	playlist := model.PlaylistModel{
		PlaylistName: playlistName,
		CoverArtURL:  coverURL,
		Linktree:     linktree,
	}
	if err := pc.DB.Create(&playlist).Error; err != nil {
		// Keep the image host consistent with the database.
		if delErr := pc.Uploader.DeleteImage(c.Context(), coverURL); delErr != nil {
			log.Printf("[WARN] orphan playlist cover cleanup: %v", delErr)
		}
		log.Printf("[ERROR] playlist create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create playlist")
	}

	log.Printf("[SUCCESS] playlist %d created", playlist.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Playlist created",
		dto.FromModelPlaylist(&playlist))
}

// 🟢 EDIT (admin, multipart, all fields optional)
func (pc *PlaylistController) Edit(c *fiber.Ctx) error {
	playlistID, err := c.ParamsInt("playlist_id")
	if err != nil || playlistID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid playlist ID")
	}

	var playlist model.PlaylistModel
	if err := pc.DB.First(&playlist, playlistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Playlist not found")
		}
		log.Printf("[ERROR] playlist lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch playlist")
	}

	if v := strings.TrimSpace(c.FormValue("playlist_name")); v != "" {
		playlist.PlaylistName = v
	}
	if v := strings.TrimSpace(c.FormValue("linktree")); v != "" {
		playlist.Linktree = v
	}

	oldCover := ""
	if file, err := c.FormFile("cover_art"); err == nil {
		if err := media.ValidateImageFile(file); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		coverURL, err := pc.Uploader.UploadPlaylistCoverArt(c.Context(), file, playlist.PlaylistName)
		if err != nil {
			log.Printf("[ERROR] playlist cover upload: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload cover art")
		}
		oldCover = playlist.CoverArtURL
		playlist.CoverArtURL = coverURL
	}

	if err := pc.DB.Save(&playlist).Error; err != nil {
		log.Printf("[ERROR] playlist update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update playlist")
	}

	if oldCover != "" && oldCover != playlist.CoverArtURL {
		if err := pc.Uploader.DeleteImage(c.Context(), oldCover); err != nil {
			log.Printf("[WARN] old playlist cover cleanup: %v", err)
		}
	}

	log.Printf("[SUCCESS] playlist %d updated", playlist.ID)
	return helper.Success(c, "Playlist updated", dto.FromModelPlaylist(&playlist))
}

// 🟢 DELETE (admin)
func (pc *PlaylistController) Delete(c *fiber.Ctx) error {
	playlistID, err := c.ParamsInt("playlist_id")
	if err != nil || playlistID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid playlist ID")
	}

	var playlist model.PlaylistModel
	if err := pc.DB.First(&playlist, playlistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Playlist not found")
		}
		log.Printf("[ERROR] playlist lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch playlist")
	}

	if err := pc.DB.Delete(&playlist).Error; err != nil {
		log.Printf("[ERROR] playlist delete: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete playlist")
	}

	if playlist.CoverArtURL != "" {
		if err := pc.Uploader.DeleteImage(c.Context(), playlist.CoverArtURL); err != nil {
			log.Printf("[WARN] playlist cover cleanup: %v", err)
		}
	}

	log.Printf("[SUCCESS] playlist %d deleted", playlist.ID)
	return helper.Success(c, "Playlist deleted", nil)
}
