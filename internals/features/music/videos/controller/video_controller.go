package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	artistModel "exodus_backend/internals/features/music/artists/model"
	"exodus_backend/internals/features/music/ordering/service"
	"exodus_backend/internals/features/music/videos/dto"
	"exodus_backend/internals/features/music/videos/model"
	helper "exodus_backend/internals/helpers"
	"exodus_backend/internals/helpers/media"
)

var validate = validator.New()

const detachSentinel = -1

type VideoController struct {
	DB *gorm.DB
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{DB: db}
}

// 🟢 LIST (public)
func (vc *VideoController) List(c *fiber.Ctx) error {
	var videos []model.VideoModel
	if err := vc.DB.Order("created_at DESC").Find(&videos).Error; err != nil {
		log.Printf("[ERROR] video list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch videos")
	}

	out := make([]dto.VideoResponse, 0, len(videos))
	for i := range videos {
		out = append(out, dto.FromModelVideo(&videos[i]))
	}
	return helper.Success(c, "Videos", out)
}

// 🟢 ADD (admin) — bulk, all-or-nothing. Every referenced artist must exist
// before a single row is written; one transaction creates the videos and
// their order entries together.
func (vc *VideoController) Add(c *fiber.Ctx) error {
	var req dto.AddVideosRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Validate the whole batch up front.
	for i := range req.Videos {
		item := &req.Videos[i]
		if item.ArtistID != nil {
			if ok, err := vc.artistExists(*item.ArtistID); err != nil {
				log.Printf("[ERROR] artist lookup: %v", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify artist")
			} else if !ok {
				return helper.Error(c, fiber.StatusBadRequest,
					fmt.Sprintf("Artist %d does not exist", *item.ArtistID))
			}
		}
	}

	videos := make([]model.VideoModel, 0, len(req.Videos))
	for i := range req.Videos {
		item := &req.Videos[i]
		videos = append(videos, model.VideoModel{
			VideoName:    strings.TrimSpace(item.VideoName),
			VideoLink:    strings.TrimSpace(item.VideoLink),
			ArtistName:   strings.TrimSpace(item.ArtistName),
			ArtistID:     item.ArtistID,
			ThumbnailURL: media.YouTubeThumbnailURL(item.VideoLink),
		})
	}

	err := vc.DB.Transaction(func(tx *gorm.DB) error {
		for i := range videos {
			if err := tx.Create(&videos[i]).Error; err != nil {
				return err
			}
			if videos[i].ArtistID != nil {
				if _, err := service.AttachVideo(tx, *videos[i].ArtistID, videos[i].ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] video batch create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create videos")
	}

	out := make([]dto.VideoResponse, 0, len(videos))
	for i := range videos {
		out = append(out, dto.FromModelVideo(&videos[i]))
	}
	log.Printf("[SUCCESS] %d videos created", len(videos))
	return helper.SuccessWithCode(c, fiber.StatusCreated,
		fmt.Sprintf("Created %d videos", len(videos)), out)
}

// 🟢 EDIT (admin, JSON). A new video_link re-derives the thumbnail; artist
// moves run detach + attach in one transaction.
func (vc *VideoController) Edit(c *fiber.Ctx) error {
	videoID, err := c.ParamsInt("video_id")
	if err != nil || videoID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid video ID")
	}

	var req dto.EditVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var video model.VideoModel
	if err := vc.DB.First(&video, videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Video not found")
		}
		log.Printf("[ERROR] video lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch video")
	}

	if req.VideoName != nil && strings.TrimSpace(*req.VideoName) != "" {
		video.VideoName = strings.TrimSpace(*req.VideoName)
	}
	if req.ArtistName != nil && strings.TrimSpace(*req.ArtistName) != "" {
		video.ArtistName = strings.TrimSpace(*req.ArtistName)
	}
	if req.VideoLink != nil && strings.TrimSpace(*req.VideoLink) != "" {
		video.VideoLink = strings.TrimSpace(*req.VideoLink)
		video.ThumbnailURL = media.YouTubeThumbnailURL(video.VideoLink)
	}

	oldArtistID := video.ArtistID
	linkChanged := false
	if req.ArtistID != nil {
		newID := *req.ArtistID
		switch {
		case newID == detachSentinel:
			if video.ArtistID != nil {
				video.ArtistID = nil
				linkChanged = true
			}
		case newID <= 0:
			return helper.Error(c, fiber.StatusBadRequest, "Invalid artist_id")
		case video.ArtistID == nil || *video.ArtistID != newID:
			if ok, err := vc.artistExists(newID); err != nil {
				log.Printf("[ERROR] artist lookup: %v", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify artist")
			} else if !ok {
				return helper.Error(c, fiber.StatusBadRequest,
					fmt.Sprintf("Artist %d does not exist", newID))
			}
			video.ArtistID = &newID
			linkChanged = true
		}
	}

	err = vc.DB.Transaction(func(tx *gorm.DB) error {
		if linkChanged && oldArtistID != nil {
			if err := service.DetachVideo(tx, *oldArtistID, video.ID); err != nil {
				return err
			}
		}
		if err := tx.Save(&video).Error; err != nil {
			return err
		}
		if linkChanged && video.ArtistID != nil {
			if _, err := service.AttachVideo(tx, *video.ArtistID, video.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] video update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update video")
	}

	log.Printf("[SUCCESS] video %d updated", video.ID)
	return helper.Success(c, "Video updated", dto.FromModelVideo(&video))
}

// 🟢 DELETE (admin) — order entries go in the same transaction as the row.
func (vc *VideoController) Delete(c *fiber.Ctx) error {
	videoID, err := c.ParamsInt("video_id")
	if err != nil || videoID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid video ID")
	}

	var video model.VideoModel
	if err := vc.DB.First(&video, videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Video not found")
		}
		log.Printf("[ERROR] video lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch video")
	}

	err = vc.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.PurgeVideoEntries(tx, video.ID); err != nil {
			return err
		}
		return tx.Delete(&video).Error
	})
	if err != nil {
		log.Printf("[ERROR] video delete: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete video")
	}

	log.Printf("[SUCCESS] video %d deleted", video.ID)
	return helper.Success(c, "Video deleted", nil)
}

func (vc *VideoController) artistExists(artistID int) (bool, error) {
	var count int64
	err := vc.DB.Model(&artistModel.ArtistModel{}).Where("id = ?", artistID).Count(&count).Error
	return count > 0, err
}
