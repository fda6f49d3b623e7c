package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/music/featured/dto"
	"exodus_backend/internals/features/music/ordering/service"
	songDto "exodus_backend/internals/features/music/songs/dto"
	helper "exodus_backend/internals/helpers"
)

var validate = validator.New()

type FeaturedController struct {
	DB *gorm.DB
}

func NewFeaturedController(db *gorm.DB) *FeaturedController {
	return &FeaturedController{DB: db}
}

// 🟢 LIST (public) — the "New Music" page, curated order
func (fc *FeaturedController) List(c *fiber.Ctx) error {
	entries, err := service.FeaturedSongs(fc.DB)
	if err != nil {
		log.Printf("[ERROR] featured list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch featured music")
	}

	out := make([]dto.FeaturedSongResponse, 0, len(entries))
	for i := range entries {
		out = append(out, dto.FeaturedSongResponse{
			Song:     songDto.FromModelSong(&entries[i].Song),
			Position: entries[i].Position,
		})
	}
	return helper.Success(c, "Featured music", out)
}

// 🟢 ADD (admin) — ?song_id=, appends at the end of the list
func (fc *FeaturedController) Add(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	songID := c.QueryInt("song_id")
	if songID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "song_id query parameter is required")
	}

	position, err := service.FeatureSong(fc.DB, userID, songID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Song not found")
		case errors.Is(err, service.ErrConflict):
			return helper.Error(c, fiber.StatusBadRequest, "Song is already featured")
		default:
			log.Printf("[ERROR] feature song %d: %v", songID, err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to feature song")
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Song featured", fiber.Map{
		"song_id":  songID,
		"position": position,
	})
}

// 🟢 REMOVE (admin)
func (fc *FeaturedController) Remove(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	songID, err := c.ParamsInt("song_id")
	if err != nil || songID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid song ID")
	}

	if err := service.UnfeatureSong(fc.DB, userID, songID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Song is not featured")
		}
		log.Printf("[ERROR] unfeature song %d: %v", songID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to remove featured song")
	}

	return helper.Success(c, "Featured song removed", nil)
}

// 🟢 REORDER (admin) — full or partial position rewrite, all-or-nothing
func (fc *FeaturedController) Reorder(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ReorderFeaturedRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.ReorderFeatured(fc.DB, userID, req.Updates()); err != nil {
		// The only precondition is "every song in the batch is featured".
		if errors.Is(err, service.ErrNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		log.Printf("[ERROR] featured reorder: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to reorder featured music")
	}

	return helper.Success(c, fmt.Sprintf("Updated %d featured positions", len(req.Positions)), nil)
}
