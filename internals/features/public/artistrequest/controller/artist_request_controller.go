package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/constants"
	"exodus_backend/internals/features/public/artistrequest/dto"
	"exodus_backend/internals/features/public/artistrequest/model"
	helper "exodus_backend/internals/helpers"
)

var validate = validator.New()

type ArtistRequestController struct {
	DB *gorm.DB
}

func NewArtistRequestController(db *gorm.DB) *ArtistRequestController {
	return &ArtistRequestController{DB: db}
}

// 🟢 SUBMIT (public) — one request per email
func (rc *ArtistRequestController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	request := model.ArtistRequestModel{
		ArtistName:             strings.TrimSpace(req.ArtistName),
		Email:                  strings.ToLower(strings.TrimSpace(req.Email)),
		IGLink:                 dto.TrimPtr(req.IGLink),
		YTLink:                 dto.TrimPtr(req.YTLink),
		SpotifyLink:            dto.TrimPtr(req.SpotifyLink),
		AppleMusicLink:         dto.TrimPtr(req.AppleMusicLink),
		MusicDistribution:      req.MusicDistribution,
		MusicPublishing:        req.MusicPublishing,
		ProdAndEngineering:     req.ProdAndEngineering,
		MarketingAndPromotions: req.MarketingAndPromotions,
		Status:                 constants.RequestStatusPending,
	}

	if err := rc.DB.Create(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusBadRequest, "An artist request with this email already exists")
		}
		log.Printf("[ERROR] artist request create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit artist request")
	}

	log.Printf("[SUCCESS] artist request %d submitted", request.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Artist request submitted",
		dto.FromModelArtistRequest(&request))
}

// 🟢 LIST (admin) — optional ?status_filter=pending|approved|rejected
func (rc *ArtistRequestController) List(c *fiber.Ctx) error {
	query := rc.DB.Model(&model.ArtistRequestModel{})

	if f := strings.ToLower(c.Query("status_filter")); f != "" {
		if !constants.IsValidRequestStatus(f) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		query = query.Where("status = ?", f)
	}

	var requests []model.ArtistRequestModel
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		log.Printf("[ERROR] artist request list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch artist requests")
	}

	out := make([]dto.ArtistRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, dto.FromModelArtistRequest(&requests[i]))
	}
	return helper.Success(c, "Artist requests", out)
}

// 🟢 UPDATE STATUS (admin)
func (rc *ArtistRequestController) UpdateStatus(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("request_id")
	if err != nil || requestID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := rc.DB.Model(&model.ArtistRequestModel{}).
		Where("id = ?", requestID).Update("status", req.Status)
	if res.Error != nil {
		log.Printf("[ERROR] artist request status: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update artist request")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Artist request not found")
	}

	return helper.Success(c, "Artist request updated", fiber.Map{
		"id":     requestID,
		"status": req.Status,
	})
}

// 🟢 DELETE (admin)
func (rc *ArtistRequestController) Delete(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("request_id")
	if err != nil || requestID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	res := rc.DB.Delete(&model.ArtistRequestModel{}, requestID)
	if res.Error != nil {
		log.Printf("[ERROR] artist request delete: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete artist request")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Artist request not found")
	}

	return helper.Success(c, "Artist request deleted", nil)
}
