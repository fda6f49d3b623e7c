package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"exodus_backend/internals/features/music/artists/dto"
	"exodus_backend/internals/features/music/artists/model"
	"exodus_backend/internals/features/music/ordering/service"
	songDto "exodus_backend/internals/features/music/songs/dto"
	songModel "exodus_backend/internals/features/music/songs/model"
	videoDto "exodus_backend/internals/features/music/videos/dto"
	videoModel "exodus_backend/internals/features/music/videos/model"
	helper "exodus_backend/internals/helpers"
	"exodus_backend/internals/helpers/media"
)

var validate = validator.New()

type ArtistController struct {
	DB       *gorm.DB
	Uploader media.Uploader
}

func NewArtistController(db *gorm.DB, up media.Uploader) *ArtistController {
	return &ArtistController{DB: db, Uploader: up}
}

// 🟢 LIST (public)
func (ac *ArtistController) List(c *fiber.Ctx) error {
	var artists []model.ArtistModel
	if err := ac.DB.Order("artist_name ASC").Find(&artists).Error; err != nil {
		log.Printf("[ERROR] artist list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch artists")
	}

	out := make([]dto.ArtistResponse, 0, len(artists))
	for i := range artists {
		out = append(out, dto.FromModelArtist(&artists[i]))
	}
	return helper.Success(c, "Artists", out)
}

// 🟢 DETAIL (public) — profile plus songs and videos in display order
func (ac *ArtistController) GetByID(c *fiber.Ctx) error {
	artistID, err := c.ParamsInt("artist_id")
	if err != nil || artistID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	var artist model.ArtistModel
	if err := ac.DB.First(&artist, artistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Artist not found")
		}
		log.Printf("[ERROR] artist lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch artist")
	}

	songs, err := service.OrderedSongs(ac.DB, artistID)
	if err != nil {
		log.Printf("[ERROR] ordered songs: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch artist songs")
	}
	videos, err := service.OrderedVideos(ac.DB, artistID)
	if err != nil {
		log.Printf("[ERROR] ordered videos: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch artist videos")
	}

	detail := dto.ArtistDetailResponse{
		ArtistResponse: dto.FromModelArtist(&artist),
		Songs:          make([]dto.OrderedSongResponse, 0, len(songs)),
		Videos:         make([]dto.OrderedVideoResponse, 0, len(videos)),
	}
	for i := range songs {
		detail.Songs = append(detail.Songs, dto.OrderedSongResponse{
			SongResponse: songDto.FromModelSong(&songs[i].SongModel),
			DisplayOrder: songs[i].DisplayOrder,
		})
	}
	for i := range videos {
		detail.Videos = append(detail.Videos, dto.OrderedVideoResponse{
			VideoResponse: videoDto.FromModelVideo(&videos[i].VideoModel),
			DisplayOrder:  videos[i].DisplayOrder,
		})
	}

	return helper.Success(c, "Artist", detail)
}

// 🟢 ADD (admin, multipart: artist_name, genres JSON array, banner_image,
// profile_image, optional links). Uploaded images are deleted again when the
// insert fails, so the image host never holds rows we do not.
func (ac *ArtistController) Add(c *fiber.Ctx) error {
	artistName := strings.TrimSpace(c.FormValue("artist_name"))
	if artistName == "" {
		return helper.Error(c, fiber.StatusBadRequest, "artist_name is required")
	}

	genres, err := parseGenres(c.FormValue("genres"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "genres must be a JSON array of strings")
	}

	bannerFile, err := c.FormFile("banner_image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "banner_image is required")
	}
	profileFile, err := c.FormFile("profile_image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "profile_image is required")
	}
	if err := media.ValidateImageFile(bannerFile); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := media.ValidateImageFile(profileFile); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	bannerURL, err := ac.Uploader.UploadArtistBanner(c.Context(), bannerFile, artistName)
	if err != nil {
		log.Printf("[ERROR] banner upload: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload banner image")
	}
	profileURL, err := ac.Uploader.UploadArtistImage(c.Context(), profileFile, artistName)
	if err != nil {
		ac.cleanupImages(c, bannerURL)
		log.Printf("[ERROR] profile upload: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload profile image")
	}

	artist := model.ArtistModel{
		ArtistName:       artistName,
		BannerImageURL:   bannerURL,
		ImageURL:         profileURL,
		Genres:           genres,
		SpotifyLink:      formLink(c, "spotify_link"),
		AppleMusicLink:   formLink(c, "apple_music_link"),
		YoutubeLink:      formLink(c, "youtube_link"),
		YoutubeMusicLink: formLink(c, "youtube_music_link"),
		InstagramLink:    formLink(c, "instagram_link"),
		XLink:            formLink(c, "x_link"),
		TiktokLink:       formLink(c, "tiktok_link"),
	}
	if err := ac.DB.Create(&artist).Error; err != nil {
		ac.cleanupImages(c, bannerURL, profileURL)
		log.Printf("[ERROR] artist create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create artist")
	}

	log.Printf("[SUCCESS] artist %d created", artist.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Artist created", dto.FromModelArtist(&artist))
}

// 🟢 EDIT (admin, multipart, all fields optional)
func (ac *ArtistController) Edit(c *fiber.Ctx) error {
	artistID, err := c.ParamsInt("artist_id")
	if err != nil || artistID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	var artist model.ArtistModel
	if err := ac.DB.First(&artist, artistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Artist not found")
		}
		log.Printf("[ERROR] artist lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch artist")
	}

	if v := strings.TrimSpace(c.FormValue("artist_name")); v != "" {
		artist.ArtistName = v
	}
	if raw := strings.TrimSpace(c.FormValue("genres")); raw != "" {
		genres, err := parseGenres(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "genres must be a JSON array of strings")
		}
		artist.Genres = genres
	}
	for field, dst := range map[string]**string{
		"spotify_link":       &artist.SpotifyLink,
		"apple_music_link":   &artist.AppleMusicLink,
		"youtube_link":       &artist.YoutubeLink,
		"youtube_music_link": &artist.YoutubeMusicLink,
		"instagram_link":     &artist.InstagramLink,
		"x_link":             &artist.XLink,
		"tiktok_link":        &artist.TiktokLink,
	} {
		if v := formLink(c, field); v != nil {
			*dst = v
		}
	}

	var oldImages []string
	if file, err := c.FormFile("banner_image"); err == nil {
		if err := media.ValidateImageFile(file); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		url, err := ac.Uploader.UploadArtistBanner(c.Context(), file, artist.ArtistName)
		if err != nil {
			log.Printf("[ERROR] banner upload: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload banner image")
		}
		if artist.BannerImageURL != "" && artist.BannerImageURL != url {
			oldImages = append(oldImages, artist.BannerImageURL)
		}
		artist.BannerImageURL = url
	}
	if file, err := c.FormFile("profile_image"); err == nil {
		if err := media.ValidateImageFile(file); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		url, err := ac.Uploader.UploadArtistImage(c.Context(), file, artist.ArtistName)
		if err != nil {
			log.Printf("[ERROR] profile upload: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload profile image")
		}
		if artist.ImageURL != "" && artist.ImageURL != url {
			oldImages = append(oldImages, artist.ImageURL)
		}
		artist.ImageURL = url
	}

	if err := ac.DB.Save(&artist).Error; err != nil {
		log.Printf("[ERROR] artist update: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update artist")
	}

	ac.cleanupImages(c, oldImages...)

	log.Printf("[SUCCESS] artist %d updated", artist.ID)
	return helper.Success(c, "Artist updated", dto.FromModelArtist(&artist))
}

// 🟢 DELETE (admin) — one transaction removes the artist, its songs and
// videos, and every order and featured entry that references any of them.
// Image host cleanup runs after commit and is best effort.
func (ac *ArtistController) Delete(c *fiber.Ctx) error {
	artistID, err := c.ParamsInt("artist_id")
	if err != nil || artistID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	var artist model.ArtistModel
	if err := ac.DB.First(&artist, artistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Artist not found")
		}
		log.Printf("[ERROR] artist lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch artist")
	}

	var songs []songModel.SongModel
	if err := ac.DB.Where("artist_id = ?", artistID).Find(&songs).Error; err != nil {
		log.Printf("[ERROR] artist songs lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch artist songs")
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.PurgeArtistEntries(tx, artistID); err != nil {
			return err
		}
		for i := range songs {
			if err := service.PurgeSongEntries(tx, songs[i].ID); err != nil {
				return err
			}
		}
		if err := tx.Where("artist_id = ?", artistID).Delete(&songModel.SongModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("artist_id = ?", artistID).Delete(&videoModel.VideoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
	if err != nil {
		log.Printf("[ERROR] artist delete: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete artist")
	}

	images := []string{artist.BannerImageURL, artist.ImageURL}
	for i := range songs {
		images = append(images, songs[i].CoverArtURL)
	}
	ac.cleanupImages(c, images...)

	log.Printf("[SUCCESS] artist %d deleted with %d songs", artist.ID, len(songs))
	return helper.Success(c, "Artist deleted", nil)
}

// 🟢 REORDER SONGS (admin) — body {"items":[{"id","position"}]}
func (ac *ArtistController) ReorderSongs(c *fiber.Ctx) error {
	return ac.reorder(c, service.ReorderSongs, "song")
}

// 🟢 REORDER VIDEOS (admin)
func (ac *ArtistController) ReorderVideos(c *fiber.Ctx) error {
	return ac.reorder(c, service.ReorderVideos, "video")
}

func (ac *ArtistController) reorder(
	c *fiber.Ctx,
	apply func(*gorm.DB, int, int, []service.PositionUpdate) error,
	kind string,
) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	artistID, err := c.ParamsInt("artist_id")
	if err != nil || artistID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := apply(ac.DB, userID, artistID, req.Updates()); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Artist not found")
		case errors.Is(err, service.ErrInvalidReference):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Printf("[ERROR] %s reorder for artist %d: %v", kind, artistID, err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to reorder")
		}
	}

	return helper.Success(c, fmt.Sprintf("Updated %d %s positions", len(req.Items), kind), nil)
}

func (ac *ArtistController) cleanupImages(c *fiber.Ctx, urls ...string) {
	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := ac.Uploader.DeleteImage(c.Context(), u); err != nil {
			log.Printf("[WARN] image cleanup %s: %v", u, err)
		}
	}
}

func formLink(c *fiber.Ctx, field string) *string {
	v := strings.TrimSpace(c.FormValue(field))
	if v == "" {
		return nil
	}
	return &v
}

func parseGenres(raw string) (datatypes.JSON, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return datatypes.JSON([]byte("[]")), nil
	}
	var genres []string
	if err := sonic.UnmarshalString(raw, &genres); err != nil {
		return nil, err
	}
	buf, err := sonic.Marshal(genres)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(buf), nil
}
