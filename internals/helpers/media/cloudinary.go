package media

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"exodus_backend/internals/configs"
)

// Uploader is what the controllers depend on, so tests can stub the image
// host away entirely.
type Uploader interface {
	UploadArtistBanner(ctx context.Context, file *multipart.FileHeader, artistName string) (string, error)
	UploadArtistImage(ctx context.Context, file *multipart.FileHeader, artistName string) (string, error)
	UploadSongCoverArt(ctx context.Context, file *multipart.FileHeader, songName, artistName string) (string, error)
	UploadPlaylistCoverArt(ctx context.Context, file *multipart.FileHeader, playlistName string) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService() (*CloudinaryService, error) {
	if configs.CloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is not set")
	}
	cld, err := cloudinary.NewFromURL(configs.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryService{cld: cld}, nil
}

// Crop specs mirror what the frontend renders: banners are 3:1, profile
// images and song covers are square, playlist covers keep their size.
const (
	bannerTransformation  = "c_fill,g_auto,w_1200,h_400"
	profileTransformation = "c_fill,g_auto,w_800,h_800"
	coverTransformation   = "c_fill,g_auto,w_1000,h_1000"
)

func (s *CloudinaryService) UploadArtistBanner(ctx context.Context, file *multipart.FileHeader, artistName string) (string, error) {
	return s.upload(ctx, file, "artists/banners", slugify(artistName)+"_banner", bannerTransformation)
}

func (s *CloudinaryService) UploadArtistImage(ctx context.Context, file *multipart.FileHeader, artistName string) (string, error) {
	return s.upload(ctx, file, "artists/profiles", slugify(artistName)+"_profile", profileTransformation)
}

func (s *CloudinaryService) UploadSongCoverArt(ctx context.Context, file *multipart.FileHeader, songName, artistName string) (string, error) {
	publicID := fmt.Sprintf("%s_%s_cover", slugify(artistName), slugify(songName))
	return s.upload(ctx, file, "songs/covers", publicID, coverTransformation)
}

func (s *CloudinaryService) UploadPlaylistCoverArt(ctx context.Context, file *multipart.FileHeader, playlistName string) (string, error) {
	return s.upload(ctx, file, "playlists/covers", slugify(playlistName)+"_cover", "")
}

func (s *CloudinaryService) upload(ctx context.Context, file *multipart.FileHeader, folder, publicID, transformation string) (string, error) {
	buf, err := NormalizeImage(file)
	if err != nil {
		return "", err
	}

	params := uploader.UploadParams{
		Folder:    folder,
		PublicID:  publicID,
		Overwrite: api.Bool(true),
	}
	if transformation != "" {
		params.Transformation = transformation
	}

	resp, err := s.cld.Upload.Upload(ctx, buf, params)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// DeleteImage removes an asset given its secure URL. Failures are logged and
// swallowed by most callers: a dangling asset on the image host is cheaper
// than failing the whole request.
func (s *CloudinaryService) DeleteImage(ctx context.Context, imageURL string) error {
	publicID, ok := PublicIDFromURL(imageURL)
	if !ok {
		return fmt.Errorf("not a cloudinary URL: %s", imageURL)
	}

	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if resp.Result != "ok" {
		log.Printf("[WARN] cloudinary destroy %s: %s", publicID, resp.Result)
	}
	return nil
}

// PublicIDFromURL extracts the public id out of a delivery URL, e.g.
// https://res.cloudinary.com/demo/image/upload/v123/songs/covers/x_cover.webp
// -> songs/covers/x_cover
func PublicIDFromURL(imageURL string) (string, bool) {
	parts := strings.SplitN(imageURL, "/upload/", 2)
	if len(parts) < 2 {
		return "", false
	}
	segs := strings.Split(parts[1], "/")
	if len(segs) >= 2 && strings.HasPrefix(segs[0], "v") {
		segs = segs[1:] // drop the version segment
	}
	publicID := strings.Join(segs, "/")
	if i := strings.LastIndex(publicID, "."); i > 0 {
		publicID = publicID[:i]
	}
	if publicID == "" {
		return "", false
	}
	return publicID, true
}
