package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadSize = int64(8 * 1024 * 1024)

	// Anything larger gets fit-resized before the re-encode; Cloudinary does
	// the final crop, this only keeps uploads small.
	maxDimension = 2000

	webpQuality = float32(82)
)

var allowedExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {},
}

// ValidateImageFile rejects files we will not be able to decode.
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Filename == "" {
		return fmt.Errorf("filename is required")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return fmt.Errorf("invalid file format %q, allowed: jpg, jpeg, png, webp", ext)
	}
	if file.Size > maxUploadSize {
		return fmt.Errorf("image exceeds %dMB limit", maxUploadSize/(1024*1024))
	}
	return nil
}

// NormalizeImage decodes an upload, downsizes oversized images and re-encodes
// to webp so every asset shipped to the image host has a predictable size.
func NormalizeImage(file *multipart.FileHeader) (*bytes.Buffer, error) {
	if err := ValidateImageFile(file); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	img, err := decodeImage(raw)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > maxDimension || b.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return out, nil
}

func decodeImage(raw []byte) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty image file")
	}
	// webp first, stdlib sniffing for jpeg/png
	if img, err := webp.Decode(bytes.NewReader(raw)); err == nil {
		return img, nil
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// slugify turns a display name into a safe public-id fragment. Deterministic
// so a re-upload for the same name overwrites the previous asset.
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "'", "")
	s = nonSlugChars.ReplaceAllString(s, "")
	if s == "" {
		s = uuid.New().String()
	}
	return s
}
