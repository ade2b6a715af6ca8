package service

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"strings"

	"redsocial/internal/config"
	"redsocial/internal/models"
	"redsocial/internal/storage"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	defaultMaxUploadSizeMB = 10
	mediaMaxDimension      = 2048
	mediaWebPQuality       = 80
)

type UploadMediaInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// MediaService normalizes uploaded images before they hit the store: decode,
// downscale to a bounded size, re-encode as WebP. Whatever the client sends,
// the store only ever holds one format.
type MediaService struct {
	store              storage.MediaStore
	maxUploadSizeBytes int64
}

func NewMediaService(store storage.MediaStore, cfg *config.Config) *MediaService {
	maxUploadSizeMB := defaultMaxUploadSizeMB
	if cfg != nil && cfg.MaxUploadSizeMB > 0 {
		maxUploadSizeMB = cfg.MaxUploadSizeMB
	}
	return &MediaService{
		store:              store,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// Upload validates, normalizes, and stores an image. It returns the stored
// file name.
func (s *MediaService) Upload(in UploadMediaInput) (string, error) {
	if len(in.Content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadSizeBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detected := http.DetectContentType(in.Content)
	if !isAllowedMediaMIME(detected) {
		return "", models.NewValidationError("Invalid image type")
	}

	decoded, format, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}
	if !isSupportedMediaFormat(format) {
		return "", models.NewValidationError("Unsupported image format")
	}

	normalized := downscaleToFit(decoded, mediaMaxDimension)
	encoded, err := encodeMediaWebP(normalized, mediaWebPQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	name, err := s.store.Save(encoded, "webp")
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return name, nil
}

// ResolvePath maps a stored file name back to its on-disk path, or not-found.
func (s *MediaService) ResolvePath(fileName string) (string, error) {
	if fileName == "" {
		return "", models.NewNotFoundError("File not found")
	}
	path, err := s.store.Resolve(fileName)
	if err != nil {
		return "", models.NewNotFoundError("File not found")
	}
	return path, nil
}

func isAllowedMediaMIME(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func isSupportedMediaFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "jpeg", "jpg", "png", "gif", "webp":
		return true
	default:
		return false
	}
}

func downscaleToFit(src image.Image, maxSize int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || (w <= maxSize && h <= maxSize) {
		return src
	}

	scale := float64(maxSize) / float64(w)
	if sh := float64(maxSize) / float64(h); sh < scale {
		scale = sh
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeMediaWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
