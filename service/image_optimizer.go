package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// Thumbnail sizes accepted by OptimizeImage
const (
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

// ValidThumbnailSize reports whether size is a known thumbnail size
func ValidThumbnailSize(size string) bool {
	return size == SizeThumb || size == SizeMedium
}

// ThumbnailServiceInterface defines the contract for certificate thumbnails
type ThumbnailServiceInterface interface {
	Thumbnail(ctx context.Context, fileID string, size string) ([]byte, error)
}

// ThumbnailService downloads Drive thumbnails of certificates and optimizes them
// Implements ThumbnailServiceInterface
type ThumbnailService struct {
	driveService DriveServiceInterface
	folderID     string
}

// NewThumbnailService creates a new ThumbnailService restricted to the PDFs of folderID
func NewThumbnailService(driveService DriveServiceInterface, folderID string) *ThumbnailService {
	return &ThumbnailService{
		driveService: driveService,
		folderID:     folderID,
	}
}

// Ensure ThumbnailService implements ThumbnailServiceInterface
var _ ThumbnailServiceInterface = (*ThumbnailService)(nil)

// Thumbnail returns an optimized JPEG thumbnail of a certificate.
// Files outside the certificates folder, or that are not PDFs, are rejected before any image is fetched
func (s *ThumbnailService) Thumbnail(ctx context.Context, fileID string, size string) ([]byte, error) {
	if s.folderID == "" {
		return nil, ErrMissingFileID
	}

	file, err := s.driveService.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if !file.InFolder(s.folderID) || strings.ToLower(file.MimeType) != CertificateMimeType {
		return nil, fmt.Errorf("file %s: %w", fileID, ErrNotCertificate)
	}
	if file.ThumbnailLink == "" {
		return nil, fmt.Errorf("file %s: %w", fileID, ErrEmptyThumbnail)
	}

	maxDim, _, _ := sizeSettings(size)
	imageData, err := s.driveService.DownloadThumbnail(ctx, file.ThumbnailLink, maxDim)
	if err != nil {
		return nil, err
	}
	return OptimizeImage(imageData, size)
}

// sizeSettings returns the max dimension and JPEG quality of a size, and whether it is known
func sizeSettings(size string) (maxDim int, quality int, known bool) {
	switch size {
	case SizeThumb:
		return maxSizeThumb, qualityThumb, true
	case SizeMedium:
		return maxSizeMedium, qualityMedium, true
	default:
		return maxSizeMedium, qualityMedium, false
	}
}

// OptimizeImage optimizes an image by converting to JPEG and resizing
// imageData: raw image bytes (PNG, JPEG)
// size: "thumb" or "medium"
// Returns optimized JPEG image bytes
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	// Decode the image
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Determine max dimension and quality based on size
	maxDim, quality, known := sizeSettings(size)
	if !known {
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	// Resize image if needed, Fit keeps the aspect ratio
	bounds := img.Bounds()
	var resizedImg image.Image = img
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		resizedImg = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		log.Printf("🔄 Resized %s image: %dx%d -> %dx%d", format, bounds.Dx(), bounds.Dy(),
			resizedImg.Bounds().Dx(), resizedImg.Bounds().Dy())
	}

	// Encode to JPEG
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resizedImg, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	return buf.Bytes(), nil
}
