package service

import (
	"context"

	"portfolio-gateway/models"
)

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListFiles(ctx context.Context, folderID string) ([]models.DriveFile, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
	// GetFile returns the metadata of one file, parents and thumbnail link included
	GetFile(ctx context.Context, fileID string) (models.DriveFile, error)
	// DownloadThumbnail fetches a thumbnail link rendered at maxDim pixels
	DownloadThumbnail(ctx context.Context, thumbnailLink string, maxDim int) ([]byte, error)
}
