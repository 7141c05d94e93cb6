package service

import (
	"context"
	"encoding/json"
	"fmt"
)

// DocumentServiceInterface defines the contract for fetching JSON documents stored in Drive
type DocumentServiceInterface interface {
	FetchJSON(ctx context.Context, fileID string) ([]byte, error)
}

// DocumentService fetches JSON payloads (tools, education, skills) from Drive
// Implements DocumentServiceInterface
type DocumentService struct {
	driveService DriveServiceInterface
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(driveService DriveServiceInterface) *DocumentService {
	return &DocumentService{
		driveService: driveService,
	}
}

// Ensure DocumentService implements DocumentServiceInterface
var _ DocumentServiceInterface = (*DocumentService)(nil)

// FetchJSON downloads a Drive file and returns its bytes unchanged once they are known to be JSON
func (s *DocumentService) FetchJSON(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, ErrMissingFileID
	}

	data, err := s.driveService.DownloadFile(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("file %s: %w", fileID, ErrMalformedPayload)
	}

	return data, nil
}
