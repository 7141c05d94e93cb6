package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"portfolio-gateway/models"
	"portfolio-gateway/utils"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveOptions configures authentication and transport for DriveService
type DriveOptions struct {
	// APIKey grants access to publicly shared files
	APIKey string
	// CredentialsPath is the path to a Service Account JSON file, takes precedence over APIKey
	CredentialsPath string
	UserAgent       string
	Timeout         time.Duration
}

// DriveService handles Google Drive API operations
// Implements DriveServiceInterface
type DriveService struct {
	client     *drive.Service
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// NewDriveService creates a new DriveService instance.
// extra options are appended after the authentication option (endpoint overrides, HTTP client)
func NewDriveService(ctx context.Context, opts DriveOptions, extra ...option.ClientOption) (*DriveService, error) {
	var clientOpts []option.ClientOption
	switch {
	case opts.CredentialsPath != "":
		// option.WithCredentialsFile automatically handles Service Account authentication
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsPath))
	case opts.APIKey != "":
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	default:
		clientOpts = append(clientOpts, option.WithoutAuthentication())
	}
	clientOpts = append(clientOpts, extra...)

	driveService, err := drive.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	driveService.UserAgent = opts.UserAgent

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &DriveService{
		client:     driveService,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  opts.UserAgent,
		timeout:    timeout,
	}, nil
}

// ListFiles lists every non-trashed file in a Google Drive folder
func (ds *DriveService) ListFiles(ctx context.Context, folderID string) ([]models.DriveFile, error) {
	if folderID == "" {
		return nil, ErrMissingFileID
	}

	ctx, cancel := context.WithTimeout(ctx, ds.timeout)
	defer cancel()

	// Build query to list files in the folder
	query := fmt.Sprintf("'%s' in parents and trashed=false", strings.ReplaceAll(folderID, "'", `\'`))

	var files []models.DriveFile
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType, thumbnailLink)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		for _, f := range r.Files {
			files = append(files, models.DriveFile{
				ID:            f.Id,
				Name:          f.Name,
				MimeType:      f.MimeType,
				ThumbnailLink: f.ThumbnailLink,
			})
		}

		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	log.Printf("📦 Listed %d files in folder %s", len(files), folderID)
	return files, nil
}

// DownloadFile downloads the content of a Drive file
func (ds *DriveService) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, ErrMissingFileID
	}

	ctx, cancel := context.WithTimeout(ctx, ds.timeout)
	defer cancel()

	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}

	return data, nil
}

// GetFile returns the metadata of a Drive file
func (ds *DriveService) GetFile(ctx context.Context, fileID string) (models.DriveFile, error) {
	if fileID == "" {
		return models.DriveFile{}, ErrMissingFileID
	}

	ctx, cancel := context.WithTimeout(ctx, ds.timeout)
	defer cancel()

	file, err := ds.client.Files.Get(fileID).Context(ctx).Fields("id, name, mimeType, parents, thumbnailLink").Do()
	if err != nil {
		return models.DriveFile{}, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	return models.DriveFile{
		ID:            file.Id,
		Name:          file.Name,
		MimeType:      file.MimeType,
		Parents:       file.Parents,
		ThumbnailLink: file.ThumbnailLink,
	}, nil
}

// DownloadThumbnail downloads the image behind a Drive thumbnail link, asking Drive to render it at maxDim
func (ds *DriveService) DownloadThumbnail(ctx context.Context, thumbnailLink string, maxDim int) ([]byte, error) {
	if thumbnailLink == "" {
		return nil, ErrEmptyThumbnail
	}

	ctx, cancel := context.WithTimeout(ctx, ds.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, utils.ThumbnailURL(thumbnailLink, maxDim), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build thumbnail request: %w", err)
	}
	if ds.userAgent != "" {
		req.Header.Set("User-Agent", ds.userAgent)
	}

	resp, err := ds.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("thumbnail endpoint returned status %d: %w", resp.StatusCode, err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail data: %w", err)
	}
	return data, nil
}
