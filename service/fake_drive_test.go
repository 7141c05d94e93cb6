package service

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"portfolio-gateway/models"
)

type fakeDriveService struct {
	files     []models.DriveFile
	content   map[string][]byte
	thumbnail []byte
	err       error

	listedFolder string
	downloaded   []string
	inspected    []string
}

func (f *fakeDriveService) ListFiles(_ context.Context, folderID string) ([]models.DriveFile, error) {
	f.listedFolder = folderID
	if f.err != nil {
		return nil, f.err
	}
	return f.files, nil
}

func (f *fakeDriveService) DownloadFile(_ context.Context, fileID string) ([]byte, error) {
	f.downloaded = append(f.downloaded, fileID)
	if f.err != nil {
		return nil, f.err
	}
	return f.content[fileID], nil
}

func (f *fakeDriveService) GetFile(_ context.Context, fileID string) (models.DriveFile, error) {
	f.inspected = append(f.inspected, fileID)
	if f.err != nil {
		return models.DriveFile{}, f.err
	}
	for _, file := range f.files {
		if file.ID == fileID {
			return file, nil
		}
	}
	return models.DriveFile{}, &googleapi.Error{Code: http.StatusNotFound}
}

func (f *fakeDriveService) DownloadThumbnail(_ context.Context, thumbnailLink string, maxDim int) ([]byte, error) {
	f.downloaded = append(f.downloaded, fmt.Sprintf("%s@%d", thumbnailLink, maxDim))
	if f.err != nil {
		return nil, f.err
	}
	return f.thumbnail, nil
}
