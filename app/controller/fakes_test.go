package controller

import (
	"context"

	"portfolio-gateway/models"
)

type fakeCertificateService struct {
	certificates []models.Certificate
	err          error
}

func (f *fakeCertificateService) ListCertificates(_ context.Context) ([]models.Certificate, error) {
	return f.certificates, f.err
}

type fakeDocumentService struct {
	content map[string][]byte
	err     error
	fetched []string
}

func (f *fakeDocumentService) FetchJSON(_ context.Context, fileID string) ([]byte, error) {
	f.fetched = append(f.fetched, fileID)
	if f.err != nil {
		return nil, f.err
	}
	return f.content[fileID], nil
}

type fakeThumbnailService struct {
	data  []byte
	err   error
	calls []string
}

func (f *fakeThumbnailService) Thumbnail(_ context.Context, fileID string, size string) ([]byte, error) {
	f.calls = append(f.calls, fileID+":"+size)
	return f.data, f.err
}

type recordingObserver struct {
	observed []string
}

func (o *recordingObserver) ObserveDriveError(route, kind string) {
	o.observed = append(o.observed, route+":"+kind)
}
