package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gateway/config"
	"portfolio-gateway/metrics"
	"portfolio-gateway/models"
)

const indexHTML = "<!doctype html><title>portfolio</title>"

type fakeDrive struct {
	files   []models.DriveFile
	content map[string][]byte
	err     error

	thumbnailsFetched []string
}

func (f *fakeDrive) ListFiles(_ context.Context, _ string) ([]models.DriveFile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.files, nil
}

func (f *fakeDrive) DownloadFile(_ context.Context, fileID string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.content[fileID], nil
}

func (f *fakeDrive) GetFile(_ context.Context, fileID string) (models.DriveFile, error) {
	if f.err != nil {
		return models.DriveFile{}, f.err
	}
	return models.DriveFile{
		ID:            fileID,
		MimeType:      "application/vnd.google-apps.document",
		Parents:       []string{"private-folder"},
		ThumbnailLink: "https://lh3.example/" + fileID + "=s220",
	}, nil
}

func (f *fakeDrive) DownloadThumbnail(_ context.Context, thumbnailLink string, _ int) ([]byte, error) {
	f.thumbnailsFetched = append(f.thumbnailsFetched, thumbnailLink)
	return nil, errors.New("no thumbnails in tests")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	publicDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte(indexHTML), 0o644))

	return &config.Config{
		Port:                 "0",
		FrontendURL:          "*",
		PublicDir:            publicDir,
		DriveTimeout:         time.Second,
		ShutdownTimeout:      time.Second,
		CertificatesFolderID: "folder",
		ToolsFileID:          "tools-id",
		EducationFileID:      "education-id",
		SkillsFileID:         "skills-id",
		ResumeFileID:         "resume-id",
	}
}

func newTestServer(t *testing.T, drive *fakeDrive) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(NewHandler(testConfig(t), drive, metrics.New()))
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHandler_Status(t *testing.T) {
	server := newTestServer(t, &fakeDrive{err: errors.New("unused")})

	resp, body := get(t, server.Client(), server.URL+"/api/status")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"Backend Running","version":"1.0.0"}`, body)
}

func TestHandler_Resume(t *testing.T) {
	server := newTestServer(t, &fakeDrive{})

	client := server.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	resp, _ := get(t, client, server.URL+"/resume")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "resume-id")
}

func TestHandler_Certificates(t *testing.T) {
	server := newTestServer(t, &fakeDrive{
		files: []models.DriveFile{
			{ID: "1", Name: "A-B-C.pdf", MimeType: "application/pdf"},
			{ID: "2", Name: "A.pdf", MimeType: "application/pdf"},
			{ID: "3", Name: "X-Y-Z.png", MimeType: "image/png"},
		},
	})

	resp, body := get(t, server.Client(), server.URL+"/certificates")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var certificates []models.Certificate
	require.NoError(t, json.Unmarshal([]byte(body), &certificates))
	assert.Equal(t, []models.Certificate{
		{Title: "A", Issuer: "B", Description: "C", Link: "https://drive.google.com/file/d/1/view?usp=sharing"},
		{Title: "A", Issuer: "Unknown", Description: "", Link: "https://drive.google.com/file/d/2/view?usp=sharing"},
	}, certificates)
}

func TestHandler_Documents(t *testing.T) {
	server := newTestServer(t, &fakeDrive{
		content: map[string][]byte{
			"tools-id":     []byte(`["Go","Docker"]`),
			"education-id": []byte(`{"school":"MIT"}`),
			"skills-id":    []byte(`{"backend":["Go"]}`),
		},
	})

	for path, want := range map[string]string{
		"/tools":     `["Go","Docker"]`,
		"/education": `{"school":"MIT"}`,
		"/skills":    `{"backend":["Go"]}`,
	} {
		t.Run(path, func(t *testing.T) {
			resp, body := get(t, server.Client(), server.URL+path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, want, body)
		})
	}
}

func TestHandler_UpstreamFailures(t *testing.T) {
	server := newTestServer(t, &fakeDrive{err: context.DeadlineExceeded})

	tests := map[string]string{
		"/certificates":            `{"error":"Failed to fetch certificates"}`,
		"/tools":                   `{"error":"Data fetch failed"}`,
		"/education":               `{"error":"Data fetch failed"}`,
		"/skills":                  `{"error":"Data fetch failed"}`,
		"/certificates/1/thumbnail": `{"error":"Failed to fetch thumbnail"}`,
	}

	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			resp, body := get(t, server.Client(), server.URL+path)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.JSONEq(t, want, body)
		})
	}
}

func TestHandler_ThumbnailOutsideCertificatesFolder(t *testing.T) {
	drive := &fakeDrive{}
	server := newTestServer(t, drive)

	resp, body := get(t, server.Client(), server.URL+"/certificates/private-doc/thumbnail")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Failed to fetch thumbnail"}`, body)
	assert.Empty(t, drive.thumbnailsFetched)
}

func TestHandler_MalformedDocument(t *testing.T) {
	server := newTestServer(t, &fakeDrive{
		content: map[string][]byte{"skills-id": []byte("<html>Sign in</html>")},
	})

	resp, body := get(t, server.Client(), server.URL+"/skills")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Data fetch failed"}`, body)
}

func TestHandler_CatchAll(t *testing.T) {
	server := newTestServer(t, &fakeDrive{})

	for _, path := range []string{"/", "/about", "/projects/7", "/certificates/1", "/api/unknown"} {
		t.Run(path, func(t *testing.T) {
			resp, body := get(t, server.Client(), server.URL+path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, indexHTML, body)
		})
	}
}

func TestHandler_Metrics(t *testing.T) {
	server := newTestServer(t, &fakeDrive{})

	get(t, server.Client(), server.URL+"/api/status")
	resp, body := get(t, server.Client(), server.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `portfolio_gateway_requests_count{method="GET",path="/api/status"} 1`)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Port = "0"

	application, err := Initialize(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
