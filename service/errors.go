package service

import (
	"context"
	"errors"
	"net"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrMissingFileID is returned when a route's file identifier is not configured
	ErrMissingFileID = errors.New("file identifier is not configured")
	// ErrMalformedPayload is returned when a Drive file is expected to hold JSON but doesn't
	ErrMalformedPayload = errors.New("payload is not valid JSON")
	// ErrEmptyThumbnail is returned when Drive has no thumbnail for a file
	ErrEmptyThumbnail = errors.New("file has no thumbnail")
	// ErrNotCertificate is returned when a file is not a PDF of the certificates folder
	ErrNotCertificate = errors.New("file is not a certificate")
)

// Error kinds reported by ClassifyError
const (
	ErrorKindConfig    = "config"
	ErrorKindTimeout   = "timeout"
	ErrorKindNotFound  = "not_found"
	ErrorKindMalformed = "malformed"
	ErrorKindUpstream  = "upstream"
)

// ClassifyError names the kind of a failed outbound call for logs and metrics.
// Clients always receive the same fixed 500 body regardless of the kind.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrMissingFileID):
		return ErrorKindConfig
	case errors.Is(err, ErrMalformedPayload):
		return ErrorKindMalformed
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorKindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorKindTimeout
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return ErrorKindNotFound
	}
	if errors.Is(err, ErrEmptyThumbnail) || errors.Is(err, ErrNotCertificate) {
		return ErrorKindNotFound
	}

	return ErrorKindUpstream
}
