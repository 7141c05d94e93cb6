package controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"portfolio-gateway/service"
)

const (
	certificatesRoute         = "/certificates"
	thumbnailRoute            = "/certificates/{fileID}/thumbnail"
	errFetchCertificates      = "Failed to fetch certificates"
	errFetchThumbnail         = "Failed to fetch thumbnail"
	defaultThumbnailSizeParam = service.SizeThumb
)

// CertificateController handles HTTP requests for certificates
type CertificateController struct {
	certificateService service.CertificateServiceInterface
	thumbnailService   service.ThumbnailServiceInterface
	observer           driveErrorObserver
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(
	certificateService service.CertificateServiceInterface,
	thumbnailService service.ThumbnailServiceInterface,
	observer driveErrorObserver,
) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
		thumbnailService:   thumbnailService,
		observer:           observer,
	}
}

// List handles GET /certificates
// Returns [{title, issuer, description, link}] for every PDF in the certificates folder
func (c *CertificateController) List(w http.ResponseWriter, r *http.Request) {
	certificates, err := c.certificateService.ListCertificates(r.Context())
	if err != nil {
		failUpstream(w, r, c.observer, certificatesRoute, errFetchCertificates, err)
		return
	}

	writeJSON(w, r, http.StatusOK, certificates)
}

// Thumbnail handles GET /certificates/{fileID}/thumbnail?size=thumb|medium
// Returns an optimized JPEG preview of a certificate
func (c *CertificateController) Thumbnail(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")

	size := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("size")))
	if size == "" {
		size = defaultThumbnailSizeParam
	}
	if !service.ValidThumbnailSize(size) {
		writeError(w, r, http.StatusBadRequest, "Invalid size. Valid sizes: thumb, medium")
		return
	}

	data, err := c.thumbnailService.Thumbnail(r.Context(), fileID, size)
	if err != nil {
		failUpstream(w, r, c.observer, thumbnailRoute, errFetchThumbnail, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("❌ %s: failed to write response: %v", thumbnailRoute, err)
	}
}
