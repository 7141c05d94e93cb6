package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"portfolio-gateway/models"
	"portfolio-gateway/utils"
)

// CertificateMimeType is the only file type listed as a certificate
const CertificateMimeType = "application/pdf"

// CertificateServiceInterface defines the contract for certificate listing
type CertificateServiceInterface interface {
	ListCertificates(ctx context.Context) ([]models.Certificate, error)
}

// CertificateService builds the certificate list from a Drive folder
// Implements CertificateServiceInterface
type CertificateService struct {
	driveService DriveServiceInterface
	folderID     string
}

// NewCertificateService creates a new CertificateService
func NewCertificateService(driveService DriveServiceInterface, folderID string) *CertificateService {
	return &CertificateService{
		driveService: driveService,
		folderID:     folderID,
	}
}

// Ensure CertificateService implements CertificateServiceInterface
var _ CertificateServiceInterface = (*CertificateService)(nil)

// ListCertificates lists the PDF files of the certificates folder and maps each
// filename into display fields, keeping the Drive listing order
func (s *CertificateService) ListCertificates(ctx context.Context) ([]models.Certificate, error) {
	files, err := s.driveService.ListFiles(ctx, s.folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}

	certificates := make([]models.Certificate, 0, len(files))
	for _, file := range files {
		// Check if it's a PDF
		if strings.ToLower(file.MimeType) != CertificateMimeType {
			continue
		}

		fields := utils.ParseCertificateName(file.Name)
		certificates = append(certificates, models.Certificate{
			Title:       fields.Title,
			Issuer:      fields.Issuer,
			Description: fields.Description,
			Link:        utils.CertificateLink(file.ID),
		})
	}

	log.Printf("✓ %d certificates out of %d files", len(certificates), len(files))
	return certificates, nil
}
