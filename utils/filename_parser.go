package utils

import (
	"regexp"
	"strings"

	"portfolio-gateway/models"
)

const (
	// DefaultCertificateTitle is used when the filename has no title segment
	DefaultCertificateTitle = "Untitled"
	// DefaultCertificateIssuer is used when the filename has no issuer segment
	DefaultCertificateIssuer = "Unknown"
)

var pdfExtRegex = regexp.MustCompile(`(?i)\.pdf$`)

// ParseCertificateName parses a certificate filename following the pattern:
// TITLE-ISSUER-DESCRIPTION.pdf
// Example: Go Fundamentals-Coursera-Backend track.pdf
//
// Missing segments fall back to placeholder values instead of failing.
// Segments after the description are ignored.
func ParseCertificateName(filename string) models.CertificateFields {
	// Remove extension (case-insensitive)
	nameWithoutExt := pdfExtRegex.ReplaceAllString(filename, "")

	// Split by hyphen
	parts := strings.Split(nameWithoutExt, "-")

	fields := models.CertificateFields{
		Title:  DefaultCertificateTitle,
		Issuer: DefaultCertificateIssuer,
	}

	// Part 0: TITLE
	if parts[0] != "" {
		fields.Title = parts[0]
	}

	// Part 1: ISSUER
	if len(parts) > 1 && parts[1] != "" {
		fields.Issuer = parts[1]
	}

	// Part 2: DESCRIPTION
	if len(parts) > 2 {
		fields.Description = parts[2]
	}

	return fields
}
