package models

// CertificateFields holds the display fields encoded in a certificate filename
type CertificateFields struct {
	Title       string
	Issuer      string
	Description string
}

// Certificate represents a certificate as exposed by GET /certificates
type Certificate struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Description string `json:"description"`
	Link        string `json:"link"`
}
