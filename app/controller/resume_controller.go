package controller

import (
	"log"
	"net/http"

	"portfolio-gateway/utils"
)

// ResumeController handles GET /resume
type ResumeController struct {
	resumeFileID string
}

// NewResumeController creates a new ResumeController
func NewResumeController(resumeFileID string) *ResumeController {
	return &ResumeController{
		resumeFileID: resumeFileID,
	}
}

// Redirect handles GET /resume
// Redirects to the Drive download URL of the configured resume file
func (c *ResumeController) Redirect(w http.ResponseWriter, r *http.Request) {
	if c.resumeFileID == "" {
		log.Printf("⚠️  Redirect: RESUME_FILE_ID is not set")
	}
	http.Redirect(w, r, utils.DownloadURL(c.resumeFileID), http.StatusFound)
}
