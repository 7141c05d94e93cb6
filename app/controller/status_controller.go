package controller

import (
	"net/http"

	"portfolio-gateway/models"
)

const (
	StatusRunning = "Backend Running"
	Version       = "1.0.0"
)

// StatusController handles GET /api/status
type StatusController struct{}

// NewStatusController creates a new StatusController
func NewStatusController() *StatusController {
	return &StatusController{}
}

// GetStatus handles GET /api/status
// Always returns the same descriptor
func (c *StatusController) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.Status{
		Status:  StatusRunning,
		Version: Version,
	})
}
