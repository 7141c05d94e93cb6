package controller

import (
	"log"
	"net/http"

	"github.com/go-chi/render"

	"portfolio-gateway/models"
	"portfolio-gateway/service"
)

// driveErrorObserver receives the kind of every failed Drive call
type driveErrorObserver interface {
	ObserveDriveError(route, kind string)
}

// writeJSON writes v as JSON with the given status
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// writeError writes the fixed error body of a route
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, models.ErrorResponse{Error: message})
}

// failUpstream logs and counts a failed Drive call, then answers 500 with the route's fixed message.
// The underlying error never reaches the client
func failUpstream(w http.ResponseWriter, r *http.Request, observer driveErrorObserver, route string, message string, err error) {
	kind := service.ClassifyError(err)
	log.Printf("❌ %s: %s (kind=%s): %v", route, message, kind, err)
	if observer != nil {
		observer.ObserveDriveError(route, kind)
	}
	writeError(w, r, http.StatusInternalServerError, message)
}
