package controller

import (
	"log"
	"net/http"

	"portfolio-gateway/service"
)

const errDataFetch = "Data fetch failed"

// DocumentController serves one JSON document stored in Drive (tools, education, skills)
type DocumentController struct {
	documentService service.DocumentServiceInterface
	route           string
	fileID          string
	observer        driveErrorObserver
}

// NewDocumentController creates a DocumentController for the file configured for route
func NewDocumentController(documentService service.DocumentServiceInterface, route string, fileID string, observer driveErrorObserver) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		route:           route,
		fileID:          fileID,
		observer:        observer,
	}
}

// Get handles GET on the controller's route
// Returns the Drive file content verbatim
func (c *DocumentController) Get(w http.ResponseWriter, r *http.Request) {
	data, err := c.documentService.FetchJSON(r.Context(), c.fileID)
	if err != nil {
		failUpstream(w, r, c.observer, c.route, errDataFetch, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("❌ %s: failed to write response: %v", c.route, err)
	}
}
