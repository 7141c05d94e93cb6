package models

// Status is the fixed descriptor returned by GET /api/status
type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the body written for every failed proxied request
type ErrorResponse struct {
	Error string `json:"error"`
}
