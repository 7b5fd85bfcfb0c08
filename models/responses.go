package models

// ErrorResponse is the JSON body of every error answered by the HTTP API.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness of the service and its database.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
