package response

import "time"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// MessageResponse wraps the result of every mutating call.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
