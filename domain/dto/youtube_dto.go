package dto

import (
	"encoding/json"

	"popular-videos/domain/model"
)

// PopularVideosResponse is the success body of GET /api/youtube/popular
type PopularVideosResponse struct {
	Videos []model.VideoSummary `json:"videos"`
}

// ErrorResponse is the failure body of every JSON endpoint
type ErrorResponse struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
}
