package server

import "time"

type APIError struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	OK        bool      `json:"ok"`
	Timestamp time.Time `json:"timestamp"`
}

type UploadResponse struct {
	ConfigID string `json:"configId"`
}

type StartRequest struct {
	ConfigID string `json:"configId"`
	// Sim runs against the simulated source instead of the bridge.
	Sim bool `json:"sim"`
}

type StartResponse struct {
	Running bool     `json:"running"`
	Port    string   `json:"port,omitempty"`
	Labels  []string `json:"labels"`
}

type CurvesResponse struct {
	Curves []string `json:"curves"`
}

// BatchDTO is one processed batch pushed over /ws/data.
type BatchDTO struct {
	Labels []string    `json:"labels"`
	Rows   [][]float64 `json:"rows"`
}
