package http

import "github.com/dabron/scythe/internal/adapters/render"

// SetupResponse is the JSON shape returned by GET /v1/setup.
type SetupResponse struct {
	Setup render.Document `json:"setup"`
	Meta  MetaResp        `json:"meta"`
}

type MetaResp struct {
	RequestID string  `json:"request_id"`
	Seed      *uint64 `json:"seed,omitempty"`
	LatencyMS int64   `json:"latency_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
