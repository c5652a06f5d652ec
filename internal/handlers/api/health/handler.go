package health

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// Version is reported by the health endpoint and the OpenAPI document.
const Version = "1.0.0"

// HealthResponseBody is the response body for the health check.
type HealthResponseBody struct {
	Status    string `json:"status" doc:"Constant \"ok\""`
	Timestamp string `json:"timestamp" doc:"RFC3339 server time"`
	Version   string `json:"version" doc:"Application version"`
}

// HealthOutput is the Huma output for the health check.
type HealthOutput struct {
	Body HealthResponseBody
}

// Handler handles GET /api/health.
type Handler struct{}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the health endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Description: "Reports service liveness. Always ok while the process is up.",
		Tags:        []string{"System"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: HealthResponseBody{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   Version,
		},
	}, nil
}
