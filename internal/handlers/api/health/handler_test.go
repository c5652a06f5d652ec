package health

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestHTTP_Health(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler().Register(api)

	resp := api.Get("/api/health")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body HealthResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, Version, body.Version)

	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}
