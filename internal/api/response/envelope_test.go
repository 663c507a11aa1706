package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyfavorphoto/intake/internal/api/response"
)

func TestNewMeta_GeneratesUUID(t *testing.T) {
	meta := response.NewMeta("")

	_, err := uuid.Parse(meta.RequestID)
	assert.NoError(t, err, "requestId should be a valid UUID")
}

func TestNewMeta_UsesProvidedRequestID(t *testing.T) {
	meta := response.NewMeta("my-custom-request-id")

	assert.Equal(t, "my-custom-request-id", meta.RequestID)
}

func TestSuccess_WritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()

	response.Success(w, http.StatusCreated, map[string]string{"key": "value"}, "req-1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Nil(t, env["error"])
	assert.Equal(t, map[string]interface{}{"key": "value"}, env["data"])
	meta := env["meta"].(map[string]interface{})
	assert.Equal(t, "req-1", meta["requestId"])
}

func TestSuccessList_IncludesPaginationMeta(t *testing.T) {
	w := httptest.NewRecorder()

	response.SuccessList(w, http.StatusOK, []string{"a", "b"}, 12, 2, 5, "req-2")

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	meta := env["meta"].(map[string]interface{})
	assert.Equal(t, float64(12), meta["total"])
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(5), meta["limit"])
}

func TestErr_WritesStructuredError(t *testing.T) {
	w := httptest.NewRecorder()

	response.Err(w, http.StatusNotFound, "NOT_FOUND", "Inquiry not found", "req-3")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Nil(t, env["data"])
	apiErr := env["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", apiErr["code"])
	assert.Equal(t, "Inquiry not found", apiErr["message"])
}

func TestErrWithDetails_CarriesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	details := []map[string]string{{"field": "email", "message": "email is required"}}

	response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", details, "req-4")

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	apiErr := env["error"].(map[string]interface{})
	require.NotNil(t, apiErr["details"])
	items := apiErr["details"].([]interface{})
	require.Len(t, items, 1)
}
