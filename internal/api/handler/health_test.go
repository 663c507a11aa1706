package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyfavorphoto/intake/internal/api/handler"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error {
	return m.err
}

func TestHealth_Healthy(t *testing.T) {
	t.Parallel()

	h := handler.NewHealthHandler(&mockPinger{}, "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "1.2.3", data["version"])
	db := data["database"].(map[string]interface{})
	assert.Equal(t, true, db["connected"])
}

func TestHealth_DegradedWhenDBUnreachable(t *testing.T) {
	t.Parallel()

	h := handler.NewHealthHandler(&mockPinger{err: errors.New("dial refused")}, "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "degraded", data["status"])
	db := data["database"].(map[string]interface{})
	assert.Equal(t, false, db["connected"])
}
