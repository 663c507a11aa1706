package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyfavorphoto/intake/internal/api/handler"
	"github.com/partyfavorphoto/intake/internal/pricing"
)

func TestPricingList(t *testing.T) {
	t.Parallel()

	h := handler.NewPricingHandler(pricing.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/packages", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	items := env["data"].([]interface{})
	require.Len(t, items, 4)

	first := items[0].(map[string]interface{})
	assert.Equal(t, float64(2), first["durationHours"])
	assert.Equal(t, float64(49800), first["priceCents"])
	assert.Equal(t, "2 Hours - $498", first["label"])

	last := items[3].(map[string]interface{})
	assert.Equal(t, float64(5), last["durationHours"])
	assert.Equal(t, "5 Hours - $1245", last["label"])
}
