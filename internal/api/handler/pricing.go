package handler

import (
	"fmt"
	"net/http"

	"github.com/partyfavorphoto/intake/internal/api/middleware"
	"github.com/partyfavorphoto/intake/internal/api/response"
	"github.com/partyfavorphoto/intake/internal/pricing"
)

type packageResponse struct {
	DurationHours int    `json:"durationHours"`
	PriceCents    int64  `json:"priceCents"`
	Label         string `json:"label"`
}

// PricingHandler serves the public package listing.
type PricingHandler struct {
	table *pricing.Table
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(table *pricing.Table) *PricingHandler {
	return &PricingHandler{table: table}
}

// List handles GET /api/packages.
func (h *PricingHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	packages := h.table.Packages()
	items := make([]packageResponse, 0, len(packages))
	for _, p := range packages {
		items = append(items, packageResponse{
			DurationHours: p.DurationHours,
			PriceCents:    p.PriceCents,
			Label:         fmt.Sprintf("%d Hours - $%d", p.DurationHours, p.PriceCents/100),
		})
	}

	response.Success(w, http.StatusOK, items, requestID)
}
