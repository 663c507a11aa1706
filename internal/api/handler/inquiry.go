package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/partyfavorphoto/intake/internal/api/middleware"
	"github.com/partyfavorphoto/intake/internal/api/response"
	"github.com/partyfavorphoto/intake/internal/api/validation"
	"github.com/partyfavorphoto/intake/internal/commlog"
	"github.com/partyfavorphoto/intake/internal/inquiry"
	"github.com/partyfavorphoto/intake/internal/intake"
)

// IntakeService is the slice of the intake service the handler needs.
type IntakeService interface {
	Submit(ctx context.Context, req validation.SubmitInquiryRequest) (*inquiry.Inquiry, error)
	Accept(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error)
	Decline(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error)
	List(ctx context.Context, filter inquiry.ListFilter) (*inquiry.ListResult, error)
	Communications(ctx context.Context, id uuid.UUID) ([]commlog.Communication, error)
}

type submitInquiryRequest struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	EventType     string `json:"eventType"`
	EventDate     string `json:"eventDate"`
	DurationHours int    `json:"durationHours"`
	VenueName     string `json:"venueName"`
	GuestCount    *int   `json:"guestCount"`
	BackdropColor string `json:"backdropColor"`
	LayoutType    string `json:"layoutType"`
	Notes         string `json:"notes"`
}

type inquiryResponse struct {
	ID               string  `json:"id"`
	FullName         string  `json:"fullName"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	EventType        string  `json:"eventType"`
	EventDate        string  `json:"eventDate"`
	DurationHours    int     `json:"durationHours"`
	VenueName        *string `json:"venueName,omitempty"`
	GuestCount       *int    `json:"guestCount,omitempty"`
	BackdropColor    *string `json:"backdropColor,omitempty"`
	LayoutType       *string `json:"layoutType,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	QuotedPriceCents int64   `json:"quotedPriceCents"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

type communicationResponse struct {
	ID        string `json:"id"`
	Channel   string `json:"channel"`
	Direction string `json:"direction"`
	Subject   string `json:"subject"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toInquiryResponse(inq *inquiry.Inquiry) inquiryResponse {
	return inquiryResponse{
		ID:               inq.ID.String(),
		FullName:         inq.FullName,
		Email:            inq.Email,
		Phone:            inq.Phone,
		EventType:        string(inq.EventType),
		EventDate:        inq.EventDate.UTC().Format(time.RFC3339),
		DurationHours:    inq.DurationHours,
		VenueName:        inq.VenueName,
		GuestCount:       inq.GuestCount,
		BackdropColor:    inq.BackdropColor,
		LayoutType:       inq.LayoutType,
		Notes:            inq.Notes,
		QuotedPriceCents: inq.QuotedPriceCents,
		Status:           string(inq.Status),
		CreatedAt:        inq.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        inq.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toCommunicationResponse(c *commlog.Communication) communicationResponse {
	return communicationResponse{
		ID:        c.ID.String(),
		Channel:   string(c.Channel),
		Direction: string(c.Direction),
		Subject:   c.Subject,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// InquiryHandler handles the inquiry intake endpoints.
type InquiryHandler struct {
	svc IntakeService
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(svc IntakeService) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

// Submit handles POST /api/inquiries.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req submitInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	inq, err := h.svc.Submit(r.Context(), validation.SubmitInquiryRequest{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		EventType:     req.EventType,
		EventDate:     req.EventDate,
		DurationHours: req.DurationHours,
		VenueName:     req.VenueName,
		GuestCount:    req.GuestCount,
		BackdropColor: req.BackdropColor,
		LayoutType:    req.LayoutType,
		Notes:         req.Notes,
	})
	if err != nil {
		var verr *intake.ValidationError
		if errors.As(err, &verr) {
			response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", verr.Fields, requestID)
			return
		}
		var perr *intake.PersistenceError
		if errors.As(err, &perr) {
			slog.Error("failed to persist inquiry", "error", err, "requestId", requestID)
			response.Err(w, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Could not save the inquiry, please retry", requestID)
			return
		}
		slog.Error("failed to submit inquiry", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit inquiry", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toInquiryResponse(inq), requestID)
}

// List handles GET /api/inquiries.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	filter, ok := parseListFilter(w, r, requestID)
	if !ok {
		return
	}

	result, err := h.svc.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list inquiries", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list inquiries", requestID)
		return
	}

	items := make([]inquiryResponse, 0, len(result.Inquiries))
	for i := range result.Inquiries {
		items = append(items, toInquiryResponse(&result.Inquiries[i]))
	}

	response.SuccessList(w, http.StatusOK, items, result.Total, result.Page, result.Limit, requestID)
}

// GetByID handles GET /api/inquiries/{id}.
func (h *InquiryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseInquiryID(w, r, requestID)
	if !ok {
		return
	}

	inq, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleLookupError(w, err, requestID, "fetch inquiry")
		return
	}

	response.Success(w, http.StatusOK, toInquiryResponse(inq), requestID)
}

// Accept handles POST /api/inquiries/{id}/accept.
func (h *InquiryHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Accept)
}

// Decline handles POST /api/inquiries/{id}/decline.
func (h *InquiryHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Decline)
}

func (h *InquiryHandler) decide(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*inquiry.Inquiry, error)) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseInquiryID(w, r, requestID)
	if !ok {
		return
	}

	inq, err := op(r.Context(), id)
	if err != nil {
		if errors.Is(err, inquiry.ErrInvalidTransition) {
			response.Err(w, http.StatusConflict, "INVALID_TRANSITION", "Only a quoted inquiry can be accepted or declined", requestID)
			return
		}
		h.handleLookupError(w, err, requestID, "update inquiry")
		return
	}

	response.Success(w, http.StatusOK, toInquiryResponse(inq), requestID)
}

// Communications handles GET /api/inquiries/{id}/communications.
func (h *InquiryHandler) Communications(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseInquiryID(w, r, requestID)
	if !ok {
		return
	}

	comms, err := h.svc.Communications(r.Context(), id)
	if err != nil {
		h.handleLookupError(w, err, requestID, "list communications")
		return
	}

	items := make([]communicationResponse, 0, len(comms))
	for i := range comms {
		items = append(items, toCommunicationResponse(&comms[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

func (h *InquiryHandler) handleLookupError(w http.ResponseWriter, err error, requestID, op string) {
	if errors.Is(err, inquiry.ErrNotFound) {
		response.Err(w, http.StatusNotFound, "NOT_FOUND", "Inquiry not found", requestID)
		return
	}
	slog.Error("failed to "+op, "error", err, "requestId", requestID)
	response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to "+op, requestID)
}

func parseInquiryID(w http.ResponseWriter, r *http.Request, requestID string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return uuid.Nil, false
	}
	return id, true
}

func parseListFilter(w http.ResponseWriter, r *http.Request, requestID string) (inquiry.ListFilter, bool) {
	var filter inquiry.ListFilter
	q := r.URL.Query()

	if raw := q.Get("status"); raw != "" {
		status := inquiry.Status(raw)
		if !status.Valid() {
			response.Err(w, http.StatusBadRequest, "INVALID_FILTER", "unknown status filter", requestID)
			return filter, false
		}
		filter.Status = &status
	}
	if raw := q.Get("eventType"); raw != "" {
		et := inquiry.EventType(raw)
		if !et.Valid() {
			response.Err(w, http.StatusBadRequest, "INVALID_FILTER", "unknown eventType filter", requestID)
			return filter, false
		}
		filter.EventType = &et
	}

	if raw := q.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			filter.Page = page
		}
	}
	if raw := q.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}

	return filter, true
}
