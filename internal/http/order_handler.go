package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fjod/stylevault/internal/domain"
	"github.com/fjod/stylevault/internal/intake"
	"github.com/rs/zerolog/log"
)

// recentOrdersLimit caps the diagnostic listing.
const recentOrdersLimit = 10

type OrderHandler struct {
	svc     *intake.Service
	timeout time.Duration
}

func NewOrderHandler(svc *intake.Service, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		svc:     svc,
		timeout: timeout,
	}
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type ListOrdersResponse struct {
	Count  int            `json:"count"`
	Recent []domain.Order `json:"recent"`
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid JSON body"})
		return
	}

	order, err := h.svc.CreateOrder(ctx, raw)
	if err != nil {
		var verr *intake.ValidationError
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Message: verr.Message,
				Errors:  verr.Fields,
			})
			return
		}

		// Full detail stays in the log; the client gets a generic message.
		log.Error().Err(err).Str("request_id", requestID(r)).Msg("failed to save order")
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to save order",
			Error:   "internal error",
		})
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	recent, err := h.svc.RecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID(r)).Msg("failed to fetch orders")
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to fetch orders",
			Error:   "internal error",
		})
		return
	}

	respondJSON(w, http.StatusOK, ListOrdersResponse{
		Count:  len(recent),
		Recent: recent,
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
