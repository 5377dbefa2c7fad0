package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"warehouse-fulfillment/internal/engine"
	"warehouse-fulfillment/internal/metrics"
	"warehouse-fulfillment/internal/models"
)

type Handler struct {
	engine  *engine.Engine
	metrics *metrics.Collector
}

func New(e *engine.Engine, m *metrics.Collector) *Handler {
	return &Handler{
		engine:  e,
		metrics: m,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err string, message string) {
	writeJSON(w, status, ErrorResponse{Error: err, Message: message})
}

func writeValidationError(w http.ResponseWriter, field, reason string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: reason,
		Field:   field,
	})
}

type SubmitOrderRequest struct {
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
}

type NextOrderResponse struct {
	Order     models.Order   `json:"order"`
	Inventory map[string]int `json:"inventory"`
}

type InventoryResponse struct {
	Inventory map[string]int `json:"inventory"`
}

// SubmitOrder accepts an order into the pending set. Submission never
// checks or changes stock; orders for out-of-stock items are accepted
// and wait for restocked fulfillment runs.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A type mismatch names the offending field; anything else is
		// malformed JSON. Fractional quantities land here because the
		// decoder refuses to truncate them into an int.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			h.metrics.RecordValidationFailure()
			writeValidationError(w, typeErr.Field, "has the wrong JSON type")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	var ts time.Time
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			h.metrics.RecordValidationFailure()
			writeValidationError(w, "timestamp", "must be an RFC 3339 timestamp")
			return
		}
		ts = parsed
	}

	order, err := h.engine.Submit(req.Item, req.Quantity, req.Category, ts)
	if err != nil {
		var vErr *engine.ValidationError
		if errors.As(err, &vErr) {
			writeValidationError(w, vErr.Field, vErr.Reason)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to submit order")
		return
	}

	writeJSON(w, http.StatusCreated, SuccessResponse{Success: true, Data: order})
}

// NextOrder fulfills the highest-priority pending order the current
// stock can satisfy and returns it with the updated inventory. An empty
// queue and a queue with nothing fulfillable are distinct outcomes.
func (h *Handler) NextOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.engine.NextOrder()
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrEmptyQueue):
			writeError(w, http.StatusNotFound, "empty_queue", "No orders are pending")
		case errors.Is(err, engine.ErrNoFulfillableOrder):
			writeError(w, http.StatusConflict, "no_fulfillable_order", "No pending order can be fulfilled with current stock")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to select next order")
		}
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data: NextOrderResponse{
			Order:     order,
			Inventory: h.engine.InventoryView(),
		},
	})
}

// GetInventory returns a consistent snapshot of current stock levels.
func (h *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    InventoryResponse{Inventory: h.engine.InventoryView()},
	})
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: h.metrics.GetStats()})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":         "healthy",
			"orders_pending": h.engine.PendingCount(),
			"items_tracked":  len(h.engine.InventoryView()),
			"timestamp":      time.Now().Unix(),
		},
	})
}
