package handler

import (
	"encoding/json"
	"net/http"

	"canasta/internal/auth"
	"canasta/internal/model"
	"canasta/internal/service"

	"github.com/rs/zerolog"
)

// ItemHandler handles shopping list item HTTP requests. Like ListHandler it
// sits behind the caller identity middleware.
type ItemHandler struct {
	service service.ListService
	logger  zerolog.Logger
}

// NewItemHandler creates a new shopping list item handler.
func NewItemHandler(service service.ListService, logger zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "item").Logger(),
	}
}

// GetAll handles GET /api/shopping-list-items requests.
func (h *ItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrMissingCallerID, h.logger)
		return
	}

	items, err := h.service.GetItems(r.Context(), caller)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/shopping-list-items/{id} requests.
func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrMissingCallerID, h.logger)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	item, err := h.service.GetItem(r.Context(), caller, id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /api/shopping-list-items requests. When the payload
// names no list, the caller's default list is provisioned transparently.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrMissingCallerID, h.logger)
		return
	}

	var req model.ItemCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	item, err := h.service.AddItem(r.Context(), caller, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/shopping-list-items/{id} requests.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrMissingCallerID, h.logger)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.ItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), caller, id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/shopping-list-items/{id} requests.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrMissingCallerID, h.logger)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.service.DeleteItem(r.Context(), caller, id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
