package handler

import (
	"encoding/json"
	"net/http"

	"canasta/internal/auth"
	"canasta/internal/model"
	"canasta/internal/service"

	"github.com/rs/zerolog"
)

// ListHandler handles shopping list HTTP requests. All routes sit behind the
// caller identity middleware, so the resolved caller is read from the
// request context.
type ListHandler struct {
	service service.ListService
	logger  zerolog.Logger
}

// NewListHandler creates a new shopping list handler.
func NewListHandler(service service.ListService, logger zerolog.Logger) *ListHandler {
	return &ListHandler{
		service: service,
		logger:  logger.With().Str("handler", "list").Logger(),
	}
}

// GetAll handles GET /api/shopping-lists requests.
func (h *ListHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrMissingCallerID, h.logger)
		return
	}

	lists, err := h.service.GetLists(r.Context(), caller)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, lists)
}

// Create handles POST /api/shopping-lists requests.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrMissingCallerID, h.logger)
		return
	}

	var req model.ShoppingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	list, err := h.service.CreateList(r.Context(), caller, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, list)
}

// GetByID handles GET /api/shopping-lists/{id} requests.
func (h *ListHandler) GetByID(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.service.GetList(r.Context(), caller, id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Update handles PUT /api/shopping-lists/{id} requests.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req model.ShoppingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	list, err := h.service.UpdateList(r.Context(), caller, id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Delete handles DELETE /api/shopping-lists/{id} requests.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteList(r.Context(), caller, id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
