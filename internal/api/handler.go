// Package api provides HTTP handlers for the JDBC bridge REST API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jdbc-bridge/internal/domain"
	"jdbc-bridge/internal/middleware"
	"jdbc-bridge/internal/service"
)

// Handler serves the resource registry and descriptor endpoints.
type Handler struct {
	resources *service.ResourceService
	tables    *service.TableService
	logger    *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(resources *service.ResourceService, tables *service.TableService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{resources: resources, tables: tables, logger: logger}
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatusFromDomainError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFromContext(r.Context()))
		h.writeJSON(w, status, errorResponse{Code: status, Message: "internal server error"})
		return
	}
	h.writeJSON(w, status, errorResponse{Code: status, Message: err.Error()})
}

// CreateResource handles POST /v1/resources.
func (h *Handler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, domain.ErrValidation("invalid request body: %v", err))
		return
	}

	created, err := h.resources.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// ListResources handles GET /v1/resources.
func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	all, err := h.resources.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if all == nil {
		all = []domain.Resource{}
	}
	h.writeJSON(w, http.StatusOK, all)
}

// GetResource handles GET /v1/resources/{name}.
func (h *Handler) GetResource(w http.ResponseWriter, r *http.Request) {
	res, err := h.resources.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// DeleteResource handles DELETE /v1/resources/{name}.
func (h *Handler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := h.resources.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResolveDescriptor handles POST /v1/descriptors.
func (h *Handler) ResolveDescriptor(w http.ResponseWriter, r *http.Request) {
	var req domain.DescriptorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, domain.ErrValidation("invalid request body: %v", err))
		return
	}

	desc, err := h.tables.ResolveDescriptor(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, desc)
}
