package profile

import (
	"errors"
	"log"
	"net/http"

	"movieapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Get handles GET /v1/profiles/{handle}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid handle", nil)
		return
	}

	p, err := h.service.Get(r.Context(), handle)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Profile not found", nil)
			return
		}
		log.Printf("get profile failed: request_id=%s handle=%s error=%v", httpx.RequestIDFrom(r), handle, err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, p, nil)
}
