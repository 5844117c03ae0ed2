package movie

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"movieapi/internal/httpx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type listReq struct {
	Q     string `validate:"max=200,printable"`
	Genre string `validate:"max=64,printable"`
}

// List handles GET /v1/library/movies
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := listReq{
		Q:     query.Get("q"),
		Genre: query.Get("genre"),
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	params := QueryParams{
		SearchText: req.Q,
		Genre:      req.Genre,
		Sort:       SortKey(query.Get("sort")),
	}
	if params.Genre == "" {
		params.Genre = AllGenres
	}
	if params.Sort == "" {
		params.Sort = DefaultSort
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	movies, err := h.service.Query(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidSortKey) {
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_SORT_KEY", err.Error(), []httpx.ErrorDetail{
				{Field: "sort", Message: "sort must be one of: recent, rating, title, year"},
			})
			return
		}
		log.Printf("library query failed: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	total := len(movies)
	httpx.JSONSuccess(w, r, paginate(movies, page, pageSize), map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
		"query": map[string]any{
			"q":     params.SearchText,
			"genre": params.Genre,
			"sort":  params.Sort,
		},
	})
}

// paginate returns the 1-based page of movies. Pages past the end are empty.
func paginate(movies []Movie, page, pageSize int) []Movie {
	if page-1 >= (len(movies)+pageSize-1)/pageSize {
		return []Movie{}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(movies))
	return movies[start:end]
}

// GetByID handles GET /v1/library/movies/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid movie ID", nil)
		return
	}

	m, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)
			return
		}
		log.Printf("get movie failed: request_id=%s id=%d error=%v", httpx.RequestIDFrom(r), id, err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, m, nil)
}

// Genres handles GET /v1/library/genres
func (h *HTTPHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.Genres(r.Context())
	if err != nil {
		log.Printf("list genres failed: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, genres, nil)
}

// SortOptions handles GET /v1/library/sort-options
func (h *HTTPHandler) SortOptions(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.service.SortOptions(), map[string]any{
		"default": DefaultSort,
	})
}
