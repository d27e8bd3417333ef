// ABOUTME: News handler exposing the aggregation pipeline over HTTP
// ABOUTME: Applies the client filter/sort contract and triggers background persistence

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"football-news-api/api/dto/responses"
	"football-news-api/core/domain"
	coreerrors "football-news-api/core/errors"
	"football-news-api/core/interfaces"
	"football-news-api/core/news"

	"github.com/go-chi/chi/v5"
)

// NewsHandler serves the news endpoints.
type NewsHandler struct {
	service *news.Service
	logger  interfaces.Logger
}

// NewNewsHandler creates a news handler.
func NewNewsHandler(service *news.Service, logger interfaces.Logger) *NewsHandler {
	return &NewsHandler{service: service, logger: logger}
}

// RegisterRoutes mounts the news routes on the router.
func (h *NewsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/news", h.GetNews)
	r.Post("/news/refresh", h.RefreshNews)
	r.Get("/news/categories", h.GetCategories)
	r.Get("/news/{id}", h.GetArticle)
}

// GetNews runs one aggregation cycle, applies the client-side filters and
// sort mode from the query string, and persists the full aggregate in the
// background. An aggregation failure maps to "no news available".
func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	opts, err := filterOptions(r)
	if err != nil {
		writeTypedError(w, err)
		return
	}

	articles, err := h.service.FetchAllNews(r.Context())
	if err != nil {
		h.logger.Error("aggregation failed", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusServiceUnavailable, "no news available")
		return
	}

	// Persistence is decoupled from the response; its failure never
	// unwinds the result already handed to the client.
	h.service.SaveNewsAsync(articles)

	filtered := news.FilterArticles(articles, opts)

	writeJSON(w, http.StatusOK, responses.NewNewsResponse(filtered, time.Now()))
}

// GetArticle looks one article up by ID in the current aggregate.
func (h *NewsHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	articles, err := h.service.FetchAllNews(r.Context())
	if err != nil {
		h.logger.Error("aggregation failed", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusServiceUnavailable, "no news available")
		return
	}

	for _, article := range articles {
		if article.ID == id {
			writeJSON(w, http.StatusOK, responses.NewArticleResponse(article))
			return
		}
	}

	writeTypedError(w, &coreerrors.NotFoundError{Resource: "article", ID: id})
}

// RefreshNews runs one aggregation cycle and persists it synchronously,
// returning how many articles the cycle produced.
func (h *NewsHandler) RefreshNews(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.FetchAllNews(r.Context())
	if err != nil {
		h.logger.Error("refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusServiceUnavailable, "no news available")
		return
	}

	if err := h.service.SaveNews(r.Context(), articles); err != nil {
		h.logger.Error("refresh persistence failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"refreshed": len(articles),
	})
}

// GetCategories lists the fixed category labels.
func (h *NewsHandler) GetCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": domain.Categories,
	})
}

// filterOptions parses and validates the query-string filters. Unknown
// sorts and categories and non-positive limits are rejected rather than
// silently ignored.
func filterOptions(r *http.Request) (news.FilterOptions, error) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return news.FilterOptions{}, &coreerrors.ValidationError{
				Field:   "limit",
				Message: "must be a positive integer",
			}
		}
		limit = parsed
	}

	sort := q.Get("sort")
	switch sort {
	case "", news.SortLatest, news.SortTrending, news.SortPopular:
	default:
		return news.FilterOptions{}, &coreerrors.ValidationError{
			Field:   "sort",
			Message: "must be one of latest, trending, popular",
		}
	}

	category := q.Get("category")
	if category != "" && !domain.ValidCategory(category) {
		return news.FilterOptions{}, &coreerrors.ValidationError{
			Field:   "category",
			Message: "unknown category label",
		}
	}

	return news.FilterOptions{
		Query:    q.Get("q"),
		Category: category,
		Source:   q.Get("source"),
		Sort:     sort,
		Limit:    limit,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
