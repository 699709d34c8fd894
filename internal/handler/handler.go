package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mtlprog/strokedash/internal/dashboard"
	"github.com/mtlprog/strokedash/internal/handler/dto"
	"github.com/mtlprog/strokedash/internal/middleware"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	renderer *dashboard.Renderer
	html     *dashboard.HTMLWriter
}

// New creates a new Handler instance with all dependencies.
func New(renderer *dashboard.Renderer, html *dashboard.HTMLWriter) *Handler {
	return &Handler{
		renderer: renderer,
		html:     html,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Dashboard page and its images
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET "+dashboard.AssetURLPrefix+"{name}", h.handleAsset)

	// API v1 routes
	mux.HandleFunc("GET /api/v1/page", h.handleGetPage)
}

// Routes returns the full handler chain: routes plus middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	var chain http.Handler = mux
	chain = middleware.AccessLog(chain)
	chain = middleware.RequestID(chain)
	chain = chimiddleware.Recoverer(chain)
	chain = chimiddleware.RealIP(chain)
	return chain
}

// handleHealthz returns 200 OK if every page asset loads and decodes.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	paths := h.renderer.Content().Assets()

	for _, path := range paths {
		if _, err := h.renderer.Asset(ctx, path); err != nil {
			slog.Error("asset health check failed", "asset", path, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{
				Status: "unavailable",
				Assets: paths,
				Error:  err.Error(),
			})
			return
		}
	}

	respondJSON(w, http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Assets: paths,
	})
}

// handleIndex renders the dashboard page as HTML.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := h.renderer.Render(r.Context())
	if err != nil {
		status, code, message := dto.MapRenderError(err)
		respondError(w, status, code, message)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.html.Write(w, page, dashboard.ImagesLinked); err != nil {
		slog.Error("failed to write page", "error", err)
	}
}

// handleAsset serves the raw bytes of a declared page image.
func (h *Handler) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	asset, err := h.renderer.Asset(r.Context(), name)
	if err != nil {
		status, code, message := dto.MapAssetError(err)
		respondError(w, status, code, message)
		return
	}

	w.Header().Set("Content-Type", asset.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(asset.Data)))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(asset.Data); err != nil {
		slog.Error("failed to write asset", "asset", name, "error", err)
	}
}

// handleGetPage returns the rendered block sequence as JSON.
func (h *Handler) handleGetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.renderer.Render(r.Context())
	if err != nil {
		status, code, message := dto.MapRenderError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPageResponse(page, dashboard.AssetURLPrefix))
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}
