package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sadpe/extractor/internal/auth"
	"github.com/sadpe/extractor/internal/config"
	httpmiddleware "github.com/sadpe/extractor/internal/http/middleware"
	"github.com/sadpe/extractor/internal/session"
	"github.com/sadpe/extractor/internal/view"
)

type Handler struct {
	cfg           *config.Config
	store         session.Store
	tokens        *auth.TokenManager
	views         *view.Renderer
	logger        zerolog.Logger
	publicLimiter *httpmiddleware.RateLimiter
	loginLimiter  *httpmiddleware.RateLimiter
}

// NewRouter devolve roteador configurado.
func NewRouter(cfg *config.Config, store session.Store, tokens *auth.TokenManager, logger zerolog.Logger) (http.Handler, error) {
	if store == nil || tokens == nil {
		return nil, errors.New("router: store e tokens são obrigatórios")
	}

	views, err := view.New()
	if err != nil {
		return nil, err
	}

	h := &Handler{
		cfg:           cfg,
		store:         store,
		tokens:        tokens,
		views:         views,
		logger:        logger,
		publicLimiter: httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst),
		loginLimiter:  httpmiddleware.NewRateLimiter(cfg.RateLimitLogin.RequestsPerSecond, cfg.RateLimitLogin.Burst),
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging(logger))
	r.Use(httpmiddleware.Recover)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(ui chi.Router) {
		ui.Use(httpmiddleware.SecurityHeaders)
		ui.Use(httpmiddleware.IPRateLimit(h.publicLimiter))

		ui.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))

		ui.Group(func(console chi.Router) {
			console.Use(httpmiddleware.ClientHints)
			console.Use(httpmiddleware.CSRF(cfg.CSRFKey, cfg.SecureCookies))
			console.Use(httpmiddleware.Session(tokens))

			console.Get("/", h.Index)
			console.With(httpmiddleware.IPRateLimit(h.loginLimiter)).Post("/login", h.Login)
			console.Post("/logout", h.Logout)
			console.Post("/navigate", h.Navigate)
			console.Route("/ui", func(toggles chi.Router) {
				toggles.Post("/sidebar", h.ToggleSidebar)
				toggles.Post("/sidebar/close", h.CloseSidebar)
				toggles.Post("/dark-mode", h.ToggleDarkMode)
				toggles.Post("/user-menu", h.ToggleUserMenu)
			})
		})
	})

	return r, nil
}

func staticHandler() http.Handler {
	files := http.FileServer(http.FS(view.Static()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// Health responde status simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready valida a conexão com o store de sessões.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "dependências indisponíveis", map[string]any{
			"session_store": err.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
}
