package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"memberqa-backend/internal/config"
	"memberqa-backend/internal/handlers"
)

// RouterDependencies holds all the dependencies required by the router setup.
type RouterDependencies struct {
	AskHandler *handlers.AskHandler
	Config     *config.Config
	Logger     *zap.Logger
	// MetricsHandler serves /metrics; nil leaves the route unmounted.
	MetricsHandler http.Handler
}

// Router wraps the chi mux so the server can release the limiter's
// background goroutine on shutdown.
type Router struct {
	*chi.Mux
	limiter *limiterPool
}

// Close stops background work owned by the router.
func (rt *Router) Close() {
	if rt.limiter != nil {
		rt.limiter.Stop()
	}
}

// NewRouter creates and configures the main Chi router for the application.
func NewRouter(deps RouterDependencies) *Router {
	if deps.AskHandler == nil {
		panic("AskHandler dependency is nil in router setup")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")
	cfg := deps.Config

	r := chi.NewRouter()

	// --- Base Middleware Stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{handlers.QuestionIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// --- Public Routes ---
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	} else {
		logger.Warn("MetricsHandler dependency is nil, skipping /metrics route")
	}

	// --- Question Routes ---
	pool := newLimiterPool(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Group(func(r chi.Router) {
		r.Use(rateLimitMiddleware(pool, logger))
		if cfg.JWTSecret != "" {
			r.Use(JwtAuthMiddleware(cfg.JWTSecret, logger))
		} else {
			logger.Info("JWT_SECRET not set, question routes are public")
		}

		r.Get("/ask", deps.AskHandler.HandleAsk)
		r.Get("/questions/{questionID}", deps.AskHandler.HandleGetQuestion)
	})

	return &Router{Mux: r, limiter: pool}
}
