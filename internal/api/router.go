// Package api assembles the HTTP surface: routes, middleware and handlers.
package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/eventdesk/server/internal/api/handlers"
	"github.com/eventdesk/server/internal/api/middleware"
	"github.com/eventdesk/server/internal/auth"
	"github.com/eventdesk/server/internal/config"
	"github.com/eventdesk/server/internal/domain/events"
	"github.com/eventdesk/server/internal/domain/users"
	"github.com/eventdesk/server/internal/metrics"
	"github.com/eventdesk/server/internal/storage/postgres"
	"github.com/eventdesk/server/internal/upload"
)

// BuildInfo carries version metadata injected at build time via ldflags.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

func NewRouter(cfg config.Config, logger zerolog.Logger, pool *pgxpool.Pool, build BuildInfo) (http.Handler, error) {
	repo, err := postgres.NewRepository(pool)
	if err != nil {
		return nil, fmt.Errorf("init repository: %w", err)
	}

	uploadStore, err := upload.NewStore(cfg.Upload.Dir, cfg.Server.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("init upload store: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.Issuer)

	eventsService := events.NewService(repo.Events())
	usersService := users.NewService(repo.Users(), jwtManager)

	authHandler := handlers.NewAuthHandler(usersService, cfg.Environment)
	eventsHandler := handlers.NewEventsHandler(eventsService, cfg.Environment)
	usersHandler := handlers.NewUsersHandler(usersService, cfg.Environment)
	uploadHandler := handlers.NewUploadHandler(uploadStore, cfg.Environment)
	healthChecker := handlers.NewHealthChecker(pool, build.Version, build.GitCommit)

	guard := middleware.JWTAuth(jwtManager)
	jsonBody := middleware.RequestSize(middleware.DefaultMaxBodySize)
	uploadBody := middleware.RequestSize(middleware.UploadMaxBodySize)

	mux := http.NewServeMux()

	route := func(pattern string, handler http.Handler) {
		mux.Handle(pattern, middleware.Metrics(pattern, handler))
	}

	route("/healthz", healthChecker.Health())
	route("/version", VersionHandler(build.Version, build.GitCommit, build.BuildDate))
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(uploadStore.Dir()))))

	route("/api/v1/auth/signup", methodMux(map[string]http.Handler{
		http.MethodPost: jsonBody(http.HandlerFunc(authHandler.Signup)),
	}))
	route("/api/v1/auth/login", methodMux(map[string]http.Handler{
		http.MethodPost: jsonBody(http.HandlerFunc(authHandler.Login)),
	}))
	route("/api/v1/auth/me", methodMux(map[string]http.Handler{
		http.MethodGet: guard(http.HandlerFunc(authHandler.Me)),
	}))

	route("/api/v1/events", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(eventsHandler.List),
		http.MethodPost: guard(jsonBody(http.HandlerFunc(eventsHandler.Create))),
	}))
	route("/api/v1/events/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(eventsHandler.Get),
		http.MethodPatch:  guard(jsonBody(http.HandlerFunc(eventsHandler.Update))),
		http.MethodDelete: guard(http.HandlerFunc(eventsHandler.Delete)),
	}))

	route("/api/v1/users/profile/{id}", methodMux(map[string]http.Handler{
		http.MethodGet: guard(http.HandlerFunc(usersHandler.Profile)),
	}))
	route("/api/v1/users/{id}", methodMux(map[string]http.Handler{
		http.MethodPatch: guard(jsonBody(http.HandlerFunc(usersHandler.Update))),
	}))

	route("/api/v1/upload/image", methodMux(map[string]http.Handler{
		http.MethodPost: guard(uploadBody(http.HandlerFunc(uploadHandler.Image))),
	}))

	// Outermost first: correlation ID feeds the logger and span attributes.
	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = middleware.RequestLogging(logger)(handler)
	if cfg.Tracing.Enabled {
		handler = middleware.Tracing(handler)
	}
	handler = middleware.CorrelationID(logger)(handler)

	return handler, nil
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
