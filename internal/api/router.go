package api

import (
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/api/recovery"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/auth"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/config"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/pages"
)

// Deps carries what the router needs.
type Deps struct {
	Authenticator  auth.Authenticator
	Configured     bool     // at least one identifier is allowlisted
	UnmatchedMode  string   // config.UnmatchedRedirect or config.UnmatchedLogin
	Assets         fs.FS    // nil means the embedded page assets
	AllowedOrigins []string // CORS; empty means "*"
}

// DepsFromConfig builds Deps from a loaded config. STATIC_DIR, when set,
// replaces the embedded assets with a directory on disk.
func DepsFromConfig(cfg *config.Config, creds *auth.Credentials) Deps {
	d := Deps{
		Authenticator:  creds,
		Configured:     creds.Len() > 0,
		UnmatchedMode:  cfg.UnmatchedMode,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.StaticDir != "" {
		d.Assets = os.DirFS(cfg.StaticDir)
	}
	return d
}

// NewRouter creates the HTTP router with all page and API routes.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()

	assets := d.Assets
	if assets == nil {
		assets = pages.Assets()
	}

	pageHandler := NewPageHandler(d.UnmatchedMode)
	loginHandler := NewLoginHandler(d.Authenticator)
	healthHandler := NewHealthHandler(d.Configured)
	unmatched := http.HandlerFunc(pageHandler.Unmatched)

	// Pages
	router.HandleFunc("/", pageHandler.Login).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/index", pageHandler.Index).Methods(http.MethodGet, http.MethodHead)

	// API
	router.HandleFunc("/login", loginHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods(http.MethodGet)

	// Static assets
	router.PathPrefix(pages.AssetPrefix).
		Handler(http.StripPrefix("/static", staticHandler(assets, unmatched))).
		Methods(http.MethodGet, http.MethodHead)

	router.NotFoundHandler = unmatched
	router.MethodNotAllowedHandler = unmatched

	return router
}

// NewHandler wraps the router with request logging, CORS and panic recovery.
func NewHandler(d Deps, log zerolog.Logger) http.Handler {
	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	var h http.Handler = NewRouter(d)
	h = recovery.Middleware(h)
	h = cors(h)
	h = hlog.AccessHandler(accessLog)(h)
	h = hlog.NewHandler(log)(h)
	return h
}

// accessLog records one line per request. Bodies are never logged.
func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}
