package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	"lbe/internal/config"
	"lbe/internal/handlers/contact"
	"lbe/internal/handlers/health"
	"lbe/internal/handlers/landing"
	"lbe/internal/middleware"
	"lbe/internal/services"
	"lbe/web"
	pages "lbe/web/templates/pages/landing"
)

type Server struct {
	config   config.Config
	services *services.Services
	log      *zap.Logger
	csrfKey  []byte
	handler  http.Handler
}

func New(cfg config.Config, svc *services.Services, log *zap.Logger) *Server {
	key := []byte(cfg.CSRFKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		log.Warn("no csrf_key configured, contact form tokens will not survive a restart")
	}

	s := &Server{
		config:   cfg,
		services: svc,
		log:      log,
		csrfKey:  key,
	}
	s.handler = s.createHandler()
	return s
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) createHandler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	// Forwarded addresses are client-controlled unless a proxy sets them.
	if s.config.TrustedProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.WithAccessLog(s.log))
	r.Use(chimw.Recoverer)
	r.Use(gziphandler.GzipHandler)

	landingHandler := landing.NewHandler(s.services, s.config.SecureCookies, s.log)
	contactHandler := contact.NewHandler(s.services, s.services.Submitter, s.log)

	// Serve static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(s.staticFS())))

	// Health check endpoint
	r.Get("/health", health.Handler)

	// Theme toggling and navigation carry no data worth forging.
	r.Post(pages.PathTheme, landingHandler.ToggleTheme)
	r.Get("/go/{section}", landingHandler.Navigate)

	// The page issues the tokens the contact form posts back.
	r.Group(func(r chi.Router) {
		r.Use(csrf.Protect(s.csrfKey,
			csrf.Secure(s.config.SecureCookies),
			csrf.Path("/"),
			csrf.FieldName(pages.CSRFFieldName),
			csrf.ErrorHandler(http.HandlerFunc(s.csrfFailure)),
		))
		r.With(middleware.WithColorSchemeHints).Get(pages.PathHome, landingHandler.Page)
		r.With(middleware.WithRateLimit(middleware.NewRateLimiter(s.config.ContactRate, s.config.ContactBurst))).
			Post(pages.PathContact, contactHandler.Submit)
	})

	return r
}

// staticFS prefers the configured directory over the embedded assets.
func (s *Server) staticFS() http.FileSystem {
	if s.config.StaticDir != "" {
		return http.Dir(s.config.StaticDir)
	}
	return http.FS(web.Static())
}

func (s *Server) csrfFailure(w http.ResponseWriter, r *http.Request) {
	s.log.Info("rejected form post", zap.String("path", r.URL.Path), zap.Error(csrf.FailureReason(r)))
	http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("serving", zap.String("port", s.config.Port))
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
