package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/SazWhatician/Srupper/internal/service"
)

const shutdownTimeout = time.Second * 10

// Pinger reports database availability for the health check
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	mx                *chi.Mux
	transitionService service.TransitionServiceI
	pinger            Pinger
}

type ServicesList struct {
	TransitionService service.TransitionServiceI
	Pinger            Pinger
}

type Options struct {
	// Comma separated list, "*" allows any origin
	AllowedOrigins string
	// Directory with the browser client, skipped when empty or missing
	StaticDir string
}

func New(servicesOptions *ServicesList, opts Options) *Server {
	if servicesOptions == nil || servicesOptions.TransitionService == nil {
		log.Fatal("on api server provided nil transition service")
	}
	s := &Server{
		mx:                chi.NewMux(),
		transitionService: servicesOptions.TransitionService,
		pinger:            servicesOptions.Pinger,
	}
	s.mountRoutes(opts)
	return s
}

func (s *Server) mountRoutes(opts Options) {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins: parseOrigins(opts.AllowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	s.mx.Use(middleware.Recoverer)

	s.mx.Get("/healthz", s.Healthz)
	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.LoggerExtensionMiddleware)
		r.Get("/user", s.GetUser)
		r.Get("/tasks", s.GetTasks)
		r.Post("/tasks", s.CreateTask)
		r.Put("/tasks/complete/{id}", s.CompleteTask)
		r.Delete("/reset", s.Reset)
	})

	if opts.StaticDir == "" {
		return
	}
	if info, err := os.Stat(opts.StaticDir); err != nil || !info.IsDir() {
		slog.Warn("static dir is unavailable, client won't be served", slog.String("dir", opts.StaticDir))
		return
	}
	s.mx.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
}

func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = append(origins, "*")
	}
	return origins
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then shuts the server down gracefully
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: time.Second * 5,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return <-errCh
}
