package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/apisrv/reports"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) setupHTTPAPI(reportsServer *reports.Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/reports", func(r chi.Router) {
		r.Get("/traffic", func(w http.ResponseWriter, r *http.Request) {
			days := reports.ParsePeriod(r.URL.Query().Get("period"))
			report, err := reportsServer.Traffic(r.Context(), days)
			respondReport(w, r, report, err)
		})
		r.Get("/financial", func(w http.ResponseWriter, r *http.Request) {
			days := reports.ParsePeriod(r.URL.Query().Get("period"))
			report, err := reportsServer.Financial(r.Context(), days)
			respondReport(w, r, report, err)
		})
		r.Get("/inventory", func(w http.ResponseWriter, r *http.Request) {
			days := reports.ParsePeriod(r.URL.Query().Get("period"))
			report, err := reportsServer.Inventory(r.Context(), days)
			respondReport(w, r, report, err)
		})
		r.Get("/customers", func(w http.ResponseWriter, r *http.Request) {
			days := reports.ParsePeriod(r.URL.Query().Get("period"))
			report, err := reportsServer.Customers(r.Context(), days)
			respondReport(w, r, report, err)
		})
		r.Get("/sales", func(w http.ResponseWriter, r *http.Request) {
			days := reports.ParsePeriod(r.URL.Query().Get("period"))
			report, err := reportsServer.Sales(r.Context(), days)
			respondReport(w, r, report, err)
		})
		r.Get("/products", func(w http.ResponseWriter, r *http.Request) {
			days := reports.ParsePeriod(r.URL.Query().Get("period"))
			includeZeroSales := r.URL.Query().Get("includeZeroSales") == "true"
			report, err := reportsServer.Products(r.Context(), days, includeZeroSales)
			respondReport(w, r, report, err)
		})
	})

	return r
}

// respondReport writes either the report payload or a retryable error state.
func respondReport(w http.ResponseWriter, r *http.Request, report any, err error) {
	if err != nil {
		respondJSON(r.Context(), w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load report, retry",
		})
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, report)
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Default().ErrorContext(ctx, "can't encode response",
			slog.String("err", err.Error()),
		)
	}
}

// Start starts the server
func (s *Server) Start(ctx context.Context, reportsServer *reports.Server) error {
	ctx, cancel := context.WithCancel(ctx)
	hsDone := make(chan struct{})

	go func() {
		<-hsDone
		close(s.done)
	}()

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.setupHTTPAPI(reportsServer),
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("toko-oleh-oleh reports new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		cancel()
		close(hsDone)
	}()

	return nil
}

// Stop gracefully shuts down the http server.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
