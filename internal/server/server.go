package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/schema"
	"github.com/hogwarts-cloud/sizer/internal/logging"
	"github.com/hogwarts-cloud/sizer/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type Calculator interface {
	Compute(requirements models.Requirements) (models.Result, error)
	Baseline() models.Baseline
}

type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Defaults        models.Requirements
	Calculator      Calculator
}

type Server struct {
	calculator      Calculator
	defaults        models.Requirements
	formDecoder     *schema.Decoder
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          *zap.SugaredLogger
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled and then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.logger.Infof("listening on %s", listener.Addr())

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down")

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to graceful shutdown the server: %w", err)
		}
		return nil
	})

	return eg.Wait()
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		logging.Middleware(zap.L(), "http"),
	)

	router.Get("/", s.formPage)
	router.Post("/calculate", s.calculateForm)
	router.Get("/healthz", s.health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/defaults", s.getDefaults)
		r.Post("/calculate", s.calculateJSON)
		r.Post("/calculate/xlsx", s.calculateXLSX)
	})

	return router
}

func New(config Config) *Server {
	s := &Server{
		calculator:      config.Calculator,
		defaults:        config.Defaults,
		formDecoder:     newFormDecoder(),
		shutdownTimeout: config.ShutdownTimeout,
		logger:          zap.S().Named("server"),
	}

	s.httpServer = &http.Server{
		Addr:         config.Address,
		Handler:      s.routes(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	return s
}
