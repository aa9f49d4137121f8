package verifier

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/torrejonv/merklecheck/errors"
	"github.com/torrejonv/merklecheck/settings"
	"github.com/torrejonv/merklecheck/ulogger"
)

type Server struct {
	logger   ulogger.Logger
	settings *settings.Settings
	e        *echo.Echo
}

func New(logger ulogger.Logger, tSettings *settings.Settings) *Server {
	initPrometheusMetrics()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	s := &Server{
		logger:   logger,
		settings: tSettings,
		e:        e,
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/api/v1/verify", s.handleVerifyBlock)
	e.POST("/api/v1/verify/genesis", s.handleVerifyGenesis)
	e.POST("/api/v1/merkleroot", s.handleComputeRoot)

	return s
}

// Start runs the HTTP server until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	addr := s.settings.HTTP.ListenAddress
	s.logger.Infof("[Verifier] HTTP service listening on %s", addr)

	go func() {
		<-ctx.Done()
		s.logger.Infof("[Verifier] HTTP service shutting down")

		if err := s.e.Shutdown(context.Background()); err != nil {
			s.logger.Errorf("[Verifier] HTTP service shutdown error: %s", err)
		}
	}()

	err := s.e.Start(addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.NewServiceError("verifier http server failed", err)
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
