package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	contractx "github.com/hostbridge/support-agent/agent/contract"
	storex "github.com/hostbridge/support-agent/store"
)

type Server struct{ e *echo.Echo }

// New wires the record stores and the reasoning advisor into the HTTP routes.
func New(advisor contractx.Advisor, customers storex.Customers, plans storex.Plans) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), requestLogger())

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	e.POST("/customers/create", createCustomerHandler(customers))
	e.GET("/customer/:customer_id", getCustomerHandler(customers))
	e.GET("/plans", listPlansHandler(plans))
	e.POST("/support", supportHandler(advisor, customers, plans))

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("http: listening")
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }

func requestLogger() echo.MiddlewareFunc {
	return echoMid.RequestLoggerWithConfig(echoMid.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echoMid.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

// serverError logs the internal cause and hands the caller a generic message;
// internal details never reach untrusted clients.
func serverError(c echo.Context, msg string, err error) error {
	log.Error().Err(err).Msg(msg)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg})
}
