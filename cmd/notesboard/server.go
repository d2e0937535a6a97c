package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oliverisaac/notesboard/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Store interface {
	NoteStore
	UserStore
	Pinger
}

func newServer(cfg types.Config, st Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()

	reg := prometheus.NewRegistry()
	apiErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notesboard",
		Name:      "api_errors_total",
		Help:      "Errors returned by API handlers, by response status.",
	}, []string{"status"})
	reg.MustRegister(
		apiErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	e.HTTPErrorHandler = errorHandler(apiErrors)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, id=${id}\n",
		Output: logrus.StandardLogger().Out,
	}))

	if cfg.MetricsEnabled {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "notesboard",
			Registerer: reg,
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	}

	e.GET("/healthz", healthHandler(st))

	api := e.Group("/api")

	// notes
	api.GET("/notes", listNotes(st))
	api.POST("/notes", createNote(st))
	api.GET("/notes/:id", getNote(st))
	api.PUT("/notes/:id", updateNote(st))
	api.DELETE("/notes/:id", deleteNote(st))

	// users
	api.GET("/users", listUsers(st))
	api.POST("/users", createUser(st))
	api.GET("/users/:id", getUser(st))
	api.DELETE("/users/:id", deleteUser(st))

	return e
}

func healthHandler(p Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "store unavailable").SetInternal(err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
