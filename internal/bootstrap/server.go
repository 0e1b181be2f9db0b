package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/airportservice/api"
	"github.com/Domenick1991/airportservice/config"
	"github.com/Domenick1991/airportservice/docs"
	"github.com/Domenick1991/airportservice/internal/logger"
	"github.com/Domenick1991/airportservice/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Registrar interface {
	Register(router *gin.RouterGroup)
}

// Handlers are mounted under their resource path, e.g. "/airports".
type Handlers struct {
	Resources map[string]Registrar
	Users     *api.UserHandler
}

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

func NewRouter(cfg *config.Config, log *logger.Logger, tokens middleware.TokenParser, h Handlers, checks map[string]HealthCheck) *gin.Engine {
	if !cfg.HTTP.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		cors.New(corsConfig(cfg.HTTP.AllowedOrigins)),
		middleware.RateLimit(log, cfg.HTTP.RatePerSecond),
		middleware.Authenticate(tokens),
	)

	r.GET("/health", health(checks))
	r.GET("/swagger/*any", swagger())
	if strings.HasPrefix(cfg.Media.URL, "/") {
		r.Static(strings.TrimSuffix(cfg.Media.URL, "/"), cfg.Media.Root)
	}

	if h.Users != nil {
		h.Users.Register(r.Group("/users"), middleware.RequireIdentity())
	}
	for path, handler := range h.Resources {
		handler.Register(r.Group(path, middleware.Gate()))
	}
	return r
}

// Run serves until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http", fmt.Sprintf("listening on %s", cfg.HTTP.Address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("http", "shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

func health(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		report := gin.H{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				report[name] = err.Error()
				continue
			}
			report[name] = "ok"
		}

		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{"status": state, "checks": report})
	}
}

func swagger() gin.HandlerFunc {
	ui := httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))
	return func(c *gin.Context) {
		if c.Param("any") == "/doc.json" {
			c.Data(http.StatusOK, "application/json; charset=utf-8", docs.OpenAPI)
			return
		}
		ui.ServeHTTP(c.Writer, c.Request)
	}
}
