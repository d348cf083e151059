// Package server exposes synthesis as an HTTP service: a gin router
// (internal/server/router) carrying CORS and request-logging
// middleware, and a set of handlers that call into internal/service
// to turn an uploaded PLA file into a stored circuit and its QASM/PNG
// renderings. Adapted from the teacher's internal/app + internal/server
// split, folded into one package since this module has only the one
// domain surface to expose.
package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kegliz/syrecgo/internal/config"
	"github.com/kegliz/syrecgo/internal/logger"
	"github.com/kegliz/syrecgo/internal/server/router"
	"github.com/kegliz/syrecgo/internal/service"
)

type (
	// Options configures a new Server.
	Options struct {
		Config  *config.Config
		Service service.Service
		Version string
	}

	// Server is the interface cmd/syrecd drives.
	Server interface {
		Listen(port int, localOnly bool) error
		Shutdown(ctx context.Context) error
	}

	httpServer struct {
		logger  *logger.Logger
		router  *router.Router
		service service.Service
		version string
	}
)

// NewServer builds a Server with its routes already registered.
func NewServer(options Options) (Server, error) {
	l := logger.NewLogger(logger.LoggerOptions{Debug: options.Config.GetBool("debug")})
	r := router.NewRouter(router.RouterOptions{
		Logger:          l,
		CORSAllowOrigin: options.Config.GetString("cors_allow_origin"),
	})

	svc := options.Service
	if svc == nil {
		svc = service.NewService(service.Options{Logger: l})
	}

	s := &httpServer{
		logger:  l,
		router:  r,
		service: svc,
		version: options.Version,
	}
	s.router.SetRoutes(s.routes())
	return s, nil
}

// Listen implements Server.
func (s *httpServer) Listen(port int, localOnly bool) error {
	s.logger.Info().
		Str("version", s.version).
		Int("port", port).
		Bool("localOnly", localOnly).
		Msg("starting synthesis service")
	return s.router.Start(port, localOnly)
}

// Shutdown implements Server.
func (s *httpServer) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}

func (s *httpServer) getLogger(c *gin.Context) *logger.Logger {
	if l, ok := c.Get("logger"); ok {
		if l, ok := l.(*logger.Logger); ok {
			return l
		}
	}
	return s.logger
}
