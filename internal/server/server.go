package server

import (
	"context"
	"ctchen222/exercise-tracker/internal/api/controller"
	"ctchen222/exercise-tracker/web"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("server")
	meter  = otel.Meter("server")
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	engine    *gin.Engine
	store     Pinger
	indexHTML []byte
}

// NewServer wires middleware and routes onto a new gin engine.
func NewServer(userController *controller.UserController, exerciseController *controller.ExerciseController, store Pinger) (*Server, error) {
	indexHTML, err := web.Files.ReadFile("index.html")
	if err != nil {
		return nil, err
	}

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of HTTP requests handled, by route and status."),
	)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		cors.Default(),
		requestID(),
		tracing(requests),
		requestLogger(),
	)

	s := &Server{
		engine:    engine,
		store:     store,
		indexHTML: indexHTML,
	}
	s.registerRoutes(userController, exerciseController)
	return s, nil
}

// Engine exposes the handler for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes(uc *controller.UserController, ec *controller.ExerciseController) {
	s.engine.GET("/", s.handleIndex)
	s.engine.StaticFileFS("/style.css", "style.css", http.FS(web.Files))
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	{
		api.POST("/users", uc.Create)
		api.GET("/users", uc.List)
		api.GET("/users/delete", uc.DeleteAll)
		api.POST("/users/:id/exercises", ec.Add)
		api.GET("/users/:id/logs", ec.Logs)
		api.GET("/exercises/delete", ec.DeleteAll)
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.indexHTML)
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
