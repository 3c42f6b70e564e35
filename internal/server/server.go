// Package server exposes a read-only HTTP monitor for a waveform session:
// style presets, session state, and the latest rendered geometry.
package server

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/linksound/wavekit/internal/config"
	"github.com/linksound/wavekit/internal/style"
	"github.com/linksound/wavekit/internal/waveform"
	"github.com/linksound/wavekit/pkg/collections"
)

// Server is the HTTP monitor server.
type Server struct {
	config  *config.Config
	logger  *slog.Logger
	router  *gin.Engine
	session *waveform.Session
	latest  atomic.Pointer[waveform.Frame]
}

// New creates a Server monitoring the given session.
func New(cfg *config.Config, logger *slog.Logger, session *waveform.Session) *Server {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		config:  cfg,
		logger:  logger,
		router:  router,
		session: session,
	}

	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Watch consumes frames from the broadcaster, keeping the most recent one
// for the geometry endpoint. This keeps HTTP reads off the session's lock
// at audio cadence.
func (s *Server) Watch(frames <-chan waveform.Frame) {
	go func() {
		for frame := range frames {
			f := frame
			s.latest.Store(&f)
		}
	}()
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	s.logger.Info("Monitor listening", "port", s.config.MonitorPort)
	return s.router.Run(":" + s.config.MonitorPort)
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.GET("/styles", s.handleStyles)
		api.GET("/styles/:name", s.handleStyle)
		api.GET("/session", s.handleSession)
		api.GET("/geometry", s.handleGeometry)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "wavekit",
	})
}

func (s *Server) handleStyles(c *gin.Context) {
	names := collections.Apply(style.Tokens(), func(t style.Token) string {
		return t.String()
	})
	c.JSON(http.StatusOK, gin.H{"styles": names})
}

func (s *Server) handleStyle(c *gin.Context) {
	tok, err := waveform.ParseStyle(c.Param("name"))
	if err != nil {
		code, _ := waveform.CodeOf(err)
		c.JSON(http.StatusNotFound, gin.H{
			"code":    int(code),
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, style.Resolve(tok))
}

func (s *Server) handleSession(c *gin.Context) {
	cfg := s.session.Config()
	c.JSON(http.StatusOK, gin.H{
		"state":      s.session.State().String(),
		"style":      cfg.Style.String(),
		"heightMode": cfg.HeightMode.String(),
		"layoutMode": cfg.LayoutMode.String(),
		"barCount":   cfg.BarCount,
		"historyLen": s.session.HistoryLen(),
	})
}

func (s *Server) handleGeometry(c *gin.Context) {
	if frame := s.latest.Load(); frame != nil {
		c.JSON(http.StatusOK, frame)
		return
	}

	// No broadcast frame seen yet; fall back to the session's cache.
	frame := s.session.Frame()
	c.JSON(http.StatusOK, frame)
}
