package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"democtl/internal/system"
	appver "democtl/internal/version"
)

// Server exposes a running demo session as a small JSON API so a
// second screen can follow along.
type Server struct {
	Addr   string
	Status *Status
}

func (s *Server) Start(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	s.mountAPI(r)

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("status server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

func (s *Server) mountAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Status.Snapshot())
	})
	api.GET("/script", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"file":  s.Status.Snapshot().File,
			"lines": s.Status.Lines(),
		})
	})
}

// Handler returns the configured gin engine without starting a
// listener, for tests.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	s.mountAPI(r)
	return r
}
