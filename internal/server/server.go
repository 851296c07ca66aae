// Package server runs the webhook HTTP server: a health endpoint plus the
// enabled providers mounted under /webhooks. Each accepted ticket is
// previewed on the console and enqueued for printing.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/papercut-dev/papercut/internal/config"
	"github.com/papercut-dev/papercut/internal/logger"
	"github.com/papercut-dev/papercut/internal/printer"
	"github.com/papercut-dev/papercut/internal/providers"
	"github.com/papercut-dev/papercut/internal/render"
	"github.com/papercut-dev/papercut/internal/ticket"
)

// shutdownGrace bounds how long in-flight requests get on shutdown.
const shutdownGrace = 5 * time.Second

// JobSubmitter enqueues one print job. *printer.Queue satisfies it; nil
// means printing is off and tickets are previewed only.
type JobSubmitter interface {
	Submit(printer.RenderJob) (uuid.UUID, error)
}

// Server is the webhook endpoint plus the ticket dispatch path.
type Server struct {
	engine *gin.Engine
	log    *zap.Logger
	out    io.Writer

	console *render.ConsoleRenderer
	device  *render.DeviceRenderer
	queue   JobSubmitter
}

// New assembles the engine with the enabled providers mounted.
func New(cfg config.Config, queue JobSubmitter, log *zap.Logger) *Server {
	s := &Server{
		log:     log,
		out:     os.Stdout,
		console: render.NewConsoleRenderer(cfg),
		device:  render.NewDeviceRenderer(cfg, log),
		queue:   queue,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	engine.GET("/", s.health)

	webhooks := engine.Group("/webhooks")
	for _, p := range providers.Build(cfg, s.dispatch, log) {
		p.Register(webhooks)
		log.Info("provider enabled", zap.String("provider", p.Name()))
	}

	s.engine = engine
	return s
}

// SetOutput redirects the console preview. Tests capture it here.
func (s *Server) SetOutput(w io.Writer) { s.out = w }

// Handler exposes the underlying HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Papercut is running"})
}

// dispatch previews the ticket on the console and enqueues the print job.
// A full or stopped queue drops the job; the webhook was already
// acknowledged, so delivery stays best-effort.
func (s *Server) dispatch(t *ticket.Ticket) {
	fmt.Fprint(s.out, s.console.Render(t))

	if s.queue == nil {
		return
	}

	id, err := s.queue.Submit(func(dev printer.Device) error {
		return s.device.Render(t, dev)
	})
	if err != nil {
		s.log.Error("dropping print job", zap.String("ticket", t.Identifier), zap.Error(err))
		return
	}
	s.log.Info("print job queued",
		zap.String("ticket", t.Identifier), zap.String("job", id.String()))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.log.Info("webhook server listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return <-errCh
}
