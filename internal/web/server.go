package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"schedule-bot/internal/models/config"

	"go.uber.org/zap"
)

type Server struct {
	srv *http.Server
	log *zap.Logger
}

func NewServer(cfg *config.Config, handler *Handler, log *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              ":" + cfg.HTTPPort,
			Handler:           handler.Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Start занимает порт синхронно, а обслуживает в горутине
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("http server stopped", zap.Error(err))
		}
	}()

	s.log.Info("🌐 HTTP API запущен", zap.String("addr", s.srv.Addr))
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
