package app

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server обёртка над http.Server с graceful shutdown
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer создаёт HTTP-сервер
func NewServer(addr string, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Start запускает сервер; блокируется до остановки
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown останавливает сервер, дождавшись активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.srv.Shutdown(ctx)
}
