package http

import (
	"context"
	"net/http"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/cfg"
)

// Server оборачивает http.Server, на котором крутится /graphql и /health.
type Server struct {
	httpServer *http.Server
}

// NewServer собирает сервер с таймаутами из HTTPConfig.
func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Stop мягко завершает сервер, дожидаясь активных запросов.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
