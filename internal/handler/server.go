package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Server struct {
	srv *http.Server
	log *zap.Logger
}

// NewServer wires the API behind token authentication and CORS.
func NewServer(addr, jwtSecret string, allowedOrigins []string, timeout time.Duration, h *Handler, log *zap.Logger) (*Server, error) {
	auth, err := NewAuthMiddleware(jwtSecret, log)
	if err != nil {
		return nil, err
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(auth(http.TimeoutHandler(h.Routes(), timeout, `{"error":"timeout"}`)))

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           corsHandler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}, nil
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server started", zap.String("addr", s.srv.Addr))
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.log.Info("http server stopping")
	return s.srv.Shutdown(shutdownCtx)
}
