package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	mu       sync.Mutex
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
			IdleTimeout:       4 * cfg.RequestTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// listen binds the TCP listener once; later calls are no-ops.
func (h *httpServer) listen() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	h.listener = ln
	return nil
}

func (h *httpServer) addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}

// serve blocks until the server is shut down. A regular shutdown is not an
// error.
func (h *httpServer) serve() error {
	if err := h.listen(); err != nil {
		return err
	}

	h.mu.Lock()
	ln := h.listener
	h.mu.Unlock()

	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server is listening")
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx := context.Background()
	if h.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.shutdownTimeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		// ошибки закрытия Listener или истёкший таймаут
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Msg("HTTP server shutdown")
		h.server.Close()
	}
}
