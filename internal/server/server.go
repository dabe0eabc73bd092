package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpgo/enoughcalc/internal/calculation"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	pathCalculate = "/v1/calculate"
	pathHealth    = "/healthz"

	headerRequestID = "X-Request-ID"

	// DefaultTimeout bounds one calculation when the caller sets none.
	DefaultTimeout = 30 * time.Second
	// MaxBodySize caps request bodies; an input record is a few kilobytes.
	MaxBodySize = 1 << 20
)

// Server exposes the calculation engine over HTTP.
type Server struct {
	Engine  *calculation.CalculationEngine
	Logger  *zap.Logger
	Timeout time.Duration
}

// New creates a server around an engine. A nil logger disables logging.
func New(engine *calculation.CalculationEngine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &Server{Engine: engine, Logger: logger, Timeout: DefaultTimeout}
}

// Handler routes requests to the calculate and health endpoints.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		requestID := string(ctx.Request.Header.Peek(headerRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Response.Header.Set(headerRequestID, requestID)

		switch string(ctx.Path()) {
		case pathCalculate:
			s.handleCalculate(ctx, requestID)
		case pathHealth:
			s.handleHealth(ctx)
		default:
			writeError(ctx, fasthttp.StatusNotFound, "not found", nil)
		}

		s.Logger.Info("request",
			zap.String("request_id", requestID),
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() && !ctx.IsHead() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "enoughcalc",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       s.timeout() + 10*time.Second,
		MaxRequestBodySize: MaxBodySize,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.Logger.Info("shutting down")
		return srv.Shutdown()
	}
}

func (s *Server) timeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultTimeout
	}
	return s.Timeout
}
