package server

import (
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rpgo/enoughcalc/internal/calculation"
	"github.com/rpgo/enoughcalc/internal/config"
	"github.com/rpgo/enoughcalc/internal/domain"
	"github.com/rpgo/enoughcalc/internal/output"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// requestParser accepts unknown keys so clients can send extra metadata.
var requestParser = &config.InputParser{Strict: false}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status  int                  `json:"status"`
	Message string               `json:"message"`
	Errors  []*domain.InputError `json:"errors,omitempty"`
}

// handleCalculate decodes an input record over the defaults, validates it and
// runs the engine. ?format= selects any registered formatter, ?paths=true keeps
// every Monte Carlo path in JSON responses.
func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx, requestID string) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	format := string(ctx.QueryArgs().Peek("format"))
	if format == "" {
		format = "json"
	}
	formatter, err := output.Resolve(format)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error(), nil)
		return
	}
	formatter = output.WithPaths(formatter, ctx.QueryArgs().GetBool("paths"))

	inputs, err := requestParser.ParseJSON(ctx.PostBody())
	if err != nil {
		var ve domain.ValidationErrors
		if errors.As(err, &ve) {
			writeValidationError(ctx, err)
			return
		}
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	calcCtx, cancel := context.WithTimeout(context.Background(), s.timeout())
	defer cancel()

	results, err := s.Engine.Calculate(calcCtx, *inputs)
	switch {
	case err == nil:
	case errors.Is(err, calculation.ErrInvalidInputs):
		writeValidationError(ctx, err)
		return
	case errors.Is(err, context.DeadlineExceeded):
		writeError(ctx, fasthttp.StatusGatewayTimeout, "calculation exceeded time limit", nil)
		return
	default:
		s.Logger.Error("calculation failed", zap.String("request_id", requestID), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "calculation failed", nil)
		return
	}

	body, err := formatter.Format(results)
	if err != nil {
		s.Logger.Error("format failed", zap.String("request_id", requestID), zap.String("format", formatter.Name()), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to format results", nil)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentType(formatter.Extension()))
	ctx.SetBody(body)
}

func contentType(ext string) string {
	switch strings.ToLower(ext) {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeValidationError(ctx *fasthttp.RequestCtx, err error) {
	var ve domain.ValidationErrors
	if errors.As(err, &ve) {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, "invalid inputs", ve)
		return
	}
	writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error(), nil)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string, fields []*domain.InputError) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message, Errors: fields})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error("internal error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
