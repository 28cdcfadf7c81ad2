package rpc

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	deliverycontext "placeswipe/internal/delivery/context"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	maxLineSize        = 1 << 20
	maxCallsPerRequest = 50
)

// Dispatcher routes request lines to registered procedures.
type Dispatcher struct {
	procedures  map[string]Procedure
	middlewares []Middleware
	validate    func(any) error
	logger      *slog.Logger
}

// NewDispatcher creates an empty dispatcher. validate checks decoded
// payloads, usually an echo.Validator's Validate.
func NewDispatcher(validate func(any) error, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		procedures: make(map[string]Procedure),
		validate:   validate,
		logger:     logger,
	}
}

// Use appends middlewares. They apply to procedures registered afterwards,
// the first one outermost.
func (d *Dispatcher) Use(middlewares ...Middleware) {
	d.middlewares = append(d.middlewares, middlewares...)
}

// Register binds method to procedure. Registering a method twice panics.
func (d *Dispatcher) Register(method string, procedure Procedure) {
	if _, exists := d.procedures[method]; exists {
		panic("rpc: duplicate method " + method)
	}

	for i := len(d.middlewares) - 1; i >= 0; i-- {
		procedure = d.middlewares[i](procedure)
	}
	d.procedures[method] = procedure
}

// Methods lists registered method names in order.
func (d *Dispatcher) Methods() []string {
	return slices.Sorted(maps.Keys(d.procedures))
}

// Dispatch runs a single request line.
func (d *Dispatcher) Dispatch(ctx context.Context, line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return failure(partialID(line), toFailure(domainerrors.ErrMalformedRequest.WithDetails(err.Error())))
	}
	if strings.TrimSpace(req.Method) == "" {
		return failure(req.ID, toFailure(domainerrors.ErrMalformedRequest.WithDetails("method is required")))
	}

	procedure, ok := d.procedures[req.Method]
	if !ok {
		return failure(req.ID, toFailure(domainerrors.ErrUnknownMethod.WithDetails(req.Method)))
	}

	call := &Call{
		ID:       req.ID,
		Method:   req.Method,
		Session:  deliverycontext.GetSession(ctx),
		Payload:  req.Payload,
		validate: d.validate,
	}

	value, err := procedure(ctx, call)
	if err != nil {
		return failure(req.ID, d.failureOf(ctx, call, err))
	}

	return success(req.ID, value)
}

// ServeHTTP is the echo handler of POST /rpc. Lines run sequentially and
// every line gets exactly one response line, in request order.
func (d *Dispatcher) ServeHTTP(c echo.Context) error {
	ctx := c.Request().Context()

	scanner := bufio.NewScanner(c.Request().Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, ContentType)
	res.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(res)

	write := func(r Response) error {
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "failed to write rpc response")
		}
		res.Flush()

		return nil
	}

	calls := 0
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		calls++
		if calls > maxCallsPerRequest {
			return write(failure("", toFailure(domainerrors.ErrMalformedRequest.WithDetails("too many calls in one request"))))
		}

		if err := write(d.Dispatch(ctx, line)); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return write(failure("", toFailure(domainerrors.ErrMalformedRequest.WithDetails(err.Error()))))
	}
	if calls == 0 {
		return write(failure("", toFailure(domainerrors.ErrMalformedRequest.WithDetails("empty request body"))))
	}

	return nil
}

func (d *Dispatcher) failureOf(ctx context.Context, call *Call, err error) *Failure {
	appErr := domainerrors.Resolve(err)
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(ctx, d.logger).Error("Procedure failed",
			slog.String("method", call.Method),
			slog.Any("error", err),
		)
	}

	return toFailure(appErr)
}

// toFailure hides details of server side failures.
func toFailure(appErr domainerrors.AppError) *Failure {
	f := &Failure{Tag: appErr.ErrorCode(), Message: appErr.Message()}
	if appErr.HTTPCode() < http.StatusInternalServerError {
		f.Details = appErr.Details()
	}

	return f
}

// partialID recovers the id of a line that is not a valid request, when the
// line is at least a JSON object with a string id.
func partialID(line []byte) string {
	var envelope struct {
		ID json.RawMessage `json:"id"`
	}
	if json.Unmarshal(line, &envelope) != nil {
		return ""
	}

	var id string
	if json.Unmarshal(envelope.ID, &id) != nil {
		return ""
	}

	return id
}
