package rpc

import (
	"bytes"
	"context"
	"encoding/json"

	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
)

// Call is a decoded request on its way to a procedure.
type Call struct {
	ID      string
	Method  string
	Session *entity.AuthSession // Nil for anonymous callers.
	Payload json.RawMessage

	validate func(any) error
}

// Procedure executes one call and returns the Success value.
type Procedure func(ctx context.Context, call *Call) (any, error)

// Middleware decorates every registered procedure.
type Middleware func(next Procedure) Procedure

// Empty is the payload of procedures that take no input.
type Empty struct{}

// Handle adapts a typed use case call. The payload is decoded strictly into
// P and validated before fn runs; decode and validation failures are
// VALIDATION_FAILED.
func Handle[P, R any](fn func(ctx context.Context, session *entity.AuthSession, payload *P) (R, error)) Procedure {
	return func(ctx context.Context, call *Call) (any, error) {
		payload := new(P)
		if err := call.decode(payload); err != nil {
			return nil, err
		}

		return fn(ctx, call.Session, payload)
	}
}

func (c *Call) decode(target any) error {
	body := bytes.TrimSpace(c.Payload)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		body = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if dec.More() {
		return domainerrors.ErrValidationFailed.WithDetails("payload must be a single JSON object")
	}

	if c.validate == nil {
		return nil
	}

	return c.validate(target)
}
