// Package rpc serves the typed procedure calls of the API over a single
// NDJSON endpoint. Each request line carries a method and a payload, each
// response line a Success value or a tagged Failure.
package rpc

import "encoding/json"

// Envelope tags.
const (
	TagSuccess = "Success"
	TagFailure = "Failure"
)

// ContentType is the media type of request and response bodies.
const ContentType = "application/x-ndjson"

// Request is one line of an RPC body.
type Request struct {
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is one line of an RPC reply. Exactly one of Value and Error is
// meaningful, selected by Tag.
type Response struct {
	ID    string
	Tag   string
	Value any
	Error *Failure
}

// Failure is the tagged error union clients switch on.
type Failure struct {
	Tag     string `json:"_tag"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type successEnvelope struct {
	ID    string `json:"id"`
	Tag   string `json:"_tag"`
	Value any    `json:"value"`
}

type failureEnvelope struct {
	ID    string   `json:"id"`
	Tag   string   `json:"_tag"`
	Error *Failure `json:"error"`
}

// MarshalJSON renders the envelope selected by Tag.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Tag == TagFailure {
		return json.Marshal(failureEnvelope{ID: r.ID, Tag: TagFailure, Error: r.Error}) //nolint:wrapcheck
	}

	return json.Marshal(successEnvelope{ID: r.ID, Tag: TagSuccess, Value: r.Value}) //nolint:wrapcheck
}

// UnmarshalJSON accepts either envelope.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string          `json:"id"`
		Tag   string          `json:"_tag"`
		Value json.RawMessage `json:"value"`
		Error *Failure        `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck
	}

	r.ID, r.Tag, r.Error = raw.ID, raw.Tag, raw.Error
	r.Value = raw.Value

	return nil
}

func success(id string, value any) Response {
	return Response{ID: id, Tag: TagSuccess, Value: value}
}

func failure(id string, f *Failure) Response {
	return Response{ID: id, Tag: TagFailure, Error: f}
}
