package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TransportError means the request never produced a response: DNS, TCP, TLS,
// or a cancelled context.
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError means the server answered with an unexpected status and a body
// that is not an error envelope
type ProtocolError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected response (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("unexpected response (status %d)", e.StatusCode)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// DecodeError means the body was JSON but did not match the expected schema.
// Unknown enum values and unknown error codes end up here.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is an error envelope sent by the server
type APIError struct {
	StatusCode int
	Code       ErrorCode
	Message    string
	Data       json.RawMessage
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", int(e.Code), e.Code, e.Message)
}

// IsErrorCode reports whether err carries an API error with the given code
func IsErrorCode(err error, code ErrorCode) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

type errorEnvelope struct {
	Error *struct {
		Code      *int            `json:"code"`
		Message   string          `json:"message"`
		Data      json.RawMessage `json:"data,omitempty"`
		RequestID string          `json:"requestId,omitempty"`
	} `json:"error"`
}

// decodeErrorEnvelope turns a response with an unexpected status into an error
func decodeErrorEnvelope(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &ProtocolError{StatusCode: status, Body: body, Err: err}
	}
	if env.Error == nil || env.Error.Code == nil {
		return &ProtocolError{StatusCode: status, Body: body, Err: errors.New("body is not an error envelope")}
	}

	code, err := ParseErrorCode(*env.Error.Code)
	if err != nil {
		return &DecodeError{StatusCode: status, Body: body, Err: err}
	}

	return &APIError{
		StatusCode: status,
		Code:       code,
		Message:    env.Error.Message,
		Data:       env.Error.Data,
		RequestID:  env.Error.RequestID,
	}
}
