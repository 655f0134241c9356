// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Typed errors for the Dark AI service client.
//
// Every failure the client returns is a *ClientError carrying a
// machine-readable type. Callers branch on the type (or the Is* helpers)
// and translate to user-facing text only at the presentation boundary
// via UserMessage. Raw error strings never reach the screen.
package api

import "strconv"

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client failures.
type ErrorType int

const (
	// ErrTypeNetwork - the request never produced an HTTP response:
	// connection refused, DNS failure, timeout, cancelled context.
	ErrTypeNetwork ErrorType = iota

	// ErrTypeServer - the server answered with a non-2xx status.
	ErrTypeServer

	// ErrTypeDecode - the response body could not be decoded.
	ErrTypeDecode

	// ErrTypeOther - anything else.
	ErrTypeOther
)

// String returns the error type name.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeNetwork:
		return "network"
	case ErrTypeServer:
		return "server"
	case ErrTypeDecode:
		return "decode"
	default:
		return "other"
	}
}

// =============================================================================
// CLIENT ERROR
// =============================================================================

// ClientError is the error type returned by every Client method.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int // set for ErrTypeServer
	Cause      error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	msg := e.Message
	if e.Type == ErrTypeServer && e.StatusCode != 0 {
		msg += " (status " + strconv.Itoa(e.StatusCode) + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// networkError wraps a transport-level failure.
func networkError(msg string, cause error) *ClientError {
	return &ClientError{Type: ErrTypeNetwork, Message: msg, Cause: cause}
}

// serverError wraps a non-2xx response.
func serverError(msg string, status int) *ClientError {
	return &ClientError{Type: ErrTypeServer, Message: msg, StatusCode: status}
}

// decodeError wraps a body decoding failure.
func decodeError(msg string, cause error) *ClientError {
	return &ClientError{Type: ErrTypeDecode, Message: msg, Cause: cause}
}

// =============================================================================
// PREDICATES
// =============================================================================

// IsNetwork reports whether err is a transport-level client error.
func IsNetwork(err error) bool {
	ce, ok := err.(*ClientError)
	return ok && ce.Type == ErrTypeNetwork
}

// IsServer reports whether err is a non-2xx response error.
func IsServer(err error) bool {
	ce, ok := err.(*ClientError)
	return ok && ce.Type == ErrTypeServer
}

// ServerStatus returns the HTTP status of a server error, or 0.
func ServerStatus(err error) int {
	if ce, ok := err.(*ClientError); ok && ce.Type == ErrTypeServer {
		return ce.StatusCode
	}
	return 0
}

// =============================================================================
// PRESENTATION BOUNDARY
// =============================================================================

// User-facing error strings. These are the only error texts the UI ever
// shows for request failures.
const (
	msgNetwork     = "Unable to reach the server. Check your connection and try again."
	msgServerDown  = "The server is experiencing technical difficulties. Please try again later."
	msgRejected    = "The server rejected the request. Please try again."
	msgUnexpected  = "Something went wrong. Please try again."
)

// UserMessage maps any client error to the text shown to the user.
// Internal detail (status codes, causes) stays out of the chat window.
func UserMessage(err error) string {
	ce, ok := err.(*ClientError)
	if !ok {
		return msgUnexpected
	}
	switch ce.Type {
	case ErrTypeNetwork:
		return msgNetwork
	case ErrTypeServer:
		if ce.StatusCode >= 500 {
			return msgServerDown
		}
		return msgRejected
	default:
		return msgUnexpected
	}
}
