//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"fmt"
)

// ProtocolError is a semantic protocol violation: a bad Finished MAC,
// a renegotiation-extension mismatch, a missing server certificate,
// and so on. It carries the fatal flag and the alert description the
// caller must translate into an outbound alert.
type ProtocolError struct {
	Message string
	Fatal   bool
	Alert   AlertDescription
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Alert)
}

// Unwrap lets callers errors.As into the underlying AlertDescription.
func (e *ProtocolError) Unwrap() error {
	return e.Alert
}

// protocolErrorf builds a fatal ProtocolError.
func protocolErrorf(alert AlertDescription, format string,
	a ...interface{}) *ProtocolError {
	return &ProtocolError{
		Message: fmt.Sprintf(format, a...),
		Fatal:   true,
		Alert:   alert,
	}
}

// DecodeError wraps a malformed-wire-bytes failure. Decode errors are
// always fatal at the protocol level.
type DecodeError struct {
	Message string
	Alert   AlertDescription
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %s: %v", e.Message, e.Alert)
}

// Unwrap lets callers errors.As into the underlying AlertDescription.
func (e *DecodeError) Unwrap() error {
	return e.Alert
}

func decodeErrorf(format string, a ...interface{}) *DecodeError {
	return &DecodeError{
		Message: fmt.Sprintf(format, a...),
		Alert:   AlertDecodeError,
	}
}

// KxError wraps a key-exchange failure. RSA decrypt failure during
// ClientKeyExchange is deliberately absorbed by the anti-rollback
// countermeasure and never surfaces as a KxError; this type exists
// for key-exchange failures outside that countermeasure (e.g. a
// NopKeySchedule refusing a key-schedule call).
type KxError struct {
	Err error
}

func (e *KxError) Error() string {
	return fmt.Sprintf("key exchange failed: %v", e.Err)
}

func (e *KxError) Unwrap() error {
	return e.Err
}

// InternalInvariantError indicates a caller bug: reading version
// before it is set, or reading handshake substate outside a
// handshake. These panic rather than surface as protocol errors.
type InternalInvariantError struct {
	Message string
}

func (e *InternalInvariantError) Error() string {
	return "internal invariant violated: " + e.Message
}

func panicInvariant(format string, a ...interface{}) {
	panic(&InternalInvariantError{Message: fmt.Sprintf(format, a...)})
}
