//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"github.com/google/uuid"
)

// SessionID is an abstract, comparable session identifier. Session
// caching itself lives outside this package; the core only needs a
// stable handle to name a session by.
type SessionID uuid.UUID

// NewSessionID generates a fresh random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.New())
}

func (id SessionID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the identifier is unset.
func (id SessionID) IsZero() bool {
	return id == SessionID{}
}

// Session captures the session-resumption facts tied to a connection.
type Session struct {
	ID       SessionID
	Resuming bool
}
