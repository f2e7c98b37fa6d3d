//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"github.com/sirupsen/logrus"
)

// Config carries the ambient settings a State is constructed with.
// The teacher's cmd/tls/main.go already referenced a tls.Config type
// with a Debug field before Connection grew one; this completes that
// wiring and adds the pieces a receive-side core needs: the fixed
// role and an injectable logger.
type Config struct {
	// Role fixes whether this state represents the client or server
	// end of the connection. It never changes after creation.
	Role Role

	// Debug enables verbose handshake tracing.
	Debug bool

	// ServerName is the client's intended peer host name. NewState
	// copies a non-empty ServerName into clientSNI (reported by
	// ClientSNI) whatever the role; this package does not read the
	// server_name extension of an incoming ClientHello.
	ServerName string

	// Logger receives structured trace output. A nil Logger installs
	// a package-default logrus.Logger with debug output silenced
	// unless Debug is set.
	Logger *logrus.Logger
}

func (c *Config) logger() *logrus.Entry {
	l := c.Logger
	if l == nil {
		l = logrus.New()
	}
	if c.Debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l.WithField("role", c.Role)
}
