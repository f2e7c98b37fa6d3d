//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

// RNG is the connection's deterministic-on-seed pseudo-random byte
// source. Every draw advances the internal counter, so given
// identical seeds and identical call sequences the output is
// bit-identical — the property deterministic tests depend on.
//
// There is no global RNG: every State owns one, seeded at
// construction.
type RNG struct {
	seed    [32]byte
	counter uint64
}

// NewRNG creates an RNG seeded with the given 32-byte seed.
func NewRNG(seed [32]byte) *RNG {
	return &RNG{seed: seed}
}

// Draw returns n pseudo-random bytes and advances the RNG state. The
// draw is derived from the seed and the current counter via
// HKDF-Expand, so replaying the same seed with the same sequence of
// draw lengths reproduces the same bytes.
func (r *RNG) Draw(n int) []byte {
	var info [8]byte
	binary.BigEndian.PutUint64(info[:], r.counter)

	expander := hkdf.Expand(sha256.New, r.seed[:], info[:])
	out := make([]byte, n)
	if _, err := io.ReadFull(expander, out); err != nil {
		// hkdf.Expand's Reader never returns an error for lengths
		// within its 255*hashLen limit, which every caller in this
		// package respects (draws are at most 48 bytes).
		panicInvariant("rng: %v", err)
	}
	r.counter++
	return out
}

// rngReader adapts an RNG to io.Reader, drawing exactly len(p) bytes per
// Read call so every byte handed to a caller is accounted for by
// exactly one Draw.
type rngReader struct {
	rng *RNG
}

func (rr rngReader) Read(p []byte) (int, error) {
	copy(p, rr.rng.Draw(len(p)))
	return len(p), nil
}

// Reader returns an io.Reader view of the RNG suitable for passing to
// blinding-capable primitives such as rsa.DecryptPKCS1v15SessionKey.
func (r *RNG) Reader() io.Reader {
	return rngReader{rng: r}
}

// Use runs an RNG-consuming computation and commits its post-state.
// Because RNG is held by reference from State, the commit is implicit
// in the draws f performs through the returned reader.
func (r *RNG) Use(f func(io.Reader) error) error {
	return f(r.Reader())
}
