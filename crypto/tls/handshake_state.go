//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"hash"
)

// HandshakeSubstate is the scratch state that exists only for the
// duration of one in-progress handshake. It is allocated at
// ClientHello / first handshake step and torn down after Finished:
// State.handshake is non-nil exactly while a handshake is in
// progress.
type HandshakeSubstate struct {
	// pendingCipher is the chosen cipher once ServerHello has been
	// processed.
	pendingCipher CipherSuite
	cipherChosen  bool

	// clientVersion is the version byte pair advertised in
	// ClientHello, retained verbatim for the ClientKeyExchange
	// anti-rollback check.
	clientVersion ProtocolVersion

	// clientRandom is captured from ClientHello.
	clientRandom [32]byte

	// handshakeMessages accumulates the raw wire bytes of every
	// message a CertificateVerify signature must cover, in wire order.
	handshakeMessages []byte

	// handshakeDigest is the running incremental hash over every
	// message a Finished verify-data must cover.
	handshakeDigest hash.Hash

	// finishedMaterialRaw mirrors everything ever written into
	// handshakeDigest, in order. TLS 1.3 does not fix the transcript
	// hash function until the cipher suite is chosen in ServerHello,
	// by which point ClientHello has already been folded in under the
	// SHA-256 default; resetDigest replays this buffer through the
	// correct hash once it is known. Cleared once no longer needed
	// would save memory, but the handshake is short-lived enough that
	// it is not worth tracking that separately.
	finishedMaterialRaw []byte

	// publicKey is the peer's public key observed in a Certificate
	// message when we are the client (the server's key).
	publicKey crypto.PublicKey

	// clientPublicKey is the peer's public key observed in a
	// Certificate message when we are the server (the client's key,
	// only present under client-certificate auth).
	clientPublicKey crypto.PublicKey

	// rsaPrivateKey is our own RSA private key, used to decrypt an
	// incoming ClientKeyExchange when we are the server.
	rsaPrivateKey *rsa.PrivateKey

	// rsaClientPublicKey is the client's RSA public key, used to
	// verify a CertificateVerify signature under client-certificate
	// auth.
	rsaClientPublicKey *rsa.PublicKey

	// serverRandom is captured from ServerHello.
	serverRandom [32]byte

	// npnSelected stages the peer-selected NPN/ALPN protocol name
	// until the handshake completes.
	npnSelected []byte
}

// newHandshakeSubstate allocates a fresh handshake substate whose
// running transcript digest starts as the given hash. BeginHandshake
// passes the SHA-256 default, used until the cipher is chosen, matching every cipher suite this package supports pre-1.3;
// ServerHello processing re-seeds it once pendingCipher is known via
// resetDigest.
func newHandshakeSubstate(digest hash.Hash) *HandshakeSubstate {
	return &HandshakeSubstate{handshakeDigest: digest}
}

// defaultTranscriptHash returns the initial transcript hash used
// before a cipher suite is negotiated.
func defaultTranscriptHash() hash.Hash {
	return sha256.New()
}

// foldFinished writes raw into the running transcript digest and
// retains a copy so a later resetDigest can replay it under a
// different hash function.
func (hs *HandshakeSubstate) foldFinished(raw []byte) {
	hs.finishedMaterialRaw = append(hs.finishedMaterialRaw, raw...)
	hs.handshakeDigest.Write(raw)
}

// resetDigest re-seeds the running transcript digest with a hash
// function matching the now-known negotiated cipher suite, replaying
// every byte folded in so far. Called once ServerHello has fixed
// pendingCipher: TLS 1.3's transcript hash is not fixed until the
// cipher suite is chosen, so anything folded in before then must be
// rehashed under the correct function.
func (hs *HandshakeSubstate) resetDigest(cs CipherSuite) {
	h := cs.Hash()
	h.Write(hs.finishedMaterialRaw)
	hs.handshakeDigest = h
}

// AddHandshakeMessage appends raw to the CertificateVerify byte
// sequence. Exported so a send-side encoder can fold its own outgoing
// messages into the same transcript this core maintains for incoming
// ones.
func (hs *HandshakeSubstate) AddHandshakeMessage(raw []byte) {
	hs.handshakeMessages = append(hs.handshakeMessages, raw...)
}

// UpdateHandshakeDigest folds raw into the running Finished digest.
func (hs *HandshakeSubstate) UpdateHandshakeDigest(raw []byte) {
	hs.foldFinished(raw)
}

// GetHandshakeDigest snapshots the running transcript digest. peer
// names which side's Finished the caller intends to verify or produce
// against this snapshot; the digest itself does not depend on it, but
// the parameter is kept so call sites read as self-documenting.
func (hs *HandshakeSubstate) GetHandshakeDigest(peer Role) []byte {
	_ = peer
	return hs.handshakeDigest.Sum(nil)
}
