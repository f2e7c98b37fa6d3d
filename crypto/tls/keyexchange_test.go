//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return priv
}

func encryptedClientKeyExchange(t *testing.T, priv *rsa.PrivateKey, pms PreMasterSecret) []byte {
	t.Helper()
	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, &priv.PublicKey, pms.Bytes())
	require.NoError(t, err)

	out := make([]byte, 2+len(ciphertext))
	bo.PutUint16(out[0:2], uint16(len(ciphertext)))
	copy(out[2:], ciphertext)
	return out
}

// TestClientKeyExchangeValidPremaster is the success-path complement
// of the anti-rollback scenario: matching client version, valid
// ciphertext, decoded premaster is used.
func TestClientKeyExchangeValidPremaster(t *testing.T) {
	priv := mustRSAKey(t)

	s := newTestState(t, RoleServer)
	require.NoError(t, s.SetVersion(VersionTLS12))
	s.BeginHandshake()
	hs := s.Handshake()
	hs.rsaPrivateKey = priv
	hs.clientVersion = VersionTLS12
	hs.pendingCipher = CipherTLSRsaWithAes128CbcSha
	hs.cipherChosen = true

	var random [46]byte
	copy(random[:], []byte("0123456789012345678901234567890123456789012"))
	pms := PreMasterSecret{ClientVersion: VersionTLS12, Random: random}

	cke := &ClientKeyExchange{Raw: encryptedClientKeyExchange(t, priv, pms)}
	require.NoError(t, s.ProcessHandshake(cke))

	fks := s.keySchedule.(*fakeKeySchedule)
	require.Equal(t, pms.Bytes(), fks.lastPremaster)
}

// TestClientKeyExchangeVersionRollback checks the anti-rollback
// countermeasure: a validly-encrypted premaster whose embedded version
// does not match the ClientHello version must never reach the key
// schedule; a random fallback is used instead, indistinguishable in
// control flow from the tampered-ciphertext case.
func TestClientKeyExchangeVersionRollback(t *testing.T) {
	priv := mustRSAKey(t)

	s := newTestState(t, RoleServer)
	require.NoError(t, s.SetVersion(VersionTLS12))
	s.BeginHandshake()
	hs := s.Handshake()
	hs.rsaPrivateKey = priv
	hs.clientVersion = VersionTLS12 // ClientHello declared TLS 1.2
	hs.pendingCipher = CipherTLSRsaWithAes128CbcSha
	hs.cipherChosen = true

	var random [46]byte
	copy(random[:], []byte("rollback-attempt-plaintext-padding-bytes!!!!!"))
	// Premaster plaintext declares TLS 1.0, a version rollback attack.
	pms := PreMasterSecret{ClientVersion: VersionTLS10, Random: random}

	cke := &ClientKeyExchange{Raw: encryptedClientKeyExchange(t, priv, pms)}
	require.NoError(t, s.ProcessHandshake(cke))

	fks := s.keySchedule.(*fakeKeySchedule)
	require.NotEqual(t, pms.Bytes(), fks.lastPremaster,
		"a version-mismatched premaster must never reach the key schedule")
	require.Len(t, fks.lastPremaster, 48)
}

// TestClientKeyExchangeTamperedCiphertext checks that a bit-flipped
// ciphertext must also fall back to a random premaster.
func TestClientKeyExchangeTamperedCiphertext(t *testing.T) {
	priv := mustRSAKey(t)

	s := newTestState(t, RoleServer)
	require.NoError(t, s.SetVersion(VersionTLS12))
	s.BeginHandshake()
	hs := s.Handshake()
	hs.rsaPrivateKey = priv
	hs.clientVersion = VersionTLS12
	hs.pendingCipher = CipherTLSRsaWithAes128CbcSha
	hs.cipherChosen = true

	var random [46]byte
	copy(random[:], []byte("valid-plaintext-that-will-be-tampered-with!!!"))
	pms := PreMasterSecret{ClientVersion: VersionTLS12, Random: random}

	raw := encryptedClientKeyExchange(t, priv, pms)
	raw[len(raw)-1] ^= 0xff // flip bits inside the RSA ciphertext

	cke := &ClientKeyExchange{Raw: raw}
	require.NoError(t, s.ProcessHandshake(cke))

	fks := s.keySchedule.(*fakeKeySchedule)
	require.NotEqual(t, pms.Bytes(), fks.lastPremaster)
	require.Len(t, fks.lastPremaster, 48)
}

// TestClientKeyExchangeNonRSASkipped covers the (EC)DHE pass-through
// path: no private key is needed and no invariant panic occurs.
func TestClientKeyExchangeNonRSASkipped(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()
	hs := s.Handshake()
	hs.pendingCipher = CipherTLSAes128GcmSha256
	hs.cipherChosen = true

	require.NoError(t, s.ProcessHandshake(&ClientKeyExchange{Raw: []byte{1, 2, 3}}))
}

// TestVerifyRSAServerRoleAcceptsClientSignature covers the
// server-side CertificateVerify path: a signature made with the
// client's private key verifies against the RSA public key captured
// from the client's certificate.
func TestVerifyRSAServerRoleAcceptsClientSignature(t *testing.T) {
	priv := mustRSAKey(t)

	s := newTestState(t, RoleServer)
	s.BeginHandshake()
	s.Handshake().rsaClientPublicKey = &priv.PublicKey

	content := []byte("transcript digest stand-in")
	h := sha256.Sum256(content)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, h[:])
	require.NoError(t, err)

	require.True(t, s.VerifyRSA(SigSchemeRsaPkcs1Sha256, content, sig))
}

// TestVerifyRSARejectsTamperedSignature covers the failure path: a
// signature that does not match the content must not verify.
func TestVerifyRSARejectsTamperedSignature(t *testing.T) {
	priv := mustRSAKey(t)

	s := newTestState(t, RoleServer)
	s.BeginHandshake()
	s.Handshake().rsaClientPublicKey = &priv.PublicKey

	content := []byte("transcript digest stand-in")
	h := sha256.Sum256(content)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, h[:])
	require.NoError(t, err)

	require.False(t, s.VerifyRSA(SigSchemeRsaPkcs1Sha256, []byte("different content"), sig))
}

// TestVerifyRSAClientRoleUsesServerPublicKey covers the client-side
// path: the server's RSA public key, captured in hs.publicKey from
// its Certificate message, is what a server CertificateVerify
// signature is checked against.
func TestVerifyRSAClientRoleUsesServerPublicKey(t *testing.T) {
	priv := mustRSAKey(t)

	s := newTestState(t, RoleClient)
	s.BeginHandshake()
	s.Handshake().publicKey = &priv.PublicKey

	content := []byte("client's view of the transcript")
	h := sha256.Sum256(content)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, h[:])
	require.NoError(t, err)

	require.True(t, s.VerifyRSA(SigSchemeRsaPkcs1Sha256, content, sig))
}

// TestVerifyRSAUnknownSchemeRejected covers the unsupported-scheme
// short circuit.
func TestVerifyRSAUnknownSchemeRejected(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()

	require.False(t, s.VerifyRSA(SignatureScheme(0xffff), []byte("x"), []byte("y")))
}

// TestClientKeyExchangePanicsWithoutKey covers an internal-invariant
// requirement: RSA key exchange selected but no server key configured
// is a caller/wiring bug, not a protocol error.
func TestClientKeyExchangePanicsWithoutKey(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()
	hs := s.Handshake()
	hs.pendingCipher = CipherTLSRsaWithAes128CbcSha
	hs.cipherChosen = true

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic with no RSA private key configured")
		}
	}()
	_ = s.ProcessHandshake(&ClientKeyExchange{Raw: bytes.Repeat([]byte{0}, 50)})
}
