//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleClientHello() *ClientHello {
	return &ClientHello{
		LegacyVersion:            VersionTLS12,
		Random:                   [32]byte{1, 2, 3},
		LegacySessionID:          []byte{0xaa, 0xbb},
		CipherSuites:             []CipherSuite{CipherTLSRsaWithAes128CbcSha},
		LegacyCompressionMethods: []byte{0},
	}
}

// TestTranscriptCertVerifySet covers a message present in both the
// CertificateVerify transcript and the Finished digest.
func TestTranscriptCertVerifySet(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()

	ch := sampleClientHello()
	require.NoError(t, s.ProcessHandshake(ch))

	raw, err := EncodeHandshake(ch)
	require.NoError(t, err)

	hs := s.Handshake()
	require.True(t, bytes.Equal(hs.handshakeMessages, raw), "handshakeMessages must equal encode(h) exactly")

	want := sha256.Sum256(raw)
	got := hs.handshakeDigest.Sum(nil)
	require.True(t, bytes.Equal(want[:], got), "digest must equal H(previousDigest || encode(h))")
}

// TestTranscriptFinishedOnlySet covers CertificateVerify: present in
// Finished-material, absent from CertVerify-material.
func TestTranscriptFinishedOnlySet(t *testing.T) {
	s := newTestState(t, RoleClient)
	s.BeginHandshake()

	cv := &CertificateVerify{Algorithm: SigSchemeRsaPkcs1Sha256, Signature: []byte{1, 2, 3, 4}}
	require.NoError(t, s.ProcessHandshake(cv))

	hs := s.Handshake()
	require.Empty(t, hs.handshakeMessages, "CertificateVerify must not enter the CertVerify-material set")
	require.NotEmpty(t, hs.finishedMaterialRaw, "CertificateVerify must enter the Finished-material set")
}

// TestTranscriptHelloRequestExcluded covers HelloRequest's exclusion
// from both sets.
func TestTranscriptHelloRequestExcluded(t *testing.T) {
	s := newTestState(t, RoleClient)
	s.BeginHandshake()

	require.NoError(t, s.ProcessHandshake(HelloRequest{}))

	hs := s.Handshake()
	require.Empty(t, hs.handshakeMessages)
	require.Empty(t, hs.finishedMaterialRaw)
}

// TestTranscriptUnknownTypeAsymmetry checks an unrecognized handshake
// type: it defaults to excluded from the CertVerify transcript but
// included in the Finished digest.
func TestTranscriptUnknownTypeAsymmetry(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()

	unknown := &UnknownHandshake{HandshakeType: HandshakeType(99), Raw: []byte{0xde, 0xad}}
	require.NoError(t, s.ProcessHandshake(unknown))

	hs := s.Handshake()
	require.Empty(t, hs.handshakeMessages, "unknown types must stay out of the CertVerify transcript")
	require.NotEmpty(t, hs.finishedMaterialRaw, "unknown types default into the Finished digest")
}

// TestFinishedMismatch checks that a Finished message whose verify
// data doesn't match the key schedule's expectation is rejected as a
// fatal bad_record_mac alert.
func TestFinishedMismatch(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()

	fks := s.keySchedule.(*fakeKeySchedule)
	fks.expected = []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	tampered := append([]byte(nil), fks.expected...)
	tampered[0] ^= 0x01

	err := s.ProcessHandshake(&Finished{VerifyData: tampered})
	require.Error(t, err)

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.True(t, protoErr.Fatal)
	require.Equal(t, AlertBadRecordMAC, protoErr.Alert)
}

// TestFinishedMatchStoresVerifyData is the success-path complement of
// TestFinishedMismatch.
func TestFinishedMatchStoresVerifyData(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()

	fks := s.keySchedule.(*fakeKeySchedule)
	fks.expected = []byte{9, 9, 9}

	require.NoError(t, s.ProcessHandshake(&Finished{VerifyData: fks.expected}))

	data, ok := s.ClientVerifyData()
	require.True(t, ok)
	require.Equal(t, fks.expected, data)
}

// TestRenegotiationExtensionMismatch checks that a renegotiation_info
// extension whose payload doesn't match the prior Finished verify data
// is rejected as a fatal handshake_failure.
func TestRenegotiationExtensionMismatch(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()
	s.SetClientVerifyData([]byte{0x01, 0x02, 0x03})

	badPayload := SecureRenegotiation{ClientVerifyData: []byte{0x01, 0x02, 0x04}}.Bytes()
	ch := sampleClientHello()
	ch.Extensions = []Extension{NewExtension(ETRenegotiationInfo, badPayload)}

	err := s.ProcessHandshake(ch)
	require.Error(t, err)

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.True(t, protoErr.Fatal)
	require.Equal(t, AlertHandshakeFailure, protoErr.Alert)
}

// TestRenegotiationExtensionMatch is the success-path complement.
func TestRenegotiationExtensionMatch(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()
	s.SetClientVerifyData([]byte{0x01, 0x02, 0x03})

	goodPayload := SecureRenegotiation{ClientVerifyData: []byte{0x01, 0x02, 0x03}}.Bytes()
	ch := sampleClientHello()
	ch.Extensions = []Extension{NewExtension(ETRenegotiationInfo, goodPayload)}

	require.NoError(t, s.ProcessHandshake(ch))
	require.True(t, s.SecureRenegotiation())
}

// TestMissingServerCertificate checks that a client receiving an empty
// Certificate chain from a server is rejected as a fatal
// handshake_failure.
func TestMissingServerCertificate(t *testing.T) {
	s := newTestState(t, RoleClient)
	s.BeginHandshake()

	err := s.ProcessHandshake(&Certificate{})
	require.Error(t, err)

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	require.True(t, protoErr.Fatal)
	require.Equal(t, AlertHandshakeFailure, protoErr.Alert)
}

// TestEmptyClientCertificateChainPermitted checks the server-side
// mirror: an empty chain from the client is allowed.
func TestEmptyClientCertificateChainPermitted(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()

	require.NoError(t, s.ProcessHandshake(&Certificate{}))
}

// TestOrderingAbortsRemainingMessages checks that a failure on message
// i aborts before i+1 is applied, and that the transcript reflects
// only messages actually processed.
func TestOrderingAbortsRemainingMessages(t *testing.T) {
	s := newTestState(t, RoleClient)
	s.BeginHandshake()

	badCert := &Certificate{}
	goodDone := ServerHelloDone{}

	require.Error(t, s.ProcessHandshake(badCert))

	hs := s.Handshake()
	require.Empty(t, hs.handshakeMessages, "aborted message must not be folded into the transcript")

	require.NoError(t, s.ProcessHandshake(goodDone))
	require.NotEmpty(t, hs.handshakeMessages, "subsequent messages still process normally")
}
