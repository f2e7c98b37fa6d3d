//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"crypto"
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
)

// inCertVerifySet reports whether a handshake message type is folded
// into the raw byte transcript a CertificateVerify signature covers.
// Unknown types are excluded: an unrecognized message can't safely be
// assumed to belong on the wire in that position.
func inCertVerifySet(ht HandshakeType) bool {
	switch ht {
	case HTClientHello, HTServerHello, HTCertificate, HTServerHelloDone,
		HTClientKeyExchange, HTServerKeyExchange, HTCertificateRequest:
		return true
	default:
		return false
	}
}

// inFinishedSet reports whether a handshake message type is folded
// into the running digest a Finished verify-data covers: every
// message except HelloRequest and Finished itself. Unknown types
// default to included, since an unrecognized message the peer sent
// still went out on the wire and must be accounted for.
func inFinishedSet(ht HandshakeType) bool {
	switch ht {
	case HTHelloRequest, HTFinished:
		return false
	default:
		return true
	}
}

// ProcessHandshake is the generic handshake processor: role-gated
// side effects, then unconditional transcript accounting. A batch of
// messages decoded from one record must be fed to this one at a time,
// in wire order; the caller aborts the batch on the first error.
func (s *State) ProcessHandshake(msg HandshakeMessage) error {
	s.log.WithField("handshake_type", msg.Type()).Debug("process handshake")

	if err := s.applyRoleSpecific(msg); err != nil {
		return err
	}

	raw, err := EncodeHandshake(msg)
	if err != nil {
		return err
	}

	ht := msg.Type()
	hs := s.Handshake()
	if inCertVerifySet(ht) {
		hs.AddHandshakeMessage(raw)
	}
	if inFinishedSet(ht) {
		hs.UpdateHandshakeDigest(raw)
	}
	return nil
}

// applyRoleSpecific implements per-message-type side effects.
// ServerHello is deliberately absent: it is handled only through the
// dedicated ProcessServerHello entry point.
func (s *State) applyRoleSpecific(msg HandshakeMessage) error {
	switch m := msg.(type) {
	case *ClientHello:
		return s.applyClientHello(m)
	case *Certificate:
		return s.applyCertificate(m)
	case *ClientKeyExchange:
		return s.applyClientKeyExchange(m)
	case *NextProtocol:
		if s.role == RoleServer {
			s.Handshake().npnSelected = m.Selected
		}
		return nil
	case *Finished:
		return s.applyFinished(m)
	default:
		return nil
	}
}

// applyClientHello iterates extensions (only the renegotiation
// extension is acted on at this layer; everything else belongs to
// higher layers) and stamps client random/version into the handshake
// substate. Server side only.
func (s *State) applyClientHello(ch *ClientHello) error {
	if s.role != RoleServer {
		return nil
	}
	for _, ext := range ch.Extensions {
		if ext.Type == ETRenegotiationInfo {
			if err := s.verifyClientRenegotiation(ext.Data); err != nil {
				return err
			}
		}
	}
	hs := s.Handshake()
	hs.clientRandom = ch.Random
	hs.clientVersion = ch.LegacyVersion
	return nil
}

// applyCertificate handles an incoming Certificate message: role
// determines which of publicKey/clientPublicKey is populated, and
// whether an empty chain is tolerated or fatal.
func (s *State) applyCertificate(cert *Certificate) error {
	hs := s.Handshake()
	if s.role == RoleClient {
		if len(cert.CertificateList) == 0 {
			return protocolErrorf(AlertHandshakeFailure, "server certificate missing")
		}
		pub, err := certPublicKey(cert.CertificateList[0].Data)
		if err != nil {
			return err
		}
		hs.publicKey = pub
		return nil
	}

	// Server role: an empty chain means the peer declined to send a
	// client certificate, which is permitted.
	if len(cert.CertificateList) == 0 {
		return nil
	}
	pub, err := certPublicKey(cert.CertificateList[0].Data)
	if err != nil {
		return err
	}
	hs.clientPublicKey = pub
	if rp, isRSA := pub.(*rsa.PublicKey); isRSA {
		hs.rsaClientPublicKey = rp
	}
	return nil
}

// certPublicKey extracts the subject public key from a DER-encoded
// X.509 certificate. Full chain validation is a caller concern; this
// only needs the leaf's key.
func certPublicKey(der []byte) (crypto.PublicKey, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, decodeErrorf("certificate: %v", err)
	}
	return cert.PublicKey, nil
}

// applyClientKeyExchange decrypts an RSA-encrypted premaster secret
// under the anti-rollback countermeasure. (EC)DHE key exchange
// derivation happens elsewhere: the payload passes through opaque and
// this is a no-op.
func (s *State) applyClientKeyExchange(cke *ClientKeyExchange) error {
	if s.role != RoleServer {
		return nil
	}
	hs := s.Handshake()
	if hs.pendingCipher.KeyExchange() != KXRSA {
		return nil
	}
	if hs.rsaPrivateKey == nil {
		panicInvariant("RSA client_key_exchange received but no server private key configured")
	}

	version, versionSet := s.VersionOk()
	if !versionSet {
		version = hs.clientVersion
	}

	ciphertext := cke.Raw
	if version >= VersionTLS10 {
		if len(ciphertext) < 2 {
			return decodeErrorf("client_key_exchange: truncated")
		}
		l := int(bo.Uint16(ciphertext[0:2]))
		if 2+l > len(ciphertext) {
			return decodeErrorf("client_key_exchange: length prefix out of range")
		}
		ciphertext = ciphertext[2 : 2+l]
	}

	premaster := s.rsaDecryptPremaster(ciphertext, hs.rsaPrivateKey, hs.clientVersion)
	if err := s.keySchedule.SetMasterSecretFromPre(version, s.role, premaster); err != nil {
		return err
	}
	return nil
}

// applyFinished verifies the peer's Finished verify-data against the
// running transcript, fatal on mismatch.
func (s *State) applyFinished(fin *Finished) error {
	hs := s.Handshake()

	sender := RoleServer
	if s.role == RoleServer {
		sender = RoleClient
	}

	digest := hs.GetHandshakeDigest(sender)
	expected, err := s.keySchedule.ExpectedVerifyData(sender, digest)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(expected, fin.VerifyData) != 1 {
		return protocolErrorf(AlertBadRecordMAC, "finished verify data mismatch")
	}

	if sender == RoleClient {
		s.SetClientVerifyData(fin.VerifyData)
	} else {
		s.SetServerVerifyData(fin.VerifyData)
	}
	return nil
}

// verifyClientRenegotiation checks the renegotiation extension
// (0xff01) payload of an incoming ClientHello against the previously
// observed client verify-data. Comparison is constant-time.
func (s *State) verifyClientRenegotiation(payload []byte) error {
	clientData, _ := s.ClientVerifyData()
	expected := SecureRenegotiation{ClientVerifyData: clientData}.Bytes()
	if subtle.ConstantTimeCompare(expected, payload) != 1 {
		return protocolErrorf(AlertHandshakeFailure,
			"client verified data not matching: %x != %x", payload, expected)
	}
	s.SetSecureRenegotiation(true)
	return nil
}

// verifyServerRenegotiation checks the renegotiation extension
// (0xff01) payload of an incoming ServerHello against both sides'
// previously observed verify-data. Comparison is constant-time.
func (s *State) verifyServerRenegotiation(payload []byte) error {
	clientData, _ := s.ClientVerifyData()
	serverData, _ := s.ServerVerifyData()
	expected := SecureRenegotiation{ClientVerifyData: clientData, ServerVerifyData: serverData}.Bytes()
	if subtle.ConstantTimeCompare(expected, payload) != 1 {
		return protocolErrorf(AlertHandshakeFailure,
			"server verified data not matching: %x != %x", payload, expected)
	}
	s.SetSecureRenegotiation(true)
	return nil
}

// ProcessServerHello is the client-side ServerHello entry point. It
// must run before the generic processor's transcript-update path
// reads pendingCipher; the caller invokes ProcessHandshake on the
// same message immediately afterward, and the two effects are
// disjoint.
func (s *State) ProcessServerHello(msg HandshakeMessage) error {
	sh, ok := msg.(*ServerHello)
	if !ok {
		panicInvariant("ProcessServerHello called with non-ServerHello message %T", msg)
	}
	if s.role != RoleClient {
		return nil
	}

	for _, ext := range sh.Extensions {
		if ext.Type == ETRenegotiationInfo {
			if err := s.verifyServerRenegotiation(ext.Data); err != nil {
				return err
			}
		}
	}

	hs := s.Handshake()
	hs.serverRandom = sh.Random
	hs.pendingCipher = sh.CipherSuite
	hs.cipherChosen = true
	hs.resetDigest(sh.CipherSuite)

	version := sh.LegacyVersion
	for _, ext := range sh.Extensions {
		if ext.Type == ETSupportedVersions && len(ext.Data) == 2 {
			version = ProtocolVersion(bo.Uint16(ext.Data))
		}
	}
	return s.SetVersion(version)
}
