//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"crypto"
	"crypto/rsa"
	_ "crypto/sha1" // register crypto.SHA1 for SigSchemeRsaPkcs1Sha1 verification
	"crypto/subtle"
)

// rsaDecryptPremaster implements the CVE-2003-0147-style anti-rollback
// countermeasure. It never reveals, via timing or control flow,
// whether the ciphertext decrypted successfully or whether the
// decoded version matched: the same operations run on both branches,
// differing only in which 48-byte buffer is fed onward.
//
// rsa.DecryptPKCS1v15SessionKey is the primitive that makes this
// possible: on any padding or length failure it silently leaves its
// sessionKey argument untouched rather than returning early, which is
// exactly the constant-time-on-failure behavior this countermeasure
// needs. Its returned error is deliberately ignored, per its own
// documentation.
func (s *State) rsaDecryptPremaster(ciphertext []byte, priv *rsa.PrivateKey, clientHelloVersion ProtocolVersion) []byte {
	random := s.randomGen.Draw(48)

	premaster := make([]byte, 48)
	copy(premaster, random)

	//nolint:errcheck // constant-time-on-failure by design; see doc comment.
	_ = rsa.DecryptPKCS1v15SessionKey(s.randomGen.Reader(), priv, ciphertext, premaster)

	// The buffer is always exactly 48 bytes regardless of whether the
	// decrypt above ran or was a no-op, so this decode never takes the
	// error branch and never leaks timing.
	pms, _ := DecodePreMasterSecret(premaster)

	versionBytes := clientHelloVersion.Bytes()
	mismatch := 1 - subtle.ConstantTimeCompare(pms.ClientVersion.Bytes(), versionBytes)
	subtle.ConstantTimeCopy(mismatch, premaster, random)

	return premaster
}

// verifyRSA is a straightforward public-key verify used for
// CertificateVerify. It returns a boolean rather than an error: a
// failed verify is a caller decision, not a protocol fault by itself.
func verifyRSA(pub *rsa.PublicKey, hashID crypto.Hash, hashed, signature []byte) bool {
	if pub == nil {
		return false
	}
	err := rsa.VerifyPKCS1v15(pub, hashID, hashed, signature)
	return err == nil
}

// signatureSchemeHash maps a SignatureScheme to the crypto.Hash it
// signs over, for the RSA PKCS#1 v1.5 schemes this package verifies —
// RSA key exchange is the only kind implemented end to end here.
func signatureSchemeHash(scheme SignatureScheme) (crypto.Hash, bool) {
	switch scheme {
	case SigSchemeRsaPkcs1Sha256:
		return crypto.SHA256, true
	case SigSchemeRsaPkcs1Sha384:
		return crypto.SHA384, true
	case SigSchemeRsaPkcs1Sha512:
		return crypto.SHA512, true
	case SigSchemeRsaPkcs1Sha1:
		return crypto.SHA1, true
	default:
		return 0, false
	}
}

// VerifyRSA verifies a CertificateVerify signature against the peer's
// RSA public key using the scheme's associated hash.
func (s *State) VerifyRSA(scheme SignatureScheme, content, signature []byte) bool {
	hashID, ok := signatureSchemeHash(scheme)
	if !ok {
		return false
	}
	hs := s.Handshake()
	pub, ok := hs.rsaClientPublicKey, hs.rsaClientPublicKey != nil
	if s.role == RoleClient {
		var serverPub *rsa.PublicKey
		if k, isRSA := hs.publicKey.(*rsa.PublicKey); isRSA {
			serverPub = k
		}
		pub, ok = serverPub, serverPub != nil
	}
	if !ok {
		return false
	}
	h := hashID.New()
	h.Write(content)
	return verifyRSA(pub, hashID, h.Sum(nil), signature)
}
