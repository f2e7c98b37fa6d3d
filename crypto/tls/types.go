//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
)

// bo is the wire byte order for every multi-byte field in this
// package (TLS is big-endian throughout).
var bo = binary.BigEndian

// ContentType specifies record layer record types.
type ContentType uint8

// Record layer record types.
const (
	CTInvalid          ContentType = 0
	CTChangeCipherSpec ContentType = 20
	CTAlert            ContentType = 21
	CTHandshake        ContentType = 22
	CTApplicationData  ContentType = 23
)

func (ct ContentType) String() string {
	name, ok := contentTypes[ct]
	if ok {
		return name
	}
	return fmt.Sprintf("{ContentType %d}", ct)
}

var contentTypes = map[ContentType]string{
	CTInvalid:          "invalid",
	CTChangeCipherSpec: "change_cipher_spec",
	CTAlert:            "alert",
	CTHandshake:        "handshake",
	CTApplicationData:  "application_data",
}

// Role identifies which end of the connection this state represents.
// It is fixed at connection creation.
type Role uint8

// Connection roles.
const (
	RoleClient Role = iota
	RoleServer
)

func (r Role) String() string {
	if r == RoleServer {
		return "server"
	}
	return "client"
}

// ProtocolVersion defines TLS protocol version.
type ProtocolVersion uint16

// Version numbers.
const (
	VersionSSL30 ProtocolVersion = 0x0300
	VersionTLS10 ProtocolVersion = 0x0301
	VersionTLS11 ProtocolVersion = 0x0302
	VersionTLS12 ProtocolVersion = 0x0303
	VersionTLS13 ProtocolVersion = 0x0304
)

func (v ProtocolVersion) String() string {
	name, ok := protocolVersions[v]
	if ok {
		return name
	}
	return fmt.Sprintf("%04x", uint(v))
}

// Bytes returns the protocol encoding of the version.
func (v ProtocolVersion) Bytes() []byte {
	buf := make([]byte, 2)
	bo.PutUint16(buf, uint16(v))
	return buf
}

var protocolVersions = map[ProtocolVersion]string{
	VersionSSL30: "SSL 3.0",
	VersionTLS10: "TLS 1.0",
	VersionTLS11: "TLS 1.1",
	VersionTLS12: "TLS 1.2",
	VersionTLS13: "TLS 1.3",
}

// HandshakeType defines handshake message types.
type HandshakeType uint8

// Handshake message types.
const (
	HTHelloRequest        HandshakeType = 0
	HTClientHello         HandshakeType = 1
	HTServerHello         HandshakeType = 2
	HTNewSessionTicket    HandshakeType = 4
	HTEndOfEarlyData      HandshakeType = 5
	HTEncryptedExtensions HandshakeType = 8
	HTCertificate         HandshakeType = 11
	HTServerKeyExchange   HandshakeType = 12
	HTCertificateRequest  HandshakeType = 13
	HTServerHelloDone     HandshakeType = 14
	HTCertificateVerify   HandshakeType = 15
	HTClientKeyExchange   HandshakeType = 16
	HTFinished            HandshakeType = 20
	HTKeyUpdate           HandshakeType = 24
	HTNextProtocol        HandshakeType = 67

	// HTMessageHash is the synthetic message type used to represent a
	// hashed ClientHello1 after a HelloRetryRequest (RFC 8446 §4.4.1).
	HTMessageHash HandshakeType = 254
)

func (ht HandshakeType) String() string {
	name, ok := handshakeTypes[ht]
	if ok {
		return name
	}
	return fmt.Sprintf("{HandshakeType %d}", ht)
}

var handshakeTypes = map[HandshakeType]string{
	HTHelloRequest:        "hello_request",
	HTClientHello:         "client_hello",
	HTServerHello:         "server_hello",
	HTNewSessionTicket:    "new_session_ticket",
	HTEndOfEarlyData:      "end_of_early_data",
	HTNextProtocol:        "next_protocol",
	HTEncryptedExtensions: "encrypted_extensions",
	HTCertificate:         "certificate",
	HTServerKeyExchange:   "server_key_exchange",
	HTCertificateRequest:  "certificate_request",
	HTServerHelloDone:     "server_hello_done",
	HTCertificateVerify:   "certificate_verify",
	HTClientKeyExchange:   "client_key_exchange",
	HTFinished:            "finished",
	HTKeyUpdate:           "key_update",
	HTMessageHash:         "message_hash",
}

// HandshakeMessage is implemented by every decoded handshake message.
// It forms a closed discriminated union: pattern matching happens
// through a type switch on the concrete type, and Type mirrors the
// wire discriminant so the handshake processor can dispatch and
// classify without a second type switch.
type HandshakeMessage interface {
	Type() HandshakeType
}

// ClientHello implements the client_hello message.
type ClientHello struct {
	LegacyVersion            ProtocolVersion
	Random                   [32]byte
	LegacySessionID          []byte        `tls:"u8"`
	CipherSuites             []CipherSuite `tls:"u16"`
	LegacyCompressionMethods []byte        `tls:"u8"`
	Extensions               []Extension   `tls:"u16"`
}

// Type implements HandshakeMessage.
func (*ClientHello) Type() HandshakeType { return HTClientHello }

// ServerHello implements the server_hello message.
type ServerHello struct {
	LegacyVersion           ProtocolVersion
	Random                  [32]byte
	LegacySessionID         []byte `tls:"u8"`
	CipherSuite             CipherSuite
	LegacyCompressionMethod byte
	Extensions              []Extension `tls:"u16"`
}

// Type implements HandshakeMessage.
func (*ServerHello) Type() HandshakeType { return HTServerHello }

// HelloRetryRequestRandom defines the well-known value of the
// HelloRetryRequest's Random field.
var HelloRetryRequestRandom = [32]byte{
	0xCF, 0x21, 0xAD, 0x74, 0xE5, 0x9A, 0x61, 0x11,
	0xBE, 0x1D, 0x8C, 0x02, 0x1E, 0x65, 0xB8, 0x91,
	0xC2, 0xA2, 0x11, 0x16, 0x7A, 0xBB, 0x8C, 0x5E,
	0x07, 0x9E, 0x09, 0xE2, 0xC8, 0xA8, 0x33, 0x9C,
}

// IsHelloRetryRequest reports whether a ServerHello is in fact a
// HelloRetryRequest in TLS 1.3 disguise.
func (sh *ServerHello) IsHelloRetryRequest() bool {
	return bytes.Equal(sh.Random[:], HelloRetryRequestRandom[:])
}

// HelloRequest implements the (empty) hello_request message. It is
// explicitly excluded from both the CertificateVerify transcript and
// the Finished digest.
type HelloRequest struct{}

// Type implements HandshakeMessage.
func (HelloRequest) Type() HandshakeType { return HTHelloRequest }

// EncryptedExtensions implements the encrypted_extensions handshake
// message.
type EncryptedExtensions struct {
	Extensions []Extension `tls:"u16"`
}

// Type implements HandshakeMessage.
func (*EncryptedExtensions) Type() HandshakeType { return HTEncryptedExtensions }

// Certificate implements the certificate handshake message. The
// CertificateRequestContext field is only ever non-empty in TLS 1.3.
type Certificate struct {
	CertificateRequestContext []byte             `tls:"u8"`
	CertificateList           []CertificateEntry `tls:"u24"`
}

// Type implements HandshakeMessage.
func (*Certificate) Type() HandshakeType { return HTCertificate }

// CertificateEntry defines a certificate entry in the Certificate
// message.
type CertificateEntry struct {
	Data       []byte      `tls:"u24"`
	Extensions []Extension `tls:"u16"`
}

// CertificateRequest implements the certificate_request handshake
// message (pre-1.3 shape: a list of acceptable certificate types and
// signature algorithms; the core only needs to know the message
// occurred, so the payload is kept opaque).
type CertificateRequest struct {
	Raw []byte
}

// Type implements HandshakeMessage.
func (*CertificateRequest) Type() HandshakeType { return HTCertificateRequest }

// ServerHelloDone implements the (empty) server_hello_done message.
type ServerHelloDone struct{}

// Type implements HandshakeMessage.
func (ServerHelloDone) Type() HandshakeType { return HTServerHelloDone }

// ServerKeyExchange carries the server's key-exchange parameters. The
// core treats the payload as opaque; interpreting it is the
// key-exchange table's job.
type ServerKeyExchange struct {
	Raw []byte
}

// Type implements HandshakeMessage.
func (*ServerKeyExchange) Type() HandshakeType { return HTServerKeyExchange }

// ClientKeyExchange carries the client's key-exchange value. For RSA
// key exchange this is the length-prefixed (TLS >= 1.0) encrypted
// premaster secret; for (EC)DHE it is the client's public value. The
// core only implements the RSA decrypt path; other kinds are passed
// through as opaque bytes.
type ClientKeyExchange struct {
	Raw []byte
}

// Type implements HandshakeMessage.
func (*ClientKeyExchange) Type() HandshakeType { return HTClientKeyExchange }

// CertificateVerify implements the certificate_verify handshake
// message.
type CertificateVerify struct {
	Algorithm SignatureScheme
	Signature []byte `tls:"u16"`
}

// Type implements HandshakeMessage.
func (*CertificateVerify) Type() HandshakeType { return HTCertificateVerify }

// Finished implements the finished handshake message. Pre-1.3
// verify_data is 12 bytes (PRF-derived); 1.3 verify_data is the size
// of the transcript hash. VerifyData is stored at its natural length
// rather than a fixed array so both shapes fit.
type Finished struct {
	VerifyData []byte
}

// Type implements HandshakeMessage.
func (*Finished) Type() HandshakeType { return HTFinished }

// NextProtocol implements the (draft) next_protocol_negotiation
// message a client sends to announce its NPN selection.
type NextProtocol struct {
	Selected []byte `tls:"u8"`
	Padding  []byte `tls:"u8"`
}

// Type implements HandshakeMessage.
func (*NextProtocol) Type() HandshakeType { return HTNextProtocol }

// NewSessionTicket implements the new_session_ticket message (both
// the TLS 1.2 RFC 5077 shape and the TLS 1.3 shape are represented
// opaquely here; the core only needs to stash it, not parse it).
type NewSessionTicket struct {
	Raw []byte
}

// Type implements HandshakeMessage.
func (*NewSessionTicket) Type() HandshakeType { return HTNewSessionTicket }

// UnknownHandshake represents a handshake message of a type this
// implementation does not structurally decode. It still participates
// in transcript accounting.
type UnknownHandshake struct {
	HandshakeType HandshakeType
	Raw           []byte
}

// Type implements HandshakeMessage.
func (u *UnknownHandshake) Type() HandshakeType { return u.HandshakeType }

// CipherSuite defines cipher suites.
type CipherSuite uint16

// Supported cipher suites: the TLS 1.3 AEAD suites, plus the classic
// RSA key-exchange suites needed to exercise the pre-1.3
// ClientKeyExchange/anti-rollback path.
const (
	CipherTLSAes128GcmSha256        CipherSuite = 0x1301
	CipherTLSAes256GcmSha384        CipherSuite = 0x1302
	CipherTLSChacha20Poly1305Sha256 CipherSuite = 0x1303

	CipherTLSRsaWithAes128CbcSha    CipherSuite = 0x002F
	CipherTLSRsaWithAes256CbcSha    CipherSuite = 0x0035
	CipherTLSRsaWithAes128GcmSha256 CipherSuite = 0x009C
)

func (cs CipherSuite) String() string {
	name, ok := cipherSuiteNames[cs]
	if ok {
		return name
	}
	return fmt.Sprintf("{CipherSuite 0x%02x,0x%02x}", int(cs>>8), int(cs&0xff))
}

var cipherSuiteNames = map[CipherSuite]string{
	CipherTLSAes128GcmSha256:        "TLS_AES_128_GCM_SHA256",
	CipherTLSAes256GcmSha384:        "TLS_AES_256_GCM_SHA384",
	CipherTLSChacha20Poly1305Sha256: "TLS_CHACHA20_POLY1305_SHA256",
	CipherTLSRsaWithAes128CbcSha:    "TLS_RSA_WITH_AES_128_CBC_SHA",
	CipherTLSRsaWithAes256CbcSha:    "TLS_RSA_WITH_AES_256_CBC_SHA",
	CipherTLSRsaWithAes128GcmSha256: "TLS_RSA_WITH_AES_128_GCM_SHA256",
}

// Hash returns the cipher suite's transcript/PRF hash function.
func (cs CipherSuite) Hash() hash.Hash {
	switch cs {
	case CipherTLSAes256GcmSha384:
		return sha512.New384()
	default:
		return sha256.New()
	}
}

// KeyExchangeKind classifies a cipher suite's key-exchange method. The
// record classifier snapshots it into CurrentParams, and
// ClientKeyExchange processing uses it to decide whether to run the
// RSA decrypt path; DecodeHandshake does not consult it.
type KeyExchangeKind uint8

// Key-exchange kinds.
const (
	KXNone KeyExchangeKind = iota
	KXRSA
	KXECDHE
)

// KeyExchange returns the cipher suite's key-exchange kind.
func (cs CipherSuite) KeyExchange() KeyExchangeKind {
	switch cs {
	case CipherTLSRsaWithAes128CbcSha, CipherTLSRsaWithAes256CbcSha,
		CipherTLSRsaWithAes128GcmSha256:
		return KXRSA
	case CipherTLSAes128GcmSha256, CipherTLSAes256GcmSha384,
		CipherTLSChacha20Poly1305Sha256:
		return KXECDHE
	default:
		return KXNone
	}
}

// NamedGroup defines named key exchange groups.
type NamedGroup uint16

// Named groups.
const (
	GroupSecp256r1      NamedGroup = 0x0017
	GroupSecp384r1      NamedGroup = 0x0018
	GroupSecp521r1      NamedGroup = 0x0019
	GroupX25519         NamedGroup = 0x001D
	GroupX448           NamedGroup = 0x001E
	GroupFfdhe2048      NamedGroup = 0x0100
	GroupFfdhe3072      NamedGroup = 0x0101
	GroupFfdhe4096      NamedGroup = 0x0102
	GroupFfdhe6144      NamedGroup = 0x0103
	GroupFfdhe8192      NamedGroup = 0x0104
)

func (group NamedGroup) String() string {
	name, ok := namedGroupNames[group]
	if ok {
		return name
	}
	return fmt.Sprintf("%04x", int(group))
}

// Bytes returns the protocol encoding of the group.
func (group NamedGroup) Bytes() []byte {
	buf := make([]byte, 2)
	bo.PutUint16(buf, uint16(group))
	return buf
}

var namedGroupNames = map[NamedGroup]string{
	GroupSecp256r1: "secp256r1",
	GroupSecp384r1: "secp384r1",
	GroupSecp521r1: "secp521r1",
	GroupX25519:    "x25519",
}

// SignatureScheme defines the signature algorithms for the
// signature_algorithms and signature_algorithms_cert extensions.
type SignatureScheme uint16

// Signature algorithms.
const (
	SigSchemeRsaPkcs1Sha256       SignatureScheme = 0x0401
	SigSchemeRsaPkcs1Sha384       SignatureScheme = 0x0501
	SigSchemeRsaPkcs1Sha512       SignatureScheme = 0x0601
	SigSchemeEcdsaSecp256r1Sha256 SignatureScheme = 0x0403
	SigSchemeEcdsaSecp384r1Sha384 SignatureScheme = 0x0503
	SigSchemeEcdsaSecp521r1Sha512 SignatureScheme = 0x0603
	SigSchemeRsaPssRsaeSha256     SignatureScheme = 0x0804
	SigSchemeRsaPssRsaeSha384     SignatureScheme = 0x0805
	SigSchemeRsaPssRsaeSha512     SignatureScheme = 0x0806
	SigSchemeRsaPkcs1Sha1         SignatureScheme = 0x0201
	SigSchemeEcdsaSha1            SignatureScheme = 0x0203
)

func (scheme SignatureScheme) String() string {
	name, ok := signatureSchemeNames[scheme]
	if ok {
		return name
	}
	return fmt.Sprintf("%04x", int(scheme))
}

var signatureSchemeNames = map[SignatureScheme]string{
	SigSchemeRsaPkcs1Sha256:       "rsa_pkcs1_sha256",
	SigSchemeRsaPssRsaeSha256:     "rsa_pss_rsae_sha256",
	SigSchemeEcdsaSecp256r1Sha256: "ecdsa_secp256r1_sha256",
}

// KeyShareEntry defines a key_share extension entry.
type KeyShareEntry struct {
	Group       NamedGroup
	KeyExchange []byte `tls:"u16"`
}

func (key KeyShareEntry) String() string {
	return fmt.Sprintf("%v=%x", key.Group, key.KeyExchange)
}

// Clone creates an independent copy of the KeyShareEntry.
func (key KeyShareEntry) Clone() *KeyShareEntry {
	result := &KeyShareEntry{
		Group:       key.Group,
		KeyExchange: make([]byte, len(key.KeyExchange)),
	}
	copy(result.KeyExchange, key.KeyExchange)

	return result
}

// Bytes returns the key share entry's protocol encoding.
func (key KeyShareEntry) Bytes() []byte {
	data, err := Marshal(key)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal KeyShareEntry: %v", err))
	}
	return data
}

// ServerName defines a server_name extension.
type ServerName struct {
	NameType uint8
	Hostname []byte `tls:"u16"`
}

// Extension defines protocol extensions.
type Extension struct {
	Type ExtensionType
	Data []byte `tls:"u16"`
}

// Uint16List returns the extension value as a list of uint16
// values. The argument lsize specifies the list value length in
// bytes.
func (ext Extension) Uint16List(lsize int) ([]uint16, error) {
	if len(ext.Data) < lsize {
		return nil, fmt.Errorf("%s: truncated data", ext.Type)
	}
	var ll int
	var data []byte

	switch lsize {
	case 1:
		ll = int(ext.Data[0])
		data = ext.Data[1:]
	case 2:
		ll = int(bo.Uint16(ext.Data))
		data = ext.Data[2:]
	default:
		panic("invalid lsize")
	}
	if ll != len(data) {
		return nil, fmt.Errorf("%s: invalid data", ext.Type)
	}
	var result []uint16
	for i := 0; i < ll; i += 2 {
		result = append(result, bo.Uint16(data[i:]))
	}
	return result, nil
}

// ExtensionType defines the protocol extensions.
type ExtensionType uint16

// ExtensionTypes.
const (
	ETServerName                          ExtensionType = 0     // RFC 6066
	ETMaxFragmentLength                   ExtensionType = 1     // RFC 6066
	ETStatusRequest                       ExtensionType = 5     // RFC 6066
	ETSupportedGroups                     ExtensionType = 10    // RFC 8422 7919
	ETECPointFormats                      ExtensionType = 11    // RFC 8422
	ETSignatureAlgorithms                 ExtensionType = 13    // RFC 8446
	ETApplicationLayerProtocolNegotiation ExtensionType = 16    // RFC 7301
	ETExtendedMasterSecret                ExtensionType = 23    // RFC 7627
	ETSessionTicket                       ExtensionType = 35    // RFC 8446
	ETPreSharedKey                        ExtensionType = 41    // RFC 8446
	ETEarlyData                           ExtensionType = 42    // RFC 8446
	ETSupportedVersions                   ExtensionType = 43    // RFC 8446
	ETCookie                              ExtensionType = 44    // RFC 8446
	ETPSKKeyExchangeModes                 ExtensionType = 45    // RFC 8446
	ETSignatureAlgorithmsCert             ExtensionType = 50    // RFC 8446
	ETKeyShare                            ExtensionType = 51    // RFC 8446
	ETRenegotiationInfo                   ExtensionType = 0xff01 // RFC 5746
)

func (et ExtensionType) String() string {
	name, ok := extensionTypeNames[et]
	if ok {
		return name
	}
	return fmt.Sprintf("{ExtensionType %d}", et)
}

var extensionTypeNames = map[ExtensionType]string{
	ETServerName:              "server_name",
	ETMaxFragmentLength:       "max_fragment_length",
	ETStatusRequest:           "status_request",
	ETSupportedGroups:         "supported_groups",
	ETECPointFormats:          "ec_point_formats",
	ETSignatureAlgorithms:     "signature_algorithms",
	ETApplicationLayerProtocolNegotiation: "application_layer_protocol_negotiation",
	ETExtendedMasterSecret:    "extended_master_secret",
	ETSessionTicket:           "session_ticket",
	ETPreSharedKey:            "pre_shared_key",
	ETEarlyData:               "early_data",
	ETSupportedVersions:       "supported_versions",
	ETCookie:                  "cookie",
	ETPSKKeyExchangeModes:     "psk_key_exchange_modes",
	ETSignatureAlgorithmsCert: "signature_algorithms_cert",
	ETKeyShare:                "key_share",
	ETRenegotiationInfo:       "renegotiation_info",
}

// SecureRenegotiation is the RFC 5746 renegotiated_connection
// extension payload. On a ClientHello it carries only the client's
// previous verify_data; on a ServerHello it carries both.
type SecureRenegotiation struct {
	ClientVerifyData []byte
	ServerVerifyData []byte
}

// Bytes returns the wire encoding of the extension payload: a single
// u8-length-prefixed blob containing the concatenation of the two
// verify-data strings (RFC 5746 §3.1/§3.2).
func (sr SecureRenegotiation) Bytes() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(len(sr.ClientVerifyData) + len(sr.ServerVerifyData)))
	buf.Write(sr.ClientVerifyData)
	buf.Write(sr.ServerVerifyData)
	return buf.Bytes()
}

// PreMasterSecret is the RSA-encrypted premaster secret's plaintext
// shape: a two-byte client version followed by 46 random bytes.
type PreMasterSecret struct {
	ClientVersion ProtocolVersion
	Random        [46]byte
}

// Bytes returns the 48-byte wire encoding.
func (pms PreMasterSecret) Bytes() []byte {
	buf := make([]byte, 48)
	bo.PutUint16(buf[0:2], uint16(pms.ClientVersion))
	copy(buf[2:], pms.Random[:])
	return buf
}

// Alert defines alert messages.
type Alert struct {
	Level       AlertLevel
	Description AlertDescription
}

// AlertLevel defines alert severity
type AlertLevel uint8

func (level AlertLevel) String() string {
	switch level {
	case AlertLevelWarning:
		return "warning"
	case AlertLevelFatal:
		return "fatal"
	default:
		return fmt.Sprintf("{AlertLevel %d}", int(level))
	}
}

// Alert Levels.
const (
	AlertLevelWarning AlertLevel = 1
	AlertLevelFatal   AlertLevel = 2
)

// AlertDescription describes the alert.
type AlertDescription uint8

// Level returns the alert description's severity.
func (desc AlertDescription) Level() AlertLevel {
	if desc == AlertCloseNotify || desc == AlertUserCanceled {
		return AlertLevelWarning
	}
	return AlertLevelFatal
}

func (desc AlertDescription) String() string {
	name, ok := alertDescriptions[desc]
	if ok {
		return name
	}
	return fmt.Sprintf("{AlertDescription %d}", int(desc))
}

// Error implements the error interface so an AlertDescription can be
// returned, wrapped and unwrapped like any other Go error (see
// alert_test.go: TestAlertsAsErrors).
func (desc AlertDescription) Error() string {
	return desc.String()
}

// Alert descriptions.
const (
	AlertCloseNotify                  AlertDescription = 0
	AlertUnexpectedMessage            AlertDescription = 10
	AlertBadRecordMAC                 AlertDescription = 20
	AlertRecordOverflow               AlertDescription = 22
	AlertHandshakeFailure             AlertDescription = 40
	AlertBadCertificate               AlertDescription = 42
	AlertUnsupportedCertificate       AlertDescription = 43
	AlertCertificateRevoked           AlertDescription = 44
	AlertCertificateExpired           AlertDescription = 45
	AlertCertificateUnknown           AlertDescription = 46
	AlertIllegalParameter             AlertDescription = 47
	AlertUnknownCA                    AlertDescription = 48
	AlertAccessDenied                 AlertDescription = 49
	AlertDecodeError                  AlertDescription = 50
	AlertDecryptError                 AlertDescription = 51
	AlertProtocolVersion              AlertDescription = 70
	AlertInsufficientSecurity         AlertDescription = 71
	AlertInternalError                AlertDescription = 80
	AlertInappropriateFallback        AlertDescription = 86
	AlertUserCanceled                 AlertDescription = 90
	AlertMissingExtension             AlertDescription = 109
	AlertUnsupportedExtension         AlertDescription = 110
	AlertUnrecognizedName             AlertDescription = 112
	AlertBadCertificateStatusResponse AlertDescription = 113
	AlertUnknownPSKIdentity           AlertDescription = 115
	AlertCertificateRequired          AlertDescription = 116
	AlertNoApplicationProtocol        AlertDescription = 120
)

var alertDescriptions = map[AlertDescription]string{
	AlertCloseNotify:                  "close_notify",
	AlertUnexpectedMessage:            "unexpected_message",
	AlertBadRecordMAC:                 "bad_record_mac",
	AlertRecordOverflow:               "record_overflow",
	AlertHandshakeFailure:             "handshake_failure",
	AlertBadCertificate:               "bad_certificate",
	AlertUnsupportedCertificate:       "unsupported_certificate",
	AlertCertificateRevoked:           "certificate_revoked",
	AlertCertificateExpired:           "certificate_expired",
	AlertCertificateUnknown:           "certificate_unknown",
	AlertIllegalParameter:             "illegal_parameter",
	AlertUnknownCA:                    "unknown_ca",
	AlertAccessDenied:                 "access_denied",
	AlertDecodeError:                  "decode_error",
	AlertDecryptError:                 "decrypt_error",
	AlertProtocolVersion:              "protocol_version",
	AlertInsufficientSecurity:         "insufficient_security",
	AlertInternalError:                "internal_error",
	AlertInappropriateFallback:        "inappropriate_fallback",
	AlertUserCanceled:                 "user_canceled",
	AlertMissingExtension:             "missing_extension",
	AlertUnsupportedExtension:         "unsupported_extension",
	AlertUnrecognizedName:             "unrecognized_name",
	AlertBadCertificateStatusResponse: "bad_certificate_status_response",
	AlertUnknownPSKIdentity:           "unknown_psk_identity",
	AlertCertificateRequired:          "certificate_required",
	AlertNoApplicationProtocol:        "no_application_protocol",
}
