//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"bytes"
)

// CurrentParams is the snapshot the record classifier computes before
// decoding a Handshake record's fragment into individual messages:
// the record's own protocol version, the pending cipher's
// key-exchange kind (if a handshake is in progress and a cipher has
// been chosen), and whether NPN is in play.
type CurrentParams struct {
	Version     ProtocolVersion
	KeyExchange KeyExchangeKind
	NPNEnabled  bool
}

// rawHandshake is one length-prefixed unit inside a Handshake record's
// fragment, before structural decoding.
type rawHandshake struct {
	Type HandshakeType
	Raw  []byte
}

// DecodeAlerts decodes one or more Alert messages from a record
// fragment.
func DecodeAlerts(fragment []byte) ([]Alert, error) {
	if len(fragment) == 0 || len(fragment)%2 != 0 {
		return nil, decodeErrorf("alert: invalid length %d", len(fragment))
	}
	var alerts []Alert
	for i := 0; i < len(fragment); i += 2 {
		alerts = append(alerts, Alert{
			Level:       AlertLevel(fragment[i]),
			Description: AlertDescription(fragment[i+1]),
		})
	}
	return alerts, nil
}

// DecodeChangeCipherSpec validates the single-byte ChangeCipherSpec
// payload.
func DecodeChangeCipherSpec(fragment []byte) error {
	if len(fragment) != 1 || fragment[0] != 1 {
		return decodeErrorf("change_cipher_spec: invalid payload %x", fragment)
	}
	return nil
}

// decodeHandshakes splits a Handshake record's fragment into its
// constituent (type, rawBytes) units: a length-prefixed stream turned
// into a list of type+bytes pairs. It does not resolve continuations
// across records: a message whose body runs past the end of the
// fragment is a decode error, and State's
// handshakeRecordCont/handshakeRecordCont13 fields are not used.
func decodeHandshakes(fragment []byte) ([]rawHandshake, error) {
	var out []rawHandshake
	for len(fragment) > 0 {
		if len(fragment) < 4 {
			return nil, decodeErrorf("handshake: truncated header")
		}
		ht := HandshakeType(fragment[0])
		length := int(fragment[1])<<16 | int(fragment[2])<<8 | int(fragment[3])
		fragment = fragment[4:]
		if length > len(fragment) {
			return nil, decodeErrorf("handshake: truncated body for %v", ht)
		}
		out = append(out, rawHandshake{Type: ht, Raw: fragment[:length]})
		fragment = fragment[length:]
	}
	return out, nil
}

// DecodeHandshake structurally decodes one handshake message body.
// params carries the classifier's snapshot, but no decoding case
// consults it: ClientKeyExchange stays opaque whatever the pending
// cipher's key-exchange kind. Types whose payload this package
// treats as opaque (ServerKeyExchange, ClientKeyExchange,
// CertificateRequest, NewSessionTicket, and Finished's verify_data
// which spans the entire body) are wrapped without going through the
// reflection codec, since their wire shape is not a tagged struct.
func DecodeHandshake(params CurrentParams, ht HandshakeType, raw []byte) (HandshakeMessage, error) {
	switch ht {
	case HTHelloRequest:
		if len(raw) != 0 {
			return nil, decodeErrorf("hello_request: unexpected payload")
		}
		return HelloRequest{}, nil

	case HTClientHello:
		var msg ClientHello
		if _, err := UnmarshalFrom(raw, &msg); err != nil {
			return nil, decodeErrorf("client_hello: %v", err)
		}
		return &msg, nil

	case HTServerHello:
		var msg ServerHello
		if _, err := UnmarshalFrom(raw, &msg); err != nil {
			return nil, decodeErrorf("server_hello: %v", err)
		}
		return &msg, nil

	case HTEncryptedExtensions:
		var msg EncryptedExtensions
		if _, err := UnmarshalFrom(raw, &msg); err != nil {
			return nil, decodeErrorf("encrypted_extensions: %v", err)
		}
		return &msg, nil

	case HTCertificate:
		var msg Certificate
		if _, err := UnmarshalFrom(raw, &msg); err != nil {
			return nil, decodeErrorf("certificate: %v", err)
		}
		return &msg, nil

	case HTCertificateRequest:
		return &CertificateRequest{Raw: append([]byte(nil), raw...)}, nil

	case HTServerHelloDone:
		if len(raw) != 0 {
			return nil, decodeErrorf("server_hello_done: unexpected payload")
		}
		return ServerHelloDone{}, nil

	case HTServerKeyExchange:
		return &ServerKeyExchange{Raw: append([]byte(nil), raw...)}, nil

	case HTClientKeyExchange:
		return &ClientKeyExchange{Raw: append([]byte(nil), raw...)}, nil

	case HTCertificateVerify:
		var msg CertificateVerify
		if _, err := UnmarshalFrom(raw, &msg); err != nil {
			return nil, decodeErrorf("certificate_verify: %v", err)
		}
		return &msg, nil

	case HTFinished:
		return &Finished{VerifyData: append([]byte(nil), raw...)}, nil

	case HTNextProtocol:
		var msg NextProtocol
		if _, err := UnmarshalFrom(raw, &msg); err != nil {
			return nil, decodeErrorf("next_protocol: %v", err)
		}
		return &msg, nil

	case HTNewSessionTicket:
		return &NewSessionTicket{Raw: append([]byte(nil), raw...)}, nil

	default:
		return &UnknownHandshake{HandshakeType: ht, Raw: append([]byte(nil), raw...)}, nil
	}
}

// DecodeDeprecatedHandshake decodes an SSLv2-compatible ClientHello.
// Layout: msg_type(1) ==1,
// version(2), cipher_spec_len(2), session_id_len(2), challenge_len(2),
// cipher_specs (3 bytes each), session_id, challenge. Only the fields
// a receive-side core cares about (advertised version, cipher list,
// session id, and the challenge right-aligned into Random) are
// extracted; the low two bytes of each three-byte cipher spec map
// onto a modern CipherSuite value on a best-effort basis since SSLv2
// specs do not correspond 1:1 with TLS registry values.
func DecodeDeprecatedHandshake(fragment []byte) (HandshakeMessage, error) {
	if len(fragment) < 9 || fragment[0] != 1 {
		return nil, decodeErrorf("deprecated handshake: invalid header")
	}
	version := ProtocolVersion(bo.Uint16(fragment[1:3]))
	cipherSpecLen := int(bo.Uint16(fragment[3:5]))
	sessionIDLen := int(bo.Uint16(fragment[5:7]))
	challengeLen := int(bo.Uint16(fragment[7:9]))

	rest := fragment[9:]
	if len(rest) < cipherSpecLen+sessionIDLen+challengeLen {
		return nil, decodeErrorf("deprecated handshake: truncated body")
	}
	cipherSpecs := rest[:cipherSpecLen]
	rest = rest[cipherSpecLen:]
	sessionID := rest[:sessionIDLen]
	rest = rest[sessionIDLen:]
	challenge := rest[:challengeLen]

	var suites []CipherSuite
	for i := 0; i+3 <= len(cipherSpecs); i += 3 {
		suites = append(suites, CipherSuite(bo.Uint16(cipherSpecs[i+1:i+3])))
	}

	var random [32]byte
	copy(random[32-len(challenge):], challenge)

	return &ClientHello{
		LegacyVersion:   version,
		Random:          random,
		LegacySessionID: sessionID,
		CipherSuites:    suites,
	}, nil
}

// DecodePreMasterSecret decodes the plaintext produced by RSA
// decryption during ClientKeyExchange.
func DecodePreMasterSecret(plaintext []byte) (*PreMasterSecret, error) {
	if len(plaintext) != 48 {
		return nil, decodeErrorf("premaster secret: invalid length %d", len(plaintext))
	}
	var pms PreMasterSecret
	pms.ClientVersion = ProtocolVersion(bo.Uint16(plaintext[0:2]))
	copy(pms.Random[:], plaintext[2:])
	return &pms, nil
}

// encodeBody returns a handshake message's body bytes, i.e. its wire
// encoding without the 4-byte handshake header. Opaque-payload
// message types are re-emitted verbatim; structured types go through
// the tagged-struct codec.
func encodeBody(msg HandshakeMessage) ([]byte, error) {
	switch m := msg.(type) {
	case HelloRequest, ServerHelloDone:
		return nil, nil
	case *CertificateRequest:
		return m.Raw, nil
	case *ServerKeyExchange:
		return m.Raw, nil
	case *ClientKeyExchange:
		return m.Raw, nil
	case *Finished:
		return m.VerifyData, nil
	case *NewSessionTicket:
		return m.Raw, nil
	case *UnknownHandshake:
		return m.Raw, nil
	default:
		return Marshal(msg)
	}
}

// EncodeHandshake produces the authoritative wire bytes of a handshake
// message, header included: 1-byte type, 3-byte length, body.
func EncodeHandshake(msg HandshakeMessage) ([]byte, error) {
	body, err := encodeBody(msg)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	out.WriteByte(byte(msg.Type()))
	out.WriteByte(byte(len(body) >> 16))
	out.WriteByte(byte(len(body) >> 8))
	out.WriteByte(byte(len(body)))
	out.Write(body)
	return out.Bytes(), nil
}

// ExtensionEncode returns the wire encoding of a single extension
// entry: 2-byte type, 2-byte length, data.
func ExtensionEncode(ext Extension) []byte {
	var out bytes.Buffer
	var buf [2]byte
	bo.PutUint16(buf[:], uint16(ext.Type))
	out.Write(buf[:])
	bo.PutUint16(buf[:], uint16(len(ext.Data)))
	out.Write(buf[:])
	out.Write(ext.Data)
	return out.Bytes()
}
