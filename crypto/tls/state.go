//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"github.com/sirupsen/logrus"
)

// State is the process-free, single-connection record of every
// negotiated or observed protocol value. Access is single-threaded;
// callers serialize concurrent use.
type State struct {
	role Role

	version    ProtocolVersion
	versionSet bool

	session             Session
	secureRenegotiation bool

	clientVerifyData []byte
	serverVerifyData []byte

	serverEndPoint []byte

	extensionALPN      bool
	negotiatedProtocol []byte

	clientALPNSuggest          [][]byte
	clientGroupSuggest         []NamedGroup
	clientEcPointFormatSuggest []byte

	clientCertificateChain [][]byte
	haveClientCertChain    bool

	clientSNI     string
	haveClientSNI bool

	// handshakeRecordCont / handshakeRecordCont13 are slots for a
	// partially accumulated handshake fragment, kept separate because
	// pre-1.3 and 1.3 framing diverge once padding/early-data come
	// into play. No code in this package reads or writes them:
	// ProcessPacket rejects a record whose last handshake message is
	// incomplete.
	handshakeRecordCont   []byte
	handshakeRecordCont13 []byte

	randomGen *RNG

	// TLS 1.3 fields.
	keyShare             *KeyShareEntry
	preSharedKey         []byte
	havePSK              bool
	hrr                  bool
	cookie               []byte
	exporterMasterSecret []byte
	clientSupportsPHA    bool

	tls12SessionTicket []byte
	haveSessionTicket  bool

	handshake *HandshakeSubstate

	cipherLayer CipherLayer
	keySchedule KeySchedule
	log         *logrus.Entry
}

// NewState creates the session state for a fresh connection: fixed
// role, seeded RNG, no handshake in progress. keySchedule may be nil
// for tests that never exercise ClientKeyExchange or Finished
// processing; any call that needs it then panics with a nil-interface
// runtime error, not an InternalInvariantError.
func NewState(cfg *Config, seed [32]byte, cipherLayer CipherLayer, keySchedule KeySchedule) *State {
	if cfg == nil {
		cfg = &Config{}
	}
	return &State{
		role:          cfg.Role,
		session:       Session{ID: NewSessionID()},
		randomGen:     NewRNG(seed),
		cipherLayer:   cipherLayer,
		keySchedule:   keySchedule,
		clientSNI:     cfg.ServerName,
		haveClientSNI: cfg.ServerName != "",
		log:           cfg.logger(),
	}
}

// Role returns the connection's fixed role.
func (s *State) Role() Role { return s.role }

// Version returns the negotiated protocol version. Reading before it
// is set is a programmer error and panics.
func (s *State) Version() ProtocolVersion {
	if !s.versionSet {
		panicInvariant("version read before it was negotiated")
	}
	return s.version
}

// VersionOk reports whether the version has been negotiated yet,
// without panicking.
func (s *State) VersionOk() (ProtocolVersion, bool) {
	return s.version, s.versionSet
}

// SetVersion strictly sets the negotiated version. Setting it again
// with a different value is a protocol error (never a silent
// downgrade); setting it again with the same value is a no-op.
func (s *State) SetVersion(v ProtocolVersion) error {
	if s.versionSet {
		if s.version == v {
			return nil
		}
		return protocolErrorf(AlertProtocolVersion,
			"version already negotiated as %v, cannot change to %v",
			s.version, v)
	}
	s.version = v
	s.versionSet = true
	return nil
}

// SetVersionIfUnset sets the version only if it has never been set;
// it is a no-op after the first set.
func (s *State) SetVersionIfUnset(v ProtocolVersion) {
	if s.versionSet {
		return
	}
	s.version = v
	s.versionSet = true
}

// Session returns the connection's session record.
func (s *State) Session() Session { return s.session }

// SetSession replaces the connection's session record.
func (s *State) SetSession(sess Session) { s.session = sess }

// SecureRenegotiation reports whether secure renegotiation has been
// observed on this connection.
func (s *State) SecureRenegotiation() bool { return s.secureRenegotiation }

// SetSecureRenegotiation sets the flag. It is monotonic: once true it
// can never be set back to false.
func (s *State) SetSecureRenegotiation(v bool) {
	if v {
		s.secureRenegotiation = true
	}
}

// ClientVerifyData returns the client's most recently validated
// Finished verify-data, if any.
func (s *State) ClientVerifyData() ([]byte, bool) {
	return s.clientVerifyData, s.clientVerifyData != nil
}

// SetClientVerifyData records the client's verify-data.
func (s *State) SetClientVerifyData(data []byte) { s.clientVerifyData = data }

// ServerVerifyData returns the server's most recently validated
// Finished verify-data, if any.
func (s *State) ServerVerifyData() ([]byte, bool) {
	return s.serverVerifyData, s.serverVerifyData != nil
}

// SetServerVerifyData records the server's verify-data.
func (s *State) SetServerVerifyData(data []byte) { s.serverVerifyData = data }

// resetVerifyData clears both sides' verify-data. Called when a fresh
// handshake begins.
func (s *State) resetVerifyData() {
	s.clientVerifyData = nil
	s.serverVerifyData = nil
}

// ServerEndPoint returns the channel-binding material captured from
// the server's certificate.
func (s *State) ServerEndPoint() []byte { return s.serverEndPoint }

// SetServerEndPoint sets the channel-binding material.
func (s *State) SetServerEndPoint(v []byte) { s.serverEndPoint = v }

// ExtensionALPN reports whether ALPN was advertised.
func (s *State) ExtensionALPN() bool { return s.extensionALPN }

// SetExtensionALPN records whether ALPN was advertised.
func (s *State) SetExtensionALPN(v bool) { s.extensionALPN = v }

// NegotiatedProtocol returns the ALPN-selected protocol, if any.
func (s *State) NegotiatedProtocol() ([]byte, bool) {
	return s.negotiatedProtocol, s.negotiatedProtocol != nil
}

// SetNegotiatedProtocol records the ALPN-selected protocol.
func (s *State) SetNegotiatedProtocol(v []byte) { s.negotiatedProtocol = v }

// ClientALPNSuggest returns the client's advertised ALPN protocol
// list.
func (s *State) ClientALPNSuggest() [][]byte { return s.clientALPNSuggest }

// SetClientALPNSuggest records the client's advertised ALPN protocol
// list.
func (s *State) SetClientALPNSuggest(v [][]byte) { s.clientALPNSuggest = v }

// ClientGroupSuggest returns the client's advertised supported_groups.
func (s *State) ClientGroupSuggest() []NamedGroup { return s.clientGroupSuggest }

// SetClientGroupSuggest records the client's advertised
// supported_groups.
func (s *State) SetClientGroupSuggest(v []NamedGroup) { s.clientGroupSuggest = v }

// ClientEcPointFormatSuggest returns the client's advertised
// ec_point_formats.
func (s *State) ClientEcPointFormatSuggest() []byte {
	return s.clientEcPointFormatSuggest
}

// SetClientEcPointFormatSuggest records the client's advertised
// ec_point_formats.
func (s *State) SetClientEcPointFormatSuggest(v []byte) {
	s.clientEcPointFormatSuggest = v
}

// ClientCertificateChain returns the client's certificate chain, if
// one was presented.
func (s *State) ClientCertificateChain() ([][]byte, bool) {
	return s.clientCertificateChain, s.haveClientCertChain
}

// SetClientCertificateChain records the client's certificate chain.
func (s *State) SetClientCertificateChain(chain [][]byte) {
	s.clientCertificateChain = chain
	s.haveClientCertChain = true
}

// ClientSNI returns the client's requested host name, if any.
func (s *State) ClientSNI() (string, bool) {
	return s.clientSNI, s.haveClientSNI
}

// SetClientSNI records the client's requested host name.
func (s *State) SetClientSNI(name string) {
	s.clientSNI = name
	s.haveClientSNI = true
}

// TLS13KeyShare returns the negotiated TLS 1.3 key share, if any.
func (s *State) TLS13KeyShare() *KeyShareEntry { return s.keyShare }

// SetTLS13KeyShare records the negotiated TLS 1.3 key share.
func (s *State) SetTLS13KeyShare(ks *KeyShareEntry) { s.keyShare = ks }

// TLS13PreSharedKey returns the selected TLS 1.3 PSK, if any.
func (s *State) TLS13PreSharedKey() ([]byte, bool) {
	return s.preSharedKey, s.havePSK
}

// SetTLS13PreSharedKey records the selected TLS 1.3 PSK.
func (s *State) SetTLS13PreSharedKey(psk []byte) {
	s.preSharedKey = psk
	s.havePSK = true
}

// HelloRetryRequested reports whether a HelloRetryRequest was sent or
// received on this connection.
func (s *State) HelloRetryRequested() bool { return s.hrr }

// SetHelloRetryRequested records that a HelloRetryRequest occurred.
func (s *State) SetHelloRetryRequested(v bool) { s.hrr = v }

// Cookie returns the TLS 1.3 cookie extension value, if any.
func (s *State) Cookie() []byte { return s.cookie }

// SetCookie records the TLS 1.3 cookie extension value.
func (s *State) SetCookie(v []byte) { s.cookie = v }

// ExporterMasterSecret returns the TLS 1.3 exporter master secret.
func (s *State) ExporterMasterSecret() []byte { return s.exporterMasterSecret }

// SetExporterMasterSecret records the TLS 1.3 exporter master secret.
func (s *State) SetExporterMasterSecret(v []byte) { s.exporterMasterSecret = v }

// ClientSupportsPHA reports whether the client advertised
// post_handshake_auth support.
func (s *State) ClientSupportsPHA() bool { return s.clientSupportsPHA }

// SetClientSupportsPHA records post_handshake_auth support.
func (s *State) SetClientSupportsPHA(v bool) { s.clientSupportsPHA = v }

// TLS12SessionTicket returns the RFC 5077 session ticket, if any.
func (s *State) TLS12SessionTicket() ([]byte, bool) {
	return s.tls12SessionTicket, s.haveSessionTicket
}

// SetTLS12SessionTicket records the RFC 5077 session ticket.
func (s *State) SetTLS12SessionTicket(v []byte) {
	s.tls12SessionTicket = v
	s.haveSessionTicket = true
}

// RNG returns the connection's random generator.
func (s *State) RNG() *RNG { return s.randomGen }

// InHandshake reports whether a handshake is currently in progress.
func (s *State) InHandshake() bool { return s.handshake != nil }

// Handshake returns the in-progress handshake substate. Calling it
// outside a handshake is a programmer error and panics.
func (s *State) Handshake() *HandshakeSubstate {
	if s.handshake == nil {
		panicInvariant("handshake substate accessed outside a handshake")
	}
	return s.handshake
}

// BeginHandshake allocates a fresh handshake substate and resets the
// per-handshake verify-data.
func (s *State) BeginHandshake() *HandshakeSubstate {
	s.handshake = newHandshakeSubstate(defaultTranscriptHash())
	s.resetVerifyData()
	return s.handshake
}

// EndHandshake tears down the handshake substate after Finished has
// been processed on both sides.
func (s *State) EndHandshake() {
	s.handshake = nil
}

// CipherLayer returns the record-layer collaborator used to switch
// the receive cipher on ChangeCipherSpec.
func (s *State) CipherLayer() CipherLayer { return s.cipherLayer }
