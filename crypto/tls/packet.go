//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

// Record is a plaintext record handed to the classifier: already
// decrypted, tagged with its content type and protocol version.
// Framing, MAC and decryption are the record layer's job.
type Record struct {
	Type     ContentType
	Version  ProtocolVersion
	Fragment []byte
}

// PacketKind discriminates the semantic events ProcessPacket can
// yield.
type PacketKind uint8

// Packet kinds.
const (
	PacketAppData PacketKind = iota
	PacketAlert
	PacketChangeCipherSpec
	PacketHandshake
)

// Packet is the closed discriminated union ProcessPacket returns.
// Exactly the fields relevant to Kind are populated.
type Packet struct {
	Kind       PacketKind
	AppData    []byte
	Alerts     []Alert
	Handshakes []HandshakeMessage
}

// ProcessPacket is the record classifier: it maps one plaintext
// record to one Packet event, invoking the record layer's
// SwitchReceiveCipher exactly once on a valid ChangeCipherSpec.
func (s *State) ProcessPacket(rec Record) (Packet, error) {
	switch rec.Type {
	case CTApplicationData:
		return Packet{Kind: PacketAppData, AppData: rec.Fragment}, nil

	case CTAlert:
		alerts, err := DecodeAlerts(rec.Fragment)
		if err != nil {
			return Packet{}, err
		}
		return Packet{Kind: PacketAlert, Alerts: alerts}, nil

	case CTChangeCipherSpec:
		if err := DecodeChangeCipherSpec(rec.Fragment); err != nil {
			return Packet{}, err
		}
		if err := s.cipherLayer.SwitchReceiveCipher(); err != nil {
			return Packet{}, err
		}
		s.log.Debug("switched receive cipher")
		return Packet{Kind: PacketChangeCipherSpec}, nil

	case CTHandshake:
		params := s.currentParams(rec.Version)
		raws, err := decodeHandshakes(rec.Fragment)
		if err != nil {
			return Packet{}, err
		}
		msgs := make([]HandshakeMessage, 0, len(raws))
		for _, r := range raws {
			m, err := DecodeHandshake(params, r.Type, r.Raw)
			if err != nil {
				return Packet{}, err
			}
			msgs = append(msgs, m)
		}
		return Packet{Kind: PacketHandshake, Handshakes: msgs}, nil

	default:
		return Packet{}, decodeErrorf("unknown content type %v", rec.Type)
	}
}

// ProcessDeprecatedHandshake classifies an SSLv2-compatible
// ClientHello record into a singleton Handshake packet.
func (s *State) ProcessDeprecatedHandshake(fragment []byte) (Packet, error) {
	msg, err := DecodeDeprecatedHandshake(fragment)
	if err != nil {
		return Packet{}, err
	}
	return Packet{Kind: PacketHandshake, Handshakes: []HandshakeMessage{msg}}, nil
}

// currentParams computes the snapshot needed before decoding a
// Handshake record's fragment: the record's own version, the pending
// cipher's key-exchange kind if a handshake is underway and a cipher
// has already been chosen, and whether NPN is enabled.
func (s *State) currentParams(recordVersion ProtocolVersion) CurrentParams {
	params := CurrentParams{Version: recordVersion}
	if s.handshake != nil && s.handshake.cipherChosen {
		params.KeyExchange = s.handshake.pendingCipher.KeyExchange()
	}
	params.NPNEnabled = s.extensionALPN
	return params
}
