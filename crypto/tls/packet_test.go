//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAppDataPassthrough checks that an ApplicationData record is
// returned bit-equal, with no state mutation.
func TestAppDataPassthrough(t *testing.T) {
	s := newTestState(t, RoleClient)
	before := s.session

	fragment := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	pkt, err := s.ProcessPacket(Record{Type: CTApplicationData, Fragment: fragment})
	require.NoError(t, err)
	require.Equal(t, PacketAppData, pkt.Kind)
	require.True(t, bytes.Equal(fragment, pkt.AppData))
	require.Equal(t, before, s.session)
}

// TestChangeCipherSpecSwitch checks that a valid CCS record yields a
// ChangeCipherSpec packet and invokes SwitchReceiveCipher exactly
// once.
func TestChangeCipherSpecSwitch(t *testing.T) {
	layer := &NopCipherLayer{}
	s := NewState(&Config{Role: RoleClient}, [32]byte{}, layer, &fakeKeySchedule{})

	pkt, err := s.ProcessPacket(Record{Type: CTChangeCipherSpec, Fragment: []byte{1}})
	require.NoError(t, err)
	require.Equal(t, PacketChangeCipherSpec, pkt.Kind)
	require.Equal(t, 1, layer.Switches)
}

// TestChangeCipherSpecInvalidPayload rejects anything but the single
// valid byte.
func TestChangeCipherSpecInvalidPayload(t *testing.T) {
	layer := &NopCipherLayer{}
	s := NewState(&Config{Role: RoleClient}, [32]byte{}, layer, &fakeKeySchedule{})

	_, err := s.ProcessPacket(Record{Type: CTChangeCipherSpec, Fragment: []byte{0}})
	require.Error(t, err)
	require.Equal(t, 0, layer.Switches, "SwitchReceiveCipher must not run on a rejected CCS")
}

// TestAlertDecode covers the Alert classification path.
func TestAlertDecode(t *testing.T) {
	s := newTestState(t, RoleClient)

	fragment := []byte{byte(AlertLevelFatal), byte(AlertHandshakeFailure)}
	pkt, err := s.ProcessPacket(Record{Type: CTAlert, Fragment: fragment})
	require.NoError(t, err)
	require.Equal(t, PacketAlert, pkt.Kind)
	require.Len(t, pkt.Alerts, 1)
	require.Equal(t, AlertHandshakeFailure, pkt.Alerts[0].Description)
}

// TestHandshakeBatchOrdering covers a Handshake record carrying more
// than one message: they must decode in wire order.
func TestHandshakeBatchOrdering(t *testing.T) {
	s := newTestState(t, RoleServer)
	s.BeginHandshake()

	ch := sampleClientHello()
	done := ServerHelloDone{}

	chBytes, err := EncodeHandshake(ch)
	require.NoError(t, err)
	doneBytes, err := EncodeHandshake(done)
	require.NoError(t, err)

	var fragment bytes.Buffer
	fragment.Write(chBytes)
	fragment.Write(doneBytes)

	pkt, err := s.ProcessPacket(Record{Type: CTHandshake, Version: VersionTLS12, Fragment: fragment.Bytes()})
	require.NoError(t, err)
	require.Len(t, pkt.Handshakes, 2)
	require.Equal(t, HTClientHello, pkt.Handshakes[0].Type())
	require.Equal(t, HTServerHelloDone, pkt.Handshakes[1].Type())
}

// TestDeprecatedHandshakeSingleton covers the SSLv2-compat entry
// point: a singleton Handshake event.
func TestDeprecatedHandshakeSingleton(t *testing.T) {
	s := newTestState(t, RoleServer)

	fragment := []byte{
		1,          // msg_type
		0x03, 0x01, // version TLS 1.0
		0x00, 0x03, // cipher_spec_len
		0x00, 0x00, // session_id_len
		0x00, 0x02, // challenge_len
		0x00, 0x00, 0x2f, // one SSLv2 cipher spec, low bytes = 0x002f
		0xAA, 0xBB, // challenge
	}

	pkt, err := s.ProcessDeprecatedHandshake(fragment)
	require.NoError(t, err)
	require.Len(t, pkt.Handshakes, 1)
	ch, ok := pkt.Handshakes[0].(*ClientHello)
	require.True(t, ok)
	require.Equal(t, VersionTLS10, ch.LegacyVersion)
	require.Equal(t, []CipherSuite{CipherTLSRsaWithAes128CbcSha}, ch.CipherSuites)
}
