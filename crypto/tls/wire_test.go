//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExtensionEncodeWireShape checks the wire shape ExtensionEncode
// produces: 2-byte type, 2-byte length, then the payload verbatim.
func TestExtensionEncodeWireShape(t *testing.T) {
	ext := Extension{Type: ETRenegotiationInfo, Data: []byte{0x00, 0x01, 0x02}}
	raw := ExtensionEncode(ext)

	require.Len(t, raw, 4+len(ext.Data))
	require.Equal(t, uint16(ETRenegotiationInfo), bo.Uint16(raw[0:2]))
	require.Equal(t, uint16(len(ext.Data)), bo.Uint16(raw[2:4]))
	require.Equal(t, ext.Data, raw[4:])
}

// TestDecodePreMasterSecretRoundTrip checks that decoding a premaster
// secret's plaintext recovers exactly the fields Bytes() encoded.
func TestDecodePreMasterSecretRoundTrip(t *testing.T) {
	var random [46]byte
	copy(random[:], []byte("some-forty-six-bytes-of-random-material-here!"))
	pms := PreMasterSecret{ClientVersion: VersionTLS12, Random: random}

	got, err := DecodePreMasterSecret(pms.Bytes())
	require.NoError(t, err)
	require.Equal(t, pms.ClientVersion, got.ClientVersion)
	require.Equal(t, pms.Random, got.Random)
}

// TestDecodePreMasterSecretRejectsWrongLength checks the decode-error
// path.
func TestDecodePreMasterSecretRejectsWrongLength(t *testing.T) {
	_, err := DecodePreMasterSecret([]byte{1, 2, 3})
	require.Error(t, err)
}
