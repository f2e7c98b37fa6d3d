//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package tls

import (
	"bytes"
	"fmt"
)

// NewExtension creates a new protocol extension from typed values.
// Slice-valued extensions (supported_groups, signature_algorithms,
// key_share) get a length prefix sized per the extension; raw byte
// payloads (renegotiation_info and the like) are passed through
// unprefixed via []byte.
func NewExtension(t ExtensionType, values ...interface{}) Extension {
	if len(values) == 1 {
		if raw, ok := values[0].([]byte); ok {
			return Extension{Type: t, Data: raw}
		}
	}

	var buf [4]byte
	var result bytes.Buffer

	var ll int
	switch t {
	case ETSupportedGroups, ETSignatureAlgorithms, ETKeyShare:
		ll = 2
	case ETSupportedVersions:
		ll = 1
	default:
		panic(fmt.Sprintf("NewExtension: unknown ExtensionType: %v", t))
	}

	for i := 0; i < ll; i++ {
		result.WriteByte(0)
	}
	for _, val := range values {
		switch v := val.(type) {
		case NamedGroup:
			bo.PutUint16(buf[0:2], uint16(v))
			result.Write(buf[0:2])

		case SignatureScheme:
			bo.PutUint16(buf[0:2], uint16(v))
			result.Write(buf[0:2])

		case ProtocolVersion:
			bo.PutUint16(buf[0:2], uint16(v))
			result.Write(buf[0:2])

		case *KeyShareEntry:
			data, err := Marshal(v)
			if err != nil {
				panic(fmt.Sprintf("failed to marshal KeyShareEntry: %v", err))
			}
			result.Write(data)

		default:
			panic(fmt.Sprintf("unsupported extension value %T", v))
		}
	}

	// Set extension length field.
	l := result.Len() - ll
	data := result.Bytes()
	switch ll {
	case 1:
		data[0] = byte(l)
	case 2:
		bo.PutUint16(data[0:2], uint16(l))
	default:
		panic("invalid length")
	}

	return Extension{
		Type: t,
		Data: data,
	}
}

func (ext Extension) String() string {
	switch ext.Type {
	case ETServerName:
		if len(ext.Data) < 2 {
			return fmt.Sprintf("%v: ⚠ %x", ext.Type, ext.Data)
		}
		result := fmt.Sprintf("%v:", ext.Type)

		ll := int(bo.Uint16(ext.Data))
		if 2+ll != len(ext.Data) {
			return fmt.Sprintf("%v: ⚠ %x", ext.Type, ext.Data)
		}
		for i := 2; i < len(ext.Data); {
			var name ServerName
			n, err := UnmarshalFrom(ext.Data[i:], &name)
			if err != nil {
				return fmt.Sprintf("%v: ⚠ %x", ext.Type, ext.Data)
			}
			result += fmt.Sprintf(" %s", string(name.Hostname))
			i += n
		}
		return result

	case ETSupportedGroups:
		arr, err := ext.Uint16List(2)
		if err != nil {
			return fmt.Sprintf("%v: ⚠ %x", ext.Type, ext.Data)
		}
		result := fmt.Sprintf("%v:", ext.Type)
		for _, v := range arr {
			result += fmt.Sprintf(" %v", NamedGroup(v))
		}
		return result

	case ETSignatureAlgorithms:
		arr, err := ext.Uint16List(2)
		if err != nil {
			return fmt.Sprintf("%v: ⚠ %x", ext.Type, ext.Data)
		}
		result := fmt.Sprintf("%v:", ext.Type)
		for _, v := range arr {
			result += fmt.Sprintf(" %v", SignatureScheme(v))
		}
		return result

	case ETRenegotiationInfo:
		return fmt.Sprintf("%v: %x", ext.Type, ext.Data)

	default:
		return fmt.Sprintf("%04x", int(ext.Type))
	}
}
