package charstream

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// FromLatin1Bytes decodes raw Latin-1 (ISO-8859-1) bytes into a Stream.
// Decoding through golang.org/x/text/encoding/charmap (rather than the
// direct byte-to-rune cast Latin1Stream itself performs) exists so
// callers that received already-ISO-8859-1-labelled bytes from an
// external source (an HTTP response, a file with a charset header) go
// through the same decoding path as any other x/text-mediated encoding
// in this package.
func FromLatin1Bytes(data []byte) (Stream, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	// The decoder hands back UTF-8; fold it back to one byte per code
	// point, the representation Latin1Stream reads.
	runes := []rune(string(decoded))
	latin1 := make([]byte, len(runes))
	for i, r := range runes {
		latin1[i] = byte(r)
	}
	return NewLatin1Stream(latin1), nil
}

// FromUTF8Bytes decodes raw UTF-8 bytes into a Stream, stripping a
// leading byte-order-mark if present.
func FromUTF8Bytes(data []byte) (Stream, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	return NewUTF8Stream(data), nil
}

// FromUTF16Bytes decodes raw UTF-16 bytes (big-endian, little-endian, or
// BOM-prefixed with either byte order) into a Stream of UTF-16 code
// units. When no BOM is present, big-endian is assumed per the
// x/text/encoding/unicode default for "UTF-16, big-endian, no BOM" use.
func FromUTF16Bytes(data []byte) (Stream, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	units := utf16Encode(decoded)
	return NewUTF16Stream(units), nil
}

// utf16Encode re-encodes the UTF-8 bytes x/text handed back into the
// raw UTF-16 code unit slice UTF16Stream operates over.
func utf16Encode(utf8Decoded []byte) []uint16 {
	runes := []rune(string(utf8Decoded))
	units := make([]uint16, 0, len(runes))
	for _, r := range runes {
		if r > 0xFFFF {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}
