// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Encoding names reported by Decode.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-bom"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
	EncodingLatin1  = "iso-8859-1"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode turns raw bytes into NFC-normalized UTF-8 text. A byte order mark
// selects UTF-8 or UTF-16 and is dropped. Without one, valid UTF-8 is kept
// and anything else is read as ISO-8859-1, the usual encoding of older
// LaTeX sources.
func Decode(data []byte) (text, enc string) {
	var decoded []byte
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		enc = EncodingUTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		enc = EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		enc = EncodingUTF16BE
	case utf8.Valid(data):
		enc = EncodingUTF8
	default:
		enc = EncodingLatin1
	}

	var err error
	if enc == EncodingLatin1 {
		decoded, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
	} else {
		decoded, _, err = transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	}
	if err != nil {
		decoded = bytes.ToValidUTF8(data, []byte("\uFFFD"))
	}
	return norm.NFC.String(string(decoded)), enc
}
