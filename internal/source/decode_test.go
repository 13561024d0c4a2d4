// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		wantText string
		wantEnc  string
	}{
		{name: "plain utf-8", in: []byte("caf\u00e9"), wantText: "caf\u00e9", wantEnc: EncodingUTF8},
		{name: "utf-8 bom dropped", in: append([]byte{0xEF, 0xBB, 0xBF}, "abc"...), wantText: "abc", wantEnc: EncodingUTF8BOM},
		{name: "utf-16le", in: []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, wantText: "hi", wantEnc: EncodingUTF16LE},
		{name: "utf-16be", in: []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, wantText: "hi", wantEnc: EncodingUTF16BE},
		{name: "latin-1 fallback", in: []byte{'c', 'a', 'f', 0xE9}, wantText: "caf\u00e9", wantEnc: EncodingLatin1},
		{name: "nfc composition", in: []byte("cafe\u0301"), wantText: "caf\u00e9", wantEnc: EncodingUTF8},
		{name: "empty", in: nil, wantText: "", wantEnc: EncodingUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, enc := Decode(tt.in)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantEnc, enc)
		})
	}
}
