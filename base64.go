// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

import (
	"encoding/base64"
	"strings"
)

// base64Alphabet is RFC-4648's standard alphabet plus the padding byte; any
// other input byte is dropped before decoding (spec §6: "Decoder skips
// non-alphabet bytes").
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

var base64ValidByte [256]bool

func init() {
	for i := 0; i < len(base64Alphabet); i++ {
		base64ValidByte[base64Alphabet[i]] = true
	}
}

// bytesToPseudoString renders raw bytes as a string whose runes are the
// individual byte values, the same representation toUTF8 produces. This is
// how compressToBase64/decompressFromBase64 hand bytes to/from the §6 UTF-8
// bridge functions.
func bytesToPseudoString(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, x := range data {
		b.WriteRune(rune(x))
	}
	return b.String()
}

// pseudoStringToBytes is the inverse of bytesToPseudoString: every rune in s
// must be in [0,255].
func pseudoStringToBytes(s string) []byte {
	runes := []rune(s)
	out := make([]byte, len(runes))
	for i, c := range runes {
		out[i] = byte(c)
	}
	return out
}

// CompressToBase64 returns base64(utf8(Compress(input))) (spec §6).
func CompressToBase64(input string) string {
	tagged := Compress(input)
	raw := pseudoStringToBytes(toUTF8(tagged))
	return base64.StdEncoding.EncodeToString(raw)
}

// DecompressFromBase64 is the inverse of CompressToBase64 (spec §6):
// decompress(utf16(base64Decode(input))).
func DecompressFromBase64(input string) string {
	filtered := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		if base64ValidByte[input[i]] {
			filtered = append(filtered, input[i])
		}
	}

	raw, err := base64.StdEncoding.DecodeString(string(filtered))
	if err != nil {
		// Permissive decode (spec §7): malformed base64 yields no usable
		// payload rather than a panic or propagated error.
		return ""
	}

	tagged := toUTF16(bytesToPseudoString(raw))
	return Decompress(tagged)
}
