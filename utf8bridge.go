// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

import "strings"

// byteLength counts the UTF-8 byte length of s under the 1/2/3-byte rule
// (spec §6 byteLength): 1 byte below U+0080, 2 below U+0800, 3 otherwise.
// Each code point is counted independently; surrogate-range values are not
// paired, matching the dispatcher's own accounting (spec §4.5).
func byteLength(s string) int {
	n := 0
	for _, c := range s {
		n += runeUTF8Len(c)
	}
	return n
}

// toUTF8 transcodes s into a string whose characters are individual byte
// values of s's per-code-point UTF-8 encoding (spec §6). Unlike Go's native
// UTF-8 codec, code units are never paired as surrogates: a value in
// [0x800, 0xFFFF], surrogate or not, always becomes a 3-byte sequence.
func toUTF8(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, c := range s {
		switch {
		case c < 0x80:
			b.WriteRune(c)
		case c < 0x800:
			b.WriteRune(0xC0 | (c >> 6))
			b.WriteRune(0x80 | (c & 0x3F))
		default:
			b.WriteRune(0xE0 | (c >> 12))
			b.WriteRune(0x80 | ((c >> 6) & 0x3F))
			b.WriteRune(0x80 | (c & 0x3F))
		}
	}
	return b.String()
}

// toUTF16 is the strict inverse of toUTF8 for well-formed sequences.
// Malformed sequences (a lead byte without enough continuation bytes, or a
// continuation byte not in [0x80,0xBF]) advance the cursor without emitting
// a code unit, per spec §6.
func toUTF16(s string) string {
	units := []rune(s)
	var b strings.Builder
	b.Grow(len(units))

	isCont := func(c rune) bool { return c >= 0x80 && c <= 0xBF }

	i := 0
	for i < len(units) {
		c0 := units[i]
		switch {
		case c0 < 0x80:
			b.WriteRune(c0)
			i++
		case c0&0xE0 == 0xC0:
			if i+1 < len(units) && isCont(units[i+1]) {
				b.WriteRune(((c0 & 0x1F) << 6) | (units[i+1] & 0x3F))
				i += 2
			} else {
				i++
			}
		case c0&0xF0 == 0xE0:
			if i+2 < len(units) && isCont(units[i+1]) && isCont(units[i+2]) {
				b.WriteRune(((c0 & 0x0F) << 12) | ((units[i+1] & 0x3F) << 6) | (units[i+2] & 0x3F))
				i += 3
			} else {
				i++
			}
		default:
			i++
		}
	}
	return b.String()
}
