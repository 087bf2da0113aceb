// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

// byteBudget accumulates a running UTF-8 byte count against an optional cap,
// the same running-accumulator shape the teacher uses for its checksum (sum
// one unit at a time, compare against a limit instead of a stored value).
type byteBudget struct {
	max   int // 0 means unbounded
	spent int
}

// addRune charges the budget for one code point's UTF-8 byte length and
// reports whether the budget is now exceeded.
func (b *byteBudget) addRune(c rune) bool {
	b.spent += runeUTF8Len(c)
	return b.max > 0 && b.spent > b.max
}

// addBytes charges the budget for n raw bytes (used by the LZW codec, which
// charges literal vs. code-emission costs directly per spec §4.4).
func (b *byteBudget) addBytes(n int) bool {
	b.spent += n
	return b.max > 0 && b.spent > b.max
}

// runeUTF8Len is the UTF-8 byte length of a single BMP/ASCII code unit under
// the 1/2/3-byte rule used throughout this package (spec §6 byteLength).
func runeUTF8Len(c rune) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0x800:
		return 2
	default:
		return 3
	}
}
