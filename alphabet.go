// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

// excludedControls are the six control code points carved out of the printable
// range U+0000..U+007E to form the LZSS emission alphabet (see newAlphabet()).
var excludedControls = map[rune]struct{}{
	0x08: {}, // backspace
	0x0A: {}, // line feed
	0x0B: {}, // vertical tab
	0x0C: {}, // form feed
	0x0D: {}, // carriage return
	0x5C: {}, // backslash
}

// alphabetTable is the ordered printable alphabet A used by the LZSS compressor both
// as its emission alphabet and as the key space for its reverse index table.
type alphabetTable struct {
	chars   []rune       // A[i] -> code point
	reverse map[rune]int // code point -> i
}

// newAlphabet builds the table described by spec §3: every code point c with
// 0 <= c < 0x7F and c not in excludedControls, in ascending order.
func newAlphabet() *alphabetTable {
	t := &alphabetTable{reverse: make(map[rune]int, 0x7F)}
	for c := rune(0); c < 0x7F; c++ {
		if _, excluded := excludedControls[c]; excluded {
			continue
		}
		t.reverse[c] = len(t.chars)
		t.chars = append(t.chars, c)
	}
	return t
}

// at returns A[i]; callers must keep i within [0, len(chars)).
func (t *alphabetTable) at(i int) rune {
	return t.chars[i]
}

// index returns the alphabet index of c and whether c is a member of A.
func (t *alphabetTable) index(c rune) (int, bool) {
	i, ok := t.reverse[c]
	return i, ok
}

// len returns |A|.
func (t *alphabetTable) len() int {
	return len(t.chars)
}

// A is the single process-wide alphabet instance; every constant below that
// depends on the alphabet is computed from it at init time rather than
// hard-coded, so an implementation built against the same exclusion set
// reproduces it exactly.
var A = newAlphabet()

// Token-format constants (spec §3). The alphabet-dependent ones are computed
// from |A|; WindowMax, WindowBufferMax, latinCharMax and unicodeCharMax are
// fixed literals, and the rest are derived from those.
var (
	alphabetLen = A.len()

	tableDiff = maxInt(alphabetLen, 62) - minInt(alphabetLen, 62)

	// BufferMax is the radix of match-distance decomposition (§4.2 MATCH
	// emission) and bounds match length (I2: 2 <= length <= BufferMax).
	BufferMax = alphabetLen - 1

	// WindowMax is the sliding-window prelude length (§3 Sliding window).
	WindowMax = 1024

	// WindowBufferMax bounds match distance (I2: 1 <= distance <= WindowBufferMax).
	WindowBufferMax = 304

	latinCharMax    = 11
	latinBufferMax  = latinCharMax * 12 // 132
	unicodeCharMax  = 40
	unicodeBufferMax = unicodeCharMax * 41 // 1640

	latinIndex      = alphabetLen + 1
	latinIndexStart = tableDiff + 20
	unicodeIndex    = alphabetLen + 5

	decodeMax = alphabetLen - tableDiff - 19

	latinDecodeMax = unicodeCharMax + 7 // 47
	charStart      = latinDecodeMax + 1 // 48

	compressStart      = charStart + 1      // 49
	compressFixedStart = compressStart + 5  // 54
	compressIndex      = compressFixedStart + 5 // 59
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
