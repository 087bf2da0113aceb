// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

// symbolReader walks a compressed LZSS string one alphabet index at a time,
// silently skipping any rune that isn't a member of A (spec §9: permissive
// decode lets a caller wrap payloads in harmless whitespace). It replaces
// the teacher's byte-oriented sliceByteReader/countingByteReader with the
// same read-one-unit-and-advance shape, specialized to alphabet symbols.
type symbolReader struct {
	data []rune // the compressed string, as code points
	pos  int    // current read position in data
}

// newSymbolReader wraps s for sequential symbol reads.
func newSymbolReader(s string) *symbolReader {
	return &symbolReader{data: []rune(s)}
}

// next returns the alphabet index of the next in-alphabet symbol, advancing
// past it and any skipped out-of-alphabet runes. ok is false once the input
// is exhausted without finding one.
func (r *symbolReader) next() (index int, ok bool) {
	for r.pos < len(r.data) {
		c := r.data[r.pos]
		r.pos++
		if idx, member := A.index(c); member {
			return idx, true
		}
	}
	return 0, false
}
