// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

// LZSSDecompress is the inverse of LZSSCompress (spec §4.3). Input is
// assumed well-formed; symbols not in A are silently skipped, and truncated
// multi-symbol opcodes simply stop decoding (spec §7d: no exception).
func LZSSDecompress(compressed string) string {
	r := newSymbolReader(compressed)
	buf := []rune(prelude)

	index := 0
	haveIndex := false
	out := false // false = Latin mode, true = Unicode mode

loop:
	for {
		s, ok := r.next()
		if !ok {
			break
		}

		switch {
		case s < decodeMax:
			if !out {
				pageIndex := 0
				if haveIndex {
					pageIndex = index
				}
				buf = append(buf, rune(pageIndex*unicodeCharMax+s))
				continue
			}
			c3, found := r.next()
			if !found {
				break loop
			}
			pageIndex := 0
			if haveIndex {
				pageIndex = index
			}
			buf = append(buf, rune(c3*unicodeCharMax+s+unicodeBufferMax*pageIndex))

		case s < latinDecodeMax:
			index = s - decodeMax
			haveIndex = true
			out = false

		case s == charStart:
			c2, found := r.next()
			if !found {
				break loop
			}
			index = c2 - 5
			haveIndex = true
			out = true

		case s >= compressStart && s < compressIndex:
			c2, found := r.next()
			if !found {
				break loop
			}

			var length, pos int
			if s < compressFixedStart {
				lengthSym, found2 := r.next()
				if !found2 {
					break loop
				}
				length = lengthSym
				pos = (s-compressStart)*BufferMax + c2
			} else {
				length = 2
				pos = (s-compressFixedStart)*BufferMax + c2
			}

			buf = appendMatchCopy(buf, pos, length)
			haveIndex = false

		default:
			// Alphabet slot with no assigned opcode meaning (spec §4.2
			// opcode map leaves gaps); the compressor never emits one, so
			// treat it as a no-op rather than panicking (spec §7d).
		}
	}

	return string(buf[WindowMax:])
}

// appendMatchCopy implements the LZ77 self-overlapping run-length copy
// described in the Design Notes: take the window's last WindowBufferMax
// code points, then the last pos of those, then repeat that tail cyclically
// until length code points have been produced, and append them.
func appendMatchCopy(buf []rune, pos, length int) []rune {
	windowLen := WindowBufferMax
	if windowLen > len(buf) {
		windowLen = len(buf)
	}
	window := buf[len(buf)-windowLen:]

	tailLen := pos
	if tailLen > len(window) {
		tailLen = len(window)
	}
	if tailLen <= 0 {
		return buf
	}
	tail := window[len(window)-tailLen:]

	if length <= len(tail) {
		return append(buf, tail[:length]...)
	}

	sub := make([]rune, 0, length)
	for len(sub) < length {
		sub = append(sub, tail...)
	}
	return append(buf, sub[:length]...)
}
