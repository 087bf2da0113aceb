// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

import "strings"

// LZSSCompress runs the sliding-window compressor over input (spec §4.2) and
// returns a string drawn entirely from A. opts nil means DefaultLZSSOptions().
// If the running byte count would exceed opts.MaxBytes, it returns
// errBudgetExceeded (never a public sentinel; callers needing the dispatcher's
// budget-fallback behavior should use Compress instead).
func LZSSCompress(input string, opts *LZSSOptions) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	if opts == nil {
		opts = DefaultLZSSOptions()
	}

	preluded := []rune(prelude + input)
	offset := len([]rune(prelude))
	lastIndex := -1

	var outIdx []int
	budget := &byteBudget{max: opts.MaxBytes}
	chunkStart := 0
	exceeded := false

	emit1 := func(x int) {
		outIdx = append(outIdx, x)
		if budget.addRune(A.at(x)) {
			exceeded = true
		}
	}

	flushChunk := func(force bool) {
		if opts.OnData == nil {
			return
		}
		if force || len(outIdx)-chunkStart >= CompressChunkMax {
			if len(outIdx) > chunkStart {
				opts.OnData(indicesToString(outIdx[chunkStart:]))
				chunkStart = len(outIdx)
			}
		}
	}

	for offset < len(preluded) && !exceeded {
		length, dist := findMatch(preluded, offset)
		if length >= 2 {
			emitMatch(length, dist, emit1)
			offset += length
			lastIndex = -1
		} else {
			emitLiteral(preluded[offset], &lastIndex, emit1)
			offset++
		}
		flushChunk(false)
	}

	if exceeded {
		return "", errBudgetExceeded
	}

	flushChunk(true)
	if opts.OnEnd != nil {
		opts.OnEnd()
	}

	return indicesToString(outIdx), nil
}

// indicesToString maps a slice of alphabet indices through A into a string.
func indicesToString(idxs []int) string {
	var b strings.Builder
	b.Grow(len(idxs))
	for _, x := range idxs {
		b.WriteRune(A.at(x))
	}
	return b.String()
}

// findMatch searches D[winStart:offset] (winStart clamped to
// offset-WindowBufferMax) for the longest run that also matches
// D[offset:offset+maxLen], allowing the match to extend into the lookahead
// itself (self-overlapping runs, per the Design Notes run-length note).
// Ties prefer the smaller distance (most recent occurrence). Matches shorter
// than 2 are rejected (I2's lower bound on length).
func findMatch(d []rune, offset int) (length, distance int) {
	winStart := offset - WindowBufferMax
	if winStart < 0 {
		winStart = 0
	}

	maxLen := BufferMax
	if remaining := len(d) - offset; remaining < maxLen {
		maxLen = remaining
	}
	if maxLen < 2 {
		return 0, 0
	}

	bestLen, bestDist := 0, 0
	for start := winStart; start < offset; start++ {
		l := 0
		for l < maxLen && d[start+l] == d[offset+l] {
			l++
		}
		dist := offset - start
		if l > bestLen || (l == bestLen && dist < bestDist) {
			bestLen, bestDist = l, dist
		}
	}

	if bestLen < 2 {
		return 0, 0
	}
	return bestLen, bestDist
}

// emitLiteral encodes one code point as a LITERAL token (spec §4.2 LITERAL
// emission), coalescing the page-switch opcode with the previous literal's
// page via lastIndex.
func emitLiteral(c rune, lastIndex *int, emit1 func(int)) {
	if int(c) < latinBufferMax {
		c2 := int(c) / unicodeCharMax
		c1 := int(c) % unicodeCharMax
		index := latinIndex + c2
		if *lastIndex != index {
			emit1(index - latinIndexStart)
		}
		emit1(c1)
		*lastIndex = index
		return
	}

	c2 := int(c) / unicodeBufferMax
	rem := int(c) % unicodeBufferMax
	c4 := rem / unicodeCharMax
	c3 := rem % unicodeCharMax
	index := unicodeIndex + c2
	if *lastIndex != index {
		emit1(charStart)
		emit1(index - alphabetLen)
	}
	emit1(c3)
	emit1(c4)
	*lastIndex = index
}

// emitMatch encodes a back-reference token (spec §4.2 MATCH emission).
func emitMatch(length, distance int, emit1 func(int)) {
	c2 := distance / BufferMax
	c1 := distance % BufferMax
	if length == 2 {
		emit1(compressFixedStart + c2)
		emit1(c1)
		return
	}
	emit1(compressStart + c2)
	emit1(c1)
	emit1(length)
}
