// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

import "strings"

// buildPrelude constructs the deterministic 1024-character sliding-window
// prelude (spec §3): for each lowercase Latin letter c in order, iterate c2
// from 'z' down to the letter at index 16 ('q'), appending the 4-character
// unit " c c2" (space, c, space, c2) until the accumulator reaches 1024
// characters; then left-pad with spaces to exactly 1024.
//
// Both the compressor and the decompressor call this exact function so the
// initial window content never drifts between the two sides.
func buildPrelude() string {
	const target = 1024
	var b strings.Builder
	b.Grow(target + 4)

outer:
	for c := 'a'; c <= 'z'; c++ {
		for c2 := 'z'; c2 >= 'a'+16; c2-- {
			b.WriteByte(' ')
			b.WriteRune(c)
			b.WriteByte(' ')
			b.WriteRune(c2)
			if b.Len() >= target {
				break outer
			}
		}
	}

	s := b.String()
	if len(s) > target {
		s = s[len(s)-target:]
	}
	if len(s) < target {
		s = strings.Repeat(" ", target-len(s)) + s
	}
	return s
}

// prelude is the process-wide window prelude, built once at package
// initialization and shared by every compress/decompress call.
var prelude = buildPrelude()
