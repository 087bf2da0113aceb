// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

// Dispatcher tags (spec §2, §4.5). One of these is the first character of
// every value compress returns.
const (
	TagLZSS          = 'S' // sliding-window LZSS payload follows
	TagLZWASCII      = 'W' // LZW-over-ASCII payload follows
	TagLZWUTF8       = 'U' // LZW-over-UTF-8-transcoded payload follows
	TagNoCompression = 'N' // payload is the original input, unmodified
)

// LZW default parameters (spec §4.4, §4.5).
const (
	lzwASCIICodeStart = 0x7F
	lzwASCIICodeMax   = 0x7FF
	lzwUTF8CodeStart  = 0xFF
	lzwUTF8CodeMax    = 0xFFFF
)

// CompressChunkMax is the compressor's natural emission boundary, in output
// code points, between OnData callbacks (spec §5). It never changes the
// returned string; it only gates when OnData fires. The decompressor's
// matching chunk-and-compact boundary (spec §4.3) is a pure memory
// optimization the spec itself lists as out of scope, and LZSSDecompress
// builds its whole output buffer directly, so it has no counterpart here.
const CompressChunkMax = 4096
