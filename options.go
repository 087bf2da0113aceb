// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

// LZSSOptions configures the LZSS compressor (spec §4.2, §5, §6).
type LZSSOptions struct {
	// MaxBytes caps the running UTF-8 byte count of the emitted payload; if
	// exceeded the compressor returns errBudgetExceeded. 0 means unbounded.
	MaxBytes int
	// OnData, if set, is called with each produced chunk as compression
	// proceeds. A chunk is handed over once it reaches CompressChunkMax code
	// points, so it can exceed that by the few symbols of one token. Purely
	// observational: the final returned string never depends on it.
	OnData func(chunk string)
	// OnEnd, if set, is called once after the final chunk has been handed
	// to OnData (or immediately, if OnData was never invoked).
	OnEnd func()
}

// DefaultLZSSOptions returns options with no byte budget and no callbacks.
func DefaultLZSSOptions() *LZSSOptions {
	return &LZSSOptions{}
}

// LZWOptions configures the LZW codec (spec §4.4, §6).
type LZWOptions struct {
	// CodeStart is the highest literal code point; code points at or below
	// CodeStart are always literals, and the dictionary allocates codes from
	// CodeStart+1 upward. Must cover every literal code point that can
	// appear in the input (spec §4.4).
	CodeStart int
	// CodeMax caps the dictionary; once the running code counter exceeds
	// CodeMax the dictionary is frozen (I4).
	CodeMax int
}

// DefaultLZWOptions returns the byte-range defaults (codeStart 0xFF,
// codeMax 0xFFFF): every byte value is a literal. The dispatcher's 'U'
// (LZW over UTF-8) path uses them, as do the public LZW entry points when
// opts is nil.
func DefaultLZWOptions() *LZWOptions {
	return &LZWOptions{CodeStart: lzwUTF8CodeStart, CodeMax: lzwUTF8CodeMax}
}

// Config holds top-level dispatcher configuration (spec §6).
type Config struct {
	// Encoding is reserved; the only accepted value is "utf-8".
	Encoding string
}

// DefaultConfig returns the dispatcher's only supported configuration.
func DefaultConfig() *Config {
	return &Config{Encoding: "utf-8"}
}
