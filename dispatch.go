// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

// Compress picks a codec by input shape and returns tag + payload, where tag
// is one of TagLZSS, TagLZWASCII, TagLZWUTF8, TagNoCompression (spec §4.5).
// It always succeeds: when no algorithm beats the no-compression fallback,
// the result is TagNoCompression + input.
func Compress(input string) string {
	if input == "" {
		return ""
	}

	u := byteLength(input)
	n := len([]rune(input))

	switch {
	case u == n:
		return compressASCII(input, u)
	case u > n && (u*9)/10 < n:
		return compressMixed(input, u)
	default:
		return compressUnicodeHeavy(input, u)
	}
}

// compressASCII handles the pure-ASCII path: LZW-ASCII, then LZSS, then N.
func compressASCII(input string, budget int) string {
	asciiOpts := &LZWOptions{CodeStart: lzwASCIICodeStart, CodeMax: lzwASCIICodeMax}
	if out, err := lzwEncode(input, asciiOpts, budget); err == nil {
		return string(TagLZWASCII) + out
	}
	if out, err := LZSSCompress(input, &LZSSOptions{MaxBytes: budget}); err == nil {
		return string(TagLZSS) + out
	}
	return string(TagNoCompression) + input
}

// compressMixed handles the mostly-ASCII-with-some-multibyte path: LZW over
// UTF-8-transcoded input, then LZSS on the original, then N.
func compressMixed(input string, budget int) string {
	utf8Opts := DefaultLZWOptions()
	if out, err := lzwEncode(toUTF8(input), utf8Opts, budget); err == nil {
		return string(TagLZWUTF8) + out
	}
	if out, err := LZSSCompress(input, &LZSSOptions{MaxBytes: budget}); err == nil {
		return string(TagLZSS) + out
	}
	return string(TagNoCompression) + input
}

// compressUnicodeHeavy handles the Unicode-heavy path: LZSS first, then LZW
// over UTF-8, then N. The LZW fallback is additionally rejected if its
// true UTF-8 byte length exceeds the original's.
func compressUnicodeHeavy(input string, budget int) string {
	if out, err := LZSSCompress(input, &LZSSOptions{MaxBytes: budget}); err == nil {
		return string(TagLZSS) + out
	}

	utf8Opts := DefaultLZWOptions()
	if out, err := lzwEncode(toUTF8(input), utf8Opts, budget); err == nil && byteLength(out) <= budget {
		return string(TagLZWUTF8) + out
	}

	return string(TagNoCompression) + input
}

// Decompress is the inverse of Compress: it dispatches on the first
// character and returns the input unchanged if the tag isn't recognized
// (spec §7c, UNKNOWN_TAG).
func Decompress(input string) string {
	if input == "" {
		return ""
	}

	runes := []rune(input)
	tag := runes[0]
	payload := string(runes[1:])

	switch tag {
	case TagLZSS:
		return LZSSDecompress(payload)
	case TagLZWASCII:
		return lzwDecode(payload, &LZWOptions{CodeStart: lzwASCIICodeStart, CodeMax: lzwASCIICodeMax})
	case TagLZWUTF8:
		return toUTF16(lzwDecode(payload, DefaultLZWOptions()))
	case TagNoCompression:
		return payload
	default:
		return input
	}
}

// CompressWithConfig is Compress with the dispatcher's public configuration
// knob (spec §6): cfg.Encoding must be "utf-8", the only value it's reserved
// for. cfg nil means DefaultConfig().
func CompressWithConfig(input string, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Encoding != "utf-8" {
		return "", ErrUnsupportedEncoding
	}
	return Compress(input), nil
}

// DecompressWithConfig is Decompress with the same configuration knob.
func DecompressWithConfig(input string, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Encoding != "utf-8" {
		return "", ErrUnsupportedEncoding
	}
	return Decompress(input), nil
}
