// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

import "errors"

// Sentinel errors for the package, all plain errors.New since none of them
// carry a dynamic value. None cross the public Compress/Decompress boundary
// (spec §7: the dispatcher is permissive end-to-end); they surface only when
// a caller reaches for a sub-codec or a stricter entry point directly.
var (
	// errBudgetExceeded is the internal BUDGET_EXCEEDED signal (spec §7a).
	// It never escapes the package; the dispatcher catches it and falls
	// back to the next algorithm, ultimately to TagNoCompression.
	errBudgetExceeded = errors.New("lzjs: byte budget exceeded")

	// ErrEmptyInput is returned by LZWCompress and LZSSCompress when called
	// directly on an empty string (the top-level Compress/Decompress instead
	// special-case empty input per spec §7b and never reach this error).
	ErrEmptyInput = errors.New("lzjs: empty input")

	// ErrInvalidCodeRange is returned when LZWOptions specifies a codeMax
	// at or below codeStart.
	ErrInvalidCodeRange = errors.New("lzjs: codeMax must be greater than codeStart")

	// ErrUnsupportedEncoding is returned by CompressWithConfig/DecompressWithConfig
	// when Config.Encoding isn't "utf-8", the only value spec §6 reserves it for.
	ErrUnsupportedEncoding = errors.New("lzjs: unsupported encoding")
)
