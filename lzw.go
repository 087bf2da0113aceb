// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzjs

package lzjs

import "strings"

// LZWCompress runs the code-point LZW codec over input (spec §4.4) with no
// byte budget. opts nil means DefaultLZWOptions(). Unlike the dispatcher's
// internal use of lzwEncode, direct callers get ErrEmptyInput on "" rather
// than a silent no-op.
func LZWCompress(input string, opts *LZWOptions) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	out, err := lzwEncode(input, opts, 0)
	if err == errBudgetExceeded {
		// unreachable with maxBytes == 0, kept for symmetry with lzwEncode's contract
		return "", err
	}
	return out, err
}

// LZWDecompress is the inverse of LZWCompress. opts nil means
// DefaultLZWOptions(); callers must pass the same options used to compress.
func LZWDecompress(input string, opts *LZWOptions) string {
	return lzwDecode(input, opts)
}

// lzwEncode is the classic LZW encoding loop (spec §4.4 Encoder) specialized
// to a code-point alphabet: the outbound dictionary maps accumulated strings
// to a single emission code point, and the running code counter is charged
// against maxBytes (0 = unbounded) using codeBytes accounting.
func lzwEncode(input string, opts *LZWOptions, maxBytes int) (string, error) {
	if input == "" {
		return "", nil
	}
	if opts == nil {
		opts = DefaultLZWOptions()
	}
	if opts.CodeMax <= opts.CodeStart {
		return "", ErrInvalidCodeRange
	}

	runes := []rune(input)
	dict := make(map[string]rune)
	code := opts.CodeStart + 1
	budget := &byteBudget{max: maxBytes}

	var out strings.Builder

	codeBytes := func() int {
		if code < 0x800 {
			return 2
		}
		return 3
	}

	// emit writes the code for w: the character itself if w was never
	// extended into a dictionary entry, otherwise its assigned code point.
	emit := func(w string) bool {
		if len([]rune(w)) == 1 {
			out.WriteRune([]rune(w)[0])
			return budget.addBytes(1)
		}
		out.WriteRune(dict[w])
		return budget.addBytes(codeBytes())
	}

	w := string(runes[0])
	for i := 1; i < len(runes); i++ {
		wc := w + string(runes[i])
		if _, ok := dict[wc]; ok {
			w = wc
			continue
		}

		if emit(w) {
			return "", errBudgetExceeded
		}
		if code <= opts.CodeMax {
			dict[wc] = rune(code)
			code++
		}
		w = string(runes[i])
	}
	if emit(w) {
		return "", errBudgetExceeded
	}

	return out.String(), nil
}

// lzwDecode is the inverse of lzwEncode, including the classic KwKwK special
// case (spec §4.4 Decoder). It never grows the literal/code boundary beyond
// the configured codeStart, matching the encoder's frozen-dictionary policy
// once code exceeds codeMax (I4).
func lzwDecode(input string, opts *LZWOptions) string {
	if input == "" {
		return ""
	}
	if opts == nil {
		opts = DefaultLZWOptions()
	}

	runes := []rune(input)
	codeStart := opts.CodeStart
	code := codeStart + 1
	dict := make(map[rune]string)

	prev := string(runes[0])
	ch := runes[0]

	var out strings.Builder
	out.WriteString(prev)

	for i := 1; i < len(runes); i++ {
		c := runes[i]

		var buffer string
		switch {
		case int(c) <= codeStart:
			buffer = string(c)
		default:
			if s, ok := dict[c]; ok {
				buffer = s
			} else {
				buffer = prev + string(ch)
			}
		}

		out.WriteString(buffer)

		ch = []rune(buffer)[0]
		dict[rune(code)] = prev + string(ch)
		code++
		prev = buffer
	}

	return out.String()
}
