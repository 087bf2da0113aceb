/*
Package lzjs implements a text-native compression codec that turns an
arbitrary BMP Unicode string into a shorter printable string and back,
losslessly. It combines a sliding-window LZSS variant with a code-point LZW
variant behind a heuristic dispatcher that tags every payload with the
algorithm used to produce it.

Format: Compress returns tag + payload, where tag is one of:

  - 'S': sliding-window LZSS (see LZSSCompress/LZSSDecompress)
  - 'W': LZW over the ASCII code-point range (see LZWCompress/LZWDecompress)
  - 'U': LZW over a UTF-8-transcoded intermediate string
  - 'N': no compression; payload is the input verbatim

The dispatcher chooses by input shape: pure ASCII tries LZW first, mostly-ASCII
input tries LZW over a UTF-8 transcoding first, and Unicode-heavy input tries
LZSS first. Each falls back to the next algorithm when it would exceed the
original input's UTF-8 byte length, and ultimately falls back to 'N'. Compress
never fails.

The LZSS compressor emits symbols drawn from a derived ~120-character
printable alphabet (the printable subset of U+0000..U+007E with six control
characters excluded); every alphabet-dependent constant governing its token
format is computed from that alphabet's length rather than hard-coded (the
window sizes and page sizes are fixed numbers), so two implementations
built against the same exclusion set produce byte-identical output. Both
compressor and decompressor seed a 1024-character sliding window with the
same deterministic prelude string.

# Examples

Compress and decompress:

	out := lzjs.Compress("abracadabra abracadabra abracadabra")
	back := lzjs.Decompress(out)
	// back == the original string

Base64 round trip (for transport as an opaque token):

	token := lzjs.CompressToBase64(input)
	back := lzjs.DecompressFromBase64(token)

Streaming with OnData (purely observational; the returned string is the
same with or without it):

	var chunks []string
	opts := &lzjs.LZSSOptions{OnData: func(c string) { chunks = append(chunks, c) }}
	enc, err := lzjs.LZSSCompress(input, opts)

Custom LZW code range:

	opts := &lzjs.LZWOptions{CodeStart: 0x100, CodeMax: 0xFFFF}
	enc, err := lzjs.LZWCompress(input, opts)
	dec := lzjs.LZWDecompress(enc, opts)
*/
package lzjs
