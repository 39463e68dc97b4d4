package compressor

// CompressFilename derives the "compressed" form of an accepted input
// used to name its trace file: each distinct non-whitespace character
// of input is emitted once, followed by its frequency, in the order it
// is first seen. Spaces and tabs are skipped here and never enter the
// frequency map, so input may be passed as typed; it is expected not to
// carry the `$` end marker. This matches the original tool's
// compress_name, which only ever saw the space-free token stream.
func CompressFilename(input string) string {
	order := make([]rune, 0, len(input))
	freq := map[rune]int{}
	for _, r := range input {
		if r == ' ' || r == '\t' {
			continue
		}
		if _, seen := freq[r]; !seen {
			order = append(order, r)
		}
		freq[r]++
	}

	out := make([]byte, 0, len(order)*2)
	for _, r := range order {
		out = append(out, string(r)...)
		out = appendInt(out, freq[r])
	}
	return string(out)
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	// digits were appended least-significant-first; reverse them.
	end := len(b) - 1
	for start < end {
		b[start], b[end] = b[end], b[start]
		start++
		end--
	}
	return b
}
