package rdf

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// sha256Hex returns the lowercase hex-encoded SHA-256 digest of data.
func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// sha256OfLines hashes the concatenation of lines with no separator. Lines
// produced by the N-Quads emitter are already newline-terminated, so the
// line boundaries are preserved in the hashed bytes.
func sha256OfLines(lines []string) string {
	var total int
	for _, l := range lines {
		total += len(l)
	}
	buf := make([]byte, 0, total)
	for _, l := range lines {
		buf = append(buf, l...)
	}
	return sha256Hex(buf)
}

// sortLines sorts lines in place in ascending lexicographic order of their
// UTF-8 bytes.
func sortLines(lines []string) {
	sort.Strings(lines)
}

// sortedKeys returns the keys of m in ascending lexicographic order of
// their UTF-8 bytes, which for the ASCII-only strings this package hashes
// and compares is equivalent to code-point order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
