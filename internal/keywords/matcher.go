// Package keywords provides lexical vocabulary matching against resume text.
package keywords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match partitions vocabulary into the entries found in text and the entries
// absent from it. Matching is case-insensitive and requires whole-word
// boundaries: an entry matches only where it is not embedded inside a longer
// word, and multi-word entries match only as a contiguous phrase. Duplicate
// vocabulary entries are collapsed; the two returned slices are disjoint,
// preserve vocabulary order, and together cover the deduplicated input.
func Match(text string, vocabulary []string) (matched, missing []string) {
	normalized := Normalize(text)
	matched = make([]string, 0, len(vocabulary))
	missing = make([]string, 0, len(vocabulary))

	seen := make(map[string]bool, len(vocabulary))
	for _, entry := range vocabulary {
		key := Normalize(entry)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		if containsWord(normalized, key) {
			matched = append(matched, key)
		} else {
			missing = append(missing, key)
		}
	}
	return matched, missing
}

// Count returns the number of whole-word occurrences of entry in text,
// case-insensitive. Used by category auto-detection.
func Count(text, entry string) int {
	normalized := Normalize(text)
	key := Normalize(entry)
	if key == "" {
		return 0
	}

	count := 0
	for start := 0; ; {
		idx := strings.Index(normalized[start:], key)
		if idx < 0 {
			break
		}
		abs := start + idx
		if hasBoundaries(normalized, abs, len(key)) {
			count++
		}
		start = abs + 1
	}
	return count
}

// Normalize lowercases s and collapses runs of whitespace to single spaces,
// so multi-word phrases compare contiguously regardless of line breaks.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// containsWord reports whether needle occurs in haystack with non-word
// runes (or string edges) on both sides.
func containsWord(haystack, needle string) bool {
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		abs := start + idx
		if hasBoundaries(haystack, abs, len(needle)) {
			return true
		}
		start = abs + 1
	}
}

// hasBoundaries checks that the match at [idx, idx+length) is not embedded
// inside a longer word. Punctuation adjacent to the match is a boundary.
func hasBoundaries(s string, idx, length int) bool {
	if idx > 0 {
		before, _ := utf8.DecodeLastRuneInString(s[:idx])
		if isWordRune(before) {
			return false
		}
	}
	if end := idx + length; end < len(s) {
		after, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(after) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
