package signal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWord reports whether r is considered a word character for boundary checks.
// Keep conservative, but be a bit more Unicode-friendly: letters, numbers,
// combining marks (Mn), and connector punctuation (Pc, e.g. underscore).
// Hyphen and most punctuation remain non-word
func isWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.In(r, unicode.Mn, unicode.Pc)
}

// boundaryOK reports whether [start,end) sits on word boundaries in s
func boundaryOK(s string, start, end int) bool {
	var prev, next rune
	if start > 0 {
		prev, _ = utf8.DecodeLastRuneInString(s[:start])
	}
	if end < len(s) {
		next, _ = utf8.DecodeRuneInString(s[end:])
	}
	return !isWord(prev) && !isWord(next)
}

// containsWord reports whether needle occurs in doc as a whole word.
// Scans successive occurrences until one lands on clean boundaries
func containsWord(doc, needle string) bool {
	off := 0
	for {
		i := strings.Index(doc[off:], needle)
		if i < 0 {
			return false
		}
		start := off + i
		end := start + len(needle)
		if boundaryOK(doc, start, end) {
			return true
		}
		off = start + 1
	}
}
