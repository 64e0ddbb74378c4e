// Package normalize provides the deterministic text normalizer used by the matcher
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 NFD decomposition then strip combining marks, so "René" matches "Rene"
// 3 NFKC compatibility composition (ligatures, fullwidth forms)
// 4 Case folding
// 5 Remove zero-width format chars, width fold fullwidth to ASCII
// 6 Collapse whitespace to single spaces and trim
//
// Unlike obfuscation-hunting normalizers there is no leetspeak folding here:
// profile needles are real names and terms, and folding digits would corrupt
// slugs like "oc-labs" or dates inside transcripts
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline: marks must be
		// stripped while decomposed, NFKC would compose e+U+0301 into U+00E9
		// before the Mn filter could see it
		return transform.Chain(
			norm.NFD,                           // split precomposed chars into base + marks
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			norm.NFKC,                          // compat composition for ligatures and fullwidth
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-5 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 6 collapse whitespace and trim
	ns = collapseSpaces(ns)

	return ns
}

// collapseSpaces converts whitespace runs to a single ASCII space, but preserves line breaks.
// Runs that contain any newline are collapsed to a single newline. Leading/trailing spaces/newlines are trimmed
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	sawNL := false
	flush := func() {
		if !inWS {
			return
		}
		if sawNL {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		inWS = false
		sawNL = false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			if r == '\n' || r == '\r' {
				sawNL = true
			}
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	out := b.String()
	out = strings.Trim(out, " \n\t\r")
	return out
}
