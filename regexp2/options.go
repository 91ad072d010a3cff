package regexp2

import (
	rx "github.com/dlclark/regexp2"

	"docregex/search"
)

// compileOptions is the effective option set a pattern was compiled under.
// It is the comparable half of the compiled-pattern cache key; the other
// half is the effective pattern text.
// Sub-range anchoring needs no option bits: the matcher always sees the full
// document, so ^ and $ only ever match true line and document boundaries
// regardless of where the requested range starts or ends.
type compileOptions struct {
	rxOptions rx.RegexOptions
	eolMode   search.EOLMode
}

// resolveOptions maps the high-level search flags onto the matcher's option
// bitset.
//
// Fixed baseline: anchors match at line boundaries rather than only at the
// buffer start/end, extended (whitespace-insignificant) syntax stays off,
// and the matcher keeps its leftmost-first (not find-longest) behavior.
// Direction is deliberately not encoded: backward search is performed by
// enumeration in the range searcher, so flipping direction never invalidates
// the compiled pattern.
func resolveOptions(eolMode search.EOLMode, caseSensitive, forwardSearch bool, searchFlags search.Flags) compileOptions {
	opts := rx.RegexOptions(rx.Multiline)

	if searchFlags&search.DotMatchAll != 0 {
		opts |= rx.Singleline
	}

	if !caseSensitive {
		opts |= rx.IgnoreCase
	}

	return compileOptions{
		rxOptions: opts,
		eolMode:   eolMode,
	}
}
