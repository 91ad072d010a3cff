package regexp2

import (
	rx "github.com/dlclark/regexp2"

	"docregex/search"
)

// Find is a one-shot forward match of pattern against an in-memory string
// rather than a document. It shares the engine's option resolution but
// compiles per call and supports no replacement. It returns the byte offset
// of the match start, or one of the search sentinels.
func Find(pattern, text string, caseSensitive bool, eolMode search.EOLMode) int {
	if pattern == "" || text == "" {
		return search.NotFound
	}

	opts := resolveOptions(eolMode, caseSensitive, true, 0)
	re, err := rx.Compile(rewriteLineAnchors(rewriteWordAssertions(pattern), eolMode), opts.rxOptions)
	if err != nil {
		return search.InvalidPattern
	}

	view := newRuneView([]byte(text))
	m, err := re.FindRunesMatchStartingAt(view.runes, 0)
	if err != nil {
		return search.RuntimeError
	}
	if m == nil {
		return search.NotFound
	}

	return view.byteIndex(m.Index)
}
