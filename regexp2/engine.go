// Package regexp2 adapts the dlclark/regexp2 backtracking matcher to the
// search contract of package search: ranged forward/backward document
// search, whole-word and word-start anchoring, LF/CR/CRLF end-of-line
// conventions, and template-based substitution with backreferences.
package regexp2

import (
	"time"

	rx "github.com/dlclark/regexp2"
	"github.com/rs/zerolog"

	"docregex/search"
)

// Engine implements the search.RegexSearch interface.
//
// An Engine carries mutable cross-call state: the compiled-pattern cache,
// the region of the last match and the last substitution buffer. It is meant
// for a single caller; concurrent use requires external locking or one
// engine per goroutine.
type Engine struct {
	logger zerolog.Logger

	// Compiled-pattern cache: the program plus the effective pattern text
	// and option set it was built from.
	patternStrg string
	cmplOptions compileOptions
	re          *rx.Regexp

	region   Region
	matchPos int
	matchLen int

	substBuffer []byte

	// Zero means unbounded backtracking.
	matchTimeout time.Duration

	recompiles int
}

// NewEngine creates a search engine. The logger is only used at debug level
// for compile and search diagnostics.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{
		logger:   logger,
		matchPos: search.NotFound,
	}
}

// SetMatchTimeout bounds a single match attempt. Zero restores the default
// unbounded behavior. A search that hits the timeout reports the
// RuntimeError sentinel.
func (e *Engine) SetMatchTimeout(d time.Duration) {
	e.matchTimeout = d
	if e.re != nil {
		e.re.MatchTimeout = d
	}
}

// Region returns the group boundaries recorded by the most recent search.
func (e *Engine) Region() Region {
	return e.region
}

// FindText searches doc for pattern within [minPos, maxPos), backward when
// minPos > maxPos. It returns the match start position and length, or one of
// the search sentinels with a zero length.
func (e *Engine) FindText(doc search.Document, minPos, maxPos int, pattern string,
	caseSensitive, word, wordStart bool, searchFlags search.Flags) (pos, length int) {
	if pattern == "" {
		return search.NotFound, 0
	}

	docLen := doc.Length()
	eolMode := doc.EOLMode()

	findForward := minPos <= maxPos
	increment := 1
	if !findForward {
		increment = -1
	}

	// Range endpoints must not split a multi-byte character.
	minPos = doc.MovePositionOutsideChar(minPos, increment)
	maxPos = doc.MovePositionOutsideChar(maxPos, increment)
	if !findForward {
		minPos = doc.MovePositionOutsideChar(minPos-1, increment)
	}

	rangeBeg, rangeEnd := minPos, maxPos
	if !findForward {
		rangeBeg, rangeEnd = maxPos, minPos
	}

	opts := resolveOptions(eolMode, caseSensitive, findForward, searchFlags)

	effectivePattern := translatePattern(pattern, word, wordStart)

	if e.re == nil || e.cmplOptions != opts || e.patternStrg != effectivePattern {
		if err := e.recompile(effectivePattern, opts); err != nil {
			e.logger.Debug().Err(err).Str("pattern", effectivePattern).Msg("Regex pattern failed to compile")
			return search.InvalidPattern, 0
		}
	}

	e.matchPos = search.NotFound
	e.matchLen = 0
	e.region = Region{}

	// The matcher gets the full document as its subject so lookaround can
	// see outside the requested range; the range only bounds where a match
	// may start.
	view := newRuneView(doc.RangeBytes(0, docLen))

	m, err := e.searchRange(view, rangeBeg, rangeEnd, findForward)
	if err != nil {
		e.logger.Debug().Err(err).Msg("Regex engine failed during search")
		return search.RuntimeError, 0
	}
	if m == nil {
		return search.NotFound, 0
	}

	e.region = newRegion(m, view)
	e.matchPos = e.region.Begin(0)
	e.matchLen = e.region.End(0) - e.region.Begin(0)

	return e.matchPos, e.matchLen
}

// recompile replaces the cached program. The cache key is stored before the
// build so a failed compile leaves no usable program behind, and the next
// search attempts a fresh compile.
func (e *Engine) recompile(pattern string, opts compileOptions) error {
	e.recompiles++
	e.patternStrg = pattern
	e.cmplOptions = opts
	e.re = nil

	text := rewriteLineAnchors(rewriteWordAssertions(pattern), opts.eolMode)
	re, err := rx.Compile(text, opts.rxOptions)
	if err != nil {
		return err
	}
	if e.matchTimeout > 0 {
		re.MatchTimeout = e.matchTimeout
	}

	e.re = re
	return nil
}

// searchRange runs the match attempt over [rangeBeg, rangeEnd] byte offsets.
// Forward search returns the first match starting in range. Backward search
// enumerates forward and keeps the last match starting in range, so both
// directions see the same occurrences and differ only in which one they
// return first.
func (e *Engine) searchRange(view *runeView, rangeBeg, rangeEnd int, findForward bool) (*rx.Match, error) {
	m, err := e.re.FindRunesMatchStartingAt(view.runes, view.runeIndex(rangeBeg))
	if err != nil || m == nil {
		return nil, err
	}

	if findForward {
		if view.byteIndex(m.Index) > rangeEnd {
			return nil, nil
		}
		return m, nil
	}

	var last *rx.Match
	for m != nil && view.byteIndex(m.Index) <= rangeEnd {
		last = m
		m, err = e.re.FindNextMatch(m)
		if err != nil {
			return nil, err
		}
	}
	return last, nil
}

// Region is the ordered set of byte-offset group boundaries produced by one
// match: index 0 is the whole match, indices 1..N the capture groups in
// declaration order. Groups that did not participate hold -1.
type Region struct {
	beg []int
	end []int
}

func newRegion(m *rx.Match, view *runeView) Region {
	n := m.GroupCount()
	r := Region{
		beg: make([]int, n),
		end: make([]int, n),
	}
	for i := 0; i < n; i++ {
		g := m.GroupByNumber(i)
		if g == nil || len(g.Captures) == 0 {
			r.beg[i], r.end[i] = -1, -1
			continue
		}
		r.beg[i] = view.byteIndex(g.Index)
		r.end[i] = view.byteIndex(g.Index + g.Length)
	}
	return r
}

// Count returns the number of groups including group 0; zero when no match
// is recorded.
func (r Region) Count() int {
	return len(r.beg)
}

// Begin returns the byte offset where group i starts, or -1 if the group did
// not participate in the match.
func (r Region) Begin(i int) int {
	return r.beg[i]
}

// End returns the byte offset just past group i, or -1 if the group did not
// participate in the match.
func (r Region) End(i int) int {
	return r.end[i]
}
