// Package runner drives whole-document find and replace operations on top
// of a single-match search engine, the way an editor's search loop would.
package runner

import (
	"github.com/rs/zerolog"

	"docregex/search"
)

// Job describes one find or find-and-replace operation.
type Job struct {
	Pattern       string
	Replacement   string
	CaseSensitive bool
	WholeWord     bool
	WordStart     bool
	DotMatchAll   bool
}

func (j Job) searchFlags() search.Flags {
	var flags search.Flags
	if j.DotMatchAll {
		flags |= search.DotMatchAll
	}
	return flags
}

// Match is one occurrence found by FindAll.
type Match struct {
	Pos    int
	Length int
}

// Runner applies jobs to documents. Engines come from the factory, one per
// operation, because an engine is single-caller state.
type Runner struct {
	logger        zerolog.Logger
	engineFactory search.EngineFactory
}

// New creates a Runner.
func New(logger zerolog.Logger, engineFactory search.EngineFactory) *Runner {
	return &Runner{
		logger:        logger,
		engineFactory: engineFactory,
	}
}

// FindAll enumerates every occurrence of the job's pattern in the document,
// front to back. Zero-length matches advance by one position so enumeration
// always terminates.
func (r *Runner) FindAll(doc search.Document, job Job) (matches []Match, err error) {
	engine := r.engineFactory.NewRegexSearch()

	docLen := doc.Length()
	start := 0
	for start <= docLen {
		pos, length := engine.FindText(doc, start, docLen, job.Pattern,
			job.CaseSensitive, job.WholeWord, job.WordStart, job.searchFlags())
		if pos < 0 {
			err = sentinelError(pos)
			return
		}

		matches = append(matches, Match{Pos: pos, Length: length})

		if length == 0 {
			start = pos + 1
		} else {
			start = pos + length
		}
	}

	return
}

// ReplaceAll produces a copy of the document with every occurrence of the
// job's pattern replaced by the expanded replacement template. It returns
// the new content and the number of replacements.
func (r *Runner) ReplaceAll(doc search.Document, job Job) (result []byte, count int, err error) {
	engine := r.engineFactory.NewRegexSearch()

	docLen := doc.Length()
	template := []byte(job.Replacement)

	result = make([]byte, 0, docLen)
	start := 0
	last := 0
	for start <= docLen {
		pos, length := engine.FindText(doc, start, docLen, job.Pattern,
			job.CaseSensitive, job.WholeWord, job.WordStart, job.searchFlags())
		if pos == search.NotFound {
			break
		}
		if pos < 0 {
			return nil, 0, sentinelError(pos)
		}

		expanded, serr := engine.SubstituteByPosition(doc, template)
		if serr != nil {
			return nil, 0, serr
		}

		result = append(result, doc.RangeBytes(last, pos-last)...)
		result = append(result, expanded...)
		count++
		last = pos + length

		if length == 0 {
			start = pos + 1
		} else {
			start = pos + length
		}
	}

	result = append(result, doc.RangeBytes(last, docLen-last)...)
	return
}

// sentinelError converts a negative FindText sentinel into an error. A plain
// not-found ends enumeration without error.
func sentinelError(pos int) error {
	switch pos {
	case search.NotFound:
		return nil
	case search.InvalidPattern:
		return search.ErrInvalidPattern
	default:
		return search.ErrSearchFailed
	}
}
