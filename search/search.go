// Package search holds the contracts between a host editor and a document
// regex search engine, such as the one implemented in package regexp2.
package search

import "errors"

// Sentinel return values of RegexSearch.FindText and Find. Anything
// non-negative is a match position. The three negative values must stay
// distinguishable: a host reacts differently to "nothing found", "the user
// typed a broken pattern" and "the engine itself failed".
const (
	// NotFound means the pattern is valid but did not match in the range.
	NotFound = -1
	// InvalidPattern means the pattern did not compile.
	InvalidPattern = -2
	// RuntimeError means the matcher failed while searching.
	RuntimeError = -3
)

// ErrNoMatch is returned by SubstituteByPosition when no successful search
// preceded the substitution.
var ErrNoMatch = errors.New("no match available for substitution")

// ErrInvalidPattern and ErrSearchFailed are the error forms of the
// InvalidPattern and RuntimeError sentinels, used by callers that enumerate
// matches rather than relay single positions.
var (
	ErrInvalidPattern = errors.New("invalid search pattern")
	ErrSearchFailed   = errors.New("regex engine failed during search")
)

// Flags is a bitmask of auxiliary search flags passed to FindText.
type Flags int

// DotMatchAll makes the any-character metacharacter also match line endings.
// It is currently the only defined flag.
const DotMatchAll Flags = 1 << 0

// EOLMode is the end-of-line convention of a document. The engine compiles a
// pattern variant tuned to the convention so that line anchors match around
// the right byte sequences.
type EOLMode int

// The supported end-of-line conventions.
const (
	EOLModeLF EOLMode = iota
	EOLModeCR
	EOLModeCRLF
)

func (m EOLMode) String() string {
	switch m {
	case EOLModeCR:
		return "CR"
	case EOLModeCRLF:
		return "CRLF"
	default:
		return "LF"
	}
}

// Sequence returns the line ending bytes of the convention.
func (m EOLMode) Sequence() string {
	switch m {
	case EOLModeCR:
		return "\r"
	case EOLModeCRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// Document is the narrow view of a text buffer that the search engine needs.
// The buffer is borrowed read-only for the duration of a FindText or
// SubstituteByPosition call and is never copied wholesale.
type Document interface {
	// Length returns the total addressable length in bytes.
	Length() int

	// RangeBytes returns a contiguous read-only view of the given
	// sub-range. The document must produce such a view even if its internal
	// storage is fragmented. The slice is only valid for the duration of
	// the current engine call and must not be modified.
	RangeBytes(pos, length int) []byte

	// MovePositionOutsideChar nudges pos in the direction of moveDir until
	// it no longer splits a multi-byte character.
	MovePositionOutsideChar(pos, moveDir int) int

	// EOLMode returns the configured end-of-line convention.
	EOLMode() EOLMode
}

// RegexSearch is the host-defined search contract implemented by one
// concrete engine type. Implementations carry mutable cross-call state (the
// compiled-pattern cache, the last match region, the last substitution
// buffer) and are not safe for concurrent use without external locking.
type RegexSearch interface {
	// FindText searches doc for pattern within [minPos, maxPos). Passing
	// minPos > maxPos searches backward. It returns the match start
	// position and the match length, or one of the NotFound,
	// InvalidPattern or RuntimeError sentinels with a zero length.
	FindText(doc Document, minPos, maxPos int, pattern string,
		caseSensitive, word, wordStart bool, searchFlags Flags) (pos, length int)

	// SubstituteByPosition expands the replacement template against the
	// most recent successful match, copying captured group ranges out of
	// doc. The returned bytes are owned by the engine and valid until the
	// next substitution. Returns ErrNoMatch when no match is cached.
	SubstituteByPosition(doc Document, template []byte) ([]byte, error)
}

// EngineFactory creates RegexSearch engines. This makes mocking possible
// when testing, and lets concurrent callers create one engine each.
type EngineFactory interface {
	NewRegexSearch() RegexSearch
}
