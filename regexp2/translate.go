package regexp2

import (
	"strings"

	"docregex/search"
)

// translatePattern rewrites a user pattern for whole-word or word-start
// matching: a word-boundary assertion is prepended (and appended for whole
// word), and every literal `.` becomes a word-character class.
//
// The `.` substitution is a blunt global textual replace, not a parse-aware
// rewrite: a dot inside a character class or behind a backslash is rewritten
// too. Callers depend on exactly this behavior.
func translatePattern(pattern string, wholeWord, wordStart bool) string {
	if !wholeWord && !wordStart {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + 4)
	b.WriteString(`\b`)
	b.WriteString(pattern)
	if wholeWord {
		b.WriteString(`\b`)
	}

	return strings.ReplaceAll(b.String(), ".", `\w`)
}

// rewriteWordAssertions expands the `\<` and `\>` word-begin/word-end
// assertions of the extended syntax dialect into lookaround equivalents the
// matcher understands. Escaped backslashes are respected.
func rewriteWordAssertions(pattern string) string {
	if !strings.Contains(pattern, `\<`) && !strings.Contains(pattern, `\>`) {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + 16)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '\\' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}
		switch pattern[i+1] {
		case '<':
			b.WriteString(`(?<!\w)(?=\w)`)
		case '>':
			b.WriteString(`(?<=\w)(?!\w)`)
		default:
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
		}
		i++
	}

	return b.String()
}

// Line anchor replacements per end-of-line convention. The matcher's native
// ^ and $ only know single \n line endings; for CR and CRLF documents the
// anchors are rewritten into lookaround forms around the convention's byte
// sequence.
var (
	crLineBegin   = `(?:\A|(?<=\r))`
	crLineEnd     = `(?:\z|(?=\r))`
	crlfLineBegin = `(?:\A|(?<=\r\n))`
	crlfLineEnd   = `(?:\z|(?=\r\n))`
)

// rewriteLineAnchors produces the end-of-line-aware variant of a pattern.
// Anchors inside character classes and escaped anchors are left alone.
func rewriteLineAnchors(pattern string, eolMode search.EOLMode) string {
	if eolMode == search.EOLModeLF {
		return pattern
	}

	lineBegin, lineEnd := crLineBegin, crLineEnd
	if eolMode == search.EOLModeCRLF {
		lineBegin, lineEnd = crlfLineBegin, crlfLineEnd
	}

	var b strings.Builder
	b.Grow(len(pattern) + 32)
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
			i++
			continue
		}
		if inClass {
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
			continue
		}
		switch c {
		case '[':
			inClass = true
			b.WriteByte(c)
		case '^':
			b.WriteString(lineBegin)
		case '$':
			b.WriteString(lineEnd)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
