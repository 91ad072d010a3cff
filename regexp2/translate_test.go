package regexp2

import (
	"fmt"
	"strings"
	"testing"

	"docregex/search"
)

func TestTranslatePattern(t *testing.T) {
	// Arrange
	type testcase struct {
		pattern   string
		wholeWord bool
		wordStart bool
		expected  string
	}
	tests := []testcase{
		{"cat", false, false, "cat"},
		{"cat", true, false, `\bcat\b`},
		{"cat", false, true, `\bcat`},
		{"cat", true, true, `\bcat\b`},
		// The dot substitution is deliberately blunt: it rewrites dots
		// inside classes and escapes too.
		{"c.t", true, false, `\bc\wt\b`},
		{"c[.]t", true, false, `\bc[\w]t\b`},
		{`c\.t`, true, false, `\bc\\wt\b`},
		{"c.t", false, false, "c.t"},
	}

	// Act and assert
	var b strings.Builder
	for i, test := range tests {
		out := translatePattern(test.pattern, test.wholeWord, test.wordStart)
		if out != test.expected {
			fmt.Fprintf(&b, "Test %v, pattern %q. Expected: %q. Actual: %q\n", i+1, test.pattern, test.expected, out)
		}
	}

	if b.Len() > 0 {
		t.Fatalf("\n%s", b.String())
	}
}

func TestRewriteWordAssertions(t *testing.T) {
	// Arrange
	type testcase struct {
		pattern  string
		expected string
	}
	tests := []testcase{
		{`cat`, `cat`},
		{`\<cat`, `(?<!\w)(?=\w)cat`},
		{`cat\>`, `cat(?<=\w)(?!\w)`},
		{`\<cat\>`, `(?<!\w)(?=\w)cat(?<=\w)(?!\w)`},
		// An escaped backslash does not start an assertion.
		{`\\<cat`, `\\<cat`},
		{`a\nb`, `a\nb`},
	}

	// Act and assert
	var b strings.Builder
	for i, test := range tests {
		out := rewriteWordAssertions(test.pattern)
		if out != test.expected {
			fmt.Fprintf(&b, "Test %v, pattern %q. Expected: %q. Actual: %q\n", i+1, test.pattern, test.expected, out)
		}
	}

	if b.Len() > 0 {
		t.Fatalf("\n%s", b.String())
	}
}

func TestRewriteLineAnchors(t *testing.T) {
	// Arrange
	type testcase struct {
		pattern  string
		eolMode  search.EOLMode
		expected string
	}
	tests := []testcase{
		{`^abc$`, search.EOLModeLF, `^abc$`},
		{`^abc$`, search.EOLModeCR, `(?:\A|(?<=\r))abc(?:\z|(?=\r))`},
		{`^abc$`, search.EOLModeCRLF, `(?:\A|(?<=\r\n))abc(?:\z|(?=\r\n))`},
		// Anchors inside character classes and escaped anchors stay put.
		{`[^a]$`, search.EOLModeCR, `[^a](?:\z|(?=\r))`},
		{`\^a\$`, search.EOLModeCR, `\^a\$`},
		{`abc`, search.EOLModeCRLF, `abc`},
	}

	// Act and assert
	var b strings.Builder
	for i, test := range tests {
		out := rewriteLineAnchors(test.pattern, test.eolMode)
		if out != test.expected {
			fmt.Fprintf(&b, "Test %v, pattern %q mode %v. Expected: %q. Actual: %q\n", i+1, test.pattern, test.eolMode, test.expected, out)
		}
	}

	if b.Len() > 0 {
		t.Fatalf("\n%s", b.String())
	}
}

func TestResolveOptions(t *testing.T) {
	// Arrange, act
	base := resolveOptions(search.EOLModeLF, true, true, 0)
	ignoreCase := resolveOptions(search.EOLModeLF, false, true, 0)
	dotAll := resolveOptions(search.EOLModeLF, true, true, search.DotMatchAll)
	backward := resolveOptions(search.EOLModeLF, true, false, 0)
	crlf := resolveOptions(search.EOLModeCRLF, true, true, 0)

	// Assert
	if base != backward {
		t.Fatal("Direction must not be encoded into the matcher options")
	}
	if base == ignoreCase {
		t.Fatal("Case sensitivity must be encoded into the matcher options")
	}
	if base == dotAll {
		t.Fatal("DotMatchAll must be encoded into the matcher options")
	}
	if base == crlf {
		t.Fatal("EOL mode must be part of the effective option set")
	}
}
