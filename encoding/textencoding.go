// Package encoding has byte-level text helpers shared by the search engine
// and document implementations.
package encoding

import "docregex/search"

// HexDigit returns the value of c as a hexadecimal digit, or -1 if c is not
// a hexadecimal digit.
func HexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}

// DetectEOLMode sniffs the dominant end-of-line convention of raw text.
// Texts without any line ending, and ties, come out as LF.
func DetectEOLMode(text []byte) search.EOLMode {
	var lf, cr, crlf int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lf++
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				crlf++
				i++
			} else {
				cr++
			}
		}
	}

	if crlf > lf && crlf >= cr {
		return search.EOLModeCRLF
	}
	if cr > lf && cr > crlf {
		return search.EOLModeCR
	}
	return search.EOLModeLF
}
