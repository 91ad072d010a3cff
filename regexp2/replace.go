package regexp2

import (
	"unicode/utf8"

	"docregex/encoding"
	"docregex/search"
)

// SubstituteByPosition expands a replacement template against the most
// recent successful match. Positional references ($N or \N), named
// references (${name} or $+{name}) and escaped metacharacters ($$, \\) are
// interpreted; group content is copied straight out of doc, so the template
// must be expanded against the same document the match was found in.
//
// The returned slice is owned by the engine and valid until the next
// substitution. Embedded zero bytes are preserved.
func (e *Engine) SubstituteByPosition(doc search.Document, template []byte) ([]byte, error) {
	if e.matchPos < 0 {
		return nil, search.ErrNoMatch
	}

	raw := expandEscapes(template)

	buf := e.substBuffer[:0]
	for j := 0; j < len(raw); j++ {
		c := raw[j]
		if c != '$' && c != '\\' {
			buf = append(buf, c)
			continue
		}

		if j+1 < len(raw) && isDigit(raw[j+1]) {
			// Two-digit group references only exist when the match
			// actually has more than 10 groups; otherwise a lone digit is
			// always a one-digit index.
			twoDigit := j+2 < len(raw) && isDigit(raw[j+2]) && e.region.Count() > 10
			grp := int(raw[j+1] - '0')
			j++
			if twoDigit {
				grp = grp*10 + int(raw[j+1]-'0')
				j++
			}
			if grp < e.region.Count() {
				buf = e.appendGroup(buf, doc, grp)
			}
			continue
		}

		if c == '$' {
			k := 0
			switch {
			case j+2 < len(raw) && raw[j+1] == '+' && raw[j+2] == '{':
				k = j + 3
			case j+1 < len(raw) && raw[j+1] == '{':
				k = j + 2
			}
			if k > 0 {
				nameBeg := k
				for k < len(raw) && isAlnum(raw[k]) {
					k++
				}
				if k < len(raw) && raw[k] == '}' {
					// Unresolved or out-of-range names contribute nothing.
					if grp := e.groupNumber(string(raw[nameBeg:k])); grp >= 0 && grp < e.region.Count() {
						buf = e.appendGroup(buf, doc, grp)
					}
					j = k
					continue
				}
			}

			// $$ collapses to a single literal dollar.
			if j+1 < len(raw) && raw[j+1] == '$' {
				j++
			}
			buf = append(buf, raw[j])
			continue
		}

		// \$ and \\ collapse to a single literal.
		if j+1 < len(raw) && (raw[j+1] == '$' || raw[j+1] == '\\') {
			j++
		}
		buf = append(buf, raw[j])
	}

	e.substBuffer = buf
	return buf, nil
}

func (e *Engine) appendGroup(dst []byte, doc search.Document, grp int) []byte {
	beg := e.region.Begin(grp)
	end := e.region.End(grp)
	if beg < 0 || end <= beg {
		return dst
	}
	return append(dst, doc.RangeBytes(beg, end-beg)...)
}

// groupNumber resolves a group name through the compiled pattern's name
// table, -1 when unknown.
func (e *Engine) groupNumber(name string) int {
	if e.re == nil {
		return -1
	}
	return e.re.GroupNumberFromName(name)
}

// expandEscapes pre-expands the C-style escape sequences of a replacement
// template into literal bytes, leaving the backreference tokens for the
// scanner above. \1..\9 are rewritten to the $N reference syntax (legacy
// alias), \\ stays doubled so the reference scanner still collapses it, and
// \xHH / \uHHHH decode a character value re-encoded as UTF-8.
func expandEscapes(template []byte) []byte {
	out := make([]byte, 0, len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(template) {
			out = append(out, '\\')
			break
		}
		c = template[i]
		switch {
		case c >= '1' && c <= '9':
			out = append(out, '$', c)
		case c == 'a':
			out = append(out, '\a')
		case c == 'b':
			// \b expands to ESC, not backspace. Callers depend on it.
			out = append(out, 0x1B)
		case c == 'f':
			out = append(out, '\f')
		case c == 'n':
			out = append(out, '\n')
		case c == 'r':
			out = append(out, '\r')
		case c == 't':
			out = append(out, '\t')
		case c == 'v':
			out = append(out, '\v')
		case c == '\\':
			out = append(out, '\\', '\\')
		case c == 'x' || c == 'u':
			maxDigits := 2
			if c == 'u' {
				maxDigits = 4
			}
			val, digits := 0, 0
			for digits < maxDigits && i+1 < len(template) {
				h := encoding.HexDigit(template[i+1])
				if h < 0 {
					break
				}
				i++
				val = val*16 + h
				digits++
			}
			if digits == 0 || val == 0 {
				// Missing or zero value: the letter passes through bare.
				out = append(out, c)
			} else {
				out = utf8.AppendRune(out, rune(val))
			}
		default:
			// No recognized meaning: pass through with the backslash.
			out = append(out, '\\', c)
		}
	}
	return out
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
