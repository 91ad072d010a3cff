// Package textdoc is an in-memory implementation of search.Document backed
// by a plain byte slice. It serves the command line tool and stands in for a
// real editor buffer in tests.
package textdoc

import (
	"unicode/utf8"

	"docregex/encoding"
	"docregex/search"
)

// Buffer holds UTF-8 text and its end-of-line convention.
type Buffer struct {
	data    []byte
	eolMode search.EOLMode
}

// New creates a Buffer over data. The end-of-line convention is sniffed from
// the content. The slice is not copied; the caller must not modify it while
// the buffer is in use.
func New(data []byte) *Buffer {
	return &Buffer{
		data:    data,
		eolMode: encoding.DetectEOLMode(data),
	}
}

// NewFromString creates a Buffer over the given text.
func NewFromString(text string) *Buffer {
	return New([]byte(text))
}

// Length returns the total addressable length in bytes.
func (b *Buffer) Length() int {
	return len(b.data)
}

// RangeBytes returns a contiguous read-only view of the given sub-range.
// Out-of-bounds ranges are clamped to the buffer.
func (b *Buffer) RangeBytes(pos, length int) []byte {
	if pos < 0 {
		length += pos
		pos = 0
	}
	if pos > len(b.data) {
		pos = len(b.data)
	}
	if length < 0 {
		length = 0
	}
	if pos+length > len(b.data) {
		length = len(b.data) - pos
	}
	return b.data[pos : pos+length]
}

// MovePositionOutsideChar nudges pos in the direction of moveDir until it no
// longer splits a multi-byte UTF-8 sequence.
func (b *Buffer) MovePositionOutsideChar(pos, moveDir int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(b.data) {
		return len(b.data)
	}
	for pos > 0 && pos < len(b.data) && !utf8.RuneStart(b.data[pos]) {
		if moveDir >= 0 {
			pos++
		} else {
			pos--
		}
	}
	return pos
}

// EOLMode returns the buffer's end-of-line convention.
func (b *Buffer) EOLMode() search.EOLMode {
	return b.eolMode
}

// SetEOLMode overrides the sniffed end-of-line convention.
func (b *Buffer) SetEOLMode(m search.EOLMode) {
	b.eolMode = m
}

// Text returns the whole buffer content as a string.
func (b *Buffer) Text() string {
	return string(b.data)
}
