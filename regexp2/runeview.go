package regexp2

import (
	"sort"
	"unicode/utf8"
)

// runeView is a decoded view of a document's bytes. The matcher operates on
// runes while the host contract speaks byte offsets, so the view keeps the
// translation table in both directions.
//
// The view is rebuilt per search over the full document extent, so lookaround
// can see outside the requested range.
type runeView struct {
	runes []rune

	// byteOff[i] is the byte offset where rune i starts; the final entry is
	// the total byte length.
	byteOff []int
}

func newRuneView(data []byte) *runeView {
	v := &runeView{
		runes:   make([]rune, 0, len(data)),
		byteOff: make([]int, 0, len(data)+1),
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		v.runes = append(v.runes, r)
		v.byteOff = append(v.byteOff, i)
		i += size
	}
	v.byteOff = append(v.byteOff, len(data))
	return v
}

// runeIndex converts a byte offset to a rune index. Offsets are expected to
// lie on rune boundaries (the document normalizes range endpoints); an
// offset inside a rune maps to the rune starting at or after it.
func (v *runeView) runeIndex(byteOffset int) int {
	return sort.SearchInts(v.byteOff, byteOffset)
}

// byteIndex converts a rune index back to a byte offset.
func (v *runeView) byteIndex(runeIndex int) int {
	if runeIndex < 0 {
		return 0
	}
	if runeIndex >= len(v.byteOff) {
		return v.byteOff[len(v.byteOff)-1]
	}
	return v.byteOff[runeIndex]
}
