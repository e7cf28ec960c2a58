package suffixtree

import "golang.org/x/text/cases"

// text is an immutable, O(1)-indexed view over the tree's input. Code
// units are bytes: the implementation is oblivious to multi-byte runes,
// so Unicode grapheme segmentation is the caller's concern, not this
// package's.
type text struct {
	raw             []byte
	caseInsensitive bool
}

func newText(s string, caseInsensitive bool) (*text, error) {
	raw := []byte(s)
	if caseInsensitive {
		folded := cases.Fold().Bytes(raw)
		if len(folded) != len(raw) {
			return nil, ErrFoldingChangedLength
		}
		raw = folded
	}
	return &text{raw: raw, caseInsensitive: caseInsensitive}, nil
}

func (t *text) at(i int) byte {
	return t.raw[i]
}

func (t *text) len() int {
	return len(t.raw)
}

func (t *text) slice(lo, hi int) []byte {
	return t.raw[lo:hi]
}

// fold returns pattern in the same case-normal form as the stored text, so
// that query patterns can be compared byte-for-byte against it.
func (t *text) fold(pattern string) []byte {
	b := []byte(pattern)
	if !t.caseInsensitive {
		return b
	}
	return cases.Fold().Bytes(b)
}
