package viminput

import "unicode"

// charKind classifies a grapheme cluster for word-boundary scanning.
type charKind int

const (
	kindSpace charKind = iota
	kindWord
	kindPunct
)

// kindOf classifies cluster by its base character. Word characters are
// alphanumerics and underscore (ASCII fast path) plus any Unicode letter or
// number; whitespace is space-equivalent; everything else, emoji included,
// counts as punctuation.
func kindOf(cluster string) charKind {
	for _, r := range cluster {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return kindSpace
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_':
			return kindWord
		case unicode.IsSpace(r):
			return kindSpace
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			return kindWord
		default:
			return kindPunct
		}
	}
	return kindSpace
}
