package viminput

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// All cursor positions in this package are grapheme cluster indices, never
// byte offsets. Display measurement uses terminal columns (wide and combining
// characters aware), which is a third unit again. The helpers below convert
// between the three.

// graphemeCount returns the number of grapheme clusters in s.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// graphemes splits s into its grapheme clusters.
func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		out = append(out, cluster)
	}
	return out
}

// byteIndex converts a grapheme index to the byte offset where that cluster
// starts. Indices at or past the end map to len(s).
func byteIndex(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}
	idx := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		if idx == graphemeIdx {
			return len(s) - len(rest)
		}
		_, rest, _, state = uniseg.StepString(rest, state)
		idx++
	}
	return len(s)
}

// sliceGraphemes returns the substring covering grapheme clusters [lo, hi).
// Out-of-range bounds are clamped.
func sliceGraphemes(s string, lo, hi int) string {
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		return ""
	}
	return s[byteIndex(s, lo):byteIndex(s, hi)]
}

// displayWidth returns the width of s in terminal columns.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// reverseClusters returns the clusters in reverse order.
func reverseClusters(cs []string) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c
	}
	return out
}

// joinClusters concatenates clusters back into a string.
func joinClusters(cs []string) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c)
	}
	return b.String()
}

// fitClusters returns the number of leading clusters whose cumulative display
// width stays strictly under limit. This is the window-sizing primitive used
// for viewport scrolling: scanning forward it yields the visible slice,
// scanning a reversed slice it yields how far the offset can trail the cursor.
func fitClusters(cs []string, limit int) int {
	width := 0
	for i, c := range cs {
		width += displayWidth(c)
		if width >= limit {
			return i
		}
	}
	return len(cs)
}
