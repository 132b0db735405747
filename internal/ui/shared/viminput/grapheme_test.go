package viminput

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphemes_CombiningMarks(t *testing.T) {
	// e + combining acute accent is one cluster
	s := "éx"

	assert.Equal(t, 2, graphemeCount(s))
	assert.Equal(t, []string{"é", "x"}, graphemes(s))
}

func TestByteIndex(t *testing.T) {
	s := "日本x"

	assert.Equal(t, 0, byteIndex(s, 0))
	assert.Equal(t, 3, byteIndex(s, 1))
	assert.Equal(t, 6, byteIndex(s, 2))
	assert.Equal(t, len(s), byteIndex(s, 3))
	assert.Equal(t, len(s), byteIndex(s, 99))
}

func TestSliceGraphemes(t *testing.T) {
	s := "日本語abc"

	assert.Equal(t, "本語a", sliceGraphemes(s, 1, 4))
	assert.Equal(t, "", sliceGraphemes(s, 3, 3))
	assert.Equal(t, "日本語abc", sliceGraphemes(s, -1, 99))
	assert.Equal(t, "", sliceGraphemes(s, 4, 2))
}

func TestFitClusters(t *testing.T) {
	narrow := graphemes("abcdef")
	assert.Equal(t, 3, fitClusters(narrow, 4), "width must stay strictly under the limit")
	assert.Equal(t, 6, fitClusters(narrow, 100))

	wide := graphemes("日本語")
	assert.Equal(t, 1, fitClusters(wide, 4))
	assert.Equal(t, 2, fitClusters(wide, 6))
}

func TestReverseClusters(t *testing.T) {
	assert.Equal(t, []string{"c", "b", "a"}, reverseClusters([]string{"a", "b", "c"}))
	assert.Empty(t, reverseClusters(nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, kindWord, kindOf("a"))
	assert.Equal(t, kindWord, kindOf("Z"))
	assert.Equal(t, kindWord, kindOf("7"))
	assert.Equal(t, kindWord, kindOf("_"))
	assert.Equal(t, kindWord, kindOf("語"))
	assert.Equal(t, kindSpace, kindOf(" "))
	assert.Equal(t, kindSpace, kindOf("\t"))
	assert.Equal(t, kindPunct, kindOf("."))
	assert.Equal(t, kindPunct, kindOf("-"))
	assert.Equal(t, kindPunct, kindOf("🎉"))
}
