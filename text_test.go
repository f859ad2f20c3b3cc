package main

import (
	"testing"

	. "github.com/quasilyte/gmath"
	"github.com/stretchr/testify/require"
)

func TestMeasureText(t *testing.T) {
	require.Equal(t, Vec{X: 5 * glyphWidth, Y: lineHeight}, MeasureText("hello"))
	require.Equal(t, Vec{X: 3 * glyphWidth, Y: 2 * lineHeight}, MeasureText("a\nabc"))
}

func TestMeasureTexts(t *testing.T) {
	texts := TextLines("ab", "abcd")
	texts[1].Offset = Vec{X: 10, Y: 8}

	size := MeasureTexts(texts)
	require.Equal(t, Vec{X: 10 + 4*glyphWidth, Y: 2*lineHeight + 8}, size)
}
