package bundle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkers_Frame(t *testing.T) {
	t.Run("Should frame a payload without trailing newline", func(t *testing.T) {
		var sb strings.Builder
		DefaultSettings().Markers().Frame(&sb, "b.txt", []byte("world"))

		assert.Equal(t, "--!- BINER FILE BEGIN -!-- b.txt\nworld--!- BINER FILE END -!-- b.txt\n", sb.String())
	})

	t.Run("Should frame an empty payload", func(t *testing.T) {
		var sb strings.Builder
		DefaultSettings().Markers().Frame(&sb, "e.txt", nil)

		assert.Equal(t, "--!- BINER FILE BEGIN -!-- e.txt\n--!- BINER FILE END -!-- e.txt\n", sb.String())
	})
}

func TestMarkers_Next(t *testing.T) {
	m := Markers{Begin: "<<", End: ">>"}

	t.Run("Should locate consecutive sections", func(t *testing.T) {
		buf := "<< a\nA\n>> a\n<< b\nB>> b\n"

		first, next, ok := m.Next(buf, 0)
		require.True(t, ok)
		assert.Equal(t, "a", first.Filename)
		assert.Equal(t, "a", first.FooterName)
		assert.Equal(t, "A\n", first.Payload)
		assert.Equal(t, 0, first.Offset)

		second, next, ok := m.Next(buf, next)
		require.True(t, ok)
		assert.Equal(t, "b", second.Filename)
		assert.Equal(t, "B", second.Payload)

		_, _, ok = m.Next(buf, next)
		assert.False(t, ok)
	})

	t.Run("Should skip text between sections", func(t *testing.T) {
		buf := "junk before\n<< a\nA>> a\nnoise\n<< b\nB>> b\ntrailer"

		sec, next, ok := m.Next(buf, 0)
		require.True(t, ok)
		assert.Equal(t, "a", sec.Filename)

		sec, _, ok = m.Next(buf, next)
		require.True(t, ok)
		assert.Equal(t, "b", sec.Filename)
		assert.Equal(t, "B", sec.Payload)
	})

	t.Run("Should report the informational footer name", func(t *testing.T) {
		sec, _, ok := m.Next("<< a\nA>> other\n", 0)

		require.True(t, ok)
		assert.Equal(t, "a", sec.Filename)
		assert.Equal(t, "other", sec.FooterName)
	})

	t.Run("Should clamp when the end marker line has no newline", func(t *testing.T) {
		buf := "<< z\nZ>>"

		sec, next, ok := m.Next(buf, 0)
		require.True(t, ok)
		assert.Equal(t, "Z", sec.Payload)
		assert.Equal(t, len(buf), next)
	})

	t.Run("Should stop at a begin marker without end marker", func(t *testing.T) {
		_, next, ok := m.Next("text << a\nA", 0)

		assert.False(t, ok)
		assert.Equal(t, len("text << a\nA"), next)
	})

	t.Run("Should flag a header line without newline", func(t *testing.T) {
		sec, next, ok := m.Next("<< a>> a\n<< b\nB>> b\n", 0)

		require.True(t, ok)
		assert.True(t, sec.Malformed)
		sec, _, ok = m.Next("<< a>> a\n<< b\nB>> b\n", next)
		require.True(t, ok)
		assert.Equal(t, "b", sec.Filename)
	})
}

func TestMarkers_Present(t *testing.T) {
	m := DefaultSettings().Markers()

	assert.False(t, m.Present("no markers here"))
	assert.False(t, m.Present(DefaultBeginMarker+" a\n"))
	assert.False(t, m.Present(DefaultEndMarker+" a\n"))
	assert.True(t, m.Present(DefaultBeginMarker+" a\n"+DefaultEndMarker+" a\n"))
}
