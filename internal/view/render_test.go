package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var sb strings.Builder
	err = r.Render(&sb, "missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view.Render")
	assert.Empty(t, sb.String())
}

func TestRender_NotFound(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, r.Render(&sb, PageNotFound, "dashboard for user \"x\" not found"))
	assert.Contains(t, sb.String(), "Page not found")
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "two")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "two"}, m)

	_, err = dict("a")
	assert.Error(t, err)

	_, err = dict(1, 2)
	assert.Error(t, err)
}
