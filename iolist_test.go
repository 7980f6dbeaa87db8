package fmtcore_test

import (
	"testing"

	"github.com/cortho/fmtcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCharsIolistMatchesRenderChars(t *testing.T) {
	t.Parallel()
	format := "~w items, ~.1f%% done"
	args := []any{7, 42.5}

	list, err := fmtcore.RenderCharsIolist(format, args)
	require.NoError(t, err)

	want, err := fmtcore.RenderChars(format, args)
	require.NoError(t, err)

	assert.Equal(t, string(want), string(list.Flatten()))
	assert.Equal(t, len(want), list.Len())
}

func TestRenderCharsIolistLenAvoidsFlatteningForLiteralOnlyFormat(t *testing.T) {
	t.Parallel()
	list, err := fmtcore.RenderCharsIolist("no directives here", nil)
	require.NoError(t, err)
	assert.Equal(t, len("no directives here"), list.Len())
}

func TestRenderCharsIolistRespectsCharsLimit(t *testing.T) {
	t.Parallel()
	list, err := fmtcore.RenderCharsIolist("~s", []any{"a very long string indeed"}, fmtcore.WithCharsLimit(8))
	require.NoError(t, err)
	assert.LessOrEqual(t, list.Len(), 8)
}
