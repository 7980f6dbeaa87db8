package fmtcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// composedCafe is "cafe" with a precomposed e-acute: 4 code points, 4
// grapheme clusters.
var composedCafe = "caf" + "é"

// decomposedEclair is "eclair" with the first letter decomposed into a
// plain "e" plus a combining acute accent (U+0301): 7 code points, but
// still 6 grapheme clusters, since the combining mark joins its base
// letter into a single user-visible character.
var decomposedEclair = "e" + "́" + "clair"

func TestGraphemeClustersCountsComposedAccents(t *testing.T) {
	t.Parallel()
	clusters := graphemeClusters(composedCafe)
	assert.Len(t, clusters, 4)
}

func TestCharCountLatin1CountsCodePoints(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, charCount(composedCafe, Latin1))
}

func TestCharCountUnicodeCountsGraphemeClusters(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, charCount(decomposedEclair, Latin1))
	assert.Equal(t, 6, charCount(decomposedEclair, Unicode))
}

func TestIndentColumnResetsOnNewline(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, IndentColumn("ab\ncde", 20))
}

func TestIndentColumnAdvancesToNextTabStop(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 8, IndentColumn("\t", 0))
	assert.Equal(t, 8, IndentColumn("\t", 3))
	assert.Equal(t, 16, IndentColumn("\t", 8))
}

func TestTruncateToLatin1(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hel", truncateTo("hello", 3, Latin1))
	assert.Equal(t, "hello", truncateTo("hello", 10, Latin1))
}

func TestTruncateToUnicodeRespectsClusters(t *testing.T) {
	t.Parallel()
	got := truncateTo(decomposedEclair, 2, Unicode)
	assert.Equal(t, 2, charCount(got, Unicode))
	assert.Equal(t, "éc", got)
}

func TestEllipsiseNoTruncationWhenFits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "short", ellipsise("short", 10))
}

func TestEllipsiseNearFitReturnsVerbatim(t *testing.T) {
	t.Parallel()
	// 5 chars truncated to 4 would hide only 1 char (<= 3), not worth "...".
	assert.Equal(t, "abcde", ellipsise("abcde", 4))
}

func TestEllipsiseAddsEllipsisWhenTruncationIsSubstantial(t *testing.T) {
	t.Parallel()
	got := ellipsise("abcdefghij", 5)
	assert.Equal(t, "ab...", got)
}

func TestEllipsiseVerySmallLimitTruncatesWithoutEllipsis(t *testing.T) {
	t.Parallel()
	got := ellipsise("abcdefghij", 2)
	assert.Equal(t, "ab", got)
}

func TestAdjustLeftPutsPaddingAfter(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hi   ", adjust("hi", "   ", AdjustLeft))
}

func TestAdjustRightPutsPaddingBefore(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "   hi", adjust("hi", "   ", AdjustRight))
}

func TestPaddingBuildsRepeatedRune(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "000", padding('0', 3))
	assert.Equal(t, "", padding('0', 0))
}

func TestAdjustFieldPrecisionBoxOverflowStars(t *testing.T) {
	t.Parallel()
	got := adjustField("hello world", Field{}, Field{Present: true, Value: 5}, ' ', AdjustRight, true, Latin1)
	assert.Equal(t, "*****", got)
}

func TestAdjustFieldPrecisionBoxOverflowSlicesForStrings(t *testing.T) {
	t.Parallel()
	got := adjustField("hello world", Field{}, Field{Present: true, Value: 5}, ' ', AdjustRight, false, Latin1)
	assert.Equal(t, "hello", got)
}

func TestAdjustFieldWidthPadsAfterPrecisionBox(t *testing.T) {
	t.Parallel()
	got := adjustField("hi", Field{Present: true, Value: 5}, Field{}, '0', AdjustRight, false, Latin1)
	assert.Equal(t, "000hi", got)
}
