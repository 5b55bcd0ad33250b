package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "druwelmauro", NormalizeName(" DRUWEL  Mauro\n"))
}

func TestSplitDisplayName(t *testing.T) {
	last, first := SplitDisplayName("DRUWEL, Mauro")
	require.Equal(t, "DRUWEL", last)
	require.Equal(t, "Mauro", first)

	last, first = SplitDisplayName("DRUWEL")
	require.Equal(t, "DRUWEL", last)
	require.Equal(t, "", first)
}

func TestClosestMatch(t *testing.T) {
	candidates := []string{"Belgium", "Netherlands", "Germany"}

	best, score := ClosestMatch("belgum", candidates)
	require.Equal(t, "Belgium", best)
	require.Greater(t, score, 0.8)

	_, score = ClosestMatch("xqzw", candidates)
	require.Less(t, score, 0.8)
}
