package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextProducesIncreasingIds(t *testing.T) {
	g := New()

	var ids []string
	for i := 0; i < 50; i++ {
		ids = append(ids, g.Next())
	}

	for i := 1; i < len(ids); i++ {
		assert.Greater(t, ids[i], ids[i-1], "id %d (%s) should sort after id %d (%s)", i, ids[i], i-1, ids[i-1])
	}
}

func TestNextIdsAreFixedLength(t *testing.T) {
	g := New()
	id := g.Next()
	assert.Len(t, id, 26)
}

func TestNextUsesOnlyCrockfordAlphabet(t *testing.T) {
	g := New()
	id := g.Next()
	for _, c := range id {
		assert.Contains(t, encoding, string(c))
	}
}

func TestIncrementEntropyWrapsWithoutPanicking(t *testing.T) {
	e := [10]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	require.NotPanics(t, func() { incrementEntropy(&e) })
	assert.Equal(t, [10]byte{}, e)
}
