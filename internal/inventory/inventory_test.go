package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIsIdempotent(t *testing.T) {
	inv := New()

	require.True(t, inv.Record("frag-1", "surface", 10))
	assert.False(t, inv.Record("frag-1", "surface", 10))
	assert.False(t, inv.Record("frag-1", "beneath", 99), "same ID in another category is still a duplicate")

	assert.Equal(t, 1, inv.Count())
	assert.Equal(t, 10, inv.Score())
	assert.True(t, inv.Has("frag-1"))
}

func TestRecordRejectsEmptyID(t *testing.T) {
	inv := New()
	assert.False(t, inv.Record("", "surface", 5))
	assert.Equal(t, 0, inv.Count())
}

func TestRecordClampsNegativeValue(t *testing.T) {
	inv := New()
	require.True(t, inv.Record("cursed", "beneath", -50))
	assert.Equal(t, 0, inv.Score())
}

func TestScoreIsMonotonic(t *testing.T) {
	inv := New()
	last := 0
	for i, id := range []string{"a", "b", "a", "c", "b", "d"} {
		inv.Record(id, "surface", i+1)
		assert.GreaterOrEqual(t, inv.Score(), last)
		last = inv.Score()
	}
	assert.Equal(t, 4, inv.Count())
	assert.Equal(t, 1+2+4+6, inv.Score())
}

func TestEntriesKeepRecoveryOrder(t *testing.T) {
	inv := New()
	inv.Record("z", "beneath", 1)
	inv.Record("a", "surface", 2)
	inv.Record("m", "artifact", 3)

	entries := inv.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "z", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
	assert.Equal(t, "m", entries[2].ID)

	assert.Equal(t, []string{"artifact", "beneath", "surface"}, inv.Categories())
	assert.Equal(t, 1, inv.CountByCategory("surface"))
}

func TestOnChangeFiresOncePerNewItem(t *testing.T) {
	inv := New()
	var seen []Entry
	inv.OnChange = func(e Entry) { seen = append(seen, e) }

	inv.Record("x", "surface", 5)
	inv.Record("x", "surface", 5)

	require.Len(t, seen, 1)
	assert.Equal(t, Entry{ID: "x", Category: "surface", Value: 5}, seen[0])
}

func TestClear(t *testing.T) {
	inv := New()
	inv.Record("x", "surface", 5)
	inv.Clear()

	assert.Equal(t, 0, inv.Count())
	assert.Equal(t, 0, inv.Score())
	assert.True(t, inv.Record("x", "surface", 5))
	assert.Equal(t, "Inventory{1 items, score 5}", inv.Debug())
}
