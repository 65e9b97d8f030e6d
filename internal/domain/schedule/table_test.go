package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableWriter_BaseNeverMutated(t *testing.T) {
	base := Table{
		"2025-07-01": {"a": {Kind: Open}},
		"2025-07-02": {"a": {Kind: Close}},
	}

	w := NewTableWriter(base)
	w.Put("2025-07-01", "a", Assignment{Kind: Middle})
	w.Put("2025-07-01", "b", Assignment{Kind: Open})
	w.Delete("2025-07-02", "a")
	w.Put("2025-07-03", "a", Assignment{Kind: Off})

	// The base table still reads exactly as before.
	a, ok := base.Get("2025-07-01", "a")
	require.True(t, ok)
	assert.Equal(t, Open, a.Kind)
	_, ok = base.Get("2025-07-01", "b")
	assert.False(t, ok)
	_, ok = base.Get("2025-07-02", "a")
	assert.True(t, ok)
	_, ok = base.Get("2025-07-03", "a")
	assert.False(t, ok)

	// The result carries every change.
	next := w.Table()
	a, ok = next.Get("2025-07-01", "a")
	require.True(t, ok)
	assert.Equal(t, Middle, a.Kind)
	_, ok = next.Get("2025-07-01", "b")
	assert.True(t, ok)
	_, ok = next.Get("2025-07-02", "a")
	assert.False(t, ok)
	a, ok = next.Get("2025-07-03", "a")
	require.True(t, ok)
	assert.Equal(t, Off, a.Kind)
}

func TestTableWriter_UntouchedDaysStayShared(t *testing.T) {
	day := map[string]Assignment{"a": {Kind: Open}}
	base := Table{"2025-07-01": day, "2025-07-02": {"a": {Kind: Close}}}

	w := NewTableWriter(base)
	w.Put("2025-07-02", "b", Assignment{Kind: Middle})
	next := w.Table()

	// The untouched day still shares its inner map with the base.
	day["b"] = Assignment{Kind: Middle}
	_, ok := next.Get("2025-07-01", "b")
	assert.True(t, ok)

	// The written day got its own copy, insulated from base mutations.
	base["2025-07-02"]["c"] = Assignment{Kind: Open}
	_, ok = next.Get("2025-07-02", "c")
	assert.False(t, ok)
}

func TestTableWriter_DeleteMissingDayIsNoOp(t *testing.T) {
	w := NewTableWriter(Table{})
	w.Delete("2025-07-01", "a")
	assert.Empty(t, w.Table())
}

func TestTableWriter_ReadsSeeOwnWrites(t *testing.T) {
	w := NewTableWriter(Table{})
	w.Put("2025-07-01", "a", Assignment{Kind: Open})

	a, ok := w.Get("2025-07-01", "a")
	require.True(t, ok)
	assert.Equal(t, Open, a.Kind)
}
