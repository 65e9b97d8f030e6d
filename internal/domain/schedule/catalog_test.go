package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Builtins(t *testing.T) {
	c := NewCatalog()

	list := c.List()
	require.Len(t, list, 8)
	assert.Equal(t, "OPEN", list[0].ID)

	info, ok := c.Get("DUAL_CLOSE")
	require.True(t, ok)
	assert.Equal(t, "Dual Close", info.Label)
}

func TestCatalog_AddCustom(t *testing.T) {
	c := NewCatalog()

	first := c.AddCustom("Training")
	second := c.AddCustom("Inventory")

	assert.True(t, strings.HasPrefix(first.ID, "CUSTOM_"))
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.ColorTag, second.ColorTag)

	got, ok := c.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, "Training", got.Label)

	list := c.List()
	require.Len(t, list, 10)
	assert.Equal(t, first.ID, list[8].ID)
	assert.Equal(t, second.ID, list[9].ID)
}
