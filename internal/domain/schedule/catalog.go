package schedule

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ShiftInfo is display metadata for one catalog entry. The engine only tests
// id equality; labels and color tags exist for the presentation layer.
type ShiftInfo struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	ColorTag string `json:"color_tag"`
}

const customIDPrefix = "CUSTOM_"

// customPalette is cycled through as custom kinds are added.
var customPalette = []string{
	"pink", "cyan", "lime", "fuchsia", "yellow",
	"rose", "teal", "indigo", "violet", "sky",
}

// Catalog maps shift-kind ids to display metadata. The builtin entries are
// fixed; user-defined kinds are appended with a generated id.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]ShiftInfo
	order   []string
	customs int
}

func NewCatalog() *Catalog {
	builtins := []ShiftInfo{
		{ID: Open.Code(), Label: "Open", ColorTag: "blue"},
		{ID: Middle.Code(), Label: "Middle", ColorTag: "emerald"},
		{ID: Close.Code(), Label: "Close", ColorTag: "amber"},
		{ID: Off.Code(), Label: "Day Off", ColorTag: "slate"},
		{ID: Leave.Code(), Label: "Leave", ColorTag: "purple"},
		{ID: DualOpen.Code(), Label: "Dual Open", ColorTag: "blue"},
		{ID: DualMiddle.Code(), Label: "Dual Middle", ColorTag: "emerald"},
		{ID: DualClose.Code(), Label: "Dual Close", ColorTag: "amber"},
	}

	c := &Catalog{entries: make(map[string]ShiftInfo, len(builtins))}
	for _, info := range builtins {
		c.entries[info.ID] = info
		c.order = append(c.order, info.ID)
	}
	return c
}

func (c *Catalog) Get(id string) (ShiftInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.entries[id]
	return info, ok
}

// List returns all entries in insertion order, builtins first.
func (c *Catalog) List() []ShiftInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ShiftInfo, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id])
	}
	return out
}

// AddCustom appends a user-defined kind with a generated id and the next
// color from the palette.
func (c *Catalog) AddCustom(label string) ShiftInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := customIDPrefix + strings.ToUpper(uuid.NewString()[:8])
	info := ShiftInfo{
		ID:       id,
		Label:    label,
		ColorTag: customPalette[c.customs%len(customPalette)],
	}
	c.customs++
	c.entries[id] = info
	c.order = append(c.order, id)
	return info
}
