package parse

import (
	"fmt"
	"strings"
)

// ItemSet holds the items that end at one chart position, in insertion
// order. The set only ever grows; Add is idempotent under item identity.
type ItemSet struct {
	position int
	items    []*Item
	seen     map[string]bool
}

func newItemSet(pos int) *ItemSet {
	return &ItemSet{
		position: pos,
		seen:     make(map[string]bool),
	}
}

// Add appends the item unless an identity-equal item is already present.
// A duplicate is discarded whole: its back-reference list is not merged
// into the existing item's.
func (s *ItemSet) Add(it *Item) bool {
	key := it.key()
	if s.seen[key] {
		return false
	}
	s.seen[key] = true
	s.items = append(s.items, it)
	return true
}

// Len returns the current number of items. The worklist loop re-reads it
// after every step so items appended mid-pass are visited too.
func (s *ItemSet) Len() int {
	return len(s.items)
}

// At returns the item at insertion index i.
func (s *ItemSet) At(i int) *Item {
	return s.items[i]
}

// Items returns the items in insertion order. The slice is live during
// recognition; callers must not modify it.
func (s *ItemSet) Items() []*Item {
	return s.items
}

// Chart is the array of item sets C[0..n], one per input position.
type Chart struct {
	sets []*ItemSet
}

func newChart(n int) *Chart {
	sets := make([]*ItemSet, n+1)
	for i := range sets {
		sets[i] = newItemSet(i)
	}
	return &Chart{sets: sets}
}

// Add inserts an item into C[i], reporting whether it was new.
func (c *Chart) Add(i int, it *Item) bool {
	return c.sets[i].Add(it)
}

// Set returns the item set at position i.
func (c *Chart) Set(i int) *ItemSet {
	return c.sets[i]
}

// Len returns the number of item sets, n+1 for n input tokens.
func (c *Chart) Len() int {
	return len(c.sets)
}

// item resolves a back-reference to the item it addresses, or nil if the
// coordinates fall outside the chart.
func (c *Chart) item(ref Backref) *Item {
	if ref.Set < 0 || ref.Set >= len(c.sets) {
		return nil
	}
	set := c.sets[ref.Set]
	if ref.Slot < 0 || ref.Slot >= len(set.items) {
		return nil
	}
	return set.items[ref.Slot]
}

// String dumps every item set with insertion indices. Recognition is
// deterministic, so the dump is stable for a given grammar and input.
func (c *Chart) String() string {
	var sb strings.Builder
	for i, set := range c.sets {
		fmt.Fprintf(&sb, "C[%d]:\n", i)
		for j, it := range set.items {
			fmt.Fprintf(&sb, "  %d: %s\n", j, it)
		}
	}
	return sb.String()
}
