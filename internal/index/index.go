// Package index groups the positions of an ordered sequence by distinct value.
package index

// Group is a distinct value together with every position it occupies in the
// input sequence. Positions are strictly increasing.
type Group[T comparable] struct {
	Value     T
	Positions []int
}

// Build indexes items in a single left-to-right scan.
//
// The returned groups are ordered by the position of their first occurrence,
// which makes the order total and independent of map iteration. Grouping uses
// Go equality on T, so values that render identically but compare unequal
// stay in separate groups.
//
// Parameters:
//   - items: The sequence to index (read-only)
//
// Returns:
//   - []Group[T]: One group per distinct value, nil for an empty input
func Build[T comparable](items []T) []Group[T] {
	if len(items) == 0 {
		return nil
	}

	slots := make(map[T]int)
	groups := make([]Group[T], 0)

	for pos, item := range items {
		slot, ok := slots[item]
		if !ok {
			slot = len(groups)
			slots[item] = slot
			groups = append(groups, Group[T]{Value: item})
		}
		groups[slot].Positions = append(groups[slot].Positions, pos)
	}

	return groups
}
