// Package util holds small generic helpers shared across layers.
package util

// Group is one parent with the children collected for it.
type Group[P any, C any] struct {
	Parent   P
	Children []C
}

// GroupBy folds an ordered row stream into parent groups keyed by key.
//
// Groups keep the first-seen order of their keys and children keep row order.
// parent is evaluated on the first row of each key only. child reports false
// for rows that carry no child, such as the all-null side of a LEFT JOIN; the
// group is still emitted with an empty, non-nil Children slice.
func GroupBy[R any, K comparable, P any, C any](
	rows []R,
	key func(R) K,
	parent func(R) P,
	child func(R) (C, bool),
) []Group[P, C] {
	index := make(map[K]int, len(rows))
	groups := make([]Group[P, C], 0, len(rows))

	for _, row := range rows {
		k := key(row)

		pos, seen := index[k]
		if !seen {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, Group[P, C]{Parent: parent(row), Children: []C{}})
		}

		if c, ok := child(row); ok {
			groups[pos].Children = append(groups[pos].Children, c)
		}
	}

	return groups
}
