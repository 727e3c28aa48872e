// Package lognav walks a recorded sequence of log entries by position id.
// Code under test logs a position id at interesting points; the test then
// asserts the order those points were reached in, skipping unrelated
// entries and stopping at a boundary.
//
//	nav := lognav.New(recorder.Entries())
//	_, ok := nav.NextMatching([]string{"order.placed"}, []string{"order.shipped"})
package lognav

import "slices"

// PositionHolder is a record carrying a position id
type PositionHolder interface {
	PositionID() string
}

// Navigator is a forward cursor over records. It is not safe for
// concurrent use.
type Navigator[T PositionHolder] struct {
	records []T
	next    int
}

// New creates a navigator positioned before the first record
func New[T PositionHolder](records []T) *Navigator[T] {
	return &Navigator[T]{records: records}
}

// NextIndex returns the index of the record Next would return
func (n *Navigator[T]) NextIndex() int {
	return n.next
}

// HasNext reports whether records remain
func (n *Navigator[T]) HasNext() bool {
	return n.next < len(n.records)
}

// Next returns the next record and advances. It reports false when the
// records are exhausted.
func (n *Navigator[T]) Next() (T, bool) {
	var zero T
	if !n.HasNext() {
		return zero, false
	}
	record := n.records[n.next]
	n.next++
	return record, true
}

// NextMatching returns the first remaining record whose position id is in
// searchIDs and advances past it. The scan stops before the first record
// whose id is in limitIDs; a nil limitIDs scans to the end. When nothing
// matches the cursor does not move.
func (n *Navigator[T]) NextMatching(searchIDs, limitIDs []string) (T, bool) {
	var zero T

	stop := len(n.records)
	if limitIDs != nil {
		for i := n.next; i < len(n.records); i++ {
			if slices.Contains(limitIDs, n.records[i].PositionID()) {
				stop = i
				break
			}
		}
	}

	for i := n.next; i < stop; i++ {
		if slices.Contains(searchIDs, n.records[i].PositionID()) {
			n.next = i + 1
			return n.records[i], true
		}
	}
	return zero, false
}
