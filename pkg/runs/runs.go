// Package runs detects maximal runs of adjacent items satisfying a
// predicate. Lint rules use it to flag sequences of similar lines, such as
// consecutive blank lines or consecutive lines at the same indentation.
package runs

// ForEachRun scans items left to right and invokes onRun for every run of
// adjacent items satisfying the predicate with length at least
// minConsecutive. Reported runs are sub-slices of items, never overlap, and
// arrive in increasing start order.
//
// After a run is reported the scan resumes past its end, so an item that
// was part of a reported run can never start another one. A candidate run
// shorter than minConsecutive is skipped without a callback and the scan
// advances by a single position: its items remain eligible as starts of
// later candidates.
func ForEachRun[T any](items []T, satisfies func(T) bool, minConsecutive int, onRun func([]T)) {
	for i := 0; i < len(items); {
		if !satisfies(items[i]) {
			i++
			continue
		}

		count := CountConsecutive(items, i, satisfies)
		if count < minConsecutive {
			i++
			continue
		}

		onRun(items[i : i+count])
		i += count
	}
}

// CountConsecutive returns the number of adjacent items starting at offset
// that satisfy the predicate. items[offset] itself is counted without being
// re-checked, so the result is at least 1; callers are expected to have
// already established that it satisfies the predicate.
func CountConsecutive[T any](items []T, offset int, satisfies func(T) bool) int {
	count := 1
	for offset+count < len(items) && satisfies(items[offset+count]) {
		count++
	}
	return count
}
