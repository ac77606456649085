/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package pdqsort

import (
	"unsafe"
)

// maxInsertionFor returns the slice length at or below which insertion sort
// beats quicksort for elements of type T. Bigger elements are costlier to
// shift around, so the crossover point is lower for them.
func maxInsertionFor[T any]() int {
	var zero T
	if unsafe.Sizeof(zero) <= 2*unsafe.Sizeof(uintptr(0)) {
		return 32
	}
	return 16
}

// quicksort sorts v recursively. pred, if non-nil, is the element
// immediately preceding v in the original slice; it lets a recursive call
// notice when the chosen pivot is also the smallest element left (because
// it's equal to the slice's predecessor) and switch to the equal-partition
// shortcut instead of a doomed quicksort split.
//
// limit bounds how many imbalanced partitions quicksort tolerates before
// giving up on it and falling back to heapsort, which is what keeps this an
// introsort rather than a plain quicksort with quadratic worst case.
func quicksort[T any](v []T, cmp func(a, b T) int, pred *T, limit int) {
	maxInsertion := maxInsertionFor[T]()

	for {
		n := len(v)
		if n <= maxInsertion {
			insertionSort(v, cmp)
			return
		}
		if limit == 0 {
			heapsort(v, cmp)
			return
		}

		mid := choosePivot(v, cmp)

		if pred != nil && cmp(*pred, v[mid]) == 0 {
			mid = partitionEqual(v, mid, cmp)
			v = v[mid:]
			continue
		}

		mid, wasPartitioned := partition(v, mid, cmp)
		left, right := v[:mid], v[mid+1:]
		pivot := &v[mid]

		if len(left) < n/8 || len(right) < n/8 {
			limit--
			breakPatterns(left)
			breakPatterns(right)
		} else if wasPartitioned && partialInsertionSort(left, cmp) && partialInsertionSort(right, cmp) {
			return
		}

		quicksort(left, cmp, pred, limit)
		pred = pivot
		v = right
	}
}
