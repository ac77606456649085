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
	"cmp"
	"math/bits"
	"unsafe"
)

// SortBy sorts v in place using cmp to order elements: cmp(a, b) must return
// a negative number if a orders before b, zero if they're equal, and a
// positive number otherwise. cmp may panic; if it does, v still holds every
// element it started with (in some unspecified order), but the panic
// propagates to the caller unchanged.
//
// This is the primitive the other two entry points in this package are
// built on. It never allocates, and it's unstable: equal elements may end up
// reordered relative to each other.
func SortBy[T any](v []T, cmp func(a, b T) int) {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return
	}

	if isPresorted(v, cmp) {
		return
	}

	limit := bits.Len64(uint64(len(v))) + 1
	quicksort(v, cmp, nil, limit)
}

// Sort sorts v in place using T's natural order.
func Sort[T cmp.Ordered](v []T) {
	SortBy(v, cmp.Compare[T])
}

// SortByKey sorts v in place by comparing the keys that key extracts from
// each element. key is called at least twice per comparison; callers
// sorting by an expensive key should precompute and cache it themselves.
func SortByKey[T any, K cmp.Ordered](v []T, key func(T) K) {
	SortBy(v, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}
