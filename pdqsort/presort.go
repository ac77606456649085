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

// isPresorted checks whether v is already monotone, ascending or
// descending, and makes it ascending in place if so. Reports whether v ends
// up ascending.
//
// Inputs like [1,1,...,1,0] (an ascending run of equal elements followed by
// a single violator) take the ascending branch and still return false: the
// check only samples the first pair to decide a direction, so a tie doesn't
// rule out a later descending run. That's a known, accepted cost of keeping
// the check itself O(n) with a single pass.
func isPresorted[T any](v []T, cmp func(a, b T) int) bool {
	if len(v) < 2 {
		return true
	}
	if cmp(v[0], v[1]) > 0 {
		for i := 2; i < len(v); i++ {
			if cmp(v[i-1], v[i]) < 0 {
				return false
			}
		}
		reverse(v)
	} else {
		for i := 2; i < len(v); i++ {
			if cmp(v[i-1], v[i]) > 0 {
				return false
			}
		}
	}
	return true
}

func reverse[T any](v []T) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// breakPatterns scatters a handful of elements around with fixed, data-
// independent swaps, to keep adversarial inputs (those engineered to trip
// choosePivot into always picking a bad pivot) from producing imbalanced
// partitions run after run.
func breakPatterns[T any](v []T) {
	n := len(v)
	if n < 4 {
		return
	}
	v[0], v[n/2] = v[n/2], v[0]
	v[n-1], v[n-n/2] = v[n-n/2], v[n-1]

	if n >= 8 {
		v[1], v[n/2+1] = v[n/2+1], v[1]
		v[2], v[n/2+2] = v[n/2+2], v[2]
		v[n-2], v[n-n/2-1] = v[n-n/2-1], v[n-2]
		v[n-3], v[n-n/2-2] = v[n-n/2-2], v[n-3]
	}
}
