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

// minMedianOfMedians is the slice length at or above which choosePivot samples
// three local medians around each of a, b, c instead of just a, b, c
// themselves, to resist adversarial inputs that target a fixed sampling
// pattern.
const minMedianOfMedians = 256

// choosePivot picks a pivot index in v and returns it, shuffling a handful
// of elements into sorted order along the way. The pivot ends up at the
// center of the sampled elements (index b below), which is what makes it a
// reasonable median estimate rather than a fixed corner of v.
func choosePivot[T any](v []T, cmp func(a, b T) int) int {
	n := len(v)
	a := n / 4
	b := n / 4 * 2
	c := n / 4 * 3

	sort2 := func(i, j int) {
		if cmp(v[i], v[j]) > 0 {
			v[i], v[j] = v[j], v[i]
		}
	}
	sort3 := func(i, j, k int) {
		sort2(i, j)
		sort2(j, k)
		sort2(i, j)
	}

	if n >= 4 {
		if n >= minMedianOfMedians {
			sort3(a-1, a, c+1)
			sort3(b-1, b, b+1)
			sort3(c-1, c, c+1)
		}
		sort3(a, b, c)
	}
	return b
}
