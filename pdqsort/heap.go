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

// heapsort sorts v with a max-heap. It guarantees O(n log n) worst case and
// is the fallback quicksort reaches for once its recursion depth budget is
// exhausted.
func heapsort[T any](v []T, cmp func(a, b T) int) {
	siftDown := func(v []T, x int) {
		for {
			l := 2*x + 1
			r := 2*x + 2

			child := l
			if r < len(v) && cmp(v[l], v[r]) < 0 {
				child = r
			}
			if child >= len(v) || cmp(v[x], v[child]) >= 0 {
				break
			}
			v[x], v[child] = v[child], v[x]
			x = child
		}
	}

	for i := len(v)/2 - 1; i >= 0; i-- {
		siftDown(v, i)
	}
	for i := len(v) - 1; i >= 1; i-- {
		v[0], v[i] = v[i], v[0]
		siftDown(v[:i], 0)
	}
}
