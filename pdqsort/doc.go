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

// Package pdqsort implements pattern-defeating quicksort: an in-place,
// comparison-based sort that combines introsort's worst-case guarantee with
// block-partitioned quicksort's branch-prediction-friendly inner loop, a
// heapsort fallback, and a handful of adaptive shortcuts for presorted and
// mostly-equal inputs. It never allocates and it never loses an element,
// even when the caller's comparator panics midway through a sort.
package pdqsort
