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

// block is the width of the offset rings partitionInBlocks scans ahead by.
// Chosen so each ring fits a single cache line's worth of byte-sized
// offsets, per the BlockQuicksort paper this partition is modeled on.
const block = 64

// partitionInBlocks partitions v into elements less than pivot followed by
// elements greater than or equal to pivot, and returns the split point.
//
// Rather than branching on every comparison, it scans ahead in blocks of up
// to `block` elements on each side and records, into a pair of small offset
// rings, which elements are on the wrong side of the pivot. The write into
// the ring is unconditional; only the ring's length advances conditionally.
// That turns a hard-to-predict branch into a data-dependent store, which is
// the trick BlockQuicksort uses to roughly double throughput on random
// input: the CPU's branch predictor never has to guess which side an
// element falls on.
func partitionInBlocks[T any](v []T, pivot T, cmp func(a, b T) int) int {
	var offsetsL, offsetsR [block]byte

	l := 0
	lenL, startL, blockL := 0, 0, block
	r := len(v)
	lenR, startR, blockR := 0, 0, block

	for {
		done := r-l <= 2*block
		if done {
			rem := r - l
			if startL < lenL || startR < lenR {
				rem -= block
			}
			switch {
			case startL < lenL:
				blockR = rem
			case startR < lenR:
				blockL = rem
			default:
				blockL = rem / 2
				blockR = rem - blockL
			}
		}

		if startL == lenL {
			startL, lenL = 0, 0
			for i := 0; i < blockL; i++ {
				c := 0
				if cmp(v[l+i], pivot) >= 0 {
					c = 1
				}
				offsetsL[lenL] = byte(i)
				lenL += c
			}
		}

		if startR == lenR {
			startR, lenR = 0, 0
			for i := 0; i < blockR; i++ {
				c := 0
				if cmp(v[r-i-1], pivot) < 0 {
					c = 1
				}
				offsetsR[lenR] = byte(i)
				lenR += c
			}
		}

		swaps := lenL - startL
		if n := lenR - startR; n < swaps {
			swaps = n
		}
		for i := 0; i < swaps; i++ {
			li := l + int(offsetsL[startL])
			ri := r - int(offsetsR[startR]) - 1
			v[li], v[ri] = v[ri], v[li]
			startL++
			startR++
		}

		if startL == lenL {
			l += blockL
		}
		if startR == lenR {
			r -= blockR
		}

		if done {
			break
		}
	}

	if startL < lenL {
		// Elements still queued on the left: drain them against the far right.
		for startL < lenL {
			lenL--
			li := l + int(offsetsL[lenL])
			v[li], v[r-1] = v[r-1], v[li]
			r--
		}
		return r
	}
	// Elements still queued on the right: drain them against the far left.
	for startR < lenR {
		lenR--
		ri := r - int(offsetsR[lenR]) - 1
		v[l], v[ri] = v[ri], v[l]
		l++
	}
	return l
}

// partition partitions v around v[pivotIdx], moving the pivot itself to the
// split point. Returns the split point and whether v was already
// partitioned around that pivot before this call (a hint used upstream to
// decide whether a quick "is it actually sorted?" check is worthwhile).
func partition[T any](v []T, pivotIdx int, cmp func(a, b T) int) (mid int, wasPartitioned bool) {
	v[0], v[pivotIdx] = v[pivotIdx], v[0]
	pivot := v[0]
	rest := v[1:]

	l, r := 0, len(rest)
	for l < r && cmp(rest[l], pivot) < 0 {
		l++
	}
	for l < r && cmp(rest[r-1], pivot) >= 0 {
		r--
	}

	wasPartitioned = l >= r
	if wasPartitioned {
		mid = l
	} else {
		mid = l + partitionInBlocks(rest[l:r], pivot, cmp)
	}

	v[0], v[mid] = v[mid], v[0]
	return mid, wasPartitioned
}

// partitionEqual partitions v into elements equal to v[mid] followed by
// elements greater than it, on the assumption that v contains nothing
// smaller than v[mid] (the caller only uses this when the chosen pivot
// turned out to equal its predecessor, hence the smallest element in v).
func partitionEqual[T any](v []T, mid int, cmp func(a, b T) int) int {
	v[0], v[mid] = v[mid], v[0]
	pivot := v[0]
	rest := v[1:]

	l, r := 0, len(rest)
	for l < r {
		for l < r && cmp(rest[l], pivot) == 0 {
			l++
		}
		for l < r && cmp(rest[r-1], pivot) > 0 {
			r--
		}
		if l < r {
			r--
			rest[l], rest[r] = rest[r], rest[l]
			l++
		}
	}
	return l + 1
}
