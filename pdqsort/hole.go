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

// hole tracks a slot of v that is temporarily empty because its value was
// lifted out into val. Call close via defer immediately after creating a
// hole: if cmp panics while the hole is open, the deferred close still
// copies val back into v[dest], so no element is ever lost even though the
// panic keeps propagating.
type hole[T any] struct {
	v    []T
	val  T
	dest int
}

func (h *hole[T]) close() {
	h.v[h.dest] = h.val
}
