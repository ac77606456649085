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
package storage

import (
	"fmt"

	"github.com/google/btree"
	"github.com/launix-de/memcp-sort/pdqsort"
)

// indexPair is a delta-storage row tracked by an index's btree, ordered by
// the index's sort columns. itemid indexes into the owning shard's insert
// buffer.
type indexPair struct {
	itemid int
	data   Row
}

// StorageIndex keeps a shard's rows ordered by cols without re-sorting on
// every lookup: mainIndexes is a sorted permutation of main-storage row ids
// (rebuilt with pdqsort, since that only has to happen once compaction moves
// rows into main storage), and deltaBtree keeps newly inserted rows ordered
// incrementally so recent inserts never force a full rebuild.
type StorageIndex struct {
	cols        []string // columns to order by, in priority order; kept as given, not sorted
	savings     float64  // accumulated evidence that building this index would pay for itself
	mainIndexes []uint32 // sorted permutation of [0, t.mainCount)
	deltaBtree  *btree.BTreeG[indexPair]
	t           *storageShard
	inactive    bool
}

const indexSavingsThreshold = 2.0 // building an index costs about 1x a full scan

func newIndex(t *storageShard, cols []string) *StorageIndex {
	return &StorageIndex{t: t, cols: cols, inactive: true}
}

// compareMain three-way compares two main-storage rows by the index's
// columns.
func (s *StorageIndex) compareMain(a, b uint32) int {
	for _, c := range s.cols {
		col := s.t.columns[c]
		va, vb := col.GetValue(a), col.GetValue(b)
		if va != vb {
			if va < vb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// compareDelta three-way compares two delta rows by the index's columns.
// A column missing from either row sorts as equal on that column, so a
// partially populated row doesn't get shuffled to one extreme.
func (s *StorageIndex) compareDelta(a, b indexPair) int {
	for _, c := range s.cols {
		va, aok := a.data[c]
		vb, bok := b.data[c]
		if !aok || !bok || va == vb {
			continue
		}
		if va < vb {
			return -1
		}
		return 1
	}
	return 0
}

// rebuild sorts main storage's row ids with pdqsort and reseeds deltaBtree
// from the shard's current insert buffer.
func (s *StorageIndex) rebuild() {
	fmt.Println("building index over", s.cols)

	order := make([]uint32, s.t.mainCount)
	for i := range order {
		order[i] = uint32(i)
	}
	pdqsort.SortBy(order, s.compareMain)
	s.mainIndexes = order

	s.deltaBtree = btree.NewG(8, func(a, b indexPair) bool {
		if c := s.compareDelta(a, b); c != 0 {
			return c < 0
		}
		return a.itemid < b.itemid // rows with equal keys must not replace each other
	})
	for i, row := range s.t.inserts {
		s.deltaBtree.ReplaceOrInsert(indexPair{i, row})
	}
	s.inactive = false
}

// Rows returns every live row id visible through this index (main storage ∪
// delta, minus anything marked deleted). Once built, the main-storage rows
// come first, ascending by the index's columns, followed by the delta rows,
// themselves ascending; the two runs are not merged with each other.
// It lazily builds the index once enough calls have made the rebuild worth
// its cost; until then it falls back to natural order, same as scanning
// without an index at all.
func (s *StorageIndex) Rows() []uint32 {
	s.t.mu.RLock()
	defer s.t.mu.RUnlock()

	s.savings++
	if s.inactive {
		if s.savings < Settings.IndexSavingsThreshold {
			return s.naturalOrderLocked()
		}
		s.rebuild()
	}

	result := make([]uint32, 0, len(s.mainIndexes)+len(s.t.inserts))
	for _, row := range s.mainIndexes {
		if _, deleted := s.t.deletions[row]; !deleted {
			result = append(result, row)
		}
	}
	if s.deltaBtree != nil {
		s.deltaBtree.Ascend(func(p indexPair) bool {
			row := s.t.mainCount + uint32(p.itemid)
			if _, deleted := s.t.deletions[row]; !deleted {
				result = append(result, row)
			}
			return true
		})
	}
	return result
}

// naturalOrderLocked requires s.t.mu to already be held (by Rows).
func (s *StorageIndex) naturalOrderLocked() []uint32 {
	total := s.t.mainCount + uint32(len(s.t.inserts))
	result := make([]uint32, 0, total)
	for i := uint32(0); i < total; i++ {
		if _, deleted := s.t.deletions[i]; !deleted {
			result = append(result, i)
		}
	}
	return result
}

// rebuildIndexes migrates t1's indexes onto t2 after a shard has been
// rebuilt (compacted or resharded). Every migrated index starts inactive:
// t2's row ids don't line up with t1's, so reusing a stale mainIndexes
// permutation would silently misorder rows.
func rebuildIndexes(t1 *storageShard, t2 *storageShard) {
	for _, idx := range t1.indexes {
		moved := newIndex(t2, idx.cols)
		moved.savings = idx.savings * 0.9 // decay: t2 hasn't earned this index's keep yet
		t2.indexes = append(t2.indexes, moved)
	}
}
