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
	"sync"

	"github.com/google/uuid"
)

// IntColumn is a column's main-storage values, one per row id.
type IntColumn []int64

func (c IntColumn) GetValue(idx uint32) int64 {
	return c[idx]
}

// Row is a single delta-storage row, column name to value, not yet merged
// into the shard's main IntColumns.
type Row map[string]int64

// storageShard holds one shard's worth of rows, split into immutable main
// storage (compacted, columnar) and a small delta buffer of recent inserts.
// Row ids below mainCount address main storage directly; row ids at or
// above mainCount address inserts[id-mainCount]. deletions records row ids
// that should be skipped by any scan or index, regardless of which side of
// that split they're on.
type storageShard struct {
	id     uuid.UUID
	schema []string

	mu        sync.RWMutex
	columns   map[string]IntColumn
	mainCount uint32
	inserts   []Row
	deletions map[uint32]struct{}

	indexes []*StorageIndex
}

func newShard(schema []string) *storageShard {
	columns := make(map[string]IntColumn, len(schema))
	for _, c := range schema {
		columns[c] = IntColumn{}
	}
	return &storageShard{
		id:        newUUID(),
		schema:    schema,
		columns:   columns,
		deletions: make(map[uint32]struct{}),
	}
}

// insert appends a row to the delta buffer and adds it to the deltaBtree of
// every active index. It doesn't touch main storage; that only catches up on
// the next compact.
func (t *storageShard) insert(row Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inserts = append(t.inserts, row)
	itemid := len(t.inserts) - 1
	for _, idx := range t.indexes {
		if !idx.inactive && idx.deltaBtree != nil {
			idx.deltaBtree.ReplaceOrInsert(indexPair{itemid, row})
		}
	}
}

// delete marks rowID as deleted. rowID uses the same numbering as
// elsewhere: below mainCount it addresses a main-storage row, at or above
// it addresses inserts[rowID-mainCount]. Deleted rows stay in place (no
// compaction happens here) but are filtered out by StorageIndex.Rows and
// OrderedScan.
func (t *storageShard) delete(rowID uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deletions[rowID] = struct{}{}
}

// compact merges the delta buffer into main storage and marks every index
// on this shard stale, since mainCount (and therefore every row id an index
// remembers) just changed.
func (t *storageShard) compact() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.inserts) == 0 {
		return
	}
	for _, row := range t.inserts {
		for _, c := range t.schema {
			t.columns[c] = append(t.columns[c], row[c])
		}
	}
	t.mainCount += uint32(len(t.inserts))
	t.inserts = nil
	for _, idx := range t.indexes {
		idx.inactive = true
	}
}

// index returns the shard's index over cols, creating it lazily on first
// use (inactive until enough scans make rebuilding it worthwhile).
func (t *storageShard) index(cols []string) *StorageIndex {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, idx := range t.indexes {
		if sameCols(idx.cols, cols) {
			return idx
		}
	}
	idx := newIndex(t, cols)
	t.indexes = append(t.indexes, idx)
	return idx
}

func sameCols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
