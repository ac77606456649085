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
	"container/heap"
	"runtime/debug"
	"sync"

	"github.com/launix-de/memcp-sort/pdqsort"
)

// sortSpec names one ORDER BY key: a column and whether it sorts descending.
type sortSpec struct {
	col  string
	desc bool
}

// shardqueue holds one shard's already-filtered rows, sorted locally so the
// global merge only ever has to compare queue heads.
type shardqueue struct {
	shard  *storageShard
	items  []uint32
	sortBy []sortSpec
}

// compare three-way compares two of this queue's own rows by sortBy.
func (q *shardqueue) compare(a, b uint32) int {
	for _, s := range q.sortBy {
		col := q.shard.columns[s.col]
		va, vb := col.GetValue(a), col.GetValue(b)
		if va == vb {
			continue
		}
		if (va < vb) != s.desc {
			return -1
		}
		return 1
	}
	return 0
}

// orderedScan drops any row marked deleted on t, then sorts the remainder
// locally with pdqsort.
func (t *storageShard) orderedScan(rows []uint32, sortBy []sortSpec) *shardqueue {
	t.mu.RLock()
	items := make([]uint32, 0, len(rows))
	for _, r := range rows {
		if _, deleted := t.deletions[r]; !deleted {
			items = append(items, r)
		}
	}
	t.mu.RUnlock()

	q := &shardqueue{shard: t, items: items, sortBy: sortBy}
	if len(sortBy) > 0 {
		pdqsort.SortBy(q.items, q.compare)
	}
	return q
}

// compareHeads three-way compares the head rows of two (possibly
// different-shard) queues by sortBy. It has to live outside shardqueue
// because the two rows being compared can come from different shards, each
// with its own column storage.
func compareHeads(a, b *shardqueue, sortBy []sortSpec) int {
	for _, s := range sortBy {
		va := a.shard.columns[s.col].GetValue(a.items[0])
		vb := b.shard.columns[s.col].GetValue(b.items[0])
		if va == vb {
			continue
		}
		if (va < vb) != s.desc {
			return -1
		}
		return 1
	}
	return 0
}

// globalQueue is a container/heap.Interface over the head rows of several
// shardqueues, used to merge their already-sorted streams in O(log k) per
// row instead of re-sorting the concatenation.
type globalQueue struct {
	q      []*shardqueue
	sortBy []sortSpec
}

func (g *globalQueue) Len() int { return len(g.q) }
func (g *globalQueue) Less(i, j int) bool {
	return compareHeads(g.q[i], g.q[j], g.sortBy) < 0
}
func (g *globalQueue) Swap(i, j int) { g.q[i], g.q[j] = g.q[j], g.q[i] }
func (g *globalQueue) Push(x any)    { g.q = append(g.q, x.(*shardqueue)) }
func (g *globalQueue) Pop() any {
	result := g.q[len(g.q)-1]
	g.q[len(g.q)-1] = nil
	g.q = g.q[:len(g.q)-1]
	return result
}

// RowRef identifies a row produced by OrderedScan.
type RowRef struct {
	Shard *storageShard
	Row   uint32
}

type scanResult struct {
	q     *shardqueue
	err   any
	stack string
}

// OrderedScan merges per-shard rows into one globally ordered stream: each
// shard's rows are gathered and sorted in its own goroutine (pdqsort, run in
// parallel and cache-local to that shard's columns), then a heap merges the
// already-sorted per-shard streams, comparing only queue heads.
//
// If a comparator (reached through sortBy/a column's values) panics in any
// shard's goroutine, the panic is forwarded and re-raised in the caller's
// goroutine instead of crashing the process silently.
func OrderedScan(shards []*storageShard, rows map[*storageShard][]uint32, sortBy []sortSpec) []RowRef {
	results := make(chan scanResult, len(shards))
	var wg sync.WaitGroup
	for _, t := range shards {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					stack := ""
					if Settings.Backtrace {
						stack = string(debug.Stack())
					}
					results <- scanResult{err: r, stack: stack}
				}
			}()
			results <- scanResult{q: t.orderedScan(rows[t], sortBy)}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	gq := &globalQueue{sortBy: sortBy}
	for res := range results {
		if res.err != nil {
			if res.stack != "" {
				panic(scanError{res.err, res.stack})
			}
			panic(res.err)
		}
		if len(res.q.items) > 0 {
			gq.q = append(gq.q, res.q)
		}
	}
	heap.Init(gq)

	out := make([]RowRef, 0, len(gq.q))
	for gq.Len() > 0 {
		top := gq.q[0]
		out = append(out, RowRef{top.shard, top.items[0]})
		top.items = top.items[1:]
		if len(top.items) == 0 {
			heap.Pop(gq)
		} else {
			heap.Fix(gq, 0)
		}
	}
	return out
}

// scanError carries a recovered comparator panic across the goroutine
// boundary along with the stack at the point it was raised, when
// Settings.Backtrace asks for one.
type scanError struct {
	r     any
	stack string
}

func (e scanError) Error() string {
	return "panic during ordered scan"
}
