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
	"log"

	"github.com/dc0d/onexit"
)

// SettingsT holds the knobs that control how a shard's indexes and ordered
// scans behave. There's no query planner here to own them, so they're a
// package-level var like the rest of this codebase's configuration.
type SettingsT struct {
	// Backtrace, if true, captures a full stack trace alongside a
	// comparator panic during OrderedScan so the caller can see which
	// shard's goroutine was mid-sort, not just the panic value.
	Backtrace bool

	// IndexSavingsThreshold is how many scans an index has to plausibly
	// save before it's worth paying the pdqsort rebuild cost for it.
	IndexSavingsThreshold float64

	// ShardSize is the delta-buffer row count at which the caller is
	// expected to compact a shard. Nothing in this package reads it or
	// compacts on its own.
	ShardSize uint
}

var Settings = SettingsT{
	Backtrace:             false,
	IndexSavingsThreshold: indexSavingsThreshold,
	ShardSize:             60000,
}

// InitSettings registers an exit hook that logs a shutdown message; the
// hook closes nothing. Call it once after Settings is populated.
func InitSettings() {
	onexit.Register(func() {
		log.Println("storage: closing shards on exit")
	})
}
