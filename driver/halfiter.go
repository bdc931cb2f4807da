// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package driver

import (
	"sync"

	"github.com/ajroetker/go-als/als"
	"github.com/ajroetker/go-als/hwy/contrib/workerpool"
)

// defaultScratchObs seeds RowScratch's initial capacity; rows with more
// observations than this grow their scratch on first use (als.RowScratch
// handles this transparently).
const defaultScratchObs = 32

// HalfIteration runs one HALF_U or HALF_V half-iteration: for every row
// of target, it gathers target's observations against partner and solves
// the per-row ALS update, writing the result back into target.F. Work is
// fanned out across pool with dynamic (work-stealing) scheduling via
// ParallelForAtomic, since per-row observation counts vary widely.
//
// Rows are independent: distinct workers write distinct rows of target.F
// and only ever read partner.F, so no synchronization is required beyond
// the pool.ParallelForAtomic call itself returning, which is also the
// happens-before barrier between one HALF_* and the next.
func HalfIteration(target, partner *als.Embedding, lambda, eps float32, pool *workerpool.Pool) error {
	k := target.F.Cols()
	n := target.F.Rows()

	var scratchPool = sync.Pool{
		New: func() any { return als.NewRowScratch(k, defaultScratchObs) },
	}

	var firstErr error
	var errMu sync.Mutex
	record := func(err error) {
		if err == nil {
			return
		}
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}

	pool.ParallelForAtomic(n, func(i int) {
		scratch := scratchPool.Get().(*als.RowScratch)
		defer scratchPool.Put(scratch)
		record(als.UpdateRow(target, i, partner, lambda, eps, scratch))
	})

	return firstErr
}
