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
	"context"
	"fmt"
	"log/slog"

	"github.com/ajroetker/go-als/hwy/contrib/workerpool"
)

// State names the outer training loop's states: IDLE -> INGEST ->
// INIT -> HALF_U -> SYNC_U -> HALF_V -> SYNC_V -> EVAL -> HALF_U ...
// Ingestion itself lives in the ingest package, outside this state
// machine; Run starts from INIT, assuming the caller already populated
// m.Users/m.Items' observation lists.
type State int

const (
	StateIdle State = iota
	StateInit
	StateHalfU
	StateSyncU
	StateHalfV
	StateSyncV
	StateEval
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateInit:
		return "INIT"
	case StateHalfU:
		return "HALF_U"
	case StateSyncU:
		return "SYNC_U"
	case StateHalfV:
		return "HALF_V"
	case StateSyncV:
		return "SYNC_V"
	case StateEval:
		return "EVAL"
	default:
		return "UNKNOWN"
	}
}

// EvalSet is a held-out (user, item, rating) triple set used for the EVAL
// state's RMSE report. A nil/empty EvalSet skips reporting but still
// advances the state machine.
type EvalSet struct {
	Users   []int32
	Items   []int32
	Ratings []float32
}

// Run drives the outer ALS training loop for iters outer iterations,
// starting from INIT (m.Users/m.Items must already be seeded via
// m.Init and have their observation lists populated). Each outer
// iteration is HALF_U -> SYNC_U -> HALF_V -> SYNC_V -> EVAL.
//
// SYNC_U/SYNC_V are no-ops in this single-process driver: the
// happens-before edge between HALF_U ending and HALF_V starting is
// already established by HalfIteration's pool.ParallelForAtomic call
// returning before Run proceeds to the next state.
func Run(ctx context.Context, m *Model, pool *workerpool.Pool, iters int, eval *EvalSet, log *slog.Logger) error {
	state := StateInit
	log.Info("state transition", "state", state.String())

	for iter := 0; iter < iters; iter++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		state = StateHalfU
		if err := HalfIteration(m.Users, m.Items, m.Lambda, m.CGEpsilon, pool); err != nil {
			return fmt.Errorf("driver: %s: %w", state, err)
		}

		state = StateSyncU
		// no-op: single process, see doc comment.

		state = StateHalfV
		if err := HalfIteration(m.Items, m.Users, m.Lambda, m.CGEpsilon, pool); err != nil {
			return fmt.Errorf("driver: %s: %w", state, err)
		}

		state = StateSyncV
		// no-op: single process, see doc comment.

		state = StateEval
		if eval != nil && len(eval.Users) > 0 {
			rmse := RMSE(m, eval.Users, eval.Items, eval.Ratings)
			log.Info("iteration complete", "iter", iter+1, "rmse", rmse)
		} else {
			log.Info("iteration complete", "iter", iter+1)
		}
	}
	return nil
}
