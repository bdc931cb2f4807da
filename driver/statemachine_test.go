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
	"io"
	"log/slog"
	"testing"

	"github.com/ajroetker/go-als/hwy/contrib/workerpool"
)

func TestRunCompletesIterations(t *testing.T) {
	m := smallModel()
	pool := workerpool.New(2)
	defer pool.Close()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	eval := &EvalSet{
		Users:   []int32{0, 1},
		Items:   []int32{1, 2},
		Ratings: []float32{3, 2},
	}

	if err := Run(context.Background(), m, pool, 3, eval, log); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	m := smallModel()
	pool := workerpool.New(2)
	defer pool.Close()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, m, pool, 3, nil, log); err == nil {
		t.Fatal("Run: expected error for cancelled context")
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateIdle:  "IDLE",
		StateInit:  "INIT",
		StateHalfU: "HALF_U",
		StateSyncU: "SYNC_U",
		StateHalfV: "HALF_V",
		StateSyncV: "SYNC_V",
		StateEval:  "EVAL",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
