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
	"testing"

	"github.com/ajroetker/go-als/hwy/contrib/workerpool"
)

func smallModel() *Model {
	m := NewModel(4, 3, 2)
	m.Lambda = 0.1
	m.CGEpsilon = 1e-9
	m.Init(7)

	ratings := []struct{ u, i int; r float32 }{
		{0, 0, 5}, {0, 1, 3}, {1, 0, 4}, {1, 2, 2},
		{2, 1, 1}, {2, 2, 5}, {3, 0, 2}, {3, 2, 4},
	}
	for _, rt := range ratings {
		m.Users.AddObservation(rt.u, int32(rt.i), rt.r)
		m.Items.AddObservation(rt.i, int32(rt.u), rt.r)
	}
	return m
}

func TestHalfIterationRuns(t *testing.T) {
	m := smallModel()
	pool := workerpool.New(2)
	defer pool.Close()

	if err := HalfIteration(m.Users, m.Items, m.Lambda, m.CGEpsilon, pool); err != nil {
		t.Fatalf("HalfIteration (users): %v", err)
	}
	if err := HalfIteration(m.Items, m.Users, m.Lambda, m.CGEpsilon, pool); err != nil {
		t.Fatalf("HalfIteration (items): %v", err)
	}
}

// Property: the regularized objective must not increase across a full
// outer iteration, modulo float32 noise.
func TestALSObjectiveNonIncreasing(t *testing.T) {
	m := smallModel()
	pool := workerpool.New(2)
	defer pool.Close()

	prev := Objective(m, m.Lambda)
	for iter := 0; iter < 5; iter++ {
		if err := HalfIteration(m.Users, m.Items, m.Lambda, m.CGEpsilon, pool); err != nil {
			t.Fatalf("iter %d: HalfIteration (users): %v", iter, err)
		}
		if err := HalfIteration(m.Items, m.Users, m.Lambda, m.CGEpsilon, pool); err != nil {
			t.Fatalf("iter %d: HalfIteration (items): %v", iter, err)
		}
		cur := Objective(m, m.Lambda)
		if cur > prev+1e-3*prev+1e-3 {
			t.Errorf("iter %d: objective increased: %v -> %v", iter, prev, cur)
		}
		prev = cur
	}
}
