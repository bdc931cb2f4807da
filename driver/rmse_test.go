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

import "testing"

func TestRMSEExactPrediction(t *testing.T) {
	m := NewModel(1, 1, 2)
	copy(m.Users.F.RowSlice(0), []float32{1, 2})
	copy(m.Items.F.RowSlice(0), []float32{3, 0})

	rmse := RMSE(m, []int32{0}, []int32{0}, []float32{3})
	if rmse != 0 {
		t.Errorf("RMSE = %v, want 0", rmse)
	}
}

func TestRMSEEmptySet(t *testing.T) {
	m := NewModel(1, 1, 2)
	if got := RMSE(m, nil, nil, nil); got != 0 {
		t.Errorf("RMSE(empty) = %v, want 0", got)
	}
}
