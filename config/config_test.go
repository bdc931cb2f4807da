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

package config

import "testing"

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]string{"-train", "ratings.tsv"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.K != 16 || c.Iters != 10 || c.Lambda != 0.1 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestParseRequiresTrain(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatal("Parse: expected error when -train is missing")
	}
}

func TestParseSimdInfoSkipsTrainRequirement(t *testing.T) {
	c, err := Parse([]string{"-simd-info"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !c.SimdInfo {
		t.Error("SimdInfo = false, want true")
	}
}

func TestParseOverrides(t *testing.T) {
	c, err := Parse([]string{"-train", "a.tsv", "-k", "32", "-workers", "4", "-seed", "9"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.K != 32 || c.Workers != 4 || c.Seed != 9 {
		t.Errorf("unexpected overrides: %+v", c)
	}
}
