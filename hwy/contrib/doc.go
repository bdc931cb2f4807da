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

// Package contrib holds higher-level utilities built on top of the hwy
// vector primitives.
//
// # Subpackages
//
//   - workerpool: a bounded pool of persistent worker goroutines with
//     static (ParallelFor) and dynamic work-stealing (ParallelForAtomic)
//     scheduling. The als and driver packages use it to parallelize
//     symmetric-product block rows and per-row ALS solves.
//
// See each subpackage's documentation for detailed API information.
package contrib
