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

// Package config holds the alstrain command's flag-parsed configuration.
package config

import (
	"errors"
	"flag"
)

// Config holds one alstrain run's parameters.
type Config struct {
	TrainPath string
	TestPath  string
	K         int
	Lambda    float64
	Iters     int
	Workers   int
	Seed      int64
	CGEpsilon float64
	SimdInfo  bool
}

// Parse parses args (typically os.Args[1:]) into a Config.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("alstrain", flag.ContinueOnError)
	c := &Config{}

	fs.StringVar(&c.TrainPath, "train", "", "path to the training ratings file (user item rating per line)")
	fs.StringVar(&c.TestPath, "test", "", "optional path to a held-out ratings file for RMSE reporting")
	fs.IntVar(&c.K, "k", 16, "latent factor dimension")
	fs.Float64Var(&c.Lambda, "lambda", 0.1, "regularization weight")
	fs.IntVar(&c.Iters, "iters", 10, "number of outer HALF_U/HALF_V iterations")
	fs.IntVar(&c.Workers, "workers", 0, "worker pool size (0 = GOMAXPROCS)")
	fs.Int64Var(&c.Seed, "seed", 1, "deterministic initialization seed")
	fs.Float64Var(&c.CGEpsilon, "cg-epsilon", 1e-6, "Conjugate Gradients squared-residual tolerance")
	fs.BoolVar(&c.SimdInfo, "simd-info", false, "print the active SIMD dispatch level (and exit unless -train is also given)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if !c.SimdInfo && c.TrainPath == "" {
		return nil, errors.New("config: -train is required")
	}
	return c, nil
}
