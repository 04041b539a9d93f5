// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trend

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// ComputeTicks returns evenly spaced axis ticks covering values: the
// minimum floored to a multiple of step through the maximum ceiled
// to one, inclusive, spaced by step. A constant input whose floored
// and ceiled bounds coincide yields a single tick.
func ComputeTicks(values []float64, step float64) []float64 {
	if len(values) == 0 || step <= 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo = math.Floor(lo/step) * step
	hi = math.Ceil(hi/step) * step
	n := int(math.Round((hi-lo)/step)) + 1
	if n < 2 {
		return []float64{lo}
	}
	return vec.Linspace(lo, hi, n)
}
