/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package bounds reports confidence intervals for the distinct-count estimate
// of a threshold-sampling sketch. A sketch that retained numSamples entries
// under sampling probability theta estimates numSamples/theta distinct items;
// the bounds around that estimate come from the binomial distribution of the
// number of retained entries.
//
// numStdDevs is similar to the number of standard deviations of the normal
// distribution and corresponds to approximately 67%, 95% and 99% confidence
// intervals for the values 1, 2 and 3.
package bounds

import (
	"fmt"
	"math"
	"strings"

	"github.com/thetasketch/sketchbounds/internal/binomialbounds"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidArgument is returned for a negative sample count, a theta outside
	// [0, 1] or a numStdDevs other than 1, 2 or 3. Use errors.Is to test for it.
	ErrInvalidArgument = binomialbounds.ErrInvalidArgument

	// ErrInternalInvariant signals a bug in regime selection rather than bad input.
	ErrInternalInvariant = binomialbounds.ErrInternalInvariant
)

// LowerBound returns the approximate lower bound on the number of distinct items
// given numSamples retained entries and the sampling probability theta.
// noDataSeen distinguishes a sketch that never received an update (both bounds
// are 0) from one that retained nothing under theta < 1, which still has a
// positive upper bound.
func LowerBound(numSamples int64, theta float64, numStdDevs int, noDataSeen bool) (float64, error) {
	return binomialbounds.LowerBound(numSamples, theta, numStdDevs, noDataSeen)
}

// UpperBound returns the approximate upper bound on the number of distinct items
// given numSamples retained entries and the sampling probability theta.
// See LowerBound for noDataSeen.
func UpperBound(numSamples int64, theta float64, numStdDevs int, noDataSeen bool) (float64, error) {
	return binomialbounds.UpperBound(numSamples, theta, numStdDevs, noDataSeen)
}

// Interval is an estimate together with its lower and upper bounds.
type Interval struct {
	LowerBound float64
	Estimate   float64
	UpperBound float64
	NumStdDevs int
}

// ForSample computes the estimate and both bounds in one call.
// The sample count may be of any integer type; sketches report it as uint32.
func ForSample[N constraints.Integer](numSamples N, theta float64, numStdDevs int, noDataSeen bool) (Interval, error) {
	n, err := toInt64(numSamples)
	if err != nil {
		return Interval{}, err
	}
	lb, err := binomialbounds.LowerBound(n, theta, numStdDevs, noDataSeen)
	if err != nil {
		return Interval{}, err
	}
	ub, err := binomialbounds.UpperBound(n, theta, numStdDevs, noDataSeen)
	if err != nil {
		return Interval{}, err
	}
	estimate := 0.0
	if !noDataSeen {
		estimate = float64(n) / theta
	}
	return Interval{
		LowerBound: lb,
		Estimate:   estimate,
		UpperBound: ub,
		NumStdDevs: numStdDevs,
	}, nil
}

// Sampled is the view of a threshold-sampling sketch needed to bound its estimate.
type Sampled interface {
	// NumRetained returns the number of retained entries.
	NumRetained() uint32
	// Theta returns the effective sampling rate as a fraction from 0 to 1.
	Theta() float64
	// IsEmpty returns true if the sketch never received an update.
	IsEmpty() bool
}

// ForSketch computes the interval around the estimate of s.
// numStdDevs number of Standard Deviations (1, 2 or 3)
func ForSketch(s Sampled, numStdDevs uint8) (Interval, error) {
	return ForSample(s.NumRetained(), s.Theta(), int(numStdDevs), s.IsEmpty())
}

// Contains returns true if n lies within the bounds.
func (i Interval) Contains(n float64) bool {
	return i.LowerBound <= n && n <= i.UpperBound
}

// RelativeError returns the distance from the estimate to each bound as a
// fraction of the estimate. Both are 0 when the estimate is 0.
func (i Interval) RelativeError() (lower, upper float64) {
	if i.Estimate == 0 {
		return 0, 0
	}
	return (i.Estimate - i.LowerBound) / i.Estimate, (i.UpperBound - i.Estimate) / i.Estimate
}

// String returns a human-readable summary of this interval.
func (i Interval) String() string {
	var result strings.Builder
	result.WriteString("### Bounds summary:")
	result.WriteString("\n")
	result.WriteString(fmt.Sprintf("   num std devs : %d", i.NumStdDevs))
	result.WriteString("\n")
	result.WriteString(fmt.Sprintf("   lower bound  : %f", i.LowerBound))
	result.WriteString("\n")
	result.WriteString(fmt.Sprintf("   estimate     : %f", i.Estimate))
	result.WriteString("\n")
	result.WriteString(fmt.Sprintf("   upper bound  : %f", i.UpperBound))
	result.WriteString("\n")
	result.WriteString("### End bounds summary")
	result.WriteString("\n")
	return result.String()
}

func toInt64[N constraints.Integer](n N) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: numSamples must be non-negative, got %d", ErrInvalidArgument, n)
	}
	if uint64(n) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: numSamples %d overflows int64", ErrInvalidArgument, n)
	}
	return int64(n), nil
}
