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

// Package binomialbounds computes approximate confidence bounds on the size of
// a population from which numSamples items were retained by independent
// Bernoulli sampling with probability theta. These are the error bounds
// reported by threshold-sampling sketches next to their estimate
// numSamples/theta.
//
// Depending on numSamples and theta the bounds come from one of several
// regimes: an exact answer, closed forms for zero and one sample, a
// continuity-corrected gaussian approximation, the same approximation with a
// tabulated equivalent number of standard deviations, or an exact sum over the
// tail of the binomial distribution.
package binomialbounds

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is returned when numSamples, theta or numStdDevs is out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInternalInvariant is returned when a computation is asked to run outside the
	// domain its regime guarantees. It indicates a bug, not bad input.
	ErrInternalInvariant = errors.New("internal invariant violated")
)

// deltaOfNumStdDevs maps numStdDevs to the probability left in one tail of a
// standard normal distribution. Index 0 is not used.
var deltaOfNumStdDevs = [4]float64{
	0.5000000000000000000,
	0.1586553191586026479,
	0.0227502618904135701,
	0.0013498126861731796,
}

// LowerBound returns the approximate lower bound on the population size given
// numSamples retained items and the sampling probability theta.
// numStdDevs selects the confidence level (1, 2 or 3 standard deviations,
// roughly 68%, 95% and 99.7% two-sided).
// noDataSeen marks the virgin state where nothing has been offered to the
// sampler yet; it returns 0 without looking at the other arguments.
// The result never exceeds numSamples/theta and is never below numSamples.
func LowerBound(numSamples int64, theta float64, numStdDevs int, noDataSeen bool) (float64, error) {
	if noDataSeen {
		return 0.0, nil
	}
	if err := checkArgs(numSamples, theta, numStdDevs); err != nil {
		return 0, err
	}
	lb, err := computeApproxBinoLB(numSamples, theta, numStdDevs)
	if err != nil {
		return 0, err
	}
	numSamplesF := float64(numSamples)
	estimate := numSamplesF / theta
	return math.Min(estimate, math.Max(numSamplesF, lb)), nil
}

// UpperBound returns the approximate upper bound on the population size given
// numSamples retained items and the sampling probability theta.
// See LowerBound for the meaning of numStdDevs and noDataSeen.
// The result is never below numSamples/theta.
func UpperBound(numSamples int64, theta float64, numStdDevs int, noDataSeen bool) (float64, error) {
	if noDataSeen {
		return 0.0, nil
	}
	if err := checkArgs(numSamples, theta, numStdDevs); err != nil {
		return 0, err
	}
	ub, err := computeApproxBinoUB(numSamples, theta, numStdDevs)
	if err != nil {
		return 0, err
	}
	estimate := float64(numSamples) / theta
	return math.Max(estimate, ub), nil
}

func checkArgs(numSamples int64, theta float64, numStdDevs int) error {
	if numStdDevs < 1 || numStdDevs > 3 {
		return fmt.Errorf("%w: numStdDevs must be 1, 2 or 3, got %d", ErrInvalidArgument, numStdDevs)
	}
	if numSamples < 0 {
		return fmt.Errorf("%w: numSamples must be non-negative, got %d", ErrInvalidArgument, numSamples)
	}
	// written this way so that NaN is rejected too
	if !(theta >= 0.0 && theta <= 1.0) {
		return fmt.Errorf("%w: theta must be in [0, 1], got %v", ErrInvalidArgument, theta)
	}
	return nil
}

// computeApproxBinoLB approximates the lower bound of a frequentist confidence
// interval based on the tails of the binomial distribution.
func computeApproxBinoLB(numSamples int64, theta float64, numStdDevs int) (float64, error) {
	delta := deltaOfNumStdDevs[numStdDevs]
	switch selectRegime(numSamples, theta, lowerSide) {
	case regimeNoSampling:
		return float64(numSamples), nil
	case regimeNoSamples:
		return 0.0, nil
	case regimeSingleSample:
		rawLB := math.Log(1.0-delta) / math.Log(1.0-theta)
		return math.Floor(rawLB), nil
	case regimeGaussian:
		return contClassicLB(float64(numSamples), theta, float64(numStdDevs)) - fakeRounding, nil
	case regimeNearCertain:
		return float64(numSamples), nil
	case regimeSkewedGaussian:
		equiv := lbEquivNumStdDevs(numSamples, numStdDevs)
		return contClassicLB(float64(numSamples), theta, equiv) - fakeRounding, nil
	default:
		nStar, err := specialNStar(numSamples, theta, delta)
		if err != nil {
			return 0, err
		}
		return float64(nStar), nil
	}
}

// computeApproxBinoUB approximates the upper bound of a frequentist confidence
// interval based on the tails of the binomial distribution.
func computeApproxBinoUB(numSamples int64, theta float64, numStdDevs int) (float64, error) {
	delta := deltaOfNumStdDevs[numStdDevs]
	switch selectRegime(numSamples, theta, upperSide) {
	case regimeNoSampling:
		return float64(numSamples), nil
	case regimeNoSamples:
		rawUB := math.Log(delta) / math.Log(1.0-theta)
		return math.Ceil(rawUB), nil
	case regimeGaussian:
		return contClassicUB(float64(numSamples), theta, float64(numStdDevs)) + fakeRounding, nil
	case regimeNearCertain:
		return float64(numSamples + 1), nil
	case regimeSkewedGaussian:
		equiv := ubEquivNumStdDevs(numSamples, numStdDevs)
		return contClassicUB(float64(numSamples), theta, equiv) + fakeRounding, nil
	default:
		nPrimeF, err := specialNPrimeF(numSamples, theta, delta)
		if err != nil {
			return 0, err
		}
		return float64(nPrimeF), nil
	}
}
