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

package binomialbounds

import (
	"fmt"
	"math"
)

// The procedures below compute "exact" bounds by walking outward from the mode
// of the posterior over the population size, adding up probability terms until
// the running total crosses a target. The suffixes NStar, NPrimeB and NPrimeF
// name the corresponding quantities of the formal write-up of the scheme.
//
// They only work on a narrow range of inputs. Terms are not kept as logarithms,
// so p^numSamples must stay well inside the range of a float64, and the number of
// steps grows linearly with numSamples/p. selectRegime only sends inputs with
// numSamples <= 120 and numSamples/p <= 360 here.

const (
	maxTailSumEstimate = 500.0
	minModeTerm        = 1e-100

	// comfortably above the longest walk any regime-selected input needs
	maxTailSumSteps = 1 << 14
)

// specialNStar returns the lower bound: the largest population size n whose
// posterior tail, accumulated from n = numSamples, does not exceed delta.
func specialNStar(numSamples int64, p, delta float64) (int64, error) {
	if err := checkTailSumArgs(numSamples, p, delta); err != nil {
		return 0, err
	}
	if err := checkTailSumEstimate(numSamples, p); err != nil {
		return 0, err
	}
	// this test can fail on the very first term
	m, err := walkBinomialTail(numSamples, p, func(tot float64) bool { return tot <= delta })
	if err != nil {
		return 0, err
	}
	// tot > delta now, so back up one
	return m - 1, nil
}

// specialNPrimeB returns the smallest population size at which the tail,
// accumulated from n = numSamples, reaches 1-delta.
func specialNPrimeB(numSamples int64, p, delta float64) (int64, error) {
	if err := checkTailSumArgs(numSamples, p, delta); err != nil {
		return 0, err
	}
	oneMinusDelta := 1.0 - delta
	return walkBinomialTail(numSamples, p, func(tot float64) bool { return tot < oneMinusDelta })
}

// specialNPrimeF returns the upper bound. It is specialNPrimeB shifted by one
// sample.
func specialNPrimeF(numSamples int64, p, delta float64) (int64, error) {
	// a very small delta could also make this slow, the step cap catches that
	if err := checkTailSumEstimate(numSamples, p); err != nil {
		return 0, err
	}
	return specialNPrimeB(numSamples+1, p, delta)
}

// walkBinomialTail starts at m = numSamples with the mode term p^numSamples
// and advances m while more(tot) holds. It returns the final m.
func walkBinomialTail(numSamples int64, p float64, more func(tot float64) bool) (int64, error) {
	q := 1.0 - p
	curTerm := math.Pow(p, float64(numSamples))
	if !(curTerm > minModeTerm) {
		return 0, fmt.Errorf("%w: mode term %g of the tail sum is below %g for numSamples=%d, p=%v",
			ErrInternalInvariant, curTerm, minModeTerm, numSamples, p)
	}
	tot := curTerm
	m := numSamples
	for steps := 0; more(tot); steps++ {
		if steps >= maxTailSumSteps {
			return 0, fmt.Errorf("%w: tail sum did not converge within %d steps for numSamples=%d, p=%v",
				ErrInternalInvariant, maxTailSumSteps, numSamples, p)
		}
		curTerm = curTerm * q * float64(m) / float64(m+1-numSamples)
		tot += curTerm
		m++
	}
	return m, nil
}

func checkTailSumArgs(numSamples int64, p, delta float64) error {
	if numSamples < 1 {
		return fmt.Errorf("%w: tail sum needs at least one sample, got %d", ErrInternalInvariant, numSamples)
	}
	if !(0.0 < p && p < 1.0) {
		return fmt.Errorf("%w: tail sum needs 0 < p < 1, got %v", ErrInternalInvariant, p)
	}
	if !(0.0 < delta && delta < 1.0) {
		return fmt.Errorf("%w: tail sum needs 0 < delta < 1, got %v", ErrInternalInvariant, delta)
	}
	return nil
}

func checkTailSumEstimate(numSamples int64, p float64) error {
	if !(float64(numSamples)/p < maxTailSumEstimate) {
		return fmt.Errorf("%w: tail sum needs numSamples/p < %v, got %v",
			ErrInternalInvariant, maxTailSumEstimate, float64(numSamples)/p)
	}
	return nil
}
