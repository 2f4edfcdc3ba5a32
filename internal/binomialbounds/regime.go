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

const (
	// above this many samples the gaussian approximation to the binomial is good enough
	maxSamplesForExactRegimes = 120

	// empirically determined thresholds, see selectRegime
	nearCertainThetaGap = 1e-5
	skewedThetaDivisor  = 360.0

	// added to upper bounds and subtracted from lower bounds computed by the
	// gaussian approximation, which stands in for rounding to an integer
	fakeRounding = 0.5
)

// side tells selectRegime which bound is being computed. The two sides share
// the regimes, except that a single sample has a closed form only for the
// lower bound.
type side int

const (
	lowerSide side = iota
	upperSide
)

type regime int

const (
	// theta == 1, every item was kept and the count is exact
	regimeNoSampling regime = iota
	// numSamples == 0, bounded by a closed form
	regimeNoSamples
	// numSamples == 1, closed form for the lower bound only
	regimeSingleSample
	// numSamples > 120, continuity-corrected gaussian approximation
	regimeGaussian
	// theta within 1e-5 of 1, at most one item can be missing
	regimeNearCertain
	// theta < numSamples/360, gaussian approximation with a tabulated number
	// of standard deviations
	regimeSkewedGaussian
	// everything else, exact sum over the binomial tail
	regimeExactTailSum
)

func (r regime) String() string {
	switch r {
	case regimeNoSampling:
		return "NO_SAMPLING"
	case regimeNoSamples:
		return "NO_SAMPLES"
	case regimeSingleSample:
		return "SINGLE_SAMPLE"
	case regimeGaussian:
		return "GAUSSIAN"
	case regimeNearCertain:
		return "NEAR_CERTAIN"
	case regimeSkewedGaussian:
		return "SKEWED_GAUSSIAN"
	case regimeExactTailSum:
		return "EXACT_TAIL_SUM"
	default:
		return "UNKNOWN"
	}
}

// selectRegime picks the formula for one bound. The order of the checks
// matters: theta == 1 wins over numSamples == 0, so a sketch that kept
// everything and saw nothing reports [0, 0].
func selectRegime(numSamples int64, theta float64, s side) regime {
	switch {
	case theta == 1.0:
		return regimeNoSampling
	case numSamples == 0:
		return regimeNoSamples
	case numSamples == 1 && s == lowerSide:
		return regimeSingleSample
	case numSamples > maxSamplesForExactRegimes:
		return regimeGaussian
	case theta > 1.0-nearCertainThetaGap:
		return regimeNearCertain
	case theta < float64(numSamples)/skewedThetaDivisor:
		return regimeSkewedGaussian
	default:
		// here numSamples/theta <= 360, which keeps the tail sum short
		return regimeExactTailSum
	}
}
