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

import "math"

// contClassicLB and contClassicUB are the classic gaussian bounds on the
// population size, with a continuity correction of half a sample folded into
// nHat. numStdDevs is real-valued so that the skewed regime can pass a
// tabulated equivalent.

func contClassicLB(numSamples, theta, numStdDevs float64) float64 {
	nHat := (numSamples - 0.5) / theta
	center, d := contClassicCenterAndHalfWidth(nHat, theta, numStdDevs)
	return center - d
}

func contClassicUB(numSamples, theta, numStdDevs float64) float64 {
	nHat := (numSamples + 0.5) / theta
	center, d := contClassicCenterAndHalfWidth(nHat, theta, numStdDevs)
	return center + d
}

func contClassicCenterAndHalfWidth(nHat, theta, numStdDevs float64) (float64, float64) {
	b := numStdDevs * math.Sqrt((1.0-theta)/theta)
	d := 0.5 * b * math.Sqrt(b*b+4.0*nHat)
	center := nHat + 0.5*(b*b)
	return center, d
}
