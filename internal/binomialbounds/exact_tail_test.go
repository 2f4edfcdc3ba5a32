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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialNStar(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		n, err := specialNStar(10, 0.5, deltaOfNumStdDevs[1])
		require.NoError(t, err)
		assert.Equal(t, int64(15), n)
	})

	t.Run("backs up one step", func(t *testing.T) {
		// tot starts at 0.5 which does not exceed delta, one step takes it to 0.75
		n, err := specialNStar(1, 0.5, 0.5)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("first term already exceeds delta", func(t *testing.T) {
		n, err := specialNStar(2, 0.9, 0.5)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("estimate too large", func(t *testing.T) {
		_, err := specialNStar(10, 0.02, deltaOfNumStdDevs[1])
		assert.ErrorIs(t, err, ErrInternalInvariant)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := specialNStar(0, 0.5, 0.1)
		assert.ErrorIs(t, err, ErrInternalInvariant)
		_, err = specialNStar(5, 1.0, 0.1)
		assert.ErrorIs(t, err, ErrInternalInvariant)
		_, err = specialNStar(5, 0.5, 0.0)
		assert.ErrorIs(t, err, ErrInternalInvariant)
	})
}

func TestSpecialNPrimeB(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		n, err := specialNPrimeB(10, 0.5, deltaOfNumStdDevs[1])
		require.NoError(t, err)
		assert.Equal(t, int64(24), n)
	})

	t.Run("does not back up", func(t *testing.T) {
		n, err := specialNPrimeB(1, 0.5, 0.5)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("mode term underflows", func(t *testing.T) {
		// 0.3^200 is about 1e-105
		_, err := specialNPrimeB(200, 0.3, 0.1)
		assert.ErrorIs(t, err, ErrInternalInvariant)
		assert.ErrorContains(t, err, "mode term")
	})

	t.Run("step cap", func(t *testing.T) {
		// reaching half the mass needs roughly 70000 steps at this p
		_, err := specialNPrimeB(1, 1e-5, 0.5)
		assert.ErrorIs(t, err, ErrInternalInvariant)
		assert.ErrorContains(t, err, "did not converge")
	})
}

func TestSpecialNPrimeF(t *testing.T) {
	n, err := specialNPrimeF(10, 0.5, deltaOfNumStdDevs[1])
	require.NoError(t, err)
	assert.Equal(t, int64(27), n)

	shifted, err := specialNPrimeB(11, 0.5, deltaOfNumStdDevs[1])
	require.NoError(t, err)
	assert.Equal(t, shifted, n)

	_, err = specialNPrimeF(10, 0.01, deltaOfNumStdDevs[1])
	assert.ErrorIs(t, err, ErrInternalInvariant)
}

func TestLowerTailBelowUpperTail(t *testing.T) {
	for numSamples := int64(2); numSamples <= maxSamplesForExactRegimes; numSamples++ {
		p := float64(numSamples) / 300.0
		for numStdDevs := 1; numStdDevs <= 3; numStdDevs++ {
			nStar, err := specialNStar(numSamples, p, deltaOfNumStdDevs[numStdDevs])
			require.NoError(t, err)
			nPrimeF, err := specialNPrimeF(numSamples, p, deltaOfNumStdDevs[numStdDevs])
			require.NoError(t, err)
			assert.Less(t, nStar, nPrimeF)
			assert.LessOrEqual(t, float64(nStar), float64(numSamples)/p)
			assert.GreaterOrEqual(t, float64(nPrimeF), float64(numSamples)/p)
		}
	}
}
