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

package bounds

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetasketch/sketchbounds/internal/testutils"
)

func TestForSample(t *testing.T) {
	testCases := []struct {
		name       string
		numSamples int64
		theta      float64
		numStdDevs int
		noDataSeen bool
		want       Interval
	}{
		{
			name:       "virgin",
			numSamples: 0,
			theta:      0.1,
			numStdDevs: 2,
			noDataSeen: true,
			want:       Interval{NumStdDevs: 2},
		},
		{
			name:       "zero samples under sampling",
			numSamples: 0,
			theta:      0.1,
			numStdDevs: 1,
			want:       Interval{LowerBound: 0, Estimate: 0, UpperBound: 18, NumStdDevs: 1},
		},
		{
			name:       "exact mode",
			numSamples: 4096,
			theta:      1.0,
			numStdDevs: 3,
			want:       Interval{LowerBound: 4096, Estimate: 4096, UpperBound: 4096, NumStdDevs: 3},
		},
		{
			name:       "exact tail sum",
			numSamples: 10,
			theta:      0.5,
			numStdDevs: 2,
			want:       Interval{LowerBound: 12, Estimate: 20, UpperBound: 33, NumStdDevs: 2},
		},
		{
			name:       "gaussian",
			numSamples: 1000,
			theta:      0.1,
			numStdDevs: 2,
			want:       Interval{LowerBound: 9412.3800119976, Estimate: 10000, UpperBound: 10623.91985310281, NumStdDevs: 2},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ForSample(tc.numSamples, tc.theta, tc.numStdDevs, tc.noDataSeen)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("ForSample(%d, %v, %d, %t) mismatch (-want +got):\n%s",
					tc.numSamples, tc.theta, tc.numStdDevs, tc.noDataSeen, diff)
			}
		})
	}
}

func TestForSampleIntegerTypes(t *testing.T) {
	want, err := ForSample(int64(50), 0.25, 2, false)
	require.NoError(t, err)

	fromInt, err := ForSample(50, 0.25, 2, false)
	require.NoError(t, err)
	fromUint32, err := ForSample(uint32(50), 0.25, 2, false)
	require.NoError(t, err)
	fromUint8, err := ForSample(uint8(50), 0.25, 2, false)
	require.NoError(t, err)

	assert.Equal(t, want, fromInt)
	assert.Equal(t, want, fromUint32)
	assert.Equal(t, want, fromUint8)
}

func TestInvalidArguments(t *testing.T) {
	testCases := []struct {
		name       string
		numSamples int64
		theta      float64
		numStdDevs int
	}{
		{name: "numStdDevs = 0", numSamples: 10, theta: 0.5, numStdDevs: 0},
		{name: "numStdDevs = 4", numSamples: 10, theta: 0.5, numStdDevs: 4},
		{name: "theta = -0.1", numSamples: 10, theta: -0.1, numStdDevs: 1},
		{name: "theta = 1.1", numSamples: 10, theta: 1.1, numStdDevs: 1},
		{name: "numSamples = -1", numSamples: -1, theta: 0.5, numStdDevs: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LowerBound(tc.numSamples, tc.theta, tc.numStdDevs, false)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			_, err = UpperBound(tc.numSamples, tc.theta, tc.numStdDevs, false)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			_, err = ForSample(tc.numSamples, tc.theta, tc.numStdDevs, false)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}

	t.Run("uint64 overflow", func(t *testing.T) {
		_, err := ForSample(uint64(math.MaxUint64), 0.5, 1, false)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorContains(t, err, "overflows int64")
	})
}

func TestIntervalHelpers(t *testing.T) {
	i := Interval{LowerBound: 80, Estimate: 100, UpperBound: 125, NumStdDevs: 2}
	assert.True(t, i.Contains(80))
	assert.True(t, i.Contains(125))
	assert.False(t, i.Contains(79.9))
	assert.False(t, i.Contains(125.1))

	lower, upper := i.RelativeError()
	assert.InDelta(t, 0.2, lower, 1e-12)
	assert.InDelta(t, 0.25, upper, 1e-12)

	lower, upper = Interval{}.RelativeError()
	assert.Zero(t, lower)
	assert.Zero(t, upper)

	s := i.String()
	assert.Contains(t, s, "### Bounds summary:")
	assert.Contains(t, s, "estimate     : 100.000000")
	assert.Contains(t, s, "num std devs : 2")
}

func TestForSketch(t *testing.T) {
	t.Run("empty sample is virgin", func(t *testing.T) {
		sample := testutils.NewThresholdSample(0.1, testutils.Murmur3Hasher(testutils.DefaultSeed))
		got, err := ForSketch(sample, 2)
		require.NoError(t, err)
		assert.Equal(t, Interval{NumStdDevs: 2}, got)
	})

	t.Run("exact mode", func(t *testing.T) {
		sample := testutils.NewThresholdSample(1.0, testutils.Murmur3Hasher(testutils.DefaultSeed))
		for key := uint64(0); key < 1000; key++ {
			sample.Update(key)
		}
		got, err := ForSketch(sample, 2)
		require.NoError(t, err)
		n := float64(sample.NumRetained())
		assert.Equal(t, Interval{LowerBound: n, Estimate: n, UpperBound: n, NumStdDevs: 2}, got)
	})

	t.Run("estimation mode", func(t *testing.T) {
		sample := testutils.NewThresholdSample(0.05, testutils.XXHasher(testutils.DefaultSeed))
		for key := uint64(0); key < 10000; key++ {
			sample.Update(key)
		}
		got, err := ForSketch(sample, 3)
		require.NoError(t, err)
		assert.Less(t, got.LowerBound, got.Estimate)
		assert.Greater(t, got.UpperBound, got.Estimate)
		assert.True(t, got.Contains(10000))
	})
}

// Coverage checks the bounds against real sampled streams: a 2 standard
// deviation interval should contain the true count in about 95% of trials.
func TestCoverage(t *testing.T) {
	const (
		trials     = 200
		numStdDevs = 2
	)
	hashers := map[string]testutils.Hasher{
		"murmur3": testutils.Murmur3Hasher(testutils.DefaultSeed),
		"xxhash":  testutils.XXHasher(testutils.DefaultSeed),
	}
	testCases := []struct {
		numItems uint64
		theta    float64
	}{
		{numItems: 200, theta: 0.3},   // exact tail sum for most trials
		{numItems: 1000, theta: 0.05}, // skewed gaussian
		{numItems: 2000, theta: 0.1},  // gaussian
		{numItems: 300, theta: 0.02},  // few samples
	}
	for name, hasher := range hashers {
		for _, tc := range testCases {
			covered := 0
			for trial := uint64(0); trial < trials; trial++ {
				sample := testutils.NewThresholdSample(tc.theta, hasher)
				for key := uint64(0); key < tc.numItems; key++ {
					sample.Update(trial*tc.numItems + key)
				}
				got, err := ForSketch(sample, numStdDevs)
				require.NoError(t, err)
				if got.Contains(float64(tc.numItems)) {
					covered++
				}
			}
			coverage := float64(covered) / trials
			assert.GreaterOrEqual(t, coverage, 0.85, "%s n=%d theta=%v", name, tc.numItems, tc.theta)
		}
	}
}
