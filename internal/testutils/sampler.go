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

// Package testutils holds helpers shared by tests. ThresholdSample keeps the
// items whose hash falls below theta, the same way a theta sketch screens its
// input, so that bounds can be checked against real sampled streams.
package testutils

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

const (
	// MaxTheta is the largest 63-bit hash. A sample at MaxTheta keeps everything.
	MaxTheta uint64 = math.MaxInt64

	// DefaultSeed is the default seed for hashing
	DefaultSeed uint64 = 9001
)

// Hasher maps a key to a 63-bit hash.
type Hasher func(key uint64) uint64

// Murmur3Hasher hashes with 128-bit murmur3 and keeps the top 63 bits of h1.
func Murmur3Hasher(seed uint64) Hasher {
	return func(key uint64) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], key)
		h1, _ := murmur3.SeedSum128(seed, seed, buf[:])
		return h1 >> 1
	}
}

// XXHasher hashes with seeded xxhash64.
func XXHasher(seed uint64) Hasher {
	return func(key uint64) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], key)
		h := xxhash.NewWithSeed(seed)
		_, _ = h.Write(buf[:])
		return h.Sum64() >> 1
	}
}

// ThresholdSample retains every distinct key whose hash is below theta.
type ThresholdSample struct {
	theta   uint64
	hasher  Hasher
	kept    map[uint64]struct{}
	isEmpty bool
}

// NewThresholdSample creates an empty sample with the given sampling
// probability p in [0, 1].
func NewThresholdSample(p float64, hasher Hasher) *ThresholdSample {
	theta := MaxTheta
	if p < 1.0 {
		theta = uint64(float64(MaxTheta) * p)
	}
	return &ThresholdSample{
		theta:   theta,
		hasher:  hasher,
		kept:    make(map[uint64]struct{}),
		isEmpty: true,
	}
}

// Update offers key to the sample.
func (s *ThresholdSample) Update(key uint64) {
	s.isEmpty = false
	hash := s.hasher(key)
	if hash >= s.theta || hash == 0 {
		return
	}
	s.kept[hash] = struct{}{}
}

// NumRetained returns the number of retained entries.
func (s *ThresholdSample) NumRetained() uint32 {
	return uint32(len(s.kept))
}

// Theta returns theta as a fraction from 0 to 1.
func (s *ThresholdSample) Theta() float64 {
	return float64(s.theta) / float64(MaxTheta)
}

// IsEmpty returns true if Update was never called.
func (s *ThresholdSample) IsEmpty() bool {
	return s.isEmpty
}
