/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package pick implements uniform random selection over small, fixed
// candidate lists.
//
// A Selector owns one random source. The zero Selector seeds itself from the
// wall clock on first use and never again; repeated calls within the same
// clock tick therefore still produce independent draws.
package pick

import (
	"errors"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// ErrNoCandidates is returned when selection is attempted over an empty list.
var ErrNoCandidates = errors.New("dhaiku: no candidates to pick from")

// seedCounter separates selectors that happen to seed within one clock tick.
var seedCounter atomic.Uint64

// Selector draws uniformly distributed indices. It is safe for concurrent use.
type Selector struct {
	once sync.Once
	mu   sync.Mutex
	rng  *rand.Rand

	// seeds counts how many times the lazy seeding step ran. It never
	// exceeds one.
	seeds atomic.Int32
}

// New returns a Selector drawing from src. No lazy seeding happens; the
// caller owns the source state.
func New(src rand.Source) *Selector {
	s := &Selector{rng: rand.New(src)}
	s.once.Do(func() {})
	return s
}

// std is the process-wide selector used by One.
var std Selector

// Default returns the process-wide selector.
func Default() *Selector { return &std }

func (s *Selector) init() {
	s.once.Do(func() {
		now := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(now, seedCounter.Add(1)))
		s.seeds.Add(1)
	})
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Selector) IntN(n int) int {
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// From returns one element of candidates chosen uniformly by s.
// A single candidate is returned as is, without a draw.
func From[T any](s *Selector, candidates []T) (T, error) {
	switch len(candidates) {
	case 0:
		var zero T
		return zero, ErrNoCandidates
	case 1:
		return candidates[0], nil
	}
	return candidates[s.IntN(len(candidates))], nil
}

// One is From over the process-wide selector.
func One[T any](candidates []T) (T, error) {
	return From(&std, candidates)
}
