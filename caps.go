/*
 * Copyright 2024 The jflat Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jflat

import "github.com/klauspost/cpuid/v2"

// Unlike the teacher library, jflat's parser is a plain scalar recursive
// descent -- it has no SIMD code path to gate, so cpuid is not load
// bearing for correctness here. It is still wired in for a single,
// non-semantic purpose: sizing the initial token-buffer allocation
// WithCapacityHint would otherwise leave to a guess.

// wideCacheCPU reports whether the host CPU supports AVX2 or has an L2
// cache of at least 512 KiB, in which case growing the initial token
// buffer a bit more aggressively is unlikely to cause eviction pressure
// worth avoiding. It never changes
// parse results, only the capacity ParseDocument starts a token slice at
// when the caller didn't supply WithCapacityHint.
func wideCacheCPU() bool {
	return cpuid.CPU.Supports(cpuid.AVX2) || cpuid.CPU.Cache.L2 >= 512*1024
}

// capacityFor returns the initial capacity ParseDocument should allocate
// for a sizing pass of n expected tokens when no WithCapacityHint was
// given: a small fixed headroom on narrower hosts, a larger one on hosts
// cpuid reports as having more cache to spare.
func capacityFor(n int) int {
	if n == 0 {
		return 0
	}
	headroom := n / 8
	if wideCacheCPU() {
		headroom = n / 4
	}
	return n + headroom
}
