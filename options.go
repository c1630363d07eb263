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

// Option configures a Parse or ParseDocument call.
type Option func(cfg *config) error

type config struct {
	maxDepth     int
	capacityHint int
	codec        SnapshotCodec
}

func defaultConfig() config {
	return config{
		maxDepth: 0, // 0 defers to the parser package's own default (128)
		codec:    CodecS2,
	}
}

// WithMaxDepth bounds container nesting depth. Parsing input nested
// deeper than depth fails with TooDeep rather than growing the recursive
// descent's call stack without limit. A depth of 0 (the default) uses the
// package's built-in limit of 128, matching the scope-stack size the
// teacher library reserved for its own (non-recursive) tape builder.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) error {
		cfg.maxDepth = depth
		return nil
	}
}

// WithCapacityHint preallocates the token slice a Parse call returns to
// roughly hint tokens, avoiding a reallocation when the caller has a good
// estimate of document size (e.g. from a prior parse of similar input).
// It never affects the number of tokens actually produced, only the
// initial capacity of the slice that holds them.
func WithCapacityHint(hint int) Option {
	return func(cfg *config) error {
		cfg.capacityHint = hint
		return nil
	}
}

// WithSnapshotCodec selects the compressor Document.SaveDefault uses when
// the Document is later serialized (Document.Save takes its codec as an
// argument instead). It has no effect on parsing itself.
func WithSnapshotCodec(codec SnapshotCodec) Option {
	return func(cfg *config) error {
		cfg.codec = codec
		return nil
	}
}
