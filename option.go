// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package chunkcache

import (
	"errors"
)

const (
	illegalThreshold    = -1
	defaultThreshold    = 800
	defaultStatsEnabled = false
)

var (
	// ErrIllegalThreshold means that a non-positive eviction threshold has been passed to New.
	ErrIllegalThreshold = errors.New("chunkcache: eviction threshold should be positive")
	// ErrNilViewer means that a nil viewer has been passed to WithViewer.
	ErrNilViewer = errors.New("chunkcache: viewer should not be nil")
	// ErrNilLogger means that a nil logger has been passed to WithLogger.
	ErrNilLogger = errors.New("chunkcache: logger should not be nil")
	// ErrImmutablePlaceholder is returned when the placeholder chunk is asked to change.
	ErrImmutablePlaceholder = errors.New("chunkcache: the placeholder chunk is immutable")
	// ErrPlaceholderVictim is logged when the placeholder chunk wins an eviction scan.
	ErrPlaceholderVictim = errors.New("chunkcache: the eviction victim is the placeholder chunk")
)

type Option func(*options)

type options struct {
	threshold    int
	statsEnabled bool
	viewer       Viewer
	logger       Logger
	unloadHooks  []func(*Chunk)
	err          error
}

func defaultOptions() *options {
	return &options{
		threshold:    defaultThreshold,
		statsEnabled: defaultStatsEnabled,
		viewer:       originViewer{},
		logger:       newDefaultLogger(),
	}
}

func (o *options) validate() error {
	if o.err != nil {
		return o.err
	}

	if o.threshold == illegalThreshold {
		return ErrIllegalThreshold
	}

	return nil
}

// WithThreshold sets the number of eviction candidates above which Unload
// evicts the candidate farthest from the viewer.
//
// By default, the threshold is 800.
func WithThreshold(threshold int) Option {
	return func(o *options) {
		if threshold <= 0 {
			o.threshold = illegalThreshold
			return
		}

		o.threshold = threshold
	}
}

// WithViewer sets the reference point provider.
//
// By default, the reference point is the world origin.
func WithViewer(viewer Viewer) Option {
	return func(o *options) {
		if viewer == nil {
			o.err = ErrNilViewer
			return
		}

		o.viewer = viewer
	}
}

// WithStatsEnabled determines whether statistics should be calculated when the cache is running.
//
// By default, statistics calculating is disabled.
func WithStatsEnabled(statsEnabled bool) Option {
	return func(o *options) {
		o.statsEnabled = statsEnabled
	}
}

// WithLogger sets the logger.
//
// By default, the cache logs through slog.Default().
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger == nil {
			o.err = ErrNilLogger
			return
		}

		o.logger = logger
	}
}

// WithUnloadHook registers a function called once for every evicted chunk
// that is not the placeholder, before it leaves the cache. Hooks run in
// registration order while the cache lock is held and must not call back
// into the cache.
func WithUnloadHook(hook func(c *Chunk)) Option {
	return func(o *options) {
		if hook != nil {
			o.unloadHooks = append(o.unloadHooks, hook)
		}
	}
}
