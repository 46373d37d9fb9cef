// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

// Option configures a GPU during creation.
type Option func(*options)

// FaultFunc is consulted before every accelerator call with the call's
// name ("allocate", "clear", "draw", "blit", "blit-rect", "pattern",
// "finish", "clear-path", "free"). A non-nil result fails the call with
// that error.
type FaultFunc func(op string) error

type options struct {
	heapSize  int
	alignment int
	tolerance float64
	fault     FaultFunc
}

const (
	// DefaultHeapSize holds three 800x480 RGBA buffers plus headroom.
	DefaultHeapSize = 8 << 20
	// DefaultAlignment matches the accelerator's 64-byte address rule.
	DefaultAlignment = 64
)

func defaultOptions() options {
	return options{
		heapSize:  DefaultHeapSize,
		alignment: DefaultAlignment,
		tolerance: 0.25,
	}
}

// WithHeapSize sets the accelerator heap size in bytes.
func WithHeapSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.heapSize = n
		}
	}
}

// WithAlignment sets the required buffer address alignment. It must be a
// power of two; other values are ignored.
func WithAlignment(n int) Option {
	return func(o *options) {
		if n > 0 && n&(n-1) == 0 {
			o.alignment = n
		}
	}
}

// WithTolerance sets the curve flattening tolerance in pixels.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithFault installs a fault injector. It is meant for tests that need a
// specific call to fail.
func WithFault(fn FaultFunc) Option {
	return func(o *options) {
		o.fault = fn
	}
}

// FailAt returns a FaultFunc that fails the n-th call (1-based) named op
// with err, and no other call.
func FailAt(op string, n int, err error) FaultFunc {
	seen := 0
	return func(name string) error {
		if name != op {
			return nil
		}
		seen++
		if seen == n {
			return err
		}
		return nil
	}
}
