// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package demo

import (
	"errors"
	"slices"

	"github.com/gogpu/vgdemo"
)

// Stage marks how far a program got. Stage 0 means nothing was composed
// yet; a program enters stage k before it composes section k.
type Stage uint8

// MaxStage is the highest stage a program can enter.
const MaxStage Stage = 4

type tableKey struct {
	demo  Demo
	stage Stage
}

// Recorder tracks the current program's stage and learns which paths each
// (demo, stage) pair uses.
//
// Entries persist across attempts, so after one run of a program the
// recorder holds its complete cleanup table.
type Recorder struct {
	demo  Demo
	stage Stage
	table map[tableKey][]*vgdemo.Path
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{table: make(map[tableKey][]*vgdemo.Path)}
}

// Begin starts an attempt of d at stage 0.
func (r *Recorder) Begin(d Demo) {
	r.demo = d
	r.stage = 0
}

// Demo returns the demo of the current attempt.
func (r *Recorder) Demo() Demo { return r.demo }

// Stage returns the highest stage entered in the current attempt.
func (r *Recorder) Stage() Stage { return r.stage }

// Enter advances the current attempt to stage s. Stages never move
// backwards within an attempt; lower values are ignored.
func (r *Recorder) Enter(s Stage) {
	s = min(s, MaxStage)
	if s > r.stage {
		r.stage = s
	}
}

// Use records that the current stage uses p. Call it before handing p to
// the accelerator, so that a failing call is still covered.
func (r *Recorder) Use(p *vgdemo.Path) {
	if p == nil || slices.Contains(r.Lookup(r.demo, r.stage), p) {
		return
	}
	k := tableKey{r.demo, r.stage}
	r.table[k] = append(r.table[k], p)
}

// Lookup returns, in first-use order, the paths used by demo d up to and
// including stage s. Unknown pairs return nil.
func (r *Recorder) Lookup(d Demo, s Stage) []*vgdemo.Path {
	var out []*vgdemo.Path
	for st := Stage(0); st <= min(s, MaxStage); st++ {
		for _, p := range r.table[tableKey{d, st}] {
			if !slices.Contains(out, p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Cleaner releases recorded paths after a failure and closes the
// accelerator. It acts at most once per path and closes at most once.
type Cleaner struct {
	gpu      vgdemo.GPU
	rec      *Recorder
	released map[*vgdemo.Path]struct{}
	closed   bool
}

// NewCleaner creates a cleaner over the paths recorded by rec.
func NewCleaner(gpu vgdemo.GPU, rec *Recorder) *Cleaner {
	return &Cleaner{
		gpu:      gpu,
		rec:      rec,
		released: make(map[*vgdemo.Path]struct{}),
	}
}

// Cleanup releases the paths recorded for (d, s) and then closes the
// accelerator. Once the accelerator is closed further calls do nothing.
// Release errors do not stop the sequence; they are joined and returned.
func (c *Cleaner) Cleanup(d Demo, s Stage) error {
	if c.closed {
		return nil
	}
	log := vgdemo.Logger()
	var errs []error
	for _, p := range c.rec.Lookup(d, s) {
		if _, ok := c.released[p]; ok {
			continue
		}
		c.released[p] = struct{}{}
		if err := c.gpu.ClearPath(p); err != nil {
			errs = append(errs, err)
			continue
		}
		log.Debug("demo: released path", "demo", d, "stage", s, "path", p.Name)
	}
	c.closed = true
	if err := c.gpu.Close(); err != nil {
		errs = append(errs, err)
	}
	log.Info("demo: accelerator closed after failure", "demo", d, "stage", s, "released", len(c.released))
	return errors.Join(errs...)
}

// Released reports whether p was released by Cleanup.
func (c *Cleaner) Released(p *vgdemo.Path) bool {
	_, ok := c.released[p]
	return ok
}

// Closed reports whether Cleanup closed the accelerator.
func (c *Cleaner) Closed() bool { return c.closed }
