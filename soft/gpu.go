// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"fmt"
	"sync"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/internal/raster"
)

// heapBase is the address of the first heap byte. Zero is reserved to mean
// "not allocated".
const heapBase = 0x1000_0000

// command is one recorded operation, executed on the worker goroutine.
type command func() error

// batch is a submitted command buffer and its completion signal.
type batch struct {
	cmds []command
	done chan error
}

// Stats reports accelerator bookkeeping.
type Stats struct {
	// Buffers is the number of live allocations.
	Buffers int
	// HeapUsed is the number of heap bytes in use.
	HeapUsed int
	// Paths is the number of uploaded paths not yet released.
	Paths int
	// Released counts ClearPath calls that released an upload.
	Released int
	// Batches counts command buffers executed by Finish.
	Batches int
}

// GPU is a software accelerator. It implements vgdemo.GPU.
//
// Calls are expected from one goroutine at a time; the command buffer is
// executed on an internal goroutine while Finish waits.
type GPU struct {
	mu   sync.Mutex
	opts options

	next    uint32         // next free heap address
	used    int            // heap bytes in use
	buffers map[uint32]int // address -> reserved size
	uploads map[*vgdemo.Path]struct{}
	pending []command
	stats   Stats
	closed  bool

	submit chan batch
	exited chan struct{}

	rast *raster.Rasterizer // worker-owned
}

var _ vgdemo.GPU = (*GPU)(nil)

// New creates a software accelerator and starts its execution goroutine.
// Call Close to stop it.
func New(opts ...Option) *GPU {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &GPU{
		opts:    o,
		next:    heapBase,
		buffers: make(map[uint32]int),
		uploads: make(map[*vgdemo.Path]struct{}),
		submit:  make(chan batch),
		exited:  make(chan struct{}),
		rast:    raster.NewRasterizer(),
	}
	go g.run()
	vgdemo.Logger().Info("soft: accelerator initialized",
		"heap", o.heapSize, "alignment", o.alignment)
	return g
}

// run executes submitted command buffers until the submit channel closes.
// Completion is reported on the batch's done channel, the way the hardware
// raises its completion interrupt.
func (g *GPU) run() {
	defer close(g.exited)
	for b := range g.submit {
		var first error
		for _, cmd := range b.cmds {
			if err := cmd(); err != nil && first == nil {
				first = err
			}
		}
		b.done <- first
	}
}

// begin checks the accelerator state for op and consults the fault
// injector. The caller holds g.mu.
func (g *GPU) begin(op string) error {
	if g.closed {
		return &vgdemo.OpError{Op: op, Err: vgdemo.ErrClosed}
	}
	if g.opts.fault != nil {
		if err := g.opts.fault(op); err != nil {
			return &vgdemo.OpError{Op: op, Err: err}
		}
	}
	return nil
}

func (g *GPU) checkBuffer(op string, fb *vgdemo.FrameBuffer) error {
	if fb == nil {
		return &vgdemo.OpError{Op: op, Err: fmt.Errorf("%w: nil buffer", vgdemo.ErrInvalidArgument)}
	}
	if fb.Address%uint32(g.opts.alignment) != 0 {
		return &vgdemo.OpError{Op: op, Target: fb.String(), Err: vgdemo.ErrNotAligned}
	}
	if _, ok := g.buffers[fb.Address]; !ok || fb.Pix == nil {
		return &vgdemo.OpError{Op: op, Target: fb.String(), Err: fmt.Errorf("%w: buffer not allocated", vgdemo.ErrInvalidArgument)}
	}
	return nil
}

func (g *GPU) alignUp(n int) int {
	a := g.opts.alignment
	return (n + a - 1) &^ (a - 1)
}

// Allocate reserves heap memory for buf and assigns its address. A buffer
// that already holds pixels (an imported image) keeps them; otherwise
// zeroed storage is attached.
func (g *GPU) Allocate(buf *vgdemo.FrameBuffer) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	const op = "allocate"
	if err := g.begin(op); err != nil {
		return err
	}
	if err := buf.Validate(); err != nil {
		return &vgdemo.OpError{Op: op, Err: fmt.Errorf("%w: %w", vgdemo.ErrInvalidArgument, err)}
	}
	if buf.Address != 0 {
		return &vgdemo.OpError{Op: op, Target: buf.String(), Err: fmt.Errorf("%w: already allocated", vgdemo.ErrInvalidArgument)}
	}
	size := g.alignUp(buf.Stride * buf.Height)
	if g.used+size > g.opts.heapSize {
		return &vgdemo.OpError{Op: op, Target: buf.String(), Err: vgdemo.ErrOutOfMemory}
	}

	buf.Address = g.next
	if buf.Pix == nil {
		buf.Pix = make([]byte, buf.Stride*buf.Height)
	}
	g.next += uint32(size)
	g.used += size
	g.buffers[buf.Address] = size
	vgdemo.Logger().Debug("soft: allocate", "buffer", buf.String(), "size", size)
	return nil
}

// Free releases buf's heap memory and detaches its storage.
func (g *GPU) Free(buf *vgdemo.FrameBuffer) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	const op = "free"
	if err := g.begin(op); err != nil {
		return err
	}
	if err := g.checkBuffer(op, buf); err != nil {
		return err
	}
	g.used -= g.buffers[buf.Address]
	delete(g.buffers, buf.Address)
	vgdemo.Logger().Debug("soft: free", "buffer", buf.String())
	buf.Address = 0
	buf.Pix = nil
	return nil
}

// Finish submits the recorded commands and blocks until the execution
// goroutine reports completion. The first execution error is returned.
func (g *GPU) Finish() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	const op = "finish"
	if err := g.begin(op); err != nil {
		return err
	}
	b := batch{cmds: g.pending, done: make(chan error, 1)}
	g.pending = nil
	g.submit <- b
	err := <-b.done
	g.stats.Batches++
	if err != nil {
		return err
	}
	vgdemo.Logger().Debug("soft: finish", "commands", len(b.cmds))
	return nil
}

// ClearPath releases the upload of path. Paths never drawn, or already
// released, are ignored.
func (g *GPU) ClearPath(path *vgdemo.Path) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	const op = "clear-path"
	if err := g.begin(op); err != nil {
		return err
	}
	if path == nil {
		return &vgdemo.OpError{Op: op, Err: fmt.Errorf("%w: nil path", vgdemo.ErrInvalidArgument)}
	}
	if _, ok := g.uploads[path]; ok {
		delete(g.uploads, path)
		g.stats.Released++
		vgdemo.Logger().Debug("soft: clear path", "path", path.Name)
	}
	return nil
}

// Close stops the execution goroutine and drops all heap memory and path
// uploads. Recorded but unfinished commands are discarded. Close is
// idempotent.
func (g *GPU) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}
	g.closed = true
	g.pending = nil
	close(g.submit)
	<-g.exited

	clear(g.buffers)
	clear(g.uploads)
	g.used = 0
	vgdemo.Logger().Info("soft: accelerator closed")
	return nil
}

// Closed reports whether Close has been called.
func (g *GPU) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}

// Uploaded reports whether path currently has an accelerator upload.
func (g *GPU) Uploaded(path *vgdemo.Path) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.uploads[path]
	return ok
}

// Stats returns a snapshot of the accelerator bookkeeping.
func (g *GPU) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.stats
	s.Buffers = len(g.buffers)
	s.HeapUsed = g.used
	s.Paths = len(g.uploads)
	return s
}

// record appends cmd to the command buffer. The caller holds g.mu.
func (g *GPU) record(cmd command) {
	g.pending = append(g.pending, cmd)
}
