// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"errors"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/assets"
	"github.com/gogpu/vgdemo/demo"
	"github.com/gogpu/vgdemo/display"
	"github.com/gogpu/vgdemo/event"
	"github.com/gogpu/vgdemo/soft"
	"github.com/gogpu/vgdemo/surface"
)

const (
	screenW = 800
	screenH = 480
)

type harness struct {
	loop   *Loop
	events *event.Dispatcher
	frame  *demo.Frame
	gpu    *soft.GPU
	disp   *display.Controller
	states []State
}

// newHarness wires a loop to a software accelerator and a display that
// latches every hand-off at once.
func newHarness(t *testing.T, gpuOpts ...soft.Option) *harness {
	t.Helper()
	gpu := soft.New(gpuOpts...)
	t.Cleanup(func() { gpu.Close() })

	alloc := func(w, h int) *vgdemo.FrameBuffer {
		fb := vgdemo.NewFrameBuffer(w, h, vgdemo.FormatRGBA8888)
		if err := gpu.Allocate(fb); err != nil {
			t.Fatalf("Allocate: %v", err)
		}
		return fb
	}
	fb0, fb1 := alloc(screenW, screenH), alloc(screenW, screenH)
	scratch := alloc(416, 240)

	a, err := assets.Build()
	if err != nil {
		t.Fatalf("assets.Build: %v", err)
	}
	for _, img := range a.Images() {
		if err := gpu.Allocate(img); err != nil {
			t.Fatalf("import image: %v", err)
		}
	}

	disp := display.New(display.WithRefresh(0))
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		disp.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	sw, err := surface.New(disp, fb0, fb1)
	if err != nil {
		t.Fatal(err)
	}
	h := &harness{
		events: event.New(0),
		frame:  demo.NewFrame(gpu, sw, scratch, a, screenW, screenH),
		gpu:    gpu,
		disp:   disp,
	}
	h.loop = New(h.frame, h.events, WithTick(0), WithStateHook(func(s State, _ demo.Demo) {
		h.states = append(h.states, s)
	}))
	return h
}

func (h *harness) step(t *testing.T, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := 0; i < n; i++ {
		if err := h.loop.Step(ctx); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
}

func TestIdleRunsDefault(t *testing.T) {
	h := newHarness(t)
	h.step(t, 3)
	if h.loop.State() != StateIdle || h.loop.Active() != demo.Default {
		t.Errorf("state %v %v, want idle default", h.loop.State(), h.loop.Active())
	}
	if got := h.frame.Anim.Count(); got != 3 {
		t.Errorf("animation count %d, want 3", got)
	}
	if h.loop.Ticks() != 3 {
		t.Errorf("Ticks = %d", h.loop.Ticks())
	}
}

func TestBlitThenCancelRestoresBase(t *testing.T) {
	h := newHarness(t)
	h.step(t, 3)

	h.events.Submit(event.Command{Demo: demo.Blit, Payload: '3'})
	h.step(t, 2)
	if h.loop.State() != StateActive || h.loop.Active() != demo.Blit {
		t.Fatalf("state %v %v, want active blit", h.loop.State(), h.loop.Active())
	}
	if got := h.frame.Anim.Count(); got != 3 {
		t.Errorf("blit demo moved the animation: count %d", got)
	}

	h.events.Cancel()
	h.step(t, 1)
	if h.loop.State() != StateIdle {
		t.Fatalf("state %v after cancel, want idle", h.loop.State())
	}
	// The returning tick draws one default frame from the base transform.
	want := h.frame.Anim.Base()
	want.Scale(demo.ZoomInFactor, demo.ZoomInFactor)
	want.Rotate(demo.RotationStep)
	if !h.frame.Anim.Matrix.ApproxEqual(want, 1e-9) || h.frame.Anim.Count() != 1 || h.frame.Anim.ZoomOut() {
		t.Errorf("animation not restored: %+v count %d", h.frame.Anim.Matrix, h.frame.Anim.Count())
	}
	wantStates := []State{StateActive, StateIdle}
	if len(h.states) != 2 || h.states[0] != wantStates[0] || h.states[1] != wantStates[1] {
		t.Errorf("state changes %v, want %v", h.states, wantStates)
	}
}

func TestInvalidCommandsIgnored(t *testing.T) {
	h := newHarness(t)
	h.events.Submit(event.Command{Demo: demo.Default, Payload: '0'})
	h.events.Submit(event.Command{Demo: demo.Demo(42), Payload: 'x'})
	h.step(t, 1)
	if h.loop.State() != StateIdle || len(h.states) != 0 {
		t.Errorf("invalid commands changed state to %v", h.loop.State())
	}
	if h.events.Ignored() != 2 {
		t.Errorf("Ignored = %d, want 2", h.events.Ignored())
	}
}

func TestQueueWaitsWhileActive(t *testing.T) {
	h := newHarness(t)
	h.events.Submit(event.Command{Demo: demo.FillRule})
	h.events.Submit(event.Command{Demo: demo.Pattern})

	h.step(t, 2)
	if h.loop.Active() != demo.FillRule || h.events.Len() != 1 {
		t.Fatalf("active %v with %d queued, want fill-rule with 1", h.loop.Active(), h.events.Len())
	}
	h.events.Cancel()
	h.step(t, 1)
	if h.loop.Active() != demo.Default {
		t.Fatalf("active %v after cancel, want default", h.loop.Active())
	}
	h.step(t, 1)
	if h.loop.Active() != demo.Pattern {
		t.Errorf("active %v, want the queued pattern demo", h.loop.Active())
	}
}

func TestStaleCancelDiscarded(t *testing.T) {
	h := newHarness(t)
	h.events.Cancel()
	h.events.Submit(event.Command{Demo: demo.Filter})
	h.step(t, 2)
	if h.loop.State() != StateActive || h.loop.Active() != demo.Filter {
		t.Errorf("state %v %v, want active filter", h.loop.State(), h.loop.Active())
	}
}

func TestCancelAfterSelectionInSameTick(t *testing.T) {
	h := newHarness(t)
	h.events.Submit(event.Command{Demo: demo.Blit, Payload: '3'})
	h.events.Cancel()

	h.step(t, 1)
	if h.loop.State() != StateActive || h.loop.Active() != demo.Blit {
		t.Fatalf("first tick: state %v %v, want active blit", h.loop.State(), h.loop.Active())
	}
	h.step(t, 1)
	if h.loop.State() != StateIdle || h.loop.Active() != demo.Default {
		t.Errorf("second tick: state %v %v, want idle default", h.loop.State(), h.loop.Active())
	}
}

func TestFillRulePixels(t *testing.T) {
	h := newHarness(t)
	h.events.Submit(event.Command{Demo: demo.FillRule})
	h.step(t, 1)

	fb := h.frame.Target
	// (200, 150) lies where the polygon's two triangles overlap.
	if got := fb.NRGBAAt(200, 150); got.A != 0 {
		t.Errorf("even-odd overlap = %v, want the cleared background", got)
	}
	teal := color.NRGBA{G: 0x80, B: 0x80, A: 0xFF}
	if got := fb.NRGBAAt(screenW/2+200, 150); got != teal {
		t.Errorf("non-zero overlap = %v, want teal", got)
	}
}

func TestFailureHalts(t *testing.T) {
	h := newHarness(t, soft.WithFault(soft.FailAt("pattern", 2, vgdemo.ErrOutOfMemory)))
	h.events.Submit(event.Command{Demo: demo.Pattern})

	err := h.loop.Step(context.Background())
	var fe *demo.FailureError
	if !errors.As(err, &fe) || fe.Demo != demo.Pattern || fe.Stage != 2 {
		t.Fatalf("Step = %v, want pattern failure at stage 2", err)
	}
	if !errors.Is(err, vgdemo.ErrOutOfMemory) {
		t.Errorf("error %v lost the accelerator status", err)
	}
	if h.loop.State() != StateHalted || h.loop.Err() != err {
		t.Errorf("state %v err %v, want halted", h.loop.State(), h.loop.Err())
	}
	if !h.gpu.Closed() {
		t.Error("accelerator not closed")
	}
	for _, p := range []*vgdemo.Path{h.frame.Assets.Square, h.frame.Assets.Pentagon} {
		if !h.frame.Cleaner.Released(p) || h.gpu.Uploaded(p) {
			t.Errorf("%s not released", p.Name)
		}
	}
	if h.frame.Cleaner.Released(h.frame.Assets.Triangle) {
		t.Error("triangle released though stage 3 was never entered")
	}
	if err := h.loop.Step(context.Background()); !errors.Is(err, ErrHalted) {
		t.Errorf("Step after halt = %v, want ErrHalted", err)
	}
	if err := h.loop.Run(context.Background()); !errors.Is(err, ErrHalted) {
		t.Errorf("Run after halt = %v, want ErrHalted", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h := newHarness(t)
	h.loop.tick = time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := h.loop.Run(ctx); err != nil {
		t.Fatalf("Run = %v, want nil on cancellation", err)
	}
	if h.loop.Ticks() == 0 {
		t.Error("no tick ran")
	}
	if h.loop.State() == StateHalted {
		t.Error("cancellation halted the loop")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateActive, "active"},
		{StateHalted, "halted"},
		{State(9), "State(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}
