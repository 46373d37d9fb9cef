// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package app assembles the harness: the software accelerator, the frame
// buffers and their swapper, the simulated display, the assets, the render
// loop and the terminal menu.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/assets"
	"github.com/gogpu/vgdemo/config"
	"github.com/gogpu/vgdemo/demo"
	"github.com/gogpu/vgdemo/display"
	"github.com/gogpu/vgdemo/event"
	"github.com/gogpu/vgdemo/menu"
	"github.com/gogpu/vgdemo/render"
	"github.com/gogpu/vgdemo/soft"
	"github.com/gogpu/vgdemo/stats"
	"github.com/gogpu/vgdemo/surface"
)

// ErrInit wraps every initialization failure.
var ErrInit = errors.New("app: initialization failed")

// Option configures an App.
type Option func(*App)

// WithInput reads menu keys from r. Without it the menu is not run and
// the harness only shows the default animation.
func WithInput(r io.Reader) Option {
	return func(a *App) {
		a.in = r
	}
}

// WithOutput writes the menu and FPS lines to w.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithGPUOptions passes extra options to the software accelerator.
func WithGPUOptions(opts ...soft.Option) Option {
	return func(a *App) {
		a.gpuOpts = append(a.gpuOpts, opts...)
	}
}

// App is the assembled harness.
type App struct {
	cfg     config.Config
	in      io.Reader
	out     io.Writer
	gpuOpts []soft.Option

	gpu     *soft.GPU
	buffers []*vgdemo.FrameBuffer
	disp    *display.Controller
	swapper *surface.Swapper
	frame   *demo.Frame
	events  *event.Dispatcher
	fps     *stats.Counter
	loop    *render.Loop
	menu    *menu.Menu
}

// ScratchSize returns the off-screen buffer size for a width x height
// screen: half the screen, rounded up to the accelerator's 32x16 tile.
func ScratchSize(width, height int) (int, int) {
	return alignUp(width/2, 32), alignUp(height/2, 16)
}

func alignUp(n, a int) int {
	return (n + a - 1) / a * a
}

// New validates cfg and runs the initialization sequence. On failure
// the accelerator is closed and the error wraps ErrInit.
func New(cfg config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	a := &App{cfg: cfg, out: io.Discard}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.init(); err != nil {
		if a.gpu != nil {
			a.gpu.Close()
		}
		return nil, err
	}
	return a, nil
}

// step runs one initialization step and logs its outcome.
func step(name string, fn func() error) error {
	log := vgdemo.Logger()
	if err := fn(); err != nil {
		log.Error("app: init step failed", "step", name, "err", err)
		return fmt.Errorf("%w: %s: %w", ErrInit, name, err)
	}
	log.Info("app: init step done", "step", name)
	return nil
}

func (a *App) init() error {
	cfg := a.cfg
	format, _ := cfg.Display.PixelFormat()
	w, h := cfg.Display.Width, cfg.Display.Height

	err := step("accelerator", func() error {
		opts := append([]soft.Option{
			soft.WithHeapSize(cfg.Accelerator.HeapSize),
			soft.WithAlignment(cfg.Accelerator.Alignment),
			soft.WithTolerance(cfg.Accelerator.Tolerance),
		}, a.gpuOpts...)
		a.gpu = soft.New(opts...)
		return nil
	})
	if err != nil {
		return err
	}

	for i := 0; i < cfg.Display.Buffers; i++ {
		fb := vgdemo.NewFrameBuffer(w, h, format)
		if err := step(fmt.Sprintf("buffer%d", i), func() error { return a.gpu.Allocate(fb) }); err != nil {
			return err
		}
		a.buffers = append(a.buffers, fb)
	}

	sw, sh := ScratchSize(w, h)
	scratch := vgdemo.NewFrameBuffer(sw, sh, vgdemo.FormatRGBA8888)
	if err := step("scratch", func() error { return a.gpu.Allocate(scratch) }); err != nil {
		return err
	}

	err = step("clear", func() error {
		for _, fb := range append(slices.Clone(a.buffers), scratch) {
			if err := a.gpu.Clear(fb, nil, vgdemo.White); err != nil {
				return err
			}
		}
		return a.gpu.Finish()
	})
	if err != nil {
		return err
	}

	var set *demo.Assets
	err = step("images", func() error {
		var err error
		set, err = assets.Build(assets.WithPatternFile(cfg.Assets.PatternImage))
		if err != nil {
			return err
		}
		for _, img := range set.Images() {
			if err := a.gpu.Allocate(img); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.disp = display.New(
		display.WithRefresh(cfg.Display.Refresh.Std()),
		display.WithSnapshots(cfg.Snapshot.Dir, cfg.Snapshot.Every),
	)
	err = step("swapper", func() error {
		var err error
		a.swapper, err = surface.New(a.disp, a.buffers...)
		return err
	})
	if err != nil {
		return err
	}

	err = step("transform", func() error {
		a.frame = demo.NewFrame(a.gpu, a.swapper, scratch, set, w, h)
		a.frame.HighlightPeriod = cfg.Render.HighlightPeriod.Std()
		return nil
	})
	if err != nil {
		return err
	}

	a.events = event.New(cfg.Render.Queue)
	a.fps = stats.New(cfg.Render.FPSWindow, a.out)
	a.loop = render.New(a.frame, a.events,
		render.WithTick(cfg.Render.Tick.Std()),
		render.WithFPS(a.fps),
	)
	if a.in != nil {
		a.menu = menu.New(a.out, a.events)
	}
	return nil
}

// Run runs the display, the render loop and, with input, the menu until
// ctx ends, the user quits or a composition failure halts the loop. Only
// the failure is returned as an error.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.disp.Run(gctx)
	})
	g.Go(func() error {
		return a.loop.Run(gctx)
	})
	if a.menu != nil {
		g.Go(func() error {
			return a.menu.Run(gctx, a.in)
		})
	}
	err := g.Wait()
	if errors.Is(err, menu.ErrQuit) {
		return nil
	}
	return err
}

// Close releases the accelerator. It is safe to call after a failure
// already closed it.
func (a *App) Close() error {
	return a.gpu.Close()
}

// GPU returns the accelerator.
func (a *App) GPU() *soft.GPU { return a.gpu }

// Frame returns the render state.
func (a *App) Frame() *demo.Frame { return a.frame }

// Loop returns the render loop.
func (a *App) Loop() *render.Loop { return a.loop }

// Events returns the command dispatcher.
func (a *App) Events() *event.Dispatcher { return a.events }

// Display returns the display controller.
func (a *App) Display() *display.Controller { return a.disp }

// Buffers returns the on-screen frame buffers.
func (a *App) Buffers() []*vgdemo.FrameBuffer { return a.buffers }
