// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package event

import (
	"sync"
	"testing"

	"github.com/gogpu/vgdemo/demo"
)

func TestNewCapacity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultCapacity},
		{-3, DefaultCapacity},
		{1, 1},
		{32, 32},
	}
	for _, tt := range tests {
		if got := New(tt.in).Cap(); got != tt.want {
			t.Errorf("New(%d).Cap() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSubmitFull(t *testing.T) {
	d := New(DefaultCapacity)
	for i := 0; i < DefaultCapacity; i++ {
		if !d.Submit(Command{Demo: demo.FillRule}) {
			t.Fatalf("Submit %d rejected", i)
		}
	}
	if d.Submit(Command{Demo: demo.Blit}) {
		t.Error("Submit accepted an 11th command")
	}
	if d.Len() != DefaultCapacity || d.Dropped() != 1 {
		t.Errorf("Len %d Dropped %d, want %d and 1", d.Len(), d.Dropped(), DefaultCapacity)
	}
}

func TestPollOrderAndFiltering(t *testing.T) {
	d := New(0)
	in := []Command{
		{Demo: demo.Default, Payload: '0'},
		{Demo: demo.Blit, Payload: '3'},
		{Demo: demo.Demo(99), Payload: 'x'},
		{Demo: demo.Filter, Payload: '5'},
	}
	for _, c := range in {
		d.Submit(c)
	}

	want := []demo.Demo{demo.Blit, demo.Filter}
	for i, w := range want {
		c, ok := d.Poll()
		if !ok || c.Demo != w {
			t.Fatalf("Poll %d = %v %v, want %v", i, c.Demo, ok, w)
		}
	}
	if c, ok := d.Poll(); ok {
		t.Errorf("Poll on drained queue = %v", c)
	}
	if d.Ignored() != 2 {
		t.Errorf("Ignored = %d, want 2", d.Ignored())
	}
}

func TestCancel(t *testing.T) {
	d := New(0)
	if d.TakeCancel() {
		t.Fatal("fresh dispatcher reports a cancel")
	}
	d.Cancel()
	d.Cancel()
	if !d.TakeCancel() {
		t.Fatal("TakeCancel missed a cancel")
	}
	if d.TakeCancel() {
		t.Error("TakeCancel did not clear the flag")
	}
	d.Cancel()
	d.ClearCancel()
	if d.TakeCancel() {
		t.Error("ClearCancel did not clear the flag")
	}
}

func TestDiscardStale(t *testing.T) {
	tests := []struct {
		name    string
		actions string // s: submit, c: cancel
		pending bool
	}{
		{"cancel before submit", "cs", false},
		{"cancel after submit", "sc", true},
		{"no cancel", "s", false},
		{"cancel between two submits", "scs", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(0)
			for _, a := range tt.actions {
				switch a {
				case 's':
					d.Submit(Command{Demo: demo.Blit, Payload: '3'})
				case 'c':
					d.Cancel()
				}
			}
			c, ok := d.Poll()
			if !ok {
				t.Fatal("Poll found no command")
			}
			d.DiscardStale(c)
			if got := d.TakeCancel(); got != tt.pending {
				t.Errorf("cancel pending after DiscardStale = %v, want %v", got, tt.pending)
			}
		})
	}
}

func TestConcurrentProducer(t *testing.T) {
	d := New(4)
	var wg sync.WaitGroup
	accepted := 0
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			if d.Submit(Command{Demo: demo.Pattern}) {
				accepted++
			}
		}
	}()
	wg.Wait()

	got := 0
	for {
		if _, ok := d.Poll(); !ok {
			break
		}
		got++
	}
	if got != accepted || uint64(accepted)+d.Dropped() != 100 {
		t.Errorf("polled %d, accepted %d, dropped %d", got, accepted, d.Dropped())
	}
}
