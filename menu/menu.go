// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package menu is the terminal input side of the harness.
//
// It prints the list of demos and turns key presses into commands for the
// event dispatcher: '1' to '5' select a demo, Enter or a cancel key
// returns to the default animation. After a selection further digits are
// ignored until the user confirms with Enter or cancels.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/gogpu/vgdemo"
	"github.com/gogpu/vgdemo/demo"
	"github.com/gogpu/vgdemo/event"
)

// ErrQuit is returned by Run when the user ends input.
var ErrQuit = errors.New("menu: quit")

// Keys with a meaning besides the menu digits.
const (
	KeyInterrupt = 0x03 // Ctrl+C
	KeyEOT       = 0x04 // Ctrl+D
	KeyLF        = '\n'
	KeyCR        = '\r'
	KeyEscape    = 0x1B
)

// Messages printed in response to input.
const (
	MsgCancelled = "Operation cancelled. Returning to menu."
	MsgInvalid   = "Invalid choice. Please try again."
)

// Action is the outcome of one key.
type Action int

const (
	// ActionIgnored means the key had no effect.
	ActionIgnored Action = iota
	// ActionSelect submitted a command.
	ActionSelect
	// ActionCancel requested cancellation and showed the menu again.
	ActionCancel
	// ActionConfirm is Enter: it also cancels and shows the menu.
	ActionConfirm
	// ActionInvalid printed the invalid-choice message.
	ActionInvalid
	// ActionQuit ends input.
	ActionQuit
)

var actionNames = [...]string{
	ActionIgnored: "ignored",
	ActionSelect:  "select",
	ActionCancel:  "cancel",
	ActionConfirm: "confirm",
	ActionInvalid: "invalid",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Sink receives the commands produced by the menu. *event.Dispatcher
// implements it.
type Sink interface {
	Submit(c event.Command) bool
	Cancel()
}

// Option configures a Menu.
type Option func(*Menu)

// WithProfile sets the terminal color profile instead of detecting it.
func WithProfile(p termenv.Profile) Option {
	return func(m *Menu) {
		m.profile = &p
	}
}

// WithTitle sets the banner line.
func WithTitle(title string) Option {
	return func(m *Menu) {
		m.title = title
	}
}

// DefaultTitle is the banner printed above the list.
const DefaultTitle = "Vector graphics accelerator demos"

// Menu renders the menu and interprets keys. It is used from one
// goroutine.
type Menu struct {
	out     *termenv.Output
	sink    Sink
	title   string
	profile *termenv.Profile
	waiting bool
}

// New creates a menu writing to w and feeding sink.
func New(w io.Writer, sink Sink, opts ...Option) *Menu {
	m := &Menu{sink: sink, title: DefaultTitle}
	for _, opt := range opts {
		opt(m)
	}
	var outOpts []termenv.OutputOption
	if m.profile != nil {
		outOpts = append(outOpts, termenv.WithProfile(*m.profile))
	}
	m.out = termenv.NewOutput(w, outOpts...)
	return m
}

// Waiting reports whether a selection awaits confirmation.
func (m *Menu) Waiting() bool { return m.waiting }

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// Show clears the terminal and prints the menu.
func (m *Menu) Show() {
	m.out.ClearScreen()
	banner := m.out.String(" " + m.title + " ").Bold().Reverse()
	m.printf("%s\r\n\n", banner)
	m.printf("List of operations to choose from:\r\n")
	for _, d := range demo.Selectable() {
		key := m.out.String(string(d.Key())).Bold().Foreground(m.out.Color("6"))
		m.printf("%s. %s\r\n", key, d.Title())
	}
	hint := m.out.String("Enter returns to the animation, Esc cancels, Ctrl+D quits.").Faint()
	m.printf("\r\n%s\r\n", hint)
}

// showSelection clears the terminal and describes d.
func (m *Menu) showSelection(d demo.Demo) {
	m.out.ClearScreen()
	m.printf("%s: %s\r\n\n", m.out.String(d.Title()).Bold(), d.Description())
	m.printf("%s\r\n", m.out.String("Press Enter to return to the menu.").Faint())
}

// Handle interprets one key.
func (m *Menu) Handle(key byte) Action {
	log := vgdemo.Logger()
	switch key {
	case KeyEOT:
		return ActionQuit
	case KeyEscape, KeyInterrupt:
		m.sink.Cancel()
		m.waiting = false
		m.printf("%s\r\n", MsgCancelled)
		m.Show()
		return ActionCancel
	case KeyCR, KeyLF:
		m.sink.Cancel()
		m.waiting = false
		m.Show()
		return ActionConfirm
	}
	if m.waiting {
		return ActionIgnored
	}
	d, ok := demo.Parse(key)
	if !ok {
		m.printf("%s\r\n", MsgInvalid)
		return ActionInvalid
	}
	m.waiting = true
	m.showSelection(d)
	if !m.sink.Submit(event.Command{Demo: d, Payload: key}) {
		log.Warn("menu: command not queued", "demo", d)
	}
	return ActionSelect
}

// Run shows the menu and handles keys read from r until ctx ends, the
// reader is exhausted or the user quits. It returns nil when ctx ends and
// ErrQuit otherwise, unless reading fails.
//
// Reads happen on a separate goroutine; a read blocked when ctx ends
// finishes on its own.
func (m *Menu) Run(ctx context.Context, r io.Reader) error {
	keys := make(chan byte)
	errc := make(chan error, 1)
	go func() {
		br := bufio.NewReader(r)
		for {
			b, err := br.ReadByte()
			if err != nil {
				errc <- err
				return
			}
			select {
			case keys <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	m.Show()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			if errors.Is(err, io.EOF) {
				return ErrQuit
			}
			return fmt.Errorf("menu: read input: %w", err)
		case b := <-keys:
			if m.Handle(b) == ActionQuit {
				return ErrQuit
			}
		}
	}
}
