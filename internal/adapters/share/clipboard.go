package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// SystemClipboard writes to the desktop clipboard via pbcopy, xclip, xsel,
// wl-copy or the Windows API, whichever the host has.
type SystemClipboard struct {
	write       func(string) error
	unsupported func() bool
}

// NewSystemClipboard returns the host clipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Name implements ports.Clipboard.
func (c *SystemClipboard) Name() string { return "system" }

// Available reports whether a clipboard utility was found.
func (c *SystemClipboard) Available() bool {
	return !c.unsupported()
}

// Copy implements ports.Clipboard.
func (c *SystemClipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.write(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}

	return nil
}

// TerminalSelection sets the terminal's selection with an OSC 52 escape
// sequence written to the controlling terminal. It works over SSH and inside
// tmux or screen, where no desktop clipboard is reachable.
type TerminalSelection struct {
	path   string
	open   func(path string) (io.WriteCloser, error)
	stat   func(path string) error
	getenv func(string) string
}

// NewTerminalSelection writes sequences to the terminal device at path,
// usually /dev/tty.
func NewTerminalSelection(path string) *TerminalSelection {
	return &TerminalSelection{
		path: path,
		open: func(p string) (io.WriteCloser, error) {
			return os.OpenFile(p, os.O_WRONLY, 0)
		},
		stat: func(p string) error {
			_, err := os.Stat(p)
			return err
		},
		getenv: os.Getenv,
	}
}

// Name implements ports.Clipboard.
func (t *TerminalSelection) Name() string { return "osc52" }

// Available reports whether the terminal device exists.
func (t *TerminalSelection) Available() bool {
	if t.path == "" {
		return false
	}
	return t.stat(t.path) == nil
}

// Copy implements ports.Clipboard.
func (t *TerminalSelection) Copy(ctx context.Context, text string) error {
	if t.path == "" {
		return errors.New("no terminal configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tty, err := t.open(t.path)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() { _ = tty.Close() }()

	seq := osc52.New(text)
	switch term := t.getenv("TERM"); {
	case t.getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(tty); err != nil {
		return fmt.Errorf("write selection sequence: %w", err)
	}

	return nil
}
