package command

import (
	"errors"
	"fmt"
)

// Sentinel errors for command execution and history unwinding.
var (
	// ErrNothingToUndo indicates UndoLast was called on an empty history.
	ErrNothingToUndo = errors.New("command: nothing to undo")

	// ErrDeleteTooLong indicates a Delete spanning more than the buffer holds.
	ErrDeleteTooLong = errors.New("command: delete exceeds buffer length")
)

// Buffer is the receiver: the text every command operates on.
// The zero value is an empty buffer.
type Buffer struct {
	text string
}

// String returns the current buffer content.
func (b *Buffer) String() string { return b.text }

// Len returns the current content length in bytes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) append(s string) { b.text += s }

func (b *Buffer) truncate(n int) { b.text = b.text[:len(b.text)-n] }

// Command is one reversible edit.
type Command interface {
	// Execute applies the edit to its receiver.
	Execute() error

	// Undo reverts a previously executed edit.
	Undo() error

	// Name identifies the command in history listings.
	Name() string
}

// Insert appends text to a buffer.
type Insert struct {
	buf  *Buffer
	text string
}

// NewInsert creates an Insert of text into buf.
func NewInsert(buf *Buffer, text string) *Insert {
	return &Insert{buf: buf, text: text}
}

// Execute implements Command.
func (c *Insert) Execute() error {
	c.buf.append(c.text)

	return nil
}

// Undo implements Command: removes the appended text again.
func (c *Insert) Undo() error {
	if c.buf.Len() < len(c.text) {
		return fmt.Errorf("%w: undo insert %q", ErrDeleteTooLong, c.text)
	}
	c.buf.truncate(len(c.text))

	return nil
}

// Name implements Command.
func (c *Insert) Name() string { return fmt.Sprintf("insert(%q)", c.text) }

// Delete removes the last n bytes from a buffer, remembering them for Undo.
type Delete struct {
	buf     *Buffer
	n       int
	removed string
}

// NewDelete creates a Delete of the last n bytes of buf.
func NewDelete(buf *Buffer, n int) *Delete {
	return &Delete{buf: buf, n: n}
}

// Execute implements Command.
// Returns ErrDeleteTooLong if the buffer holds fewer than n bytes.
func (c *Delete) Execute() error {
	if c.n > c.buf.Len() {
		return fmt.Errorf("%w: want %d, have %d", ErrDeleteTooLong, c.n, c.buf.Len())
	}
	c.removed = c.buf.text[c.buf.Len()-c.n:]
	c.buf.truncate(c.n)

	return nil
}

// Undo implements Command: restores the removed text.
func (c *Delete) Undo() error {
	c.buf.append(c.removed)
	c.removed = ""

	return nil
}

// Name implements Command.
func (c *Delete) Name() string { return fmt.Sprintf("delete(%d)", c.n) }

// History is the invoker: it executes commands and records the successful
// ones for LIFO undo.
// The zero value is an empty history.
type History struct {
	done []Command
}

// Do executes cmd and, on success, pushes it onto the undo stack.
// A failed command is not recorded; its error is returned wrapped.
func (h *History) Do(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("command: %s: %w", cmd.Name(), err)
	}
	h.done = append(h.done, cmd)

	return nil
}

// UndoLast reverts the most recently recorded command and pops it.
// Returns ErrNothingToUndo on an empty history.
func (h *History) UndoLast() error {
	if len(h.done) == 0 {
		return ErrNothingToUndo
	}
	last := h.done[len(h.done)-1]
	if err := last.Undo(); err != nil {
		return fmt.Errorf("command: undo %s: %w", last.Name(), err)
	}
	h.done = h.done[:len(h.done)-1]

	return nil
}

// Len returns the number of undoable commands.
func (h *History) Len() int { return len(h.done) }

// Names lists the recorded commands oldest first.
func (h *History) Names() []string {
	out := make([]string, len(h.done))
	var i int
	var c Command
	for i, c = range h.done {
		out[i] = c.Name()
	}

	return out
}
