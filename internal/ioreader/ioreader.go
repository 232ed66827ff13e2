// Package ioreader contains the input readers used by the interactive
// membership and equivalence oracles to get answers from a human at a
// terminal or from a plain stream.
package ioreader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// Reader reads a single line of answer text, prompting if the underlying
// implementation supports it. It is the common interface the oracles in
// internal/membership and internal/equivalence are built against, so either
// implementation below can back them interchangeably.
type Reader interface {
	ReadAnswer(prompt string) (string, error)
	Close() error
}

// DirectReader reads answers from any generic input stream directly. It can
// be used with any io.Reader but does not sanitize the input of control and
// escape sequences, and it writes its prompt (if any) to a separate
// io.Writer rather than relying on a line-editing library to display it.
//
// DirectReader should not be constructed directly; use [NewDirectReader].
type DirectReader struct {
	r             *bufio.Reader
	w             io.Writer
	blanksAllowed bool
}

// InteractiveReader reads answers from stdin using a Go implementation of
// the GNU Readline library. This keeps input clear of typing and editing
// escape sequences and enables command history, so it should generally only
// be used when directly connected to a TTY.
//
// InteractiveReader should not be constructed directly; use
// [NewInteractiveReader].
type InteractiveReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader creates a DirectReader that reads from r and writes any
// prompts to w. The returned Reader must have Close called on it before
// disposal.
func NewDirectReader(r io.Reader, w io.Writer) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
		w: w,
	}
}

// NewInteractiveReader creates an InteractiveReader and initializes
// readline on stdin/stdout. The returned Reader must have Close called on it
// before disposal to properly tear down readline resources.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "? ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{
		rl:     rl,
		prompt: "? ",
	}, nil
}

// Close is a no-op for DirectReader; it exists so DirectReader satisfies
// Reader uniformly with InteractiveReader.
func (dr *DirectReader) Close() error {
	return nil
}

// Close tears down the underlying readline instance.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadAnswer writes prompt (if non-empty) then reads and returns the next
// non-blank line from the input stream, with surrounding whitespace
// trimmed. If at end of input, the returned string is empty and the error
// is io.EOF.
func (dr *DirectReader) ReadAnswer(prompt string) (string, error) {
	if prompt != "" && dr.w != nil {
		if _, err := io.WriteString(dr.w, prompt); err != nil {
			return "", err
		}
	}

	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && dr.blanksAllowed {
			return line, nil
		}
		if err == io.EOF {
			break
		}
	}

	return line, nil
}

// ReadAnswer sets the readline prompt to prompt for the duration of the
// read, then reads and returns the next non-blank line, with surrounding
// whitespace trimmed. If at end of input, the returned string is empty and
// the error is io.EOF.
func (ir *InteractiveReader) ReadAnswer(prompt string) (string, error) {
	oldPrompt := ir.prompt
	if prompt != "" {
		ir.SetPrompt(prompt)
		defer ir.SetPrompt(oldPrompt)
	}

	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && ir.blanksAllowed {
			return line, nil
		}
		if err == io.EOF {
			break
		}
	}

	return line, nil
}

// AllowBlank sets whether blank answers are allowed. By default they are
// not, and ReadAnswer blocks until non-blank input arrives.
func (dr *DirectReader) AllowBlank(allow bool) {
	dr.blanksAllowed = allow
}

// AllowBlank sets whether blank answers are allowed. By default they are
// not, and ReadAnswer blocks until non-blank input arrives.
func (ir *InteractiveReader) AllowBlank(allow bool) {
	ir.blanksAllowed = allow
}

// SetPrompt updates the prompt shown by the readline instance.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.prompt = p
	ir.rl.SetPrompt(p)
}

// NewReader picks an InteractiveReader backed by readline when in is stdin,
// out is stdout, and forceDirect is false, falling back to a DirectReader
// over in/out otherwise. This mirrors the teacher engine's selection of
// readline only when directly attached to a real terminal.
func NewReader(in io.Reader, out io.Writer, forceDirect bool) (Reader, error) {
	useReadline := !forceDirect && in == io.Reader(os.Stdin) && out == io.Writer(os.Stdout)
	if useReadline {
		return NewInteractiveReader()
	}
	return NewDirectReader(in, out), nil
}
