package wizard

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Console is where the line browser writes menus and reads choices.
type Console interface {
	io.Writer
	ReadLine(prompt string) (string, error)
}

// prompter is implemented by consoles that know whether a person is
// typing on the other side.
type prompter interface {
	Interactive() bool
}

type lineConsole struct {
	io.Writer
	source      *bufio.Reader
	interactive bool
}

// NewLineConsole reads newline terminated input, for pipes and cooked
// terminals.
func NewLineConsole(in io.Reader, out io.Writer) Console {
	return &lineConsole{
		Writer:      out,
		source:      bufio.NewReader(in),
		interactive: fromTerminal(in),
	}
}

func fromTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func (it *lineConsole) Interactive() bool {
	return it.interactive
}

func (it *lineConsole) ReadLine(prompt string) (string, error) {
	_, err := io.WriteString(it.Writer, prompt)
	if err != nil {
		return "", err
	}
	line, err := it.source.ReadString(newline)
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, WINDOWS_NEWLINE), nil
}

type terminalConsole struct {
	terminal *term.Terminal
}

// NewTerminalConsole edits lines itself, so it needs the terminal in raw
// mode. Output newlines become CR-LF. Ctrl-C and Ctrl-D give io.EOF.
func NewTerminalConsole(in io.Reader, out io.Writer) Console {
	return &terminalConsole{
		terminal: term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{in, out}, ""),
	}
}

func (it *terminalConsole) Interactive() bool {
	return true
}

func (it *terminalConsole) Write(blob []byte) (int, error) {
	return it.terminal.Write(blob)
}

func (it *terminalConsole) ReadLine(prompt string) (string, error) {
	it.terminal.SetPrompt(prompt)
	return it.terminal.ReadLine()
}
