package pretty

import (
	"sync"

	"github.com/joshyorko/consolemenu/common"
	"golang.org/x/term"
)

// TerminalMode owns the raw/cooked state of one terminal file descriptor.
// EnterOff switches to raw mode for menu input, EnterOn puts back the state
// captured at the first EnterOff. Both are idempotent, and safe to call from
// a signal handler goroutine while the menu loop is blocked on input.
type TerminalMode struct {
	sync.Mutex
	fd    int
	saved *term.State
}

func NewTerminalMode(fd int) *TerminalMode {
	return &TerminalMode{fd: fd}
}

func (it *TerminalMode) Usable() bool {
	return term.IsTerminal(it.fd)
}

func (it *TerminalMode) Raw() bool {
	it.Lock()
	defer it.Unlock()
	return it.saved != nil
}

func (it *TerminalMode) EnterOff() error {
	it.Lock()
	defer it.Unlock()

	if it.saved != nil || !term.IsTerminal(it.fd) {
		return nil
	}
	state, err := term.MakeRaw(it.fd)
	if err != nil {
		return err
	}
	it.saved = state
	common.Trace("Terminal %d switched to raw mode.", it.fd)
	return nil
}

func (it *TerminalMode) EnterOn() error {
	it.Lock()
	defer it.Unlock()

	if it.saved == nil {
		return nil
	}
	err := term.Restore(it.fd, it.saved)
	if err != nil {
		return err
	}
	it.saved = nil
	common.Trace("Terminal %d restored.", it.fd)
	return nil
}
