package operations

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/menu"
)

// Presenter drives one navigator until it terminates or fails.
type Presenter func(*menu.Navigator) error

// Session owns the terminal flag for the lifetime of one menu run. It turns
// the flag off before the first render and guarantees it is back on when
// Run returns, panics, or the process gets a termination signal.
type Session struct {
	Provider  menu.Provider
	Root      menu.Location
	Hooks     menu.Hooks
	HomeLabel string
	Recorder  menu.Recorder

	// OnSignal runs after the terminal is restored. Default exits the
	// process with 128+signal.
	OnSignal func(os.Signal)
}

func exitOnSignal(received os.Signal) {
	code := 1
	if number, ok := received.(syscall.Signal); ok {
		code = 128 + int(number)
	}
	common.Log("Interrupted by %v.", received)
	common.WaitLogs()
	os.Exit(code)
}

func (it *Session) hooks() menu.Hooks {
	if it.Hooks == nil {
		return menu.NoHooks()
	}
	return it.Hooks
}

func (it *Session) Run(presenter Presenter) (err error) {
	hooks := it.hooks()
	err = hooks.EnterOff()
	if err != nil {
		return fmt.Errorf("preparing terminal: %w", err)
	}

	var navigator *menu.Navigator
	defer func() {
		if navigator != nil && navigator.Released() {
			return
		}
		failure := hooks.EnterOn()
		if failure != nil {
			common.Error("terminal restore", failure)
		}
	}()

	stop := it.watchSignals(hooks)
	defer stop()

	options := []menu.Option{menu.WithHooks(hooks)}
	if len(it.HomeLabel) > 0 {
		options = append(options, menu.WithHomeLabel(it.HomeLabel))
	}
	if it.Recorder != nil {
		options = append(options, menu.WithRecorder(it.Recorder))
	}
	navigator, err = menu.New(it.Provider, it.Root, options...)
	if err != nil {
		return err
	}
	common.Debug("Menu session started at %q.", it.Root.String())
	defer common.Stopwatch("Menu session lasted").Debug()

	return presenter(navigator)
}

func (it *Session) watchSignals(hooks menu.Hooks) func() {
	signals := make(chan os.Signal, 1)
	done := make(chan bool)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	handler := it.OnSignal
	if handler == nil {
		handler = exitOnSignal
	}

	go func() {
		select {
		case received := <-signals:
			failure := hooks.EnterOn()
			if failure != nil {
				common.Error("terminal restore", failure)
			}
			handler(received)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}
