package common

import (
	"fmt"
	"os"
)

type Verbosity uint8

const (
	Undefined Verbosity = 0
	Silently  Verbosity = 1
	Normal    Verbosity = 2
	Debugging Verbosity = 3
	Tracing   Verbosity = 4
)

var (
	Version        = "v0.3.0"
	LogLinenumbers bool
	LogHides       []string
	ConfigFile     string
	Product        ProductStrategy

	verbosity Verbosity
)

func init() {
	Product = ConsoleMenuMode()
	verbosity = Normal
}

func DefineVerbosity(silent, debug, trace bool) {
	override := Normal
	switch {
	case silent:
		override = Silently
	case trace:
		override = Tracing
	case debug:
		override = Debugging
	}
	verbosity = override
}

func Silent() bool {
	return verbosity == Silently
}

func DebugFlag() bool {
	return verbosity >= Debugging
}

func TraceFlag() bool {
	return verbosity >= Tracing
}

// ExitCode is panicked by pretty.Exit and recovered by the top level driver,
// so deferred cleanup runs before the process terminates.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, it.Message)
}

func (it ExitCode) Error() string {
	return fmt.Sprintf("exit %d: %s", it.Code, it.Message)
}
