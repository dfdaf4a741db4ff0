package menu

import "time"

// Provider produces the entries of one location, in display order. Failures
// should be reported as *DiscoveryError; anything else gets wrapped in one.
type Provider interface {
	Discover(location Location) ([]Entry, error)
}

type ProviderFunc func(location Location) ([]Entry, error)

func (it ProviderFunc) Discover(location Location) ([]Entry, error) {
	return it(location)
}

// Hooks toggle the process wide terminal mode. EnterOn hands the terminal
// back in its normal mode, EnterOff takes it over for menu input.
type Hooks interface {
	EnterOn() error
	EnterOff() error
}

type noHooks struct{}

func (noHooks) EnterOn() error  { return nil }
func (noHooks) EnterOff() error { return nil }

func NoHooks() Hooks {
	return noHooks{}
}

// RoutineRun describes one finished routine invocation.
type RoutineRun struct {
	Key      string
	Entry    Entry
	Location Location
	Started  time.Time
	Elapsed  time.Duration
	Panicked bool
	Err      error
}

type Recorder func(RoutineRun)
