package menu

import (
	"errors"
	"fmt"
	"time"

	"github.com/joshyorko/consolemenu/common"
)

const DefaultHomeLabel = "Home"

type State int

const (
	Browsing State = iota
	ExecutingRoutine
	Terminated
)

func (it State) String() string {
	switch it {
	case Browsing:
		return "browsing"
	case ExecutingRoutine:
		return "executing"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", int(it))
}

// View is what a presenter needs to draw the current level.
type View struct {
	Breadcrumb []string
	Items      []Item
	Depth      int
}

type Option func(*Navigator)

func WithHooks(hooks Hooks) Option {
	return func(it *Navigator) {
		if hooks != nil {
			it.hooks = hooks
		}
	}
}

func WithHomeLabel(label string) Option {
	return func(it *Navigator) {
		if len(label) > 0 {
			it.home = label
		}
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(it *Navigator) {
		it.recorder = recorder
	}
}

// Navigator walks a menu tree one level at a time. It is a single threaded
// state machine: every call runs to completion before the next one, and a
// routine blocks the caller until it returns.
type Navigator struct {
	provider Provider
	hooks    Hooks
	recorder Recorder
	home     string

	current  *Frame
	history  History
	location Location
	trail    []string
	state    State
	released bool
}

// New discovers the root location and returns a navigator browsing it.
func New(provider Provider, root Location, options ...Option) (*Navigator, error) {
	if provider == nil {
		return nil, errors.New("menu navigator needs a discovery provider")
	}
	if len(root) == 0 {
		return nil, errors.New("menu navigator needs a root location")
	}
	it := &Navigator{
		provider: provider,
		hooks:    NoHooks(),
		home:     DefaultHomeLabel,
		location: append(Location(nil), root...),
	}
	for _, option := range options {
		option(it)
	}
	it.trail = []string{it.home}
	frame, err := it.buildFrame(it.location, it.home)
	if err != nil {
		return nil, err
	}
	it.current = frame
	it.state = Browsing
	common.Trace("Menu root %q has %d items.", it.location.String(), frame.Len())
	return it, nil
}

func (it *Navigator) buildFrame(location Location, label string) (*Frame, error) {
	records, err := it.provider.Discover(location)
	if err != nil {
		var discovery *DiscoveryError
		if errors.As(err, &discovery) {
			return nil, err
		}
		return nil, &DiscoveryError{Location: location, Err: err}
	}
	return BuildFrame(records, label, location, !it.history.Empty()), nil
}

func (it *Navigator) State() State {
	return it.state
}

func (it *Navigator) Terminated() bool {
	return it.state == Terminated
}

// Released tells if Quit managed to turn the terminal flag back on.
func (it *Navigator) Released() bool {
	return it.released
}

func (it *Navigator) Hooks() Hooks {
	return it.hooks
}

func (it *Navigator) Depth() int {
	return it.history.Depth()
}

func (it *Navigator) Frame() *Frame {
	return it.current
}

func (it *Navigator) Location() Location {
	return it.location
}

func (it *Navigator) Breadcrumb() []string {
	return it.trail
}

func (it *Navigator) CurrentView() (View, error) {
	switch it.state {
	case Terminated:
		return View{}, ErrTerminated
	case ExecutingRoutine:
		return View{}, ErrNotBrowsing
	}
	trail := make([]string, len(it.trail))
	copy(trail, it.trail)
	return View{
		Breadcrumb: trail,
		Items:      it.current.Items(),
		Depth:      it.history.Depth(),
	}, nil
}

// Enter activates the entry under key. Unknown keys are ignored.
func (it *Navigator) Enter(key string) error {
	switch it.state {
	case Terminated:
		return ErrTerminated
	case ExecutingRoutine:
		return ErrNotBrowsing
	}
	entry, ok := it.current.Lookup(key)
	if !ok {
		common.Trace("Menu key %q not found at %q, ignored.", key, it.location.String())
		return nil
	}
	switch selected := entry.(type) {
	case Menu:
		return it.descend(selected)
	case Routine:
		return it.runRoutine(key, selected)
	case Back:
		return it.Back()
	case Quit:
		return it.Quit()
	}
	return fmt.Errorf("menu entry %q has unsupported kind %v", key, entry.Kind())
}

func (it *Navigator) descend(entry Menu) error {
	location := it.location.Child(entry.SubLocation)
	label := entry.ShortName()
	it.history.push(snapshot{frame: it.current, location: it.location, trail: it.trail})
	frame, err := it.buildFrame(location, label)
	if err != nil {
		it.history.pop()
		return err
	}
	trail := make([]string, 0, len(it.trail)+1)
	trail = append(trail, it.trail...)
	it.current = frame
	it.location = location
	it.trail = append(trail, label)
	common.Debug("Menu entered %q at depth %d.", location.String(), it.history.Depth())
	return nil
}

func (it *Navigator) runRoutine(key string, entry Routine) (err error) {
	if entry.Invoke == nil {
		return &RoutineError{Key: key, Entry: entry, Err: errors.New("routine has nothing to invoke")}
	}
	it.state = ExecutingRoutine
	if err := it.hooks.EnterOn(); err != nil {
		it.state = Browsing
		return fmt.Errorf("restoring terminal before %q: %w", entry.ShortName(), err)
	}
	watch := common.Stopwatch("Routine %q took", entry.ShortName())
	completed := false
	defer func() {
		var offErr error
		if it.state == ExecutingRoutine {
			offErr = it.hooks.EnterOff()
			it.state = Browsing
		}
		it.record(RoutineRun{
			Key:      key,
			Entry:    entry,
			Location: it.location,
			Started:  watch.When(),
			Elapsed:  time.Duration(watch.Debug()),
			Panicked: !completed,
			Err:      err,
		})
		if completed && err == nil && offErr != nil {
			err = fmt.Errorf("taking terminal back after %q: %w", entry.ShortName(), offErr)
		}
	}()
	failure := entry.Invoke()
	completed = true
	if failure != nil {
		return &RoutineError{Key: key, Entry: entry, Err: failure}
	}
	return nil
}

func (it *Navigator) record(run RoutineRun) {
	if it.recorder != nil {
		it.recorder(run)
	}
}

// Back returns to the previous level, reusing its frame as it was left.
func (it *Navigator) Back() error {
	switch it.state {
	case Terminated:
		return ErrTerminated
	case ExecutingRoutine:
		return ErrNotBrowsing
	}
	previous, ok := it.history.pop()
	if !ok {
		return nil
	}
	it.current = previous.frame
	it.location = previous.location
	it.trail = previous.trail
	common.Debug("Menu back to %q at depth %d.", it.location.String(), it.history.Depth())
	return nil
}

// Quit hands the terminal back and stops the navigator for good.
func (it *Navigator) Quit() error {
	if it.state == Terminated {
		return ErrTerminated
	}
	err := it.hooks.EnterOn()
	it.state = Terminated
	it.released = err == nil
	common.Debug("Menu terminated at depth %d.", it.history.Depth())
	return err
}
