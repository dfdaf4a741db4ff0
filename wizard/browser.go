package wizard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/menu"
	"github.com/joshyorko/consolemenu/pretty"
)

const (
	DefaultPrompt  = "> "
	pausePrompt    = "Press Enter to return "
	crumbSeparator = " > "
)

type Options struct {
	Prompt          string
	ClearScreen     bool
	Pause           bool
	ContinueOnError bool
}

// Browser is the line oriented presenter: render current view, read one
// token, hand it to the navigator, repeat until terminated.
type Browser struct {
	navigator *menu.Navigator
	console   Console
	options   Options
	notice    string
}

func NewBrowser(navigator *menu.Navigator, console Console, options Options) *Browser {
	if len(options.Prompt) == 0 {
		options.Prompt = DefaultPrompt
	}
	return &Browser{
		navigator: navigator,
		console:   console,
		options:   options,
	}
}

// Render formats a view: breadcrumb, blank line, one "key - display" line
// per item, blank line.
func Render(view menu.View) string {
	var out strings.Builder
	out.WriteString(strings.Join(view.Breadcrumb, crumbSeparator))
	out.WriteString("\n\n")
	for _, item := range view.Items {
		fmt.Fprintf(&out, "%s - %s\n", item.Key, item.Entry.DisplayName())
	}
	out.WriteString("\n")
	return out.String()
}

// Run loops until the navigator terminates. End of input quits.
func (it *Browser) Run() error {
	for {
		view, err := it.navigator.CurrentView()
		if errors.Is(err, menu.ErrTerminated) {
			return nil
		}
		if err != nil {
			return err
		}
		err = it.show(view)
		if err != nil {
			return err
		}
		line, err := it.console.ReadLine(it.options.Prompt)
		if err == io.EOF {
			common.Debug("End of input, quitting menu.")
			return it.navigator.Quit()
		}
		if err != nil {
			return err
		}
		err = it.Dispatch(line)
		if err != nil {
			return err
		}
	}
}

func (it *Browser) show(view menu.View) error {
	var out strings.Builder
	if it.options.ClearScreen {
		out.WriteString(pretty.ClearSequence())
	}
	out.WriteString(Render(view))
	if len(it.notice) > 0 {
		out.WriteString(it.notice)
		out.WriteString("\n")
		it.notice = ""
	}
	_, err := io.WriteString(it.console, out.String())
	return err
}

// Dispatch handles one input token. Discovery failures, and routine
// failures when allowed, become a notice shown with next render.
func (it *Browser) Dispatch(token string) error {
	switch token {
	case "":
		return nil
	case "b", "B":
		return it.navigator.Back()
	case "q", "Q":
		return it.navigator.Quit()
	}

	entry, known := it.navigator.Frame().Lookup(token)
	err := it.navigator.Enter(token)

	var discovery *menu.DiscoveryError
	var routine *menu.RoutineError
	switch {
	case err == nil:
	case errors.As(err, &discovery):
		common.Debug("Staying at %q: %v", it.navigator.Location().String(), err)
		it.notice = note("%v", err)
	case errors.As(err, &routine) && it.options.ContinueOnError:
		common.Debug("Continuing after: %v", err)
		it.notice = note("%v", err)
	default:
		return err
	}

	if known && entry.Kind() == menu.KindRoutine && it.pausing() {
		return it.pause()
	}
	return nil
}

// pausing is off for piped input, every line there is a menu token.
func (it *Browser) pausing() bool {
	if !it.options.Pause || it.navigator.Terminated() {
		return false
	}
	source, ok := it.console.(prompter)
	return !ok || source.Interactive()
}

func (it *Browser) pause() error {
	_, err := it.console.ReadLine(pausePrompt)
	if err == io.EOF {
		return nil
	}
	return err
}

func (it *Browser) Notice() string {
	return it.notice
}
