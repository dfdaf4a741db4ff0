package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/menu"
)

type Options struct {
	Pause           bool
	ContinueOnError bool
}

// routineDoneMsg is sent when a routine hands the terminal back
type routineDoneMsg struct {
	key string
	err error
}

// App is the bubbletea model over one navigator
type App struct {
	navigator *menu.Navigator
	options   Options
	styles    *Styles
	cursor    int
	typed     string
	status    string
	failure   error
	width     int
	height    int
	showHelp  bool
	quitting  bool
}

func NewApp(navigator *menu.Navigator, options Options) *App {
	return &App{
		navigator: navigator,
		options:   options,
		styles:    NewStyles(),
		width:     80,
		height:    24,
	}
}

// Run shows the menu full screen until the navigator terminates. Routine
// failures end the program and are returned, unless ContinueOnError.
func Run(navigator *menu.Navigator, options Options) error {
	program := tea.NewProgram(NewApp(navigator, options), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if app, ok := final.(*App); ok {
		return app.failure
	}
	return nil
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Failure() error {
	return a.failure
}

func (a *App) Status() string {
	return a.status
}

func (a *App) Typed() string {
	return a.typed
}

func (a *App) Cursor() int {
	return a.cursor
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case routineDoneMsg:
		var failure *menu.RoutineError
		if errors.As(msg.err, &failure) && a.options.ContinueOnError {
			common.Debug("Continuing after: %v", msg.err)
			a.status = msg.err.Error()
			return a, a.settle(nil)
		}
		return a, a.settle(msg.err)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	items := a.navigator.Frame().Items()
	switch {
	case key.Matches(msg, keys.Quit):
		err := a.navigator.Quit()
		if err != nil && !errors.Is(err, menu.ErrTerminated) {
			a.failure = err
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp

	case key.Matches(msg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, keys.Down):
		if a.cursor < len(items)-1 {
			a.cursor++
		}

	case key.Matches(msg, keys.Top):
		a.cursor = 0

	case key.Matches(msg, keys.Bottom):
		a.cursor = len(items) - 1

	case key.Matches(msg, keys.Digit):
		a.typed += msg.String()
		if !a.prefixOfAny(a.typed) {
			a.typed = ""
			return nil
		}
		if a.decisive(a.typed) {
			chosen := a.typed
			a.typed = ""
			return a.activate(chosen)
		}

	case key.Matches(msg, keys.Clear):
		a.typed = ""

	case key.Matches(msg, keys.Select):
		chosen := a.typed
		a.typed = ""
		if len(chosen) == 0 && a.cursor < len(items) {
			chosen = items[a.cursor].Key
		}
		return a.activate(chosen)

	case key.Matches(msg, keys.Back):
		a.typed = ""
		a.status = ""
		a.cursor = 0
		return a.settle(a.navigator.Back())
	}
	return nil
}

func (a *App) prefixOfAny(typed string) bool {
	for _, known := range a.navigator.Frame().Keys() {
		if strings.HasPrefix(known, typed) {
			return true
		}
	}
	return false
}

// decisive tells if typed is a key and no longer key could still be meant.
func (a *App) decisive(typed string) bool {
	exact := false
	for _, known := range a.navigator.Frame().Keys() {
		switch {
		case known == typed:
			exact = true
		case strings.HasPrefix(known, typed):
			return false
		}
	}
	return exact
}

func (a *App) activate(chosen string) tea.Cmd {
	entry, ok := a.navigator.Frame().Lookup(chosen)
	if !ok {
		return nil
	}
	a.status = ""
	if entry.Kind() == menu.KindRoutine {
		run := &routineRun{navigator: a.navigator, key: chosen, pause: a.options.Pause}
		return tea.Exec(run, func(err error) tea.Msg {
			return routineDoneMsg{key: chosen, err: err}
		})
	}
	depth := a.navigator.Depth()
	err := a.navigator.Enter(chosen)
	if a.navigator.Depth() != depth {
		a.cursor = 0
	}
	return a.settle(err)
}

// settle applies the outcome of one navigator call to the screen state.
func (a *App) settle(err error) tea.Cmd {
	var discovery *menu.DiscoveryError
	switch {
	case err == nil:
	case errors.As(err, &discovery):
		a.status = err.Error()
	default:
		a.failure = err
		a.quitting = true
		return tea.Quit
	}
	if a.navigator.Terminated() {
		a.quitting = true
		return tea.Quit
	}
	a.cursor = max(min(a.cursor, a.navigator.Frame().Len()-1), 0)
	return nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	sections := []string{a.renderHeader(), a.renderItems()}
	if len(a.status) > 0 {
		sections = append(sections, a.styles.Error.Render("! "+a.status))
	}
	if len(a.typed) > 0 {
		sections = append(sections, a.styles.Subtle.Render("choice: "+a.typed+"_"))
	}
	if a.showHelp {
		sections = append(sections, a.renderHelp())
	}
	sections = append(sections, a.renderMenu())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderHeader() string {
	trail := a.navigator.Breadcrumb()
	crumbs := make([]string, 0, len(trail))
	for at, label := range trail {
		if at == len(trail)-1 {
			crumbs = append(crumbs, a.styles.CrumbActive.Render(label))
		} else {
			crumbs = append(crumbs, a.styles.CrumbInactive.Render(label))
		}
	}
	line := strings.Join(crumbs, a.styles.MenuSeparator.Render(" › "))
	divider := a.styles.Divider.Render(strings.Repeat("─", max(a.width, 10)))
	return line + "\n" + divider + "\n"
}

func (a *App) renderItems() string {
	var b strings.Builder
	for at, item := range a.navigator.Frame().Items() {
		label := item.Entry.DisplayName()
		switch item.Entry.Kind() {
		case menu.KindMenu:
			label += a.styles.ListItemDesc.Render(" ›")
		case menu.KindBack, menu.KindQuit:
			label = a.styles.ListItemDesc.Render(label)
		}
		row := a.styles.ListKey.Render(item.Key) + " " + label
		if at == a.cursor {
			b.WriteString(a.styles.ListItemSelected.Render(row))
		} else {
			b.WriteString(a.styles.ListItem.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderMenu() string {
	parts := make([]string, 0, 5)
	for _, binding := range keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, a.styles.MenuKey.Render(help.Key)+" "+a.styles.MenuDesc.Render(help.Desc))
	}
	return strings.Join(parts, a.styles.MenuSeparator.Render(" • "))
}

func (a *App) renderHelp() string {
	columns := make([]string, 0, 3)
	for _, group := range keys.FullHelp() {
		var b strings.Builder
		for _, binding := range group {
			help := binding.Help()
			fmt.Fprintf(&b, "%s %s\n", a.styles.MenuKey.Render(fmt.Sprintf("%-7s", help.Key)), a.styles.MenuDesc.Render(help.Desc))
		}
		columns = append(columns, lipgloss.NewStyle().PaddingRight(4).Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// routineRun is the tea.ExecCommand that runs one routine while bubbletea
// has released the terminal.
type routineRun struct {
	navigator *menu.Navigator
	key       string
	pause     bool
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

func (it *routineRun) SetStdin(reader io.Reader) {
	it.stdin = reader
}

func (it *routineRun) SetStdout(writer io.Writer) {
	it.stdout = writer
}

func (it *routineRun) SetStderr(writer io.Writer) {
	it.stderr = writer
}

func (it *routineRun) Run() error {
	err := it.navigator.Enter(it.key)
	if !it.pause || it.navigator.Terminated() {
		return err
	}
	input, output := it.stdin, it.stdout
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}
	fmt.Fprint(output, "\nPress Enter to return ")
	_, failure := bufio.NewReader(input).ReadString('\n')
	if err == nil && failure != nil && failure != io.EOF {
		return failure
	}
	return err
}
