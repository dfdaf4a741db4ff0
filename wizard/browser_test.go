package wizard_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/joshyorko/consolemenu/discovery"
	"github.com/joshyorko/consolemenu/hamlet"
	"github.com/joshyorko/consolemenu/menu"
	"github.com/joshyorko/consolemenu/wizard"
)

type scripted struct {
	strings.Builder
	lines   []string
	prompts []string
}

func (it *scripted) ReadLine(prompt string) (string, error) {
	it.prompts = append(it.prompts, prompt)
	if len(it.lines) == 0 {
		return "", io.EOF
	}
	line := it.lines[0]
	it.lines = it.lines[1:]
	return line, nil
}

func script(lines ...string) *scripted {
	return &scripted{lines: lines}
}

func scenario(t *testing.T, ran *int, failure error) *menu.Navigator {
	registry := discovery.NewRegistry().
		Register(menu.Location{"menu"},
			menu.Menu{Short: "Alpha", Display: "Alpha tools", SubLocation: "alpha"},
			menu.Routine{Short: "Beta", Display: "Beta routine", Invoke: func() error {
				*ran++
				return failure
			}},
			menu.Menu{Short: "Broken", Display: "Broken menu", SubLocation: "broken"}).
		Register(menu.Location{"menu", "alpha"},
			menu.Routine{Short: "Gamma", Display: "Gamma routine", Invoke: func() error { return nil }})
	navigator, err := menu.New(registry, menu.Location{"menu"})
	if err != nil {
		t.Fatal(err)
	}
	return navigator
}

func TestRenderFormat(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	ran := 0
	navigator := scenario(t, &ran, nil)
	view, err := navigator.CurrentView()
	must_be.Nil(err)
	must_be.Equal("Home\n\n1 - Alpha tools\n2 - Beta routine\n3 - Broken menu\n4 - Quit\n\n", wizard.Render(view))

	must_be.Nil(navigator.Enter("1"))
	view, err = navigator.CurrentView()
	must_be.Nil(err)
	must_be.Equal("Home > Alpha\n\n1 - Gamma routine\n2 - Back\n\n", wizard.Render(view))
}

func TestBrowserTokens(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	ran := 0
	navigator := scenario(t, &ran, nil)
	console := script("", "1", "B", "42", "2", "", "q")
	sut := wizard.NewBrowser(navigator, console, wizard.Options{Pause: true})

	must_be.Nil(sut.Run())
	must_be.True(navigator.Terminated())
	must_be.Equal(1, ran)
	must_be.Equal([]string{"> ", "> ", "> ", "> ", "> ", "Press Enter to return ", "> "}, console.prompts)
	must_be.Contains(console.String(), "Home > Alpha\n")
}

func TestBrowserEndOfInputQuits(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	ran := 0
	navigator := scenario(t, &ran, nil)
	must_be.Nil(wizard.NewBrowser(navigator, script("1"), wizard.Options{}).Run())
	must_be.True(navigator.Terminated())
}

func TestBrowserReportsDiscoveryAndStays(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	ran := 0
	navigator := scenario(t, &ran, nil)
	console := script("3", "q")
	sut := wizard.NewBrowser(navigator, console, wizard.Options{})

	must_be.Nil(sut.Run())
	must_be.Contains(console.String(), `discovery at "menu/broken" failed`)
	must_be.Equal(0, navigator.Depth())
}

func TestBrowserPropagatesRoutineFailure(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	ran := 0
	navigator := scenario(t, &ran, errors.New("boom"))
	sut := wizard.NewBrowser(navigator, script("2", "q"), wizard.Options{Pause: true})

	err := sut.Run()
	var failure *menu.RoutineError
	must_be.ErrorAs(err, &failure)
	must_be.Equal("2", failure.Key)
	wont_be.True(navigator.Terminated())
}

func TestBrowserContinuesOnRoutineFailureWhenAsked(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	ran := 0
	navigator := scenario(t, &ran, errors.New("boom"))
	console := script("2", "", "2", "q")
	sut := wizard.NewBrowser(navigator, console, wizard.Options{Pause: true, ContinueOnError: true})

	must_be.Nil(sut.Run())
	must_be.Equal(2, ran)
	must_be.Contains(console.String(), `routine 2 ("Beta") failed: boom`)
}

func TestDispatchLeavesNoticeForNextRender(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	ran := 0
	navigator := scenario(t, &ran, nil)
	sut := wizard.NewBrowser(navigator, script(), wizard.Options{})

	must_be.Nil(sut.Dispatch(" 3 "))
	must_be.Equal("", sut.Notice())
	must_be.Nil(sut.Dispatch("3"))
	must_be.Contains(sut.Notice(), "broken")
	must_be.Nil(sut.Dispatch("b"))
	must_be.Nil(sut.Dispatch("Q"))
	must_be.True(navigator.Terminated())
}

func TestPipedRoutineKeysAreNotEatenByPause(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	ran := 0
	navigator := scenario(t, &ran, nil)
	var out strings.Builder
	console := wizard.NewLineConsole(strings.NewReader("2\n2\n2\n"), &out)
	sut := wizard.NewBrowser(navigator, console, wizard.Options{Pause: true})

	must_be.Nil(sut.Run())
	must_be.Equal(3, ran)
	must_be.True(navigator.Terminated())
	must_be.Equal(false, strings.Contains(out.String(), "Press Enter"))
}

func TestLineConsole(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	var out strings.Builder
	sut := wizard.NewLineConsole(strings.NewReader("1\r\nlast"), &out)

	line, err := sut.ReadLine("> ")
	must_be.Nil(err)
	must_be.Equal("1", line)

	line, err = sut.ReadLine("> ")
	must_be.Nil(err)
	must_be.Equal("last", line)

	_, err = sut.ReadLine("> ")
	must_be.Equal(io.EOF, err)
	must_be.Equal("> > > ", out.String())
}
