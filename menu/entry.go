package menu

import "fmt"

type Kind int

const (
	KindMenu Kind = iota
	KindRoutine
	KindBack
	KindQuit
)

func (it Kind) String() string {
	switch it {
	case KindMenu:
		return "menu"
	case KindRoutine:
		return "routine"
	case KindBack:
		return "back"
	case KindQuit:
		return "quit"
	}
	return fmt.Sprintf("kind(%d)", int(it))
}

// Action is the body of a routine. It runs synchronously on the caller's
// goroutine with the terminal handed back in its normal mode.
type Action func() error

// Entry is one selectable line of a menu. The set of implementations is
// closed: Menu, Routine, Back and Quit.
type Entry interface {
	ShortName() string
	DisplayName() string
	Kind() Kind
	Identity() string

	sealed()
}

// Menu leads into a nested menu found at SubLocation, relative to the
// location of the frame that lists it.
type Menu struct {
	Short       string
	Display     string
	SubLocation string
	ID          string
}

type Routine struct {
	Short   string
	Display string
	Invoke  Action
	ID      string
}

type Back struct{}

type Quit struct{}

func (it Menu) ShortName() string   { return it.Short }
func (it Menu) DisplayName() string { return it.Display }
func (it Menu) Kind() Kind          { return KindMenu }
func (it Menu) Identity() string    { return identity(it.ID, it.Short) }
func (Menu) sealed()                {}

func (it Routine) ShortName() string   { return it.Short }
func (it Routine) DisplayName() string { return it.Display }
func (it Routine) Kind() Kind          { return KindRoutine }
func (it Routine) Identity() string    { return identity(it.ID, it.Short) }
func (Routine) sealed()                {}

func (Back) ShortName() string   { return "Back" }
func (Back) DisplayName() string { return "Back" }
func (Back) Kind() Kind          { return KindBack }
func (Back) Identity() string    { return "" }
func (Back) sealed()             {}

func (Quit) ShortName() string   { return "Quit" }
func (Quit) DisplayName() string { return "Quit" }
func (Quit) Kind() Kind          { return KindQuit }
func (Quit) Identity() string    { return "" }
func (Quit) sealed()             {}

func identity(explicit, fallback string) string {
	if len(explicit) > 0 {
		return explicit
	}
	return fallback
}
