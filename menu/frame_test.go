package menu_test

import (
	"testing"

	"github.com/joshyorko/consolemenu/hamlet"
	"github.com/joshyorko/consolemenu/menu"
)

func routine(short string) menu.Routine {
	return menu.Routine{Short: short, Display: short + " routine", Invoke: func() error { return nil }}
}

func submenu(short, sub string) menu.Menu {
	return menu.Menu{Short: short, Display: short + " menu", SubLocation: sub}
}

func TestFrameNumbersInDiscoveryOrder(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	frame := menu.BuildFrame([]menu.Entry{submenu("Alpha", "alpha"), routine("Beta")}, "Home", menu.Location{"menu"}, false)

	must_be.Equal([]string{"1", "2", "3"}, frame.Keys())
	items := frame.Items()
	must_be.Equal("Alpha", items[0].Entry.ShortName())
	must_be.Equal(menu.KindMenu, items[0].Entry.Kind())
	must_be.Equal("Beta", items[1].Entry.ShortName())
	must_be.Equal(menu.KindRoutine, items[1].Entry.Kind())
	must_be.Equal(menu.KindQuit, items[2].Entry.Kind())
	must_be.Equal("Home", frame.Breadcrumb)
}

func TestFrameHasExactlyOneOfBackOrQuit(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	records := []menu.Entry{routine("a"), routine("b"), routine("c")}
	for _, nested := range []bool{false, true} {
		frame := menu.BuildFrame(records, "x", menu.Location{"menu"}, nested)
		backs, quits := 0, 0
		seen := map[string]bool{}
		for _, item := range frame.Items() {
			must_be.True(!seen[item.Key])
			seen[item.Key] = true
			switch item.Entry.Kind() {
			case menu.KindBack:
				backs++
			case menu.KindQuit:
				quits++
			}
		}
		must_be.Equal(1, backs+quits)
		must_be.Equal(nested, backs == 1)
		must_be.Equal(!nested, quits == 1)
		last := frame.Items()[frame.Len()-1]
		must_be.Equal("4", last.Key)
	}
}

func TestFrameCollapsesDuplicatesLastWins(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	first := menu.Routine{Short: "deploy", Display: "Deploy (old)", ID: "deploy", Invoke: func() error { return nil }}
	second := menu.Routine{Short: "deploy", Display: "Deploy (new)", ID: "deploy", Invoke: func() error { return nil }}
	frame := menu.BuildFrame([]menu.Entry{first, routine("other"), second}, "Home", menu.Location{"menu"}, false)

	must_be.Equal([]string{"1", "2", "3"}, frame.Keys())
	entry, ok := frame.Lookup("1")
	must_be.True(ok)
	must_be.Equal("Deploy (new)", entry.DisplayName())
	entry, _ = frame.Lookup("2")
	must_be.Equal("other", entry.ShortName())
	entry, _ = frame.Lookup("3")
	must_be.Equal(menu.KindQuit, entry.Kind())
}

func TestFrameIdentityPrefersExplicitID(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	first := menu.Menu{Short: "Tools", Display: "Tools", SubLocation: "tools", ID: "tools-a"}
	second := menu.Menu{Short: "Tools", Display: "More tools", SubLocation: "more", ID: "tools-b"}
	frame := menu.BuildFrame([]menu.Entry{first, second}, "Home", menu.Location{"menu"}, false)

	must_be.Equal(3, frame.Len())
	must_be.Equal("tools-a", first.Identity())
	must_be.Equal("Beta", routine("Beta").Identity())
}

func TestEmptyDiscoveryYieldsOnlySyntheticEntry(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	root := menu.BuildFrame(nil, "Home", menu.Location{"menu"}, false)
	must_be.Equal(1, root.Len())
	entry, ok := root.Lookup("1")
	must_be.True(ok)
	must_be.Equal(menu.KindQuit, entry.Kind())

	nested := menu.BuildFrame([]menu.Entry{}, "Sub", menu.Location{"menu", "sub"}, true)
	entry, _ = nested.Lookup("1")
	must_be.Equal(menu.KindBack, entry.Kind())
	must_be.Equal("Back", entry.DisplayName())
}

func TestFrameKeysSortNumerically(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	records := make([]menu.Entry, 0, 11)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		records = append(records, routine(name))
	}
	frame := menu.BuildFrame(records, "Home", menu.Location{"menu"}, false)

	keys := frame.Keys()
	must_be.Equal(12, len(keys))
	must_be.Equal("9", keys[8])
	must_be.Equal("10", keys[9])
	must_be.Equal("12", keys[11])
}

func TestLocationChildDoesNotAlias(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	base := make(menu.Location, 1, 8)
	base[0] = "menu"
	left := base.Child("left")
	right := base.Child("right")

	must_be.Equal("menu/left", left.String())
	must_be.Equal("menu/right", right.String())
	must_be.Equal(1, len(base))
}
