package menu_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/joshyorko/consolemenu/hamlet"
	"github.com/joshyorko/consolemenu/menu"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreAnyFunction("github.com/joshyorko/consolemenu/common.loggerLoop"))
}

type fakeProvider struct {
	tree  map[string][]menu.Entry
	calls []string
	fail  map[string]error
}

func (it *fakeProvider) Discover(location menu.Location) ([]menu.Entry, error) {
	where := location.String()
	it.calls = append(it.calls, where)
	if err, ok := it.fail[where]; ok {
		return nil, err
	}
	entries, ok := it.tree[where]
	if !ok {
		return nil, &menu.DiscoveryError{Location: location, Reason: "no such location"}
	}
	return entries, nil
}

type journal struct {
	events []string
}

func (it *journal) add(event string) {
	it.events = append(it.events, event)
}

type countingHooks struct {
	log *journal
	on  int
	off int
}

func (it *countingHooks) EnterOn() error {
	it.on++
	it.log.add("on")
	return nil
}

func (it *countingHooks) EnterOff() error {
	it.off++
	it.log.add("off")
	return nil
}

func scenario(log *journal) *fakeProvider {
	return &fakeProvider{
		tree: map[string][]menu.Entry{
			"menu": {
				menu.Menu{Short: "Alpha", Display: "Alpha things", SubLocation: "alpha"},
				menu.Routine{Short: "Beta", Display: "Run beta", Invoke: func() error {
					log.add("beta")
					return nil
				}},
			},
			"menu/alpha": {
				menu.Menu{Short: "Gamma", Display: "Gamma things", SubLocation: "gamma"},
			},
			"menu/alpha/gamma": {},
		},
	}
}

func TestScenarioRootAlphaBeta(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	provider := scenario(&journal{})
	sut, err := menu.New(provider, menu.Location{"menu"})
	must_be.Nil(err)
	must_be.Equal(menu.Browsing, sut.State())

	view, err := sut.CurrentView()
	must_be.Nil(err)
	must_be.Equal([]string{"Home"}, view.Breadcrumb)
	must_be.Equal(3, len(view.Items))
	must_be.Equal("1", view.Items[0].Key)
	must_be.Equal("Alpha", view.Items[0].Entry.ShortName())
	must_be.Equal("2", view.Items[1].Key)
	must_be.Equal("Beta", view.Items[1].Entry.ShortName())
	must_be.Equal("3", view.Items[2].Key)
	must_be.Equal(menu.KindQuit, view.Items[2].Entry.Kind())

	root := sut.Frame()
	must_be.Nil(sut.Enter("1"))
	must_be.Equal(1, sut.Depth())
	must_be.Equal([]string{"Home", "Alpha"}, sut.Breadcrumb())
	must_be.Equal("menu/alpha", sut.Location().String())
	must_be.Equal([]string{"menu", "menu/alpha"}, provider.calls)
	wont_be.Same(root, sut.Frame())

	last, _ := sut.Frame().Lookup("2")
	must_be.Equal(menu.KindBack, last.Kind())

	must_be.Nil(sut.Back())
	must_be.Equal([]string{"Home"}, sut.Breadcrumb())
	must_be.Same(root, sut.Frame())
	must_be.Equal(2, len(provider.calls))
}

func TestHistoryRoundTripIsReferenceIdentical(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	provider := scenario(&journal{})
	sut, err := menu.New(provider, menu.Location{"menu"})
	must_be.Nil(err)

	frame := sut.Frame()
	location := sut.Location()
	trail := sut.Breadcrumb()

	must_be.Nil(sut.Enter("1"))
	must_be.Nil(sut.Enter("1"))
	must_be.Equal(2, sut.Depth())
	must_be.Equal([]string{"Home", "Alpha", "Gamma"}, sut.Breadcrumb())
	must_be.Equal(len(sut.Location()), sut.Depth()+1)
	discoveries := len(provider.calls)

	must_be.Nil(sut.Back())
	must_be.Equal(len(sut.Location()), sut.Depth()+1)
	must_be.Nil(sut.Back())

	must_be.Equal(discoveries, len(provider.calls))
	must_be.Same(frame, sut.Frame())
	must_be.Equal(0, sut.Depth())
	must_be.Same(&location[0], &sut.Location()[0])
	must_be.Same(&trail[0], &sut.Breadcrumb()[0])
}

func TestBackEntryAndBackCallPopTheSameWay(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, err := menu.New(scenario(&journal{}), menu.Location{"menu"})
	must_be.Nil(err)
	root := sut.Frame()

	must_be.Nil(sut.Enter("1"))
	must_be.Nil(sut.Enter("2"))
	must_be.Same(root, sut.Frame())
	must_be.Equal(0, sut.Depth())
}

func TestBackIsNoopAtRoot(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	provider := scenario(&journal{})
	sut, err := menu.New(provider, menu.Location{"menu"})
	must_be.Nil(err)
	root := sut.Frame()

	must_be.Nil(sut.Back())
	must_be.Same(root, sut.Frame())
	must_be.Equal([]string{"Home"}, sut.Breadcrumb())
	must_be.Equal(1, len(provider.calls))
}

func TestQuitIsReachableAtAnyDepth(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	for depth := 0; depth <= 2; depth++ {
		log := &journal{}
		hooks := &countingHooks{log: log}
		sut, err := menu.New(scenario(log), menu.Location{"menu"}, menu.WithHooks(hooks))
		must_be.Nil(err)
		for step := 0; step < depth; step++ {
			must_be.Nil(sut.Enter("1"))
		}
		must_be.Nil(sut.Quit())
		must_be.True(sut.Terminated())
		must_be.Equal(1, hooks.on)
		must_be.Equal(0, hooks.off)

		must_be.Equal(menu.ErrTerminated, sut.Enter("1"))
		must_be.Equal(menu.ErrTerminated, sut.Back())
		must_be.Equal(menu.ErrTerminated, sut.Quit())
		_, err = sut.CurrentView()
		must_be.Equal(menu.ErrTerminated, err)
	}
}

type refusingHooks struct {
	countingHooks
}

func (it *refusingHooks) EnterOn() error {
	it.countingHooks.EnterOn()
	return errors.New("terminal busy")
}

func TestFailedRestoreOnQuitIsNotReleased(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	hooks := &refusingHooks{countingHooks{log: &journal{}}}
	sut, err := menu.New(scenario(hooks.log), menu.Location{"menu"}, menu.WithHooks(hooks))
	must_be.Nil(err)
	wont_be.True(sut.Released())
	wont_be.Nil(sut.Quit())
	must_be.True(sut.Terminated())
	wont_be.True(sut.Released())

	clean, err := menu.New(scenario(&journal{}), menu.Location{"menu"})
	must_be.Nil(err)
	must_be.Nil(clean.Quit())
	must_be.True(clean.Released())
}

func TestQuitEntryTerminates(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, err := menu.New(scenario(&journal{}), menu.Location{"menu"})
	must_be.Nil(err)
	must_be.Nil(sut.Enter("3"))
	must_be.True(sut.Terminated())
}

func TestUnknownKeyIsSilentNoop(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	provider := scenario(&journal{})
	sut, err := menu.New(provider, menu.Location{"menu"})
	must_be.Nil(err)
	root := sut.Frame()

	for _, key := range []string{"", "0", "4", "x", " 1", "01"} {
		must_be.Nil(sut.Enter(key))
		must_be.Same(root, sut.Frame())
		must_be.Equal(menu.Browsing, sut.State())
	}
	must_be.Equal(1, len(provider.calls))
}

func TestRoutineRunsBetweenHooks(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	log := &journal{}
	hooks := &countingHooks{log: log}
	var runs []menu.RoutineRun
	sut, err := menu.New(scenario(log), menu.Location{"menu"}, menu.WithHooks(hooks), menu.WithRecorder(func(run menu.RoutineRun) {
		runs = append(runs, run)
	}))
	must_be.Nil(err)

	must_be.Nil(sut.Enter("2"))
	must_be.Equal([]string{"on", "beta", "off"}, log.events)
	must_be.Equal(menu.Browsing, sut.State())
	must_be.Equal(1, len(runs))
	must_be.Equal("2", runs[0].Key)
	must_be.Equal("Beta", runs[0].Entry.ShortName())
	must_be.Nil(runs[0].Err)
	must_be.True(!runs[0].Panicked)
}

func TestFailingRoutineStillRestoresHooks(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	log := &journal{}
	hooks := &countingHooks{log: log}
	boom := errors.New("boom")
	provider := &fakeProvider{tree: map[string][]menu.Entry{
		"menu": {menu.Routine{Short: "Fail", Display: "Always fails", Invoke: func() error {
			log.add("fail")
			return boom
		}}},
	}}
	sut, err := menu.New(provider, menu.Location{"menu"}, menu.WithHooks(hooks))
	must_be.Nil(err)

	err = sut.Enter("1")
	must_be.Equal([]string{"on", "fail", "off"}, log.events)
	must_be.Equal(1, hooks.off)
	must_be.True(errors.Is(err, boom))
	var failure *menu.RoutineError
	must_be.ErrorAs(err, &failure)
	must_be.Equal("1", failure.Key)
	must_be.True(strings.Contains(err.Error(), "Fail"))
	must_be.Equal(menu.Browsing, sut.State())

	_, err = sut.CurrentView()
	must_be.Nil(err)
}

func TestPanickingRoutineStillRestoresHooks(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	log := &journal{}
	hooks := &countingHooks{log: log}
	var runs []menu.RoutineRun
	provider := &fakeProvider{tree: map[string][]menu.Entry{
		"menu": {menu.Routine{Short: "Panic", Display: "Panics", Invoke: func() error {
			panic("kaboom")
		}}},
	}}
	sut, err := menu.New(provider, menu.Location{"menu"}, menu.WithHooks(hooks), menu.WithRecorder(func(run menu.RoutineRun) {
		runs = append(runs, run)
	}))
	must_be.Nil(err)

	must_be.Panic(func() { sut.Enter("1") })
	must_be.Equal(1, hooks.on)
	must_be.Equal(1, hooks.off)
	must_be.Equal(menu.Browsing, sut.State())
	must_be.Equal(1, len(runs))
	must_be.True(runs[0].Panicked)
}

func TestRoutineMayQuitTheNavigator(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	log := &journal{}
	hooks := &countingHooks{log: log}
	var sut *menu.Navigator
	provider := &fakeProvider{tree: map[string][]menu.Entry{
		"menu": {menu.Routine{Short: "Exit", Display: "Exit now", Invoke: func() error {
			return sut.Quit()
		}}},
	}}
	sut, err := menu.New(provider, menu.Location{"menu"}, menu.WithHooks(hooks))
	must_be.Nil(err)

	must_be.Nil(sut.Enter("1"))
	must_be.True(sut.Terminated())
	must_be.Equal([]string{"on", "on"}, log.events)
}

func TestDiscoveryFailureLeavesNavigatorUnchanged(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	provider := scenario(&journal{})
	provider.fail = map[string]error{"menu/alpha": errors.New("permission denied")}
	sut, err := menu.New(provider, menu.Location{"menu"})
	must_be.Nil(err)
	root := sut.Frame()

	err = sut.Enter("1")
	var discovery *menu.DiscoveryError
	must_be.ErrorAs(err, &discovery)
	must_be.Equal("menu/alpha", discovery.Location.String())
	must_be.Same(root, sut.Frame())
	must_be.Equal(0, sut.Depth())
	must_be.Equal([]string{"Home"}, sut.Breadcrumb())
	must_be.Equal("menu", sut.Location().String())
	must_be.Equal(menu.Browsing, sut.State())
}

func TestRootDiscoveryFailureFailsConstruction(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := menu.New(&fakeProvider{}, menu.Location{"missing"})
	must_be.Nil(sut)
	wont_be.Nil(err)
	var discovery *menu.DiscoveryError
	must_be.ErrorAs(err, &discovery)

	_, err = menu.New(nil, menu.Location{"menu"})
	wont_be.Nil(err)
	_, err = menu.New(&fakeProvider{}, nil)
	wont_be.Nil(err)
}

func TestNavigatorsDoNotShareState(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	first, err := menu.New(scenario(&journal{}), menu.Location{"menu"}, menu.WithHomeLabel("Start"))
	must_be.Nil(err)
	second, err := menu.New(scenario(&journal{}), menu.Location{"menu"})
	must_be.Nil(err)

	must_be.Nil(first.Enter("1"))
	must_be.Equal(1, first.Depth())
	must_be.Equal(0, second.Depth())
	must_be.Equal([]string{"Start", "Alpha"}, first.Breadcrumb())
	must_be.Equal([]string{"Home"}, second.Breadcrumb())
	wont_be.Same(first.Frame(), second.Frame())
}

func TestProviderFuncErrorsAreWrapped(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	plain := errors.New("disk on fire")
	_, err := menu.New(menu.ProviderFunc(func(menu.Location) ([]menu.Entry, error) {
		return nil, plain
	}), menu.Location{"menu"})
	var discovery *menu.DiscoveryError
	must_be.ErrorAs(err, &discovery)
	must_be.True(errors.Is(err, plain))
}
