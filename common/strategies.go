package common

import (
	"os"
	"path/filepath"
)

const (
	CONSOLEMENU_HOME_VARIABLE = `CONSOLEMENU_HOME`
	CONSOLEMENU_PRODUCT_NAME  = `CONSOLEMENU_PRODUCT_NAME`
	CONSOLEMENU_NAME          = `consolemenu`

	defaultHomeLocation = "$HOME/.consolemenu"
)

type (
	ProductStrategy interface {
		Name() string
		ForceHome(string)
		HomeVariable() string
		Home() string
		DefaultConfigFile() string
		DefaultJournalFile() string
	}

	consoleMenuStrategy struct {
		forcedHome string
	}
)

func ConsoleMenuMode() ProductStrategy {
	return &consoleMenuStrategy{}
}

func (it *consoleMenuStrategy) Name() string {
	if value := os.Getenv(CONSOLEMENU_PRODUCT_NAME); len(value) > 0 {
		return value
	}
	return CONSOLEMENU_NAME
}

func (it *consoleMenuStrategy) ForceHome(value string) {
	it.forcedHome = value
}

func (it *consoleMenuStrategy) HomeVariable() string {
	return CONSOLEMENU_HOME_VARIABLE
}

func (it *consoleMenuStrategy) Home() string {
	if len(it.forcedHome) > 0 {
		return ExpandPath(it.forcedHome)
	}
	home := os.Getenv(CONSOLEMENU_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func (it *consoleMenuStrategy) DefaultConfigFile() string {
	return filepath.Join(it.Home(), "consolemenu.yaml")
}

func (it *consoleMenuStrategy) DefaultJournalFile() string {
	return filepath.Join(it.Home(), "history.json")
}
