package xviper

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joshyorko/consolemenu/common"
	"github.com/spf13/viper"
)

const (
	envPrefix = `CONSOLEMENU`
)

var (
	lock     sync.Mutex
	settings *viper.Viper
	filename string
)

func defaults(it *viper.Viper) {
	it.SetDefault("menu.directory", "menu")
	it.SetDefault("menu.home_label", "Home")
	it.SetDefault("menu.prompt", "> ")
	it.SetDefault("menu.max_depth", 16)
	it.SetDefault("display.clear_screen", true)
	it.SetDefault("display.tui", false)
	it.SetDefault("routines.pause", true)
	it.SetDefault("routines.continue_on_error", false)
	it.SetDefault("journal.enabled", true)
	it.SetDefault("journal.file", "")
}

func fresh() *viper.Viper {
	it := viper.New()
	defaults(it)
	it.SetConfigType("yaml")
	it.SetEnvPrefix(envPrefix)
	it.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	it.AutomaticEnv()
	return it
}

func current() *viper.Viper {
	if settings == nil {
		settings = fresh()
	}
	return settings
}

// SetConfigFile loads settings from given YAML file. Missing file is not an
// error, configuration then comes from defaults and environment only.
func SetConfigFile(name string) error {
	lock.Lock()
	defer lock.Unlock()

	settings = fresh()
	filename = common.ExpandPath(name)
	if len(filename) == 0 {
		return nil
	}
	settings.SetConfigFile(filename)
	_, err := os.Stat(filename)
	if os.IsNotExist(err) {
		common.Trace("Config file %q does not exist, using defaults.", filename)
		return nil
	}
	err = settings.ReadInConfig()
	if err != nil {
		return err
	}
	common.Debug("Using config file %q.", filename)
	return nil
}

func ConfigFile() string {
	lock.Lock()
	defer lock.Unlock()
	return filename
}

// Save writes current settings (defaults and overrides included) to the
// config file, creating its directory when needed.
func Save() error {
	lock.Lock()
	defer lock.Unlock()

	if len(filename) == 0 {
		return nil
	}
	err := os.MkdirAll(filepath.Dir(filename), 0o750)
	if err != nil {
		return err
	}
	return current().WriteConfigAs(filename)
}

func Reset() {
	lock.Lock()
	defer lock.Unlock()
	settings = nil
	filename = ""
}

func Set(key string, value interface{}) {
	lock.Lock()
	defer lock.Unlock()
	current().Set(key, value)
}

func GetString(key string) string {
	lock.Lock()
	defer lock.Unlock()
	return current().GetString(key)
}

func GetBool(key string) bool {
	lock.Lock()
	defer lock.Unlock()
	return current().GetBool(key)
}

func GetInt(key string) int {
	lock.Lock()
	defer lock.Unlock()
	return current().GetInt(key)
}
