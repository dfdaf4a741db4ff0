package xviper

import (
	"github.com/joshyorko/consolemenu/common"
)

type Settings struct {
	Directory       string
	HomeLabel       string
	Prompt          string
	MaxDepth        int
	ClearScreen     bool
	Tui             bool
	Pause           bool
	ContinueOnError bool
	JournalEnabled  bool
	JournalFile     string
}

// Snapshot collects typed settings for one session. Empty journal file
// falls back to the product default.
func Snapshot() *Settings {
	result := &Settings{
		Directory:       GetString("menu.directory"),
		HomeLabel:       GetString("menu.home_label"),
		Prompt:          GetString("menu.prompt"),
		MaxDepth:        GetInt("menu.max_depth"),
		ClearScreen:     GetBool("display.clear_screen"),
		Tui:             GetBool("display.tui"),
		Pause:           GetBool("routines.pause"),
		ContinueOnError: GetBool("routines.continue_on_error"),
		JournalEnabled:  GetBool("journal.enabled"),
		JournalFile:     common.ExpandPath(GetString("journal.file")),
	}
	if len(result.JournalFile) == 0 {
		result.JournalFile = common.Product.DefaultJournalFile()
	}
	if result.MaxDepth < 1 {
		result.MaxDepth = 1
	}
	return result
}
