package cmd

import (
	"os"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/discovery"
	"github.com/joshyorko/consolemenu/interactive"
	"github.com/joshyorko/consolemenu/journal"
	"github.com/joshyorko/consolemenu/menu"
	"github.com/joshyorko/consolemenu/operations"
	"github.com/joshyorko/consolemenu/pretty"
	"github.com/joshyorko/consolemenu/wizard"
	"github.com/joshyorko/consolemenu/xviper"

	"github.com/spf13/cobra"
)

var (
	tuiFlag             bool
	noPauseFlag         bool
	noClearFlag         bool
	continueOnErrorFlag bool
)

// overrides copies explicitly given flags over configured settings.
func overrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("tui") {
		xviper.Set("display.tui", tuiFlag)
	}
	if flags.Changed("no-pause") {
		xviper.Set("routines.pause", !noPauseFlag)
	}
	if flags.Changed("no-clear") {
		xviper.Set("display.clear_screen", !noClearFlag)
	}
	if flags.Changed("continue-on-error") {
		xviper.Set("routines.continue_on_error", continueOnErrorFlag)
	}
}

func menuFolder(args []string, settings *xviper.Settings) string {
	if len(args) > 0 {
		return args[0]
	}
	return settings.Directory
}

func menuDirectory(args []string, settings *xviper.Settings) (*discovery.Directory, menu.Location) {
	base, root, err := discovery.Split(menuFolder(args, settings))
	pretty.Guard(err == nil, 2, "Bad menu folder: %v", err)
	common.Debug("Menu base %q, root %q.", base, root.String())
	return discovery.NewDirectory(base, discovery.WithConfirmer(wizard.Confirmer(yesFlag))), root
}

func recorder(settings *xviper.Settings) menu.Recorder {
	if !settings.JournalEnabled {
		return nil
	}
	history, err := journal.Open(settings.JournalFile)
	if err != nil {
		pretty.Warning("Run journal disabled: %v", err)
		return nil
	}
	return history.Recorder()
}

var runCmd = &cobra.Command{
	Use:   "run [folder]",
	Short: "Browse a menu folder interactively.",
	Long: `Run shows the menu built from given folder (default from config
"menu.directory") and keeps asking for choices until quit.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Menu run lasted").Report()
		}
		overrides(cmd)
		settings := xviper.Snapshot()
		directory, root := menuDirectory(args, settings)

		session := &operations.Session{
			Provider:  directory,
			Root:      root,
			HomeLabel: settings.HomeLabel,
			Recorder:  recorder(settings),
		}

		var presenter operations.Presenter
		if settings.Tui {
			pretty.Guard(pretty.Interactive, 1, "The TUI requires an interactive terminal (TTY)")
			options := interactive.Options{
				Pause:           settings.Pause,
				ContinueOnError: settings.ContinueOnError,
			}
			presenter = func(navigator *menu.Navigator) error {
				return interactive.Run(navigator, options)
			}
		} else {
			options := wizard.Options{
				Prompt:          settings.Prompt,
				ClearScreen:     settings.ClearScreen,
				Pause:           settings.Pause,
				ContinueOnError: settings.ContinueOnError,
			}
			console := wizard.NewLineConsole(os.Stdin, os.Stdout)
			mode := pretty.NewTerminalMode(int(os.Stdin.Fd()))
			if pretty.Interactive && mode.Usable() {
				session.Hooks = mode
				console = wizard.NewTerminalConsole(os.Stdin, os.Stdout)
			}
			presenter = func(navigator *menu.Navigator) error {
				return wizard.NewBrowser(navigator, console, options).Run()
			}
		}

		err := session.Run(presenter)
		pretty.Guard(err == nil, 1, "Menu failed: %v", err)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&tuiFlag, "tui", "t", false, "Use full screen terminal UI.")
	runCmd.Flags().BoolVarP(&noPauseFlag, "no-pause", "", false, "Do not wait for Enter after routines.")
	runCmd.Flags().BoolVarP(&noClearFlag, "no-clear", "", false, "Do not clear screen between menus.")
	runCmd.Flags().BoolVarP(&continueOnErrorFlag, "continue-on-error", "c", false, "Report failing routines and keep browsing.")
	runCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Run routines without confirmation prompts.")
}
