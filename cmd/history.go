package cmd

import (
	"strings"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/journal"
	"github.com/joshyorko/consolemenu/pretty"
	"github.com/joshyorko/consolemenu/wizard"
	"github.com/joshyorko/consolemenu/xviper"

	"github.com/spf13/cobra"
)

var (
	limitOption int
	clearFlag   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show latest routine runs from the run journal.",
	Run: func(cmd *cobra.Command, args []string) {
		settings := xviper.Snapshot()
		history, err := journal.Open(settings.JournalFile)
		pretty.Guard(err == nil, 2, "Could not read journal: %v", err)

		if clearFlag {
			confirmed, err := wizard.Confirm("Clear run journal?", yesFlag)
			pretty.Guard(err == nil, 1, "Error: %v", err)
			if !confirmed {
				return
			}
			history.Clear()
			err = history.Save()
			pretty.Guard(err == nil, 2, "Could not save journal: %v", err)
			pretty.Ok()
			return
		}

		entries := history.GetLatest(limitOption)
		if len(entries) == 0 {
			common.Log("No runs in %q yet.", history.Path())
			return
		}
		for _, entry := range entries {
			common.Stdout("%s %s%-8s%s %s %s [%s] %ss\n",
				entry.StartTime.Format("2006-01-02 15:04:05"),
				pretty.StatusColor(string(entry.Status)), entry.Status, pretty.Reset,
				entry.Location, entry.Display, entry.Key,
				strings.TrimSpace(entry.Duration))
			if len(entry.Error) > 0 {
				common.Stdout("    %s%s%s\n", pretty.Grey, entry.Error, pretty.Reset)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&limitOption, "limit", "n", 20, "How many latest runs to show.")
	historyCmd.Flags().BoolVarP(&clearFlag, "clear", "", false, "Remove all runs from the journal.")
	historyCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Do not ask for confirmation.")
}
