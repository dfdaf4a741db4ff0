package cmd

import (
	"os"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/operations"
	"github.com/joshyorko/consolemenu/pretty"
	"github.com/joshyorko/consolemenu/xviper"

	"github.com/spf13/cobra"
)

var (
	depthOption int
)

var listCmd = &cobra.Command{
	Use:   "list [folder]",
	Short: "Print the whole menu tree without running anything.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("depth") {
			xviper.Set("menu.max_depth", depthOption)
		}
		settings := xviper.Snapshot()
		directory, root := menuDirectory(args, settings)

		listing, err := operations.ListTree(directory, root, settings.HomeLabel, settings.MaxDepth, os.Stdout)
		pretty.Guard(err == nil, 2, "Could not list menu: %v", err)
		common.Log("%d menus, %d routines, %d unreadable, %d pruned at depth %d.", listing.Menus, listing.Routines, listing.Failures, listing.Pruned, settings.MaxDepth)
		pretty.Guard(listing.Failures == 0, 3, "Some menus could not be read.")
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&depthOption, "depth", "d", 16, "How deep into sub menus to go.")
}
