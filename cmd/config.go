package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/pretty"
	"github.com/joshyorko/consolemenu/xviper"

	"github.com/spf13/cobra"
)

var forceFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Group of commands related to consolemenu configuration.",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write current settings, defaults included, into the config file.",
	Run: func(cmd *cobra.Command, args []string) {
		err := writeConfig(forceFlag)
		pretty.Guard(err == nil, 2, "Could not write config: %v", err)
		common.Log("Settings written to %q.", xviper.ConfigFile())
		pretty.Ok()
	},
}

func writeConfig(force bool) error {
	target := xviper.ConfigFile()
	if len(target) == 0 {
		return errors.New("no config file location known")
	}
	_, err := os.Stat(target)
	if err == nil && !force {
		return fmt.Errorf("%q already exists, use --force to overwrite it", target)
	}
	return xviper.Save()
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing config file.")
}
