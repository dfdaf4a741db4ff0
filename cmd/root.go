package cmd

import (
	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/pretty"
	"github.com/joshyorko/consolemenu/xviper"

	"github.com/spf13/cobra"
)

var (
	debugFlag     bool
	traceFlag     bool
	silentFlag    bool
	colorlessFlag bool
	lineNumbers   bool
	yesFlag       bool
)

var rootCmd = &cobra.Command{
	Use:   "consolemenu",
	Short: "Numbered terminal menus built from a folder of manifests.",
	Long: `consolemenu turns a folder of YAML or HCL manifests into a numbered,
nested terminal menu. Menu entries open sub folders, routine entries run
commands. Type a number to choose, b to go back, q to quit.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		common.LogLinenumbers = lineNumbers
		pretty.Disabled = colorlessFlag
		pretty.Setup()
		initConfig()
	},
}

func initConfig() {
	if len(common.ConfigFile) == 0 {
		common.ConfigFile = common.Product.DefaultConfigFile()
	}
	err := xviper.SetConfigFile(common.ConfigFile)
	pretty.Guard(err == nil, 2, "Could not read config %q: %v", common.ConfigFile, err)
	common.Trace("Using config %q, home %q.", common.ConfigFile, common.Product.Home())
}

func Execute() {
	err := rootCmd.Execute()
	pretty.Guard(err == nil, 1, "Error: %v", err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&common.ConfigFile, "config", "", "Config file to use (default is $CONSOLEMENU_HOME/consolemenu.yaml).")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "Turn on debugging output.")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "Turn on tracing output.")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "Be less verbose on output.")
	rootCmd.PersistentFlags().BoolVarP(&colorlessFlag, "colorless", "", false, "Do not use colors in output.")
	rootCmd.PersistentFlags().BoolVarP(&lineNumbers, "numbers", "", false, "Put line numbers on log output.")
}
