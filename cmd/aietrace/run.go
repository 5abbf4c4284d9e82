package main

import (
	"github.com/spf13/cobra"

	"aietrace/internal/lister"
)

var planCmd = &cobra.Command{
	Use:   "plan [flags] settings_file",
	Short: "Print the device calls a settings file produces.",
	Long: `Print, in issue order, every device call the trace session described
	by a settings file would make. Nothing is written to hardware.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return lister.Run(lister.Config{
			SettingsPath: args[0],
			Reset:        getFlag(cmd, "reset"),
			Stats:        getFlag(cmd, "stats"),
			Quiet:        getFlag(cmd, "quiet"),
			Colour:       colour(cmd),
			OutputWriter: cmd.OutOrStdout(),
			Logger:       newLogger(cmd),
		})
	},
}

var configureCmd = &cobra.Command{
	Use:   "configure [flags] settings_file",
	Short: "Run a settings file against a simulated array.",
	Long: `Run the trace session described by a settings file against a simulated
	array and print the resulting runtime configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return lister.Run(lister.Config{
			SettingsPath: args[0],
			Apply:        true,
			Reset:        getFlag(cmd, "reset"),
			JSON:         getFlag(cmd, "json"),
			Colour:       colour(cmd),
			OutputWriter: cmd.OutOrStdout(),
			Logger:       newLogger(cmd),
		})
	},
}

func init() {
	planCmd.Flags().Bool("reset", false, "append the teardown calls")
	planCmd.Flags().Bool("stats", false, "count the calls of each kind")
	planCmd.Flags().BoolP("quiet", "q", false, "do not print the calls themselves")
	configureCmd.Flags().Bool("reset", false, "tear the broadcast network down afterwards")
	configureCmd.Flags().Bool("json", false, "print the runtime configuration as JSON")
	rootCmd.AddCommand(planCmd, configureCmd)
}
