package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aietrace/common"
	"aietrace/internal/aie"
	"aietrace/internal/metricset"
	"aietrace/internal/printers"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aietrace",
	Short: "Configure event trace on an AIE array.",
	Long: `Configure event trace on an AIE array.
	Expands metric sets into events, plans the per tile register
	programming and the broadcast network that starts trace.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("gen", "aie2", "hardware generation (aie, aie2, aie2ps, aie4)")
	rootCmd.PersistentFlags().Bool("no-colour", false, "never colour the output")
}

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return r
}

func getUint8(cmd *cobra.Command, flag string) uint8 {
	r, err := cmd.Flags().GetUint8(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return r
}

// newLogger returns the command logger and routes catalog warnings to it.
func newLogger(cmd *cobra.Command) common.Logger {
	level := common.SeverityWarning
	if getFlag(cmd, "verbose") {
		level = common.SeverityDebug
	}
	l := common.NewLogrusLogger(level)
	metricset.SetLogger(l)
	return l
}

func generation(cmd *cobra.Command) (aie.Generation, error) {
	name := getString(cmd, "gen")
	g, e := aie.ParseGeneration(name)
	if e != aie.OK {
		return aie.GenUnknown, fmt.Errorf("unknown generation %q", name)
	}
	return g, nil
}

func colour(cmd *cobra.Command) bool {
	return !getFlag(cmd, "no-colour") && printers.IsTerminal(cmd.OutOrStdout())
}
