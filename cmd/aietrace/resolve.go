package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aietrace/internal/aie"
	"aietrace/internal/metricset"
	"aietrace/internal/printers"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] class [metric_set]",
	Short: "List the events of a metric set.",
	Long: `List the events a metric set traces on one module class.
	Without a metric set, lists the sets available on the class.
	Interface tile sets can be adapted to a DMA channel with --channel.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		newLogger(cmd)
		gen, err := generation(cmd)
		if err != nil {
			return err
		}
		class, e := aie.ParseModuleClass(args[0])
		if e != aie.OK {
			return fmt.Errorf("unknown module class %q", args[0])
		}
		p := printers.NewCatalogPrinter(cmd.OutOrStdout())
		p.SetColour(colour(cmd))
		if len(args) == 1 {
			p.PrintMetricSets(class, gen)
			return nil
		}

		set := args[1]
		if !metricset.IsAvailable(set, class, gen) {
			p.PrintMetricSets(class, gen)
			return fmt.Errorf("metric set %q is not available for %v on %v", set, class, gen)
		}
		io := aie.IOPLIO
		if getFlag(cmd, "gmio") {
			io = aie.IOGMIO
		}
		evs := metricset.Adapt(class, io, set, getUint8(cmd, "channel"), metricset.Resolve(class, gen, set))
		p.MuteIndexPrint(getFlag(cmd, "no-index"))
		p.PrintEvents(class, gen, set, evs)
		return nil
	},
}

func init() {
	resolveCmd.Flags().Uint8("channel", 0, "DMA channel of an interface tile set")
	resolveCmd.Flags().Bool("gmio", false, "the interface tile connection is DMA driven")
	resolveCmd.Flags().Bool("no-index", false, "do not number the events")
	rootCmd.AddCommand(resolveCmd)
}
