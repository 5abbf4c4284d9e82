package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aietrace/internal/aie"
	"aietrace/internal/printers"
	"aietrace/internal/regcat"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [flags] class [register|0xoffset]",
	Short: "Look up registers by name or offset.",
	Long: `Look up a register of a module class by name or by tile relative offset.
	Without a register, lists every register of the class; --trace and
	--profile restrict the list to the trace or performance counter registers.`,
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
		cat := regcat.For(gen)
		p := printers.NewCatalogPrinter(cmd.OutOrStdout())
		p.SetColour(colour(cmd))

		if len(args) == 1 {
			var regs []regcat.Register
			switch {
			case getFlag(cmd, "trace"):
				regs = cat.TraceRegisters(class)
			case getFlag(cmd, "profile"):
				regs = cat.ProfileRegisters(class)
			default:
				p.PrintRegisters(cat, class)
				return nil
			}
			for _, r := range regs {
				p.PrintRegister(cat, class, r.Address)
			}
			return nil
		}

		key := args[1]
		if strings.HasPrefix(strings.ToLower(key), "0x") {
			addr, err := strconv.ParseUint(key, 0, 64)
			if err != nil {
				return fmt.Errorf("bad offset %q", key)
			}
			p.PrintRegister(cat, class, addr)
			return nil
		}
		addr, ok := cat.AddressOf(key, class)
		if !ok {
			return fmt.Errorf("no register %q in %v on %v", key, class, gen)
		}
		p.PrintRegister(cat, class, addr)
		return nil
	},
}

func init() {
	lookupCmd.Flags().Bool("trace", false, "list the trace control registers")
	lookupCmd.Flags().Bool("profile", false, "list the performance counter registers")
	rootCmd.AddCommand(lookupCmd)
}
