package printers

import (
	"fmt"
	"io"
	"strings"

	"aietrace/internal/aie"
	"aietrace/internal/events"
	"aietrace/internal/metricset"
	"aietrace/internal/regcat"
)

// CatalogPrinter lists metric sets, the events of a set and registers.
type CatalogPrinter struct {
	ItemPrinter
}

// NewCatalogPrinter creates a catalog printer.
func NewCatalogPrinter(writer io.Writer) *CatalogPrinter {
	return &CatalogPrinter{
		ItemPrinter: *NewItemPrinter(writer),
	}
}

// PrintEvents prints the events of one metric set, one per line.
func (p *CatalogPrinter) PrintEvents(class aie.ModuleClass, gen aie.Generation, set string, evs []events.Event) {
	p.ItemPrintLine(p.paint(colourBold, fmt.Sprintf("%s %s %s: %d events", gen, class, set, len(evs))) + "\n")
	var sb strings.Builder
	for i, e := range evs {
		if !p.IndexPrintMuted() {
			sb.WriteString(fmt.Sprintf("Idx:%d; ", i))
		}
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	p.ItemPrintLine(sb.String())
}

// PrintMetricSets prints every set available for class on gen with its
// event count.
func (p *CatalogPrinter) PrintMetricSets(class aie.ModuleClass, gen aie.Generation) {
	names := metricset.Names(class, gen)
	p.ItemPrintLine(p.paint(colourBold, fmt.Sprintf("%s %s: %d metric sets", gen, class, len(names))) + "\n")
	var sb strings.Builder
	for _, n := range names {
		sb.WriteString(fmt.Sprintf("  %-28s %2d\n", n, len(metricset.Resolve(class, gen, n))))
	}
	p.ItemPrintLine(sb.String())
}

// PrintRegister prints one register of c.
func (p *CatalogPrinter) PrintRegister(c *regcat.Catalog, class aie.ModuleClass, addr uint64) {
	p.ItemPrintLine(fmt.Sprintf("0x%08X %-44s %3d bits\n", addr, c.NameOf(addr, class), c.SizeOf(addr, class)))
}

// PrintRegisters prints every register of class in address order.
func (p *CatalogPrinter) PrintRegisters(c *regcat.Catalog, class aie.ModuleClass) {
	p.ItemPrintLine(p.paint(colourBold, fmt.Sprintf("%s %s: %d registers", c.Generation(), class, c.Len(class))) + "\n")
	for _, r := range c.Registers(class) {
		p.PrintRegister(c, class, r.Address)
	}
}
