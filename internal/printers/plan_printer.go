package printers

import (
	"fmt"
	"io"
	"strings"

	"aietrace/internal/aie"
	"aietrace/internal/device"
	"aietrace/internal/regcat"
)

// PlanPrinter prints device calls, one per line, in issue order.
type PlanPrinter struct {
	ItemPrinter
	catalog      *regcat.Catalog
	addrs        *device.AddressMap
	collectStats bool
	opCounts     map[device.OpKind]int
	next         int
}

// NewPlanPrinter creates a new plan printer.
func NewPlanPrinter(writer io.Writer) *PlanPrinter {
	return &PlanPrinter{
		ItemPrinter: *NewItemPrinter(writer),
		opCounts:    make(map[device.OpKind]int),
	}
}

// SetCatalog names register writes using the catalog of topo's generation.
// Writes to offsets the catalog does not know print the hex offset.
func (p *PlanPrinter) SetCatalog(topo aie.Topology) {
	p.addrs = device.NewAddressMap(topo)
	p.catalog = regcat.For(topo.Gen)
}

// SetCollectStats turns on statistics collection.
func (p *PlanPrinter) SetCollectStats() { p.collectStats = true }

// OpIn prints one device call.
func (p *PlanPrinter) OpIn(op device.Op) {
	idx := p.next
	p.next++
	if p.collectStats {
		p.opCounts[op.Kind]++
	}
	if p.IsMuted() {
		return
	}

	var sb strings.Builder
	if !p.IndexPrintMuted() {
		sb.WriteString(fmt.Sprintf("Op:%d; ", idx))
	}
	sb.WriteString(op.String())
	if op.Kind == device.OpWrite && p.catalog != nil {
		sb.WriteString(p.paint(colourCyan, " ("+p.registerName(op)+")"))
	}
	sb.WriteString("\n")
	p.ItemPrintLine(sb.String())
}

// registerName resolves the tile relative offset of a write. AIE tiles hold
// both a core and a memory module register space.
func (p *PlanPrinter) registerName(op device.Op) string {
	r, offset, ok := p.addrs.Decode(op.Addr)
	if !ok {
		return "outside array"
	}
	classes := []aie.ModuleClass{r.Class}
	if r.Class == aie.ClassCore {
		classes = append(classes, aie.ClassMemory)
	}
	for _, c := range classes {
		name := p.catalog.NameOf(offset, c)
		if _, ok := p.catalog.AddressOf(name, c); ok {
			return name
		}
	}
	return fmt.Sprintf("0x%X", offset)
}

// PrintOps prints every op of a plan.
func (p *PlanPrinter) PrintOps(ops []device.Op) {
	for _, op := range ops {
		p.OpIn(op)
	}
}

// PrintStats outputs the number of calls of each kind.
func (p *PlanPrinter) PrintStats() {
	var sb strings.Builder
	sb.WriteString(p.paint(colourBold, "Device calls:-") + "\n")
	for k := device.OpWrite; k <= device.OpGroup; k++ {
		sb.WriteString(fmt.Sprintf("%s : %d\n", k, p.opCounts[k]))
	}
	sb.WriteString("\n")
	p.ItemPrintLine(sb.String())
}
