package printers

import (
	"fmt"
	"io"
	"strings"

	"aietrace/internal/runtimecfg"
)

// eventsPerLine is the number of event names printed on one line.
const eventsPerLine = 4

// ConfigPrinter prints the runtime configuration record of a session.
type ConfigPrinter struct {
	ItemPrinter
}

// NewConfigPrinter creates a new printer for runtime configuration records.
func NewConfigPrinter(writer io.Writer) *ConfigPrinter {
	return &ConfigPrinter{
		ItemPrinter: *NewItemPrinter(writer),
	}
}

func wiring(v int8) string {
	if v == runtimecfg.Unset {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}

func wiringList(vs []int8) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = wiring(v)
	}
	return strings.Join(parts, " ")
}

// PrintRecord prints every tile of r in traversal order.
func (p *ConfigPrinter) PrintRecord(r *runtimecfg.Record) {
	p.ItemPrintLine(p.paint(colourBold, fmt.Sprintf("Session %s; %s; %d tiles", r.SessionID, r.GenName, r.Len())) + "\n")
	for _, c := range r.Tiles() {
		p.PrintTile(c)
	}
}

// PrintTile prints the wiring of one tile.
func (p *ConfigPrinter) PrintTile(c *runtimecfg.TileConfig) {
	if p.IsMuted() {
		return
	}
	var sb strings.Builder
	sb.WriteString(p.paint(colourYellow, fmt.Sprintf("Tile %s; %s; set %s", c.Loc, c.Module, c.MetricSet)))
	sb.WriteString("\n")

	for i, name := range c.EventNames {
		switch {
		case i == 0:
			sb.WriteString("    events: ")
		case i%eventsPerLine == 0:
			sb.WriteString("\n            ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(name)
	}
	if len(c.EventNames) > 0 {
		sb.WriteString("\n")
	}

	if c.PortTraceIDs[0] != runtimecfg.Unset {
		var master []string
		for i, id := range c.PortTraceIDs {
			if id != runtimecfg.Unset && c.PortTraceIsMaster[i] {
				master = append(master, fmt.Sprintf("%d", i))
			}
		}
		sb.WriteString(fmt.Sprintf("    ports: %s; master: [%s]\n", wiringList(c.PortTraceIDs[:]), strings.Join(master, " ")))
		sb.WriteString(fmt.Sprintf("    s2mm: %s; mm2s: %s\n", wiringList(c.S2MMChannels[:]), wiringList(c.MM2SChannels[:])))
	}
	if c.EdgeControl != 0 {
		sb.WriteString(fmt.Sprintf("    edge: 0x%08X\n", c.EdgeControl))
	}
	p.ItemPrintLine(sb.String())
}
