// Package runtimecfg records, per tile, how trace was wired during a
// configuration session. The record is output only: it is filled in while
// the device is configured and then written out for reporting tools.
package runtimecfg

import (
	"io"
	"sort"

	"github.com/segmentio/encoding/json"

	"aietrace/internal/aie"
	"aietrace/internal/events"
)

// NumTracePorts is the number of stream switch ports a tile can trace.
const NumTracePorts = 8

// Unset marks a port id or channel number that was not wired.
const Unset int8 = -1

// TileConfig is the wiring of one tile.
type TileConfig struct {
	Loc               aie.TileLoc         `json:"-"`
	Column            uint8               `json:"column"`
	Row               uint8               `json:"row"`
	Class             aie.ModuleClass     `json:"-"`
	Module            string              `json:"module"`
	MetricSet         string              `json:"metric_set"`
	Events            []events.Event      `json:"-"`
	EventNames        []string            `json:"events"`
	PortTraceIDs      [NumTracePorts]int8 `json:"port_trace_ids"`
	PortTraceIsMaster [NumTracePorts]bool `json:"port_trace_is_master"`
	S2MMChannels      [2]int8             `json:"s2mm_channels"`
	MM2SChannels      [2]int8             `json:"mm2s_channels"`
	EdgeControl       uint32              `json:"edge_detection_control,omitempty"`
}

// NewTileConfig returns a tile record with nothing wired.
func NewTileConfig(loc aie.TileLoc, class aie.ModuleClass, metricSet string) *TileConfig {
	c := &TileConfig{
		Loc:       loc,
		Column:    loc.Col,
		Row:       loc.Row,
		Class:     class,
		Module:    class.String(),
		MetricSet: metricSet,
	}
	for i := range c.PortTraceIDs {
		c.PortTraceIDs[i] = Unset
	}
	c.S2MMChannels = [2]int8{Unset, Unset}
	c.MM2SChannels = [2]int8{Unset, Unset}
	return c
}

// SetEvents records the events traced by the tile.
func (c *TileConfig) SetEvents(evs []events.Event) {
	c.Events = append([]events.Event(nil), evs...)
	c.EventNames = make([]string, len(evs))
	for i, e := range evs {
		c.EventNames[i] = e.String()
	}
}

// Record is the runtime configuration of one session.
type Record struct {
	SessionID  string         `json:"session_id"`
	Generation aie.Generation `json:"-"`
	GenName    string         `json:"hw_generation"`
	tiles      map[aie.TileLoc]*TileConfig
}

// NewRecord creates an empty record.
func NewRecord(sessionID string, gen aie.Generation) *Record {
	return &Record{
		SessionID:  sessionID,
		Generation: gen,
		GenName:    gen.String(),
		tiles:      make(map[aie.TileLoc]*TileConfig),
	}
}

// Tile returns the record of a tile, creating it on first use.
func (r *Record) Tile(loc aie.TileLoc, class aie.ModuleClass, metricSet string) *TileConfig {
	if c, ok := r.tiles[loc]; ok {
		return c
	}
	c := NewTileConfig(loc, class, metricSet)
	r.tiles[loc] = c
	return c
}

// Get returns the record of a tile if one exists.
func (r *Record) Get(loc aie.TileLoc) (*TileConfig, bool) {
	c, ok := r.tiles[loc]
	return c, ok
}

// Len returns the number of recorded tiles.
func (r *Record) Len() int { return len(r.tiles) }

// Tiles returns the tile records in column-major, row-ascending order.
func (r *Record) Tiles() []*TileConfig {
	out := make([]*TileConfig, 0, len(r.tiles))
	for _, c := range r.tiles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Loc.Less(out[j].Loc) })
	return out
}

// MarshalJSON implements json.Marshaler with tiles in traversal order.
func (r *Record) MarshalJSON() ([]byte, error) {
	type plain Record
	return json.Marshal(struct {
		*plain
		Tiles []*TileConfig `json:"tiles"`
	}{(*plain)(r), r.Tiles()})
}

// WriteJSON writes the record as indented JSON.
func (r *Record) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
