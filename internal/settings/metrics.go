package settings

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"aietrace/internal/aie"
	"aietrace/internal/common"
	"aietrace/internal/session"
)

// Scope says which tiles a metric setting covers.
type Scope uint8

const (
	ScopeAll Scope = iota
	ScopeRange
	ScopeTile
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeRange:
		return "range"
	default:
		return "tile"
	}
}

// MetricSetting is one entry of a tile based metric key. Interface tile
// entries name columns only; their rows are always 0.
type MetricSetting struct {
	Scope    Scope
	From     aie.TileLoc
	To       aie.TileLoc
	Set      string
	Channels []uint8
}

// maxChannels is the number of channels an entry may name per class.
func maxChannels(class aie.ModuleClass) int {
	if class == aie.ClassShim {
		return 1
	}
	return 2
}

func entryErr(entry, format string, args ...any) error {
	return common.Errorf(aie.ErrSettingsParse, "%q: "+format, append([]any{entry}, args...)...)
}

// ParseMetricSettings splits a semicolon separated metric value into
// entries. AIE and memory tiles accept
//
//	all:<set>[:<ch0>[:<ch1>]]
//	<col>,<row>:<set>[:<ch0>[:<ch1>]]
//	<c1>,<r1>:<c2>,<r2>:<set>[:<ch0>[:<ch1>]]
//
// and interface tiles accept
//
//	all:<set>[:<ch>]
//	<col>:<set>[:<ch>]
//	<c1>:<c2>:<set>[:<ch>]
func ParseMetricSettings(class aie.ModuleClass, value string) ([]MetricSetting, error) {
	var out []MetricSetting
	var errs error
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		ms, err := parseEntry(class, entry)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, ms)
	}
	return out, errs
}

func parseEntry(class aie.ModuleClass, entry string) (MetricSetting, error) {
	tok := strings.Split(entry, ":")
	for i := range tok {
		tok[i] = strings.TrimSpace(tok[i])
	}
	var ms MetricSetting
	var rest []string
	var err error

	switch {
	case len(tok) < 2:
		return ms, entryErr(entry, "want <tiles>:<set>")
	case strings.EqualFold(tok[0], "all"):
		ms.Scope = ScopeAll
		rest = tok[1:]
	case class == aie.ClassShim:
		if ms.From, err = parseCol(tok[0]); err != nil {
			return ms, entryErr(entry, "%v", err)
		}
		ms.To, ms.Scope, rest = ms.From, ScopeTile, tok[1:]
		if len(tok) >= 3 && isNumber(tok[1]) {
			if ms.To, err = parseCol(tok[1]); err != nil {
				return ms, entryErr(entry, "%v", err)
			}
			ms.Scope, rest = ScopeRange, tok[2:]
		}
	default:
		if ms.From, err = parseLoc(tok[0]); err != nil {
			return ms, entryErr(entry, "%v", err)
		}
		ms.To, ms.Scope, rest = ms.From, ScopeTile, tok[1:]
		if len(tok) >= 3 && strings.Contains(tok[1], ",") {
			if ms.To, err = parseLoc(tok[1]); err != nil {
				return ms, entryErr(entry, "%v", err)
			}
			ms.Scope, rest = ScopeRange, tok[2:]
		}
	}

	if len(rest) == 0 || rest[0] == "" {
		return ms, entryErr(entry, "missing metric set")
	}
	ms.Set = rest[0]
	chans := rest[1:]
	if len(chans) > maxChannels(class) {
		return ms, entryErr(entry, "at most %d channels for %v", maxChannels(class), class)
	}
	for _, c := range chans {
		n, err := strconv.ParseUint(c, 10, 8)
		if err != nil {
			return ms, entryErr(entry, "bad channel %q", c)
		}
		ms.Channels = append(ms.Channels, uint8(n))
	}
	if ms.Scope == ScopeRange && (ms.To.Col < ms.From.Col || ms.To.Row < ms.From.Row) {
		return ms, entryErr(entry, "range %s..%s is reversed", ms.From, ms.To)
	}
	return ms, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseUint(s, 10, 8)
	return err == nil
}

func parseCol(s string) (aie.TileLoc, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return aie.BadTileLoc, common.Errorf(aie.ErrSettingsParse, "bad column %q", s)
	}
	return aie.TileLoc{Col: uint8(n)}, nil
}

func parseLoc(s string) (aie.TileLoc, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return aie.BadTileLoc, common.Errorf(aie.ErrSettingsParse, "want <col>,<row>, got %q", s)
	}
	col, err1 := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 8)
	row, err2 := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 8)
	if err1 != nil || err2 != nil {
		return aie.BadTileLoc, common.Errorf(aie.ErrSettingsParse, "bad tile %q", s)
	}
	return aie.TileLoc{Col: uint8(col), Row: uint8(row)}, nil
}

// channels returns the two DMA channels an entry selects. Without channels
// a memory tile watches 0 and 1; a single channel is used for both slots.
func (ms MetricSetting) channels(class aie.ModuleClass) (uint8, uint8) {
	switch len(ms.Channels) {
	case 0:
		if class == aie.ClassMemoryTile {
			return 0, 1
		}
		return 0, 0
	case 1:
		return ms.Channels[0], ms.Channels[0]
	}
	return ms.Channels[0], ms.Channels[1]
}

// candidates returns the tiles of class inside the configured columns.
func (s *Settings) candidates(topo aie.Topology, class aie.ModuleClass) []aie.Tile {
	var out []aie.Tile
	end := int(s.StartCol) + int(s.NumCols)
	for col := int(s.StartCol); col < end && col < int(topo.NumCols); col++ {
		for row := 0; row < int(topo.NumRows); row++ {
			t := topo.NewTile(uint8(col), uint8(row))
			if t.Class == class {
				out = append(out, t)
			}
		}
	}
	return out
}

func (ms MetricSetting) covers(loc aie.TileLoc) bool {
	switch ms.Scope {
	case ScopeAll:
		return true
	case ScopeRange:
		return loc.Col >= ms.From.Col && loc.Col <= ms.To.Col &&
			loc.Row >= ms.From.Row && loc.Row <= ms.To.Row
	default:
		return loc == ms.From
	}
}

// Assignments expands the metric settings over the configured columns.
// Entries are applied all first, then ranges, then single tiles, so the more
// specific entry wins. A single tile entry naming a tile that is not of the
// key's class or lies outside the columns is an error.
func (s *Settings) Assignments(topo aie.Topology) ([]session.Assignment, error) {
	byLoc := make(map[aie.TileLoc]session.Assignment)
	var errs error
	for _, class := range []aie.ModuleClass{aie.ClassCore, aie.ClassMemoryTile, aie.ClassShim} {
		entries := s.Metrics[class]
		tiles := s.candidates(topo, class)
		for _, scope := range []Scope{ScopeAll, ScopeRange, ScopeTile} {
			for _, ms := range entries {
				if ms.Scope != scope {
					continue
				}
				matched := false
				for _, t := range tiles {
					if !ms.covers(t.Loc) {
						continue
					}
					matched = true
					ch0, ch1 := ms.channels(class)
					a := session.Assignment{Tile: t, MetricSet: ms.Set, Channel0: ch0, Channel1: ch1}
					if class == aie.ClassShim {
						a.IO = s.InterfaceIO
					}
					byLoc[t.Loc] = a
				}
				if scope == ScopeTile && !matched {
					errs = multierr.Append(errs, common.NewErrorWithLocMsg(aie.ErrSevError, aie.ErrSettingsParse, ms.From,
						"no "+class.String()+" at this location in the configured columns"))
				}
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	out := make([]session.Assignment, 0, len(byLoc))
	for _, a := range byLoc {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tile.Loc.Less(out[j].Tile.Loc) })
	return out, nil
}
