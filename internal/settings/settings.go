// Package settings reads trace settings from an INI file and turns them into
// a configuration request.
//
// The settings live in one section:
//
//	[AIE_trace_settings]
//	hw_generation = aie2
//	start_col = 0
//	num_cols = 4
//	broadcast_ids = 14,15
//	tile_based_aie_tile_metrics = all:functions;2,3:all_stalls
//	tile_based_memory_tile_metrics = 1,1:input_channels:0:1
//	tile_based_interface_tile_metrics = 0:2:input_ports_details:1
package settings

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"aietrace/internal/aie"
	"aietrace/internal/common"
	"aietrace/internal/events"
	"aietrace/internal/metricset"
	"aietrace/internal/session"
)

// Section is the INI section holding the trace settings.
const Section = "AIE_trace_settings"

// Setting keys.
const (
	KeyGeneration     = "hw_generation"
	KeyStartCol       = "start_col"
	KeyNumCols        = "num_cols"
	KeyBroadcastIDs   = "broadcast_ids"
	KeyCounterScheme  = "counter_scheme"
	KeyTriggerEvent   = "trigger_event"
	KeyInterfaceIO    = "interface_tile_io"
	KeyAIETileMetrics = "tile_based_aie_tile_metrics"
	KeyMemTileMetrics = "tile_based_memory_tile_metrics"
	KeyShimMetrics    = "tile_based_interface_tile_metrics"
)

// metricKeys maps each metric key to the class of tile it assigns.
var metricKeys = map[string]aie.ModuleClass{
	KeyAIETileMetrics: aie.ClassCore,
	KeyMemTileMetrics: aie.ClassMemoryTile,
	KeyShimMetrics:    aie.ClassShim,
}

// Settings is the decoded settings section.
type Settings struct {
	Generation    aie.Generation
	StartCol      uint8
	NumCols       uint8
	BroadcastIDs  [2]uint8
	CounterScheme string
	TriggerEvent  events.Event
	InterfaceIO   aie.IOKind
	Metrics       map[aie.ModuleClass][]MetricSetting
}

// Load reads settings from the named file.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse reads settings from r. Every malformed value is reported, not just
// the first.
func Parse(r io.Reader) (*Settings, error) {
	ini, err := ParseIni(r)
	if err != nil {
		return nil, err
	}
	return FromIni(ini)
}

func parseErr(key, format string, args ...any) error {
	return common.Errorf(aie.ErrSettingsParse, "%s: %s", key, fmt.Sprintf(format, args...))
}

func parseUint8(key, val string) (uint8, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(val), 0, 8)
	if err != nil {
		return 0, parseErr(key, "%q is not a number in 0..255", val)
	}
	return uint8(n), nil
}

// FromIni decodes the settings section of ini.
func FromIni(ini *IniFile) (*Settings, error) {
	sec := ini.GetSection(Section)
	if sec == nil {
		return nil, common.Errorf(aie.ErrSettingsParse, "no [%s] section", Section)
	}

	s := &Settings{
		CounterScheme: metricset.SchemeES2,
		TriggerEvent:  events.EventTruePL,
		InterfaceIO:   aie.IOGMIO,
		Metrics:       make(map[aie.ModuleClass][]MetricSetting),
	}
	var errs error
	var haveGen, haveIDs, haveCols bool
	for key, val := range sec {
		switch key {
		case KeyGeneration:
			g, e := aie.ParseGeneration(val)
			if e != aie.OK {
				errs = multierr.Append(errs, parseErr(key, "unknown generation %q", val))
				continue
			}
			s.Generation, haveGen = g, true
		case KeyStartCol:
			n, err := parseUint8(key, val)
			errs = multierr.Append(errs, err)
			s.StartCol = n
		case KeyNumCols:
			n, err := parseUint8(key, val)
			errs = multierr.Append(errs, err)
			s.NumCols, haveCols = n, err == nil
		case KeyBroadcastIDs:
			parts := strings.Split(val, ",")
			if len(parts) != 2 {
				errs = multierr.Append(errs, parseErr(key, "want two ids, got %q", val))
				continue
			}
			id1, err1 := parseUint8(key, parts[0])
			id2, err2 := parseUint8(key, parts[1])
			if err1 != nil || err2 != nil {
				errs = multierr.Append(errs, multierr.Combine(err1, err2))
				continue
			}
			s.BroadcastIDs, haveIDs = [2]uint8{id1, id2}, true
		case KeyCounterScheme:
			v := strings.ToLower(strings.TrimSpace(val))
			if v != metricset.SchemeES1 && v != metricset.SchemeES2 {
				errs = multierr.Append(errs, parseErr(key, "unknown counter scheme %q", val))
				continue
			}
			s.CounterScheme = v
		case KeyTriggerEvent:
			ev, ok := events.Lookup(strings.ToUpper(strings.TrimSpace(val)))
			if !ok {
				errs = multierr.Append(errs, parseErr(key, "unknown event %q", val))
				continue
			}
			s.TriggerEvent = ev
		case KeyInterfaceIO:
			switch strings.ToLower(strings.TrimSpace(val)) {
			case "plio":
				s.InterfaceIO = aie.IOPLIO
			case "gmio":
				s.InterfaceIO = aie.IOGMIO
			default:
				errs = multierr.Append(errs, parseErr(key, "want plio or gmio, got %q", val))
			}
		default:
			class, ok := metricKeys[key]
			if !ok {
				errs = multierr.Append(errs, parseErr(key, "unknown setting"))
				continue
			}
			ms, err := ParseMetricSettings(class, val)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", key, err))
				continue
			}
			s.Metrics[class] = ms
		}
	}

	if !haveGen {
		errs = multierr.Append(errs, parseErr(KeyGeneration, "missing"))
	}
	if !haveIDs {
		errs = multierr.Append(errs, common.Errorf(aie.ErrNoBroadcastChannel, "%s: missing", KeyBroadcastIDs))
	}
	if errs != nil {
		return nil, errs
	}
	if !haveCols {
		topo, _ := aie.TopologyFor(s.Generation)
		if s.StartCol < topo.NumCols {
			s.NumCols = topo.NumCols - s.StartCol
		}
	}
	return s, nil
}

// Request builds the configuration request the settings describe.
func (s *Settings) Request() (session.Request, error) {
	topo, e := aie.TopologyFor(s.Generation)
	if e != aie.OK {
		return session.Request{}, common.NewError(aie.ErrSevError, e)
	}
	assigns, err := s.Assignments(topo)
	if err != nil {
		return session.Request{}, err
	}
	return session.Request{
		Generation:    s.Generation,
		Assignments:   assigns,
		StartCol:      s.StartCol,
		NumCols:       s.NumCols,
		BroadcastIDs:  s.BroadcastIDs,
		CounterScheme: s.CounterScheme,
		TriggerEvent:  s.TriggerEvent,
	}, nil
}
