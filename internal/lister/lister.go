package lister

import (
	"fmt"
	"io"
	"os"

	"aietrace/common"
	"aietrace/internal/aie"
	"aietrace/internal/device"
	"aietrace/internal/printers"
	"aietrace/internal/session"
	"aietrace/internal/settings"
)

// Config mirrors the command line arguments of the plan and configure commands.
type Config struct {
	SettingsPath string
	// Apply runs the session against the simulated device and prints the
	// runtime configuration instead of the planned calls.
	Apply bool
	// Reset adds the teardown calls after the build.
	Reset bool
	Stats bool
	// Quiet suppresses the per-call lines of a plan; statistics still print.
	Quiet        bool
	JSON         bool
	Colour       bool
	OutputWriter io.Writer
	Logger       common.Logger
}

// Run loads the settings file and either prints the device calls the
// session would issue or runs the session on a simulated array.
func Run(cfg Config) error {
	w := cfg.OutputWriter
	if w == nil {
		w = os.Stdout
	}
	if !cfg.JSON {
		fmt.Fprintln(w, "AIE Trace Configuration")
		fmt.Fprintln(w, "-----------------------")
		fmt.Fprintf(w, "reading settings from %s\n", cfg.SettingsPath)
	}

	st, err := settings.Load(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	req, err := st.Request()
	if err != nil {
		return fmt.Errorf("failed to assign metric sets: %w", err)
	}
	topo, e := aie.TopologyFor(req.Generation)
	if e != aie.OK {
		return fmt.Errorf("no topology for %v", req.Generation)
	}

	sim := device.NewSim(topo)
	if cfg.Logger != nil {
		sim.SetLogger(cfg.Logger)
	}
	s, err := session.New(sim, req, cfg.Logger)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}
	if !cfg.JSON {
		fmt.Fprintf(w, "%s; columns %d..%d; broadcast %d/%d; %d tiles\n", req.Generation,
			req.StartCol, int(req.StartCol)+int(req.NumCols)-1, req.BroadcastIDs[0], req.BroadcastIDs[1], len(req.Assignments))
	}

	if cfg.Apply {
		return apply(w, cfg, s)
	}
	return plan(w, cfg, s, topo)
}

func plan(w io.Writer, cfg Config, s *session.Session, topo aie.Topology) error {
	ops, err := s.Plan()
	if err != nil {
		return fmt.Errorf("error planning session: %w", err)
	}
	if cfg.Reset {
		reset, err := s.PlanTeardown()
		if err != nil {
			return fmt.Errorf("error planning teardown: %w", err)
		}
		ops = append(ops, reset...)
	}
	pp := printers.NewPlanPrinter(w)
	pp.SetColour(cfg.Colour)
	pp.SetCatalog(topo)
	if cfg.Logger != nil {
		pp.SetMessageLogger(cfg.Logger)
	}
	if cfg.Stats {
		pp.SetCollectStats()
	}
	pp.SetMute(cfg.Quiet)
	pp.PrintOps(ops)
	pp.SetMute(false)
	if cfg.Stats {
		pp.PrintStats()
	}
	return nil
}

func apply(w io.Writer, cfg Config, s *session.Session) error {
	res, err := s.Configure()
	if err != nil {
		return fmt.Errorf("error configuring trace: %w", err)
	}
	if cfg.Reset {
		if err := s.Teardown(); err != nil {
			return fmt.Errorf("error resetting trace: %w", err)
		}
	}
	if cfg.JSON {
		return res.Config.WriteJSON(w)
	}
	cp := printers.NewConfigPrinter(w)
	cp.SetColour(cfg.Colour)
	if cfg.Logger != nil {
		cp.SetMessageLogger(cfg.Logger)
	}
	cp.PrintRecord(res.Config)
	for _, loc := range res.Skipped {
		fmt.Fprintf(w, "skipped %s: metric set not available\n", loc)
	}
	return nil
}
