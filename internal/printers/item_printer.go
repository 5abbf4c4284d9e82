package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"aietrace/common"
)

// ANSI colours used for headings and highlights.
const (
	colourReset  = "\033[0m"
	colourBold   = "\033[1m"
	colourYellow = "\033[33m"
	colourCyan   = "\033[36m"
)

// ItemPrinter is the base of every printer: an output writer, an optional
// message logger, and mute / colour switches.
type ItemPrinter struct {
	writer       io.Writer
	logger       common.Logger
	muted        bool
	idxPrintMute bool
	colour       bool
}

// NewItemPrinter constructs an ItemPrinter using the given io.Writer.
// Colour is enabled when the writer is a terminal.
func NewItemPrinter(writer io.Writer) *ItemPrinter {
	return &ItemPrinter{
		writer: writer,
		colour: IsTerminal(writer),
	}
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetMessageLogger sets the optional logger that receives a debug copy of
// every line.
func (p *ItemPrinter) SetMessageLogger(logger common.Logger) {
	p.logger = logger
}

// ItemPrintLine writes the given message to the writer and optionally logs it.
func (p *ItemPrinter) ItemPrintLine(msg string) {
	if p.muted {
		return
	}
	if p.writer != nil {
		fmt.Fprint(p.writer, msg)
	}
	if p.logger != nil {
		p.logger.Log(common.SeverityDebug, strings.TrimSuffix(msg, "\n"))
	}
}

// SetMute sets the printer to mute (avoids output).
func (p *ItemPrinter) SetMute(mute bool) { p.muted = mute }

// IsMuted returns true if the printer is muted.
func (p *ItemPrinter) IsMuted() bool { return p.muted }

// MuteIndexPrint mutes or unmutes printing the running index at the start of lines.
func (p *ItemPrinter) MuteIndexPrint(mute bool) { p.idxPrintMute = mute }

// IndexPrintMuted returns whether index printing is muted.
func (p *ItemPrinter) IndexPrintMuted() bool { return p.idxPrintMute }

// SetColour forces colour output on or off.
func (p *ItemPrinter) SetColour(on bool) { p.colour = on }

// Colour returns whether colour output is on.
func (p *ItemPrinter) Colour() bool { return p.colour }

func (p *ItemPrinter) paint(code, s string) string {
	if !p.colour {
		return s
	}
	return code + s + colourReset
}
