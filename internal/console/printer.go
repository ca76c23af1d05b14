package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes user-facing flow output. Diagnostics belong to the logger,
// not here.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Prominent prints an underlined banner line marking a workflow step.
func (p *Printer) Prominent(format string, args ...any) {
	color.New(color.Underline).Fprintf(p.out, format+"\n", args...)
}

// Info prints a plain line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warn prints a highlighted notice, used for skipped steps.
func (p *Printer) Warn(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(p.out, format+"\n", args...)
}

// Success prints a completion line.
func (p *Printer) Success(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
}
