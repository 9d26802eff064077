// Package console prints human-readable progress lines. The format is not machine-parseable.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	rateColor  = color.New(color.FgMagenta)
	skipColor  = color.New(color.FgHiBlack)
)

const rule = 60

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) OK(format string, args ...any)    { p.line(okColor, "[OK]", format, args...) }
func (p *Printer) Warn(format string, args ...any)  { p.line(warnColor, "[WARN]", format, args...) }
func (p *Printer) Error(format string, args ...any) { p.line(errorColor, "[ERROR]", format, args...) }
func (p *Printer) Rate(format string, args ...any)  { p.line(rateColor, "[RATE]", format, args...) }
func (p *Printer) Skip(format string, args ...any)  { p.line(skipColor, "[SKIP]", format, args...) }

func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Header prints title between two horizontal rules.
func (p *Printer) Header(title string) {
	fmt.Fprintf(p.w, "\n%s\n%s\n%s\n", strings.Repeat("=", rule), title, strings.Repeat("=", rule))
}

func (p *Printer) line(c *color.Color, label, format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", c.Sprint(label), fmt.Sprintf(format, args...))
}
