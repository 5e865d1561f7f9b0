// Package style renders user-facing terminal output: severity-tagged
// message lines and per-item outcome lists.
package style

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ColorEnabled reports whether output to w should be coloured. Colour is
// off when noColor is set, NO_COLOR is non-empty, or w is a file that is
// not a terminal.
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes messages to an output and an error stream
type Printer struct {
	out    io.Writer
	errOut io.Writer
	color  bool
	styles Styles
}

// NewPrinter creates a Printer. Colour follows ColorEnabled for out.
func NewPrinter(out, errOut io.Writer, noColor bool) *Printer {
	color := ColorEnabled(out, noColor)

	renderer := lipgloss.NewRenderer(out)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	} else {
		pterm.EnableColor()
	}

	return &Printer{
		out:    out,
		errOut: errOut,
		color:  color,
		styles: NewStyles(renderer),
	}
}

// Styles returns the printer's style set
func (p *Printer) Styles() Styles {
	return p.styles
}

// ColorEnabled reports whether the printer emits colour
func (p *Printer) ColorEnabled() bool {
	return p.color
}

// Info prints an INFO line to the output stream
func (p *Printer) Info(format string, args ...interface{}) {
	p.tagged(p.out, pterm.Info, format, args...)
}

// Success prints a SUCCESS line to the output stream
func (p *Printer) Success(format string, args ...interface{}) {
	p.tagged(p.out, pterm.Success, format, args...)
}

// Warning prints a WARNING line to the error stream
func (p *Printer) Warning(format string, args ...interface{}) {
	p.tagged(p.errOut, pterm.Warning, format, args...)
}

// Error prints err as an ERROR line to the error stream
func (p *Printer) Error(err error) {
	p.tagged(p.errOut, pterm.Error, "%s", err.Error())
}

// Println writes an unstyled line to the output stream
func (p *Printer) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(p.out, a...)
}

// Item prints an indented list entry: indicator, subject and a muted detail
func (p *Printer) Item(kind Kind, subject, detail string) {
	line := fmt.Sprintf("  %s %s", p.styles.Indicator(kind), p.styles.Path.Render(subject))
	if detail != "" {
		line += " " + p.styles.Muted.Render(detail)
	}
	_, _ = fmt.Fprintln(p.out, line)
}

// Heading prints a bold section heading
func (p *Printer) Heading(text string) {
	_, _ = fmt.Fprintln(p.out, p.styles.Bold.Render(text))
}

func (p *Printer) tagged(w io.Writer, prefix pterm.PrefixPrinter, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !p.color {
		_, _ = fmt.Fprintf(w, "%s: %s\n", prefix.Prefix.Text, msg)
		return
	}

	tag := " " + prefix.Prefix.Text + " "
	if prefix.Prefix.Style != nil {
		tag = prefix.Prefix.Style.Sprint(tag)
	}
	if prefix.MessageStyle != nil {
		msg = prefix.MessageStyle.Sprint(msg)
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", tag, msg)
}
