package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/pkgprobe/pkg/check"
)

const (
	MarkOK   = "✅"
	MarkFail = "❌"

	// Completed is the closing line printed after every run.
	Completed = "🎉 Package installation test completed!"
)

// Printer renders check results, one line per result.
type Printer struct {
	w     io.Writer
	green string
	red   string
	reset string
}

// NewPrinter returns a Printer writing to w.
// With color on only the status mark is wrapped in ANSI codes.
func NewPrinter(w io.Writer, color bool) *Printer {
	p := &Printer{w: w}
	if color {
		p.green, p.red, p.reset = "\033[32m", "\033[31m", "\033[0m"
	}
	return p
}

// Stdout returns a Printer for standard output, colored when the terminal supports it.
func Stdout() *Printer {
	return NewPrinter(os.Stdout, supportscolor.Stdout().SupportsColor)
}

// PrintResult outputs a check result as "<mark> <name>: <detail>".
// Only the mark is colored; the text after it is always plain.
func (p *Printer) PrintResult(r check.Result) {
	if r.OK() {
		fmt.Fprintf(p.w, "%s%s%s %s: %s\n", p.green, MarkOK, p.reset, r.Name, r.Detail())
	} else {
		fmt.Fprintf(p.w, "%s%s%s %s: %s\n", p.red, MarkFail, p.reset, r.Name, r.Detail())
	}
}

// PrintCompleted outputs the closing line.
func (p *Printer) PrintCompleted() {
	fmt.Fprintln(p.w, Completed)
}
