// Package terminal renders mdmedium output on a character terminal.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bft-labs/mdmedium/internal/markdown"
	"github.com/bft-labs/mdmedium/internal/ports"
)

const banner = `
╔══════════════════════════════════════════════════════════════╗
║                                                              ║
║   ███╗   ███╗██████╗ ███╗   ███╗███████╗██████╗ ██╗██╗   ██╗ ║
║   ████╗ ████║██╔══██╗████╗ ████║██╔════╝██╔══██╗██║██║   ██║ ║
║   ██╔████╔██║██║  ██║██╔████╔██║█████╗  ██║  ██║██║██║   ██║ ║
║   ██║╚██╔╝██║██║  ██║██║╚██╔╝██║██╔══╝  ██║  ██║██║██║   ██║ ║
║   ██║ ╚═╝ ██║██████╔╝██║ ╚═╝ ██║███████╗██████╔╝██║╚██████╔╝ ║
║   ╚═╝     ╚═╝╚═════╝ ╚═╝     ╚═╝╚══════╝╚═════╝ ╚═╝ ╚═════╝  ║
║                                                              ║
║             📝 Markdown to Medium Converter 📝               ║
║                                                              ║
╚══════════════════════════════════════════════════════════════╝`

// Banner returns the plain banner art, used by the CLI help text.
func Banner() string {
	return strings.TrimPrefix(banner, "\n")
}

const ruleWidth = 60

// brailleSpinner is the dots character set of briandowns/spinner.
const brailleSpinner = 14

// Options controls how a Presenter writes.
type Options struct {
	// Color enables escape codes. Use DetectColor for the usual rules.
	Color bool

	// Animate enables the spinner. Without it progress prints one line.
	Animate bool

	// TickInterval is the spinner frame delay. Default: 100ms
	TickInterval time.Duration
}

// DetectColor reports whether out is a terminal and NO_COLOR is unset.
func DetectColor(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether out is a terminal file.
func IsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Presenter implements ports.Presenter for a terminal or any io.Writer.
type Presenter struct {
	out  io.Writer
	opts Options

	heading *color.Color
	success *color.Color
	info    *color.Color
	warn    *color.Color
	notice  *color.Color
	fail    *color.Color
	accent  *color.Color
	plain   *color.Color
	dim     *color.Color
	italic  *color.Color
	bannerC *color.Color
}

// NewPresenter creates a presenter writing to out.
func NewPresenter(out io.Writer, opts Options) *Presenter {
	if opts.TickInterval <= 0 {
		opts.TickInterval = 100 * time.Millisecond
	}

	style := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}

	return &Presenter{
		out:     out,
		opts:    opts,
		heading: style(color.FgHiBlue, color.Bold),
		success: style(color.FgHiGreen, color.Bold),
		info:    style(color.FgGreen),
		warn:    style(color.FgYellow),
		notice:  style(color.FgHiYellow, color.Bold),
		fail:    style(color.FgRed),
		accent:  style(color.FgHiCyan),
		plain:   style(color.FgHiWhite),
		dim:     style(color.Faint),
		italic:  style(color.FgHiWhite, color.Italic),
		bannerC: style(color.FgHiCyan),
	}
}

func (p *Presenter) println(c *color.Color, s string) {
	fmt.Fprintln(p.out, c.Sprint(s))
}

// Banner prints the welcome banner.
func (p *Presenter) Banner() {
	p.println(p.bannerC, banner)
	p.println(p.notice, "Welcome to mdmedium - your Markdown to Medium converter!")
	fmt.Fprintln(p.out)
}

// Section prints a step heading preceded by a blank line.
func (p *Presenter) Section(title string) {
	fmt.Fprintln(p.out)
	p.println(p.heading, title)
}

// Info prints an informational line.
func (p *Presenter) Info(msg string) { p.println(p.info, msg) }

// Success prints a highlighted success line.
func (p *Presenter) Success(msg string) { p.println(p.success, msg) }

// Warn prints a warning line.
func (p *Presenter) Warn(msg string) { p.println(p.warn, "⚠️  "+msg) }

// Error prints an error line.
func (p *Presenter) Error(msg string) { p.println(p.fail, "❌ "+msg) }

// Display prints styled output framed by double rules. Without colour the
// escape codes baked into the header are stripped.
func (p *Presenter) Display(styled string) {
	rule := strings.Repeat("═", ruleWidth)
	if !p.opts.Color {
		styled = markdown.StripStyling(styled)
	}

	fmt.Fprintln(p.out)
	p.println(p.success, "📄 Formatted Content for Medium:")
	p.println(p.dim, rule)
	fmt.Fprintln(p.out, styled)
	p.println(p.dim, rule)
}

// Preview prints where output was saved and its first lines.
func (p *Presenter) Preview(path, clean string, lines int) {
	rule := strings.Repeat("─", ruleWidth)

	p.println(p.accent, "📄 Output saved to: "+path)
	if lines <= 0 {
		return
	}

	fmt.Fprintln(p.out)
	p.println(p.notice, "📋 Preview of saved content (clean version without colors):")
	p.println(p.plain, rule)

	all := strings.Split(clean, "\n")
	shown := all
	if len(shown) > lines {
		shown = shown[:lines]
	}
	for _, line := range shown {
		p.println(p.plain, line)
	}
	if len(all) > lines {
		p.println(p.italic, "... (content continues in file)")
	}
	p.println(p.plain, rule)
}

// NextSteps prints the checklist for pasting into Medium.
func (p *Presenter) NextSteps(displayed bool) {
	fmt.Fprintln(p.out)
	p.println(p.notice, "📋 Next steps:")

	first := "1. Open the saved file and copy its clean content"
	if displayed {
		first = "1. Copy the formatted content above"
	}
	for _, step := range []string{
		first,
		"2. Go to https://medium.com/new-story",
		"3. Paste the content into Medium's editor",
		"4. Add tags manually in Medium's tag section",
		"5. Publish as draft or public",
	} {
		p.println(p.plain, step)
	}
}

// StartProgress starts a spinner when animation is enabled.
func (p *Presenter) StartProgress(msg string) ports.Progress {
	pr := &progress{p: p}
	if !p.opts.Animate {
		return pr
	}

	pr.spin = spinner.New(spinner.CharSets[brailleSpinner], p.opts.TickInterval, spinner.WithWriter(p.out))
	pr.spin.Suffix = " " + msg
	if p.opts.Color {
		_ = pr.spin.Color("green")
	}
	pr.spin.Start()
	return pr
}

type progress struct {
	p    *Presenter
	spin *spinner.Spinner
	once sync.Once
}

// Stop ends the spinner and replaces it with msg. Safe to call twice.
func (pr *progress) Stop(msg string) {
	pr.once.Do(func() {
		if pr.spin != nil {
			pr.spin.Stop()
		}
		pr.p.println(pr.p.info, msg)
	})
}

var _ ports.Presenter = (*Presenter)(nil)
