package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/slimcheck/slimcheck/pkg/errors"
	"github.com/slimcheck/slimcheck/pkg/logging"
)

// Renderer writes findings to a textual stream, one per line, in the form
//
//	<filename>:<line> [<E|W>] <rule_name>: <message>
//
// With color enabled the location and severity marker are styled; the
// rendered text is otherwise identical.
type Renderer struct {
	writer io.Writer
	styles Styles
	color  bool
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{
		writer: w,
		styles: DefaultStyles(),
		color:  color,
	}
}

// NewAutoRenderer creates a renderer for output, enabling color when the
// output is a capable terminal
func NewAutoRenderer(output *os.File) *Renderer {
	return NewRenderer(output, DetectColor(output))
}

// WithStyles returns a copy of the renderer using the given styles
func (r *Renderer) WithStyles(styles Styles) *Renderer {
	clone := *r
	clone.styles = styles
	return &clone
}

// Render sorts the report by filename and line, then writes every finding.
// Findings at the same location keep their relative order.
func (r *Renderer) Render(rep *Report) error {
	logger := logging.GetLogger("report.Renderer")

	rep.Sort()
	findings := rep.Findings()
	logger.Debug().
		Int("findings", len(findings)).
		Bool("color", r.color).
		Msg("Rendering report")

	for _, f := range findings {
		if _, err := fmt.Fprintln(r.writer, r.formatFinding(f)); err != nil {
			return errors.Wrap(err, errors.ErrReportWrite, "writing report")
		}
	}
	return nil
}

// formatFinding renders a single finding line
func (r *Renderer) formatFinding(f Finding) string {
	location := fmt.Sprintf("%s:%d", f.Filename, f.Line)
	marker := fmt.Sprintf("[%s]", f.Severity)

	if r.color {
		location = r.styles.Location.Render(location)
		marker = r.styles.ForSeverity(f.Severity).Render(marker)
	}

	return fmt.Sprintf("%s %s %s: %s", location, marker, f.RuleName, f.Message)
}

// DetectColor determines whether colored output is appropriate for the
// given output based on environment and terminal capabilities
func DetectColor(output *os.File) bool {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	// Check terminal color support
	return termenv.ColorProfile() != termenv.Ascii
}
