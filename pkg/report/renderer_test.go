package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slimcheck/slimcheck/pkg/report"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderPlain(t *testing.T) {
	r := report.New(
		report.Finding{Filename: "b.slim", Line: 5, Severity: report.SeverityWarning, RuleName: "EmptyLines", Message: "multiple consecutive blank lines"},
		report.Finding{Filename: "a.slim", Line: 9, Severity: report.SeverityError, RuleName: "TrailingWhitespace", Message: "line contains trailing whitespace"},
		report.Finding{Filename: "a.slim", Line: 2, Severity: report.SeverityWarning, RuleName: "LineLength", Message: "line is too long"},
	)

	var buf bytes.Buffer
	renderer := report.NewRenderer(&buf, false)
	require.NoError(t, renderer.Render(r))

	want := "a.slim:2 [W] LineLength: line is too long\n" +
		"a.slim:9 [E] TrailingWhitespace: line contains trailing whitespace\n" +
		"b.slim:5 [W] EmptyLines: multiple consecutive blank lines\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	renderer := report.NewRenderer(&buf, false)
	require.NoError(t, renderer.Render(report.New()))
	assert.Empty(t, buf.String())
}

// Styling must never change the rendered text, only decorate it.
func TestRenderColorPreservesText(t *testing.T) {
	r := report.New(
		report.Finding{Filename: "a.slim", Line: 4, Severity: report.SeverityError, RuleName: "Tab", Message: "tab detected"},
	)

	var buf bytes.Buffer
	renderer := report.NewRenderer(&buf, true)
	require.NoError(t, renderer.Render(r))

	assert.Equal(t, "a.slim:4 [E] Tab: tab detected\n", stripANSI(buf.String()))
}

func TestRenderWithCustomStyles(t *testing.T) {
	r := report.New(
		report.Finding{Filename: "a.slim", Line: 1, Severity: report.SeverityWarning, RuleName: "LineLength", Message: "line is too long"},
	)

	var buf bytes.Buffer
	renderer := report.NewRenderer(&buf, true).WithStyles(report.DefaultStyles())
	require.NoError(t, renderer.Render(r))

	assert.Equal(t, "a.slim:1 [W] LineLength: line is too long\n", stripANSI(buf.String()))
}

func TestDetectColorNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, report.DetectColor(os.Stdout))
}

func TestDetectColorNonTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.False(t, report.DetectColor(f))
}
