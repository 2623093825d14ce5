// Package report collects lint findings and renders them as a sorted,
// human-readable report.
package report

import (
	"sort"
	"strings"

	"github.com/slimcheck/slimcheck/pkg/errors"
)

// Severity classifies how serious a finding is
type Severity int

const (
	// SeverityWarning marks findings that should be fixed but do not fail a lint run
	SeverityWarning Severity = iota
	// SeverityError marks findings that fail a lint run
	SeverityError
)

// String returns the single-letter marker used in rendered reports
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "E"
	case SeverityWarning:
		return "W"
	default:
		return "?"
	}
}

// Name returns the long form of the severity
func (s Severity) Name() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity from its long or single-letter form
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "error", "e":
		return SeverityError, nil
	case "warning", "warn", "w":
		return SeverityWarning, nil
	default:
		return SeverityWarning, errors.Newf(errors.ErrInvalidInput, "unknown severity: %s", s)
	}
}

// Finding is a single lint result bound to a file location
type Finding struct {
	Filename string
	Line     int
	Severity Severity
	RuleName string
	Message  string
}

// Report holds the findings of a lint run
type Report struct {
	findings []Finding
}

// New creates a report from the given findings
func New(findings ...Finding) *Report {
	return &Report{findings: findings}
}

// Add appends a finding to the report
func (r *Report) Add(f Finding) {
	r.findings = append(r.findings, f)
}

// Findings returns the findings in their current order
func (r *Report) Findings() []Finding {
	return r.findings
}

// Sort orders findings by filename, then line number. The sort is stable:
// findings at the same location keep their insertion order.
func (r *Report) Sort() {
	sort.SliceStable(r.findings, func(i, j int) bool {
		if r.findings[i].Filename != r.findings[j].Filename {
			return r.findings[i].Filename < r.findings[j].Filename
		}
		return r.findings[i].Line < r.findings[j].Line
	})
}

// Counts returns the number of error-level and warning-level findings
func (r *Report) Counts() (errorCount, warningCount int) {
	for _, f := range r.findings {
		switch f.Severity {
		case SeverityError:
			errorCount++
		case SeverityWarning:
			warningCount++
		}
	}
	return errorCount, warningCount
}

// Failed reports whether the report contains any error-level findings
func (r *Report) Failed() bool {
	for _, f := range r.findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
