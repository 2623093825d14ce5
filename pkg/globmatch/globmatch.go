// Package globmatch decides whether file paths match glob patterns.
//
// Matching is path-aware: a single `*` never crosses a path-separator
// boundary, `**` matches any number of path segments, and dotfiles are
// matchable like any other segment (no implicit hidden-file exclusion).
// Patterns and candidate paths are both resolved to absolute form before
// comparison, so a pattern written relative to the working directory
// compares correctly against a relative or absolute candidate path.
package globmatch

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/slimcheck/slimcheck/pkg/logging"
)

// Matches reports whether any pattern in patterns matches path.
// An empty pattern set matches nothing.
func Matches(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if Match(pattern, path) {
			return true
		}
	}
	return false
}

// Match reports whether a single glob pattern matches path. Unresolvable
// paths and malformed patterns are treated as non-matches rather than
// errors: callers use this as a filter, not a validation step.
func Match(pattern, path string) bool {
	logger := logging.GetLogger("globmatch")

	absPattern, err := filepath.Abs(pattern)
	if err != nil {
		logger.Debug().
			Err(err).
			Str("pattern", pattern).
			Msg("cannot resolve pattern to absolute path")
		return false
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Debug().
			Err(err).
			Str("path", path).
			Msg("cannot resolve path to absolute form")
		return false
	}

	matched, err := doublestar.PathMatch(absPattern, absPath)
	if err != nil {
		// Bad pattern syntax
		logger.Debug().
			Err(err).
			Str("pattern", pattern).
			Msg("malformed glob pattern")
		return false
	}
	return matched
}
