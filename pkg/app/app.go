// Package app carries process-wide application metadata. The metadata is
// computed once at startup and passed explicitly to components that need
// it, rather than read from ambient globals.
package app

import (
	"os"

	"github.com/slimcheck/slimcheck/internal/version"
	"github.com/slimcheck/slimcheck/pkg/errors"
)

// Application constants
const (
	// Name is the canonical application name
	Name = "slimcheck"
	// RepoURL is the project source repository
	RepoURL = "https://github.com/slimcheck/slimcheck"
	// BugReportURL is where users file issues
	BugReportURL = RepoURL + "/issues"
	// DocsURL is the user documentation root
	DocsURL = RepoURL + "/blob/main/docs"
)

// Info is the immutable application configuration computed at startup
type Info struct {
	Name    string
	Version string
	Home    string
	RepoURL string
	DocsURL string
}

// New builds the application Info, resolving the user's home directory
func New() (Info, error) {
	home, err := HomeDirectory()
	if err != nil {
		return Info{}, err
	}
	return Info{
		Name:    Name,
		Version: version.Version,
		Home:    home,
		RepoURL: RepoURL,
		DocsURL: DocsURL,
	}, nil
}

// HomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment
// variable. If both fail, it returns an error rather than using dangerous
// defaults.
func HomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv("HOME")
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrHomeDetect, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}
