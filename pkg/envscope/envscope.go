// Package envscope temporarily overrides process environment variables for
// the duration of a unit of work.
//
// The process environment is global state: overlapping use of Overlay from
// multiple goroutines is unsafe, and callers must serialize access
// themselves.
package envscope

import (
	"os"

	"github.com/slimcheck/slimcheck/pkg/errors"
	"github.com/slimcheck/slimcheck/pkg/logging"
)

// Overlay sets each variable in overrides, runs fn, and restores the prior
// environment before returning. Variables that were unset beforehand are
// unset again. Restoration runs on every exit path, including a panic in
// fn; failures during restoration are logged rather than returned.
func Overlay(overrides map[string]string, fn func() error) error {
	logger := logging.GetLogger("envscope")

	prior := make(map[string]*string, len(overrides))
	for key := range overrides {
		if value, ok := os.LookupEnv(key); ok {
			v := value
			prior[key] = &v
		} else {
			prior[key] = nil
		}
	}

	defer func() {
		for key, value := range prior {
			var err error
			if value == nil {
				err = os.Unsetenv(key)
			} else {
				err = os.Setenv(key, *value)
			}
			if err != nil {
				logger.Warn().
					Err(err).
					Str("variable", key).
					Msg("failed to restore environment variable")
			}
		}
	}()

	for key, value := range overrides {
		if err := os.Setenv(key, value); err != nil {
			return errors.Wrapf(err, errors.ErrEnvSet, "setting %s", key)
		}
	}

	return fn()
}
