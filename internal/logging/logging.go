//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

// Package logging provides the single shared structured logger used by
// the Clock backend registry and the cmd/chrono CLI, following the
// logBase *logrus.Entry field pattern used for request-scoped logging
// elsewhere in the retrieved pack.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var base = logrus.New()

func init() {
	base.SetOutput(os.Stderr)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Base returns a fresh entry off the shared logger, tagged with
// component, so callers can chain WithField without mutating shared state.
func Base(component string) *logrus.Entry {
	return base.WithField("component", component)
}

// SetLevel adjusts the shared logger's verbosity; level must be one of
// logrus's parseable level names ("debug", "info", "warn", "error").
func SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(parsed)
	return nil
}
