package telemetry

import (
	"fmt"

	"github.com/juanibiapina/layouts/internal/logging"
	"github.com/posthog/posthog-go"
)

var _ posthog.Logger = logger{}

// logger routes PostHog client messages into the application log file at
// debug level. It never touches stderr, which the TUI shares.
type logger struct{}

func (logger) Debugf(format string, args ...any) { forward(format, args...) }
func (logger) Logf(format string, args ...any)   { forward(format, args...) }
func (logger) Warnf(format string, args ...any)  { forward(format, args...) }
func (logger) Errorf(format string, args ...any) { forward(format, args...) }

func forward(format string, args ...any) {
	logging.Logger.Debug("posthog: "+fmt.Sprintf(format, args...), "component", "telemetry")
}
