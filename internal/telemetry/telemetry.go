package telemetry

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"

	"github.com/denisbrodbeck/machineid"
	"github.com/juanibiapina/layouts/internal/logging"
	"github.com/juanibiapina/layouts/internal/version"
	"github.com/posthog/posthog-go"
)

const appID = "layouts"

var (
	client     posthog.Client
	distinctId string

	baseProps = posthog.NewProperties().
			Set("goos", runtime.GOOS).
			Set("goarch", runtime.GOARCH).
			Set("term", os.Getenv("TERM")).
			Set("shell", filepath.Base(os.Getenv("SHELL"))).
			Set("version", version.Version).
			Set("go_version", runtime.Version())
)

// Init starts the PostHog client. Telemetry stays off without an API key.
func Init(key, endpoint string) {
	if key == "" || isDisabled() {
		return
	}
	c, err := posthog.NewWithConfig(key, posthog.Config{
		Endpoint: endpoint,
		Logger:   logger{},
	})
	if err != nil {
		logging.Logger.Error("Failed to initialize PostHog client", "error", err)
		return
	}
	client = c
	distinctId = getDistinctId()
}

// Enabled reports whether events are being sent
func Enabled() bool {
	return client != nil
}

func isDisabled() bool {
	if v, _ := strconv.ParseBool(os.Getenv("LAYOUTS_TELEMETRY_DISABLED")); v {
		return true
	}
	if v, _ := strconv.ParseBool(os.Getenv("DO_NOT_TRACK")); v {
		return true
	}
	return false
}

// getDistinctId returns an app-specific hash of the machine id, so the raw id never leaves the host
func getDistinctId() string {
	id, err := machineid.ProtectedID(appID)
	if err != nil {
		logging.Logger.Debug("Failed to read machine id", "error", err)
		return "anonymous"
	}
	return id
}

func send(event string, props ...any) {
	if client == nil {
		return
	}
	err := client.Enqueue(posthog.Capture{
		DistinctId: distinctId,
		Event:      event,
		Properties: pairsToProps(props...).Merge(baseProps),
	})
	if err != nil {
		logging.Logger.Error("Failed to enqueue PostHog event", "event", event, "props", props, "error", err)
		return
	}
}

// Error reports err as a PostHog exception event. Extra props are
// key-value pairs describing where it happened.
func Error(err error, props ...any) {
	if client == nil || err == nil {
		return
	}
	props = append(
		[]any{
			"$exception_list",
			[]map[string]string{
				{"type": reflect.TypeOf(err).String(), "value": err.Error()},
			},
		},
		props...,
	)
	send("$exception", props...)
}

func Flush() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logging.Logger.Error("Failed to flush PostHog events", "error", err)
	}
	client = nil
}

func pairsToProps(props ...any) posthog.Properties {
	p := posthog.NewProperties()

	if !isEven(len(props)) {
		logging.Logger.Error("Event properties must be provided as key-value pairs", "props", props)
		return p
	}

	for i := 0; i < len(props); i += 2 {
		key, ok := props[i].(string)
		if !ok {
			logging.Logger.Error("Event property key must be a string", "key", props[i])
			continue
		}
		p = p.Set(key, props[i+1])
	}
	return p
}

func isEven(n int) bool {
	return n%2 == 0
}
