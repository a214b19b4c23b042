// Package telemetry provides opt-in anonymous usage analytics.
//
// Telemetry is disabled until the user enables it in the config. Events
// carry a random anonymous ID, the CLI version, and coarse command
// properties only; never vault content, document names, or queries.
package telemetry

import (
	"runtime"
	"time"

	"github.com/posthog/posthog-go"
)

// Common event names.
const (
	EventCommandExecuted = "command_executed"
	EventCommandError    = "command_error"
	EventJumpSession     = "jump_session"
)

// Client tracks anonymous usage events. Implementations must be safe to
// call from command code without blocking it.
type Client interface {
	// Track enqueues an event. A no-op when telemetry is disabled.
	Track(event string, properties map[string]any)

	// Close flushes pending events. Bounded; never stalls CLI exit for
	// long.
	Close() error
}

// Noop is the disabled client.
type Noop struct{}

func (Noop) Track(string, map[string]any) {}
func (Noop) Close() error                 { return nil }

// PostHogClient sends events through the PostHog SDK.
type PostHogClient struct {
	client  posthog.Client
	identID string
	version string
}

// New creates a telemetry client. A disabled config, missing API key,
// or SDK failure yields the Noop client; telemetry must never break the
// CLI.
func New(enabled bool, apiKey, version string) Client {
	if !enabled || apiKey == "" {
		return Noop{}
	}
	id, err := loadAnonymousID()
	if err != nil {
		return Noop{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{
		// The CLI exits quickly; flush small batches fast.
		BatchSize: 10,
		Interval:  time.Second,
		Logger:    quietLogger{},
	})
	if err != nil {
		return Noop{}
	}
	return &PostHogClient{client: client, identID: id, version: version}
}

// Track implements Client.
func (c *PostHogClient) Track(event string, properties map[string]any) {
	props := posthog.NewProperties().
		Set("version", c.version).
		Set("os", runtime.GOOS).
		Set("arch", runtime.GOARCH)
	for k, v := range properties {
		props.Set(k, v)
	}
	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.identID,
		Event:      event,
		Properties: props,
	})
}

// Close implements Client.
func (c *PostHogClient) Close() error {
	return c.client.Close()
}

// quietLogger drops SDK log output so transport warnings never pollute
// normal CLI output.
type quietLogger struct{}

func (quietLogger) Debugf(string, ...any) {}
func (quietLogger) Logf(string, ...any)   {}
func (quietLogger) Warnf(string, ...any)  {}
func (quietLogger) Errorf(string, ...any) {}
