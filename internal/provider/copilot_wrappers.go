package provider

import (
	"context"
	"strings"

	copilot "github.com/github/copilot-sdk/go"
)

//go:generate go tool mockgen -source copilot_wrappers.go -destination mocks_copilot_test.go -package provider

// copilotSession is an interface over [*copilot.Session].
type copilotSession interface {
	// On maps to [copilot.Session.On]
	On(handler copilot.SessionEventHandler) func()

	// SendAndWait maps to [copilot.Session.SendAndWait]
	SendAndWait(ctx context.Context, options copilot.MessageOptions) (*copilot.SessionEvent, error)
}

// copilotClient is an interface over [*copilot.Client].
type copilotClient interface {
	// CreateSession maps to [copilot.Client.CreateSession]
	CreateSession(ctx context.Context, config *copilot.SessionConfig) (copilotSession, error)

	// Start maps to [copilot.Client.Start]
	Start(ctx context.Context) error

	// Stop maps to [copilot.Client.Stop]
	Stop() error
}

func newCopilotClient(clientOptions *copilot.ClientOptions) copilotClient {
	return &copilotClientWrapper{
		inner: copilot.NewClient(clientOptions),
	}
}

type copilotClientWrapper struct {
	inner *copilot.Client
}

func (w *copilotClientWrapper) CreateSession(ctx context.Context, config *copilot.SessionConfig) (copilotSession, error) {
	sess, err := w.inner.CreateSession(ctx, config)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (w *copilotClientWrapper) Start(ctx context.Context) error {
	return w.inner.Start(ctx)
}

func (w *copilotClientWrapper) Stop() error {
	return w.inner.Stop()
}

// replyCollector accumulates the assistant's message text from session
// events.
type replyCollector struct {
	parts []string
}

func newReplyCollector() *replyCollector {
	return &replyCollector{}
}

// On is a callback for [copilot.Session.On].
func (c *replyCollector) On(event copilot.SessionEvent) {
	if event.Type != copilot.AssistantMessage {
		return
	}
	if event.Data.Content != nil {
		c.parts = append(c.parts, *event.Data.Content)
	}
}

// Text returns the collected reply.
func (c *replyCollector) Text() string {
	return strings.Join(c.parts, "")
}
