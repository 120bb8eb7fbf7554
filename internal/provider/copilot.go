package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	copilot "github.com/github/copilot-sdk/go"

	"github.com/persuasion-games/persuade/internal/models"
)

// CopilotProvider asks a model through the GitHub Copilot SDK to design a
// signaling scheme. Each generation runs in a fresh session so repeated runs
// of a scenario are independent samples.
type CopilotProvider struct {
	modelID    string
	timeoutSec int

	client copilotClient

	startOnce sync.Once
}

// CopilotProviderBuilder builds a CopilotProvider with options.
type CopilotProviderBuilder struct {
	provider *CopilotProvider
}

type CopilotProviderOptions struct {
	// NewCopilotClient overrides client construction, for tests.
	NewCopilotClient func(clientOptions *copilot.ClientOptions) copilotClient

	// LogLevel is passed through to the SDK client. Defaults to "error".
	LogLevel string
}

// NewCopilotProviderBuilder creates a builder for CopilotProvider.
//   - modelID may be blank, in which case the copilot CLI picks its own
//     fallback model.
func NewCopilotProviderBuilder(modelID string, timeoutSec int, options *CopilotProviderOptions) *CopilotProviderBuilder {
	logLevel := "error"
	if options != nil && options.LogLevel != "" {
		logLevel = options.LogLevel
	}

	copilotOptions := &copilot.ClientOptions{
		LogLevel:  logLevel,
		AutoStart: copilot.Bool(false),
	}

	var client copilotClient
	if options == nil || options.NewCopilotClient == nil {
		client = newCopilotClient(copilotOptions)
	} else {
		client = options.NewCopilotClient(copilotOptions)
	}

	builder := &CopilotProviderBuilder{
		provider: &CopilotProvider{
			modelID:    modelID,
			timeoutSec: timeoutSec,
		},
	}
	builder.provider.client = client
	return builder
}

func (b *CopilotProviderBuilder) Build() *CopilotProvider {
	return b.provider
}

func (p *CopilotProvider) Name() string {
	if p.modelID == "" {
		return "copilot"
	}
	return "copilot/" + p.modelID
}

// Initialize is a no-op; the client starts lazily on first generation.
func (p *CopilotProvider) Initialize(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// GenerateScheme prompts the model once and parses its reply into a raw
// table. Transport and parse failures come back inside the Result; an error
// return means the client itself could not start.
func (p *CopilotProvider) GenerateScheme(ctx context.Context, sc *models.Scenario) (*Result, error) {
	var startErr error

	p.startOnce.Do(func() {
		// The SDK's autostart runs into trouble when triggered from separate
		// goroutines, so start explicitly, once.
		startErr = p.client.Start(ctx)
	})
	if startErr != nil {
		return nil, fmt.Errorf("copilot failed to start: %w", startErr)
	}

	if p.timeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(p.timeoutSec)*time.Second)
		defer cancel()
	}

	start := time.Now()

	session, err := p.client.CreateSession(ctx, &copilot.SessionConfig{
		Model:               p.modelID,
		OnPermissionRequest: denyAllTools,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	collector := newReplyCollector()
	unsubscribe := session.On(collector.On)
	defer unsubscribe()

	_, err = session.SendAndWait(ctx, copilot.MessageOptions{
		Prompt: BuildPrompt(sc),
	})

	result := &Result{
		RawOutput:  collector.Text(),
		ModelID:    p.modelID,
		DurationMs: time.Since(start).Milliseconds(),
	}

	if err != nil {
		result.FailureMsg = fmt.Sprintf("copilot call failed: %v", err)
		return result, nil
	}

	table, parseErr := ParseTable(result.RawOutput)
	if parseErr != nil {
		result.FailureMsg = parseErr.Error()
		return result, nil
	}

	result.Table = table
	return result, nil
}

// Shutdown stops the SDK client.
func (p *CopilotProvider) Shutdown(ctx context.Context) error {
	if err := p.client.Stop(); err != nil {
		return fmt.Errorf("failed to stop copilot client: %w", err)
	}
	return nil
}

// denyAllTools refuses tool use. Scheme design is a pure text task; a session
// reaching for tools is off the rails.
func denyAllTools(request copilot.PermissionRequest, invocation copilot.PermissionInvocation) (copilot.PermissionRequestResult, error) {
	return copilot.PermissionRequestResult{Kind: "denied"}, nil
}
