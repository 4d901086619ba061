package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBootstrap(t *testing.T) {
	tests := []struct {
		name           string
		apiKey         string
		probe          ProbeFunc
		wantEnabled    bool
		wantReason     string
		wantProbeCalls int
	}{
		{
			name:           "missing key disables AI",
			apiKey:         "",
			wantEnabled:    false,
			wantReason:     "OPENAI_API_KEY",
			wantProbeCalls: 0,
		},
		{
			name:           "key without prefix disables AI",
			apiKey:         "abc123",
			wantEnabled:    false,
			wantReason:     "invalid API key format",
			wantProbeCalls: 0,
		},
		{
			name:   "valid key with passing probe enables AI",
			apiKey: "sk-validlookingkey",
			probe: func(ctx context.Context, c *Client) error {
				return nil
			},
			wantEnabled:    true,
			wantProbeCalls: 1,
		},
		{
			name:   "project-scoped key enables AI",
			apiKey: "sk-proj-validlookingkey",
			probe: func(ctx context.Context, c *Client) error {
				return nil
			},
			wantEnabled:    true,
			wantProbeCalls: 1,
		},
		{
			name:   "failing probe disables AI",
			apiKey: "sk-validlookingkey",
			probe: func(ctx context.Context, c *Client) error {
				return errors.New("connection refused")
			},
			wantEnabled:    false,
			wantReason:     "connection refused",
			wantProbeCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probeCalls := 0
			probe := func(ctx context.Context, c *Client) error {
				probeCalls++
				if tt.probe != nil {
					return tt.probe(ctx, c)
				}
				t.Fatal("probe called unexpectedly")
				return nil
			}

			result := bootstrap(context.Background(), tt.apiKey, "gpt-4o-mini", "", probe)

			if result.Enabled != tt.wantEnabled {
				t.Errorf("bootstrap() Enabled = %v, want %v", result.Enabled, tt.wantEnabled)
			}

			// Enabled must hold exactly when a client was produced.
			if result.Enabled != (result.Client != nil) {
				t.Errorf("bootstrap() Enabled = %v but Client = %v", result.Enabled, result.Client)
			}

			if tt.wantReason != "" && !strings.Contains(result.Reason, tt.wantReason) {
				t.Errorf("bootstrap() Reason = %q, want containing %q", result.Reason, tt.wantReason)
			}

			if result.Enabled && result.Reason != "" {
				t.Errorf("bootstrap() Reason = %q, want empty for enabled result", result.Reason)
			}

			if probeCalls != tt.wantProbeCalls {
				t.Errorf("bootstrap() probe called %d times, want %d", probeCalls, tt.wantProbeCalls)
			}
		})
	}
}

func TestBootstrap_Idempotent(t *testing.T) {
	probe := func(ctx context.Context, c *Client) error {
		return nil
	}

	first := bootstrap(context.Background(), "sk-validlookingkey", "gpt-4o-mini", "", probe)
	second := bootstrap(context.Background(), "sk-validlookingkey", "gpt-4o-mini", "", probe)

	if first.Enabled != second.Enabled {
		t.Errorf("bootstrap() Enabled differs between calls: %v then %v", first.Enabled, second.Enabled)
	}
	if first.Reason != second.Reason {
		t.Errorf("bootstrap() Reason differs between calls: %q then %q", first.Reason, second.Reason)
	}
	if (first.Client == nil) != (second.Client == nil) {
		t.Error("bootstrap() client presence differs between calls")
	}
}
