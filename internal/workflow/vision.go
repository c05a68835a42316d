package workflow

import (
	"context"
	"fmt"
	"maps"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
	"github.com/JaimeStill/go-agents/pkg/format"
)

// StageOptions bounds one vision call. Each stage runs with its own token
// budget and temperature: triage is short and strict, analysis is long and
// slightly looser.
type StageOptions struct {
	Temperature float64
	MaxTokens   int
}

var (
	triageOptions  = StageOptions{Temperature: 0.1, MaxTokens: 800}
	analyzeOptions = StageOptions{Temperature: 0.2, MaxTokens: 4500}
)

// VisionClient performs one vision-completion round trip. Pipeline nodes
// depend on this interface rather than a concrete provider so tests can
// substitute scripted responses.
type VisionClient interface {
	Complete(ctx context.Context, prompt string, images []string, opts StageOptions) (string, error)
}

// AgentVision is the production VisionClient. It creates a fresh agent per
// call from a base configuration with the stage options overlaid.
type AgentVision struct {
	Config gaconfig.AgentConfig
}

// Complete sends the prompt and image data URIs to the configured provider
// and returns the raw response content.
func (v *AgentVision) Complete(ctx context.Context, prompt string, images []string, opts StageOptions) (string, error) {
	cfg := v.Config
	if cfg.Provider != nil {
		provider := *cfg.Provider
		provider.Options = maps.Clone(provider.Options)
		if provider.Options == nil {
			provider.Options = make(map[string]any)
		}
		provider.Options["temperature"] = opts.Temperature
		provider.Options["max_tokens"] = opts.MaxTokens
		cfg.Provider = &provider
	}

	a, err := agent.New(&cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	imgs := make([]format.Image, len(images))
	for i, img := range images {
		imgs[i] = format.Image{URL: img}
	}

	resp, err := a.Vision(ctx, prompt, imgs)
	if err != nil {
		return "", fmt.Errorf("vision call: %w", err)
	}

	content := resp.Text()
	if content == "" {
		return "", ErrEmptyResponse
	}

	return content, nil
}
