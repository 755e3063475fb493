// Package controller provides the user-facing views of a fuzzing campaign.
package controller

import (
	"context"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCampaign StartMode = iota
	ModeReproduce
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the selected mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithCampaignMode sets the UI to show a running campaign.
func WithCampaignMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCampaign
	}
}

// WithReproduceMode sets the UI to show a replayed iteration range.
func WithReproduceMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReproduce
	}
}

func applyStartOptions(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI displays campaign progress. Display methods may be called from any
// goroutine.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayCampaignInfo(ctx context.Context, info m.CampaignInfo)
	DisplayProgress(ctx context.Context, stats m.CampaignStats)
	DisplayFailure(ctx context.Context, crash m.Crash, path m.Path)
	DisplaySummary(ctx context.Context, stats m.CampaignStats)
}
