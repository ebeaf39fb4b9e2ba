package cmd

import (
	"context"
	"log/slog"

	"github.com/leadflow/intake/pkg/generation"
	"github.com/leadflow/intake/pkg/services"
)

// NewGenerator builds the marketing-copy generation client. Without an API
// key the server still boots; assisted generation then fails per request
// instead of blocking startup.
func NewGenerator(baseURL, apiKey string, logger *slog.Logger) (services.Generator, error) {
	if apiKey == "" {
		logger.Warn("No generation API key configured, assisted text generation is disabled")

		return disabledGenerator{}, nil
	}

	return generation.NewClient(baseURL, apiKey, logger)
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(context.Context, generation.Request) (string, error) {
	return "", generation.ErrMissingAPIKey
}
