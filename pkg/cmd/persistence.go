package cmd

import (
	"fmt"
	"strings"

	"github.com/leadflow/intake/pkg/persistence"
	"github.com/leadflow/intake/pkg/persistence/file"
	"github.com/leadflow/intake/pkg/persistence/redis"
)

var supportedPersistenceProviders = []string{"file", "redis"}

// NewPersistence builds an intake store from a database URL. The scheme picks
// the provider; anything unrecognized falls back to file storage.
func NewPersistence(databaseURL string) persistence.IntakeStore {
	switch parsePersistenceProvider(databaseURL) {
	case "redis":
		store, err := redis.NewStore(databaseURL)
		if err != nil {
			panic(fmt.Errorf("failed to connect to redis: %w", err))
		}

		return store
	default:
		return file.NewStore(strings.TrimPrefix(databaseURL, "file://"))
	}
}

func parsePersistenceProvider(databaseURL string) string {
	provider, _, found := strings.Cut(databaseURL, "://")
	if !found {
		return "file"
	}

	for _, supported := range supportedPersistenceProviders {
		if provider == supported {
			return provider
		}
	}

	return "file"
}
