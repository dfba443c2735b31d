// internal/workers/franchise/apply-relevance-ranking/config.go
package applyrelevanceranking

import (
	"time"

	"franchise-fit/internal/results"
)

type Config struct {
	MaxItems int
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxItems: results.DefaultTopN,
		Timeout:  30 * time.Second,
	}
}
