// internal/workers/franchise/calculate-match-score/config.go
package calculatematchscore

import "time"

type Config struct {
	Timeout time.Duration
	// RequireProfile fails the job with PROFILE_NOT_FOUND instead of
	// returning neutral scores when no profile can be resolved.
	RequireProfile bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
