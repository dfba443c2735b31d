// internal/workers/profile/validate-profile/config.go
package validateprofile

import "time"

type Config struct {
	Timeout time.Duration
	// Strict throws PROFILE_VALIDATION_FAILED instead of completing the job
	// with valid=false.
	Strict bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
