// internal/workers/franchise/get-franchise-detail/config.go
package getfranchisedetail

import "time"

type Config struct {
	Timeout     time.Duration
	CurrentYear int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     10 * time.Second,
		CurrentYear: time.Now().Year(),
	}
}
