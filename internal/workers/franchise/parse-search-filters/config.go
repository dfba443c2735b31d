// internal/workers/franchise/parse-search-filters/config.go
package parsesearchfilters

import "time"

type Config struct {
	Timeout         time.Duration
	DefaultPageSize int
	MaxPageSize     int
	MaxInvestment   int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:         10 * time.Second,
		DefaultPageSize: 20,
		MaxPageSize:     100,
		MaxInvestment:   99_999_999,
	}
}
