// internal/workers/communication/send-match-report/config.go
package sendmatchreport

import (
	"fmt"
	"time"
)

type Config struct {
	Timeout time.Duration
	Subject string
	// TopicARN receives a copy of every report when set.
	TopicARN string
	TopN     int
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		Subject: "Your franchise matches",
		TopN:    5,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive")
	}
	return nil
}
