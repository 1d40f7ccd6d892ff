package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Ingest.RetryAttempts < 0 {
		return fmt.Errorf("ingest.retry_attempts must be >= 0 (got %d)", c.Ingest.RetryAttempts)
	}
	if c.Ingest.RetryDelay < 0 {
		return fmt.Errorf("ingest.retry_delay must be >= 0 (got %v)", c.Ingest.RetryDelay)
	}
	if c.Review.QueueLimit <= 0 {
		return fmt.Errorf("review.queue_limit must be > 0 (got %d)", c.Review.QueueLimit)
	}
	return nil
}
