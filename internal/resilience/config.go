package resilience

import "time"

// FromAttempts builds a RetryConfig from the tagging settings. Zero values
// keep the defaults.
func FromAttempts(maxAttempts int, initialBackoff time.Duration) RetryConfig {
	cfg := DefaultRetryConfig()
	if maxAttempts > 0 {
		cfg.MaxAttempts = maxAttempts
	}
	if initialBackoff > 0 {
		cfg.InitialBackoff = initialBackoff
	}
	return cfg
}
