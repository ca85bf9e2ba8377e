package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Database.Driver)
	}

	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate_limit.burst must be >= 1 (got %d)", c.RateLimit.Burst)
		}
	}

	return nil
}

func (r *ReviewConfig) validate() error {
	if r.MaxDueLimit < 1 {
		return fmt.Errorf("max_due_limit must be >= 1 (got %d)", r.MaxDueLimit)
	}
	if r.DefaultDueLimit < 1 || r.DefaultDueLimit > r.MaxDueLimit {
		return fmt.Errorf("default_due_limit must be in [1, %d] (got %d)", r.MaxDueLimit, r.DefaultDueLimit)
	}
	if r.MaxConflictRetries < 0 {
		return fmt.Errorf("max_conflict_retries must be >= 0 (got %d)", r.MaxConflictRetries)
	}
	if r.ConflictBackoff < 0 {
		return fmt.Errorf("conflict_backoff must be >= 0 (got %v)", r.ConflictBackoff)
	}
	if r.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", r.MinEaseFactor)
	}
	if r.InitialEaseFactor < r.MinEaseFactor {
		return fmt.Errorf("initial_ease_factor must be >= min_ease_factor (got %v < %v)", r.InitialEaseFactor, r.MinEaseFactor)
	}
	if r.PassingQuality < 1 || r.PassingQuality > 5 {
		return fmt.Errorf("passing_quality must be in [1, 5] (got %d)", r.PassingQuality)
	}
	if r.FirstInterval < 1 || r.SecondInterval < 1 {
		return fmt.Errorf("first_interval and second_interval must be >= 1 (got %d, %d)", r.FirstInterval, r.SecondInterval)
	}
	if r.MasteryMinSuccessRate < 0 || r.MasteryMinSuccessRate > 100 {
		return fmt.Errorf("mastery_min_success_rate must be in [0, 100] (got %v)", r.MasteryMinSuccessRate)
	}
	return nil
}
