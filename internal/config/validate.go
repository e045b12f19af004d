package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31] (got %d)", c.Auth.BcryptCost)
	}

	if !strings.HasPrefix(c.Server.APIPrefix, "/") {
		return fmt.Errorf("server.api_prefix must start with / (got %q)", c.Server.APIPrefix)
	}

	if c.Audit.QueueSize <= 0 {
		return fmt.Errorf("audit.queue_size must be > 0 (got %d)", c.Audit.QueueSize)
	}

	if _, err := cron.ParseStandard(c.Lookup.RefreshSchedule); err != nil {
		return fmt.Errorf("lookup.refresh_schedule: %w", err)
	}

	return nil
}
