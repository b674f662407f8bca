// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hajjbbee/Pollinate-HE-Curriculum-sub001/internal/logging"
)

// Validate checks the configuration for invalid or inconsistent values.
// Called after loading, before the service starts.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateProviders(); err != nil {
		return err
	}
	if err := c.validateDiscovery(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}

	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("server.environment must be development, staging, or production, got %q", c.Server.Environment)
	}
	return nil
}

// validateProviders checks provider connection settings. A missing API key
// is deliberately not checked here: credential absence disables the provider
// at load time (see disableKeylessProviders) rather than failing startup.
func (c *Config) validateProviders() error {
	if c.Ticketmaster.Enabled {
		if err := validateBaseURL("ticketmaster.base_url", c.Ticketmaster.BaseURL); err != nil {
			return err
		}
		if c.Ticketmaster.RateLimit <= 0 {
			return fmt.Errorf("ticketmaster.rate_limit must be positive, got %v", c.Ticketmaster.RateLimit)
		}
		if c.Ticketmaster.PageSize < 1 || c.Ticketmaster.PageSize > 200 {
			return fmt.Errorf("ticketmaster.page_size must be between 1 and 200, got %d", c.Ticketmaster.PageSize)
		}
	}

	if c.Places.Enabled {
		if err := validateBaseURL("places.base_url", c.Places.BaseURL); err != nil {
			return err
		}
		if c.Places.RateLimit <= 0 {
			return fmt.Errorf("places.rate_limit must be positive, got %v", c.Places.RateLimit)
		}
	}

	return nil
}

// disableKeylessProviders turns off any enabled provider that has no API
// credential. Credential absence is tolerated, not fatal: the source simply
// contributes nothing to discovery runs.
func (c *Config) disableKeylessProviders() {
	if c.Ticketmaster.Enabled && c.Ticketmaster.APIKey == "" {
		c.Ticketmaster.Enabled = false
		logging.Warn().Msg("Ticketmaster api key not configured - provider disabled, source will contribute nothing")
	}
	if c.Places.Enabled && c.Places.APIKey == "" {
		c.Places.Enabled = false
		logging.Warn().Msg("Places api key not configured - provider disabled, source will contribute nothing")
	}
}

func (c *Config) validateDiscovery() error {
	if c.Discovery.MaxEvents < 1 {
		return fmt.Errorf("discovery.max_events must be at least 1, got %d", c.Discovery.MaxEvents)
	}
	if c.Discovery.DefaultRadiusKm < 1 || c.Discovery.DefaultRadiusKm > 500 {
		return fmt.Errorf("discovery.default_radius_km must be between 1 and 500, got %d", c.Discovery.DefaultRadiusKm)
	}
	if c.Discovery.RunTimeout <= 0 {
		return fmt.Errorf("discovery.run_timeout must be positive, got %v", c.Discovery.RunTimeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("logging.level must be a valid zerolog level, got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func validateBaseURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host", field)
	}
	return nil
}
