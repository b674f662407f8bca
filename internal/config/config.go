// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

package config

import (
	"time"
)

// Config is the root configuration for the discovery service.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Ticketmaster TicketmasterConfig `koanf:"ticketmaster"`
	Places       PlacesConfig       `koanf:"places"`
	Discovery    DiscoveryConfig    `koanf:"discovery"`
	Cache        CacheConfig        `koanf:"cache"`
	Security     SecurityConfig     `koanf:"security"`
	Logging      LoggingConfig      `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// TicketmasterConfig holds settings for the ticketed-events provider.
type TicketmasterConfig struct {
	Enabled   bool          `koanf:"enabled"`
	BaseURL   string        `koanf:"base_url"`
	APIKey    string        `koanf:"api_key"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"` // requests per second
	PageSize  int           `koanf:"page_size"`
}

// PlacesConfig holds settings for the nearby-places provider.
type PlacesConfig struct {
	Enabled   bool          `koanf:"enabled"`
	BaseURL   string        `koanf:"base_url"`
	APIKey    string        `koanf:"api_key"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"`
}

// DiscoveryConfig holds pipeline tuning knobs.
type DiscoveryConfig struct {
	MaxEvents       int           `koanf:"max_events"`
	DefaultRadiusKm int           `koanf:"default_radius_km"`
	RunTimeout      time.Duration `koanf:"run_timeout"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
