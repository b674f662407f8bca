// Pollinate - Family Curriculum Local Opportunity Discovery
// Copyright 2026 hajjbbee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hajjbbee/Pollinate-HE-Curriculum-sub001

// Package config loads and validates service configuration using Koanf v2.
//
// Configuration is layered with clear precedence:
//
//	Environment Variables > YAML config file > built-in defaults
//
// The config file is searched at ./config.yaml, ./config.yml,
// /etc/pollinate/config.yaml and /etc/pollinate/config.yml, or at the path
// given by the CONFIG_PATH environment variable.
//
// Environment variables use flat names mapped onto nested config paths, e.g.
// TICKETMASTER_API_KEY sets ticketmaster.api_key and HTTP_PORT sets
// server.port. Unrecognized environment variables are ignored.
package config
