package config

import (
	"fmt"
	"net/url"
	"slices"
	"sort"

	"github.com/vmunix/dracin/pkg/normalize"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Upstream validation
	if len(c.Upstream.Providers) == 0 {
		errs = append(errs, "upstream.providers: at least one provider must be configured")
	}
	for _, name := range sortedKeys(c.Upstream.Providers) {
		p := c.Upstream.Providers[name]
		if p.URL == "" {
			errs = append(errs, fmt.Sprintf("upstream.providers.%s.url: required", name))
			continue
		}
		if u, err := url.ParseRequestURI(p.URL); err != nil || u.Host == "" {
			errs = append(errs, fmt.Sprintf("upstream.providers.%s.url: invalid URL %q", name, p.URL))
		}
	}
	if len(c.Upstream.Providers) > 0 {
		if c.Upstream.Default == "" {
			errs = append(errs, "upstream.default: required when more than one provider is configured")
		} else if _, ok := c.Upstream.Providers[c.Upstream.Default]; !ok {
			errs = append(errs, fmt.Sprintf("upstream.default: provider %q not defined", c.Upstream.Default))
		}
	}
	if c.Upstream.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("upstream.timeout: must not be negative, got %s", c.Upstream.Timeout))
	}

	// Normalize validation
	fields := normalize.Fields()
	for _, field := range sortedKeys(c.Normalize.Aliases) {
		if !slices.Contains(fields, normalize.Field(field)) {
			errs = append(errs, fmt.Sprintf("normalize.aliases.%s: unknown field", field))
		}
	}

	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
