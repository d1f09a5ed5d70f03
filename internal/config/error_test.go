package config

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigError_Error_Empty(t *testing.T) {
	e := &ConfigError{Path: "/etc/dracin/config.toml"}
	if got := e.Error(); got != "" {
		t.Errorf("expected empty string for no errors, got %q", got)
	}
	if e.HasErrors() {
		t.Error("expected HasErrors to be false")
	}
}

func TestConfigError_Error_MissingVars(t *testing.T) {
	e := &ConfigError{
		Path:    "/etc/dracin/config.toml",
		Missing: []string{"DRACIN_UPSTREAM_URL", "MIRROR_URL"},
	}
	got := e.Error()
	if !strings.Contains(got, "missing environment variables") {
		t.Errorf("expected 'missing environment variables', got %q", got)
	}
	if !strings.Contains(got, "DRACIN_UPSTREAM_URL, MIRROR_URL") {
		t.Errorf("expected var names in error, got %q", got)
	}
}

func TestConfigError_Error_Both(t *testing.T) {
	e := &ConfigError{
		Path:    "/etc/dracin/config.toml",
		Missing: []string{"DRACIN_UPSTREAM_URL"},
		Errors:  []string{"server.port: invalid", "upstream.default: provider \"x\" not defined"},
	}
	got := e.Error()
	if !strings.Contains(got, "validation failed:\n  - server.port: invalid\n  - upstream.default") {
		t.Errorf("expected indented validation list, got %q", got)
	}
	if !e.HasErrors() {
		t.Error("expected HasErrors to be true")
	}
}

func TestConfigError_Is(t *testing.T) {
	var err error = &ConfigError{Errors: []string{"server.port: invalid"}}
	if !errors.Is(err, ErrInvalid) {
		t.Error("expected errors.Is(err, ErrInvalid)")
	}
}
