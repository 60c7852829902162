package config

import (
	"errors"
	"os"
	"testing"
)

func TestLoad_RejectsMissingSecret(t *testing.T) {
	os.Unsetenv("TOKEN_SECRET")
	os.Unsetenv("PORT")
	if _, err := Load(); !errors.Is(err, ErrWeakSecret) {
		t.Errorf("Load() error = %v, want ErrWeakSecret", err)
	}
}

func TestLoad_RejectsPlaceholderSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "changeme")
	if _, err := Load(); !errors.Is(err, ErrWeakSecret) {
		t.Errorf("Load() error = %v, want ErrWeakSecret", err)
	}
}

func TestLoad_RejectsShortSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "too-short")
	if _, err := Load(); !errors.Is(err, ErrWeakSecret) {
		t.Errorf("Load() error = %v, want ErrWeakSecret", err)
	}
}

func TestLoad_AcceptsStrongSecretAndDefaultsPort(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "this-secret-is-at-least-32-characters-long")
	os.Unsetenv("PORT")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want default 8080", cfg.Port)
	}
}

func TestLoad_HonorsPortOverride(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "this-secret-is-at-least-32-characters-long")
	t.Setenv("PORT", "9090")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
}
