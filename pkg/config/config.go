// Package config loads runtime configuration from the environment,
// failing fast the way the teacher's pkg/config does for required secrets.
package config

import (
	"errors"
	"os"

	"bimaru-solver/pkg/constants"
)

// ErrWeakSecret is returned when TOKEN_SECRET is absent, the checked-in
// placeholder, or too short to sign tokens safely.
var ErrWeakSecret = errors.New("config: TOKEN_SECRET must be set to a value of at least 32 characters")

// Config holds the server's runtime settings.
type Config struct {
	TokenSecret string
	Port        string
}

// Load reads configuration from the environment, returning ErrWeakSecret if
// TOKEN_SECRET is missing, the placeholder, or too short.
func Load() (*Config, error) {
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" || secret == "changeme" || len(secret) < 32 {
		return nil, ErrWeakSecret
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = constants.DefaultPort
	}
	return &Config{TokenSecret: secret, Port: port}, nil
}
