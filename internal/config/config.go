package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the web app needs from the environment.
// Required values fail fast at startup so a misconfigured process
// never binds a listener.
type Config struct {
	Port    string `env:"PORT,required,notEmpty"`
	AppName string `env:"APP_NAME" envDefault:"Go OIDC Web App"`
	Env     string `env:"ENV" envDefault:"DEV"`

	// Identity provider
	IssuerURL    string `env:"ISSUER_URL,required,notEmpty"`
	ClientID     string `env:"CLIENT_ID,required,notEmpty"`
	ClientSecret string `env:"CLIENT_SECRET,required,notEmpty"`
	CallbackURL  string `env:"CALLBACK_URL,required,notEmpty"`

	// Downstream API
	APIBaseURL  string `env:"API_BASE_URL,required,notEmpty"`
	APIAudience string `env:"API_AUDIENCE"`

	// Optional Redis session store; in-memory when unset
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address in the form ":8080".
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
