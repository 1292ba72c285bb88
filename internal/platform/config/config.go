package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Modos de autenticación soportados.
const (
	AuthModeDev    = "dev"    // X-Debug-User-ID / X-Debug-Staff, sin verifier
	AuthModeJWT    = "jwt"    // Bearer HS256 firmado con JWT_SECRET
	AuthModeRemote = "remote" // Bearer verificado contra el identity provider
)

// Config de la app. Puede venir de un YAML (CONFIG_FILE) y siempre
// se sobreescribe con variables de entorno. Los secretos solo por env.
type Config struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
	Env  string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`

	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Session  SessionConfig  `yaml:"session"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	App    string `yaml:"app" env:"APP_NAME" env-default:"pet-adoption"`
}

type DatabaseConfig struct {
	// Vacío => storage in-memory (modo dev).
	DSN          string `yaml:"-" env:"DB_DSN"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	Migrate      bool   `yaml:"migrate" env:"DB_MIGRATE" env-default:"true"`
}

type AuthConfig struct {
	Mode      string `yaml:"mode" env:"AUTH_MODE" env-default:"dev"`
	JWTSecret string `yaml:"-" env:"JWT_SECRET"`

	IdentityBaseURL string        `yaml:"identity_base_url" env:"IDENTITY_BASE_URL"`
	IdentityAPIKey  string        `yaml:"-" env:"IDENTITY_API_KEY"`
	IdentityTimeout time.Duration `yaml:"identity_timeout" env:"IDENTITY_TIMEOUT" env-default:"5s"`
}

type SessionConfig struct {
	Secret string `yaml:"-" env:"SESSION_SECRET" env-default:"dev-session-secret"`
	Secure bool   `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
}

// Load lee .env (si existe), luego CONFIG_FILE (si está seteado) y finalmente env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &Config{}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Auth.Mode = strings.ToLower(strings.TrimSpace(c.Auth.Mode))
	switch c.Auth.Mode {
	case AuthModeDev:
	case AuthModeJWT:
		if strings.TrimSpace(c.Auth.JWTSecret) == "" {
			return errors.New("JWT_SECRET is required when AUTH_MODE=jwt")
		}
	case AuthModeRemote:
		if strings.TrimSpace(c.Auth.IdentityBaseURL) == "" || strings.TrimSpace(c.Auth.IdentityAPIKey) == "" {
			return errors.New("IDENTITY_BASE_URL and IDENTITY_API_KEY are required when AUTH_MODE=remote")
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.Auth.Mode)
	}
	if c.Auth.Mode == AuthModeDev && c.Env == "production" {
		return errors.New("AUTH_MODE=dev is not allowed in production")
	}
	return nil
}
