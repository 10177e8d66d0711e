package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// developmentSecret is the only permitted fallback for the signing
// secret, and only in the development environment.
const developmentSecret = "secretTesting"

type Config struct {
	Port              string        `env:"PORT" envDefault:"4000"`
	Environment       string        `env:"APP_ENV" envDefault:"development"`
	DatabaseURL       string        `env:"DATABASE_URL"`
	AccessTokenSecret string        `env:"ACCESS_TOKEN_SECRET"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"10s"`
	CookieMaxAge      int           `env:"SESSION_COOKIE_MAX_AGE" envDefault:"7200"`
	SMTPCheckHost     string        `env:"SMTP_CHECK_HOST"`
	SMTPCheckFrom     string        `env:"SMTP_CHECK_FROM"`
	VerifyCredentials bool          `env:"AUTH_VERIFY_CREDENTIALS" envDefault:"false"`
}

// Load reads the configuration from the environment. The signing secret
// must be set outside development; development keeps the historical
// fallback so local runs and tests need no setup.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}

	if cfg.AccessTokenSecret == "" {
		if !cfg.Development() {
			return Config{}, errors.New("ACCESS_TOKEN_SECRET must be set outside development")
		}
		cfg.AccessTokenSecret = developmentSecret
	}

	return cfg, nil
}

func (c Config) Development() bool {
	return c.Environment == "development"
}

func (c Config) Addr() string {
	return ":" + c.Port
}
