package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           int      `env:"PORT" env-default:"5000"`
	Env            string   `env:"ENV" env-default:"development"`
	ExternalURL    string   `env:"EXTERNAL_URL" env-default:"localhost:5000"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://*,https://*"`
	LogLevel       string   `env:"LOG_LEVEL" env-default:"info"`
	DB             DBConfig
	RateLimiter    RateLimiterConfig
}

type DBConfig struct {
	Host         string        `env:"DB_HOST" env-default:"localhost"`
	Port         int           `env:"DB_PORT" env-default:"5432"`
	User         string        `env:"DB_USER" env-default:"postgres"`
	Password     string        `env:"DB_PASSWORD" env-default:"postgres"`
	Name         string        `env:"DB_NAME" env-default:"course_feedback"`
	SSLMode      string        `env:"DB_SSLMODE" env-default:"disable"`
	MaxConns     int32         `env:"DB_MAX_CONNS" env-default:"10"`
	MaxIdleTime  time.Duration `env:"DB_MAX_IDLE_TIME" env-default:"15m"`
	EnsureSchema bool          `env:"DB_ENSURE_SCHEMA" env-default:"true"`
}

type RateLimiterConfig struct {
	Enabled              bool          `env:"RATE_LIMITER_ENABLED" env-default:"false"`
	RequestsPerTimeFrame int           `env:"RATE_LIMITER_REQUESTS" env-default:"200"`
	TimeFrame            time.Duration `env:"RATE_LIMITER_WINDOW" env-default:"5s"`
}

// Load reads the optional dotenv files into the process environment and
// then decodes the environment into a Config. Files that do not exist are
// skipped; variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DB.MaxConns)
	}
	if c.RateLimiter.Enabled && (c.RateLimiter.RequestsPerTimeFrame < 1 || c.RateLimiter.TimeFrame <= 0) {
		return errors.New("rate limiter needs a positive RATE_LIMITER_REQUESTS and RATE_LIMITER_WINDOW")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN renders the connection settings as a postgres URL.
func (c DBConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}
