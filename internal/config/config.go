package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT, default=8080"`
	DBDriver  string `env:"DB_DRIVER, default=sqlite"`
	DBDSN     string `env:"DB_DSN, default=packcatalog.db"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	LogFile   string `env:"LOG_FILE"`
	BodyLimit int    `env:"BODY_LIMIT, default=1048576"`

	// App-wide request limit per client IP.
	RateMax    int           `env:"RATE_MAX, default=120"`
	RateWindow time.Duration `env:"RATE_WINDOW, default=1m"`

	Auth     AuthConfig
	WhatsApp WhatsAppConfig
	Redis    RedisConfig
}

type AuthConfig struct {
	SessionTTL    time.Duration `env:"SESSION_TTL, default=24h"`
	CookieSecure  bool          `env:"COOKIE_SECURE, default=false"`
	AdminPassword string        `env:"ADMIN_PASSWORD, default=password123"`
	LoginRateMax  int           `env:"LOGIN_RATE_MAX, default=5"`
	LoginRateWin  time.Duration `env:"LOGIN_RATE_WINDOW, default=10m"`
}

type WhatsAppConfig struct {
	Number string `env:"WHATSAPP_NUMBER, default=919876543210"`
}

// RedisConfig enables the product listing cache when Addr is set.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB, default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL, default=1m"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load(ctx context.Context) (Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return Config{}, fmt.Errorf("config: unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}
