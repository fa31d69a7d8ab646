package config

import (
	"flag"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN       string `env:"DATABASE_URI"`
	AuthSecret        string `env:"AUTH_SECRET"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"` // bcrypt; пустой выключает админку
	CurrencySymbol    string `env:"CURRENCY_SYMBOL"`

	// Публикация событий о ставках (опционально)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
	NATSURL       string `env:"NATS_URL"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	AdminLogin  string `env:"ADMIN_LOGIN"`

	// Client-side settings
	ServerURL     string `env:"-"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	Version       bool   `env:"-"` // show client version and exit (flag only)
}

const (
	defaultDatabaseDSN = "file:auction.db"
	defaultBaseURL     = "localhost:8081"
)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или файл sqlite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи cookie участника")
	flag.StringVar(&cfg.AdminPasswordHash, "admin-password-hash", cfg.AdminPasswordHash, "bcrypt-хеш пароля администратора")
	flag.StringVar(&cfg.CurrencySymbol, "currency", cfg.CurrencySymbol, "currency symbol used in bid messages")
	flag.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "redis address for bid event fan-out")
	flag.StringVar(&cfg.NATSURL, "nats", cfg.NATSURL, "NATS URL for bid event archival")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the auction server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.StringVar(&cfg.AdminLogin, "admin-login", cfg.AdminLogin, "admin login")
	// Client flags
	flag.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "admin password (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func (cfg *Config) applyDefaults() {
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDatabaseDSN
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.AdminLogin == "" {
		cfg.AdminLogin = "admin"
	}
	if strings.TrimSpace(cfg.CurrencySymbol) == "" {
		cfg.CurrencySymbol = "£"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}
}

// UsesPostgres сообщает, нужно ли открывать БД драйвером postgres.
func (cfg *Config) UsesPostgres() bool {
	dsn := strings.ToLower(cfg.DatabaseDSN)
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
