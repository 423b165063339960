package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, когда конфигурация содержит недопустимые значения
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Database DatabaseConfig `toml:"database"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Calendar CalendarConfig `toml:"calendar"`
	Booking  BookingConfig  `toml:"booking"`
	Auth     AuthConfig     `toml:"auth"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	TxMaxRetries    int    `toml:"tx_max_retries"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки Redis (кеш каталога и блокировка слотов)
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// LockTTL время жизни блокировки слота (мс)
	LockTTL int `toml:"lock_ttl"`
	// LockWait сколько ждать освобождения занятого слота (мс)
	LockWait int `toml:"lock_wait"`
}

// LockTTLDuration время жизни блокировки
func (c RedisConfig) LockTTLDuration() time.Duration {
	return time.Duration(c.LockTTL) * time.Millisecond
}

// LockWaitDuration время ожидания блокировки
func (c RedisConfig) LockWaitDuration() time.Duration {
	return time.Duration(c.LockWait) * time.Millisecond
}

// CatalogConfig настройки каталога услуг (Sanity)
type CatalogConfig struct {
	ProjectID  string `toml:"project_id"`
	Dataset    string `toml:"dataset"`
	APIVersion string `toml:"api_version"`
	Token      string `toml:"token"`
	// URL переопределяет адрес API (используется в локальном окружении)
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"`
	CacheTTL int    `toml:"cache_ttl"`
}

// Enabled каталог настроен
func (c CatalogConfig) Enabled() bool {
	return c.URL != "" || c.ProjectID != ""
}

// BaseURL адрес API запросов Sanity
func (c CatalogConfig) BaseURL() string {
	if c.URL != "" {
		return strings.TrimRight(c.URL, "/")
	}
	return fmt.Sprintf("https://%s.api.sanity.io/%s/data/query/%s", c.ProjectID, c.APIVersion, c.Dataset)
}

// CalendarConfig настройки Google Calendar
type CalendarConfig struct {
	Enabled    bool   `toml:"enabled"`
	CalendarID string `toml:"calendar_id"`
	// CredentialsFile JSON сервисного аккаунта; если не задан, используется refresh token владельца
	CredentialsFile string `toml:"credentials_file"`
	ClientID        string `toml:"client_id"`
	ClientSecret    string `toml:"client_secret"`
	RefreshToken    string `toml:"refresh_token"`
	Timeout         int    `toml:"timeout"`
}

// BookingConfig бизнес-правила бронирования
type BookingConfig struct {
	Timezone               string `toml:"timezone"`
	MaxBookingsPerSlot     int    `toml:"max_bookings_per_slot"`
	MaxServiceTypesPerSlot int    `toml:"max_service_types_per_slot"`
	// SnapshotDuration сохранять длительность услуги в записи при создании
	SnapshotDuration bool `toml:"snapshot_duration"`
}

// Location часовой пояс бизнеса
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// AuthConfig статические ключи доступа
type AuthConfig struct {
	PartnerAPIKeys []string `toml:"partner_api_keys"`
	AdminToken     string   `toml:"admin_token"`
}

// Load загружает конфигурацию из TOML файла
// Секреты берутся из окружения (и .env файла, если он есть)
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	overlay := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	overlay(&c.Database.Password, "DB_PASSWORD")
	overlay(&c.Redis.Password, "REDIS_PASSWORD")
	overlay(&c.Catalog.Token, "CATALOG_TOKEN")
	overlay(&c.Calendar.ClientSecret, "GOOGLE_CLIENT_SECRET")
	overlay(&c.Calendar.RefreshToken, "GOOGLE_REFRESH_TOKEN")
	overlay(&c.Auth.AdminToken, "ADMIN_TOKEN")

	if v := os.Getenv("PARTNER_API_KEYS"); v != "" {
		keys := make([]string, 0)
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		c.Auth.PartnerAPIKeys = keys
	}
}

func (c *Config) applyDefaults() {
	setInt := func(dst *int, def int) {
		if *dst == 0 {
			*dst = def
		}
	}
	setString := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 15)
	setInt(&c.Server.WriteTimeout, 15)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 10)

	setString(&c.Logs.Level, "info")

	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 25)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)
	setInt(&c.Database.TxMaxRetries, 3)

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "salon-booking")

	setString(&c.Redis.Addr, "localhost:6379")
	setInt(&c.Redis.LockTTL, 5000)
	setInt(&c.Redis.LockWait, 2000)

	setString(&c.Catalog.APIVersion, "v2021-10-21")
	setString(&c.Catalog.Dataset, "production")
	setInt(&c.Catalog.Timeout, 5)
	setInt(&c.Catalog.CacheTTL, 300)

	setString(&c.Calendar.CalendarID, "primary")
	setInt(&c.Calendar.Timeout, 5)

	setInt(&c.Booking.MaxBookingsPerSlot, 4)
	setInt(&c.Booking.MaxServiceTypesPerSlot, 2)
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.MaxOpenConns < 1 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: database pool sizes must be positive", ErrInvalidConfig)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: database.max_idle_conns exceeds max_open_conns", ErrInvalidConfig)
	}
	if c.Database.TxMaxRetries < 0 {
		return fmt.Errorf("%w: database.tx_max_retries must not be negative", ErrInvalidConfig)
	}
	if c.Booking.MaxBookingsPerSlot < 1 {
		return fmt.Errorf("%w: booking.max_bookings_per_slot must be at least 1", ErrInvalidConfig)
	}
	if c.Booking.MaxServiceTypesPerSlot < 1 {
		return fmt.Errorf("%w: booking.max_service_types_per_slot must be at least 1", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Redis.Enabled && (c.Redis.LockTTL < 0 || c.Redis.LockWait < 0) {
		return fmt.Errorf("%w: redis lock timings must not be negative", ErrInvalidConfig)
	}
	if c.Calendar.Enabled && c.Calendar.CredentialsFile == "" &&
		(c.Calendar.ClientID == "" || c.Calendar.RefreshToken == "") {
		return fmt.Errorf("%w: calendar requires credentials_file or client_id with refresh_token", ErrInvalidConfig)
	}
	return nil
}
