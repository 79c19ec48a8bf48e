package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "BOOKING"

// Драйверы хранилища бронирований
const (
	StorageJSONFile = "jsonfile"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var (
	ErrRead     = errors.New("config: failed to read config")
	ErrEnv      = errors.New("config: failed to apply environment")
	ErrValidate = errors.New("config: invalid config")
)

type Config struct {
	Server    ServerConfig    `toml:"server" envconfig:"server"`
	Logs      LogsConfig      `toml:"logs" envconfig:"logs"`
	Metrics   MetricsConfig   `toml:"metrics" envconfig:"metrics"`
	Storage   StorageConfig   `toml:"storage" envconfig:"storage"`
	Database  DatabaseConfig  `toml:"database" envconfig:"database"`
	Redis     RedisConfig     `toml:"redis" envconfig:"redis"`
	Broker    BrokerConfig    `toml:"broker" envconfig:"broker"`
	WhatsApp  WhatsAppConfig  `toml:"whatsapp" envconfig:"whatsapp"`
	Admin     AdminConfig     `toml:"admin" envconfig:"admin"`
	RateLimit RateLimitConfig `toml:"rate_limit" envconfig:"rate_limit"`
	Catalog   []ServiceConfig `toml:"services" ignored:"true"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"http_port"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"read_timeout"`         // секунды
	WriteTimeout    int `toml:"write_timeout" envconfig:"write_timeout"`       // секунды
	IdleTimeout     int `toml:"idle_timeout" envconfig:"idle_timeout"`         // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level" envconfig:"level"`
	File  string `toml:"file" envconfig:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"enabled"`
	Path        string `toml:"path" envconfig:"path"`
	ServiceName string `toml:"service_name" envconfig:"service_name"`
}

type StorageConfig struct {
	Driver string `toml:"driver" envconfig:"driver"` // jsonfile, redis, postgres
	File   string `toml:"file" envconfig:"file"`     // путь к снапшоту для jsonfile
}

type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"host"`
	Port            int    `toml:"port" envconfig:"port"`
	User            string `toml:"user" envconfig:"user"`
	Password        string `toml:"password" envconfig:"password"`
	DBName          string `toml:"dbname" envconfig:"dbname"`
	SSLMode         string `toml:"sslmode" envconfig:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"conn_max_lifetime"` // секунды
}

type RedisConfig struct {
	Addr     string `toml:"addr" envconfig:"addr"`
	Password string `toml:"password" envconfig:"password"`
	DB       int    `toml:"db" envconfig:"db"`
	Key      string `toml:"key" envconfig:"key"`
}

type BrokerConfig struct {
	URL      string `toml:"url" envconfig:"url"` // пустой URL отключает публикацию в RabbitMQ
	Exchange string `toml:"exchange" envconfig:"exchange"`
}

type WhatsAppConfig struct {
	Destination string `toml:"destination" envconfig:"destination"`
	GatewayURL  string `toml:"gateway_url" envconfig:"gateway_url"` // пустой URL: только ссылка wa.me в логах
	Token       string `toml:"token" envconfig:"token"`
	Timeout     int    `toml:"timeout" envconfig:"timeout"` // секунды
}

type AdminConfig struct {
	Token string `toml:"token" envconfig:"token"`
}

type RateLimitConfig struct {
	PerMinute      int  `toml:"per_minute" envconfig:"per_minute"`
	Burst          int  `toml:"burst" envconfig:"burst"`
	TrustForwarded bool `toml:"trust_forwarded" envconfig:"trust_forwarded"` // доверять X-Forwarded-For (только за прокси)
}

type ServiceConfig struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Price       string `toml:"price"`
	Duration    string `toml:"duration"`
}

// Load читает config.toml, применяет значения по умолчанию и переменные окружения BOOKING_*
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - read %s: %v", ErrRead, path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("%w: Load - decode %s: %v", ErrRead, path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: Load - %v", ErrEnv, err)
	}

	if len(cfg.Catalog) == 0 {
		cfg.Catalog = DefaultCatalog()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "booking-availability",
		},
		Storage: StorageConfig{
			Driver: StorageJSONFile,
			File:   "data/bookings.json",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			Key:  "cleanpro-bookings",
		},
		Broker: BrokerConfig{Exchange: "bookings"},
		WhatsApp: WhatsAppConfig{
			Destination: "555381556144",
			Timeout:     5,
		},
		RateLimit: RateLimitConfig{
			PerMinute: 30,
			Burst:     5,
		},
	}
}

// DefaultCatalog каталог услуг по умолчанию
func DefaultCatalog() []ServiceConfig {
	return []ServiceConfig{
		{
			ID:          "residencial",
			Title:       "Limpeza Residencial",
			Description: "Limpeza completa de casas e apartamentos",
			Price:       "A partir de R$ 150",
			Duration:    "3-4 horas",
		},
		{
			ID:          "comercial",
			Title:       "Limpeza Comercial",
			Description: "Limpeza de escritórios, lojas e espaços comerciais",
			Price:       "A partir de R$ 200",
			Duration:    "4-6 horas",
		},
		{
			ID:          "predial",
			Title:       "Limpeza Predial",
			Description: "Limpeza de áreas comuns de condomínios e prédios",
			Price:       "Sob consulta",
			Duration:    "Variável",
		},
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrValidate, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageJSONFile:
		if strings.TrimSpace(c.Storage.File) == "" {
			return fmt.Errorf("%w: storage.file is required for jsonfile driver", ErrValidate)
		}
	case StorageRedis:
		if c.Redis.Addr == "" || c.Redis.Key == "" {
			return fmt.Errorf("%w: redis.addr and redis.key are required for redis driver", ErrValidate)
		}
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres driver", ErrValidate)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrValidate, c.Storage.Driver)
	}

	if strings.TrimSpace(c.WhatsApp.Destination) == "" {
		return fmt.Errorf("%w: whatsapp.destination is required", ErrValidate)
	}

	if c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("%w: rate_limit.per_minute and rate_limit.burst must be positive", ErrValidate)
	}

	if len(c.Catalog) == 0 {
		return fmt.Errorf("%w: services catalog is empty", ErrValidate)
	}

	seen := make(map[string]struct{}, len(c.Catalog))
	for _, s := range c.Catalog {
		if s.ID == "" || s.Title == "" {
			return fmt.Errorf("%w: service id and title are required", ErrValidate)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate service id %q", ErrValidate, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Services конвертирует каталог в domain модели
func (c *Config) Services() []domain.Service {
	services := make([]domain.Service, 0, len(c.Catalog))
	for _, s := range c.Catalog {
		services = append(services, domain.Service{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Price:       s.Price,
			Duration:    s.Duration,
		})
	}
	return services
}
