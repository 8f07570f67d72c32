package config

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Storage selects where the review overlay is persisted.
type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"redis"`
	OverlayKey string `yaml:"overlay_key" env:"STORAGE_OVERLAY_KEY" env-default:"nahida_reviews"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:"default"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Security struct {
	SessionKey     string        `yaml:"SESSION_KEY" env:"SESSION_KEY" env-required:"true"`
	SessionTTL     time.Duration `yaml:"SESSION_TTL" env:"SESSION_TTL" env-default:"24h"`
	SecureCookie   bool          `yaml:"SECURE_COOKIE" env:"SECURE_COOKIE" env-default:"true"`
	SweepInterval  time.Duration `yaml:"SWEEP_INTERVAL" env:"SESSION_SWEEP_INTERVAL" env-default:"10m"`
	MaxUploadBytes int64         `yaml:"MAX_UPLOAD_BYTES" env:"MAX_UPLOAD_BYTES" env-default:"10485760"`
}

type Gemini struct {
	APIKey  string `yaml:"API_KEY" env:"GEMINI_API_KEY"`
	BaseURL string `yaml:"BASE_URL" env:"GEMINI_BASE_URL"`
	Model   string `yaml:"MODEL" env:"GEMINI_MODEL" env-default:"gemini-3-flash-preview"`
}

type Breaker struct {
	MaxFailures uint32        `yaml:"MAX_FAILURES" env:"BREAKER_MAX_FAILURES" env-default:"5"`
	OpenTimeout time.Duration `yaml:"OPEN_TIMEOUT" env:"BREAKER_OPEN_TIMEOUT" env-default:"30s"`
}

type SendGrid struct {
	APIKey      string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail   string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL"`
	FromName    string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Nahida's Makeover"`
	StudioEmail string `yaml:"STUDIO_EMAIL" env:"SENDGRID_STUDIO_EMAIL"`
}

// Enabled reports whether contact messages should also be emailed to the studio.
func (s SendGrid) Enabled() bool {
	return s.APIKey != "" && s.StudioEmail != "" && s.FromEmail != ""
}

type Handoff struct {
	WhatsAppURL string `yaml:"WHATSAPP_URL" env:"HANDOFF_WHATSAPP_URL" env-default:"https://wa.me/message/KUQBNJZDF62CP1"`
	Currency    string `yaml:"CURRENCY_SYMBOL" env:"HANDOFF_CURRENCY_SYMBOL" env-default:"$"`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"nahida-boutique"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:"localhost:4318"`
	Insecure         bool    `yaml:"INSECURE" env:"OTEL_INSECURE" env-default:"true"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer   `yaml:"http_server"`
	Storage      Storage      `yaml:"storage"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Security     Security     `yaml:"security"`
	Gemini       Gemini       `yaml:"gemini"`
	Breaker      Breaker      `yaml:"breaker"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Handoff      Handoff      `yaml:"handoff"`
	Otel         Otel         `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the YAML config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverRedis:
	case StorageDriverPostgres:
		if c.Database.User == "" || c.Database.Name == "" {
			return fmt.Errorf("postgres storage requires PG_USER and PG_DBNAME")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User, d.Password, net.JoinHostPort(d.Host, d.Port), d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, net.JoinHostPort(r.Host, r.Port), r.DB)
}
