package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string `mapstructure:"PORT"`
	Env     string `mapstructure:"ENV"`
	AppName string `mapstructure:"APP_NAME"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Vacío = repos in-memory (modo dev).
	DBDSN string `mapstructure:"DB_DSN"`

	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxIdleTime time.Duration `mapstructure:"DB_CONN_MAX_IDLE_TIME"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`

	ScheduleHorizon time.Duration `mapstructure:"SCHEDULE_HORIZON"`
	LateGrace       time.Duration `mapstructure:"LATE_GRACE"`
	WatchInterval   time.Duration `mapstructure:"WATCH_INTERVAL"`

	// Vacío = sin sink de notificaciones.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	LateStream    string `mapstructure:"LATE_STREAM"`

	// Vacío = no se validan referencias a mascotas/clientes/staff.
	DirectoryBaseURL string        `mapstructure:"DIRECTORY_BASE_URL"`
	DirectoryAPIKey  string        `mapstructure:"DIRECTORY_API_KEY"`
	DirectoryTimeout time.Duration `mapstructure:"DIRECTORY_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV", "APP_NAME",
	"LOG_LEVEL", "LOG_FORMAT",
	"DB_DSN", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_IDLE_TIME", "DB_CONN_MAX_LIFETIME",
	"SCHEDULE_HORIZON", "LATE_GRACE", "WATCH_INTERVAL",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "LATE_STREAM",
	"DIRECTORY_BASE_URL", "DIRECTORY_API_KEY", "DIRECTORY_TIMEOUT",
}

// Load lee env vars (y un .env opcional).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "pet-hospitalization")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 5*time.Minute)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("SCHEDULE_HORIZON", 7*24*time.Hour)
	v.SetDefault("LATE_GRACE", 30*time.Minute)
	v.SetDefault("WATCH_INTERVAL", time.Minute)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LATE_STREAM", "hospitalization:late")
	v.SetDefault("DIRECTORY_TIMEOUT", 5*time.Second)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ScheduleHorizon <= 0 {
		return fmt.Errorf("SCHEDULE_HORIZON must be positive, got %s", c.ScheduleHorizon)
	}
	if c.LateGrace <= 0 {
		return fmt.Errorf("LATE_GRACE must be positive, got %s", c.LateGrace)
	}
	if c.DBMaxOpenConns < 0 || c.DBMaxIdleConns < 0 {
		return fmt.Errorf("DB pool sizes must not be negative")
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("WATCH_INTERVAL must be positive, got %s", c.WatchInterval)
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
