package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Backup   BackupConfig   `mapstructure:"backup"`
	ID       IDConfig       `mapstructure:"id"`
}

type ServerConfig struct {
	IP             string        `mapstructure:"ip"`
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
	Mode           string        `mapstructure:"mode"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// StorageConfig selects the record store backend.
// Driver is one of memory, mysql, postgres, sqlite, redis.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type DatabaseConfig struct {
	Host                  string        `mapstructure:"host"`
	Port                  int           `mapstructure:"port"`
	Database              string        `mapstructure:"database"`
	User                  string        `mapstructure:"user"`
	Password              string        `mapstructure:"password"`
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Relay    bool   `mapstructure:"relay"`
}

type BackupConfig struct {
	Schedule string `mapstructure:"schedule"`
	Dir      string `mapstructure:"dir"`
	Keep     int    `mapstructure:"keep"`
}

type IDConfig struct {
	WorkerID          uint16 `mapstructure:"worker_id"`
	WorkerIDBitLength byte   `mapstructure:"worker_id_bit_length"`
	BaseTime          int64  `mapstructure:"base_time"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.ip", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.max_header_bytes", 1048576)
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("storage.driver", "sqlite")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "priorities")
	v.SetDefault("database.path", "data/priorities.db")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_idle_connections", 5)
	v.SetDefault("database.connection_max_lifetime", "1h")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.relay", false)

	v.SetDefault("backup.schedule", "")
	v.SetDefault("backup.dir", "backups")
	v.SetDefault("backup.keep", 14)

	v.SetDefault("id.worker_id", 1)
	v.SetDefault("id.worker_id_bit_length", 6)
	v.SetDefault("id.base_time", 1755937966000)
}

// Load reads the yaml file at configPath. An empty path means defaults plus
// environment only. Values from a local .env file are exported first so the
// PRIORITIES_* overrides can live there.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("priorities")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}
