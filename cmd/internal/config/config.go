package config

import (
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/zhukovvlad/estimator-go/cmd/pkg/logging"
)

type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
	Source string `yaml:"source" env:"DB_SOURCE" env-required:"true"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"12h"`
}

// RedisConfig - кэш поиска команд. Пустой адрес означает in-memory кэш.
type RedisConfig struct {
	Address   string        `yaml:"address" env:"REDIS_ADDRESS" env-default:""`
	Password  string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB        int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	SearchTTL time.Duration `yaml:"search_ttl" env-default:"5m"`
}

type UploadConfig struct {
	MaxMemoryMB      int64   `yaml:"max_memory_mb" env-default:"10"`
	DefaultBatchSize int     `yaml:"default_batch_size" env-default:"50"`
	RatePerSecond    float64 `yaml:"rate_per_second" env-default:"2"`
	Burst            int     `yaml:"burst" env-default:"5"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

type Config struct {
	IsDebug *bool `yaml:"is_debug" env-required:"true"`
	Listen  struct {
		Type   string `yaml:"type" env-default:"port"`
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"8080"`
	} `yaml:"listen"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	Upload   UploadConfig   `yaml:"upload"`
	CORS     CORSConfig     `yaml:"cors"`
}

// Debug безопасно разыменовывает IsDebug.
func (c *Config) Debug() bool {
	return c.IsDebug != nil && *c.IsDebug
}

var instance *Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		logger := logging.GetLogger()
		logger.Info("read application configuration")
		instance = &Config{}
		if err := cleanenv.ReadConfig("./cmd/config/config.yml", instance); err != nil {
			help, _ := cleanenv.GetDescription(instance, nil)
			logger.Info(help)
			logger.Fatal(err)
		}
	})

	return instance
}
