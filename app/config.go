package app

import (
	"github.com/joefazee/fairway/app/database"
	"github.com/joefazee/fairway/internal/nexus"
)

type Config struct {
	DB database.Config

	AppHost string `env:"APP_HOST" default:"localhost"`
	AppPort string `env:"APP_PORT" default:"8080"`
	Env     string `env:"APP_ENV" default:"development"`

	CacheBackend string `env:"CACHE_BACKEND" default:"memory"`
	RedisAddr    string `env:"REDIS_ADDR"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
