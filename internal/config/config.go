package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/rl1809/storefront/internal/pkg/errs"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
}

type ServerConfig struct {
	Addr            string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

type StorageConfig struct {
	// Backend selects the durable store: memory, redis or mysql.
	Backend   string `envconfig:"STORAGE_BACKEND" default:"memory"`
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	MySQLDSN  string `envconfig:"MYSQL_DSN" default:"root:root@tcp(localhost:3306)/storefront?parseTime=true"`
}

type CatalogConfig struct {
	// StrictStock turns the silent clamp-at-zero into an error.
	StrictStock bool `envconfig:"STRICT_STOCK" default:"false"`
}

type CheckoutConfig struct {
	ValidateCountry   bool   `envconfig:"VALIDATE_COUNTRY" default:"true"`
	CountryAPIBaseURL string `envconfig:"COUNTRY_API_BASE_URL" default:"https://restcountries.com/v3.1"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errs.Wrap(err, "process env config")
	}
	return cfg, nil
}
