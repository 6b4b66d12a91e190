package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// StoreConfig is the retail-store profile applied on first start. Later
// edits live in the settings store, not here.
type StoreConfig struct {
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	Currency string `yaml:"currency"`
	TaxRate  string `yaml:"tax_rate"` // dimensionless fraction, e.g. "0.10"
}

type Config struct {
	Port      string      `yaml:"port"`
	DBDSN     string      `yaml:"db_dsn"`
	RedisAddr string      `yaml:"redis_addr"`
	LogFile   string      `yaml:"log_file"`
	Store     StoreConfig `yaml:"store"`
}

// Load reads the optional YAML config file, then lets environment variables
// override it, then fills defaults.
func Load() Config {
	cfg := Config{}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "./campos.yaml"
	}
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("[config] ignoring malformed %s: %v", path, err)
			cfg = Config{}
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.DBDSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBDSN == "" {
		cfg.DBDSN = "campos.db" // sqlite file in project root
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "CamPOS Store"
	}
	if cfg.Store.Currency == "" {
		cfg.Store.Currency = "IDR"
	}
	if cfg.Store.TaxRate == "" {
		cfg.Store.TaxRate = "0.10"
	}

	log.Printf("[config] PORT=%s DB_DSN=%s REDIS_ADDR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.RedisAddr, cfg.LogFile)
	return cfg
}
