package config

import (
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders; handlers never
// read the environment at call time.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	// Catalog process.
	CatalogVersion string `envconfig:"CATALOG_VERSION" default:"v1"`

	// Gateway process.
	CatalogURL     string        `envconfig:"CATALOG_URL" default:"http://catalog:8080"`
	CatalogTimeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`

	// Load generator process.
	GatewayURL      string        `envconfig:"GATEWAY_URL" default:"http://gateway:8080"`
	LoadgenInterval time.Duration `envconfig:"LOADGEN_INTERVAL" default:"1s"`

	// Pod is the runtime host/container identifier, resolved at startup.
	// Deliberately not environment-configurable.
	Pod string `ignored:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	cfg.Pod = podName()
	return cfg, nil
}

func podName() string {
	host, err := os.Hostname()
	if err != nil || strings.TrimSpace(host) == "" {
		return "unknown"
	}
	return host
}
