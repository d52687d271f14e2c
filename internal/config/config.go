package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address       string        `env:"RUN_ADDRESS" envDefault:":8080"`
	LogoFile      string        `env:"LOGO_FILE" envDefault:"angel_logo.png"`
	RenderTimeout time.Duration `env:"RENDER_TIMEOUT" envDefault:"30s"`
	MaxRenders    int           `env:"MAX_RENDERS" envDefault:"2"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	err := env.Parse(&cfg)

	return &cfg, err
}
