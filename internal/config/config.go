package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Gemini     Gemini     `yaml:"gemini"`
	Redis      Redis      `yaml:"redis"`
}

type HTTPServer struct {
	Address string `yaml:"address" env-default:"localhost:8081"`
	// Generation requests block on the provider, so the write timeout has
	// to outlive the Gemini timeout.
	Timeout     time.Duration `yaml:"timeout" env-default:"200s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Gemini struct {
	APIKey  string        `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model   string        `yaml:"model" env-default:"gemini-2.5-flash"`
	BaseURL string        `yaml:"base_url" env-default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `yaml:"timeout" env-default:"180s"`
}

type Redis struct {
	Addr     string `yaml:"addr" env-default:"localhost:6379"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" env-default:"0"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Can not read config file %s", err)
	}

	// No content generation is possible without a provider credential,
	// refuse to start instead of degrading later.
	if cfg.Gemini.APIKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	return &cfg
}
