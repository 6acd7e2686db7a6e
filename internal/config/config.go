package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort         string `env:"HTTP_PORT" envDefault:"8080"`
	LLMAPIKey        string `env:"LLM_API_KEY,required"`
	LLMBaseURL       string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel         string `env:"LLM_MODEL" envDefault:"gpt-3.5-turbo"`
	LLMInsightsModel string `env:"LLM_INSIGHTS_MODEL" envDefault:"gpt-4"`
	ShareBaseURL     string `env:"SHARE_BASE_URL" envDefault:"https://mosaicmind.vercel.app"`
	RedisAddr        string `env:"REDIS_ADDR"`
	RedisPassword    string `env:"REDIS_PASSWORD"`
	RedisDB          int    `env:"REDIS_DB" envDefault:"0"`
	RateLimitPerMin  int    `env:"RATE_LIMIT_PER_MIN" envDefault:"6"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
