package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Gemini GeminiConfig
	OpenAI OpenAIConfig
	Sink   SinkConfig
	Redis  RedisConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// GeminiConfig configures the vision extraction backend
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAIConfig configures the quiz synthesis backend
type OpenAIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// SinkConfig selects where intermediate artifacts go: "file", "redis" or
// "none". The sink is debug tooling; generation works with any of them.
type SinkConfig struct {
	Type string
	Dir  string
	TTL  time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("server.body_limit_mb", 10)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("gemini.model", "gemini-2.5-pro")
	viper.SetDefault("gemini.timeout", 60)
	viper.SetDefault("openai.model", "gpt-4o")
	viper.SetDefault("openai.timeout", 60)
	viper.SetDefault("sink.type", "none")
	viper.SetDefault("sink.dir", "./artifacts")
	viper.SetDefault("sink.ttl", "24h")

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; defaults plus env are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit_mb") * 1024 * 1024,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Gemini: GeminiConfig{
			APIKey:  viper.GetString("gemini.api_key"),
			Model:   viper.GetString("gemini.model"),
			Timeout: viper.GetDuration("gemini.timeout") * time.Second,
		},
		OpenAI: OpenAIConfig{
			APIKey:  viper.GetString("openai.api_key"),
			Model:   viper.GetString("openai.model"),
			Timeout: viper.GetDuration("openai.timeout") * time.Second,
		},
		Sink: SinkConfig{
			Type: viper.GetString("sink.type"),
			Dir:  viper.GetString("sink.dir"),
			TTL:  viper.GetDuration("sink.ttl"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
	}

	// Secrets and deployment addresses come from the environment when set
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.OpenAI.APIKey = key
	}
	if address := os.Getenv("REDIS_ADDRESS"); address != "" {
		config.Redis.Address = address
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}

	if config.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured (set GEMINI_API_KEY)")
	}
	if config.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai API key is not configured (set OPENAI_API_KEY)")
	}

	return config, nil
}
