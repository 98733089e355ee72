package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type OpenAI struct {
	APIKey string `mapstructure:"apiKey"`
	Model  string `mapstructure:"model"`
}

type Places struct {
	APIKey string `mapstructure:"apiKey"`
}

type Server struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// History configures the optional on-disk chat history. When Path is empty
// conversations live only in memory for the lifetime of the session.
type History struct {
	Path    string `mapstructure:"path"`
	Session string `mapstructure:"session"`
}

type Config struct {
	OpenAI  OpenAI  `mapstructure:"openai"`
	Places  Places  `mapstructure:"places"`
	Server  Server  `mapstructure:"server"`
	History History `mapstructure:"history"`
}

// LoadConfig reads ./config/config.yaml when present and overlays environment
// variables. Precedence, lowest to highest: defaults, config file, environment.
// Keys posted through the UI override all of these at the app layer.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile("./config/config.yaml")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("openai.model", "gpt-4o")
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("history.session", "find-my-dinner")

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat("./config/config.yaml"); statErr == nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.OpenAI.APIKey == "" {
		config.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if config.Places.APIKey == "" {
		config.Places.APIKey = os.Getenv("GOOGLE_PLACES_API_KEY")
	}

	return &config, nil
}
