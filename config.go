package main // import "github.com/tonobo/safesnake"

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load sets defaults, reads battlesnake.json from configDir if present and
// lets BATTLESNAKE_* environment variables override both.
func Load(configDir string) error {
	viper.SetDefault("port", 8080)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")

	viper.SetDefault("snake.apiVersion", "1")
	viper.SetDefault("snake.author", "")
	viper.SetDefault("snake.color", "#888888")
	viper.SetDefault("snake.head", "default")
	viper.SetDefault("snake.tail", "default")
	viper.SetDefault("snake.version", "0.1.0")

	viper.SetEnvPrefix("battlesnake")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("battlesnake")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

func InfoFromConfig() InfoResponse {
	return InfoResponse{
		APIVersion: GetString("snake.apiVersion"),
		Author:     GetString("snake.author"),
		Color:      GetString("snake.color"),
		Head:       GetString("snake.head"),
		Tail:       GetString("snake.tail"),
		Version:    GetString("snake.version"),
	}
}
