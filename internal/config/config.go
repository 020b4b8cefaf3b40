package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Database DatabaseConfig
	Ton      TonConfig
	Reward   RewardConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// TonConfig holds TON Connect bridge settings
type TonConfig struct {
	BridgeURL   string
	ManifestURL string
}

// RewardConfig describes the reward transfer sent to claimants
type RewardConfig struct {
	Address string // destination account, raw or user-friendly form
	Amount  string // nanotons
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "memegiver"),
			User:     getEnv("DB_USER", "memegiver"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Ton: TonConfig{
			BridgeURL:   getEnv("TC_BRIDGE_URL", "https://bridge.tonapi.io/bridge"),
			ManifestURL: os.Getenv("TC_MANIFEST_URL"),
		},
		Reward: RewardConfig{
			Address: os.Getenv("REWARD_ADDRESS"),
			Amount:  getEnv("REWARD_AMOUNT", "1000000"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.Ton.ManifestURL == "" {
		return nil, fmt.Errorf("TC_MANIFEST_URL is required")
	}
	if cfg.Reward.Address == "" {
		return nil, fmt.Errorf("REWARD_ADDRESS is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
