package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

// setRequiredEnv sets every required variable and returns a cleanup function
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	t.Setenv("TC_MANIFEST_URL", "https://example.com/tonconnect-manifest.json")
	t.Setenv("REWARD_ADDRESS", "0:0000000000000000000000000000000000000000000000000000000000000000")
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("TC_BRIDGE_URL", "")
	t.Setenv("REWARD_AMOUNT", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "memegiver", cfg.Database.Name)
	assert.Equal(t, "memegiver", cfg.Database.User)
	assert.Equal(t, "https://bridge.tonapi.io/bridge", cfg.Ton.BridgeURL)
	assert.Equal(t, "1000000", cfg.Reward.Amount)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		unset    string
		expected string
	}{
		{
			name:     "missing bot token",
			unset:    "BOT_TOKEN",
			expected: "BOT_TOKEN",
		},
		{
			name:     "missing db password",
			unset:    "DB_PASSWORD",
			expected: "DB_PASSWORD",
		},
		{
			name:     "missing manifest url",
			unset:    "TC_MANIFEST_URL",
			expected: "TC_MANIFEST_URL",
		},
		{
			name:     "missing reward address",
			unset:    "REWARD_ADDRESS",
			expected: "REWARD_ADDRESS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}
