package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	setTestEnv := func() {
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "127.0.0.1")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("JWT_SECRET", "super_secret_jwt_key")
		os.Setenv("ADMIN_EMAIL", "dono@pizzaria.com")
	}

	cleanupTestEnv := func() {
		vars := []string{
			"APP_PORT", "APP_HOST", "LOG_LEVEL", "JWT_SECRET", "ADMIN_EMAIL", "ADMIN_PASSWORD",
		}
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		setTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "127.0.0.1" {
			t.Errorf("Host = %s, expected 127.0.0.1", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.JWTSecret != "super_secret_jwt_key" {
			t.Errorf("JWTSecret = %s, expected super_secret_jwt_key", config.JWTSecret)
		}
		if config.AdminEmail != "dono@pizzaria.com" {
			t.Errorf("AdminEmail = %s, expected dono@pizzaria.com", config.AdminEmail)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		if config.Port != 3000 {
			t.Errorf("Port = %d, expected default 3000", config.Port)
		}
		if config.AdminEmail != "admin@pizzaria.com" {
			t.Errorf("AdminEmail = %s, expected default admin@pizzaria.com", config.AdminEmail)
		}
		if config.JWTSecret == "" {
			t.Error("JWTSecret should fall back to the development secret")
		}
	})
}
