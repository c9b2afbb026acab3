/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// DefaultRequestTimeout bounds a single request when REQUEST_TIMEOUT is unset.
const DefaultRequestTimeout = 30 * time.Second

var (
	// ErrInvalidConfig is raised when configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

type TestConfig struct {
	// BaseURL is the API under test.  When empty, suites start an
	// in-process fake server instead.
	BaseURL         string        `env:"API_BASE_URL"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT, default=30s"`
	TestTimeout     time.Duration `env:"TEST_TIMEOUT, default=5m"`
	LogLevel        string        `env:"LOG_LEVEL, default=info"`
	LogPretty       bool          `env:"LOG_PRETTY, default=false"`
	LogRequests     bool          `env:"LOG_REQUESTS, default=false"`
	LogResponses    bool          `env:"LOG_RESPONSES, default=false"`
	ValidateSchemas bool          `env:"VALIDATE_SCHEMAS, default=false"`
	StrictDecoding  bool          `env:"STRICT_DECODING, default=false"`
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if configuration values are malformed.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	return LoadTestConfigWith(context.Background(), envconfig.OsLookuper())
}

// LoadTestConfigWith loads configuration from an arbitrary lookuper.
func LoadTestConfigWith(ctx context.Context, lookuper envconfig.Lookuper) (*TestConfig, error) {
	config := &TestConfig{}

	envConfig := &envconfig.Config{
		Target:   config,
		Lookuper: lookuper,
	}

	if err := envconfig.ProcessWith(ctx, envConfig); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	if path := os.Getenv("ENV_FILE"); path != "" {
		envPaths = []string{path}
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateConfig checks values that envconfig cannot.
func validateConfig(config *TestConfig) error {
	if config.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrInvalidConfig)
	}

	if config.BaseURL == "" {
		return nil
	}

	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: API_BASE_URL: %w", ErrInvalidConfig, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: API_BASE_URL must be an absolute http(s) URL, got %q", ErrInvalidConfig, config.BaseURL)
	}

	return nil
}
