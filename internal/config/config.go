// Package config loads settings from the .env file at the repository root.
// Keys are stored under an environment prefix (DEV_POSTGRES_HOST,
// TEST_POSTGRES_HOST, ...) so dev and test share one file; Get strips the
// prefix back off.
package config

import (
	"os"
	"strings"

	"github.com/drinkwithme-lk/server/pkg/path"
	"github.com/joho/godotenv"
)

// envKeys are the per-environment settings the server reads.
var envKeys = []string{
	"POSTGRES_DB_NAME",
	"POSTGRES_USER",
	"POSTGRES_PASSWORD",
	"POSTGRES_HOST",
	"POSTGRES_PORT",
	"REDIS_HOST",
	"REDIS_PORT",
	"JWT_SECRET",
}

type IConfig interface {
	Get(key string) string
}

type Config struct {
	Key map[string]string
	Env string
}

func NewConfig(env string) (*Config, error) {
	env = strings.ToUpper(env)

	basePath, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := path.FindRoot(basePath, ".env", false)
	if err != nil {
		return nil, err
	}

	if err := godotenv.Load(root + "/.env"); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(envKeys)+1)
	for _, key := range envKeys {
		values[key] = getEnv(env+"_"+key, "")
	}
	// The listen port is shared across environments.
	values["PORT"] = getEnv("PORT", "8080")

	return &Config{
		Key: values,
		Env: env,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) Get(key string) string {
	return c.Key[key]
}
