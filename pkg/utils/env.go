package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadEnv reads a .env file from the given directory (when present) and
// primes viper with the process environment.
func LoadEnv(path string) {
	envFile := filepath.Join(path, ".env")
	if err := godotenv.Load(envFile); err != nil {
		logrus.Debugf("no .env file loaded from %s: %v", envFile, err)
	}
	viper.AutomaticEnv()
}
