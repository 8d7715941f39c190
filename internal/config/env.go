package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; the first one that loads wins.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from .env/.env.local files.
// Existing process environment variables are not overwritten.
func loadEnvFile() error {
	for _, envPath := range envFiles {
		err := godotenv.Load(envPath)
		if err == nil {
			slog.Debug("Loaded environment variables", slog.String("file", envPath))
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return errors.New("no .env file found")
}
