package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFiles are loaded in order when present. godotenv never overwrites a
// variable that is already set, so .env.local must come first to take
// precedence over .env. The process environment beats both.
var envFiles = []string{".env.local", ".env"}

func loadEnvFiles() error {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return err
		}
	}
	return nil
}
