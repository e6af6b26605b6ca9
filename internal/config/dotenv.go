package config

import "github.com/joho/godotenv"

// dotenvFiles in priority order. godotenv never overwrites keys that are
// already set, so process env wins over .env.local, which wins over .env.
var dotenvFiles = []string{".env.local", ".env"}

// LoadDotEnv layers whichever .env files exist into the process environment
// and returns the names of the files actually loaded
func LoadDotEnv() []string {
	loaded := make([]string, 0, len(dotenvFiles))
	for _, name := range dotenvFiles {
		if err := godotenv.Load(name); err == nil {
			loaded = append(loaded, name)
		}
	}
	return loaded
}
