package config

import (
	"os"

	"github.com/christoffels/menu/internal/enum"
)

type Config struct {
	// AdminUsername routes a login to the admin role. Matching is
	// case-insensitive.
	AdminUsername string

	// AdminPasswordHash is an optional bcrypt hash of the admin
	// password. Empty disables the password check entirely.
	AdminPasswordHash string

	// DuplicatePolicy selects how the food catalog detects duplicates
	// on add: enum.DuplicatePolicyNameAndCourse or NameOnly.
	DuplicatePolicy string

	// CurrencySymbol is a display-only prefix for prices.
	CurrencySymbol string
}

func Load() *Config {
	return &Config{
		AdminUsername:     getEnv("ADMIN_USERNAME", "chef"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		DuplicatePolicy:   getEnv("MENU_DUPLICATE_POLICY", enum.DuplicatePolicyNameAndCourse),
		CurrencySymbol:    getEnv("CURRENCY_SYMBOL", "R"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
