package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. Locale and currency defaults are
// explicit fields injected into services at construction; nothing reads
// them ambiently.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret string

	// Localization
	AvailableLocales []string // ordered; slug generation follows this order
	DefaultLocale    string

	// Display conversion defaults
	BaseCurrencyCode string // fallback when no rate row is flagged as base
	DefaultAreaUnit  string

	// Rate limit for the public API, in ulule/limiter notation (e.g. "300-H").
	PublicRateLimit string

	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("AVAILABLE_LOCALES", "en,ar")
	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("BASE_CURRENCY_CODE", "AED")
	viper.SetDefault("DEFAULT_AREA_UNIT", "sqm")
	viper.SetDefault("PUBLIC_RATE_LIMIT", "300-H")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET not set in production. Using default insecure key.")
	}

	cfg.AvailableLocales = splitCSV(viper.GetString("AVAILABLE_LOCALES"))
	if len(cfg.AvailableLocales) == 0 {
		cfg.AvailableLocales = []string{"en", "ar"}
		log.Println("Warning: AVAILABLE_LOCALES empty. Defaulting to en,ar.")
	}

	cfg.DefaultLocale = viper.GetString("DEFAULT_LOCALE")
	if !contains(cfg.AvailableLocales, cfg.DefaultLocale) {
		log.Printf("Warning: DEFAULT_LOCALE %q not in AVAILABLE_LOCALES. Defaulting to %q.\n", cfg.DefaultLocale, cfg.AvailableLocales[0])
		cfg.DefaultLocale = cfg.AvailableLocales[0]
	}

	cfg.BaseCurrencyCode = strings.ToUpper(viper.GetString("BASE_CURRENCY_CODE"))
	cfg.DefaultAreaUnit = strings.ToLower(viper.GetString("DEFAULT_AREA_UNIT"))
	cfg.PublicRateLimit = viper.GetString("PUBLIC_RATE_LIMIT")
	cfg.CORSAllowOrigins = splitCSV(viper.GetString("CORS_ALLOW_ORIGINS"))

	return cfg, nil
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
