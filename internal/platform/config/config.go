package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTIssuer          string
	RateLimit          string // ulule limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
	MigrationsPath     string

	// Ledger
	LedgerPageSize int

	// Display formatting, applied at the HTTP and CLI boundary only
	DisplayDecimalPlaces int
	DisplayDateFormat    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "ledger-core")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("LEDGER_PAGE_SIZE", 200)
	viper.SetDefault("DISPLAY_DECIMAL_PLACES", 2)
	viper.SetDefault("DISPLAY_DATE_FORMAT", "2006-01-02")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.LedgerPageSize = viper.GetInt("LEDGER_PAGE_SIZE")
	if cfg.LedgerPageSize <= 0 {
		log.Printf("Warning: Invalid value for LEDGER_PAGE_SIZE (%d). Defaulting to 200.\n", cfg.LedgerPageSize)
		cfg.LedgerPageSize = 200
	}

	cfg.DisplayDecimalPlaces = viper.GetInt("DISPLAY_DECIMAL_PLACES")
	if cfg.DisplayDecimalPlaces < 0 {
		log.Printf("Warning: Invalid value for DISPLAY_DECIMAL_PLACES (%d). Defaulting to 2.\n", cfg.DisplayDecimalPlaces)
		cfg.DisplayDecimalPlaces = 2
	}
	cfg.DisplayDateFormat = viper.GetString("DISPLAY_DATE_FORMAT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}
