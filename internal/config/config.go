package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultBankDataSecret is deliberately unusable in production: Validate
// rejects it there, and main warns whenever it is still in effect.
const DefaultBankDataSecret = "insecure-dev-bank-data-secret"

type Config struct {
	Addr           string
	DatabaseURL    string
	Environment    string
	JWTSecret      string
	BankDataSecret string
	RunMigrations  bool
	MigrationsDir  string

	CompanyName        string
	CompanyID          string
	OriginRouting      string
	DestinationRouting string
	DestinationName    string
	DebtorName         string
	DebtorIBAN         string
	DebtorBIC          string
	ACHPadBlocks       bool
}

func Load() Config {
	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Environment:    getEnv("APP_ENV", "development"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		BankDataSecret: getEnv("BANK_DATA_SECRET", DefaultBankDataSecret),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),

		CompanyName:        getEnv("COMPANY_NAME", "COMPANY PAYROLL"),
		CompanyID:          getEnv("COMPANY_ID", ""),
		OriginRouting:      getEnv("ORIGIN_ROUTING", ""),
		DestinationRouting: getEnv("DESTINATION_ROUTING", ""),
		DestinationName:    getEnv("DESTINATION_NAME", ""),
		DebtorName:         getEnv("SEPA_DEBTOR_NAME", ""),
		DebtorIBAN:         getEnv("SEPA_DEBTOR_IBAN", ""),
		DebtorBIC:          getEnv("SEPA_DEBTOR_BIC", ""),
		ACHPadBlocks:       getEnvBool("ACH_PAD_BLOCKS", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.BankDataSecret) == "" {
		return fmt.Errorf("BANK_DATA_SECRET must not be empty")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.BankDataSecret == DefaultBankDataSecret {
			return fmt.Errorf("BANK_DATA_SECRET must be overridden in production")
		}
	}
	return nil
}
