package config

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Company   CompanyConfig
	Sales     SalesConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// CompanyConfig is the issuing business identity printed on receipts
type CompanyConfig struct {
	Name    string
	Address string
	Phone   string
	TaxID   string
}

type SalesConfig struct {
	TaxRate  decimal.Decimal
	Currency string
}

type PrinterConfig struct {
	Type          string // "spool" or "none"
	SpoolDir      string
	WidthMm       int
	Thermal       bool
	FallbackDelay time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "lavanderia-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("COMPANY_NAME", "Lavandería La Burbuja")
	viper.SetDefault("COMPANY_ADDRESS", "Av. Juárez 123, Centro")
	viper.SetDefault("COMPANY_PHONE", "+52 222 000 0000")
	viper.SetDefault("COMPANY_TAX_ID", "")
	viper.SetDefault("SALES_TAX_RATE", 0.16)
	viper.SetDefault("SALES_CURRENCY", "$")
	viper.SetDefault("PRINTER_TYPE", "spool")
	viper.SetDefault("PRINTER_SPOOL_DIR", "./spool")
	viper.SetDefault("PRINTER_WIDTH_MM", 58)
	viper.SetDefault("PRINTER_THERMAL", true)
	viper.SetDefault("PRINTER_FALLBACK_MS", 1500)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Company: CompanyConfig{
			Name:    viper.GetString("COMPANY_NAME"),
			Address: viper.GetString("COMPANY_ADDRESS"),
			Phone:   viper.GetString("COMPANY_PHONE"),
			TaxID:   viper.GetString("COMPANY_TAX_ID"),
		},
		Sales: SalesConfig{
			TaxRate:  decimal.NewFromFloat(viper.GetFloat64("SALES_TAX_RATE")),
			Currency: viper.GetString("SALES_CURRENCY"),
		},
		Printer: PrinterConfig{
			Type:          viper.GetString("PRINTER_TYPE"),
			SpoolDir:      viper.GetString("PRINTER_SPOOL_DIR"),
			WidthMm:       viper.GetInt("PRINTER_WIDTH_MM"),
			Thermal:       viper.GetBool("PRINTER_THERMAL"),
			FallbackDelay: time.Duration(viper.GetInt("PRINTER_FALLBACK_MS")) * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
