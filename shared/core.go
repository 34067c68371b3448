package shared

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

// InitLogger initializes the logger with a tint handler.
// tint adds colors to the log output - not required, but it makes
// the logs easier to read.
func InitLogger() {
	w := os.Stderr

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))
}

// LoadConfig reads a .env file if present and registers defaults for
// everything that is tunable. Secrets (GEMINI_API_KEY, POSTGRES_PASSWORD)
// only ever come from the environment.
func LoadConfig() error {
	err := godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.SetDefault("SUPPLIER_SEED_FILE", "assets/suppliers.csv")
	viper.SetDefault("COMPLIANCE_SEED_FILE", "assets/compliance_records.csv")

	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("INSIGHTS_TIMEOUT", 30*time.Second)

	viper.AutomaticEnv()

	return err
}

var V = validator.New()
