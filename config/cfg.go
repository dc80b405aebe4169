package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	httpapi "github.com/yasunstudio/toko-oleh-oleh-sub000/internal/api/http"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/report"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/internal/store"
	"github.com/yasunstudio/toko-oleh-oleh-sub000/log"
)

// Config represents the global configuration for the service.
type Config struct {
	DB      store.Config   `mapstructure:"mysql"`
	Logger  log.Config     `mapstructure:"logger"`
	HTTP    httpapi.Config `mapstructure:"http"`
	Reports report.Config  `mapstructure:"reports"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/toko-oleh-oleh-reports")
		viper.AddConfigPath("/etc/toko-oleh-oleh-reports")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Construct the MySQL DSN from individual env vars if it is not set.
	if config.DB.DSN == "" {
		host := os.Getenv("MYSQL_HOST")
		port := os.Getenv("MYSQL_PORT")
		user := os.Getenv("MYSQL_USER")
		password := os.Getenv("MYSQL_PASSWORD")
		database := os.Getenv("MYSQL_DATABASE")

		if host != "" {
			if port == "" {
				port = "3306"
			}
			if user != "" && password != "" && database != "" {
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true",
					user, password, host, port, database)
			}
		}
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys. This allows using
// both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN).
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Reports
	viper.BindEnv("reports.default_period_days", "REPORTS_DEFAULT_PERIOD_DAYS")
	viper.BindEnv("reports.top_products", "REPORTS_TOP_PRODUCTS")
	viper.BindEnv("reports.top_customers", "REPORTS_TOP_CUSTOMERS")
}
