package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Salesforce     Salesforce     `mapstructure:",squash"`
	GoogleSheets   GoogleSheets   `mapstructure:",squash"`
	QuickBooks     QuickBooks     `mapstructure:",squash"`
	SalesforceSync SalesforceSync `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Salesforce struct {
	Username      string `mapstructure:"salesforce_username"`
	Password      string `mapstructure:"salesforce_password"`
	SecurityToken string `mapstructure:"salesforce_security_token"`
	Domain        string `mapstructure:"salesforce_domain"`
}

type GoogleSheets struct {
	SheetID          string `mapstructure:"google_sheet_id"`
	CredentialsFile  string `mapstructure:"google_application_credentials"`
	CredentialsJSON  string `mapstructure:"google_sheets_credentials_json"`
	ARRExportRange   string `mapstructure:"google_sheet_arr_export_range"`
	ExportSheetTitle string `mapstructure:"google_sheet_export_title_prefix"`
}

type QuickBooks struct {
	ClientID     string `mapstructure:"qb_client_id"`
	ClientSecret string `mapstructure:"qb_client_secret"`
	RealmID      string `mapstructure:"qb_realm_id"`
	RefreshToken string `mapstructure:"qb_refresh_token"`
	Sandbox      bool   `mapstructure:"qb_sandbox"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	AppPassword string `mapstructure:"app_password"`
}

// SalesforceSync configures the background sync and EOD snapshot jobs.
// All trigger times are evaluated in Timezone (the business operates on US Eastern time).
type SalesforceSync struct {
	Enabled             bool   `mapstructure:"salesforce_sync_enabled"`
	PollIntervalSeconds int    `mapstructure:"salesforce_sync_poll_interval_seconds"`
	Timezone            string `mapstructure:"salesforce_sync_timezone"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cfo_copilot")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SALESFORCE_USERNAME", "")
	viper.SetDefault("SALESFORCE_PASSWORD", "")
	viper.SetDefault("SALESFORCE_SECURITY_TOKEN", "")
	viper.SetDefault("SALESFORCE_DOMAIN", "login") // "login" (production) or "test" (sandbox)

	viper.SetDefault("GOOGLE_SHEET_ID", "")
	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "")
	viper.SetDefault("GOOGLE_SHEETS_CREDENTIALS_JSON", "")
	viper.SetDefault("GOOGLE_SHEET_ARR_EXPORT_RANGE", "ARR!A1:Z200")
	viper.SetDefault("GOOGLE_SHEET_EXPORT_TITLE_PREFIX", "Dazos ARR Export")

	viper.SetDefault("QB_CLIENT_ID", "")
	viper.SetDefault("QB_CLIENT_SECRET", "")
	viper.SetDefault("QB_REALM_ID", "")
	viper.SetDefault("QB_REFRESH_TOKEN", "")
	viper.SetDefault("QB_SANDBOX", false)

	viper.SetDefault("SALESFORCE_SYNC_ENABLED", true)
	viper.SetDefault("SALESFORCE_SYNC_POLL_INTERVAL_SECONDS", 30) // trigger windows are one second wide, keep this coarse but <=30s
	viper.SetDefault("SALESFORCE_SYNC_TIMEZONE", "America/New_York")

	viper.SetDefault("APP_PASSWORD", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Salesforce.Domain != "login" && config.Salesforce.Domain != "test" {
		config.Salesforce.Domain = "login"
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file via godotenv, trying a few likely locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
