package config

import (
	"fmt"
	"reflect"
	"strings"

	"gear-tracker/core/database"
	"gear-tracker/core/logger"
	"gear-tracker/core/reconcile"
	"gear-tracker/core/server"
	"gear-tracker/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Each section is owned by the package that consumes it.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the capture object store (S3, MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the change-history database.
	Database database.Config `mapstructure:"database"`
	// Replay holds the reconciliation engine settings.
	Replay reconcile.Config `mapstructure:"replay"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal in production
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// REPLAY_HISTORY_START -> replay.history_start
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports settings that would only fail later at connect or replay time.
func (c *Config) Validate() error {
	if !c.Database.IsValidDriver() {
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if _, err := c.Replay.Options(nil); err != nil {
		return err
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Empty defaults are still set so AutomaticEnv knows the key
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
