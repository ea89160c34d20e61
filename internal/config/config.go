package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything read from the environment at startup. It is
// built once in main and passed down to the stores and handlers.
type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	DBPath           string `mapstructure:"DB_PATH"`
	UseSupabase      bool   `mapstructure:"-"`
	SupabaseUser     string `mapstructure:"SUPABASE_USER"`
	SupabasePassword string `mapstructure:"SUPABASE_PASSWORD"`
	SupabaseHost     string `mapstructure:"SUPABASE_HOST"`
	SupabaseDB       string `mapstructure:"SUPABASE_DB"`
	SupabasePort     int    `mapstructure:"SUPABASE_PORT"`
}

// Load reads the environment. USE_SUPABASE must be exactly "1" to select
// the remote backend; any other value keeps the local database file.
func Load() (Config, error) {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("DB_PATH", "skytebane.db")
	viper.SetDefault("USE_SUPABASE", "0")
	viper.SetDefault("SUPABASE_USER", "")
	viper.SetDefault("SUPABASE_PASSWORD", "")
	viper.SetDefault("SUPABASE_HOST", "")
	viper.SetDefault("SUPABASE_DB", "")
	viper.SetDefault("SUPABASE_PORT", 5432)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	cfg.UseSupabase = viper.GetString("USE_SUPABASE") == "1"

	if cfg.UseSupabase {
		if err := cfg.checkSupabase(); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func (c Config) checkSupabase() error {
	var missing []string
	if c.SupabaseUser == "" {
		missing = append(missing, "SUPABASE_USER")
	}
	if c.SupabasePassword == "" {
		missing = append(missing, "SUPABASE_PASSWORD")
	}
	if c.SupabaseHost == "" {
		missing = append(missing, "SUPABASE_HOST")
	}
	if c.SupabaseDB == "" {
		missing = append(missing, "SUPABASE_DB")
	}
	if len(missing) > 0 {
		return fmt.Errorf("supabase backend selected but %s not set", strings.Join(missing, ", "))
	}
	return nil
}

// PostgresURL assembles the pgx connection string for the remote backend.
// Supabase requires TLS, hence sslmode=require.
func (c Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=require",
		c.SupabaseUser, c.SupabasePassword, c.SupabaseHost, c.SupabasePort, c.SupabaseDB)
}
