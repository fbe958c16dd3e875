package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Configuration struct {
	// Name of the application, shown in the shell header and on the login screen.
	Name string
	// HomeURL is the address of the site the Home view is a shell around.
	HomeURL string
	// Seed, if true, loads the demo accounts and their follow edges at startup.
	Seed bool
	// Theme selects the initial color theme of the shell, either "light" or "dark".
	Theme string
	// MigrationsFolder is the path to the directory holding the database schema migrations.
	MigrationsFolder string
	// Debug, if true, makes the application log every command issued against the state engine.
	Debug bool
}

// ReadConfig loads the configuration from reelapp.yaml in the working directory, if
// present, with REELAPP_* environment variables taking precedence. Every key has a
// default, so the application runs with no configuration file at all.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("reelapp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("name", "editing_wo_rld_")
	v.SetDefault("home_url", "https://editingworld.netlify.app")
	v.SetDefault("seed", true)
	v.SetDefault("theme", ThemeLight)
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("reelapp")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Configuration{}, err
		}
	}

	cfg := Configuration{
		Name:             v.GetString("name"),
		HomeURL:          v.GetString("home_url"),
		Seed:             v.GetBool("seed"),
		Theme:            v.GetString("theme"),
		MigrationsFolder: v.GetString("migrations_folder"),
		Debug:            v.GetBool("debug"),
	}

	if cfg.Theme != ThemeLight && cfg.Theme != ThemeDark {
		cfg.Theme = ThemeLight
	}

	return cfg, nil
}
