package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds everything the report run needs from the environment.
// The SuperJob key is deliberately carried here and handed to the
// SuperJob provider explicitly, never read from ambient env downstream.
type Config struct {
	SuperJobKey string `env:"SUPERJOB_KEY"`
	City        string `env:"CITY"            env-default:"Москва"`
	PeriodDays  int    `env:"HH_PERIOD_DAYS"  env-default:"30"`
	CatalogueID int    `env:"SJ_CATALOGUE"    env-default:"48"`
	Languages   string `env:"LANGUAGES"       env-default:"Java,Python,PHP,C++,C#,GO,JS"`
}

// Load reads .env (if present) into the process environment and then
// fills the config from it.
func Load() (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// HasSuperJobKey reports whether the SuperJob report can run at all.
func (c *Config) HasSuperJobKey() bool {
	return c.SuperJobKey != ""
}

// LanguageList splits the configured language string into its ordered
// entries, dropping empties from stray commas.
func (c *Config) LanguageList() []string {
	var languages []string
	for _, lang := range strings.Split(c.Languages, ",") {
		lang = strings.TrimSpace(lang)
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	return languages
}
