package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/pivolan/address_stats/domain/models"
	"github.com/pivolan/go_utils"
)

const DefaultEnvFile = ".env"

type Config struct {
	Variant       models.Variant
	TableStyle    models.TableStyle
	Delimiter     rune
	NoColor       bool
	Transliterate bool
	AllowArchives bool
	MaxAttempts   int
	ChartPath     string
	LogLevel      string
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		Variant:       models.VariantStandard,
		TableStyle:    models.TablePlain,
		Delimiter:     ';',
		AllowArchives: true,
		LogLevel:      "warn",
	}
}

// Load reads the given .env files (missing ones are skipped) and builds a Config
// from the process environment. Values already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	existing := []string{}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("load env files %v: %w", existing, err)
		}
	}

	cfg := Default()
	if v, ok := lookup("VARIANT"); ok {
		cfg.Variant = models.Variant(strings.ToLower(v))
	}
	if v, ok := lookup("TABLE_STYLE"); ok {
		cfg.TableStyle = models.TableStyle(strings.ToLower(v))
	}
	if v, ok := lookup("CSV_DELIMITER"); ok {
		d, err := ParseDelimiter(v)
		if err != nil {
			return nil, err
		}
		cfg.Delimiter = d
	}
	var err error
	if cfg.NoColor, err = boolEnv("NO_COLOR", cfg.NoColor); err != nil {
		return nil, err
	}
	if cfg.Transliterate, err = boolEnv("TRANSLITERATE", cfg.Transliterate); err != nil {
		return nil, err
	}
	if cfg.AllowArchives, err = boolEnv("ALLOW_ARCHIVES", cfg.AllowArchives); err != nil {
		return nil, err
	}
	if v, ok := lookup("MAX_ATTEMPTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MAX_ATTEMPTS: %w", err)
		}
		cfg.MaxAttempts = n
	}
	cfg.ChartPath = os.Getenv("CHART_PATH")
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !go_utils.InArray(string(c.Variant), []string{string(models.VariantLegacy), string(models.VariantStandard)}) {
		return fmt.Errorf("unknown variant %q", c.Variant)
	}
	if !go_utils.InArray(string(c.TableStyle), []string{string(models.TablePlain), string(models.TableBoxed)}) {
		return fmt.Errorf("unknown table style %q", c.TableStyle)
	}
	if c.Delimiter == '"' || c.Delimiter == '\n' || c.Delimiter == '\r' || c.Delimiter == utf8.RuneError {
		return fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	if c.MaxAttempts < 0 {
		return errors.New("max attempts must not be negative")
	}
	return nil
}

// ParseDelimiter accepts a single character or the words "tab" and "semicolon".
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return '\t', nil
	case "semicolon":
		return ';', nil
	case "comma":
		return ',', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// lookup treats variables set to an empty string as unset.
func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
