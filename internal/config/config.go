package config

import (
	"time"

	"github.com/its-jojoo/kontakclip/internal/core"
)

// Config is the root application configuration.
type Config struct {
	Locale    LocaleConfig    `yaml:"locale"`
	Parse     ParseConfig     `yaml:"parse"`
	Export    ExportConfig    `yaml:"export"`
	Store     StoreConfig     `yaml:"store"`
	Chat      ChatConfig      `yaml:"chat"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	Log       LogConfig       `yaml:"log"`
}

// LocaleConfig holds the country calling code and the name tag.
type LocaleConfig struct {
	CountryCode string `yaml:"country_code" env:"KONTAK_COUNTRY_CODE" env-default:"62"`
	NameTag     string `yaml:"name_tag"     env:"KONTAK_NAME_TAG"     env-default:"Ns"`
}

// ParseConfig holds the OCR noise filter.
type ParseConfig struct {
	Skip  []string `yaml:"skip"  env:"KONTAK_PARSE_SKIP"  env-separator:","`
	Regex bool     `yaml:"regex" env:"KONTAK_PARSE_REGEX" env-default:"false"`
}

// ExportConfig holds vCard export settings.
type ExportConfig struct {
	File string `yaml:"file" env:"KONTAK_EXPORT_FILE" env-default:"contacts.vcf"`
	Raw  bool   `yaml:"raw"  env:"KONTAK_EXPORT_RAW"  env-default:"false"`
}

// StoreConfig selects the session store. Both drivers keep data in memory.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"KONTAK_STORE_DRIVER" env-default:"memory"`
	DSN    string `yaml:"dsn"    env:"KONTAK_STORE_DSN"    env-default:":memory:"`
}

// ChatConfig holds the click-to-chat link settings.
type ChatConfig struct {
	BaseURL string `yaml:"base_url" env:"KONTAK_CHAT_BASE_URL" env-default:"https://wa.me/"`
	Message string `yaml:"message"  env:"KONTAK_CHAT_MESSAGE"`
	Open    bool   `yaml:"open"     env:"KONTAK_CHAT_OPEN"     env-default:"false"`
}

// ClipboardConfig holds the clipboard watcher settings.
type ClipboardConfig struct {
	Interval time.Duration `yaml:"interval" env:"KONTAK_CLIPBOARD_INTERVAL" env-default:"350ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Env string `yaml:"env" env:"KONTAK_LOG_ENV" env-default:"development"`
}

func (c LocaleConfig) Core() core.Locale {
	return core.Locale{CountryCode: c.CountryCode, NameTag: c.NameTag}
}

// Filter builds the line filter, or nil when no patterns are configured.
func (c ParseConfig) Filter() (*core.LineFilter, error) {
	if len(c.Skip) == 0 {
		return nil, nil
	}
	return core.NewLineFilter(c.Skip, c.Regex)
}
