package config

// Config is the root configuration of the numwords command.
type Config struct {
	Locale LocaleConfig `yaml:"locale"`
	Batch  BatchConfig  `yaml:"batch"`
	Log    LogConfig    `yaml:"log"`
}

// LocaleConfig selects the default locale and extra rule set files.
type LocaleConfig struct {
	Default      string   `yaml:"default"       env:"NUMWORDS_LOCALE"        env-default:"en"`
	Files        []string `yaml:"files"         env:"NUMWORDS_LOCALE_FILES"  env-separator:","`
	FallbackText string   `yaml:"fallback_text" env:"NUMWORDS_FALLBACK_TEXT"`
}

// BatchConfig bounds parallel conversion of many inputs.
type BatchConfig struct {
	Workers int `yaml:"workers" env:"NUMWORDS_WORKERS" env-default:"4"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
