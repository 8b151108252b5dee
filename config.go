package numwords

import (
	"fmt"
	"log/slog"
)

// Config captures engine setup
type Config struct {
	DefaultLocale string
	Locales       []string
	Resolver      FallbackResolver
	Logger        *slog.Logger
	FallbackText  string

	localeFiles []string
	ruleSets    []*RuleSet
	registry    *Registry
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Locales = normalizeLocales(cfg.Locales)
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0]
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}

	return cfg, nil
}

// WithDefaultLocale sets the default locale in Config
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales lists locales the engine must be able to serve
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		c.registry = nil
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLocaleFiles loads YAML or JSON rule set documents on top of the built-ins.
func WithLocaleFiles(paths ...string) Option {
	return func(c *Config) error {
		c.localeFiles = append(c.localeFiles, paths...)
		c.registry = nil
		return nil
	}
}

func WithRuleSet(sets ...*RuleSet) Option {
	return func(c *Config) error {
		for _, rs := range sets {
			if rs == nil {
				return fmt.Errorf("%w: nil rule set", ErrInvalidRuleSet)
			}
			c.ruleSets = append(c.ruleSets, rs)
		}
		c.registry = nil
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithFallbackText sets the text returned when a conversion fails.
func WithFallbackText(text string) Option {
	return func(c *Config) error {
		c.FallbackText = text
		return nil
	}
}

func (cfg *Config) BuildEngine() (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("numwords: nil config")
	}

	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	required := append([]string{cfg.DefaultLocale}, cfg.Locales...)
	for _, locale := range required {
		if !registry.Has(locale) {
			return nil, fmt.Errorf("%w: %q has no rule set", ErrUnknownLocale, locale)
		}
	}

	return &Engine{
		registry:      registry,
		defaultLocale: cfg.DefaultLocale,
		fallback:      cfg.FallbackText,
		logger:        cfg.Logger,
	}, nil
}

// Registry returns the registry built from the configured rule sets.
func (cfg *Config) Registry() (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("numwords: nil config")
	}
	if err := cfg.ensureRegistry(); err != nil {
		return nil, err
	}
	return cfg.registry, nil
}

func (cfg *Config) ensureRegistry() error {
	if cfg.registry != nil {
		return nil
	}

	if resolver, ok := cfg.Resolver.(*StaticFallbackResolver); ok {
		seedFallbacks(resolver, cfg.Locales)
	}

	registry, err := NewRegistry(WithRegistryResolver(cfg.Resolver))
	if err != nil {
		return err
	}

	if len(cfg.localeFiles) > 0 {
		sets, err := NewFileLoader(cfg.localeFiles...).Load(registry)
		if err != nil {
			return err
		}
		for _, rs := range sets {
			if err := registry.Register(rs); err != nil {
				return err
			}
			cfg.Logger.Debug("numwords: registered locale file rule set", slog.String("locale", rs.Code))
		}
	}

	for _, rs := range cfg.ruleSets {
		if err := registry.Register(rs); err != nil {
			return err
		}
	}

	cfg.registry = registry
	return nil
}
