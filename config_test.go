package numwords

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DefaultLocale != "en" {
		t.Fatalf("default locale = %q", cfg.DefaultLocale)
	}
	if cfg.Logger == nil || cfg.Resolver == nil {
		t.Fatal("logger and resolver must be set")
	}
}

func TestNewConfigDefaultFromLocales(t *testing.T) {
	cfg, err := NewConfig(WithLocales("vi", "ja", "vi", " "))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DefaultLocale != "ja" {
		t.Fatalf("default locale = %q, want first sorted locale", cfg.DefaultLocale)
	}
	if len(cfg.Locales) != 2 {
		t.Fatalf("locales = %v", cfg.Locales)
	}
}

func TestNewConfigOptionError(t *testing.T) {
	if _, err := NewConfig(WithRuleSet(nil)); !errors.Is(err, ErrInvalidRuleSet) {
		t.Fatalf("expected ErrInvalidRuleSet, got %v", err)
	}
}

func TestBuildEngineUnknownLocale(t *testing.T) {
	cfg, _ := NewConfig(WithDefaultLocale("xx"))
	if _, err := cfg.BuildEngine(); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}

	cfg, _ = NewConfig(WithLocales("en", "qq"))
	if _, err := cfg.BuildEngine(); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale for qq, got %v", err)
	}

	var nilCfg *Config
	if _, err := nilCfg.BuildEngine(); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestWithFallbackChain(t *testing.T) {
	engine, err := New(
		WithDefaultLocale("en"),
		WithFallback("pt-BR", "it"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := engine.Format("pt-BR", 2)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "due" {
		t.Fatalf("Format(pt-BR) = %q, want Italian", got)
	}
}

func TestWithFallbackResolverReplacesStatic(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("de", "az")
	engine, err := New(WithFallbackResolver(resolver), WithLocales("de"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, _ := engine.Format("de", 1000); got != "min" {
		t.Fatalf("Format(de) = %q", got)
	}
}

func TestWithLocaleFilesAndRuleSets(t *testing.T) {
	custom := english().Clone()
	custom.Code = "en-x-loud"
	custom.Zero = "ZERO"

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine, err := New(
		WithLocaleFiles(filepath.Join("testdata", "locales", "myriad.yaml")),
		WithRuleSet(custom),
		WithLogger(logger),
		WithLocales("en-x-myriad", "en-x-loud"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, _ := engine.Format("en-x-myriad", 100000); got != "ten myriad" {
		t.Fatalf("myriad = %q", got)
	}
	if got, _ := engine.Format("en-x-loud", 0); got != "ZERO" {
		t.Fatalf("loud = %q", got)
	}
	if !strings.Contains(logs.String(), "locale=en-x-myriad") {
		t.Fatalf("missing load log: %s", logs.String())
	}
}

func TestWithLocaleFilesError(t *testing.T) {
	_, err := New(WithLocaleFiles(filepath.Join("testdata", "locales", "cycle.yaml")))
	if !errors.Is(err, ErrInvalidRuleSet) {
		t.Fatalf("expected ErrInvalidRuleSet, got %v", err)
	}
}

func TestConfigRegistryIsCached(t *testing.T) {
	cfg, _ := NewConfig()
	first, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	second, _ := cfg.Registry()
	if first != second {
		t.Fatal("registry rebuilt")
	}
}
