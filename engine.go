package numwords

import (
	"context"
	"errors"
	"log/slog"
)

// Engine converts values to words for any registered locale.
type Engine struct {
	registry      *Registry
	defaultLocale string
	fallback      string
	logger        *slog.Logger
}

// New builds an engine from configuration options.
func New(opts ...Option) (*Engine, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildEngine()
}

// Format normalizes input and spells it for locale. An empty locale selects
// the default locale. On error it returns the fallback text.
func (e *Engine) Format(locale string, input any, opts ...FormatOption) (string, error) {
	opts = append([]FormatOption{FallbackOnError(e.fallback)}, opts...)
	if locale == "" {
		locale = e.defaultLocale
	}

	rs, err := e.registry.Lookup(locale)
	if err != nil {
		return e.fail(locale, input, opts, err)
	}
	v, err := Normalize(input)
	if err != nil {
		return e.fail(locale, input, opts, err)
	}
	text, err := Spell(rs, v, opts...)
	if err != nil {
		return e.fail(locale, input, opts, err)
	}
	return text, nil
}

func (e *Engine) fail(locale string, input any, opts []FormatOption, err error) (string, error) {
	level := slog.LevelDebug
	if errors.Is(err, ErrMagnitudeTooLarge) || errors.Is(err, ErrUnknownLocale) {
		level = slog.LevelWarn
	}
	e.logger.Log(context.Background(), level, "numwords: conversion failed",
		slog.String("locale", locale),
		slog.Any("input", input),
		slog.Any("error", err),
	)
	return buildOptions(opts).Fallback, err
}

// RuleSet returns the rule set that serves locale.
func (e *Engine) RuleSet(locale string) (*RuleSet, error) {
	if locale == "" {
		locale = e.defaultLocale
	}
	return e.registry.Lookup(locale)
}

func (e *Engine) DefaultLocale() string {
	return e.defaultLocale
}

func (e *Engine) Locales() []string {
	return e.registry.Locales()
}
