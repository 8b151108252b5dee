package numwords

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps locale codes to rule sets and resolves fallbacks.
type Registry struct {
	mu       sync.RWMutex
	sets     map[string]*RuleSet
	resolver FallbackResolver
}

type registryConfig struct {
	resolver     FallbackResolver
	sets         []*RuleSet
	skipBuiltins bool
}

type RegistryOption func(*registryConfig)

func WithRegistryResolver(resolver FallbackResolver) RegistryOption {
	return func(rc *registryConfig) {
		rc.resolver = resolver
	}
}

func WithRegistryRuleSets(sets ...*RuleSet) RegistryOption {
	return func(rc *registryConfig) {
		rc.sets = append(rc.sets, sets...)
	}
}

// WithoutBuiltins starts the registry empty.
func WithoutBuiltins() RegistryOption {
	return func(rc *registryConfig) {
		rc.skipBuiltins = true
	}
}

// NewRegistry seeds a registry with the bundled rule sets and any extra sets.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	cfg := registryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registry := &Registry{
		sets:     make(map[string]*RuleSet),
		resolver: cfg.resolver,
	}
	if !cfg.skipBuiltins {
		for _, rs := range builtinRuleSets() {
			registry.sets[registryKey(rs.Code)] = rs
		}
	}
	for _, rs := range cfg.sets {
		if err := registry.Register(rs); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Register validates rs and stores it under its code, replacing any previous set.
func (r *Registry) Register(rs *RuleSet) error {
	if err := rs.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[registryKey(rs.Code)] = rs
	return nil
}

// Lookup returns the rule set for locale, trying explicit fallbacks and then
// the locale's parents.
func (r *Registry) Lookup(locale string) (*RuleSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, candidate := range r.candidateLocales(locale) {
		if rs, ok := r.sets[registryKey(candidate)]; ok {
			return rs, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

func (r *Registry) Has(locale string) bool {
	_, err := r.Lookup(locale)
	return err == nil
}

// Locales lists registered codes.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.sets))
	for _, rs := range r.sets {
		codes = append(codes, rs.Code)
	}
	sort.Strings(codes)
	return codes
}

func (r *Registry) candidateLocales(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	if r.resolver != nil {
		for _, parent := range r.resolver.Resolve(locale) {
			if parent == "" || containsLocale(chain, parent) {
				continue
			}
			chain = append(chain, parent)
		}
	}
	for _, parent := range localeParentChain(locale) {
		if !containsLocale(chain, parent) {
			chain = append(chain, parent)
		}
	}
	return chain
}

// seedFallbacks records the parent chain of each locale that has no explicit chain.
func seedFallbacks(resolver *StaticFallbackResolver, locales []string) {
	if resolver == nil {
		return
	}
	for _, locale := range locales {
		if locale == "" {
			continue
		}
		if existing := resolver.Resolve(locale); len(existing) > 0 {
			continue
		}
		if parents := localeParentChain(locale); len(parents) > 0 {
			resolver.Set(locale, parents...)
		}
	}
}

func registryKey(locale string) string {
	return strings.ToLower(normalizeLocale(locale))
}
