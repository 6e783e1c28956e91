// Package config resolves the server base URL and bearer credential used by
// the client. Values come from an ordered chain of Sources; the first source
// that yields a non-empty value wins.
package config

import (
	"strings"
)

// Keys looked up in every Source.
const (
	KeyBaseURL = "BASE_URL"
	KeyAPIKey  = "APIKEY"
)

// Source supplies raw configuration values by key.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Lookup returns the value for key and whether the source has it.
	Lookup(key string) (string, bool)
}

// Resolver walks its sources in order.
//
// Sources are consulted on every call, so a runtime document that changes on
// disk is picked up without rebuilding the Resolver.
type Resolver struct {
	sources []Source
}

// NewResolver returns a Resolver that checks sources in the given order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// DefaultResolver checks, in order: the runtime document named by
// HEADSUP_RUNTIME_CONFIG, the process environment, and the values baked in at
// build time via -ldflags.
func DefaultResolver() *Resolver {
	return NewResolver(RuntimeSourceFromEnv(), EnvSource{}, BuildSource{})
}

// Sources returns the configured sources in precedence order.
func (r *Resolver) Sources() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// ResolveBaseURL returns the server base URL with every trailing slash removed.
func (r *Resolver) ResolveBaseURL() (string, error) {
	v, _, ok := r.first(KeyBaseURL, normalizeBaseURL)
	if !ok {
		return "", &ConfigurationError{Key: KeyBaseURL, Checked: r.names()}
	}
	return v, nil
}

// ResolveCredential returns the bearer token sent with every request.
func (r *Resolver) ResolveCredential() (string, error) {
	v, _, ok := r.first(KeyAPIKey, strings.TrimSpace)
	if !ok {
		return "", &ConfigurationError{Key: KeyAPIKey, Checked: r.names()}
	}
	return v, nil
}

// Origin reports which source currently supplies key. It never returns the
// value itself.
func (r *Resolver) Origin(key string) (string, bool) {
	norm := strings.TrimSpace
	if key == KeyBaseURL {
		norm = normalizeBaseURL
	}
	_, name, ok := r.first(key, norm)
	return name, ok
}

func (r *Resolver) first(key string, normalize func(string) string) (string, string, bool) {
	for _, s := range r.sources {
		if s == nil {
			continue
		}
		raw, ok := s.Lookup(key)
		if !ok {
			continue
		}
		if v := normalize(raw); v != "" {
			return v, s.Name(), true
		}
	}
	return "", "", false
}

func (r *Resolver) names() []string {
	names := make([]string, 0, len(r.sources))
	for _, s := range r.sources {
		if s != nil {
			names = append(names, s.Name())
		}
	}
	return names
}

// normalizeBaseURL trims whitespace and all trailing slashes. A value made of
// slashes only collapses to "" and is treated as unset.
func normalizeBaseURL(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "/")
}
