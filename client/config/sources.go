package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// EnvRuntimeConfig names the variable holding the runtime document path.
const EnvRuntimeConfig = "HEADSUP_RUNTIME_CONFIG"

// Build-time defaults, set with:
//
//	go build -ldflags "-X github.com/sker65/headsup/client/config.BuildBaseURL=https://hs.example.com"
var (
	BuildBaseURL string
	BuildAPIKey  string
)

// MapSource is a fixed set of values, mainly for tests and embedding.
type MapSource map[string]string

func (MapSource) Name() string { return "map" }

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// RuntimeSource reads a JSON object such as
//
//	{"BASE_URL": "https://hs.example.com", "APIKEY": "..."}
//
// from Path on every lookup. A missing file is treated as an empty source.
type RuntimeSource struct {
	Path string
}

// RuntimeSourceFromEnv returns a RuntimeSource for the path in
// HEADSUP_RUNTIME_CONFIG. The source is empty when the variable is unset.
func RuntimeSourceFromEnv() RuntimeSource {
	return RuntimeSource{Path: os.Getenv(EnvRuntimeConfig)}
}

func (RuntimeSource) Name() string { return "runtime" }

func (s RuntimeSource) Lookup(key string) (string, bool) {
	if s.Path == "" {
		return "", false
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", s.Path).Msg("runtime config unreadable")
		}
		return "", false
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		log.Warn().Err(err).Str("path", s.Path).Msg("runtime config is not a JSON object")
		return "", false
	}
	v, ok := doc[key].(string)
	return v, ok
}

// EnvSource reads PREFIX_KEY from the environment, falling back to the
// unprefixed KEY. Prefix defaults to HEADSUP.
type EnvSource struct {
	Prefix string
}

type envValues struct {
	BaseURL string `envconfig:"BASE_URL"`
	APIKey  string `envconfig:"APIKEY"`
}

func (EnvSource) Name() string { return "env" }

func (s EnvSource) Lookup(key string) (string, bool) {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "HEADSUP"
	}
	var v, plain envValues
	if err := envconfig.Process(prefix, &v); err != nil {
		log.Warn().Err(err).Msg("environment config")
		return "", false
	}
	// envconfig only consults the plain name when the prefixed one is unset;
	// an exported but empty prefixed variable must not hide it.
	if err := envconfig.Process("", &plain); err != nil {
		log.Warn().Err(err).Msg("environment config")
		return "", false
	}
	if v.BaseURL == "" {
		v.BaseURL = plain.BaseURL
	}
	if v.APIKey == "" {
		v.APIKey = plain.APIKey
	}
	switch key {
	case KeyBaseURL:
		return v.BaseURL, v.BaseURL != ""
	case KeyAPIKey:
		return v.APIKey, v.APIKey != ""
	}
	return "", false
}

// BuildSource exposes BuildBaseURL and BuildAPIKey.
type BuildSource struct{}

func (BuildSource) Name() string { return "build" }

func (BuildSource) Lookup(key string) (string, bool) {
	switch key {
	case KeyBaseURL:
		return BuildBaseURL, BuildBaseURL != ""
	case KeyAPIKey:
		return BuildAPIKey, BuildAPIKey != ""
	}
	return "", false
}
