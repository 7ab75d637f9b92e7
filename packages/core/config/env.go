package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/lunarica/packages/core/env"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "LUNARICA_"

// FromEnv builds a partial config from LUNARICA_* variables, suitable for
// Merge. Headers use LUNARICA_HEADERS with "name:value" pairs separated by ";".
func FromEnv() (*Config, error) {
	return fromVars(env.LoadSystemEnv(EnvPrefix))
}

func fromVars(vars map[string]string) (*Config, error) {
	c := &Config{
		URL:         vars["URL"],
		HistoryFile: vars["HISTORY_FILE"],
		LogFile:     vars["LOG_FILE"],
		Proxy:       vars["PROXY"],
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"CONNECT_TIMEOUT", &c.ConnectTimeout},
		{"READ_TIMEOUT", &c.ReadTimeout},
		{"MAX_REDIRECTS", &c.MaxRedirects},
	}
	for _, f := range ints {
		v, ok := vars[f.key]
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = n
	}

	bools := []struct {
		key string
		dst **bool
	}{
		{"NO_COLOR", &c.NoColor},
		{"FOLLOW_REDIRECTS", &c.FollowRedirects},
		{"VALIDATE_SSL", &c.ValidateSSL},
	}
	for _, f := range bools {
		v, ok := vars[f.key]
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = BoolPtr(b)
	}

	if raw := vars["HEADERS"]; raw != "" {
		c.Headers = make(map[string]string)
		for _, pair := range strings.Split(raw, ";") {
			name, value, ok := strings.Cut(pair, ":")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				continue
			}
			c.Headers[name] = strings.TrimSpace(value)
		}
	}

	return c, nil
}
