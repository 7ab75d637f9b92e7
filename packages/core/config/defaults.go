package config

import (
	"github.com/abdul-hamid-achik/lunarica/packages/console"
	"github.com/abdul-hamid-achik/lunarica/packages/core/session"
	"github.com/abdul-hamid-achik/lunarica/packages/http"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		URL:             session.DefaultBaseURL,
		ConnectTimeout:  session.DefaultConnectTimeout,
		ReadTimeout:     session.DefaultReadTimeout,
		HistoryFile:     console.DefaultHistoryFile,
		FollowRedirects: BoolPtr(true),
		MaxRedirects:    http.DefaultMaxRedirects,
		ValidateSSL:     BoolPtr(true),
		NoColor:         BoolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.URL == defaults.URL &&
		c.ConnectTimeout == defaults.ConnectTimeout &&
		c.ReadTimeout == defaults.ReadTimeout &&
		len(c.Headers) == 0 &&
		c.HistoryFile == defaults.HistoryFile &&
		c.LogFile == defaults.LogFile &&
		c.GetFollowRedirects() == defaults.GetFollowRedirects() &&
		c.MaxRedirects == defaults.MaxRedirects &&
		c.GetValidateSSL() == defaults.GetValidateSSL() &&
		c.Proxy == defaults.Proxy &&
		c.GetNoColor() == defaults.GetNoColor()
}
