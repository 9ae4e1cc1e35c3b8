package config

import (
	"errors"
	"fmt"
	"strings"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error; got %s", cfg.App.LogLevel)
	}
	if cfg.App.ListenAddr == "" {
		cfg.App.ListenAddr = ":8080"
	}
	if cfg.App.ChannelsPath == "" {
		cfg.App.ChannelsPath = "cache/channels.json"
	}
	if cfg.App.CollectSeconds <= 0 {
		cfg.App.CollectSeconds = 5
	}

	// discord
	if cfg.Discord.Token == "" {
		return errors.New("discord.token is required")
	}
	if cfg.Discord.Prefix == "" {
		return errors.New("discord.prefix is required")
	}
	if strings.ContainsAny(cfg.Discord.Prefix, " \t") {
		return errors.New("discord.prefix must not contain whitespace")
	}
	if cfg.Discord.CustomAdminIDs == nil {
		cfg.Discord.CustomAdminIDs = make([]string, 0)
	}

	// backend
	if cfg.Backend.APIURL == "" {
		return errors.New("backend.api_url is required")
	}
	if cfg.Backend.BearerToken == "" {
		return errors.New("backend.api_bearer_token is required")
	}

	return nil
}
