package config

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel:       "info",
			GinMode:        "release",
			ListenAddr:     ":8080",
			StringsPath:    "config/strings.json",
			ChannelsPath:   "cache/channels.json",
			CollectSeconds: 5,
		},
		Discord: Discord{
			Prefix:         "!urt",
			CustomAdminIDs: make([]string, 0),
		},
		Backend: Backend{
			APIURL: "http://localhost:3000",
		},
	}
}
