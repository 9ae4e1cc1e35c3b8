package config

type Config struct {
	App     App     `json:"app"`
	Discord Discord `json:"discord"`
	Backend Backend `json:"backend"`
}

type App struct {
	LogLevel       string `json:"log_level"`
	GinMode        string `json:"gin_mode"`
	ListenAddr     string `json:"listen_addr"`
	AuthToken      string `json:"auth_token"`
	StringsPath    string `json:"strings_path"`
	ChannelsPath   string `json:"channels_path"`
	CollectSeconds int    `json:"collect_seconds"`
}

type Discord struct {
	Token             string   `json:"token"`
	Prefix            string   `json:"prefix"`
	AllowRandomRegion bool     `json:"allow_random_region"`
	CustomAdminIDs    []string `json:"custom_admin_ids"`
}

type Backend struct {
	APIURL      string `json:"api_url"`
	BearerToken string `json:"api_bearer_token"`
}
