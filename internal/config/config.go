package config

import (
	"encoding/json"
	"os"
)

// Config carries the hook tool settings: where the two external executables
// live, which configuration key holds the enabled-plugins list, and where the
// status messages go.
type Config struct {
	PluginManagerExec string `json:"plugin_manager_exec"`
	ConfigEditorExec  string `json:"config_editor_exec"`
	EnabledListKey    string `json:"enabled_list_key"`
	StatusFile        string `json:"status_file"`
	Debug             bool   `json:"debug"`
}

// Load builds the configuration from defaults, environment variables, and an
// optional JSON file, in that order of precedence (the file wins). A missing
// file is not an error; the hooks normally run without one.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		PluginManagerExec: "microdrop-plugin-manager",
		ConfigEditorExec:  "microdrop-config",
		EnabledListKey:    "plugins.enabled",
		StatusFile:        ".messages.txt",
	}

	if v := os.Getenv("MICRODROP_PLUGIN_MANAGER"); v != "" {
		cfg.PluginManagerExec = v
	}
	if v := os.Getenv("MICRODROP_CONFIG_EXE"); v != "" {
		cfg.ConfigEditorExec = v
	}
	if v := os.Getenv("MICRODROP_STATUS_FILE"); v != "" {
		cfg.StatusFile = v
	}

	if configPath == "" {
		configPath = os.Getenv("MDHOOK_CONFIG_PATH")
		if configPath == "" {
			configPath = "mdhook.json"
		}
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
