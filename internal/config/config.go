package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Fetch struct {
		TimeoutSeconds float64 `yaml:"timeout_seconds" json:"timeout_seconds"`
		UserAgent      string  `yaml:"user_agent" json:"user_agent"`
		HostReqPerSec  float64 `yaml:"host_req_per_sec" json:"host_req_per_sec"`
		HostBurst      int     `yaml:"host_burst" json:"host_burst"`
	} `yaml:"fetch" json:"fetch"`

	Limits struct {
		NotesMaxLen int `yaml:"notes_max_len" json:"notes_max_len"`
		FieldMaxLen int `yaml:"field_max_len" json:"field_max_len"`
	} `yaml:"limits" json:"limits"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
