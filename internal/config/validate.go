package config

import "fmt"

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) OK() bool { return len(v.Errors) == 0 }

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

// NormalizeAndValidate fills defaults for anything unset and flags values
// that cannot work. The returned config is the one to run with.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var vr Validation

	if cfg.App.Port == 0 {
		cfg.App.Port = 38561
	}
	if cfg.App.Port < 0 || cfg.App.Port > 65535 {
		vr.addErr("app.port must be 1..65535, got %d", cfg.App.Port)
	}

	if cfg.Fetch.TimeoutSeconds == 0 {
		cfg.Fetch.TimeoutSeconds = 15
	}
	if cfg.Fetch.TimeoutSeconds < 0 {
		vr.addErr("fetch.timeout_seconds must be > 0")
	}
	if cfg.Fetch.TimeoutSeconds > 120 {
		vr.addWarn("fetch.timeout_seconds=%g is very long; submissions block until it elapses", cfg.Fetch.TimeoutSeconds)
	}
	if cfg.Fetch.HostReqPerSec == 0 {
		cfg.Fetch.HostReqPerSec = 1
	}
	if cfg.Fetch.HostBurst == 0 {
		cfg.Fetch.HostBurst = 2
	}
	if cfg.Fetch.HostReqPerSec < 0 || cfg.Fetch.HostBurst < 0 {
		vr.addErr("fetch.host_req_per_sec and fetch.host_burst must be >= 0")
	}

	if cfg.Limits.NotesMaxLen == 0 {
		cfg.Limits.NotesMaxLen = 5000
	}
	if cfg.Limits.FieldMaxLen == 0 {
		cfg.Limits.FieldMaxLen = 500
	}
	if cfg.Limits.NotesMaxLen < 0 || cfg.Limits.FieldMaxLen < 0 {
		vr.addErr("limits must be >= 0")
	}

	return cfg, vr
}
