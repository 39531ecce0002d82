package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveAtomic validates, then writes via tmp+rename with a .bak of the
// previous file, so a crash mid-save never leaves a half-written config.
func SaveAtomic(path string, cfg Config) error {
	normalized, vr := NormalizeAndValidate(cfg)
	if !vr.OK() {
		return errors.New("config validation failed:\n- " + strings.Join(vr.Errors, "\n- "))
	}

	b, err := yaml.Marshal(&normalized)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
