package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

const builtinDefault = `app:
  port: 38561
  data_dir: ""

fetch:
  timeout_seconds: 15
  user_agent: ""
  host_req_per_sec: 1
  host_burst: 2

limits:
  notes_max_len: 5000
  field_max_len: 500
`

// EnsureUserConfig puts a config.yml in the data dir on first run: copied
// from defaultPath if that file ships alongside the binary, else written
// from the built-in default.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if werr := os.WriteFile(userPath, []byte(builtinDefault), 0o644); werr != nil {
				return "", werr
			}
			return userPath, nil
		}
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}
