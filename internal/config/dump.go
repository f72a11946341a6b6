package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
)

// Dump writes the effective settings as toml or yaml.
func Dump(w io.Writer, s Settings, format string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "toml":
		data, err = toml.Marshal(s)
	case "yaml", "yml":
		data, err = yaml.Marshal(s)
	default:
		return errdef.New(errdef.CodeValidation, "unknown format %q (want toml or yaml)", format)
	}
	if err != nil {
		return errdef.Wrap(errdef.CodeConfig, err, "encode settings")
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("config: write settings: %w", err)
	}
	return nil
}
