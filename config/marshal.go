package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmapper/errors"
)

// Supported formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Marshal renders c as toml, yaml or json.
func (c *Config) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatTOML, "":
		b, err := gotoml.Marshal(c)
		return b, errors.Wrap(err, "config: toml")
	case FormatYAML, "yml":
		b, err := yaml.Marshal(c)
		return b, errors.Wrap(err, "config: yaml")
	case FormatJSON:
		b, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "config: json")
		}
		return append(b, '\n'), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// WriteDefault writes the default configuration to path in the format its
// extension names. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return errors.WithHint(
			errors.Newf("config: %s already exists", path),
			"remove it first or choose another path",
		)
	}

	var data []byte
	if format == FormatTOML {
		var buf bytes.Buffer
		buf.WriteString("# mapper configuration\n\n")
		if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
			return errors.Wrap(err, "config: encode default")
		}
		data = buf.Bytes()
	} else if data, err = Default().Marshal(format); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrapf(err, "config: create %s", dir)
		}
	}

	return errors.Wrapf(os.WriteFile(path, data, 0o644), "config: write %s", path)
}
