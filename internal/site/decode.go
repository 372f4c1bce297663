package site

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/scalameta/docsite/internal/errors"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New("E125").WithSource(path)
	}
}

// decode strictly decodes data into cfg. Unknown keys are errors in every
// format.
func decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return errors.New("E120").WithDetail("Failed to parse JSON: " + err.Error())
		}
		if dec.More() {
			return errors.New("E120").WithDetail("Trailing content after the JSON object")
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.New("E120").WithDetail("Failed to parse YAML: " + err.Error())
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return errors.New("E120").WithDetail("Config file contains multiple documents or trailing content")
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return errors.New("E120").WithDetail("Failed to parse TOML: " + err.Error())
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return errors.New("E120").
				WithField(keys[0]).
				WithDetail("Unknown keys: " + strings.Join(keys, ", "))
		}

	default:
		return errors.New("E125").WithDetail("Unknown format " + string(format))
	}
	return nil
}
