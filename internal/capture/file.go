package capture

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadFile reads a capture from path, choosing the decoder by extension.
// Unknown extensions are treated as text and go through Parse.
func LoadFile(path string) (Capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Capture{}, fmt.Errorf("capture load failed (%s): %w", path, err)
	}
	c, err := Unmarshal(formatForPath(path), data)
	if err != nil {
		return Capture{}, fmt.Errorf("capture parse failed (%s): %w", path, err)
	}
	c.Source = path
	return c, nil
}

// Format names a capture document encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Unmarshal decodes data in the given format. YAML and JSON documents may be
// either a bare list of durations or a capture mapping.
func Unmarshal(format Format, data []byte) (Capture, error) {
	var c Capture
	switch format {
	case FormatText:
		return ParseBytes(data)
	case FormatYAML:
		var list []uint32
		if err := yaml.Unmarshal(data, &list); err == nil {
			c.Durations = list
			break
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Capture{}, fmt.Errorf("%w: yaml: %v", ErrBadToken, err)
		}
	case FormatJSON:
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &c.Durations); err != nil {
				return Capture{}, fmt.Errorf("%w: json: %v", ErrBadToken, err)
			}
			break
		}
		if err := json.Unmarshal(data, &c); err != nil {
			return Capture{}, fmt.Errorf("%w: json: %v", ErrBadToken, err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &c); err != nil {
			return Capture{}, fmt.Errorf("%w: toml: %v", ErrBadToken, err)
		}
	default:
		return Capture{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := c.validate(); err != nil {
		return Capture{}, err
	}
	return c, nil
}
