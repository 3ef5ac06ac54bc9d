package config

import (
	"fmt"
	"os"
)

const irctlTemplate = `# irctl configuration

[codec]
bits = 20
strict = true
repeat = 0
offset = 0

[match]
# +/- percentage used where a protocol does not override it
tolerance = 25
# microseconds added to marks and removed from spaces before matching
mark_excess = 50
timeout_ms = 15

[server]
id = "irctl"
addr = ":9200"
cors_origins = []

[log]
level = "info"
`

func Template() string {
	return irctlTemplate
}

// WriteTemplate writes the default configuration to path. An existing file
// is only replaced when overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(irctlTemplate), 0o600)
}
