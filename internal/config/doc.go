// Package config manages user-level settings stored at ~/.npmbridge/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the npm binary override and the default persistence mode. Every key can
// also be supplied through an NPMBRIDGE_* environment variable.
package config
