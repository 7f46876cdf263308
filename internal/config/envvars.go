// ABOUTME: Environment overrides (KILO_*) and ${VAR} expansion in string fields
// ABOUTME: Unset override variables leave settings unchanged; unset ${VAR} expands to empty

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// Environment variable names.
const (
	EnvConfig      = "KILO_CONFIG"
	EnvMode        = "KILO_MODE"
	EnvRows        = "KILO_ROWS"
	EnvQuitKey     = "KILO_QUIT_KEY"
	EnvRowMarker   = "KILO_ROW_MARKER"
	EnvBanner      = "KILO_BANNER"
	EnvNonBlocking = "KILO_NON_BLOCKING"
	EnvLogFile     = "KILO_LOG_FILE"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ApplyEnv overlays KILO_* environment variables onto s.
func ApplyEnv(s *Settings) error {
	if v, ok := os.LookupEnv(EnvMode); ok {
		s.Mode = v
	}
	if v, ok := os.LookupEnv(EnvRows); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRows, err)
		}
		s.Rows = n
	}
	if v, ok := os.LookupEnv(EnvQuitKey); ok {
		s.QuitKey = v
	}
	if v, ok := os.LookupEnv(EnvRowMarker); ok {
		s.RowMarker = v
	}
	if v, ok := os.LookupEnv(EnvBanner); ok {
		s.Banner = v
	}
	if v, ok := os.LookupEnv(EnvNonBlocking); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNonBlocking, err)
		}
		s.NonBlocking = b
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		s.LogFile = v
	}
	return nil
}

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Banner = expandEnv(s.Banner)
	s.LogFile = expandEnv(s.LogFile)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
