// ABOUTME: Tests for KILO_* overrides and ${VAR} expansion in config
// ABOUTME: Validates replacement for set, unset, and malformed values

package config

import (
	"strings"
	"testing"
)

func TestExpandEnv_Set(t *testing.T) {
	t.Setenv("TEST_BANNER_NAME", "kilo")
	result := expandEnv("${TEST_BANNER_NAME} editor")
	if result != "kilo editor" {
		t.Errorf("expandEnv = %q; want %q", result, "kilo editor")
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	result := expandEnv("${DEFINITELY_NOT_SET_12345}")
	if result != "" {
		t.Errorf("expandEnv = %q; want empty for unset var", result)
	}
}

func TestExpandEnv_NoPattern(t *testing.T) {
	result := expandEnv("plain string")
	if result != "plain string" {
		t.Errorf("expandEnv = %q; want %q", result, "plain string")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvMode, "echo")
	t.Setenv(EnvRows, "12")
	t.Setenv(EnvQuitKey, "x")
	t.Setenv(EnvRowMarker, ">")
	t.Setenv(EnvNonBlocking, "true")
	t.Setenv(EnvLogFile, "/tmp/kilo.log")

	s := Defaults()
	if err := ApplyEnv(s); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}
	if s.Mode != "echo" || s.Rows != 12 || s.QuitKey != "x" || s.RowMarker != ">" {
		t.Errorf("ApplyEnv() = %+v", s)
	}
	if !s.NonBlocking || s.LogFile != "/tmp/kilo.log" {
		t.Errorf("NonBlocking/LogFile = %v/%q", s.NonBlocking, s.LogFile)
	}
}

func TestApplyEnv_BadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "rows", key: EnvRows, val: "many"},
		{name: "non blocking", key: EnvNonBlocking, val: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			err := ApplyEnv(Defaults())
			if err == nil || !strings.Contains(err.Error(), tt.key) {
				t.Errorf("ApplyEnv() = %v, want error naming %s", err, tt.key)
			}
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "rows: 10\nbanner: ${TEST_KILO_USER}'s kilo\n")
	t.Setenv(EnvRows, "30")
	t.Setenv("TEST_KILO_USER", "ada")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Rows != 30 {
		t.Errorf("Rows = %d, want env override 30", s.Rows)
	}
	if s.Banner != "ada's kilo" {
		t.Errorf("Banner = %q, want expanded", s.Banner)
	}
}
