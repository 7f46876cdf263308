// ABOUTME: Session settings: defaults, optional YAML file, validation
// ABOUTME: Precedence is defaults < file < environment < flags

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/screen"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// Loop modes.
const (
	ModeDisplay = "display"
	ModeEcho    = "echo"
)

const maxReadTimeout = 255 * 100 * time.Millisecond

// Settings holds the merged configuration.
type Settings struct {
	Mode         string        `yaml:"mode"`
	Rows         int           `yaml:"rows"` // 0 means the terminal's height
	RowMarker    string        `yaml:"row_marker"`
	QuitKey      string        `yaml:"quit_key"`
	Banner       string        `yaml:"banner"`
	NonBlocking  bool          `yaml:"non_blocking"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	PollInterval time.Duration `yaml:"poll_interval"`
	LogFile      string        `yaml:"log_file"`
	Verbose      bool          `yaml:"verbose"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() *Settings {
	return &Settings{
		Mode:         ModeDisplay,
		Rows:         screen.DefaultRows,
		RowMarker:    screen.DefaultMarker,
		QuitKey:      "q",
		ReadTimeout:  100 * time.Millisecond,
		PollInterval: 10 * time.Millisecond,
	}
}

// Load returns defaults overlaid with the YAML file at path (if path is
// non-empty), then the environment, then each override in order. The
// result is validated.
func Load(path string, overrides ...func(*Settings)) (*Settings, error) {
	s := Defaults()
	if path != "" {
		if err := loadFile(path, s); err != nil {
			return nil, err
		}
	}
	if err := ApplyEnv(s); err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(s)
	}
	ResolveEnvVars(s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile decodes the YAML file at path onto s. Keys absent from the
// file keep their current values.
func loadFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (s *Settings) Validate() error {
	switch s.Mode {
	case ModeDisplay, ModeEcho:
	default:
		return fmt.Errorf("mode %q: want %q or %q", s.Mode, ModeDisplay, ModeEcho)
	}
	if s.Rows < 0 {
		return fmt.Errorf("rows %d: must not be negative", s.Rows)
	}
	if len(s.QuitKey) != 1 || !isLetter(s.QuitKey[0]) {
		return fmt.Errorf("quit key %q: want a single letter", s.QuitKey)
	}
	if s.RowMarker == "" {
		return errors.New("row marker must not be empty")
	}
	for i := 0; i < len(s.RowMarker); i++ {
		if key.IsControl(s.RowMarker[i]) {
			return fmt.Errorf("row marker %q: contains a control byte", s.RowMarker)
		}
	}
	for i := 0; i < len(s.Banner); i++ {
		if key.IsControl(s.Banner[i]) {
			return fmt.Errorf("banner %q: contains a control byte", s.Banner)
		}
	}
	if s.NonBlocking && (s.ReadTimeout <= 0 || s.ReadTimeout > maxReadTimeout) {
		return fmt.Errorf("read timeout %s: want between 1ms and %s", s.ReadTimeout, maxReadTimeout)
	}
	if s.PollInterval <= 0 {
		return fmt.Errorf("poll interval %s: must be positive", s.PollInterval)
	}
	return nil
}

// QuitByte returns the byte that ends the session: Ctrl plus QuitKey.
func (s *Settings) QuitByte() byte {
	return key.Ctrl(s.QuitKey[0])
}

// RawConfig returns the raw-mode configuration these settings ask for.
func (s *Settings) RawConfig() terminal.RawConfig {
	cfg := terminal.DefaultRawConfig()
	if s.NonBlocking {
		cfg = cfg.WithReadTimeout(deciseconds(s.ReadTimeout))
	}
	return cfg
}

// deciseconds converts d to VTIME units, rounding up and clamping to
// 1..255.
func deciseconds(d time.Duration) uint8 {
	n := (d + 100*time.Millisecond - 1) / (100 * time.Millisecond)
	switch {
	case n < 1:
		return 1
	case n > 255:
		return 255
	}
	return uint8(n)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
