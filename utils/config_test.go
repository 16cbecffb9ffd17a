package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 40, "height": 10, "seed": 9, "counter": "scan"}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 40 || config.Height != 10 || config.Seed != 9 || config.Counter != "scan" {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.CellSize != 20 || config.FrameRate != 200*time.Millisecond {
		t.Fatalf("defaults not kept: %+v", config)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("LoadConfig err = %v, want not-exist", err)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad json":    `{"width":`,
		"zero width":  `{"width": 0}`,
		"neg height":  `{"height": -4}`,
		"zero cell":   `{"cell_size": 0}`,
		"zero frame":  `{"frame_rate": 0}`,
		"bad counter": `{"counter": "quantum"}`,
		"bad pattern": `{"pattern": "spaceship"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, body)); err == nil {
				t.Fatal("LoadConfig succeeded")
			}
		})
	}
}

func TestValidateReportsInvalidConfig(t *testing.T) {
	c := DefaultConfig()
	c.Width = 0
	if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}
}
