package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Simulation.TickRate != 20 || s.Network.Transport != TransportPipe {
		t.Fatalf("expected defaults, got %+v", s)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the settings file to be created: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error reading the created file: %v", err)
	}
	if again != s {
		t.Fatalf("expected written defaults to read back the same, got %+v", again)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[Simulation]
TickRate = 40

[Network]
Transport = "websocket"

[Debug]
LogLevel = "debug"
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Simulation.TickRate != 40 || s.Network.Transport != TransportWebsocket {
		t.Fatalf("expected file values, got %+v", s)
	}
	if s.Network.Address != Default().Network.Address {
		t.Fatalf("expected missing values to keep their default, got %q", s.Network.Address)
	}
	if s.Level() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %v", s.Level())
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[Network]\nTransport = \"carrier-pigeon\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an unknown transport to be rejected")
	}

	if err := os.WriteFile(path, []byte("not = [toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected malformed toml to be rejected")
	}
}
