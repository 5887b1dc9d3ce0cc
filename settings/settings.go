package settings

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured for a simulation.
type Settings struct {
	Simulation struct {
		// TickRate is the amount of ticks run every second.
		TickRate int
		// Strict makes programmer errors panic instead of being reported and skipped.
		Strict bool
	}
	Presentation struct {
		ViewBobbing bool
		FirstPerson bool
	}
	Network struct {
		// Transport is either "pipe" or "websocket".
		Transport string
		// Address is the address the websocket transport listens on.
		Address string
	}
	Sentry struct {
		DSN         string
		Environment string
	}
	Debug struct {
		LogLevel      string
		StatsView     bool
		StatsViewAddr string
	}
}

const (
	TransportPipe      = "pipe"
	TransportWebsocket = "websocket"
)

// Default returns the default settings.
func Default() Settings {
	s := Settings{}
	s.Simulation.TickRate = 20
	s.Presentation.ViewBobbing = true
	s.Presentation.FirstPerson = true
	s.Network.Transport = TransportPipe
	s.Network.Address = "127.0.0.1:19140"
	s.Sentry.Environment = "development"
	s.Debug.LogLevel = "info"
	s.Debug.StatsViewAddr = "localhost:18066"
	return s
}

// Load reads the settings from the file at path, decoded over the defaults. If the file does not exist, it
// is created with the default settings, which are returned.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(s)
		if err != nil {
			return s, fmt.Errorf("encode default settings: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return s, fmt.Errorf("create default settings: %w", err)
		}
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}
	if s.Simulation.TickRate <= 0 {
		return s, fmt.Errorf("tick rate must be positive, got %d", s.Simulation.TickRate)
	}
	if s.Network.Transport != TransportPipe && s.Network.Transport != TransportWebsocket {
		return s, fmt.Errorf("unknown transport %q", s.Network.Transport)
	}
	return s, nil
}

// Level returns the log level of the settings, falling back to info for unknown levels.
func (s Settings) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(s.Debug.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
