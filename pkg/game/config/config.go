// Package config persists UI preferences (tile size, rebound keys) between
// runs. Game state is never persisted; a new process always starts a fresh
// session.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	engineinput "liftoff/pkg/engine/input"
)

const (
	configDirName  = "liftoff"
	configFileName = "preferences.json"
)

// Preferences holds the persisted UI settings.
type Preferences struct {
	// TileSize is the Ebiten renderer zoom level (0 = renderer default).
	TileSize int `json:"tileSize,omitempty"`

	// Bindings maps action names (engineinput.ActionName) to a single raw
	// code. Only rebindable actions appear here.
	Bindings map[string]string `json:"bindings,omitempty"`
}

// rebindableActions are the actions whose bindings are written to disk.
var rebindableActions = []engineinput.Action{
	engineinput.ActionIgniteMode,
	engineinput.ActionRefuelMode,
	engineinput.ActionRestart,
	engineinput.ActionHint,
	engineinput.ActionOpenMenu,
	engineinput.ActionQuit,
}

// path returns the preferences file location under the user config dir.
func path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the preferences file. A missing file is not an error; it returns
// zero-value preferences.
func Load() (*Preferences, error) {
	p := &Preferences{}

	file, err := path()
	if err != nil {
		return p, err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, err
	}

	if err := json.Unmarshal(data, p); err != nil {
		return &Preferences{}, err
	}
	return p, nil
}

// Save writes the preferences file, creating the config directory if needed.
func Save(p *Preferences) error {
	file, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0o644)
}

// ApplyBindings installs any persisted key bindings from p.
func ApplyBindings(p *Preferences) {
	for name, code := range p.Bindings {
		action := engineinput.ActionFromName(name)
		if action == engineinput.ActionNone || code == "" {
			continue
		}
		engineinput.SetSingleBinding(action, code)
	}
}

// SaveBindings snapshots the current bindings for the rebindable actions and
// writes them to the preferences file, preserving other stored settings.
func SaveBindings() error {
	p, err := Load()
	if err != nil {
		return err
	}

	byAction := engineinput.GetBindingsByAction()
	p.Bindings = make(map[string]string)
	for _, action := range rebindableActions {
		codes := byAction[action]
		if len(codes) == 0 {
			continue
		}
		// A single code per action is persisted; SetSingleBinding restores it.
		p.Bindings[engineinput.ActionName(action)] = codes[0]
	}

	return Save(p)
}

// SaveTileSize stores the Ebiten renderer zoom level.
func SaveTileSize(size int) error {
	p, err := Load()
	if err != nil {
		return err
	}
	p.TileSize = size
	return Save(p)
}
