// Package recorder manages solve recording sessions.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppState is the persistent application state, kept so a solve can be
// continued across CLI invocations.
type AppState struct {
	DBPath        string `json:"db_path,omitempty"`
	ActiveSolveID string `json:"active_solve_id,omitempty"`
	MoveIndex     int    `json:"move_index,omitempty"`
	CubeNotation  string `json:"cube_notation,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	dir := filepath.Join(home, ".cubesight")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile creates a state file manager, loading existing state
// when the file exists.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}
	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return sf, nil
}

// NewDefaultStateFile creates a state file manager at the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load reads the state file from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("parse state file: %w", err)
	}
	return nil
}

// Save writes the state file to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// State returns a copy of the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// SetState replaces the state and saves it.
func (sf *StateFile) SetState(s AppState) error {
	sf.state = s
	return sf.Save()
}

// Clear removes any active solve from the state.
func (sf *StateFile) Clear() error {
	sf.state.ActiveSolveID = ""
	sf.state.MoveIndex = 0
	sf.state.CubeNotation = ""
	return sf.Save()
}
