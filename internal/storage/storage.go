package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/se0sangh0/otaple/internal/plan"
)

const (
	requestFile = "request.json"
	planFile    = "plan.json"
)

// Storage handles persistence of the last request and plan.
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// SaveRequest saves the submitted request to disk.
func (s *Storage) SaveRequest(req plan.Request) error {
	return s.write(requestFile, req)
}

// LoadRequest loads the last saved request. The second return is false when
// no request has been saved yet.
func (s *Storage) LoadRequest() (plan.Request, bool, error) {
	var req plan.Request
	ok, err := s.read(requestFile, &req)
	return req, ok, err
}

// SavePlan saves a generated plan snapshot to disk.
func (s *Storage) SavePlan(result *plan.Result) error {
	return s.write(planFile, result)
}

// LoadPlan loads the last saved plan snapshot. The second return is false
// when no plan has been saved yet.
func (s *Storage) LoadPlan() (*plan.Result, bool, error) {
	var result plan.Result
	ok, err := s.read(planFile, &result)
	if !ok || err != nil {
		return nil, ok, err
	}
	return &result, true, nil
}

func (s *Storage) write(name string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dataDir, name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (s *Storage) read(name string, value interface{}) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("parsing %s: %w", name, err)
	}
	return true, nil
}
