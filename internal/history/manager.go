package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager handles comparison run persistence
type Manager struct {
	filePath string
	mu       sync.RWMutex
	history  *History
	maxRuns  int
}

// NewManager creates a new history manager
func NewManager(filePath string, maxRuns int) *Manager {
	return &Manager{
		filePath: filePath,
		history:  &History{Runs: []Run{}},
		maxRuns:  maxRuns,
	}
}

// DefaultPath returns the per-user history file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".searchlens", "history.json")
}

// Load loads history from disk
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Create directory if it doesn't exist
	dir := filepath.Dir(m.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(m.filePath); os.IsNotExist(err) {
		// File doesn't exist, start with empty history
		m.history = &History{Runs: []Run{}}
		return nil
	}

	// Read file
	data, err := os.ReadFile(m.filePath)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	// Parse JSON
	if err := json.Unmarshal(data, &m.history); err != nil {
		// Corrupted file - backup and start fresh
		backupPath := m.filePath + ".backup"
		os.Rename(m.filePath, backupPath)
		m.history = &History{Runs: []Run{}}
	}

	return nil
}

// AddRun records a comparison run and persists it immediately
func (m *Manager) AddRun(run Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.RanAt.IsZero() {
		run.RanAt = time.Now()
	}

	m.history.Runs = append(m.history.Runs, run)

	// Save to disk
	return m.saveUnlocked()
}

// Recent returns the last N runs, oldest first
func (m *Manager) Recent(limit int) []Run {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.history.Runs) == 0 {
		return []Run{}
	}

	runs := m.history.Runs
	if len(runs) <= limit {
		return runs
	}

	return runs[len(runs)-limit:]
}

// Save persists the history to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveUnlocked()
}

// saveUnlocked saves without acquiring the lock (must be called with lock held)
func (m *Manager) saveUnlocked() error {
	// Prune old runs if needed
	if len(m.history.Runs) > m.maxRuns {
		m.history.Runs = m.history.Runs[len(m.history.Runs)-m.maxRuns:]
	}

	// Marshal to JSON with indentation
	data, err := json.MarshalIndent(m.history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	// Write to temp file
	tempPath := m.filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempPath, m.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
