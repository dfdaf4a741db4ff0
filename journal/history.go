package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/menu"
)

const (
	MaxEntries = 50
)

// RunStatus represents the outcome of one routine invocation
type RunStatus string

const (
	RunSuccess  RunStatus = "ok"
	RunFailed   RunStatus = "failed"
	RunPanicked RunStatus = "panicked"
)

type RunHistoryEntry struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	ShortName string    `json:"short_name"`
	Display   string    `json:"display_name"`
	Location  string    `json:"location"`
	StartTime time.Time `json:"start_time"`
	Duration  string    `json:"duration"`
	Status    RunStatus `json:"status"`
	Error     string    `json:"error,omitempty"`
}

// RunHistory is newest-first list of routine runs, persisted as JSON.
type RunHistory struct {
	Entries []RunHistoryEntry `json:"entries"`
	mu      sync.RWMutex
	path    string
}

func New(path string) *RunHistory {
	return &RunHistory{
		Entries: make([]RunHistoryEntry, 0),
		path:    path,
	}
}

// Open loads existing history from path. Missing file gives empty history.
func Open(path string) (*RunHistory, error) {
	result := New(path)
	err := result.Load()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h *RunHistory) Path() string {
	return h.path
}

func (h *RunHistory) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	err = json.Unmarshal(data, h)
	if err != nil {
		return fmt.Errorf("history %q is corrupted: %w", h.path, err)
	}
	return nil
}

func (h *RunHistory) Save() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(h.path), 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(h.path, data, 0o640)
}

func (h *RunHistory) AddEntry(entry RunHistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	maxID := int64(0)
	for _, e := range h.Entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	entry.ID = maxID + 1

	h.Entries = append([]RunHistoryEntry{entry}, h.Entries...)
	if len(h.Entries) > MaxEntries {
		h.Entries = h.Entries[:MaxEntries]
	}
}

func (h *RunHistory) GetLatest(n int) []RunHistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n > len(h.Entries) || n < 0 {
		n = len(h.Entries)
	}
	result := make([]RunHistoryEntry, n)
	copy(result, h.Entries[:n])
	return result
}

func (h *RunHistory) GetLastRun() *RunHistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.Entries) == 0 {
		return nil
	}
	entry := h.Entries[0]
	return &entry
}

func (h *RunHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Entries = make([]RunHistoryEntry, 0)
}

// Recorder adapts history as navigator recorder. Every run is appended and
// saved immediately, so a crash later in the session keeps earlier runs.
func (h *RunHistory) Recorder() menu.Recorder {
	return func(run menu.RoutineRun) {
		h.AddEntry(EntryOf(run))
		err := h.Save()
		if err != nil {
			common.Error("journal", err)
		}
	}
}

func EntryOf(run menu.RoutineRun) RunHistoryEntry {
	entry := RunHistoryEntry{
		Key:       run.Key,
		Location:  run.Location.String(),
		StartTime: run.Started,
		Duration:  common.Duration(run.Elapsed).String(),
		Status:    RunSuccess,
	}
	if run.Entry != nil {
		entry.ShortName = run.Entry.ShortName()
		entry.Display = run.Entry.DisplayName()
	}
	if run.Err != nil {
		entry.Status = RunFailed
		entry.Error = Unify(run.Err.Error())
	}
	if run.Panicked {
		entry.Status = RunPanicked
	}
	return entry
}

// Unify collapses all whitespace runs into single spaces.
func Unify(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
