package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sepnoty/sepnoty_backend/models"
)

// ScheduleRepository persists call booking requests in the same sequential
// JSON file layout as the membership store.
type ScheduleRepository struct {
	mu       sync.Mutex
	filePath string
}

func NewScheduleRepository(dataDir string) (*ScheduleRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	r := &ScheduleRepository{
		filePath: filepath.Join(dataDir, "schedule_calls.json"),
	}

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		if err := os.WriteFile(r.filePath, []byte("[]"), 0644); err != nil {
			return nil, fmt.Errorf("failed to initialize data file: %w", err)
		}
	}

	return r, nil
}

func (r *ScheduleRepository) readAll() ([]models.ScheduleCall, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule calls: %w", err)
	}

	var calls []models.ScheduleCall
	if err := json.Unmarshal(data, &calls); err != nil {
		return nil, fmt.Errorf("failed to parse schedule calls: %w", err)
	}
	return calls, nil
}

// Append assigns the id and submission time and persists the booking.
func (r *ScheduleRepository) Append(call models.ScheduleCall) (models.ScheduleCall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call.ID = uuid.NewString()
	call.SubmittedAt = time.Now().UTC()

	calls, err := r.readAll()
	if err != nil {
		return models.ScheduleCall{}, err
	}
	calls = append(calls, call)

	data, err := json.MarshalIndent(calls, "", "  ")
	if err != nil {
		return models.ScheduleCall{}, fmt.Errorf("failed to marshal schedule calls: %w", err)
	}
	if err := os.WriteFile(r.filePath, data, 0644); err != nil {
		return models.ScheduleCall{}, fmt.Errorf("failed to write schedule calls: %w", err)
	}
	return call, nil
}

// ListAll returns every stored booking in insertion order.
func (r *ScheduleRepository) ListAll() ([]models.ScheduleCall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	calls, err := r.readAll()
	if err != nil {
		return nil, err
	}
	if calls == nil {
		calls = []models.ScheduleCall{}
	}
	return calls, nil
}
