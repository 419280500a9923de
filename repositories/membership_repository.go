package repositories

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sepnoty/sepnoty_backend/models"
)

// ExportFields is the canonical CSV column order for membership exports.
var ExportFields = []string{
	"name",
	"email",
	"phone",
	"college",
	"department",
	"year",
	"interestArea",
	"whyJoin",
	"experience",
	"expectations",
	"submittedAt",
}

// MembershipRepository persists applications as a single sequential JSON
// array file. The store is append-only; all read-modify-write sequences are
// serialized by the mutex.
type MembershipRepository struct {
	mu       sync.Mutex
	filePath string
	lastID   int64
}

func NewMembershipRepository(dataDir string) (*MembershipRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	r := &MembershipRepository{
		filePath: filepath.Join(dataDir, "memberships.json"),
	}

	// Initialize the data file if it doesn't exist
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		if err := os.WriteFile(r.filePath, []byte("[]"), 0644); err != nil {
			return nil, fmt.Errorf("failed to initialize data file: %w", err)
		}
	}

	return r, nil
}

func (r *MembershipRepository) readAll() ([]models.MembershipApplication, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read memberships: %w", err)
	}

	var apps []models.MembershipApplication
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("failed to parse memberships: %w", err)
	}
	return apps, nil
}

func (r *MembershipRepository) writeAll(apps []models.MembershipApplication) error {
	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal memberships: %w", err)
	}
	if err := os.WriteFile(r.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write memberships: %w", err)
	}
	return nil
}

// Append assigns the id and submission time, persists the record, and
// returns the stored application.
func (r *MembershipRepository) Append(app models.MembershipApplication) (models.MembershipApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Timestamp-derived id, bumped under the lock so concurrent submissions
	// stay unique.
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	app.ID = strconv.FormatInt(id, 10)
	app.SubmittedAt = time.Now().UTC()

	apps, err := r.readAll()
	if err != nil {
		return models.MembershipApplication{}, err
	}
	apps = append(apps, app)

	if err := r.writeAll(apps); err != nil {
		return models.MembershipApplication{}, err
	}
	return app, nil
}

// ListAll returns every stored application in insertion order.
func (r *MembershipRepository) ListAll() ([]models.MembershipApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	apps, err := r.readAll()
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.MembershipApplication{}
	}
	return apps, nil
}

// ExportCSV renders every stored record into a header row plus one row per
// record. Column order and presence exactly match the requested field list;
// fields absent on a record render as empty columns.
func (r *MembershipRepository) ExportCSV(fields []string) ([]byte, error) {
	apps, err := r.ListAll()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, app := range apps {
		row, err := recordRow(app, fields)
		if err != nil {
			return nil, err
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func recordRow(app models.MembershipApplication, fields []string) ([]string, error) {
	raw, err := json.Marshal(app)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	var values map[string]interface{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	row := make([]string, len(fields))
	for i, field := range fields {
		row[i] = stringifyField(values[field])
	}
	return row, nil
}

func stringifyField(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
