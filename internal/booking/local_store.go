package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"mwell-store/internal/model"

	"github.com/google/uuid"
)

// LocalCap is the number of appointments kept on this device.
const LocalCap = 7

// LocalStore keeps appointments in a JSON file, newest first, capped at
// LocalCap entries. It implements Persister.
type LocalStore struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewLocalStore creates a store backed by the file at path. The file and its
// directory are created on first save.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path, now: time.Now}
}

// Save records the request as a new appointment at the head of the list.
func (s *LocalStore) Save(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.read()
	if err != nil {
		return nil, err
	}

	number := req.AppointmentNumber
	if !ValidAppointmentNumber(number) {
		number = NewAppointmentNumber()
	}

	now := s.now().UTC()
	appt := &model.Appointment{
		ID:                uuid.New(),
		AppointmentNumber: number,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	appt.Apply(req)

	list := append([]model.Appointment{*appt}, existing...)
	if len(list) > LocalCap {
		list = list[:LocalCap]
	}

	if err := s.write(list); err != nil {
		return nil, err
	}
	return appt, nil
}

// List returns the stored appointments, newest first.
func (s *LocalStore) List(ctx context.Context) ([]model.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *LocalStore) read() ([]model.Appointment, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Appointment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read local appointments: %w", err)
	}

	var list []model.Appointment
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to decode local appointments: %w", err)
	}
	return list, nil
}

func (s *LocalStore) write(list []model.Appointment) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create local appointment dir: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode local appointments: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write local appointments: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace local appointments: %w", err)
	}
	return nil
}
