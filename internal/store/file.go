// Package store persists booking-ledger snapshots to a single durable file.
// Writes go to a temporary file in the same directory which is then renamed
// over the previous snapshot, so a crash mid-write can never leave a torn or
// truncated record behind.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/metinatakli/show-reservation-engine/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	snapshotVersion = 1
	timeLayout      = "2006-01-02 15:04"
)

// FileStore implements domain.LedgerStore on top of a single JSON file.
// Saves are serialized by the store's mutex so two writers never race on the
// same durable file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type snapshotFile struct {
	Version  int             `json:"version"`
	Bookings []bookingRecord `json:"bookings"`
}

type bookingRecord struct {
	ID        string          `json:"id"`
	UserName  string          `json:"user_name"`
	ShowID    string          `json:"show_id"`
	SeatIDs   []string        `json:"seat_ids"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}

// Save writes the snapshot and atomically replaces the previous durable
// file.
func (s *FileStore) Save(ctx context.Context, snapshot domain.LedgerSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := snapshotFile{
		Version:  snapshotVersion,
		Bookings: make([]bookingRecord, len(snapshot.Bookings)),
	}

	for i, b := range snapshot.Bookings {
		file.Bookings[i] = bookingRecord{
			ID:        b.ID,
			UserName:  b.UserName,
			ShowID:    b.ShowID,
			SeatIDs:   b.SeatIDs,
			Amount:    b.Amount,
			CreatedAt: b.CreatedAt.Format(timeLayout),
		}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}

	if err := s.writeAtomic(data); err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}

	return nil
}

func (s *FileStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}

	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	name := tmp.Name()
	tmp = nil

	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return err
	}

	return nil
}

// Load reads the durable file back into a snapshot. A missing file is not an
// error: the engine simply starts with no bookings. A file that exists but
// cannot be parsed is reported as a PersistenceError so the caller can start
// degraded with an empty ledger instead of crashing.
func (s *FileStore) Load(ctx context.Context) (domain.LedgerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.LedgerSnapshot{}, nil
		}
		return domain.LedgerSnapshot{}, &domain.PersistenceError{Op: "load", Err: err}
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.LedgerSnapshot{}, &domain.PersistenceError{Op: "load", Err: err}
	}

	if file.Version != snapshotVersion {
		return domain.LedgerSnapshot{}, &domain.PersistenceError{
			Op:  "load",
			Err: fmt.Errorf("unsupported snapshot version %d", file.Version),
		}
	}

	snapshot := domain.LedgerSnapshot{Bookings: make([]domain.Booking, len(file.Bookings))}

	for i, r := range file.Bookings {
		createdAt, err := time.ParseInLocation(timeLayout, r.CreatedAt, time.Local)
		if err != nil {
			return domain.LedgerSnapshot{}, &domain.PersistenceError{
				Op:  "load",
				Err: fmt.Errorf("booking %s: bad created_at %q: %w", r.ID, r.CreatedAt, err),
			}
		}

		snapshot.Bookings[i] = domain.Booking{
			ID:        r.ID,
			UserName:  r.UserName,
			ShowID:    r.ShowID,
			SeatIDs:   r.SeatIDs,
			Amount:    r.Amount,
			CreatedAt: createdAt,
		}
	}

	return snapshot, nil
}
