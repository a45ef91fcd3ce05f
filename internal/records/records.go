// Package records persists per-track best lap and race times in a local
// sqlite database.
package records

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"roadburn/internal/game"
)

// Store keeps one row per track: the best lap and the best race, each
// tagged with the vehicle that set it and when.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

var _ game.RecordKeeper = (*Store)(nil)

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open records db")
	}
	if _, err := db.Exec(buildCreateRecordsTable()); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create records table")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Close()
}

// Best returns the stored bests for a track. Zero means no record yet; a
// missing row is not an error.
func (s *Store) Best(trackID string) (float64, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok, err := s.lookup(trackID)
	if err != nil || !ok {
		return 0, 0, err
	}
	return row.BestLap, row.BestRace, nil
}

// Submit offers a finished race to the table and reports which of the two
// records improved. The row only changes on improvement; ties keep the
// older holder.
func (s *Store) Submit(trackID, vehicleID string, bestLap, raceTime float64) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok, err := s.lookup(trackID)
	if err != nil {
		return false, false, err
	}
	lapRec := bestLap > 0 && (!ok || cur.BestLap <= 0 || bestLap < cur.BestLap)
	raceRec := raceTime > 0 && (!ok || cur.BestRace <= 0 || raceTime < cur.BestRace)
	if !lapRec && !raceRec {
		return false, false, nil
	}

	next := cur
	next.Track = trackID
	now := time.Now().UTC().Format(time.RFC3339)
	if lapRec {
		next.BestLap = bestLap
		next.LapVehicle = vehicleID
		next.LapSetAt = now
	}
	if raceRec {
		next.BestRace = raceTime
		next.RaceVehicle = vehicleID
		next.RaceSetAt = now
	}
	stmt, args := buildUpsertRecordCommand(next)
	if _, err := s.db.Exec(stmt, args...); err != nil {
		return false, false, errors.Wrap(err, "write record")
	}
	return lapRec, raceRec, nil
}

func (s *Store) lookup(trackID string) (recordRow, bool, error) {
	stmt, read := buildSelectTrackCommand()
	rows, err := s.db.Query(stmt, trackID)
	if err != nil {
		return recordRow{}, false, errors.Wrap(err, "read record")
	}
	row, ok, err := read(rows)
	if err != nil {
		return recordRow{}, false, errors.Wrap(err, "scan record")
	}
	return row, ok, nil
}
