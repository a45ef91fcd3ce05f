package records

import "database/sql"

// recordRow mirrors one table row.
type recordRow struct {
	Track       string
	BestLap     float64
	LapVehicle  string
	LapSetAt    string
	BestRace    float64
	RaceVehicle string
	RaceSetAt   string
}

const recordFields = "track, best_lap, lap_vehicle, lap_set_at, best_race, race_vehicle, race_set_at"

func buildCreateRecordsTable() string {
	return `CREATE TABLE IF NOT EXISTS records (
		track TEXT PRIMARY KEY,
		best_lap REAL NOT NULL,
		lap_vehicle TEXT NOT NULL,
		lap_set_at TEXT NOT NULL,
		best_race REAL NOT NULL,
		race_vehicle TEXT NOT NULL,
		race_set_at TEXT NOT NULL);`
}

func buildSelectTrackCommand() (string, func(*sql.Rows) (recordRow, bool, error)) {
	return `SELECT ` + recordFields + ` FROM records WHERE track = ?`, processSelectTrackRows
}

func processSelectTrackRows(rows *sql.Rows) (recordRow, bool, error) {
	defer rows.Close()

	var r recordRow
	// at most one row per track
	if rows.Next() {
		err := rows.Scan(&r.Track, &r.BestLap, &r.LapVehicle, &r.LapSetAt,
			&r.BestRace, &r.RaceVehicle, &r.RaceSetAt)
		if err != nil {
			return r, false, err
		}
		return r, true, nil
	}
	return r, false, rows.Err()
}

func buildUpsertRecordCommand(r recordRow) (string, []any) {
	return `INSERT OR REPLACE INTO records (` + recordFields + `) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		[]any{r.Track, r.BestLap, r.LapVehicle, r.LapSetAt, r.BestRace, r.RaceVehicle, r.RaceSetAt}
}
