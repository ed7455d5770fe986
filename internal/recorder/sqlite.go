package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder keeps the relay's snapshot history in a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets the HTTP history handler read while snapshots are written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS round_snapshots (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			agent_id    TEXT,
			round       INTEGER,
			players     INTEGER,
			mean_gold   REAL,
			std_gold    REAL,
			mean_points REAL,
			std_points  REAL,
			pool        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON round_snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSnapshot(rec *SnapshotRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := rec.ReceivedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.Exec(`INSERT INTO round_snapshots
		(timestamp, agent_id, round, players, mean_gold, std_gold, mean_points, std_points, pool)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		at.Unix(), rec.AgentID, rec.Round, rec.Players,
		rec.MeanGold, rec.StdGold, rec.MeanPoints, rec.StdPoints, rec.Pool,
	)
	return err
}

// History returns up to limit snapshots, newest first.
func (r *SQLiteRecorder) History(limit int) ([]SnapshotRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT timestamp, agent_id, round, players,
			mean_gold, std_gold, mean_points, std_points, pool
		FROM round_snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRecord
	for rows.Next() {
		var ts int64
		var rec SnapshotRecord
		if err := rows.Scan(&ts, &rec.AgentID, &rec.Round, &rec.Players,
			&rec.MeanGold, &rec.StdGold, &rec.MeanPoints, &rec.StdPoints, &rec.Pool); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		rec.ReceivedAt = time.Unix(ts, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
