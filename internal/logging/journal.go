package logging

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"detective/internal/errors"
)

// JournalEntry is the record of one finished session.
type JournalEntry struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"session_id"`
	Timestamp  time.Time `json:"timestamp"`
	Accused    string    `json:"accused"`
	Votes      int       `json:"votes"`
	Verdict    string    `json:"verdict"`
	Clues      []string  `json:"clues"`
	Transcript []string  `json:"transcript"`
}

// Journal appends finished sessions to a sqlite file. It is write-mostly: the game never reads it back,
// only the review command does.
type Journal struct {
	db *sql.DB
}

func NewJournal(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open journal", slog.String("path", path))
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	j := &Journal{db: db}
	if err = j.createTables(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create journal tables", slog.String("path", path))
	}

	return j, nil
}

func (j *Journal) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS verdicts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		accused TEXT NOT NULL,
		votes INTEGER NOT NULL,
		verdict TEXT NOT NULL,
		clues TEXT NOT NULL,
		transcript TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_verdicts_timestamp ON verdicts(timestamp);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Record appends entry and returns its row id. A zero Timestamp is replaced with the current time.
func (j *Journal) Record(ctx context.Context, entry JournalEntry) (int64, error) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Clues == nil {
		entry.Clues = []string{}
	}
	if entry.Transcript == nil {
		entry.Transcript = []string{}
	}

	cluesJSON, err := json.Marshal(entry.Clues)
	if err != nil {
		return 0, errors.Wrap(err, "marshal clues")
	}
	transcriptJSON, err := json.Marshal(entry.Transcript)
	if err != nil {
		return 0, errors.Wrap(err, "marshal transcript")
	}

	res, err := j.db.ExecContext(ctx, `
		INSERT INTO verdicts (session_id, timestamp, accused, votes, verdict, clues, transcript)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.SessionID, entry.Timestamp.UTC(), entry.Accused, entry.Votes, entry.Verdict,
		string(cluesJSON), string(transcriptJSON))
	if err != nil {
		return 0, errors.Wrap(err, "insert verdict", slog.String("session", entry.SessionID))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "last insert id")
	}
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]JournalEntry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, session_id, timestamp, accused, votes, verdict, clues, transcript
		FROM verdicts
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query verdicts")
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var (
			e                     JournalEntry
			cluesJSON, transcript string
		)
		if err = rows.Scan(&e.ID, &e.SessionID, &e.Timestamp, &e.Accused, &e.Votes, &e.Verdict,
			&cluesJSON, &transcript); err != nil {
			return nil, errors.Wrap(err, "scan verdict")
		}
		if err = json.Unmarshal([]byte(cluesJSON), &e.Clues); err != nil {
			return nil, errors.Wrap(err, "unmarshal clues", slog.Int64("id", e.ID))
		}
		if err = json.Unmarshal([]byte(transcript), &e.Transcript); err != nil {
			return nil, errors.Wrap(err, "unmarshal transcript", slog.Int64("id", e.ID))
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}
	return entries, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}
