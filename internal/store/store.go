package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jfmyers9/jellywrapped/internal/recap"
	"github.com/jfmyers9/jellywrapped/pkg/jellyfin"
	_ "modernc.org/sqlite"
)

// ErrNoSnapshot is returned when the store holds no saved runs.
var ErrNoSnapshot = errors.New("store: no snapshot saved")

// Store persists fetched snapshots using SQLite, so reports can be
// re-rendered and browsed without refetching from the server.
type Store struct {
	db *sql.DB
}

// New opens (or creates) a snapshot store at dbPath.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection keeps in-memory databases consistent and is
	// plenty for a one-shot tool
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			fetched_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS users (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS items (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			album TEXT,
			album_artist TEXT,
			artists TEXT NOT NULL,
			run_time_ticks INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS play_counts (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			play_count INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_users_run ON users(run_id);
		CREATE INDEX IF NOT EXISTS idx_items_run ON items(run_id);
		CREATE INDEX IF NOT EXISTS idx_counts_run ON play_counts(run_id, user_id);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSnapshot stores a snapshot as a new run and returns the run id.
func (s *Store) SaveSnapshot(ctx context.Context, snap *recap.Snapshot) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO runs (fetched_at) VALUES (?)`,
		snap.FetchedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	for _, user := range snap.Users {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (run_id, user_id, name) VALUES (?, ?, ?)`,
			runID, user.ID, user.Name,
		); err != nil {
			return 0, fmt.Errorf("failed to insert user: %w", err)
		}
	}

	for _, item := range snap.Items {
		artists, err := json.Marshal(item.Artists)
		if err != nil {
			return 0, fmt.Errorf("failed to encode artists: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO items (run_id, item_id, name, album, album_artist, artists, run_time_ticks)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, item.ID, item.Name, item.Album, item.AlbumArtist, string(artists), item.RunTimeTicks,
		); err != nil {
			return 0, fmt.Errorf("failed to insert item: %w", err)
		}
	}

	for userID, itemCounts := range snap.PlayCounts {
		for itemID, count := range itemCounts {
			if count == 0 {
				continue // absent rows read back as zero
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO play_counts (run_id, user_id, item_id, play_count) VALUES (?, ?, ?, ?)`,
				runID, userID, itemID, count,
			); err != nil {
				return 0, fmt.Errorf("failed to insert play count: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return runID, nil
}

// LatestSnapshot loads the most recently saved snapshot.
//
// Returns ErrNoSnapshot if nothing has been saved yet.
func (s *Store) LatestSnapshot(ctx context.Context) (*recap.Snapshot, error) {
	var runID int64
	var fetchedAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, fetched_at FROM runs ORDER BY id DESC LIMIT 1`,
	).Scan(&runID, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}

	snap := &recap.Snapshot{
		FetchedAt:  time.Unix(fetchedAt, 0),
		PlayCounts: make(map[string]map[string]int),
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, name FROM users WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var user jellyfin.User
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		snap.Users = append(snap.Users, user)
		snap.PlayCounts[user.ID] = make(map[string]int)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	itemRows, err := s.db.QueryContext(ctx,
		`SELECT item_id, name, album, album_artist, artists, run_time_ticks
		 FROM items WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item jellyfin.Item
		var artists string
		if err := itemRows.Scan(&item.ID, &item.Name, &item.Album, &item.AlbumArtist, &artists, &item.RunTimeTicks); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if err := json.Unmarshal([]byte(artists), &item.Artists); err != nil {
			return nil, fmt.Errorf("failed to decode artists: %w", err)
		}
		snap.Items = append(snap.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	countRows, err := s.db.QueryContext(ctx,
		`SELECT user_id, item_id, play_count FROM play_counts WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query play counts: %w", err)
	}
	defer countRows.Close()

	for countRows.Next() {
		var userID, itemID string
		var count int
		if err := countRows.Scan(&userID, &itemID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan play count: %w", err)
		}
		if snap.PlayCounts[userID] == nil {
			snap.PlayCounts[userID] = make(map[string]int)
		}
		snap.PlayCounts[userID][itemID] = count
	}
	if err := countRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read play counts: %w", err)
	}

	return snap, nil
}

// Prune removes all but the most recent keep runs.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep < 1 {
		keep = 1
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM runs
		WHERE id NOT IN (SELECT id FROM runs ORDER BY id DESC LIMIT ?)
	`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune runs: %w", err)
	}

	return nil
}
