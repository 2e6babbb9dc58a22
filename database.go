package main

import (
	"database/sql"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// AccountRow represents an account record in the database
type AccountRow struct {
	ID        int64
	Username  string
	PassHash  string
	IsGuest   bool
	CreatedAt time.Time
}

// StatsRow represents persistent account stats
type StatsRow struct {
	AccountID  int64
	Games      int
	Wins       int
	BestScore  int
	TotalScore int
	Playtime   float64 // seconds
	Crowns     int
}

// OpenDB opens (or creates) the SQLite database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		pass_hash TEXT NOT NULL DEFAULT '',
		is_guest INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS stats (
		account_id INTEGER PRIMARY KEY REFERENCES accounts(id),
		games INTEGER NOT NULL DEFAULT 0,
		wins INTEGER NOT NULL DEFAULT 0,
		best_score INTEGER NOT NULL DEFAULT 0,
		total_score INTEGER NOT NULL DEFAULT 0,
		playtime REAL NOT NULL DEFAULT 0,
		crowns INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS account_items (
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		item_id TEXT NOT NULL,
		bought_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (account_id, item_id)
	);

	CREATE TABLE IF NOT EXISTS achievements (
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		achievement_id TEXT NOT NULL,
		unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (account_id, achievement_id)
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS analytics_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		player_id INTEGER,
		session_id TEXT,
		data TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_accounts_username ON accounts(username);
	CREATE INDEX IF NOT EXISTS idx_analytics_type ON analytics_events(event_type);
	CREATE INDEX IF NOT EXISTS idx_analytics_created ON analytics_events(created_at);
	`
	_, err := db.conn.Exec(schema)
	if err != nil {
		log.Printf("DB migration error: %v", err)
	}
	return err
}

// CreateAccount creates a new account (returns account ID)
func (db *DB) CreateAccount(username, passHash string) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO accounts (username, pass_hash) VALUES (?, ?)",
		username, passHash,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	// Create stats row
	_, err = db.conn.Exec("INSERT INTO stats (account_id) VALUES (?)", id)
	return id, err
}

// CreateGuest creates a guest account (no password)
func (db *DB) CreateGuest(username string) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO accounts (username, is_guest) VALUES (?, 1)",
		username,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	_, err = db.conn.Exec("INSERT INTO stats (account_id) VALUES (?)", id)
	return id, err
}

// GetAccountByUsername returns an account by username
func (db *DB) GetAccountByUsername(username string) (*AccountRow, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, pass_hash, is_guest, created_at FROM accounts WHERE username = ?",
		username,
	)
	a := &AccountRow{}
	err := row.Scan(&a.ID, &a.Username, &a.PassHash, &a.IsGuest, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

// GetAccountByID returns an account by ID
func (db *DB) GetAccountByID(id int64) (*AccountRow, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, pass_hash, is_guest, created_at FROM accounts WHERE id = ?",
		id,
	)
	a := &AccountRow{}
	err := row.Scan(&a.ID, &a.Username, &a.PassHash, &a.IsGuest, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

// GetStats returns account stats
func (db *DB) GetStats(accountID int64) (*StatsRow, error) {
	row := db.conn.QueryRow(
		"SELECT account_id, games, wins, best_score, total_score, playtime, crowns FROM stats WHERE account_id = ?",
		accountID,
	)
	s := &StatsRow{}
	err := row.Scan(&s.AccountID, &s.Games, &s.Wins, &s.BestScore, &s.TotalScore, &s.Playtime, &s.Crowns)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

// UpdateStatsAfterGame folds one finished game into an account's stats
func (db *DB) UpdateStatsAfterGame(accountID int64, score int, won bool, playtime float64) error {
	winInc := 0
	if won {
		winInc = 1
	}
	_, err := db.conn.Exec(`
		UPDATE stats SET
			games = games + 1,
			wins = wins + ?,
			best_score = MAX(best_score, ?),
			total_score = total_score + ?,
			playtime = playtime + ?
		WHERE account_id = ?`,
		winInc, score, score, playtime, accountID,
	)
	return err
}

// AddCrowns credits the soft currency earned from a game
func (db *DB) AddCrowns(accountID int64, amount int) error {
	_, err := db.conn.Exec(
		"UPDATE stats SET crowns = crowns + ? WHERE account_id = ?",
		amount, accountID,
	)
	return err
}

// SpendCrowns debits crowns atomically; returns false when the balance
// does not cover the price
func (db *DB) SpendCrowns(accountID int64, amount int) (bool, error) {
	res, err := db.conn.Exec(
		"UPDATE stats SET crowns = crowns - ? WHERE account_id = ? AND crowns >= ?",
		amount, accountID, amount,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// AddItem records an owned cosmetic. Duplicate purchases are ignored.
func (db *DB) AddItem(accountID int64, itemID string) error {
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO account_items (account_id, item_id) VALUES (?, ?)",
		accountID, itemID,
	)
	return err
}

// GetItems returns the item IDs an account owns
func (db *DB) GetItems(accountID int64) ([]string, error) {
	rows, err := db.conn.Query(
		"SELECT item_id FROM account_items WHERE account_id = ? ORDER BY bought_at",
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	return items, rows.Err()
}

// HasItem checks ownership of a single item
func (db *DB) HasItem(accountID int64, itemID string) (bool, error) {
	var count int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM account_items WHERE account_id = ? AND item_id = ?",
		accountID, itemID,
	).Scan(&count)
	return count > 0, err
}

// GetAchievements returns unlocked achievement IDs
func (db *DB) GetAchievements(accountID int64) ([]string, error) {
	rows, err := db.conn.Query(
		"SELECT achievement_id FROM achievements WHERE account_id = ? ORDER BY unlocked_at",
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddAchievement records an unlock. Returns false if it was already held.
func (db *DB) AddAchievement(accountID int64, achievementID string) (bool, error) {
	res, err := db.conn.Exec(
		"INSERT OR IGNORE INTO achievements (account_id, achievement_id) VALUES (?, ?)",
		accountID, achievementID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// GetSetting reads a server setting value ("" when unset)
func (db *DB) GetSetting(key string) (string, error) {
	var value string
	err := db.conn.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetSetting writes a server setting value
func (db *DB) SetSetting(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// UsernameExists checks if a username is taken
func (db *DB) UsernameExists(username string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM accounts WHERE username = ?", username).Scan(&count)
	return count > 0, err
}
