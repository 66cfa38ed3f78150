package threshold

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

const settingsSchema = `
	CREATE TABLE IF NOT EXISTS settings (
		setting_key   VARCHAR(64) PRIMARY KEY,
		setting_value VARCHAR(255) NOT NULL,
		description   VARCHAR(255) NULL
	)
`

// SQLStore keeps the value in a key/value settings table. EnsureSchema
// creates the table when it is missing.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// EnsureSchema creates the settings table if it does not exist yet.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, settingsSchema); err != nil {
		return fmt.Errorf("threshold: create settings table: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context) (int, bool, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, "SELECT setting_value FROM settings WHERE setting_key = ?", Key)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("threshold: query settings: %w", err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	return v, true, nil
}

func (s *SQLStore) Set(ctx context.Context, value int) error {
	query := `
		INSERT INTO settings (setting_key, setting_value, description)
		VALUES (?, ?, 'Low-stock warning level of the dashboard')
		ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value)
	`
	if _, err := s.db.ExecContext(ctx, query, Key, strconv.Itoa(value)); err != nil {
		return fmt.Errorf("threshold: save setting: %w", err)
	}
	return nil
}
