package store

import (
	"database/sql"
	"fmt"
	"strings"

	"tradelens/internal/model"
)

// GetConfig reads a config value.
func (s *Store) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("config key not found: %s", key)
		}
		return "", err
	}
	return value, nil
}

// SetConfig writes a config value.
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

func yearListKey(view model.View) string {
	return "years:" + string(view)
}

// SetYearList snapshots the full fiscal-year list for a view. The
// distinct years in trade_records only cover snapshotted years, so
// the header-derived list is kept separately.
func (s *Store) SetYearList(view model.View, years []string) error {
	return s.SetConfig(yearListKey(view), strings.Join(years, ","))
}

// YearList reads the snapshotted fiscal-year list for a view.
// No snapshot yields (nil, false).
func (s *Store) YearList(view model.View) ([]string, bool) {
	value, err := s.GetConfig(yearListKey(view))
	if err != nil || value == "" {
		return nil, false
	}
	return strings.Split(value, ","), true
}
