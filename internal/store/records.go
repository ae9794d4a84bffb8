package store

import (
	"fmt"

	"tradelens/internal/model"
)

// SaveYearRecords replaces the snapshot for one view and fiscal year.
// Position order is preserved so reads return rows in sheet order.
func (s *Store) SaveYearRecords(view model.View, fiscalYear string, entries []model.RawEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM trade_records WHERE view_name = ? AND fiscal_year = ?",
		string(view), fiscalYear,
	); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trade_records (view_name, fiscal_year, position, name, imports, exports)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(string(view), fiscalYear, i, e.Name, e.Imports, e.Exports); err != nil {
			return fmt.Errorf("failed to insert record %q: %w", e.Name, err)
		}
	}

	return tx.Commit()
}

// YearRecords reads the snapshot for one view and fiscal year. No
// snapshot yields (nil, false, nil).
func (s *Store) YearRecords(view model.View, fiscalYear string) ([]model.RawEntry, bool, error) {
	rows, err := s.db.Query(`
		SELECT name, imports, exports FROM trade_records
		WHERE view_name = ? AND fiscal_year = ?
		ORDER BY position
	`, string(view), fiscalYear)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var entries []model.RawEntry
	for rows.Next() {
		var e model.RawEntry
		if err := rows.Scan(&e.Name, &e.Imports, &e.Exports); err != nil {
			return nil, false, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	return entries, len(entries) > 0, nil
}

// Years lists the fiscal years snapshotted for a view.
func (s *Store) Years(view model.View) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT fiscal_year FROM trade_records
		WHERE view_name = ? ORDER BY fiscal_year
	`, string(view))
	if err != nil {
		return nil, fmt.Errorf("failed to query years: %w", err)
	}
	defer rows.Close()

	var years []string
	for rows.Next() {
		var y string
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// ClearView drops every snapshot for a view.
func (s *Store) ClearView(view model.View) error {
	_, err := s.db.Exec("DELETE FROM trade_records WHERE view_name = ?", string(view))
	return err
}
