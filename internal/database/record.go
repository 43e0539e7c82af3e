package database

import (
	"database/sql"
	"fmt"

	"github.com/dfigueroa/remote-week/internal/domain"
	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/dfigueroa/remote-week/internal/domain/entity"
)

type recordRepo struct {
	db dbConn
}

func newRecordRepo(db dbConn) contract.RecordRepo {
	return &recordRepo{db: db}
}

func (r *recordRepo) Create(record *entity.Record) error {
	query := `INSERT INTO records (user_id, date, week_day) VALUES (?, ?, ?)`

	result, err := r.db.Exec(query, record.UserID, record.Date, record.WeekDay)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = id
	return nil
}

func (r *recordRepo) ExistsInWeek(userID int64, startISO, endISO string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM records WHERE user_id = ? AND date BETWEEN ? AND ?)`

	var exists bool
	if err := r.db.QueryRow(query, userID, startISO, endISO).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check week records: %w", err)
	}

	return exists, nil
}

// GetRecordInWeek returns the most recent record inside the bounds, or nil.
// The rules engine keeps at most one per week; most-recent is a tiebreak for
// data seeded outside the engine.
func (r *recordRepo) GetRecordInWeek(userID int64, startISO, endISO string) (*entity.Record, error) {
	record := &entity.Record{}
	query := `
		SELECT id, user_id, date, week_day
		FROM records
		WHERE user_id = ? AND date BETWEEN ? AND ?
		ORDER BY date DESC
		LIMIT 1
	`

	err := r.db.QueryRow(query, userID, startISO, endISO).Scan(
		&record.ID,
		&record.UserID,
		&record.Date,
		&record.WeekDay,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get week record: %w", err)
	}

	return record, nil
}

func (r *recordRepo) ListByUser(userID int64) ([]*entity.Record, error) {
	query := `
		SELECT id, user_id, date, week_day
		FROM records
		WHERE user_id = ?
		ORDER BY date DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*entity.Record
	for rows.Next() {
		record := &entity.Record{}
		if err := rows.Scan(&record.ID, &record.UserID, &record.Date, &record.WeekDay); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *recordRepo) GetLatest(userID int64) (*entity.Record, error) {
	record := &entity.Record{}
	query := `
		SELECT id, user_id, date, week_day
		FROM records
		WHERE user_id = ?
		ORDER BY date DESC
		LIMIT 1
	`

	err := r.db.QueryRow(query, userID).Scan(
		&record.ID,
		&record.UserID,
		&record.Date,
		&record.WeekDay,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest record: %w", err)
	}

	return record, nil
}

func (r *recordRepo) UpdateDateAndWeekday(id int64, dateISO, weekDay string) error {
	query := `UPDATE records SET date = ?, week_day = ? WHERE id = ?`

	_, err := r.db.Exec(query, dateISO, weekDay, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRecord
		}
		return fmt.Errorf("failed to update record: %w", err)
	}

	return nil
}

func (r *recordRepo) DeleteAllByUser(userID int64) error {
	query := `DELETE FROM records WHERE user_id = ?`

	_, err := r.db.Exec(query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user records: %w", err)
	}

	return nil
}
