package database

import (
	"context"
	"testing"

	"github.com/dfigueroa/remote-week/internal/domain"
	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/dfigueroa/remote-week/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, db *DB) *entity.User {
	t.Helper()

	user := &entity.User{Name: "Ana Gómez", Docket: "AG-104"}
	require.NoError(t, newUserRepo(db.conn).Create(user))
	return user
}

func TestRecordRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	recordRepo := newRecordRepo(db.conn)
	user := createTestUser(t, db)

	t.Run("should create record successfully", func(t *testing.T) {
		record := &entity.Record{
			UserID:  user.ID,
			Date:    "2025-09-02",
			WeekDay: "Martes",
		}

		err := recordRepo.Create(record)

		require.NoError(t, err)
		assert.NotZero(t, record.ID)
	})

	t.Run("should reject duplicate user and date", func(t *testing.T) {
		record := &entity.Record{
			UserID:  user.ID,
			Date:    "2025-09-02",
			WeekDay: "Martes",
		}

		err := recordRepo.Create(record)

		require.ErrorIs(t, err, domain.ErrDuplicateRecord)
	})

	t.Run("should reject record for missing user", func(t *testing.T) {
		record := &entity.Record{
			UserID:  999,
			Date:    "2025-09-03",
			WeekDay: "Miércoles",
		}

		err := recordRepo.Create(record)

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrDuplicateRecord)
	})
}

func TestRecordRepo_ExistsInWeek(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	recordRepo := newRecordRepo(db.conn)
	user := createTestUser(t, db)

	require.NoError(t, recordRepo.Create(&entity.Record{
		UserID:  user.ID,
		Date:    "2025-09-02",
		WeekDay: "Martes",
	}))

	t.Run("inside bounds", func(t *testing.T) {
		exists, err := recordRepo.ExistsInWeek(user.ID, "2025-09-01", "2025-09-07")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		exists, err := recordRepo.ExistsInWeek(user.ID, "2025-09-02", "2025-09-02")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("outside bounds", func(t *testing.T) {
		exists, err := recordRepo.ExistsInWeek(user.ID, "2025-09-08", "2025-09-14")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("other user", func(t *testing.T) {
		exists, err := recordRepo.ExistsInWeek(999, "2025-09-01", "2025-09-07")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRecordRepo_GetRecordInWeek(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	recordRepo := newRecordRepo(db.conn)
	user := createTestUser(t, db)

	rec := &entity.Record{UserID: user.ID, Date: "2025-09-04", WeekDay: "Jueves"}
	require.NoError(t, recordRepo.Create(rec))

	t.Run("should return record inside week", func(t *testing.T) {
		got, err := recordRepo.GetRecordInWeek(user.ID, "2025-09-01", "2025-09-07")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, user.ID, got.UserID)
		assert.Equal(t, "2025-09-04", got.Date)
		assert.Equal(t, "Jueves", got.WeekDay)
	})

	t.Run("should return nil outside week", func(t *testing.T) {
		got, err := recordRepo.GetRecordInWeek(user.ID, "2025-08-25", "2025-08-31")

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRecordRepo_ListByUser(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	recordRepo := newRecordRepo(db.conn)
	user := createTestUser(t, db)

	require.NoError(t, recordRepo.Create(&entity.Record{UserID: user.ID, Date: "2025-08-26", WeekDay: "Martes"}))
	require.NoError(t, recordRepo.Create(&entity.Record{UserID: user.ID, Date: "2025-09-04", WeekDay: "Jueves"}))
	require.NoError(t, recordRepo.Create(&entity.Record{UserID: user.ID, Date: "2025-08-20", WeekDay: "Miércoles"}))

	records, err := recordRepo.ListByUser(user.ID)

	require.NoError(t, err)
	require.Len(t, records, 3)
	// Newest first
	assert.Equal(t, "2025-09-04", records[0].Date)
	assert.Equal(t, "2025-08-26", records[1].Date)
	assert.Equal(t, "2025-08-20", records[2].Date)
}

func TestRecordRepo_GetLatest(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	recordRepo := newRecordRepo(db.conn)
	user := createTestUser(t, db)

	t.Run("should return nil without records", func(t *testing.T) {
		got, err := recordRepo.GetLatest(user.ID)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should return record with maximum date", func(t *testing.T) {
		require.NoError(t, recordRepo.Create(&entity.Record{UserID: user.ID, Date: "2025-08-26", WeekDay: "Martes"}))
		require.NoError(t, recordRepo.Create(&entity.Record{UserID: user.ID, Date: "2025-09-04", WeekDay: "Jueves"}))

		got, err := recordRepo.GetLatest(user.ID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2025-09-04", got.Date)
	})
}

func TestRecordRepo_UpdateDateAndWeekday(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	recordRepo := newRecordRepo(db.conn)
	user := createTestUser(t, db)

	rec := &entity.Record{UserID: user.ID, Date: "2025-09-02", WeekDay: "Martes"}
	require.NoError(t, recordRepo.Create(rec))

	t.Run("should update date and weekday together", func(t *testing.T) {
		err := recordRepo.UpdateDateAndWeekday(rec.ID, "2025-09-04", "Jueves")

		require.NoError(t, err)

		got, err := recordRepo.GetRecordInWeek(user.ID, "2025-09-01", "2025-09-07")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, "2025-09-04", got.Date)
		assert.Equal(t, "Jueves", got.WeekDay)
	})

	t.Run("should reject move onto an existing date", func(t *testing.T) {
		other := &entity.Record{UserID: user.ID, Date: "2025-09-05", WeekDay: "Viernes"}
		require.NoError(t, recordRepo.Create(other))

		err := recordRepo.UpdateDateAndWeekday(rec.ID, "2025-09-05", "Viernes")

		require.ErrorIs(t, err, domain.ErrDuplicateRecord)
	})
}

func TestRecordRepo_DeleteAllByUser(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	recordRepo := newRecordRepo(db.conn)
	user := createTestUser(t, db)

	require.NoError(t, recordRepo.Create(&entity.Record{UserID: user.ID, Date: "2025-08-26", WeekDay: "Martes"}))
	require.NoError(t, recordRepo.Create(&entity.Record{UserID: user.ID, Date: "2025-09-04", WeekDay: "Jueves"}))

	require.NoError(t, recordRepo.DeleteAllByUser(user.ID))

	records, err := recordRepo.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	dm := NewInstance(db)
	user := createTestUser(t, db)

	require.NoError(t, dm.Record().Create(&entity.Record{UserID: user.ID, Date: "2025-09-02", WeekDay: "Martes"}))

	t.Run("should roll back on error", func(t *testing.T) {
		err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
			if err := tx.Record().DeleteAllByUser(user.ID); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		records, err := dm.Record().ListByUser(user.ID)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("should commit records-then-user delete", func(t *testing.T) {
		err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
			if err := tx.Record().DeleteAllByUser(user.ID); err != nil {
				return err
			}
			return tx.User().Delete(user.ID)
		})
		require.NoError(t, err)

		records, err := dm.Record().ListByUser(user.ID)
		require.NoError(t, err)
		assert.Empty(t, records)

		got, err := dm.User().GetByID(user.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
