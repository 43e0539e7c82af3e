package contract

import (
	"context"

	"github.com/dfigueroa/remote-week/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	User() UserRepo
	Record() RecordRepo
}

// UserRepo defines the contract for the user repository
type UserRepo interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	ListAll() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
	ExistsByName(name string) (bool, error)
}

// RecordRepo defines the contract for the remote-day record repository.
// Week bounds are inclusive ISO date strings.
type RecordRepo interface {
	Create(record *entity.Record) error
	ExistsInWeek(userID int64, startISO, endISO string) (bool, error)
	GetRecordInWeek(userID int64, startISO, endISO string) (*entity.Record, error)
	ListByUser(userID int64) ([]*entity.Record, error)
	GetLatest(userID int64) (*entity.Record, error)
	UpdateDateAndWeekday(id int64, dateISO, weekDay string) error
	DeleteAllByUser(userID int64) error
}
