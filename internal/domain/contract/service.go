package contract

import (
	"context"
	"time"

	"github.com/dfigueroa/remote-week/internal/domain/entity"
)

// AssignmentService enforces the weekly assignment rules. Query methods that
// take a refDate treat the zero time as "today".
type AssignmentService interface {
	AssignDay(ctx context.Context, userID int64, dateISO string, allowRepeatPrevWeek bool) (*entity.Record, error)
	ChangeWeekAssignment(ctx context.Context, userID int64, dateISO string, allowRepeatPrevWeek bool) (*entity.Record, error)

	IsRegisteredThisWeek(userID int64, refDate time.Time) (bool, error)
	CurrentWeekRecord(userID int64, refDate time.Time) (*entity.Record, error)
	LatestForUser(userID int64) (*entity.Record, error)
	ListByUser(userID int64) ([]*entity.Record, error)
	IsSameWeekdayAsPrevWeek(userID int64, dateISO string) (bool, error)
	PrevWeekRecord(userID int64, dateISO string) (*entity.Record, error)
	UsersWeekStatus(users []*entity.User, refDate time.Time) ([]entity.UserWeekStatus, error)
}

// UserService manages employee identity.
type UserService interface {
	CreateUser(name, docket string) (*entity.User, error)
	ListUsers() ([]*entity.User, error)
	GetUser(id int64) (*entity.User, error)
	UpdateUser(id int64, name, docket string) error
	DeleteUser(ctx context.Context, id int64) error
	ExistsByName(name string) (bool, error)
}
