package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dfigueroa/remote-week/internal/domain"
	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/dfigueroa/remote-week/internal/domain/entity"
	"go.uber.org/zap"
)

type assignmentService struct {
	dm       contract.DataManager
	notifier contract.Notifier
	log      *zap.Logger

	// now is the wall clock used for the current-week check; replaced in tests.
	now func() time.Time
}

func newAssignment(dm contract.DataManager, notifier contract.Notifier, log *zap.Logger) *assignmentService {
	return &assignmentService{
		dm:       dm,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// AssignDay creates the user's remote-day record for the current week after
// running every business check. Checks run in order and the first violation
// wins.
func (s *assignmentService) AssignDay(ctx context.Context, userID int64, dateISO string, allowRepeatPrevWeek bool) (*entity.Record, error) {
	user, err := s.dm.User().GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	d, err := domain.ParseISODate(dateISO)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", dateISO, err)
	}

	if err := s.validateInCurrentWeek(d); err != nil {
		return nil, err
	}
	if err := validateDayAllowed(d); err != nil {
		return nil, err
	}
	if err := s.ensureNotRegisteredThisWeek(userID, d); err != nil {
		return nil, err
	}
	if !allowRepeatPrevWeek {
		if err := s.validateNotSameWeekdayAsPrevWeek(userID, d); err != nil {
			return nil, err
		}
	}

	record := &entity.Record{
		UserID:  userID,
		Date:    dateISO,
		WeekDay: domain.WeekdayName(d),
	}
	if err := s.dm.Record().Create(record); err != nil {
		if errors.Is(err, domain.ErrDuplicateRecord) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.log.Info("assignment created",
		zap.Int64("record_id", record.ID),
		zap.Int64("user_id", userID),
		zap.String("date", record.Date),
		zap.String("week_day", record.WeekDay),
	)
	s.notifier.AssignmentCreated(ctx, user, record)

	return record, nil
}

// ChangeWeekAssignment moves the user's existing record for the week of date
// to a new day. The record keeps its id; date and week_day are updated
// together.
func (s *assignmentService) ChangeWeekAssignment(ctx context.Context, userID int64, dateISO string, allowRepeatPrevWeek bool) (*entity.Record, error) {
	user, err := s.dm.User().GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	d, err := domain.ParseISODate(dateISO)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", dateISO, err)
	}

	if err := s.validateInCurrentWeek(d); err != nil {
		return nil, err
	}
	if err := validateDayAllowed(d); err != nil {
		return nil, err
	}
	if !allowRepeatPrevWeek {
		if err := s.validateNotSameWeekdayAsPrevWeek(userID, d); err != nil {
			return nil, err
		}
	}

	start, end := domain.WeekBounds(d)
	current, err := s.dm.Record().GetRecordInWeek(userID, domain.FormatISODate(start), domain.FormatISODate(end))
	if err != nil {
		return nil, fmt.Errorf("failed to get current week record: %w", err)
	}
	if current == nil {
		return nil, domain.ErrNoRecordThisWeek
	}

	weekDay := domain.WeekdayName(d)
	if err := s.dm.Record().UpdateDateAndWeekday(current.ID, dateISO, weekDay); err != nil {
		if errors.Is(err, domain.ErrDuplicateRecord) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	record := &entity.Record{
		ID:      current.ID,
		UserID:  userID,
		Date:    dateISO,
		WeekDay: weekDay,
	}

	s.log.Info("assignment changed",
		zap.Int64("record_id", record.ID),
		zap.Int64("user_id", userID),
		zap.String("date", record.Date),
		zap.String("week_day", record.WeekDay),
	)
	s.notifier.AssignmentChanged(ctx, user, record)

	return record, nil
}

// IsRegisteredThisWeek reports whether the user has a record in the week of
// refDate. A zero refDate means today.
func (s *assignmentService) IsRegisteredThisWeek(userID int64, refDate time.Time) (bool, error) {
	ref := refDate
	if ref.IsZero() {
		ref = s.now()
	}
	start, end := domain.WeekBounds(ref)
	return s.dm.Record().ExistsInWeek(userID, domain.FormatISODate(start), domain.FormatISODate(end))
}

// CurrentWeekRecord returns the user's record in the week of refDate, or nil.
// A zero refDate means today.
func (s *assignmentService) CurrentWeekRecord(userID int64, refDate time.Time) (*entity.Record, error) {
	ref := refDate
	if ref.IsZero() {
		ref = s.now()
	}
	start, end := domain.WeekBounds(ref)
	return s.dm.Record().GetRecordInWeek(userID, domain.FormatISODate(start), domain.FormatISODate(end))
}

// LatestForUser returns the user's most recent record, or nil.
func (s *assignmentService) LatestForUser(userID int64) (*entity.Record, error) {
	return s.dm.Record().GetLatest(userID)
}

// ListByUser returns all of the user's records, newest first.
func (s *assignmentService) ListByUser(userID int64) ([]*entity.Record, error) {
	return s.dm.Record().ListByUser(userID)
}

// PrevWeekRecord returns the user's record in the ISO week immediately before
// the week containing dateISO, or nil.
func (s *assignmentService) PrevWeekRecord(userID int64, dateISO string) (*entity.Record, error) {
	d, err := domain.ParseISODate(dateISO)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", dateISO, err)
	}
	start, end := domain.WeekBounds(d.AddDate(0, 0, -7))
	return s.dm.Record().GetRecordInWeek(userID, domain.FormatISODate(start), domain.FormatISODate(end))
}

// IsSameWeekdayAsPrevWeek reports whether the user's previous-week record
// falls on the same weekday as dateISO.
func (s *assignmentService) IsSameWeekdayAsPrevWeek(userID int64, dateISO string) (bool, error) {
	d, err := domain.ParseISODate(dateISO)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", dateISO, err)
	}
	prev, err := s.PrevWeekRecord(userID, dateISO)
	if err != nil {
		return false, err
	}
	return prev != nil && prev.WeekDay == domain.WeekdayName(d), nil
}

// UsersWeekStatus pairs each user with whether they have a record in the week
// of refDate. A zero refDate means today.
func (s *assignmentService) UsersWeekStatus(users []*entity.User, refDate time.Time) ([]entity.UserWeekStatus, error) {
	ref := refDate
	if ref.IsZero() {
		ref = s.now()
	}
	start, end := domain.WeekBounds(ref)
	startISO, endISO := domain.FormatISODate(start), domain.FormatISODate(end)

	result := make([]entity.UserWeekStatus, 0, len(users))
	for _, u := range users {
		registered, err := s.dm.Record().ExistsInWeek(u.ID, startISO, endISO)
		if err != nil {
			return nil, fmt.Errorf("failed to check week status for user %d: %w", u.ID, err)
		}
		result = append(result, entity.UserWeekStatus{User: u, Registered: registered})
	}

	return result, nil
}

// validateDayAllowed rejects Mondays and weekend days.
func validateDayAllowed(d time.Time) error {
	switch domain.WeekdayIndex(d) {
	case domain.Monday, domain.Saturday, domain.Sunday:
		return domain.ErrDayNotAllowed
	}
	return nil
}

// validateInCurrentWeek checks d against the week of wall-clock today, not
// the week of d itself. This is deliberate: it rejects dates a stale UI sends
// from another week, while the previous-week repeat check below is anchored
// on the candidate date.
func (s *assignmentService) validateInCurrentWeek(d time.Time) error {
	start, end := domain.WeekBounds(s.now())
	iso := domain.FormatISODate(d)
	if iso < domain.FormatISODate(start) || iso > domain.FormatISODate(end) {
		return domain.ErrDateOutsideCurrentWeek
	}
	return nil
}

func (s *assignmentService) ensureNotRegisteredThisWeek(userID int64, d time.Time) error {
	registered, err := s.IsRegisteredThisWeek(userID, d)
	if err != nil {
		return fmt.Errorf("failed to check week registration: %w", err)
	}
	if registered {
		return domain.ErrAlreadyRegisteredThisWeek
	}
	return nil
}

// validateNotSameWeekdayAsPrevWeek anchors "previous week" on the candidate
// date, not on today.
func (s *assignmentService) validateNotSameWeekdayAsPrevWeek(userID int64, d time.Time) error {
	prevStart, prevEnd := domain.WeekBounds(d.AddDate(0, 0, -7))
	prev, err := s.dm.Record().GetRecordInWeek(userID, domain.FormatISODate(prevStart), domain.FormatISODate(prevEnd))
	if err != nil {
		return fmt.Errorf("failed to get previous week record: %w", err)
	}
	if prev != nil && prev.WeekDay == domain.WeekdayName(d) {
		s.log.Debug("weekday repeats previous week",
			zap.Int64("user_id", userID),
			zap.String("date", domain.FormatISODate(d)),
			zap.String("week_day", prev.WeekDay),
		)
		return domain.ErrRepeatsPreviousWeekday
	}
	return nil
}
