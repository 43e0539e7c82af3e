package domain

import "errors"

// Sentinel errors returned by the services. All of them are recoverable
// conditions meant to be handled by the presentation layer; anything else
// coming out of a service is a storage failure and propagates wrapped.
var (
	// ErrUserNotFound is returned when the referenced user id does not exist.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrDateOutsideCurrentWeek is returned when the supplied date is not
	// inside the ISO week of today. Guards against stale UI state.
	ErrDateOutsideCurrentWeek = errors.New("date does not belong to the current week")

	// ErrDayNotAllowed is returned for Mondays and weekend days.
	ErrDayNotAllowed = errors.New("mondays and weekends cannot be assigned")

	// ErrAlreadyRegisteredThisWeek is returned when the user already has a
	// record in the current week; the change operation should be used instead.
	ErrAlreadyRegisteredThisWeek = errors.New("user already has a record this week")

	// ErrNoRecordThisWeek is returned by the change operation when there is
	// nothing to change.
	ErrNoRecordThisWeek = errors.New("no record this week to change")

	// ErrRepeatsPreviousWeekday is returned when the chosen weekday matches
	// the user's record from the previous week. Bypassable with the explicit
	// override flag after the caller confirms.
	ErrRepeatsPreviousWeekday = errors.New("same weekday as the previous week")

	// ErrDuplicateUser is returned on a name or docket uniqueness violation.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateRecord is returned when a record for that user and date
	// already exists.
	ErrDuplicateRecord = errors.New("a record already exists for that date")
)
