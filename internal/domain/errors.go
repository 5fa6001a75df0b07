package domain

import "errors"

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidExamDate   = errors.New("invalid exam date")
	ErrUnknownWeekday    = errors.New("unknown weekday")
	ErrReminderNotFound  = errors.New("reminder not found")
	ErrScheduleFailed    = errors.New("schedule call failed")
	ErrListFailed        = errors.New("list scheduled call failed")
	ErrCancelFailed      = errors.New("cancel call failed")
)
