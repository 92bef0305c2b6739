package attendance

import "errors"

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("must clock in first")
	ErrAlreadyClockedOut = errors.New("already clocked out today")
	ErrNotWorking        = errors.New("must be working to start break")
	ErrNotOnBreak        = errors.New("not currently on break")
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrRecordClosed      = errors.New("attendance record already closed")
)
