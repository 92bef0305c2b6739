package tag

import "errors"

var (
	ErrTagNotFound    = errors.New("tag not found")
	ErrSyncUnavailable = errors.New("tag sync is not configured")
)
