package notification

import "context"

type Service interface {
	Notify(ctx context.Context, userID, title, message string) error
	// Latest returns the most recent notifications together with the
	// unread count for the badge.
	Latest(ctx context.Context, userID string) (*ListResponse, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
