package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	Latest(ctx context.Context, userID string, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	// MarkRead is scoped to the owning user so one user cannot mark
	// another's notifications.
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
