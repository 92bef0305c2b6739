package notification

import (
	"context"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/notification"
)

// latestLimit matches the badge dropdown size in the frontend.
const latestLimit = 10

type NotificationServiceImpl struct {
	notification.Repository
}

func NewNotificationService(repo notification.Repository) notification.Service {
	return &NotificationServiceImpl{Repository: repo}
}

// Notify implements notification.Service.
func (s *NotificationServiceImpl) Notify(ctx context.Context, userID, title, message string) error {
	return s.Create(ctx, &notification.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	})
}

// Latest implements notification.Service.
func (s *NotificationServiceImpl) Latest(ctx context.Context, userID string) (*notification.ListResponse, error) {
	notifications, err := s.Repository.Latest(ctx, userID, latestLimit)
	if err != nil {
		return nil, err
	}

	unread, err := s.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, notification.NewNotificationResponse(&notifications[i]))
	}

	return &notification.ListResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}, nil
}

// MarkRead implements notification.Service.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id, userID string) error {
	return s.Repository.MarkRead(ctx, id, userID)
}

// MarkAllRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	return s.Repository.MarkAllRead(ctx, userID)
}
