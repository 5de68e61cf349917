package services

import (
	"context"
	"fmt"
	"log"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"
)

type notificationService struct {
	notifications storage.NotificationRepository
}

func NewNotificationService(notifications storage.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

// Notify stores an in-app notification. It never fails the caller's operation.
func (s *notificationService) Notify(ctx context.Context, userID int64, kind, title, body string, data map[string]any) {
	_, err := s.notifications.Create(ctx, &models.Notification{
		UserID: userID,
		Type:   kind,
		Title:  title,
		Body:   body,
		Data:   data,
	})
	if err != nil {
		log.Printf("NotificationService: Error notifying user %d (%s): %v", userID, kind, err)
	}
}

func (s *notificationService) List(ctx context.Context, userID int64, unreadOnly bool, page pagination.PageRequest) (pagination.PageResult[models.Notification], error) {
	items, total, err := s.notifications.List(ctx, userID, unreadOnly, page)
	if err != nil {
		return pagination.PageResult[models.Notification]{}, MapRepoError(err, "listing notifications")
	}
	return pagination.NewPageResult(items, total, page), nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	n, err := s.notifications.CountUnread(ctx, userID)
	return n, MapRepoError(err, "counting unread notifications")
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id int64) (*models.Notification, error) {
	n, err := s.notifications.MarkRead(ctx, userID, id)
	return n, MapRepoError(err, fmt.Sprintf("marking notification %d read", id))
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	n, err := s.notifications.MarkAllRead(ctx, userID)
	return n, MapRepoError(err, "marking all notifications read")
}

func (s *notificationService) Delete(ctx context.Context, userID, id int64) error {
	return MapRepoError(s.notifications.Delete(ctx, userID, id), fmt.Sprintf("deleting notification %d", id))
}
