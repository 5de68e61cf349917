package postgres

import (
	"context"

	"professionals-api/internal/models"
	"professionals-api/internal/pagination"
	"professionals-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationColumns = `id, user_id, type, title, body, data, read_at, created_at`

// NotificationRepo implements storage.NotificationRepository. Every lookup is
// scoped to the owning user so foreign ids behave as missing rows.
type NotificationRepo struct {
	base
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{base{pool}}
}

var _ storage.NotificationRepository = (*NotificationRepo)(nil)

func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	data := n.Data
	if data == nil {
		data = map[string]any{}
	}
	return one[models.Notification](ctx, r.q(ctx), "create notification",
		`INSERT INTO notifications (user_id, type, title, body, data) VALUES ($1, $2, $3, $4, $5) RETURNING `+notificationColumns,
		n.UserID, n.Type, n.Title, n.Body, data)
}

func (r *NotificationRepo) List(ctx context.Context, userID int64, unreadOnly bool, page pagination.PageRequest) ([]models.Notification, int, error) {
	w := &where{}
	w.add("user_id = ?", userID)
	if unreadOnly {
		w.raw("read_at IS NULL")
	}
	return listPage[models.Notification](ctx, r.q(ctx), notificationColumns, "FROM notifications", w,
		"created_at DESC, id DESC", page, "list notifications")
}

func (r *NotificationRepo) CountUnread(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read_at IS NULL`, userID).Scan(&n)
	if err != nil {
		return 0, mapError(err, "count unread notifications")
	}
	return n, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, userID, id int64) (*models.Notification, error) {
	return one[models.Notification](ctx, r.q(ctx), "mark notification read",
		`UPDATE notifications SET read_at = COALESCE(read_at, NOW()) WHERE user_id = $1 AND id = $2 RETURNING `+notificationColumns,
		userID, id)
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.q(ctx).Exec(ctx, `UPDATE notifications SET read_at = NOW() WHERE user_id = $1 AND read_at IS NULL`, userID)
	if err != nil {
		return 0, mapError(err, "mark all notifications read")
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM notifications WHERE user_id = $1 AND id = $2`, userID, id)
	return requireRow(tag, err, "delete notification")
}
