package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

const insertNotificationQuery = `
INSERT INTO notifications
  (id, user_id, task_id, message, is_read, sent_at, created_at, updated_at)
VALUES
  (:id, :user_id, :task_id, :message, :is_read, :sent_at, :created_at, :updated_at);
`

const selectNotificationByIDQuery = `SELECT * FROM notifications WHERE id = ?;`

const selectNotificationsByUserQuery = `SELECT * FROM notifications WHERE user_id = ? ORDER BY created_at DESC;`

const markNotificationReadQuery = `UPDATE notifications SET is_read = 1, updated_at = ? WHERE id = ?;`

const setNotificationSentAtQuery = `UPDATE notifications SET sent_at = ?, updated_at = ? WHERE id = ?;`

const deleteNotificationQuery = `DELETE FROM notifications WHERE id = ?;`

type NotificationRepository struct {
	db *sqlx.DB
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationRow struct {
	ID        string       `db:"id"`
	UserID    string       `db:"user_id"`
	TaskID    string       `db:"task_id"`
	Message   string       `db:"message"`
	IsRead    bool         `db:"is_read"`
	SentAt    sql.NullTime `db:"sent_at"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

func (r *NotificationRepository) Create(ctx context.Context, n domain.Notification) error {
	row := notificationRow{
		ID:        n.ID,
		UserID:    n.UserID,
		TaskID:    n.TaskID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.SentAt != nil {
		row.SentAt = sql.NullTime{Time: *n.SentAt, Valid: true}
	}
	_, err := r.db.NamedExecContext(ctx, insertNotificationQuery, row)
	return err
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (domain.Notification, error) {
	var row notificationRow
	if err := r.db.GetContext(ctx, &row, selectNotificationByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Notification{}, domain.ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}
	return mapNotificationRow(row), nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows, selectNotificationsByUserQuery, userID); err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, mapNotificationRow(row))
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	return r.exec(ctx, markNotificationReadQuery, time.Now(), id)
}

func (r *NotificationRepository) SetSentAt(ctx context.Context, id string, sentAt time.Time) error {
	return r.exec(ctx, setNotificationSentAtQuery, sentAt, time.Now(), id)
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, deleteNotificationQuery, id)
}

func (r *NotificationRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish a vanished row from an idempotent update.
		var exists int
		if err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM notifications WHERE id = ?;`, args[len(args)-1]); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotificationNotFound
			}
			return err
		}
	}
	return nil
}

func mapNotificationRow(row notificationRow) domain.Notification {
	n := domain.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		TaskID:    row.TaskID,
		Message:   row.Message,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.SentAt.Valid {
		value := row.SentAt.Time
		n.SentAt = &value
	}
	return n
}
