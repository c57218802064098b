package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

const insertActivityQuery = `
INSERT INTO activity_logs (id, user_id, action, related_id, related_type, created_at)
VALUES (:id, :user_id, :action, :related_id, :related_type, :created_at);
`

const deleteActivityQuery = `DELETE FROM activity_logs WHERE id = ?;`

const purgeActivityQuery = `DELETE FROM activity_logs WHERE created_at < ?;`

type ActivityRepository struct {
	db *sqlx.DB
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

type activityRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Action      string         `db:"action"`
	RelatedID   sql.NullString `db:"related_id"`
	RelatedType string         `db:"related_type"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *ActivityRepository) Create(ctx context.Context, entry domain.ActivityEntry) error {
	row := activityRow{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Action:      entry.Action,
		RelatedType: string(entry.RelatedType),
		CreatedAt:   entry.CreatedAt,
	}
	if entry.RelatedID != nil {
		row.RelatedID = sql.NullString{String: *entry.RelatedID, Valid: true}
	}
	_, err := r.db.NamedExecContext(ctx, insertActivityQuery, row)
	return err
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string, relatedType *domain.RelatedType, limit, offset int) ([]domain.ActivityEntry, error) {
	query := `SELECT * FROM activity_logs WHERE user_id = ?`
	args := []any{userID}
	if relatedType != nil {
		query += ` AND related_type = ?`
		args = append(args, string(*relatedType))
	}
	query += ` ORDER BY created_at DESC LIMIT ? OFFSET ?;`
	args = append(args, limit, offset)

	return r.listActivities(ctx, query, args...)
}

func (r *ActivityRepository) CountByUser(ctx context.Context, userID string, relatedType *domain.RelatedType) (int, error) {
	query := `SELECT COUNT(*) FROM activity_logs WHERE user_id = ?`
	args := []any{userID}
	if relatedType != nil {
		query += ` AND related_type = ?`
		args = append(args, string(*relatedType))
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query+";", args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ActivityRepository) ListByRelated(ctx context.Context, relatedID string, relatedType domain.RelatedType, limit, offset int) ([]domain.ActivityEntry, error) {
	query := `SELECT * FROM activity_logs WHERE related_id = ? AND related_type = ? ORDER BY created_at DESC LIMIT ? OFFSET ?;`
	return r.listActivities(ctx, query, relatedID, string(relatedType), limit, offset)
}

func (r *ActivityRepository) CountByRelated(ctx context.Context, relatedID string, relatedType domain.RelatedType) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM activity_logs WHERE related_id = ? AND related_type = ?;`,
		relatedID, string(relatedType))
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteActivityQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, purgeActivityQuery, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *ActivityRepository) listActivities(ctx context.Context, query string, args ...any) ([]domain.ActivityEntry, error) {
	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	entries := make([]domain.ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entry := domain.ActivityEntry{
			ID:          row.ID,
			UserID:      row.UserID,
			Action:      row.Action,
			RelatedType: domain.RelatedType(row.RelatedType),
			CreatedAt:   row.CreatedAt,
		}
		if row.RelatedID.Valid {
			value := row.RelatedID.String
			entry.RelatedID = &value
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
