package ports

import (
	"context"
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry domain.ActivityEntry) error
	ListByUser(ctx context.Context, userID string, relatedType *domain.RelatedType, limit, offset int) ([]domain.ActivityEntry, error)
	CountByUser(ctx context.Context, userID string, relatedType *domain.RelatedType) (int, error)
	ListByRelated(ctx context.Context, relatedID string, relatedType domain.RelatedType, limit, offset int) ([]domain.ActivityEntry, error)
	CountByRelated(ctx context.Context, relatedID string, relatedType domain.RelatedType) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type ActivityService interface {
	RecordActivity(ctx context.Context, in domain.ActivityEntryInput) (domain.ActivityEntry, error)
	ListUserActivities(ctx context.Context, userID string, f domain.ActivityFilter) (domain.ActivityPage, error)
	ListRelatedActivities(ctx context.Context, token, relatedID string, relatedType domain.RelatedType, f domain.ActivityFilter) (domain.ActivityPage, error)
	DeleteActivity(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context) (int64, error)
}
