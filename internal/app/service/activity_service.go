package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/ports"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityService owns the append-only audit trail. Entries expire after
// the retention window; PurgeExpired is run daily by the scheduler.
type ActivityService struct {
	activityRepository ports.ActivityRepository
	tasks              ports.TaskDirectory
	projects           ports.ProjectDirectory
	teams              ports.TeamDirectory
	users              ports.UserDirectory
	retention          time.Duration

	now func() time.Time
}

func NewActivityService(
	activityRepository ports.ActivityRepository,
	tasks ports.TaskDirectory,
	projects ports.ProjectDirectory,
	teams ports.TeamDirectory,
	users ports.UserDirectory,
	retention time.Duration,
) *ActivityService {
	return &ActivityService{
		activityRepository: activityRepository,
		tasks:              tasks,
		projects:           projects,
		teams:              teams,
		users:              users,
		retention:          retention,
		now:                time.Now,
	}
}

var _ ports.ActivityService = (*ActivityService)(nil)

func (s *ActivityService) RecordActivity(ctx context.Context, in domain.ActivityEntryInput) (domain.ActivityEntry, error) {
	if !in.RelatedType.Valid() {
		return domain.ActivityEntry{}, domain.ErrInvalidRelatedType
	}

	entry := domain.ActivityEntry{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Action:      in.Action,
		RelatedID:   in.RelatedID,
		RelatedType: in.RelatedType,
		CreatedAt:   s.now(),
	}
	if err := s.activityRepository.Create(ctx, entry); err != nil {
		return domain.ActivityEntry{}, err
	}
	return entry, nil
}

func (s *ActivityService) ListUserActivities(ctx context.Context, userID string, f domain.ActivityFilter) (domain.ActivityPage, error) {
	limit, offset, page := paging(f)

	entries, err := s.activityRepository.ListByUser(ctx, userID, f.RelatedType, limit, offset)
	if err != nil {
		return domain.ActivityPage{}, err
	}
	total, err := s.activityRepository.CountByUser(ctx, userID, f.RelatedType)
	if err != nil {
		return domain.ActivityPage{}, err
	}

	names := s.resolveDisplayNames(ctx, entries)

	enriched := make([]domain.EnrichedActivityEntry, 0, len(entries))
	for _, entry := range entries {
		e := domain.EnrichedActivityEntry{ActivityEntry: entry}
		if entry.RelatedID != nil {
			e.DisplayName = names[entry.RelatedType][*entry.RelatedID]
		}
		enriched = append(enriched, e)
	}

	return domain.ActivityPage{Entries: enriched, Page: page, Limit: limit, Total: total}, nil
}

func (s *ActivityService) ListRelatedActivities(ctx context.Context, token, relatedID string, relatedType domain.RelatedType, f domain.ActivityFilter) (domain.ActivityPage, error) {
	if !relatedType.Valid() {
		return domain.ActivityPage{}, domain.ErrInvalidRelatedType
	}

	limit, offset, page := paging(f)

	entries, err := s.activityRepository.ListByRelated(ctx, relatedID, relatedType, limit, offset)
	if err != nil {
		return domain.ActivityPage{}, err
	}
	total, err := s.activityRepository.CountByRelated(ctx, relatedID, relatedType)
	if err != nil {
		return domain.ActivityPage{}, err
	}

	users := s.resolveUsers(ctx, token, entries)

	enriched := make([]domain.EnrichedActivityEntry, 0, len(entries))
	for _, entry := range entries {
		e := domain.EnrichedActivityEntry{ActivityEntry: entry}
		if u, ok := users[entry.UserID]; ok {
			user := u
			e.User = &user
		}
		enriched = append(enriched, e)
	}

	return domain.ActivityPage{Entries: enriched, Page: page, Limit: limit, Total: total}, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, id string) error {
	return s.activityRepository.Delete(ctx, id)
}

func (s *ActivityService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention)
	deleted, err := s.activityRepository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		zap.L().Info("purged expired activity logs",
			zap.Int64("deleted", deleted), zap.Time("cutoff", cutoff))
	}
	return deleted, nil
}

// resolveDisplayNames groups related ids by type and batch-fetches a
// display name per id from the owning service. A failed lookup degrades to
// an empty map for that type.
func (s *ActivityService) resolveDisplayNames(ctx context.Context, entries []domain.ActivityEntry) map[domain.RelatedType]map[string]string {
	grouped := map[domain.RelatedType][]string{}
	seen := map[string]bool{}
	for _, entry := range entries {
		if entry.RelatedID == nil {
			continue
		}
		key := string(entry.RelatedType) + ":" + *entry.RelatedID
		if seen[key] {
			continue
		}
		seen[key] = true
		grouped[entry.RelatedType] = append(grouped[entry.RelatedType], *entry.RelatedID)
	}

	names := map[domain.RelatedType]map[string]string{}
	for relatedType, ids := range grouped {
		var (
			summaries []domain.RelatedSummary
			err       error
		)
		switch relatedType {
		case domain.RelatedTypeTask:
			summaries, err = s.tasks.BatchTasks(ctx, ids)
		case domain.RelatedTypeProject:
			summaries, err = s.projects.BatchProjects(ctx, ids)
		case domain.RelatedTypeTeam:
			summaries, err = s.teams.BatchTeams(ctx, ids)
		}
		names[relatedType] = map[string]string{}
		if err != nil {
			zap.L().Warn("failed to resolve related records",
				zap.String("related_type", string(relatedType)), zap.Error(err))
			continue
		}
		for _, summary := range summaries {
			names[relatedType][summary.ID] = summary.Name
		}
	}
	return names
}

func (s *ActivityService) resolveUsers(ctx context.Context, token string, entries []domain.ActivityEntry) map[string]domain.UserInfo {
	ids := make([]string, 0, len(entries))
	seen := map[string]bool{}
	for _, entry := range entries {
		if entry.UserID == "" || seen[entry.UserID] {
			continue
		}
		seen[entry.UserID] = true
		ids = append(ids, entry.UserID)
	}

	users := map[string]domain.UserInfo{}
	if len(ids) == 0 {
		return users
	}

	infos, err := s.users.GetUsersInfo(ctx, token, ids)
	if err != nil {
		zap.L().Warn("failed to resolve activity users", zap.Error(err))
		return users
	}
	for _, info := range infos {
		users[info.ID] = info
	}
	return users
}

func paging(f domain.ActivityFilter) (limit, offset, page int) {
	limit = f.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	page = f.Page
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit, page
}
