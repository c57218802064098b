package mapper

import (
	"time"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/dto"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/core/domain"
)

func ToActivityItem(entry domain.EnrichedActivityEntry) dto.ActivityItem {
	item := dto.ActivityItem{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Action:      entry.Action,
		RelatedType: string(entry.RelatedType),
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}

	if entry.RelatedID != nil {
		value := *entry.RelatedID
		item.RelatedID = &value
	}

	if entry.DisplayName != "" {
		value := entry.DisplayName
		item.DisplayName = &value
	}

	if entry.User != nil {
		item.User = &dto.UserItem{ID: entry.User.ID, Name: entry.User.Name, Email: entry.User.Email}
	}

	return item
}

func ToActivityListResponse(page domain.ActivityPage) dto.ActivityListResponse {
	items := make([]dto.ActivityItem, 0, len(page.Entries))
	for _, entry := range page.Entries {
		items = append(items, ToActivityItem(entry))
	}

	pages := 0
	if page.Limit > 0 {
		pages = (page.Total + page.Limit - 1) / page.Limit
	}

	return dto.ActivityListResponse{
		Success: true,
		Data:    items,
		Pagination: dto.ActivityPagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
			Pages: pages,
		},
	}
}
