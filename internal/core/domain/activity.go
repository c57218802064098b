package domain

import "time"

// RelatedType tags which collection an activity entry points into.
type RelatedType string

const (
	RelatedTypeTask    RelatedType = "task"
	RelatedTypeProject RelatedType = "project"
	RelatedTypeTeam    RelatedType = "team"
)

func (t RelatedType) Valid() bool {
	switch t {
	case RelatedTypeTask, RelatedTypeProject, RelatedTypeTeam:
		return true
	}
	return false
}

// ActivityEntry is an append-only audit record. Entries expire after the
// configured retention window; they are never updated.
type ActivityEntry struct {
	ID          string
	UserID      string
	Action      string
	RelatedID   *string
	RelatedType RelatedType
	CreatedAt   time.Time
}

// EnrichedActivityEntry attaches the display name of the related record,
// resolved through the owning service's batch endpoint. DisplayName is
// empty when the lookup failed or the record no longer exists.
type EnrichedActivityEntry struct {
	ActivityEntry
	DisplayName string
	User        *UserInfo
}

type ActivityEntryInput struct {
	UserID      string
	Action      string
	RelatedID   *string
	RelatedType RelatedType
}

type ActivityFilter struct {
	RelatedType *RelatedType
	Page        int
	Limit       int
}

type ActivityPage struct {
	Entries []EnrichedActivityEntry
	Page    int
	Limit   int
	Total   int
}
