package domain

import "time"

// ProjectSnapshot is the read-only view of a project fetched from the
// Project collaborator. It is used for validation only and never cached
// beyond a single request.
type ProjectSnapshot struct {
	ID        string
	TeamID    string
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Progress  int
}

type TeamMember struct {
	UserID string
	Role   string
}

// TeamSnapshot is the read-only membership view fetched from the Team
// collaborator.
type TeamSnapshot struct {
	ID      string
	Name    string
	Members []TeamMember
}

func (s TeamSnapshot) HasMember(userID string) bool {
	for _, m := range s.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

type UserInfo struct {
	ID    string
	Name  string
	Email string
}

// RelatedSummary is the lean record returned by collaborator batch
// endpoints, keyed by id so a caller can resolve a display name.
type RelatedSummary struct {
	ID   string
	Name string
}
