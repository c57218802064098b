package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrActivityNotFound     = errors.New("activity log not found")

	ErrInvalidDateRange            = errors.New("due date must not be before start date")
	ErrTaskStartBeforeProjectStart = errors.New("task start date is before project start date")
	ErrTaskDueAfterProjectEnd      = errors.New("task due date is after project end date")
	ErrProjectMissingStartDate     = errors.New("project has no start date")
	ErrProjectMissingEndDate       = errors.New("project has no end date")
	ErrAssigneeNotTeamMember       = errors.New("assignee is not a member of the project team")
	ErrInvalidRelatedType          = errors.New("invalid related type")

	ErrForbidden = errors.New("forbidden")

	// ErrRemoteUnavailable is the errors.Is target for every *RemoteError.
	ErrRemoteUnavailable = errors.New("remote service unavailable")
)

// RemoteError wraps a transport or server failure from a collaborator
// service. Callers match it with errors.Is(err, ErrRemoteUnavailable).
type RemoteError struct {
	Service string
	Err     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool { return target == ErrRemoteUnavailable }
